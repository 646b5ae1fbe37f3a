package combat

import "errors"

// sentinel errors; callers match with errors.Is
var (
	//ErrInvalidStats is returned by Derive when an attribute is missing or
	//carries a negative value/weight. derivation never silently clamps bad input
	ErrInvalidStats = errors.New("invalid character stats")
	//ErrInvalidProjectileConfig is returned at spawn time for malformed
	//archetype parameters. a cast that fails this way produces no projectile
	//and consumes no cooldown or energy
	ErrInvalidProjectileConfig = errors.New("invalid projectile config")
)
