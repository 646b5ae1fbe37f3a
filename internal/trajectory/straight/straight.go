package straight

import (
	"fmt"

	"github.com/srliao/nightsim/pkg/combat"
)

func init() {
	combat.RegisterTrajectoryFunc(combat.ArchetypeStraight, New)
}

type straight struct{}

func New(prop combat.TrajectoryProperties) (combat.Trajectory, error) {
	if prop.Type != combat.ArchetypeStraight {
		return nil, fmt.Errorf("%w: not a straight config", combat.ErrInvalidProjectileConfig)
	}
	return &straight{}, nil
}

func (t *straight) Tick(p *combat.Projectile, s *combat.Sim, dt float64) bool {
	return p.Advance(dt)
}

func (t *straight) OnHit(p *combat.Projectile, target *combat.CombatEntity, s *combat.Sim) bool {
	//single hit then gone
	return false
}
