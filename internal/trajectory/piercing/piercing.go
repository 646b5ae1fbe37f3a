package piercing

import (
	"fmt"

	"github.com/srliao/nightsim/pkg/combat"
)

func init() {
	combat.RegisterTrajectoryFunc(combat.ArchetypePiercing, New)
}

type piercing struct {
	remaining int
	hit       map[int]bool
}

func New(prop combat.TrajectoryProperties) (combat.Trajectory, error) {
	if prop.PierceCount <= 0 {
		return nil, fmt.Errorf("%w: pierce count %v", combat.ErrInvalidProjectileConfig, prop.PierceCount)
	}
	return &piercing{remaining: prop.PierceCount, hit: make(map[int]bool)}, nil
}

func (t *piercing) Tick(p *combat.Projectile, s *combat.Sim, dt float64) bool {
	return p.Advance(dt)
}

func (t *piercing) OnHit(p *combat.Projectile, target *combat.CombatEntity, s *combat.Sim) bool {
	//each distinct target consumes exactly one pierce
	if t.hit[target.ID] {
		return true
	}
	t.hit[target.ID] = true
	t.remaining--
	return t.remaining > 0
}
