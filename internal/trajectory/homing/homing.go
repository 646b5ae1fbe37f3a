package homing

import (
	"fmt"

	"github.com/srliao/nightsim/pkg/combat"
)

func init() {
	combat.RegisterTrajectoryFunc(combat.ArchetypeHoming, New)
}

type homing struct {
	strength float64
}

func New(prop combat.TrajectoryProperties) (combat.Trajectory, error) {
	if prop.HomingStrength <= 0 || prop.HomingStrength > 1 {
		return nil, fmt.Errorf("%w: homing strength %v not in (0,1]", combat.ErrInvalidProjectileConfig, prop.HomingStrength)
	}
	return &homing{strength: prop.HomingStrength}, nil
}

func (t *homing) Tick(p *combat.Projectile, s *combat.Sim, dt float64) bool {
	if target := s.NearestTarget(p.Pos, p.Owner.Faction, nil); target != nil {
		want := target.Pos.Sub(p.Pos).Norm()
		//steer the heading toward the target and renormalize
		p.Dir = p.Dir.Scale(1 - t.strength).Add(want.Scale(t.strength)).Norm()
	}
	return p.Advance(dt)
}

func (t *homing) OnHit(p *combat.Projectile, target *combat.CombatEntity, s *combat.Sim) bool {
	return false
}
