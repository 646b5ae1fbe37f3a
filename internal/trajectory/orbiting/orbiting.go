package orbiting

import (
	"fmt"

	"github.com/srliao/nightsim/pkg/combat"
)

func init() {
	combat.RegisterTrajectoryFunc(combat.ArchetypeOrbiting, New)
}

type orbiting struct {
	radius       float64
	angularSpeed float64
	duration     float64
	angle        float64
	elapsed      float64
}

func New(prop combat.TrajectoryProperties) (combat.Trajectory, error) {
	if prop.OrbitRadius <= 0 {
		return nil, fmt.Errorf("%w: orbit radius %v", combat.ErrInvalidProjectileConfig, prop.OrbitRadius)
	}
	if prop.Duration <= 0 {
		return nil, fmt.Errorf("%w: orbit duration %v", combat.ErrInvalidProjectileConfig, prop.Duration)
	}
	return &orbiting{
		radius:       prop.OrbitRadius,
		angularSpeed: prop.AngularSpeed,
		duration:     prop.Duration,
		angle:        prop.InitialAngle,
	}, nil
}

func (t *orbiting) Tick(p *combat.Projectile, s *combat.Sim, dt float64) bool {
	t.elapsed += dt
	if t.elapsed > t.duration {
		return false
	}
	t.angle += t.angularSpeed * dt
	//position is always relative to the caster's current position
	p.Pos = p.Owner.Pos.Add(combat.Heading(t.angle).Scale(t.radius))
	return true
}

func (t *orbiting) OnHit(p *combat.Projectile, target *combat.CombatEntity, s *combat.Sim) bool {
	//blades persist for their whole duration; re-hits are throttled by the
	//collision event tracking upstream
	return true
}
