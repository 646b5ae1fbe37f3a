package spiral

import (
	"fmt"

	"github.com/srliao/nightsim/pkg/combat"
)

func init() {
	combat.RegisterTrajectoryFunc(combat.ArchetypeSpiral, New)
}

type spiral struct {
	expansionSpeed float64
	rotationSpeed  float64
	travelSpeed    float64
	duration       float64

	started bool
	center  combat.Vec2
	radius  float64
	angle   float64
	elapsed float64
}

func New(prop combat.TrajectoryProperties) (combat.Trajectory, error) {
	if prop.ExpansionSpeed <= 0 {
		return nil, fmt.Errorf("%w: expansion speed %v", combat.ErrInvalidProjectileConfig, prop.ExpansionSpeed)
	}
	if prop.Duration <= 0 {
		return nil, fmt.Errorf("%w: duration %v", combat.ErrInvalidProjectileConfig, prop.Duration)
	}
	return &spiral{
		expansionSpeed: prop.ExpansionSpeed,
		rotationSpeed:  prop.RotationSpeed,
		travelSpeed:    prop.BaseTravelSpeed,
		duration:       prop.Duration,
		radius:         prop.InitialRadius,
		angle:          prop.InitialAngle,
	}, nil
}

func (t *spiral) Tick(p *combat.Projectile, s *combat.Sim, dt float64) bool {
	if !t.started {
		t.center = p.Pos
		t.started = true
	}
	t.elapsed += dt
	if t.elapsed > t.duration {
		return false
	}
	//the spiral center drifts along the cast direction while the
	//projectile winds outward around it
	t.center = t.center.Add(p.Dir.Scale(t.travelSpeed * dt))
	t.radius += t.expansionSpeed * dt
	t.angle += t.rotationSpeed * dt
	p.Pos = t.center.Add(combat.Heading(t.angle).Scale(t.radius))
	return true
}

func (t *spiral) OnHit(p *combat.Projectile, target *combat.CombatEntity, s *combat.Sim) bool {
	//the expanding sweep keeps going after a hit
	return true
}
