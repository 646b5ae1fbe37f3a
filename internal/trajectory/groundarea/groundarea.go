package groundarea

import (
	"fmt"

	"github.com/srliao/nightsim/pkg/combat"
)

func init() {
	combat.RegisterTrajectoryFunc(combat.ArchetypeGroundArea, New)
}

type groundarea struct {
	travelSpeed float64
	radius      float64
	aoeDamage   float64
	delay       float64 //seconds after arrival before the burst
	arrived     bool
}

func New(prop combat.TrajectoryProperties) (combat.Trajectory, error) {
	if prop.TravelSpeed <= 0 {
		return nil, fmt.Errorf("%w: travel speed %v", combat.ErrInvalidProjectileConfig, prop.TravelSpeed)
	}
	if prop.AoERadius <= 0 {
		return nil, fmt.Errorf("%w: aoe radius %v", combat.ErrInvalidProjectileConfig, prop.AoERadius)
	}
	if prop.DelayAfterArrival < 0 {
		return nil, fmt.Errorf("%w: delay after arrival %v", combat.ErrInvalidProjectileConfig, prop.DelayAfterArrival)
	}
	return &groundarea{
		travelSpeed: prop.TravelSpeed,
		radius:      prop.AoERadius,
		aoeDamage:   prop.AoEDamage,
		delay:       prop.DelayAfterArrival,
	}, nil
}

func (t *groundarea) Tick(p *combat.Projectile, s *combat.Sim, dt float64) bool {
	if t.arrived {
		return true //waiting for the burst task
	}
	step := t.travelSpeed * dt
	dist := p.Pos.Dist(p.Target)
	if dist <= step {
		//snap to the marker and schedule the burst; the shard deals no
		//contact damage while in transit
		p.Pos = p.Target
		t.arrived = true
		center := p.Target
		radius := t.radius
		dmg := t.aoeDamage
		if dmg == 0 {
			dmg = p.Damage + p.BonusDamage
		}
		delay := int(t.delay * combat.FramesPerSecond)
		s.AddTask(func(s *combat.Sim) {
			s.Log.Debugf("[%v] %v bursts at %v r=%v", s.Frame(), p.SpellID, center, radius)
			s.DamageArea(p, center, radius, dmg)
			p.Destroy()
		}, p.SpellID+"-burst", delay)
		return true
	}
	p.Pos = p.Pos.Add(p.Target.Sub(p.Pos).Norm().Scale(step))
	return true
}

func (t *groundarea) OnHit(p *combat.Projectile, target *combat.CombatEntity, s *combat.Sim) bool {
	//never reached: ground markers are excluded from contact collisions
	return true
}
