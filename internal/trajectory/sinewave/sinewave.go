package sinewave

import (
	"fmt"
	"math"

	"github.com/srliao/nightsim/pkg/combat"
)

func init() {
	combat.RegisterTrajectoryFunc(combat.ArchetypeSineWave, New)
}

type sineWave struct {
	amplitude float64
	frequency float64
	base      combat.Vec2 //center of the wave, advances along the path
	pathDir   combat.Vec2
	elapsed   float64
	set       bool
}

func New(prop combat.TrajectoryProperties) (combat.Trajectory, error) {
	if prop.Amplitude <= 0 {
		return nil, fmt.Errorf("%w: amplitude %v", combat.ErrInvalidProjectileConfig, prop.Amplitude)
	}
	if prop.Frequency <= 0 {
		return nil, fmt.Errorf("%w: frequency %v", combat.ErrInvalidProjectileConfig, prop.Frequency)
	}
	return &sineWave{amplitude: prop.Amplitude, frequency: prop.Frequency}, nil
}

func (t *sineWave) Tick(p *combat.Projectile, s *combat.Sim, dt float64) bool {
	if !t.set {
		//capture spawn point and heading; the wave oscillates around them
		t.base = p.Pos
		t.pathDir = p.Dir
		t.set = true
	}

	t.base = t.base.Add(t.pathDir.Scale(p.Speed * dt))
	p.Traveled += p.Speed * dt
	t.elapsed += dt

	offset := t.amplitude * math.Sin(t.frequency*t.elapsed)
	p.Pos = t.base.Add(t.pathDir.Perp().Scale(offset))

	return p.Traveled <= p.Range
}

func (t *sineWave) OnHit(p *combat.Projectile, target *combat.CombatEntity, s *combat.Sim) bool {
	return false
}
