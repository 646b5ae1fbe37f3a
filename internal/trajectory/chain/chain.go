package chain

import (
	"fmt"

	"github.com/srliao/nightsim/pkg/combat"
)

func init() {
	combat.RegisterTrajectoryFunc(combat.ArchetypeChain, New)
}

type chain struct {
	maxChains   int
	chainRadius float64
	strength    float64
	chained     int
	lastHit     int //entity id of the most recent hit
}

func New(prop combat.TrajectoryProperties) (combat.Trajectory, error) {
	if prop.MaxChains <= 0 {
		return nil, fmt.Errorf("%w: max chains %v", combat.ErrInvalidProjectileConfig, prop.MaxChains)
	}
	if prop.ChainRadius <= 0 {
		return nil, fmt.Errorf("%w: chain radius %v", combat.ErrInvalidProjectileConfig, prop.ChainRadius)
	}
	strength := prop.HomingStrength
	if strength == 0 {
		strength = 0.1
	}
	if strength < 0 || strength > 1 {
		return nil, fmt.Errorf("%w: homing strength %v", combat.ErrInvalidProjectileConfig, prop.HomingStrength)
	}
	return &chain{maxChains: prop.MaxChains, chainRadius: prop.ChainRadius, strength: strength, lastHit: -1}, nil
}

func (t *chain) Tick(p *combat.Projectile, s *combat.Sim, dt float64) bool {
	//each segment homes toward the nearest target that isn't the one just hit
	target := s.NearestTarget(p.Pos, p.Owner.Faction, func(e *combat.CombatEntity) bool {
		return e.ID == t.lastHit
	})
	if target != nil {
		want := target.Pos.Sub(p.Pos).Norm()
		p.Dir = p.Dir.Scale(1 - t.strength).Add(want.Scale(t.strength)).Norm()
	}
	//range budget applies per segment; segment distance resets on each hit
	return p.Advance(dt)
}

func (t *chain) OnHit(p *combat.Projectile, target *combat.CombatEntity, s *combat.Sim) bool {
	t.chained++
	t.lastHit = target.ID
	if t.chained >= t.maxChains {
		return false
	}

	//re-target the nearest entity within chain radius of the hit point
	next := s.NearestTarget(p.Pos, p.Owner.Faction, func(e *combat.CombatEntity) bool {
		return e.ID == t.lastHit
	})
	if next == nil || p.Pos.Dist(next.Pos) > t.chainRadius {
		return false
	}
	p.Dir = next.Pos.Sub(p.Pos).Norm()
	p.Traveled = 0
	s.Log.Debugf("[%v] %v chains to %v (%v/%v)", s.Frame(), p.SpellID, next.Name, t.chained, t.maxChains)
	return true
}
