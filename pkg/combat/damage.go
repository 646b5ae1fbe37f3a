package combat

// DamageType selects the resistance modifier on the receiving end
type DamageType string

const (
	DamagePhysical DamageType = "physical"
	DamageFire     DamageType = "fire"
	DamageIce      DamageType = "ice"
	DamageMagic    DamageType = "magic"
)

// Resolve is the damage/status dispatch pipeline: it connects one collision
// event to the target's health and status sub-components. targets lacking the
// components are silent no-ops; off-target hits are harmless
func (s *Sim) Resolve(p *Projectile, target *CombatEntity) {
	if target == nil || target.Defeated() {
		return
	}

	dmg := s.rollDamage(p)
	s.Log.Debugf("[%v] %v hit %v for %.1f (%v)", s.Frame(), p.SpellID, target.Name, dmg, p.DamageType)

	target.applyDamage(dmg, p.DamageType)
	target.applyStatus(p.Effect.Kind, p.Effect.Level, p.Effect.Duration, p.DamageType, p.Effect.Slow)

	s.stats.DamageBySpell[p.SpellID] += dmg
	s.stats.TotalDamage += dmg
}

// rollDamage computes the damage one collision carries before the target's
// resistance: flat spell damage, the guaranteed bonus converted from crit
// overflow, and the crit roll against the owner's derived stats
func (s *Sim) rollDamage(p *Projectile) float64 {
	dmg := p.Damage + p.BonusDamage
	d := derivedFor(p.Owner)
	if d == nil {
		return dmg
	}
	//crit chance is a percentage; overflow beyond 100 was already folded
	//into BonusDamage at cast time
	cc := d.CritChance
	if cc > 100 {
		cc = 100
	}
	if cc > 0 && s.Rand.Float64()*100 < cc {
		dmg *= 1 + d.CritDamage/100
		s.Log.Debugf("\t[%v] %v crit", s.Frame(), p.SpellID)
		s.stats.Crits++
	}
	return dmg
}

func derivedFor(e *CombatEntity) *DerivedCombatStats {
	if e == nil {
		return nil
	}
	return e.Derived
}

// DamageArea applies one burst of area damage around center, exactly once per
// entity inside the radius. used by the ground-area archetype
func (s *Sim) DamageArea(p *Projectile, center Vec2, radius, damage float64) {
	for _, t := range s.targetsOf(p.Owner.Faction) {
		if t.Defeated() {
			continue
		}
		if center.Dist(t.Pos) > radius+t.HitRadius {
			continue
		}
		s.Log.Debugf("[%v] %v area burst hit %v for %.1f", s.Frame(), p.SpellID, t.Name, damage)
		t.applyDamage(damage, p.DamageType)
		t.applyStatus(p.Effect.Kind, p.Effect.Level, p.Effect.Duration, p.DamageType, p.Effect.Slow)
		s.stats.DamageBySpell[p.SpellID] += damage
		s.stats.TotalDamage += damage
	}
}
