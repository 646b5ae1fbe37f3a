package combat

import (
	"fmt"

	"github.com/srliao/nightsim/internal/rotation"
)

// Cast spawns a projectile of the named spell from caster toward target.
// spawn-time configuration errors surface here and the cast fails cleanly:
// no projectile, no cooldown, no energy cost
func (s *Sim) Cast(caster *CombatEntity, spellID string, target Vec2) error {
	def, ok := s.Spells[spellID]
	if !ok {
		return fmt.Errorf("unknown spell %v", spellID)
	}
	if up := s.upgrades[spellID]; up != "" {
		def = def.WithUpgrade(up)
	}

	p, err := s.buildProjectile(caster, spellID, def, target)
	if err != nil {
		return err
	}

	//config validated; now the cast sticks
	s.cooldowns[spellID] = s.F + int(def.Cooldown*FramesPerSecond)
	if def.EnergyCost > 0 {
		caster.ApplyExhaustion(def.EnergyCost)
	}
	s.Engine.Spawn(p)
	s.stats.CastsBySpell[spellID]++
	s.Log.Infof("[%v] %v cast %v at %.0f,%.0f", s.Frame(), caster.Name, spellID, target.X, target.Y)
	return nil
}

// buildProjectile derives spawn parameters from the caster's stats and the
// spell definition, then validates the archetype config
func (s *Sim) buildProjectile(caster *CombatEntity, spellID string, def SpellDef, target Vec2) (*Projectile, error) {
	if def.Speed < 0 {
		return nil, fmt.Errorf("spell %v: %w: negative speed %v", spellID, ErrInvalidProjectileConfig, def.Speed)
	}
	if def.Range < 0 {
		return nil, fmt.Errorf("spell %v: %w: negative range %v", spellID, ErrInvalidProjectileConfig, def.Range)
	}
	traj, err := newTrajectory(def.Trajectory)
	if err != nil {
		return nil, fmt.Errorf("spell %v: %w", spellID, err)
	}

	p := &Projectile{
		SpellID:    spellID,
		Archetype:  def.Trajectory.Type,
		Owner:      caster,
		Pos:        caster.Pos,
		Dir:        target.Sub(caster.Pos).Norm(),
		Speed:      def.Speed,
		Damage:     def.Damage,
		DamageType: def.DamageType,
		Effect:     def.Effect,
		Range:      def.Range,
		Target:     target,
		traj:       traj,
		overlap:    make(map[int]bool),
		alive:      true,
	}
	if d := caster.Derived; d != nil {
		p.Damage += d.AttackDamageBonus
		//crit chance beyond 100 becomes guaranteed bonus damage
		p.BonusDamage = d.CritOverflow
	}
	switch def.Trajectory.Type {
	case ArchetypeGroundArea:
		p.noContact = true
	case ArchetypePiercing:
		p.piercesTerrain = true
	}
	return p, nil
}

// SpawnChild casts a child spell from an in-flight parent, inheriting the
// parent's owner. used by the forking archetype. a missing or malformed child
// spell degrades to no spawn rather than failing the tick
func (s *Sim) SpawnChild(parent *Projectile, childSpellID string, from Vec2, dir Vec2) {
	def, ok := s.Spells[childSpellID]
	if !ok {
		s.Log.Warnf("[%v] child spell %v not found", s.Frame(), childSpellID)
		return
	}
	p, err := s.buildProjectile(parent.Owner, childSpellID, def, from.Add(dir.Scale(100)))
	if err != nil {
		s.Log.Warnf("[%v] child spell %v: %v", s.Frame(), childSpellID, err)
		return
	}
	p.Pos = from
	p.Dir = dir
	s.Engine.Spawn(p)
}

// SpellReady reports whether the spell's cooldown has elapsed
func (s *Sim) SpellReady(spellID string) bool {
	return s.cooldowns[spellID] <= s.F
}

// autoCast fires the first ready rotation spell at the nearest living enemy.
// one cast per tick, matching the original's automatic spell behavior
func (s *Sim) autoCast() {
	if s.Player == nil || s.Player.Defeated() {
		return
	}
	target := s.NearestTarget(s.Player.Pos, FactionPlayer, nil)
	if target == nil {
		return
	}
	env := s.rotationEnv()
	for _, e := range s.rotation {
		if !s.SpellReady(e.SpellID) || !e.Ready(env) {
			continue
		}
		if err := s.Cast(s.Player, e.SpellID, target.Pos); err != nil {
			s.Log.Warnf("[%v] cast %v failed: %v", s.Frame(), e.SpellID, err)
			continue
		}
		return
	}
}

// rotationEnv exposes run state to rotation conditions
func (s *Sim) rotationEnv() rotation.Env {
	return func(field string) (float64, bool) {
		switch field {
		case "energy":
			return s.Player.Energy.Current, true
		case "health":
			return s.Player.Health.Current, true
		case "enemies":
			n := 0
			for _, e := range s.Enemies {
				if !e.Defeated() {
					n++
				}
			}
			return float64(n), true
		case "frame":
			return float64(s.F), true
		}
		return 0, false
	}
}
