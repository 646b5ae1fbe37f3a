package combat

// Faction decides which hit volumes a projectile may collide with
type Faction int

const (
	FactionPlayer Faction = iota
	FactionEnemy
)

// Damageable is the capability surface every combat-relevant entity exposes.
// collision resolution is a typed dispatch against this, not a runtime
// property probe; an entity without the surface is simply not a target
type Damageable interface {
	TakeDamageAndEffect(damage float64, damageType DamageType, kind StatusKind, duration int, level int64)
}

// CombatEntity owns the health, energy and status sub-components of one
// combatant. any sub-component may be nil; mutations against a missing
// component are silent no-ops
type CombatEntity struct {
	ID        int
	Name      string
	Level     int64
	Faction   Faction
	Pos       Vec2
	HitRadius float64
	MoveSpeed float64

	Health *Health
	Energy *Energy
	Status *Status
	//Derived is recomputed from the entity's CharacterStats; nil for entities
	//that never cast
	Derived *DerivedCombatStats

	//res modifies incoming damage by damage type, e.g. 0.25 = takes 25% less
	res map[DamageType]float64

	defeated bool
	s        *Sim
}

func (e *CombatEntity) Defeated() bool {
	return e.defeated
}

// Resist returns the entity's resistance against t; 0 if none configured
func (e *CombatEntity) Resist(t DamageType) float64 {
	if e.res == nil {
		return 0
	}
	return e.res[t]
}

// EffectiveSpeed is move speed after active slows
func (e *CombatEntity) EffectiveSpeed() float64 {
	return e.MoveSpeed * (1 - e.Status.SlowFactor())
}

// applyDamage is the single health mutation path. every source of damage
// (projectile hit, area burst, status tick) ends up here, so clamping, defeat
// detection and notifications behave the same everywhere
func (e *CombatEntity) applyDamage(damage float64, damageType DamageType) {
	if e.defeated || e.Health == nil || damage <= 0 {
		return
	}
	damage *= 1 - e.Resist(damageType)
	overkill, defeated := e.Health.ApplyDamage(damage)
	e.s.notifyHealthChanged(e, e.Health.Current, e.Health.Max)
	if defeated {
		e.defeated = true
		e.s.Log.Infof("[%v] %v defeated (overkill %.1f)", e.s.Frame(), e.Name, overkill)
		e.s.notifyDefeated(e, overkill)
		e.s.stats.Defeated++
	}
}

func (e *CombatEntity) applyStatus(kind StatusKind, level int64, duration int, source DamageType, slow float64) {
	if e.defeated || e.Status == nil {
		return
	}
	e.Status.Apply(kind, level, duration, source, slow)
}

// TakeDamageAndEffect applies clamped damage and schedules a status effect in
// one call. this is the contract external collaborators program against
func (e *CombatEntity) TakeDamageAndEffect(damage float64, damageType DamageType, kind StatusKind, duration int, level int64) {
	e.applyDamage(damage, damageType)
	e.applyStatus(kind, level, duration, damageType, 0)
}

// ApplyExhaustion routes an energy drain through the pool and notifications
func (e *CombatEntity) ApplyExhaustion(amount float64) {
	if e.Energy == nil {
		return
	}
	overkill, drained := e.Energy.ApplyExhaustion(amount)
	e.s.notifyEnergyChanged(e, e.Energy.Current, e.Energy.Max)
	if drained {
		e.s.Log.Infof("[%v] %v exhausted (overkill %.1f)", e.s.Frame(), e.Name, overkill)
		e.s.notifyExhausted(e, overkill)
	}
}

// ApplyEnergyBoost routes an energy gain through the pool and notifications
func (e *CombatEntity) ApplyEnergyBoost(amount float64) {
	if e.Energy == nil {
		return
	}
	if e.Energy.ApplyBoost(amount) {
		e.s.notifyEnergyChanged(e, e.Energy.Current, e.Energy.Max)
	}
}

// RestoreEnergy fully refills the pool and clears the no-energy latch
func (e *CombatEntity) RestoreEnergy() {
	if e.Energy == nil {
		return
	}
	restored := e.Energy.FullRestore()
	if restored <= 0 {
		return
	}
	e.s.notifyEnergyChanged(e, e.Energy.Current, e.Energy.Max)
	e.s.notifyEnergyRestored(e, restored)
}

// tick moves an enemy toward the player; "move toward target" is the only ai
func (e *CombatEntity) tick(dt float64) {
	if e.MoveSpeed <= 0 || e.Faction != FactionEnemy || e.defeated {
		return
	}
	target := e.s.Player
	if target == nil || target.Defeated() {
		return
	}
	dir := target.Pos.Sub(e.Pos).Norm()
	e.Pos = e.Pos.Add(dir.Scale(e.EffectiveSpeed() * dt))
}
