package combat

import (
	"fmt"
	"sync"
)

// Archetype names the kinematic rule governing a projectile's per-tick motion
type Archetype string

const (
	ArchetypeStraight   Archetype = "STRAIGHT"
	ArchetypeHoming     Archetype = "HOMING"
	ArchetypeOrbiting   Archetype = "ORBITING"
	ArchetypeSineWave   Archetype = "SINE_WAVE"
	ArchetypeBoomerang  Archetype = "BOOMERANG"
	ArchetypeChain      Archetype = "CHAIN"
	ArchetypePiercing   Archetype = "PIERCING"
	ArchetypeGroundArea Archetype = "GROUND_AOE"
	ArchetypeSpiral     Archetype = "SPIRAL"
	ArchetypeForking    Archetype = "FORKING"
)

// Trajectory advances one projectile tick by tick and decides what a hit does
// to the projectile itself. one instance per in-flight projectile; archetype
// state (return leg, hit sets, spiral angle...) lives in the implementation
type Trajectory interface {
	//Tick advances the projectile by dt. return false to destroy it
	Tick(p *Projectile, s *Sim, dt float64) bool
	//OnHit runs after the damage pipeline resolved a collision with target.
	//return false to destroy the projectile
	OnHit(p *Projectile, target *CombatEntity, s *Sim) bool
}

// NewTrajectoryFunc builds a trajectory for one spawn. malformed parameters
// must be rejected here, wrapped around ErrInvalidProjectileConfig; per-tick
// code never validates
type NewTrajectoryFunc func(prop TrajectoryProperties) (Trajectory, error)

var (
	trajMu  sync.RWMutex
	trajMap = make(map[Archetype]NewTrajectoryFunc)
)

// RegisterTrajectoryFunc registers an archetype constructor. each archetype
// package calls this from init and is blank-imported by the binaries
func RegisterTrajectoryFunc(a Archetype, f NewTrajectoryFunc) {
	trajMu.Lock()
	defer trajMu.Unlock()
	if _, dup := trajMap[a]; dup {
		panic("combat: RegisterTrajectoryFunc called twice for archetype " + string(a))
	}
	trajMap[a] = f
}

func newTrajectory(prop TrajectoryProperties) (Trajectory, error) {
	trajMu.RLock()
	f, ok := trajMap[prop.Type]
	trajMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: unknown archetype %v", ErrInvalidProjectileConfig, prop.Type)
	}
	return f(prop)
}

// Projectile is one in-flight spell instance
type Projectile struct {
	SpellID     string
	Archetype   Archetype
	Owner       *CombatEntity
	Pos         Vec2
	Dir         Vec2 //unit heading
	Speed       float64
	Damage      float64
	BonusDamage float64 //guaranteed bonus from crit overflow
	DamageType  DamageType
	Effect      StatusPayload
	Range       float64
	Traveled    float64
	//Target is the ground point for targeted archetypes
	Target Vec2

	traj Trajectory
	//noContact projectiles never trigger hit-volume collisions; they damage
	//through area bursts instead
	noContact bool
	//piercesTerrain projectiles survive leaving the arena
	piercesTerrain bool
	//overlap tracks which hit volumes the projectile is currently inside so
	//one entry produces exactly one collision event
	overlap map[int]bool
	alive   bool
}

// Alive reports whether the projectile is still in flight
func (p *Projectile) Alive() bool {
	return p.alive
}

// Destroy removes the projectile at the end of the current tick
func (p *Projectile) Destroy() {
	p.alive = false
}

// Advance is straight-line integration with range bookkeeping, shared by the
// archetypes that travel along their heading. returns false once the range
// budget is spent
func (p *Projectile) Advance(dt float64) bool {
	p.Pos = p.Pos.Add(p.Dir.Scale(p.Speed * dt))
	p.Traveled += p.Speed * dt
	return p.Traveled <= p.Range
}
