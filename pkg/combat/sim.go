package combat

import (
	"math/rand"
	"strconv"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/srliao/nightsim/internal/rotation"
)

const (
	//FramesPerSecond is the fixed physics rate
	FramesPerSecond = 60
	//TickDuration is the dt handed to trajectories each frame
	TickDuration = 1.0 / FramesPerSecond
)

var defaultArena = Arena{Min: Vec2{0, 0}, Max: Vec2{1920, 1080}}

// Sim keeps track of one combat-phase simulation
type Sim struct {
	Log  *zap.SugaredLogger
	Rand *rand.Rand

	Player  *CombatEntity
	Enemies []*CombatEntity
	Engine  *TrajectoryEngine
	Spells  map[string]SpellDef
	Arena   Arena

	F int

	rotation  []rotation.Entry
	upgrades  map[string]string
	cooldowns map[string]int
	tasks     map[string]Task
	taskSeq   int
	listeners []CombatListener
	nextID    int
	active    bool

	stats SimStats
}

// SimStats accumulates over one run
type SimStats struct {
	TotalDamage   float64
	DamageBySpell map[string]float64
	CastsBySpell  map[string]int
	Crits         int
	Defeated      int
	SimDuration   int //frames
	//DamageHist is cumulative damage per frame, for distribution plots
	DamageHist []float64
}

// New creates a sim from the given profile
func New(p Profile) (*Sim, error) {
	s := &Sim{}

	seed := p.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	s.Rand = rand.New(rand.NewSource(seed))

	s.initMaps()

	if err := s.initLogs(p); err != nil {
		return nil, err
	}

	s.Arena = defaultArena
	if p.Arena != nil {
		s.Arena = *p.Arena
	}

	s.Spells = p.Spells
	if s.Spells == nil {
		s.Spells = DefaultSpells()
	}
	rot, err := rotation.ParseAll(p.Rotation)
	if err != nil {
		return nil, err
	}
	s.rotation = rot
	for k, v := range p.Upgrades {
		s.upgrades[k] = v
	}

	if err := s.initPlayer(p.Player); err != nil {
		return nil, err
	}
	s.initEnemies(p.Enemies)

	s.Engine = newTrajectoryEngine(s)
	return s, nil
}

func (s *Sim) initMaps() {
	s.upgrades = make(map[string]string)
	s.cooldowns = make(map[string]int)
	s.tasks = make(map[string]Task)
	s.stats.DamageBySpell = make(map[string]float64)
	s.stats.CastsBySpell = make(map[string]int)
}

func (s *Sim) initLogs(p Profile) error {
	config := zap.NewDevelopmentConfig()
	config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	switch p.LogLevel {
	case "debug":
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	case "info":
		config.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	case "warn":
		config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	case "error":
		config.Level = zap.NewAtomicLevelAt(zapcore.ErrorLevel)
	}
	config.EncoderConfig.TimeKey = ""
	config.EncoderConfig.StacktraceKey = ""
	if !p.LogShowCaller {
		config.EncoderConfig.CallerKey = ""
	}
	if p.LogFile != "" {
		config.OutputPaths = []string{p.LogFile}
	}

	logger, err := config.Build()
	if err != nil {
		return err
	}
	s.Log = logger.Sugar()
	return nil
}

func (s *Sim) initPlayer(p PlayerProfile) error {
	//a weapon named in the profile without its own numbers resolves to
	//the registered preset
	if w, ok := LookupWeapon(p.Stats.Weapon.Name); ok && p.Stats.Weapon.DamageBonus == 0 {
		p.Stats.Weapon = w
	}
	d, err := Derive(p.Stats)
	if err != nil {
		return err
	}
	e := &CombatEntity{
		ID:        s.nextEntityID(),
		Name:      p.Name,
		Level:     p.Stats.Level,
		Faction:   FactionPlayer,
		Pos:       p.Position,
		HitRadius: p.HitRadius,
		Health:    NewHealth(p.MaxHealth),
		Energy:    NewEnergy(p.MaxEnergy),
		Status:    NewStatus(),
		Derived:   &d,
		s:         s,
	}
	s.Player = e
	s.Log.Debugw("player derived stats", "crit", d.CritChance, "crit overflow", d.CritOverflow, "hit", d.HitChance, "atk bonus", d.AttackDamageBonus)
	return nil
}

func (s *Sim) initEnemies(list []EnemyProfile) {
	for _, ep := range list {
		res := make(map[DamageType]float64)
		for k, v := range ep.Resist {
			res[k] = v
		}
		s.Enemies = append(s.Enemies, &CombatEntity{
			ID:        s.nextEntityID(),
			Name:      ep.Name,
			Level:     ep.Level,
			Faction:   FactionEnemy,
			Pos:       ep.Position,
			HitRadius: ep.HitRadius,
			MoveSpeed: ep.MoveSpeed,
			Health:    NewHealth(ep.MaxHealth),
			Status:    NewStatus(),
			res:       res,
			s:         s,
		})
	}
}

func (s *Sim) nextEntityID() int {
	s.nextID++
	return s.nextID
}

// BeginCombatPhase enables tick processing; called by the external day/night
// scheduler when night falls
func (s *Sim) BeginCombatPhase() {
	s.active = true
	s.Log.Infof("[%v] combat phase begins", s.Frame())
}

// EndCombatPhase disables tick processing. in-flight projectiles and status
// instances are kept; they resume if combat begins again
func (s *Sim) EndCombatPhase() {
	s.active = false
	s.Log.Infof("[%v] combat phase ends", s.Frame())
}

// Active reports whether the sim is inside a combat phase
func (s *Sim) Active() bool {
	return s.active
}

// Tick advances the sim by one frame when combat is active. ordering within
// the frame: entity movement, projectile movement then collision resolution,
// status ticks on their own slower interval, delayed tasks, then casting
func (s *Sim) Tick() {
	if !s.active {
		return
	}

	for _, e := range s.Enemies {
		e.tick(TickDuration)
	}

	s.Engine.Tick(TickDuration)

	if s.F > 0 && s.F%StatusTickInterval == 0 {
		s.runStatusTicks()
	}

	s.runTasks()
	s.autoCast()

	s.stats.SimDuration++
	s.F++
}

// Run drives the sim for the given number of simulated seconds, or until
// every enemy is defeated. returns total damage dealt and the run stats
func (s *Sim) Run(seconds int) (float64, SimStats) {
	frames := seconds * FramesPerSecond
	s.stats.DamageHist = make([]float64, 0, frames)
	for i := 0; i < frames; i++ {
		s.Tick()
		s.stats.DamageHist = append(s.stats.DamageHist, s.stats.TotalDamage)
		if s.allEnemiesDefeated() {
			s.Log.Infof("[%v] all enemies defeated", s.Frame())
			break
		}
	}
	return s.stats.TotalDamage, s.stats
}

func (s *Sim) allEnemiesDefeated() bool {
	if len(s.Enemies) == 0 {
		return false
	}
	for _, e := range s.Enemies {
		if !e.Defeated() {
			return false
		}
	}
	return true
}

// Frame formats the current frame for log lines
func (s *Sim) Frame() string {
	return strconv.Itoa(int(1000*float64(s.F)/FramesPerSecond)) + "ms|" + strconv.Itoa(s.F)
}

func (s *Sim) everyone() []*CombatEntity {
	out := make([]*CombatEntity, 0, len(s.Enemies)+1)
	if s.Player != nil {
		out = append(out, s.Player)
	}
	out = append(out, s.Enemies...)
	return out
}

// targetsOf returns the entities a projectile owned by faction f may damage
func (s *Sim) targetsOf(f Faction) []*CombatEntity {
	if f == FactionPlayer {
		return s.Enemies
	}
	if s.Player == nil {
		return nil
	}
	return []*CombatEntity{s.Player}
}

// NearestTarget returns the closest living entity opposing faction f, or nil.
// exclude filters candidates; used by chain to skip the entity just hit
func (s *Sim) NearestTarget(from Vec2, f Faction, exclude func(*CombatEntity) bool) *CombatEntity {
	var best *CombatEntity
	bestDist := -1.0
	for _, t := range s.targetsOf(f) {
		if t.Defeated() {
			continue
		}
		if exclude != nil && exclude(t) {
			continue
		}
		d := from.Dist(t.Pos)
		if best == nil || d < bestDist {
			best = t
			bestDist = d
		}
	}
	return best
}

// Stats returns a snapshot of the run statistics
func (s *Sim) Stats() SimStats {
	return s.stats
}

// RefreshDerived recomputes the player's derived stats after a level-up or
// gear change; CharacterStats stay the single source of truth
func (s *Sim) RefreshDerived(cs CharacterStats) error {
	d, err := Derive(cs)
	if err != nil {
		return err
	}
	s.Player.Level = cs.Level
	s.Player.Derived = &d
	return nil
}
