package combat

// SpellType aligns with the data files; both types spawn projectiles, AOE
// spells just carry area parameters in their trajectory properties
type SpellType string

const (
	SpellTypeProjectile    SpellType = "PROJECTILE"
	SpellTypeProjectileAoE SpellType = "PROJECTILE_AOE"
)

// StatusPayload is the effect a projectile schedules on hit
type StatusPayload struct {
	Kind     StatusKind `yaml:"Kind"`
	Duration int        `yaml:"Duration"`
	Level    int64      `yaml:"Level"`
	Slow     float64    `yaml:"Slow"`
}

// SpellDef is one entry of the spell book; consumed, not authored, by this
// core. shape mirrors the data files: common fields plus a trajectory
// properties object whose meaningful fields depend on the archetype
type SpellDef struct {
	Name       string               `yaml:"Name"`
	Type       SpellType            `yaml:"Type"`
	Damage     float64              `yaml:"Damage"`
	DamageType DamageType           `yaml:"DamageType"`
	Cooldown   float64              `yaml:"Cooldown"` //seconds
	Range      float64              `yaml:"Range"`
	Speed      float64              `yaml:"Speed"`
	EnergyCost float64              `yaml:"EnergyCost"`
	Effect     StatusPayload        `yaml:"Effect"`
	Trajectory TrajectoryProperties `yaml:"TrajectoryProperties"`
	Upgrades   map[string]Upgrade   `yaml:"Upgrades"`
}

// TrajectoryProperties is the archetype parameter bag. each archetype
// validates the fields it cares about at spawn time and ignores the rest
type TrajectoryProperties struct {
	Type Archetype `yaml:"Type"`
	//homing + chain
	HomingStrength float64 `yaml:"HomingStrength"`
	//orbiting
	OrbitRadius  float64 `yaml:"OrbitRadius"`
	AngularSpeed float64 `yaml:"AngularSpeed"` //radians per second
	Duration     float64 `yaml:"Duration"`     //seconds; orbiting and spiral
	InitialAngle float64 `yaml:"InitialAngle"`
	//sine wave
	Amplitude float64 `yaml:"Amplitude"`
	Frequency float64 `yaml:"Frequency"`
	//chain
	MaxChains   int     `yaml:"MaxChains"`
	ChainRadius float64 `yaml:"ChainRadius"`
	//piercing
	PierceCount int `yaml:"PierceCount"`
	//ground area
	TravelSpeed       float64 `yaml:"TravelSpeed"`
	AoERadius         float64 `yaml:"AoERadius"`
	AoEDamage         float64 `yaml:"AoEDamage"`
	DelayAfterArrival float64 `yaml:"DelayAfterArrival"` //seconds
	//spiral
	ExpansionSpeed  float64 `yaml:"ExpansionSpeed"`
	RotationSpeed   float64 `yaml:"RotationSpeed"` //radians per second
	BaseTravelSpeed float64 `yaml:"BaseTravelSpeed"`
	InitialRadius   float64 `yaml:"InitialRadius"`
	//forking
	ForkConditionType  string  `yaml:"ForkConditionType"` //DISTANCE or TIMER
	ForkConditionValue float64 `yaml:"ForkConditionValue"`
	ForkCount          int     `yaml:"ForkCount"`
	ForkAngleSpread    float64 `yaml:"ForkAngleSpread"` //degrees
	ChildSpellID       string  `yaml:"ChildSpellID"`
}

// Upgrade overrides selected fields of a spell; nil fields keep the base value
type Upgrade struct {
	Damage      *float64 `yaml:"Damage"`
	Cooldown    *float64 `yaml:"Cooldown"`
	Range       *float64 `yaml:"Range"`
	Speed       *float64 `yaml:"Speed"`
	EffectLevel *int64   `yaml:"EffectLevel"`
	PierceCount *int     `yaml:"PierceCount"`
	ForkCount   *int     `yaml:"ForkCount"`
}

// WithUpgrade resolves a copy of the spell with the named upgrade applied.
// unknown upgrade names return the spell unchanged
func (d SpellDef) WithUpgrade(name string) SpellDef {
	u, ok := d.Upgrades[name]
	if !ok {
		return d
	}
	if u.Damage != nil {
		d.Damage = *u.Damage
	}
	if u.Cooldown != nil {
		d.Cooldown = *u.Cooldown
	}
	if u.Range != nil {
		d.Range = *u.Range
	}
	if u.Speed != nil {
		d.Speed = *u.Speed
	}
	if u.EffectLevel != nil {
		d.Effect.Level = *u.EffectLevel
	}
	if u.PierceCount != nil {
		d.Trajectory.PierceCount = *u.PierceCount
	}
	if u.ForkCount != nil {
		d.Trajectory.ForkCount = *u.ForkCount
	}
	return d
}

func f64p(v float64) *float64 { return &v }
func i64p(v int64) *int64     { return &v }
func ip(v int) *int           { return &v }

// DefaultSpells is the built-in spell book, used when a profile does not
// carry its own
func DefaultSpells() map[string]SpellDef {
	return map[string]SpellDef{
		"basic_bolt": {
			Name: "Basic Bolt", Type: SpellTypeProjectile, Damage: 10, DamageType: DamageMagic,
			Cooldown: 0.5, Range: 300, Speed: 250,
			Trajectory: TrajectoryProperties{Type: ArchetypeHoming, HomingStrength: 0.1},
		},
		"fireball": {
			Name: "Fireball", Type: SpellTypeProjectile, Damage: 25, DamageType: DamageFire,
			Cooldown: 2.0, Range: 400, Speed: 200, EnergyCost: 10,
			Effect:     StatusPayload{Kind: StatusBurned, Duration: 3, Level: 1},
			Trajectory: TrajectoryProperties{Type: ArchetypeStraight},
			Upgrades: map[string]Upgrade{
				"empowered": {Damage: f64p(40), EffectLevel: i64p(2)},
			},
		},
		"orbiting_blades": {
			Name: "Orbiting Blades", Type: SpellTypeProjectile, Damage: 5, DamageType: DamagePhysical,
			Cooldown: 15.0, EnergyCost: 20,
			Trajectory: TrajectoryProperties{Type: ArchetypeOrbiting, OrbitRadius: 80, AngularSpeed: 3, Duration: 10},
		},
		"wave_pulse": {
			Name: "Wave Pulse", Type: SpellTypeProjectile, Damage: 12, DamageType: DamageMagic,
			Cooldown: 0.8, Range: 350, Speed: 200,
			Trajectory: TrajectoryProperties{Type: ArchetypeSineWave, Amplitude: 30, Frequency: 5},
		},
		"returning_disk": {
			Name: "Returning Disk", Type: SpellTypeProjectile, Damage: 15, DamageType: DamagePhysical,
			Cooldown: 1.2, Range: 250, Speed: 300,
			Trajectory: TrajectoryProperties{Type: ArchetypeBoomerang},
		},
		"chain_spark": {
			Name: "Chain Spark", Type: SpellTypeProjectile, Damage: 8, DamageType: DamageMagic,
			Cooldown: 1.0, Range: 300, Speed: 350,
			Trajectory: TrajectoryProperties{Type: ArchetypeChain, MaxChains: 3, ChainRadius: 150, HomingStrength: 0.1},
		},
		"piercing_bolt": {
			Name: "Piercing Bolt", Type: SpellTypeProjectile, Damage: 12, DamageType: DamagePhysical,
			Cooldown: 0.7, Range: 400, Speed: 300,
			Trajectory: TrajectoryProperties{Type: ArchetypePiercing, PierceCount: 3},
			Upgrades: map[string]Upgrade{
				"drillhead": {PierceCount: ip(5)},
			},
		},
		"meteor_shard": {
			Name: "Meteor Shard", Type: SpellTypeProjectileAoE, DamageType: DamageFire,
			Cooldown: 2.5, Range: 1000, EnergyCost: 15,
			Effect:     StatusPayload{Kind: StatusBurned, Duration: 2, Level: 1},
			Trajectory: TrajectoryProperties{Type: ArchetypeGroundArea, TravelSpeed: 500, AoERadius: 80, AoEDamage: 30, DelayAfterArrival: 0.3},
		},
		"spiral_blast": {
			Name: "Spiral Blast", Type: SpellTypeProjectile, Damage: 7, DamageType: DamageMagic,
			Cooldown:   1.0,
			Trajectory: TrajectoryProperties{Type: ArchetypeSpiral, ExpansionSpeed: 40, RotationSpeed: 12.57, BaseTravelSpeed: 150, Duration: 1.5, InitialRadius: 5},
		},
		"forking_bolt": {
			Name: "Forking Bolt", Type: SpellTypeProjectile, Damage: 10, DamageType: DamageMagic,
			Cooldown: 1.5, Range: 150, Speed: 250,
			Trajectory: TrajectoryProperties{Type: ArchetypeForking, ForkConditionType: "DISTANCE", ForkConditionValue: 150, ForkCount: 3, ForkAngleSpread: 45, ChildSpellID: "seeking_fragment"},
		},
		"seeking_fragment": {
			Name: "Seeking Fragment", Type: SpellTypeProjectile, Damage: 5, DamageType: DamageMagic,
			Range: 200, Speed: 300,
			Trajectory: TrajectoryProperties{Type: ArchetypeHoming, HomingStrength: 0.2},
		},
		"ice_lance": {
			Name: "Ice Lance", Type: SpellTypeProjectile, Damage: 18, DamageType: DamageIce,
			Cooldown: 1.0, Range: 350, Speed: 320, EnergyCost: 8,
			Effect:     StatusPayload{Kind: StatusChill, Duration: 2, Level: 1, Slow: 0.3},
			Trajectory: TrajectoryProperties{Type: ArchetypePiercing, PierceCount: 1},
		},
	}
}
