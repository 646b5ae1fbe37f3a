package combat

// Profile describes one simulation run; loaded from yaml by the binaries
type Profile struct {
	Label    string              `yaml:"Label"`
	Player   PlayerProfile       `yaml:"Player"`
	Enemies  []EnemyProfile      `yaml:"Enemies"`
	Spells   map[string]SpellDef `yaml:"Spells"`
	Rotation []string            `yaml:"Rotation"`
	//Upgrades selects an upgrade level per spell, keyed by spell id
	Upgrades map[string]string `yaml:"Upgrades"`
	Arena    *Arena            `yaml:"Arena"`
	//Seed makes a run reproducible; 0 seeds from the clock
	Seed int64 `yaml:"Seed"`

	LogLevel      string `yaml:"LogLevel"`
	LogFile       string `yaml:"LogFile"`
	LogShowCaller bool   `yaml:"LogShowCaller"`
}

// PlayerProfile ...
type PlayerProfile struct {
	Name      string         `yaml:"Name"`
	Stats     CharacterStats `yaml:"Stats"`
	MaxHealth float64        `yaml:"MaxHealth"`
	MaxEnergy float64        `yaml:"MaxEnergy"`
	Position  Vec2           `yaml:"Position"`
	HitRadius float64        `yaml:"HitRadius"`
}

// EnemyProfile ...
type EnemyProfile struct {
	Name      string                 `yaml:"Name"`
	Level     int64                  `yaml:"Level"`
	MaxHealth float64                `yaml:"MaxHealth"`
	Position  Vec2                   `yaml:"Position"`
	HitRadius float64                `yaml:"HitRadius"`
	MoveSpeed float64                `yaml:"MoveSpeed"`
	Resist    map[DamageType]float64 `yaml:"Resist"`
}
