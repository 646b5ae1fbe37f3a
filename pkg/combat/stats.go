package combat

import "fmt"

type AttrType string

// the five weighted attributes
const (
	Strength     AttrType = "strength"
	Vitality     AttrType = "vitality"
	Agility      AttrType = "agility"
	Intelligence AttrType = "intelligence"
	Luck         AttrType = "luck"
)

// attrOrder fixes iteration order so dominant-attribute ties resolve the same
// way every run
var attrOrder = [...]AttrType{Strength, Vitality, Agility, Intelligence, Luck}

// AttrTypes returns the five attributes in their canonical order
func AttrTypes() []AttrType {
	out := make([]AttrType, len(attrOrder))
	copy(out, attrOrder[:])
	return out
}

// Attribute is one raw stat with its weight multiplier
type Attribute struct {
	Value  float64 `yaml:"Value"`
	Weight float64 `yaml:"Weight"`
}

// CharacterStats is the source of truth for everything Derive computes from;
// derived values are never persisted independently
type CharacterStats struct {
	Level      int64                  `yaml:"Level"`
	Attributes map[AttrType]Attribute `yaml:"Attributes"`
	Weapon     WeaponProfile          `yaml:"Weapon"`
}

// WithAttributeBump returns a copy of the stats with one attribute's value
// raised; the receiver is untouched so sweeps can share a base profile
func (cs CharacterStats) WithAttributeBump(t AttrType, amt float64) CharacterStats {
	out := cs
	out.Attributes = make(map[AttrType]Attribute, len(cs.Attributes))
	for k, v := range cs.Attributes {
		out.Attributes[k] = v
	}
	a := out.Attributes[t]
	a.Value += amt
	out.Attributes[t] = a
	return out
}

// WeaponProfile holds the equipped weapon's contribution to derivation
type WeaponProfile struct {
	Name        string   `yaml:"Name"`
	MainStat    AttrType `yaml:"MainStat"`
	DamageBonus float64  `yaml:"DamageBonus"`
}

// DerivedCombatStats are recomputed fresh whenever CharacterStats change
type DerivedCombatStats struct {
	CritChance        float64
	CritOverflow      float64
	CritDamage        float64
	HitChance         float64
	HitOverflow       float64
	AttackDamageBonus float64
	//BuildAverage is the mean of the four non-dominant attributes, reserved
	//for balancing modifiers
	BuildAverage float64
}

// attribute-class modifiers applied to the dominant value. the original left
// the intelligence branch unfinished; 1.15 is our explicit choice
const (
	martialBuildMod      = 1.25 //strength or agility dominant
	intelligenceBuildMod = 1.15
)

// Derive maps raw character attributes and the equipped weapon to derived
// combat stats. pure; same input always yields the same output
func Derive(cs CharacterStats) (DerivedCombatStats, error) {
	var d DerivedCombatStats

	var sum float64
	dominant := attrOrder[0]
	for _, k := range attrOrder {
		a, ok := cs.Attributes[k]
		if !ok {
			return d, fmt.Errorf("%w: missing attribute %v", ErrInvalidStats, k)
		}
		if a.Value < 0 {
			return d, fmt.Errorf("%w: attribute %v has negative value %v", ErrInvalidStats, k, a.Value)
		}
		if a.Weight < 0 {
			return d, fmt.Errorf("%w: attribute %v has negative weight %v", ErrInvalidStats, k, a.Weight)
		}
		sum += a.Value
		if a.Value > cs.Attributes[dominant].Value {
			dominant = k
		}
	}

	dom := cs.Attributes[dominant]
	d.BuildAverage = (sum - dom.Value) / 4

	//class modifier on the dominant value
	v := dom.Value
	switch dominant {
	case Strength, Agility:
		v *= martialBuildMod
	case Intelligence:
		v *= intelligenceBuildMod
	}

	luck := cs.Attributes[Luck].Value
	lvl := float64(cs.Level)

	d.CritChance = luck + v*dom.Weight
	if d.CritChance > 100 {
		d.CritOverflow = d.CritChance - 100
	}

	d.CritDamage = luck * (v + lvl)

	d.HitChance = (v + lvl) * luck
	if d.HitChance > 100 {
		d.HitOverflow = d.HitChance - 100
	}

	d.AttackDamageBonus = v*lvl + cs.Weapon.DamageBonus + d.HitOverflow

	return d, nil
}
