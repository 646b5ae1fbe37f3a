package combat

// Energy mirrors Health for the stamina-like pool. NoEnergy is its defeat
// equivalent: latched when an exhaustion mutation drives the pool to zero,
// cleared only by FullRestore
type Energy struct {
	Current float64
	Max     float64
	//AllowExceed lifts the [0,Max] clamp
	AllowExceed bool
	//GodMode makes the pool immune to exhaustion mutations; boosts still apply
	GodMode  bool
	NoEnergy bool
}

func NewEnergy(max float64) *Energy {
	return &Energy{Current: max, Max: max}
}

// ApplyExhaustion reduces current energy by amount. returns the overkill
// portion and whether this mutation latched the no-energy state
func (e *Energy) ApplyExhaustion(amount float64) (overkill float64, drained bool) {
	if e.GodMode || amount <= 0 {
		return 0, false
	}
	e.Current -= amount
	if e.Current <= 0 {
		overkill = -e.Current
		if !e.NoEnergy {
			drained = true
		}
		e.NoEnergy = true
		if !e.AllowExceed {
			e.Current = 0
		}
	}
	return overkill, drained
}

// ApplyBoost raises current energy. ignored while no-energy is latched; a
// full restore is required to leave that state
func (e *Energy) ApplyBoost(amount float64) bool {
	if e.NoEnergy || amount <= 0 {
		return false
	}
	e.Current += amount
	if !e.AllowExceed && e.Current > e.Max {
		e.Current = e.Max
	}
	return true
}

// FullRestore refills the pool and clears the no-energy latch. returns the
// amount restored
func (e *Energy) FullRestore() float64 {
	restored := e.Max - e.Current
	e.Current = e.Max
	e.NoEnergy = false
	return restored
}
