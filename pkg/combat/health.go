package combat

// Health is an entity's primary clamped pool. mutation goes through the
// explicit mutators only; there is no clamp-on-write property magic
type Health struct {
	Current float64
	Max     float64
	//AllowExceed lifts the [0,Max] clamp
	AllowExceed bool
	//GodMode makes the pool immune to damage, not to healing
	GodMode bool
}

func NewHealth(max float64) *Health {
	return &Health{Current: max, Max: max}
}

// ApplyDamage reduces current health by amount. returns the overkill portion
// (damage applied beyond zero) and whether the pool was driven to defeat
func (h *Health) ApplyDamage(amount float64) (overkill float64, defeated bool) {
	if h.GodMode || amount <= 0 {
		return 0, false
	}
	h.Current -= amount
	if h.Current <= 0 {
		overkill = -h.Current
		defeated = true
		if !h.AllowExceed {
			h.Current = 0
		}
	}
	return overkill, defeated
}

// ApplyHeal raises current health by amount, clamped to Max unless
// AllowExceed is set
func (h *Health) ApplyHeal(amount float64) {
	if amount <= 0 {
		return
	}
	h.Current += amount
	if !h.AllowExceed && h.Current > h.Max {
		h.Current = h.Max
	}
}
