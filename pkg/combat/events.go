package combat

// CombatListener receives the typed notifications consumed by presentation
// layers (HUD and the like). listeners are registered on the sim and called
// synchronously from the mutators
type CombatListener interface {
	HealthChanged(e *CombatEntity, current, max float64)
	Defeated(e *CombatEntity, overkill float64)
	EnergyChanged(e *CombatEntity, current, max float64)
	Exhausted(e *CombatEntity, overkill float64)
	EnergyRestored(e *CombatEntity, amount float64)
}

// NopListener can be embedded by listeners that only care about some events
type NopListener struct{}

func (NopListener) HealthChanged(e *CombatEntity, current, max float64) {}
func (NopListener) Defeated(e *CombatEntity, overkill float64)          {}
func (NopListener) EnergyChanged(e *CombatEntity, current, max float64) {}
func (NopListener) Exhausted(e *CombatEntity, overkill float64)         {}
func (NopListener) EnergyRestored(e *CombatEntity, amount float64)      {}

// AddListener registers a listener for combat notifications
func (s *Sim) AddListener(l CombatListener) {
	s.listeners = append(s.listeners, l)
}

func (s *Sim) notifyHealthChanged(e *CombatEntity, current, max float64) {
	for _, l := range s.listeners {
		l.HealthChanged(e, current, max)
	}
}

func (s *Sim) notifyDefeated(e *CombatEntity, overkill float64) {
	for _, l := range s.listeners {
		l.Defeated(e, overkill)
	}
}

func (s *Sim) notifyEnergyChanged(e *CombatEntity, current, max float64) {
	for _, l := range s.listeners {
		l.EnergyChanged(e, current, max)
	}
}

func (s *Sim) notifyExhausted(e *CombatEntity, overkill float64) {
	for _, l := range s.listeners {
		l.Exhausted(e, overkill)
	}
}

func (s *Sim) notifyEnergyRestored(e *CombatEntity, amount float64) {
	for _, l := range s.listeners {
		l.EnergyRestored(e, amount)
	}
}
