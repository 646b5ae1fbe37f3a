package combat

// StatusKind names a timed, non-instantaneous modifier
type StatusKind string

const (
	StatusCorroding StatusKind = "corroding"
	StatusBurned    StatusKind = "burned"
	StatusChill     StatusKind = "chill"
)

// StatusEffectInstance is one active effect on one entity. one instance per
// kind: reapplication refreshes rather than stacks, keeping the stronger
// level and the longer remaining duration
type StatusEffectInstance struct {
	Kind     StatusKind
	Level    int64
	Duration int //remaining status ticks
	Source   DamageType
	//SlowAmount only means something for chill/slow kinds
	SlowAmount float64
}

// Status holds an entity's active effect set
type Status struct {
	active map[StatusKind]*StatusEffectInstance
}

func NewStatus() *Status {
	return &Status{active: make(map[StatusKind]*StatusEffectInstance)}
}

// Apply creates or refreshes an instance of kind
func (st *Status) Apply(kind StatusKind, level int64, duration int, source DamageType, slow float64) {
	if kind == "" || duration <= 0 {
		return
	}
	inst, ok := st.active[kind]
	if !ok {
		st.active[kind] = &StatusEffectInstance{
			Kind:       kind,
			Level:      level,
			Duration:   duration,
			Source:     source,
			SlowAmount: slow,
		}
		return
	}
	//refresh: stronger level wins, longer remaining duration wins
	if level > inst.Level {
		inst.Level = level
	}
	if duration > inst.Duration {
		inst.Duration = duration
	}
	inst.Source = source
	if slow > inst.SlowAmount {
		inst.SlowAmount = slow
	}
}

// Active returns the instance of kind, or nil
func (st *Status) Active(kind StatusKind) *StatusEffectInstance {
	if st == nil {
		return nil
	}
	return st.active[kind]
}

// SlowFactor returns the strongest active slow, 0 if none
func (st *Status) SlowFactor() float64 {
	if st == nil {
		return 0
	}
	var f float64
	for _, inst := range st.active {
		if inst.SlowAmount > f {
			f = inst.SlowAmount
		}
	}
	return f
}

// StatusTickInterval is how many physics frames make one status tick; effects
// tick once per simulated second, layered on the 60fps loop
const StatusTickInterval = 60

// runStatusTicks advances every active instance on every living entity by one
// status tick. periodic damage goes back through the same health mutator as
// projectile damage so defeat detection is uniform
func (s *Sim) runStatusTicks() {
	for _, e := range s.everyone() {
		if e.Status == nil || e.Defeated() {
			continue
		}
		for kind, inst := range e.Status.active {
			switch kind {
			case StatusCorroding:
				//randomized sub-tick count, each sub-tick rolling its own damage
				n := 4*inst.Level + int64(s.Rand.Intn(6))
				var dmg float64
				for i := int64(0); i < n; i++ {
					dmg += float64(2*inst.Level + int64(s.Rand.Intn(6)))
				}
				s.Log.Debugf("[%v] %v corroding tick: %v sub-ticks for %.0f", s.Frame(), e.Name, n, dmg)
				e.applyDamage(dmg, inst.Source)
			case StatusBurned:
				n := 3*inst.Level + int64(s.Rand.Intn(3))
				var dmg float64
				for i := int64(0); i < n; i++ {
					dmg += float64(2*inst.Level + int64(s.Rand.Intn(4)))
				}
				s.Log.Debugf("[%v] %v burned tick: %v sub-ticks for %.0f", s.Frame(), e.Name, n, dmg)
				e.applyDamage(dmg, inst.Source)
			}
			inst.Duration--
			if inst.Duration <= 0 {
				s.Log.Debugf("[%v] %v status %v expired", s.Frame(), e.Name, kind)
				delete(e.Status.active, kind)
			}
		}
	}
}
