package forking

import (
	"fmt"
	"math"

	"github.com/srliao/nightsim/pkg/combat"
)

func init() {
	combat.RegisterTrajectoryFunc(combat.ArchetypeForking, New)
}

const (
	conditionDistance = "DISTANCE"
	conditionTimer    = "TIMER"
)

type forking struct {
	condition string
	threshold float64
	count     int
	spread    float64 //degrees
	childID   string
	elapsed   float64
}

func New(prop combat.TrajectoryProperties) (combat.Trajectory, error) {
	switch prop.ForkConditionType {
	case conditionDistance, conditionTimer:
	default:
		return nil, fmt.Errorf("%w: fork condition %q", combat.ErrInvalidProjectileConfig, prop.ForkConditionType)
	}
	if prop.ForkCount <= 0 {
		return nil, fmt.Errorf("%w: fork count %v", combat.ErrInvalidProjectileConfig, prop.ForkCount)
	}
	if prop.ChildSpellID == "" {
		return nil, fmt.Errorf("%w: missing child spell id", combat.ErrInvalidProjectileConfig)
	}
	return &forking{
		condition: prop.ForkConditionType,
		threshold: prop.ForkConditionValue,
		count:     prop.ForkCount,
		spread:    prop.ForkAngleSpread,
		childID:   prop.ChildSpellID,
	}, nil
}

func (t *forking) Tick(p *combat.Projectile, s *combat.Sim, dt float64) bool {
	t.elapsed += dt
	alive := p.Advance(dt)
	//trigger check runs even on the range-expiry tick so a fork distance
	//equal to the range still splits
	if t.triggered(p) {
		t.fork(p, s)
		return false
	}
	return alive
}

func (t *forking) triggered(p *combat.Projectile) bool {
	switch t.condition {
	case conditionDistance:
		return p.Traveled >= t.threshold
	case conditionTimer:
		return t.elapsed >= t.threshold
	}
	return false
}

// fork fans count children evenly across the spread around the parent's
// heading; the parent does not survive the split.
func (t *forking) fork(p *combat.Projectile, s *combat.Sim) {
	base := p.Dir.Angle()
	spread := t.spread * math.Pi / 180
	var start, step float64
	if t.count == 1 {
		start, step = 0, 0
	} else {
		start = -spread / 2
		step = spread / float64(t.count-1)
	}
	s.Log.Debugf("[%v] %v forks into %v x %v", s.Frame(), p.SpellID, t.count, t.childID)
	for i := 0; i < t.count; i++ {
		dir := combat.Heading(base + start + float64(i)*step)
		s.SpawnChild(p, t.childID, p.Pos, dir)
	}
}

func (t *forking) OnHit(p *combat.Projectile, target *combat.CombatEntity, s *combat.Sim) bool {
	return false
}
