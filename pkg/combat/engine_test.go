package combat_test

import (
	"errors"
	"math"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srliao/nightsim/pkg/combat"

	_ "github.com/srliao/nightsim/internal/trajectory/boomerang"
	_ "github.com/srliao/nightsim/internal/trajectory/chain"
	_ "github.com/srliao/nightsim/internal/trajectory/forking"
	_ "github.com/srliao/nightsim/internal/trajectory/groundarea"
	_ "github.com/srliao/nightsim/internal/trajectory/homing"
	_ "github.com/srliao/nightsim/internal/trajectory/orbiting"
	_ "github.com/srliao/nightsim/internal/trajectory/piercing"
	_ "github.com/srliao/nightsim/internal/trajectory/sinewave"
	_ "github.com/srliao/nightsim/internal/trajectory/spiral"
	_ "github.com/srliao/nightsim/internal/trajectory/straight"
)

// testPlayerStats derives to zero crit chance and zero attack bonus so hit
// damage equals spell damage exactly
func testPlayerStats() combat.CharacterStats {
	return combat.CharacterStats{
		Level: 0,
		Attributes: map[combat.AttrType]combat.Attribute{
			combat.Strength:     {Value: 5, Weight: 0},
			combat.Vitality:     {Value: 5, Weight: 0},
			combat.Agility:      {Value: 5, Weight: 0},
			combat.Intelligence: {Value: 5, Weight: 0},
			combat.Luck:         {Value: 0, Weight: 0},
		},
	}
}

func newTestSim(t *testing.T, enemies []combat.EnemyProfile) *combat.Sim {
	t.Helper()
	s, err := combat.New(combat.Profile{
		Seed:     7,
		LogLevel: "error",
		Player: combat.PlayerProfile{
			Name:      "caster",
			Stats:     testPlayerStats(),
			MaxHealth: 100,
			MaxEnergy: 50,
			Position:  combat.Vec2{X: 960, Y: 540},
			HitRadius: 16,
		},
		Enemies: enemies,
	})
	require.NoError(t, err)
	s.BeginCombatPhase()
	return s
}

func tickN(s *combat.Sim, n int) {
	for i := 0; i < n; i++ {
		s.Tick()
	}
}

func TestStraightRangeExpiry(t *testing.T) {
	s := newTestSim(t, nil)

	//fireball: speed 200, range 400 -> two seconds of flight
	require.NoError(t, s.Cast(s.Player, "fireball", combat.Vec2{X: 1360, Y: 540}))
	tickN(s, 60)
	assert.Equal(t, 1, s.Engine.Live())
	tickN(s, 70)
	assert.Equal(t, 0, s.Engine.Live())
}

func TestIceLancePipeline(t *testing.T) {
	s := newTestSim(t, []combat.EnemyProfile{
		{Name: "husk", Level: 5, MaxHealth: 100, Position: combat.Vec2{X: 1060, Y: 540}, HitRadius: 12, MoveSpeed: 50},
	})
	e := s.Enemies[0]

	require.NoError(t, s.Cast(s.Player, "ice_lance", e.Pos))
	tickN(s, 30)

	//exactly one hit of exactly the spell damage
	assert.Equal(t, 82.0, e.Health.Current)
	assert.Equal(t, 0, s.Engine.Live())

	inst := e.Status.Active(combat.StatusChill)
	require.NotNil(t, inst)
	assert.Equal(t, 2, inst.Duration)
	assert.Equal(t, 0.3, inst.SlowAmount)
	assert.InDelta(t, 35.0, e.EffectiveSpeed(), 1e-9)

	//energy cost was spent
	assert.Equal(t, 42.0, s.Player.Energy.Current)
}

func TestDamageResist(t *testing.T) {
	s := newTestSim(t, []combat.EnemyProfile{
		{Name: "shade", Level: 5, MaxHealth: 100, Position: combat.Vec2{X: 1060, Y: 540}, HitRadius: 12,
			Resist: map[combat.DamageType]float64{combat.DamageFire: 0.5}},
	})
	e := s.Enemies[0]

	require.NoError(t, s.Cast(s.Player, "fireball", e.Pos))
	tickN(s, 40)

	assert.Equal(t, 87.5, e.Health.Current)
	assert.NotNil(t, e.Status.Active(combat.StatusBurned))
}

func TestPiercingHitsEachTargetOnce(t *testing.T) {
	s := newTestSim(t, []combat.EnemyProfile{
		{Name: "a", Level: 5, MaxHealth: 100, Position: combat.Vec2{X: 1020, Y: 540}, HitRadius: 10},
		{Name: "b", Level: 5, MaxHealth: 100, Position: combat.Vec2{X: 1080, Y: 540}, HitRadius: 10},
		{Name: "c", Level: 5, MaxHealth: 100, Position: combat.Vec2{X: 1140, Y: 540}, HitRadius: 10},
	})

	require.NoError(t, s.Cast(s.Player, "piercing_bolt", combat.Vec2{X: 1500, Y: 540}))
	tickN(s, 50)

	for _, e := range s.Enemies {
		assert.Equal(t, 88.0, e.Health.Current, e.Name)
	}
	//pierce budget of 3 spent on the third hit
	assert.Equal(t, 0, s.Engine.Live())
}

func TestChainRetargets(t *testing.T) {
	s := newTestSim(t, []combat.EnemyProfile{
		{Name: "a", Level: 5, MaxHealth: 100, Position: combat.Vec2{X: 1020, Y: 540}, HitRadius: 15},
		{Name: "b", Level: 5, MaxHealth: 100, Position: combat.Vec2{X: 1120, Y: 540}, HitRadius: 15},
	})
	a, b := s.Enemies[0], s.Enemies[1]

	require.NoError(t, s.Cast(s.Player, "chain_spark", a.Pos))
	tickN(s, 80)

	//three chains: a, then b, then back to a
	assert.Equal(t, 84.0, a.Health.Current)
	assert.Equal(t, 92.0, b.Health.Current)
	assert.Equal(t, 0, s.Engine.Live())
}

func TestChainStopsWithoutTargetInRadius(t *testing.T) {
	//second enemy outside the 150 chain radius
	s := newTestSim(t, []combat.EnemyProfile{
		{Name: "a", Level: 5, MaxHealth: 100, Position: combat.Vec2{X: 1020, Y: 540}, HitRadius: 15},
		{Name: "far", Level: 5, MaxHealth: 100, Position: combat.Vec2{X: 1400, Y: 540}, HitRadius: 15},
	})
	a, far := s.Enemies[0], s.Enemies[1]

	require.NoError(t, s.Cast(s.Player, "chain_spark", a.Pos))
	tickN(s, 40)

	assert.Equal(t, 92.0, a.Health.Current)
	assert.Equal(t, 100.0, far.Health.Current)
	assert.Equal(t, 0, s.Engine.Live())
}

func TestForkingSplitsIntoChildren(t *testing.T) {
	s := newTestSim(t, nil)

	require.NoError(t, s.Cast(s.Player, "forking_bolt", combat.Vec2{X: 1160, Y: 540}))
	tickN(s, 40)

	//parent forked at 150 traveled; three seeking fragments remain
	assert.Equal(t, 3, s.Engine.Live())
	assert.Equal(t, 0, s.Stats().CastsBySpell["seeking_fragment"])

	//children fan out evenly across the 45 degree spread around the parent's
	//heading; no enemies, so homing never bends them
	var headings []float64
	for _, p := range s.Engine.Projectiles() {
		headings = append(headings, p.Dir.Angle()*180/math.Pi)
	}
	sort.Float64s(headings)
	require.Len(t, headings, 3)
	assert.InDelta(t, -22.5, headings[0], 1e-9)
	assert.InDelta(t, 0.0, headings[1], 1e-9)
	assert.InDelta(t, 22.5, headings[2], 1e-9)
}

func TestSineWaveOscillatesAroundPath(t *testing.T) {
	s := newTestSim(t, nil)

	//wave_pulse: speed 200, amplitude 30, frequency 5, fired due east
	require.NoError(t, s.Cast(s.Player, "wave_pulse", combat.Vec2{X: 1400, Y: 540}))

	//spawn is admitted at the end of the first tick, so n ticks give n-1 steps
	tickN(s, 31)
	ps := s.Engine.Projectiles()
	require.Len(t, ps, 1)
	p := ps[0]
	assert.InDelta(t, 960+200*0.5, p.Pos.X, 1e-6)
	assert.InDelta(t, 540+30*math.Sin(5*0.5), p.Pos.Y, 1e-6)

	//at 0.75s the wave has crossed to the other side of the flight line
	tickN(s, 15)
	assert.InDelta(t, 540+30*math.Sin(5*0.75), p.Pos.Y, 1e-6)
	assert.Less(t, p.Pos.Y, 540.0)
}

func TestHomingSteersTowardTarget(t *testing.T) {
	s := newTestSim(t, []combat.EnemyProfile{
		{Name: "husk", Level: 5, MaxHealth: 100, Position: combat.Vec2{X: 1040, Y: 600}, HitRadius: 12},
	})
	e := s.Enemies[0]

	//aimed due east; the target sits below the initial flight line
	require.NoError(t, s.Cast(s.Player, "seeking_fragment", combat.Vec2{X: 1200, Y: 540}))
	tickN(s, 10)

	ps := s.Engine.Projectiles()
	require.Len(t, ps, 1)
	bearing := e.Pos.Sub(ps[0].Pos).Angle()
	assert.Greater(t, ps[0].Dir.Angle(), 0.0)
	assert.LessOrEqual(t, ps[0].Dir.Angle(), bearing)

	//the curve closes on the target well inside the 200 range
	tickN(s, 50)
	assert.Equal(t, 95.0, e.Health.Current)
	assert.Equal(t, 0, s.Engine.Live())
}

func TestGroundAreaBurstsOnceAfterDelay(t *testing.T) {
	s := newTestSim(t, []combat.EnemyProfile{
		{Name: "target", Level: 5, MaxHealth: 1000, Position: combat.Vec2{X: 1260, Y: 540}, HitRadius: 18},
		{Name: "bystander", Level: 5, MaxHealth: 1000, Position: combat.Vec2{X: 1110, Y: 540}, HitRadius: 30},
	})
	target, bystander := s.Enemies[0], s.Enemies[1]

	require.NoError(t, s.Cast(s.Player, "meteor_shard", target.Pos))

	//in transit the shard passes straight over the bystander without contact
	tickN(s, 20)
	assert.Equal(t, 1000.0, bystander.Health.Current)
	assert.Equal(t, 1000.0, target.Health.Current)

	tickN(s, 40)
	assert.Equal(t, 970.0, target.Health.Current)
	assert.Equal(t, 1000.0, bystander.Health.Current)
	assert.NotNil(t, target.Status.Active(combat.StatusBurned))
	assert.Equal(t, 0, s.Engine.Live())
}

func TestBoomerangReturnsAndIsCaught(t *testing.T) {
	s := newTestSim(t, nil)

	require.NoError(t, s.Cast(s.Player, "returning_disk", combat.Vec2{X: 1210, Y: 540}))
	tickN(s, 30)
	assert.Equal(t, 1, s.Engine.Live())
	tickN(s, 120)
	assert.Equal(t, 0, s.Engine.Live())
}

func TestSpiralExpires(t *testing.T) {
	s := newTestSim(t, nil)

	require.NoError(t, s.Cast(s.Player, "spiral_blast", combat.Vec2{X: 1200, Y: 540}))
	tickN(s, 30)
	assert.Equal(t, 1, s.Engine.Live())
	//1.5s lifetime
	tickN(s, 70)
	assert.Equal(t, 0, s.Engine.Live())
}

func TestOrbitingFollowsOwner(t *testing.T) {
	book := combat.DefaultSpells()
	def := book["orbiting_blades"]
	def.Trajectory.Duration = 0.5
	book["short_orbit"] = def

	s, err := combat.New(combat.Profile{
		Seed:     7,
		LogLevel: "error",
		Spells:   book,
		Player: combat.PlayerProfile{
			Name: "caster", Stats: testPlayerStats(),
			MaxHealth: 100, MaxEnergy: 50,
			Position: combat.Vec2{X: 960, Y: 540}, HitRadius: 16,
		},
	})
	require.NoError(t, err)
	s.BeginCombatPhase()

	require.NoError(t, s.Cast(s.Player, "short_orbit", combat.Vec2{X: 1000, Y: 540}))
	tickN(s, 15)
	assert.Equal(t, 1, s.Engine.Live())
	tickN(s, 25)
	assert.Equal(t, 0, s.Engine.Live())
}

func TestCastUnknownSpell(t *testing.T) {
	s := newTestSim(t, nil)
	assert.Error(t, s.Cast(s.Player, "no_such_spell", combat.Vec2{}))
}

func TestCastInvalidConfigFailsCleanly(t *testing.T) {
	book := combat.DefaultSpells()
	bad := book["piercing_bolt"]
	bad.Trajectory.PierceCount = 0
	bad.EnergyCost = 10
	book["bad_pierce"] = bad

	s, err := combat.New(combat.Profile{
		Seed:     7,
		LogLevel: "error",
		Spells:   book,
		Player: combat.PlayerProfile{
			Name: "caster", Stats: testPlayerStats(),
			MaxHealth: 100, MaxEnergy: 50,
			Position: combat.Vec2{X: 960, Y: 540}, HitRadius: 16,
		},
	})
	require.NoError(t, err)
	s.BeginCombatPhase()

	err = s.Cast(s.Player, "bad_pierce", combat.Vec2{X: 1200, Y: 540})
	require.Error(t, err)
	assert.True(t, errors.Is(err, combat.ErrInvalidProjectileConfig))

	//a failed cast costs nothing
	assert.True(t, s.SpellReady("bad_pierce"))
	assert.Equal(t, 50.0, s.Player.Energy.Current)
	assert.Equal(t, 0, s.Engine.Live())
}

func TestCastCooldown(t *testing.T) {
	s := newTestSim(t, nil)

	require.NoError(t, s.Cast(s.Player, "basic_bolt", combat.Vec2{X: 1200, Y: 540}))
	assert.False(t, s.SpellReady("basic_bolt"))
	tickN(s, 31)
	assert.True(t, s.SpellReady("basic_bolt"))
}

func TestPhaseGating(t *testing.T) {
	s, err := combat.New(combat.Profile{
		Seed:     7,
		LogLevel: "error",
		Player: combat.PlayerProfile{
			Name: "caster", Stats: testPlayerStats(),
			MaxHealth: 100, MaxEnergy: 50,
			Position: combat.Vec2{X: 960, Y: 540}, HitRadius: 16,
		},
	})
	require.NoError(t, err)

	//ticks outside a combat phase do nothing
	s.Tick()
	assert.Equal(t, 0, s.F)

	s.BeginCombatPhase()
	require.NoError(t, s.Cast(s.Player, "fireball", combat.Vec2{X: 1360, Y: 540}))
	tickN(s, 10)
	assert.Equal(t, 10, s.F)
	assert.Equal(t, 1, s.Engine.Live())

	//ending the phase freezes in-flight projectiles
	s.EndCombatPhase()
	tickN(s, 50)
	assert.Equal(t, 10, s.F)
	assert.Equal(t, 1, s.Engine.Live())

	//re-entry resumes them
	s.BeginCombatPhase()
	tickN(s, 120)
	assert.Equal(t, 0, s.Engine.Live())
}

func TestAutoCastRotation(t *testing.T) {
	s, err := combat.New(combat.Profile{
		Seed:     7,
		LogLevel: "error",
		Rotation: []string{"ice_lance if enemies >= 1", "basic_bolt"},
		Player: combat.PlayerProfile{
			Name: "caster", Stats: testPlayerStats(),
			MaxHealth: 100, MaxEnergy: 50,
			Position: combat.Vec2{X: 960, Y: 540}, HitRadius: 16,
		},
		Enemies: []combat.EnemyProfile{
			{Name: "husk", Level: 5, MaxHealth: 5000, Position: combat.Vec2{X: 1100, Y: 540}, HitRadius: 14},
		},
	})
	require.NoError(t, err)
	s.BeginCombatPhase()

	tickN(s, 120)
	stats := s.Stats()
	assert.GreaterOrEqual(t, stats.CastsBySpell["ice_lance"], 1)
	assert.GreaterOrEqual(t, stats.CastsBySpell["basic_bolt"], 1)
	assert.Greater(t, stats.TotalDamage, 0.0)
}

func TestRotationConditionBlocksCast(t *testing.T) {
	s, err := combat.New(combat.Profile{
		Seed:     7,
		LogLevel: "error",
		Rotation: []string{"fireball if energy > 100"},
		Player: combat.PlayerProfile{
			Name: "caster", Stats: testPlayerStats(),
			MaxHealth: 100, MaxEnergy: 50,
			Position: combat.Vec2{X: 960, Y: 540}, HitRadius: 16,
		},
		Enemies: []combat.EnemyProfile{
			{Name: "husk", Level: 5, MaxHealth: 100, Position: combat.Vec2{X: 1100, Y: 540}, HitRadius: 14},
		},
	})
	require.NoError(t, err)
	s.BeginCombatPhase()

	tickN(s, 60)
	assert.Equal(t, 0, s.Stats().CastsBySpell["fireball"])
}

func TestBadRotationRejectedAtNew(t *testing.T) {
	_, err := combat.New(combat.Profile{
		LogLevel: "error",
		Rotation: []string{"fireball if energy >"},
		Player: combat.PlayerProfile{
			Name: "caster", Stats: testPlayerStats(),
			MaxHealth: 100, MaxEnergy: 50,
		},
	})
	assert.Error(t, err)
}

func TestUpgradeAppliesOnCast(t *testing.T) {
	s, err := combat.New(combat.Profile{
		Seed:     7,
		LogLevel: "error",
		Upgrades: map[string]string{"fireball": "empowered"},
		Player: combat.PlayerProfile{
			Name: "caster", Stats: testPlayerStats(),
			MaxHealth: 100, MaxEnergy: 50,
			Position: combat.Vec2{X: 960, Y: 540}, HitRadius: 16,
		},
		Enemies: []combat.EnemyProfile{
			{Name: "husk", Level: 5, MaxHealth: 100, Position: combat.Vec2{X: 1060, Y: 540}, HitRadius: 12},
		},
	})
	require.NoError(t, err)
	s.BeginCombatPhase()
	e := s.Enemies[0]

	require.NoError(t, s.Cast(s.Player, "fireball", e.Pos))
	tickN(s, 40)

	//empowered fireball hits for 40 instead of 25
	assert.Equal(t, 60.0, e.Health.Current)
	assert.Equal(t, int64(2), e.Status.Active(combat.StatusBurned).Level)
}

func TestDefeatStopsFurtherDamage(t *testing.T) {
	s := newTestSim(t, []combat.EnemyProfile{
		{Name: "weak", Level: 1, MaxHealth: 10, Position: combat.Vec2{X: 1060, Y: 540}, HitRadius: 12},
	})
	e := s.Enemies[0]

	require.NoError(t, s.Cast(s.Player, "fireball", e.Pos))
	tickN(s, 40)

	assert.True(t, e.Defeated())
	assert.Equal(t, 0.0, e.Health.Current)
	assert.Equal(t, 1, s.Stats().Defeated)

	//a defeated entity is no longer a target
	require.NoError(t, s.Cast(s.Player, "ice_lance", e.Pos))
	tickN(s, 40)
	assert.Equal(t, 0.0, e.Health.Current)
	assert.Equal(t, 1, s.Stats().Defeated)
}
