package combat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingListener struct {
	NopListener
	healthChanges int
	energyChanges int
	defeats       []string
	lastOverkill  float64
	exhausted     []string
	restored      float64
	restores      int
}

func (r *recordingListener) HealthChanged(e *CombatEntity, current, max float64) {
	r.healthChanges++
}

func (r *recordingListener) Defeated(e *CombatEntity, overkill float64) {
	r.defeats = append(r.defeats, e.Name)
	r.lastOverkill = overkill
}

func (r *recordingListener) Exhausted(e *CombatEntity, overkill float64) {
	r.exhausted = append(r.exhausted, e.Name)
	r.lastOverkill = overkill
}

func (r *recordingListener) EnergyChanged(e *CombatEntity, current, max float64) {
	r.energyChanges++
}

func (r *recordingListener) EnergyRestored(e *CombatEntity, amount float64) {
	r.restored = amount
	r.restores++
}

func TestDefeatNotification(t *testing.T) {
	s, err := New(statusTestProfile())
	require.NoError(t, err)

	rec := &recordingListener{}
	s.AddListener(rec)

	e := s.Enemies[0]
	e.applyDamage(400, DamagePhysical)
	assert.Equal(t, 1, rec.healthChanges)
	assert.Empty(t, rec.defeats)

	e.applyDamage(700, DamagePhysical)
	assert.Equal(t, []string{"target"}, rec.defeats)
	assert.Equal(t, 100.0, rec.lastOverkill)

	//a defeated entity takes no further damage and fires no more events
	e.applyDamage(50, DamagePhysical)
	assert.Equal(t, 2, rec.healthChanges)
}

func TestExhaustionNotification(t *testing.T) {
	p := statusTestProfile()
	p.Player.MaxEnergy = 10
	s, err := New(p)
	require.NoError(t, err)

	rec := &recordingListener{}
	s.AddListener(rec)

	s.Player.ApplyExhaustion(15)
	assert.Equal(t, []string{"caster"}, rec.exhausted)
	assert.Equal(t, 5.0, rec.lastOverkill)
	assert.True(t, s.Player.Energy.NoEnergy)

	//boost while latched does nothing and notifies nothing
	s.Player.ApplyEnergyBoost(5)
	assert.Equal(t, 0.0, s.Player.Energy.Current)

	s.Player.RestoreEnergy()
	assert.Equal(t, 10.0, rec.restored)
	assert.Equal(t, 1, rec.restores)
	assert.False(t, s.Player.Energy.NoEnergy)

	//restoring an already full pool is silent
	before := rec.energyChanges
	s.Player.RestoreEnergy()
	assert.Equal(t, 1, rec.restores)
	assert.Equal(t, before, rec.energyChanges)
}
