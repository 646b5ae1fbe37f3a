package combat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHealthDamageClamp(t *testing.T) {
	h := NewHealth(100)

	overkill, defeated := h.ApplyDamage(30)
	assert.Equal(t, 70.0, h.Current)
	assert.Equal(t, 0.0, overkill)
	assert.False(t, defeated)

	overkill, defeated = h.ApplyDamage(90)
	assert.Equal(t, 0.0, h.Current)
	assert.Equal(t, 20.0, overkill)
	assert.True(t, defeated)
}

func TestHealthAllowExceed(t *testing.T) {
	h := NewHealth(100)
	h.AllowExceed = true

	overkill, defeated := h.ApplyDamage(130)
	assert.Equal(t, -30.0, h.Current)
	assert.Equal(t, 30.0, overkill)
	assert.True(t, defeated)

	h.ApplyHeal(200)
	assert.Equal(t, 170.0, h.Current)
}

func TestHealthGodMode(t *testing.T) {
	h := NewHealth(100)
	h.GodMode = true

	overkill, defeated := h.ApplyDamage(1000)
	assert.Equal(t, 100.0, h.Current)
	assert.Equal(t, 0.0, overkill)
	assert.False(t, defeated)

	//healing still works
	h.ApplyDamage(0)
	h.ApplyHeal(10)
	assert.Equal(t, 100.0, h.Current)
}

func TestHealthHealClamp(t *testing.T) {
	h := NewHealth(100)
	h.ApplyDamage(40)
	h.ApplyHeal(100)
	assert.Equal(t, 100.0, h.Current)

	h.ApplyHeal(-5)
	assert.Equal(t, 100.0, h.Current)
}

func TestEnergyExhaustionLatch(t *testing.T) {
	e := NewEnergy(10)

	overkill, drained := e.ApplyExhaustion(15)
	assert.Equal(t, 0.0, e.Current)
	assert.Equal(t, 5.0, overkill)
	assert.True(t, drained)
	assert.True(t, e.NoEnergy)

	//already latched: further drains report no new latch
	_, drained = e.ApplyExhaustion(3)
	assert.False(t, drained)

	//boosts are ignored while latched
	assert.False(t, e.ApplyBoost(5))
	assert.Equal(t, 0.0, e.Current)
}

func TestEnergyFullRestore(t *testing.T) {
	e := NewEnergy(10)
	e.ApplyExhaustion(15)

	restored := e.FullRestore()
	assert.Equal(t, 10.0, restored)
	assert.Equal(t, 10.0, e.Current)
	assert.False(t, e.NoEnergy)

	//boosts work again, clamped at max
	e.ApplyExhaustion(4)
	assert.True(t, e.ApplyBoost(100))
	assert.Equal(t, 10.0, e.Current)
}

func TestEnergyGodMode(t *testing.T) {
	e := NewEnergy(10)
	e.GodMode = true

	overkill, drained := e.ApplyExhaustion(50)
	assert.Equal(t, 10.0, e.Current)
	assert.Equal(t, 0.0, overkill)
	assert.False(t, drained)
	assert.False(t, e.NoEnergy)
}
