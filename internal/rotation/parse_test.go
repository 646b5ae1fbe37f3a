package rotation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePlain(t *testing.T) {
	e, err := Parse("fireball")
	require.NoError(t, err)
	assert.Equal(t, "fireball", e.SpellID)
	assert.Empty(t, e.Conds)
}

func TestParseCondition(t *testing.T) {
	e, err := Parse("chain_spark if enemies >= 3")
	require.NoError(t, err)
	assert.Equal(t, "chain_spark", e.SpellID)
	require.Len(t, e.Conds, 1)
	assert.Equal(t, Condition{Field: "enemies", Op: ">=", Value: 3}, e.Conds[0])
}

func TestParseMultipleConditions(t *testing.T) {
	e, err := Parse("meteor_shard if energy > 40 && enemies >= 2")
	require.NoError(t, err)
	require.Len(t, e.Conds, 2)
	assert.Equal(t, "energy", e.Conds[0].Field)
	assert.Equal(t, "enemies", e.Conds[1].Field)
}

func TestParseErrors(t *testing.T) {
	bad := []string{
		"",
		"3fireball and stuff",
		"fireball energy > 3",
		"fireball if energy",
		"fireball if energy >",
		"fireball if energy > 3 enemies > 1",
		"fireball if energy ? 3",
	}
	for _, line := range bad {
		_, err := Parse(line)
		assert.Error(t, err, "line %q", line)
	}
}

func TestParseAll(t *testing.T) {
	out, err := ParseAll([]string{"a", "b if health < 20"})
	require.NoError(t, err)
	assert.Len(t, out, 2)

	_, err = ParseAll([]string{"a", "if if if"})
	assert.Error(t, err)
}

func TestEntryReady(t *testing.T) {
	env := func(field string) (float64, bool) {
		switch field {
		case "energy":
			return 30, true
		case "enemies":
			return 2, true
		}
		return 0, false
	}

	e, err := Parse("x if energy > 20 && enemies >= 2")
	require.NoError(t, err)
	assert.True(t, e.Ready(env))

	e, err = Parse("x if energy > 40")
	require.NoError(t, err)
	assert.False(t, e.Ready(env))

	//unknown field fails the entry
	e, err = Parse("x if mana > 1")
	require.NoError(t, err)
	assert.False(t, e.Ready(env))

	//no conditions is always ready
	e, err = Parse("x")
	require.NoError(t, err)
	assert.True(t, e.Ready(env))
}
