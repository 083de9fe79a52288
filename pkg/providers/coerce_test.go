package providers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoerceInputs_NumericStrings(t *testing.T) {
	out := CoerceInputs(map[string]any{
		"steps":    "28",
		"guidance": "3.5",
		"negative": "-4",
		"prompt":   "take 5 cats",
		"empty":    "",
	})

	assert.Equal(t, 28, out["steps"])
	assert.InDelta(t, 3.5, out["guidance"], 0.001)
	assert.Equal(t, -4, out["negative"])
	// Free text with digits inside stays a string.
	assert.Equal(t, "take 5 cats", out["prompt"])
	assert.Equal(t, "", out["empty"])
}

func TestCoerceInputs_SeedSentinelIsRolled(t *testing.T) {
	for range 50 {
		out := CoerceInputs(map[string]any{"seed": -1})

		seed, ok := out["seed"].(int)
		require.True(t, ok)
		assert.GreaterOrEqual(t, seed, 0)
		assert.Less(t, seed, maxSeed)
	}
}

func TestCoerceInputs_SeedSentinelAsString(t *testing.T) {
	// "-1" coerces to -1 first, then triggers the roll.
	out := CoerceInputs(map[string]any{"seed": "-1"})

	seed, ok := out["seed"].(int)
	require.True(t, ok)
	assert.GreaterOrEqual(t, seed, 0)
}

func TestCoerceInputs_ExplicitSeedKept(t *testing.T) {
	out := CoerceInputs(map[string]any{"seed": 42})
	assert.Equal(t, 42, out["seed"])

	out = CoerceInputs(map[string]any{"seed": 0})
	assert.Equal(t, 0, out["seed"])
}

func TestCoerceInputs_SentinelOnOtherKeysUntouched(t *testing.T) {
	out := CoerceInputs(map[string]any{"offset": -1})
	assert.Equal(t, -1, out["offset"])
}

func TestCoerceInputs_DoesNotMutateInput(t *testing.T) {
	in := map[string]any{"steps": "28"}

	CoerceInputs(in)

	assert.Equal(t, "28", in["steps"])
}
