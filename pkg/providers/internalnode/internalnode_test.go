package internalnode

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haus-node/haus/pkg/providers"
	"github.com/haus-node/haus/pkg/registry"
)

func execute(t *testing.T, model string, inputs map[string]any) map[string]any {
	t.Helper()

	out, err := New().Execute(context.Background(), providers.Request{
		Definition: &registry.Definition{ProviderModel: model},
		Inputs:     inputs,
	})
	require.NoError(t, err)

	return out
}

func TestText(t *testing.T) {
	out := execute(t, "internal/text", map[string]any{"value": "hello"})
	assert.Equal(t, map[string]any{"text": "hello"}, out)

	out = execute(t, "internal/text", map[string]any{})
	assert.Equal(t, map[string]any{"text": ""}, out)
}

func TestNumber(t *testing.T) {
	out := execute(t, "internal/number", map[string]any{"value": 42})
	assert.Equal(t, map[string]any{"number": 42}, out)

	out = execute(t, "internal/number", map[string]any{"value": 3.5})
	assert.Equal(t, map[string]any{"number": 3.5}, out)

	out = execute(t, "internal/number", map[string]any{})
	assert.Equal(t, map[string]any{"number": 0}, out)
}

func TestSeed_ExplicitValueKept(t *testing.T) {
	out := execute(t, "internal/seed", map[string]any{"value": 1234})
	assert.Equal(t, map[string]any{"seed": 1234}, out)
}

func TestSeed_SentinelsRoll(t *testing.T) {
	for _, value := range []any{-1, 0, nil, ""} {
		inputs := map[string]any{}
		if value != nil {
			inputs["value"] = value
		}

		out := execute(t, "internal/seed", inputs)

		seed, ok := out["seed"].(int)
		require.True(t, ok, "sentinel %v should roll a fresh int seed", value)
		assert.GreaterOrEqual(t, seed, 0)
		assert.Less(t, seed, maxSeed)
	}
}

func TestImport_FeedsBothMediaPorts(t *testing.T) {
	out := execute(t, "internal/import", map[string]any{"url": "https://cdn.example/a.png"})

	assert.Equal(t, "https://cdn.example/a.png", out["image"])
	assert.Equal(t, "https://cdn.example/a.png", out["video"])
}

func TestExport_PassesInputsThrough(t *testing.T) {
	in := map[string]any{"image": "https://cdn.example/a.png", "filename": "final"}

	out := execute(t, "internal/export", in)

	assert.Equal(t, in, out)
}

func TestPreview_PicksFirstDefinedMedia(t *testing.T) {
	out := execute(t, "internal/preview", map[string]any{"video": "https://cdn.example/v.mp4"})
	assert.Equal(t, map[string]any{"media": "https://cdn.example/v.mp4"}, out)

	out = execute(t, "internal/preview", map[string]any{
		"media": "direct",
		"image": "ignored",
	})
	assert.Equal(t, map[string]any{"media": "direct"}, out)

	out = execute(t, "internal/preview", map[string]any{})
	assert.Equal(t, map[string]any{"media": nil}, out)
}

func TestTextIterator_ExposesItems(t *testing.T) {
	out := execute(t, "internal/text-iterator", map[string]any{"items": "a cat\na dog"})
	assert.Equal(t, map[string]any{"text": "a cat\na dog"}, out)
}

func TestUnknownModelPassesThrough(t *testing.T) {
	in := map[string]any{"anything": true}

	out := execute(t, "internal/other", in)

	assert.Equal(t, in, out)
}
