package providers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haus-node/haus/pkg/models"
	"github.com/haus-node/haus/pkg/registry"
)

type captureAdapter struct {
	got Request
}

func (a *captureAdapter) Execute(ctx context.Context, req Request) (map[string]any, error) {
	a.got = req

	return map[string]any{"ok": true}, nil
}

func TestRegistryExecute_AppliesPipelineBeforeDispatch(t *testing.T) {
	capture := &captureAdapter{}

	reg := NewRegistry()
	reg.Register(models.ProviderFal, capture)

	def := &registry.Definition{
		ID:            "flux-dev",
		Provider:      models.ProviderFal,
		ProviderModel: "fal-ai/flux/dev",
	}

	out, err := reg.Execute(context.Background(), def, map[string]any{
		"steps": "28",
		"image": "https://cdn.example/in.png",
	})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"ok": true}, out)

	// Coercion and remapping both ran before the adapter saw the inputs.
	assert.Equal(t, 28, capture.got.Inputs["steps"])
	assert.Equal(t, "https://cdn.example/in.png", capture.got.Inputs["image_url"])
	assert.NotContains(t, capture.got.Inputs, "image")
	assert.Same(t, def, capture.got.Definition)
}

func TestRegistryExecute_UnknownProvider(t *testing.T) {
	reg := NewRegistry()

	_, err := reg.Execute(context.Background(), &registry.Definition{
		Provider: models.ProviderGemini,
	}, nil)

	require.ErrorIs(t, err, ErrUnknownProvider)
	assert.Contains(t, err.Error(), "gemini")
}
