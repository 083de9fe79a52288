package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haus-node/haus/pkg/models"
)

func TestNewWithDefaults_CatalogIsComplete(t *testing.T) {
	r := NewWithDefaults()

	defs := r.All()
	require.NotEmpty(t, defs)

	seen := make(map[string]bool, len(defs))

	for _, def := range defs {
		assert.NotEmpty(t, def.ID)
		assert.NotEmpty(t, def.Label, "node %s has no label", def.ID)
		assert.NotEmpty(t, def.Provider, "node %s has no provider", def.ID)
		assert.False(t, seen[def.ID], "duplicate node id %s", def.ID)
		seen[def.ID] = true

		if def.Provider != models.ProviderInternal {
			assert.NotEmpty(t, def.ProviderModel, "node %s has no provider model", def.ID)
		}
	}
}

func TestNewWithDefaults_CatalogRoster(t *testing.T) {
	r := NewWithDefaults()

	expected := []string{
		// image-gen
		"flux-pro", "flux-dev", "flux-schnell", "ideogram-v3", "recraft-v3",
		"dalle-3", "imagen-4-flash", "imagen-4",
		// video-gen
		"kling-v3", "kling-v3-i2v", "kling-2-5", "kling-2-5-i2v",
		"kling-2-5-pro", "wan-2-2", "wan-2-2-i2v", "ltx-video",
		// image-edit
		"background-remover", "image-upscaler", "inpainting", "outpainting",
		"image-to-image",
		// data/helpers
		"text-input", "number-input", "seed-input", "import", "export",
		"preview", "prompt-enhancer", "image-describer", "text-iterator",
	}

	for _, id := range expected {
		_, ok := r.Get(id)
		assert.True(t, ok, "catalog misses node %s", id)
	}

	assert.Len(t, r.All(), len(expected))
}

func TestNewWithDefaults_KnownNodes(t *testing.T) {
	r := NewWithDefaults()

	def, ok := r.Get("text-input")
	require.True(t, ok)
	assert.Equal(t, models.ProviderInternal, def.Provider)
	assert.Zero(t, def.CreditCost)

	def, ok = r.Get("prompt-enhancer")
	require.True(t, ok)
	assert.Equal(t, models.ProviderOpenAI, def.Provider)
	assert.Equal(t, 1, def.CreditCost)

	_, ok = r.Get("not-a-node")
	assert.False(t, ok)
}

func TestAll_KeepsRegistrationOrder(t *testing.T) {
	r := New()
	r.Register(&Definition{ID: "b"})
	r.Register(&Definition{ID: "a"})
	r.Register(&Definition{ID: "c"})

	defs := r.All()
	require.Len(t, defs, 3)
	assert.Equal(t, "b", defs[0].ID)
	assert.Equal(t, "a", defs[1].ID)
	assert.Equal(t, "c", defs[2].ID)
}

func TestByCategory(t *testing.T) {
	r := NewWithDefaults()

	helpers := r.ByCategory(CategoryData)
	require.NotEmpty(t, helpers)

	for _, def := range helpers {
		assert.Equal(t, CategoryData, def.Category)
	}

	assert.Empty(t, r.ByCategory(Category("no-such-category")))
}

func TestEstimateCost(t *testing.T) {
	r := New()
	r.Register(&Definition{ID: "free"})
	r.Register(&Definition{ID: "cheap", CreditCost: 2})
	r.Register(&Definition{ID: "pricey", CreditCost: 25})

	nodes := []*models.WorkflowNode{
		{ID: "n1", Type: "free"},
		{ID: "n2", Type: "cheap"},
		{ID: "n3", Type: "pricey"},
		{ID: "n4", Type: "cheap"},
		{ID: "n5", Type: "unknown"},
	}

	assert.Equal(t, 29, r.EstimateCost(nodes))
	assert.Zero(t, r.EstimateCost(nil))
}

func TestValidateEdges(t *testing.T) {
	r := New()

	valid := []*models.WorkflowEdge{
		{ID: "e1", Source: "a", SourceHandle: "text", Target: "c", TargetHandle: "prompt"},
		{ID: "e2", Source: "b", SourceHandle: "text", Target: "c", TargetHandle: "negative"},
	}
	assert.NoError(t, r.ValidateEdges(valid))

	duplicate := []*models.WorkflowEdge{
		{ID: "e1", Source: "a", SourceHandle: "text", Target: "c", TargetHandle: "prompt"},
		{ID: "e2", Source: "b", SourceHandle: "text", Target: "c", TargetHandle: "prompt"},
	}

	err := r.ValidateEdges(duplicate)
	require.ErrorIs(t, err, ErrDuplicateTargetPort)
	assert.Contains(t, err.Error(), "c.prompt")
}

func TestDefaultParameters(t *testing.T) {
	def := &Definition{
		Parameters: []Parameter{
			{ID: "steps", Type: ParameterNumber, Default: 28},
			{ID: "prompt", Type: ParameterText},
		},
	}

	params := def.DefaultParameters()
	assert.Equal(t, map[string]any{"steps": 28}, params)
}

func TestValidateParameters(t *testing.T) {
	def := &Definition{
		ID: "test-node",
		Parameters: []Parameter{
			{ID: "prompt", Type: ParameterText, Required: true},
			{ID: "steps", Type: ParameterNumber, Min: floatPtr(1), Max: floatPtr(50)},
			{ID: "style", Type: ParameterSelect, Options: []Option{
				{Label: "Vivid", Value: "vivid"},
				{Label: "Natural", Value: "natural"},
			}},
		},
	}

	assert.NoError(t, def.ValidateParameters(map[string]any{
		"prompt": "a cat",
		"steps":  28,
		"style":  "vivid",
	}))

	assert.Error(t, def.ValidateParameters(map[string]any{}), "missing required prompt")
	assert.Error(t, def.ValidateParameters(map[string]any{"prompt": "a cat", "steps": 99}))
	assert.Error(t, def.ValidateParameters(map[string]any{"prompt": "a cat", "style": "noir"}))
}

func TestParameterSchema_CoversEveryCatalogParameter(t *testing.T) {
	for _, def := range NewWithDefaults().All() {
		schema := def.ParameterSchema()

		properties, ok := schema["properties"].(map[string]any)
		require.True(t, ok, "schema of %s has no properties", def.ID)

		for _, p := range def.Parameters {
			assert.Contains(t, properties, p.ID,
				"schema of %s misses parameter %s", def.ID, p.ID)
		}
	}
}
