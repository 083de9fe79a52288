package providers

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/haus-node/haus/pkg/models"
)

func TestRemapPorts_FalImageBecomesImageURL(t *testing.T) {
	out := RemapPorts(models.ProviderFal, "fal-ai/flux/dev", map[string]any{
		"image":  "https://cdn.example/in.png",
		"prompt": "a cat",
	})

	assert.Equal(t, "https://cdn.example/in.png", out["image_url"])
	assert.Equal(t, "a cat", out["prompt"])
	assert.NotContains(t, out, "image")
}

func TestRemapPorts_KlingV3ImageToVideoUsesStartImage(t *testing.T) {
	out := RemapPorts(models.ProviderFal, "fal-ai/kling-video/v3/pro/image-to-video", map[string]any{
		"image": "https://cdn.example/frame.png",
	})

	assert.Equal(t, "https://cdn.example/frame.png", out["start_image_url"])
	assert.NotContains(t, out, "image_url")
	assert.NotContains(t, out, "image")
}

func TestRemapPorts_KlingV3TextToVideoUsesPlainImageURL(t *testing.T) {
	out := RemapPorts(models.ProviderFal, "fal-ai/kling-video/v3/pro/text-to-video", map[string]any{
		"image": "https://cdn.example/ref.png",
	})

	assert.Equal(t, "https://cdn.example/ref.png", out["image_url"])
	assert.NotContains(t, out, "start_image_url")
}

func TestRemapPorts_MaskBecomesMaskURL(t *testing.T) {
	out := RemapPorts(models.ProviderFal, "fal-ai/flux/dev/inpaint", map[string]any{
		"mask": "https://cdn.example/mask.png",
	})

	assert.Equal(t, "https://cdn.example/mask.png", out["mask_url"])
	assert.NotContains(t, out, "mask")
}

func TestRemapPorts_ExplicitTargetIsNotOverwritten(t *testing.T) {
	out := RemapPorts(models.ProviderFal, "fal-ai/flux/dev", map[string]any{
		"image":     "from the graph",
		"image_url": "explicitly set",
	})

	assert.Equal(t, "explicitly set", out["image_url"])
	assert.NotContains(t, out, "image")
}

func TestRemapPorts_ReplicateKeepsCanonicalNames(t *testing.T) {
	in := map[string]any{
		"image": "https://cdn.example/in.png",
		"mask":  "https://cdn.example/mask.png",
	}

	out := RemapPorts(models.ProviderReplicate, "black-forest-labs/flux-dev", in)

	assert.Equal(t, in, out)
}

func TestRemapPorts_ProvidersWithoutRulesPassThrough(t *testing.T) {
	in := map[string]any{"image": "https://cdn.example/in.png"}

	out := RemapPorts(models.ProviderOpenAI, "dall-e-3", in)

	assert.Equal(t, in, out)
}
