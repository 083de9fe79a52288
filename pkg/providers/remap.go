package providers

import (
	"strings"

	"github.com/haus-node/haus/pkg/models"
)

// portRemap renames one canonical graph port to a provider field name. The
// rename is conditional: if the caller already supplied the target field
// explicitly, the canonical key is dropped rather than overwriting it.
type portRemap struct {
	from string
	to   string
	// applies narrows the rule to specific models; nil means all models of
	// the provider.
	applies func(model string) bool
}

// fal uses *_url field names, and Kling v3 image-to-video is the one model
// that takes start_image_url instead of image_url.
var remapRules = map[models.Provider][]portRemap{
	models.ProviderFal: {
		{from: "image", to: "start_image_url", applies: func(model string) bool {
			return strings.Contains(model, "kling-video/v3") && strings.Contains(model, "image-to-video")
		}},
		{from: "image", to: "image_url"},
		{from: "mask", to: "mask_url"},
	},
	models.ProviderReplicate: {
		{from: "image", to: "image"},
		{from: "mask", to: "mask"},
	},
}

// RemapPorts translates canonical port names into the provider's actual
// field names. Rules are tried in order; the first applicable rule for a
// key wins.
func RemapPorts(provider models.Provider, model string, inputs map[string]any) map[string]any {
	rules := remapRules[provider]
	if len(rules) == 0 {
		return inputs
	}

	out := make(map[string]any, len(inputs))

	for key, value := range inputs {
		target := key

		for _, rule := range rules {
			if rule.from != key {
				continue
			}

			if rule.applies != nil && !rule.applies(model) {
				continue
			}

			target = rule.to

			break
		}

		if target != key {
			if _, explicit := inputs[target]; explicit {
				continue
			}
		}

		out[target] = value
	}

	return out
}
