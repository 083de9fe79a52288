package registry

import "github.com/haus-node/haus/pkg/models"

// helperNodes are the free data/helper nodes: value sources, import/export,
// preview, and the OpenAI-backed text utilities.
func helperNodes() []*Definition {
	return []*Definition{
		{
			ID:          "text-input",
			Label:       "Text",
			Description: "A text value to use as input to other nodes",
			Category:    CategoryData,
			Color:       "#374151",
			Outputs: []Port{
				{ID: "text", Label: "Text", Type: models.PortTypeText},
			},
			Parameters: []Parameter{
				{ID: "value", Label: "Text", Type: ParameterText, Multiline: true, Placeholder: "Enter text..."},
			},
			CreditCost:    0,
			Provider:      models.ProviderInternal,
			ProviderModel: "internal/text",
			Tags:          []string{"helper", "input"},
		},
		{
			ID:          "number-input",
			Label:       "Number",
			Description: "A numeric value",
			Category:    CategoryData,
			Color:       "#374151",
			Outputs: []Port{
				{ID: "number", Label: "Number", Type: models.PortTypeNumber},
			},
			Parameters: []Parameter{
				{ID: "value", Label: "Value", Type: ParameterNumber, Default: 0},
			},
			CreditCost:    0,
			Provider:      models.ProviderInternal,
			ProviderModel: "internal/number",
			Tags:          []string{"helper", "input"},
		},
		{
			ID:          "seed-input",
			Label:       "Seed",
			Description: "A seed value for reproducible generation",
			Category:    CategoryData,
			Color:       "#374151",
			Outputs: []Port{
				{ID: "seed", Label: "Seed", Type: models.PortTypeSeed},
			},
			Parameters: []Parameter{
				{ID: "value", Label: "Seed (-1 = random)", Type: ParameterNumber, Default: -1},
			},
			CreditCost:    0,
			Provider:      models.ProviderInternal,
			ProviderModel: "internal/seed",
			Tags:          []string{"helper", "seed"},
		},
		{
			ID:          "import",
			Label:       "Import",
			Description: "Import an image, video or audio from file or URL",
			Category:    CategoryHelper,
			Color:       "#1F2937",
			Outputs: []Port{
				{ID: "image", Label: "Image", Type: models.PortTypeImage},
				{ID: "video", Label: "Video", Type: models.PortTypeVideo},
				{ID: "audio", Label: "Audio", Type: models.PortTypeAudio},
			},
			Parameters: []Parameter{
				{ID: "url", Label: "File or URL", Type: ParameterFile, Accept: "image/*,video/*,audio/*", Placeholder: "https://..."},
			},
			CreditCost:    0,
			Provider:      models.ProviderInternal,
			ProviderModel: "internal/import",
			Tags:          []string{"helper", "import", "input"},
		},
		{
			ID:          "export",
			Label:       "Export",
			Description: "Export/download the final output",
			Category:    CategoryHelper,
			Color:       "#1F2937",
			Inputs: []Port{
				{ID: "image", Label: "Image", Type: models.PortTypeImage},
				{ID: "video", Label: "Video", Type: models.PortTypeVideo},
				{ID: "audio", Label: "Audio", Type: models.PortTypeAudio},
			},
			Parameters: []Parameter{
				{ID: "filename", Label: "Filename", Type: ParameterText, Placeholder: "output"},
				{ID: "format", Label: "Format", Type: ParameterSelect, Default: "png", Options: []Option{
					{Label: "PNG", Value: "png"},
					{Label: "JPEG", Value: "jpg"},
					{Label: "WebP", Value: "webp"},
					{Label: "MP4", Value: "mp4"},
				}},
			},
			CreditCost:    0,
			Provider:      models.ProviderInternal,
			ProviderModel: "internal/export",
			Tags:          []string{"helper", "export", "output"},
		},
		{
			ID:          "preview",
			Label:       "Preview",
			Description: "Preview any media inline on the canvas",
			Category:    CategoryHelper,
			Color:       "#111827",
			Inputs: []Port{
				{ID: "media", Label: "Media", Type: models.PortTypeAny, Required: true},
			},
			// The media output re-exposes the received value so the
			// frontend merges it into the node and renders it.
			Outputs: []Port{
				{ID: "media", Label: "Preview", Type: models.PortTypeAny},
			},
			CreditCost:    0,
			Provider:      models.ProviderInternal,
			ProviderModel: "internal/preview",
			Tags:          []string{"helper", "preview"},
		},
		{
			ID:          "prompt-enhancer",
			Label:       "Prompt Enhancer",
			Description: "Use GPT-4o to improve and expand a prompt",
			Category:    CategoryText,
			Color:       "#065F46",
			Inputs: []Port{
				{ID: "text", Label: "Raw Prompt", Type: models.PortTypeText, Required: true},
			},
			Outputs: []Port{
				{ID: "text", Label: "Enhanced Prompt", Type: models.PortTypeText},
			},
			Parameters: []Parameter{
				{ID: "style", Label: "Enhancement Style", Type: ParameterSelect, Default: "detailed", Options: []Option{
					{Label: "Detailed", Value: "detailed"},
					{Label: "Cinematic", Value: "cinematic"},
					{Label: "Artistic", Value: "artistic"},
					{Label: "Photography", Value: "photography"},
					{Label: "Minimal", Value: "minimal"},
				}},
			},
			CreditCost:    1,
			Provider:      models.ProviderOpenAI,
			ProviderModel: "gpt-4o-mini",
			Tags:          []string{"text", "prompt", "llm"},
		},
		{
			ID:          "image-describer",
			Label:       "Image Describer",
			Description: "Generate a text description of an image using GPT-4o Vision",
			Category:    CategoryText,
			Color:       "#064E3B",
			Inputs: []Port{
				{ID: "image", Label: "Image", Type: models.PortTypeImage, Required: true},
			},
			Outputs: []Port{
				{ID: "text", Label: "Description", Type: models.PortTypeText},
			},
			Parameters: []Parameter{
				{ID: "style", Label: "Description Style", Type: ParameterSelect, Default: "prompt", Options: []Option{
					{Label: "As image prompt", Value: "prompt"},
					{Label: "Descriptive", Value: "descriptive"},
					{Label: "Technical", Value: "technical"},
				}},
			},
			CreditCost:    2,
			Provider:      models.ProviderOpenAI,
			ProviderModel: "gpt-4o",
			Tags:          []string{"text", "vision", "llm"},
		},
		{
			ID:          "text-iterator",
			Label:       "Text Iterator",
			Description: "Batch run a workflow for each item in a text list",
			Category:    CategoryData,
			Color:       "#1E3A5F",
			Outputs: []Port{
				{ID: "text", Label: "Current Text", Type: models.PortTypeText},
			},
			Parameters: []Parameter{
				{ID: "items", Label: "Items (one per line)", Type: ParameterText, Multiline: true,
					Placeholder: "a cat in space\na dog on the moon\na robot in a forest"},
			},
			CreditCost:    0,
			Provider:      models.ProviderInternal,
			ProviderModel: "internal/text-iterator",
			Tags:          []string{"iterator", "batch", "data"},
		},
	}
}
