package registry

import "github.com/haus-node/haus/pkg/models"

// imageGenNodes are the text-to-image generators across fal, OpenAI and
// Gemini backends.
func imageGenNodes() []*Definition {
	return []*Definition{
		{
			ID:          "flux-pro",
			Label:       "Flux Pro",
			Description: "High-quality image generation with Flux Pro 1.1",
			Category:    CategoryImageGen,
			Color:       "#7C3AED",
			Inputs: []Port{
				{ID: "prompt", Label: "Prompt", Type: models.PortTypeText},
			},
			Outputs: []Port{
				{ID: "image", Label: "Image", Type: models.PortTypeImage},
			},
			Parameters: []Parameter{
				{ID: "prompt", Label: "Prompt", Type: ParameterText, Multiline: true, Required: true,
					Placeholder: "Describe the image you want to create..."},
				{ID: "negative_prompt", Label: "Negative Prompt", Type: ParameterText, Multiline: true,
					Placeholder: "What to avoid in the image..."},
				{ID: "image_size", Label: "Image Size", Type: ParameterSelect, Default: "landscape_4_3", Options: []Option{
					{Label: "Square (1:1)", Value: "square"},
					{Label: "Square HD", Value: "square_hd"},
					{Label: "Portrait 3:4", Value: "portrait_4_3"},
					{Label: "Portrait 9:16", Value: "portrait_16_9"},
					{Label: "Landscape 4:3", Value: "landscape_4_3"},
					{Label: "Landscape 16:9", Value: "landscape_16_9"},
				}},
				{ID: "num_inference_steps", Label: "Steps", Type: ParameterSlider, Default: 28,
					Min: floatPtr(1), Max: floatPtr(50), Step: floatPtr(1)},
				{ID: "guidance_scale", Label: "Guidance Scale", Type: ParameterSlider, Default: 3.5,
					Min: floatPtr(1), Max: floatPtr(20), Step: floatPtr(0.5)},
				{ID: "seed", Label: "Seed", Type: ParameterNumber, Default: -1, Description: "-1 for random"},
				{ID: "num_images", Label: "Number of Images", Type: ParameterSelect, Default: "1", Options: []Option{
					{Label: "1", Value: "1"},
					{Label: "2", Value: "2"},
					{Label: "4", Value: "4"},
				}},
			},
			CreditCost:    4,
			Provider:      models.ProviderFal,
			ProviderModel: "fal-ai/flux-pro/v1.1",
			Tags:          []string{"flux", "text-to-image", "premium"},
		},
		{
			ID:          "flux-dev",
			Label:       "Flux Dev",
			Description: "Fast image generation with Flux Dev — great for iteration",
			Category:    CategoryImageGen,
			Color:       "#6D28D9",
			Inputs: []Port{
				{ID: "prompt", Label: "Prompt", Type: models.PortTypeText},
				{ID: "image", Label: "Reference Image", Type: models.PortTypeImage},
			},
			Outputs: []Port{
				{ID: "image", Label: "Image", Type: models.PortTypeImage},
			},
			Parameters: []Parameter{
				{ID: "prompt", Label: "Prompt", Type: ParameterText, Multiline: true, Required: true,
					Placeholder: "Describe the image..."},
				{ID: "image_size", Label: "Image Size", Type: ParameterSelect, Default: "landscape_4_3", Options: []Option{
					{Label: "Square (1:1)", Value: "square"},
					{Label: "Square HD", Value: "square_hd"},
					{Label: "Portrait 3:4", Value: "portrait_4_3"},
					{Label: "Landscape 4:3", Value: "landscape_4_3"},
					{Label: "Landscape 16:9", Value: "landscape_16_9"},
				}},
				{ID: "num_inference_steps", Label: "Steps", Type: ParameterSlider, Default: 28,
					Min: floatPtr(1), Max: floatPtr(50), Step: floatPtr(1)},
				{ID: "guidance_scale", Label: "Guidance Scale", Type: ParameterSlider, Default: 3.5,
					Min: floatPtr(1), Max: floatPtr(20), Step: floatPtr(0.5)},
				{ID: "seed", Label: "Seed", Type: ParameterNumber, Default: -1, Description: "-1 for random"},
			},
			CreditCost:    2,
			Provider:      models.ProviderFal,
			ProviderModel: "fal-ai/flux/dev",
			Tags:          []string{"flux", "text-to-image", "fast"},
		},
		{
			ID:          "flux-schnell",
			Label:       "Flux Schnell",
			Description: "Fastest Flux variant — draft quality in a second",
			Category:    CategoryImageGen,
			Color:       "#5B21B6",
			Inputs: []Port{
				{ID: "prompt", Label: "Prompt", Type: models.PortTypeText},
			},
			Outputs: []Port{
				{ID: "image", Label: "Image", Type: models.PortTypeImage},
			},
			Parameters: []Parameter{
				{ID: "prompt", Label: "Prompt", Type: ParameterText, Multiline: true, Required: true},
				{ID: "image_size", Label: "Image Size", Type: ParameterSelect, Default: "landscape_4_3", Options: []Option{
					{Label: "Square (1:1)", Value: "square"},
					{Label: "Square HD", Value: "square_hd"},
					{Label: "Landscape 4:3", Value: "landscape_4_3"},
					{Label: "Landscape 16:9", Value: "landscape_16_9"},
				}},
				{ID: "num_inference_steps", Label: "Steps", Type: ParameterSlider, Default: 4,
					Min: floatPtr(1), Max: floatPtr(12), Step: floatPtr(1)},
				{ID: "seed", Label: "Seed", Type: ParameterNumber, Default: -1, Description: "-1 for random"},
				{ID: "num_images", Label: "Number of Images", Type: ParameterSelect, Default: "1", Options: []Option{
					{Label: "1", Value: "1"},
					{Label: "2", Value: "2"},
					{Label: "4", Value: "4"},
				}},
			},
			CreditCost:    1,
			Provider:      models.ProviderFal,
			ProviderModel: "fal-ai/flux/schnell",
			Tags:          []string{"flux", "text-to-image", "fast"},
		},
		{
			ID:          "ideogram-v3",
			Label:       "Ideogram V3",
			Description: "Best-in-class text rendering in images",
			Category:    CategoryImageGen,
			Color:       "#DC2626",
			Inputs: []Port{
				{ID: "prompt", Label: "Prompt", Type: models.PortTypeText},
			},
			Outputs: []Port{
				{ID: "image", Label: "Image", Type: models.PortTypeImage},
			},
			Parameters: []Parameter{
				{ID: "prompt", Label: "Prompt", Type: ParameterText, Multiline: true, Required: true,
					Placeholder: "Describe your image, include text you want rendered..."},
				{ID: "negative_prompt", Label: "Negative Prompt", Type: ParameterText, Multiline: true},
				{ID: "image_size", Label: "Image Size", Type: ParameterSelect, Default: "square_hd", Options: []Option{
					{Label: "Square HD (1:1)", Value: "square_hd"},
					{Label: "Square (1:1)", Value: "square"},
					{Label: "Landscape 16:9", Value: "landscape_16_9"},
					{Label: "Landscape 4:3", Value: "landscape_4_3"},
					{Label: "Portrait 9:16", Value: "portrait_16_9"},
					{Label: "Portrait 3:4", Value: "portrait_4_3"},
				}},
				{ID: "style", Label: "Style", Type: ParameterSelect, Default: "AUTO", Options: []Option{
					{Label: "Auto", Value: "AUTO"},
					{Label: "General", Value: "GENERAL"},
					{Label: "Realistic", Value: "REALISTIC"},
					{Label: "Design", Value: "DESIGN"},
				}},
				{ID: "rendering_speed", Label: "Quality", Type: ParameterSelect, Default: "BALANCED", Options: []Option{
					{Label: "Turbo (fast)", Value: "TURBO"},
					{Label: "Balanced", Value: "BALANCED"},
					{Label: "Quality (best)", Value: "QUALITY"},
				}},
				{ID: "seed", Label: "Seed", Type: ParameterNumber, Default: -1, Description: "-1 for random"},
			},
			CreditCost:    6,
			Provider:      models.ProviderFal,
			ProviderModel: "fal-ai/ideogram/v3",
			Tags:          []string{"ideogram", "text-rendering", "design"},
		},
		{
			ID:          "recraft-v3",
			Label:       "Recraft V3",
			Description: "State-of-the-art image generation with style control",
			Category:    CategoryImageGen,
			Color:       "#0891B2",
			Inputs: []Port{
				{ID: "prompt", Label: "Prompt", Type: models.PortTypeText},
			},
			Outputs: []Port{
				{ID: "image", Label: "Image", Type: models.PortTypeImage},
			},
			Parameters: []Parameter{
				{ID: "prompt", Label: "Prompt", Type: ParameterText, Multiline: true, Required: true},
				{ID: "style", Label: "Style", Type: ParameterSelect, Default: "realistic_image", Options: []Option{
					{Label: "Realistic Image", Value: "realistic_image"},
					{Label: "Digital Illustration", Value: "digital_illustration"},
					{Label: "Vector Illustration", Value: "vector_illustration"},
					{Label: "Realistic Image (B&W)", Value: "realistic_image/b_and_w"},
					{Label: "Realistic Image (Hard Flash)", Value: "realistic_image/hard_flash"},
				}},
				{ID: "image_size", Label: "Image Size", Type: ParameterSelect, Default: "landscape_16_9", Options: []Option{
					{Label: "Square HD (1:1)", Value: "square_hd"},
					{Label: "Square (1:1)", Value: "square"},
					{Label: "Landscape 16:9", Value: "landscape_16_9"},
					{Label: "Landscape 4:3", Value: "landscape_4_3"},
					{Label: "Portrait 9:16", Value: "portrait_16_9"},
					{Label: "Portrait 3:4", Value: "portrait_4_3"},
				}},
			},
			CreditCost:    4,
			Provider:      models.ProviderFal,
			ProviderModel: "fal-ai/recraft-v3",
			Tags:          []string{"recraft", "text-to-image", "style"},
		},
		{
			ID:          "dalle-3",
			Label:       "DALL·E 3",
			Description: "OpenAI DALL·E 3 image generation",
			Category:    CategoryImageGen,
			Color:       "#0F766E",
			Inputs: []Port{
				{ID: "prompt", Label: "Prompt", Type: models.PortTypeText},
			},
			Outputs: []Port{
				{ID: "image", Label: "Image", Type: models.PortTypeImage},
			},
			Parameters: []Parameter{
				{ID: "prompt", Label: "Prompt", Type: ParameterText, Multiline: true, Required: true},
				{ID: "size", Label: "Size", Type: ParameterSelect, Default: "1024x1024", Options: []Option{
					{Label: "Square 1024", Value: "1024x1024"},
					{Label: "Landscape 1792×1024", Value: "1792x1024"},
					{Label: "Portrait 1024×1792", Value: "1024x1792"},
				}},
				{ID: "quality", Label: "Quality", Type: ParameterSelect, Default: "standard", Options: []Option{
					{Label: "Standard", Value: "standard"},
					{Label: "HD", Value: "hd"},
				}},
				{ID: "style", Label: "Style", Type: ParameterSelect, Default: "vivid", Options: []Option{
					{Label: "Vivid", Value: "vivid"},
					{Label: "Natural", Value: "natural"},
				}},
			},
			CreditCost:    8,
			Provider:      models.ProviderOpenAI,
			ProviderModel: "dall-e-3",
			Tags:          []string{"dalle", "text-to-image"},
		},
		{
			ID:          "imagen-4-flash",
			Label:       "Imagen 4 Flash",
			Description: "Google Imagen 4 fast variant",
			Category:    CategoryImageGen,
			Color:       "#1D4ED8",
			Inputs: []Port{
				{ID: "prompt", Label: "Prompt", Type: models.PortTypeText},
			},
			Outputs: []Port{
				{ID: "image", Label: "Image", Type: models.PortTypeImage},
			},
			Parameters: []Parameter{
				{ID: "prompt", Label: "Prompt", Type: ParameterText, Multiline: true, Required: true},
				{ID: "aspectRatio", Label: "Aspect Ratio", Type: ParameterSelect, Default: "1:1", Options: []Option{
					{Label: "Square (1:1)", Value: "1:1"},
					{Label: "Portrait (3:4)", Value: "3:4"},
					{Label: "Landscape (4:3)", Value: "4:3"},
					{Label: "Portrait (9:16)", Value: "9:16"},
					{Label: "Landscape (16:9)", Value: "16:9"},
				}},
				{ID: "sampleCount", Label: "Images", Type: ParameterSlider, Default: 1,
					Min: floatPtr(1), Max: floatPtr(4), Step: floatPtr(1)},
			},
			CreditCost:    3,
			Provider:      models.ProviderGemini,
			ProviderModel: "imagen-4.0-fast-generate-001",
			Tags:          []string{"imagen", "text-to-image", "fast"},
		},
		{
			ID:          "imagen-4",
			Label:       "Imagen 4",
			Description: "Google Imagen 4 image generation",
			Category:    CategoryImageGen,
			Color:       "#1E40AF",
			Inputs: []Port{
				{ID: "prompt", Label: "Prompt", Type: models.PortTypeText},
			},
			Outputs: []Port{
				{ID: "image", Label: "Image", Type: models.PortTypeImage},
			},
			Parameters: []Parameter{
				{ID: "prompt", Label: "Prompt", Type: ParameterText, Multiline: true, Required: true},
				{ID: "aspectRatio", Label: "Aspect Ratio", Type: ParameterSelect, Default: "1:1", Options: []Option{
					{Label: "Square (1:1)", Value: "1:1"},
					{Label: "Portrait (3:4)", Value: "3:4"},
					{Label: "Landscape (4:3)", Value: "4:3"},
					{Label: "Portrait (9:16)", Value: "9:16"},
					{Label: "Landscape (16:9)", Value: "16:9"},
				}},
				{ID: "sampleCount", Label: "Images", Type: ParameterSlider, Default: 1,
					Min: floatPtr(1), Max: floatPtr(4), Step: floatPtr(1)},
			},
			CreditCost:    5,
			Provider:      models.ProviderGemini,
			ProviderModel: "imagen-4.0-generate-001",
			Tags:          []string{"imagen", "text-to-image"},
		},
	}
}
