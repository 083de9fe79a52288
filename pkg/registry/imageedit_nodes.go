package registry

import "github.com/haus-node/haus/pkg/models"

// imageEditNodes transform an existing image: background removal, upscaling
// and masked inpainting.
func imageEditNodes() []*Definition {
	return []*Definition{
		{
			ID:          "background-remover",
			Label:       "Background Remover",
			Description: "Remove background from images with AI precision",
			Category:    CategoryImageEdit,
			Color:       "#0369A1",
			Inputs: []Port{
				{ID: "image", Label: "Input Image", Type: models.PortTypeImage, Required: true},
			},
			Outputs: []Port{
				{ID: "image", Label: "Image (no bg)", Type: models.PortTypeImage},
			},
			Parameters: []Parameter{
				{ID: "model", Label: "Model", Type: ParameterSelect, Default: "bria", Options: []Option{
					{Label: "Bria RMBG (Best Quality)", Value: "bria"},
					{Label: "BiRefNet (Fast)", Value: "birefnet"},
				}},
			},
			CreditCost:    2,
			Provider:      models.ProviderFal,
			ProviderModel: "fal-ai/bria/background/remove",
			Tags:          []string{"background", "remove", "edit"},
		},
		{
			ID:          "image-upscaler",
			Label:       "Image Upscaler",
			Description: "Upscale images up to 4x with AI enhancement",
			Category:    CategoryImageEdit,
			Color:       "#0284C7",
			Inputs: []Port{
				{ID: "image", Label: "Input Image", Type: models.PortTypeImage, Required: true},
			},
			Outputs: []Port{
				{ID: "image", Label: "Upscaled Image", Type: models.PortTypeImage},
			},
			Parameters: []Parameter{
				{ID: "model", Label: "Upscale Model", Type: ParameterSelect, Default: "esrgan", Options: []Option{
					{Label: "Real-ESRGAN (General)", Value: "esrgan"},
					{Label: "Real-ESRGAN (Anime)", Value: "esrgan-anime"},
					{Label: "Clarity Upscaler", Value: "clarity"},
				}},
				{ID: "scale", Label: "Scale Factor", Type: ParameterSelect, Default: "2", Options: []Option{
					{Label: "2x", Value: "2"},
					{Label: "4x", Value: "4"},
				}},
			},
			CreditCost:    3,
			Provider:      models.ProviderFal,
			ProviderModel: "fal-ai/esrgan",
			Tags:          []string{"upscale", "enhance", "edit"},
		},
		{
			ID:          "inpainting",
			Label:       "Inpainting",
			Description: "Fill masked regions of an image with AI-generated content",
			Category:    CategoryImageEdit,
			Color:       "#0891B2",
			Inputs: []Port{
				{ID: "prompt", Label: "Prompt", Type: models.PortTypeText},
				{ID: "image", Label: "Input Image", Type: models.PortTypeImage, Required: true},
				{ID: "mask", Label: "Mask", Type: models.PortTypeImage, Required: true},
			},
			Outputs: []Port{
				{ID: "image", Label: "Result Image", Type: models.PortTypeImage},
			},
			Parameters: []Parameter{
				{ID: "prompt", Label: "Prompt", Type: ParameterText, Multiline: true, Required: true,
					Placeholder: "What to fill in the masked area..."},
				{ID: "negative_prompt", Label: "Negative Prompt", Type: ParameterText, Multiline: true},
				{ID: "num_inference_steps", Label: "Steps", Type: ParameterSlider, Default: 28,
					Min: floatPtr(10), Max: floatPtr(50)},
				{ID: "guidance_scale", Label: "Guidance Scale", Type: ParameterSlider, Default: 7.5,
					Min: floatPtr(1), Max: floatPtr(20), Step: floatPtr(0.5)},
				{ID: "seed", Label: "Seed", Type: ParameterNumber, Default: -1},
			},
			CreditCost:    3,
			Provider:      models.ProviderFal,
			ProviderModel: "fal-ai/flux/dev/image-to-image",
			Tags:          []string{"inpainting", "edit", "fill"},
		},
		{
			ID:          "outpainting",
			Label:       "Outpainting / Expand",
			Description: "Extend the borders of an image with AI-generated content",
			Category:    CategoryImageEdit,
			Color:       "#0E7490",
			Inputs: []Port{
				{ID: "prompt", Label: "Prompt", Type: models.PortTypeText},
				{ID: "image", Label: "Input Image", Type: models.PortTypeImage, Required: true},
			},
			Outputs: []Port{
				{ID: "image", Label: "Expanded Image", Type: models.PortTypeImage},
			},
			Parameters: []Parameter{
				{ID: "prompt", Label: "Prompt", Type: ParameterText, Multiline: true,
					Placeholder: "Describe what to add beyond the edges..."},
				{ID: "expand_left", Label: "Expand Left (px)", Type: ParameterNumber, Default: 256,
					Min: floatPtr(0), Max: floatPtr(1024)},
				{ID: "expand_right", Label: "Expand Right (px)", Type: ParameterNumber, Default: 256,
					Min: floatPtr(0), Max: floatPtr(1024)},
				{ID: "expand_top", Label: "Expand Top (px)", Type: ParameterNumber, Default: 0,
					Min: floatPtr(0), Max: floatPtr(1024)},
				{ID: "expand_bottom", Label: "Expand Bottom (px)", Type: ParameterNumber, Default: 0,
					Min: floatPtr(0), Max: floatPtr(1024)},
				{ID: "seed", Label: "Seed", Type: ParameterNumber, Default: -1},
			},
			CreditCost:    4,
			Provider:      models.ProviderFal,
			ProviderModel: "fal-ai/flux-lora/outpainting",
			Tags:          []string{"outpainting", "expand", "edit"},
		},
		{
			ID:          "image-to-image",
			Label:       "Image to Image",
			Description: "Transform an existing image guided by a prompt",
			Category:    CategoryImageEdit,
			Color:       "#1D4ED8",
			Inputs: []Port{
				{ID: "prompt", Label: "Prompt", Type: models.PortTypeText},
				{ID: "image", Label: "Input Image", Type: models.PortTypeImage, Required: true},
			},
			Outputs: []Port{
				{ID: "image", Label: "Output Image", Type: models.PortTypeImage},
			},
			Parameters: []Parameter{
				{ID: "prompt", Label: "Prompt", Type: ParameterText, Multiline: true, Required: true,
					Placeholder: "Describe the transformation..."},
				{ID: "strength", Label: "Strength", Type: ParameterSlider, Default: 0.75,
					Min: floatPtr(0.1), Max: floatPtr(1), Step: floatPtr(0.05),
					Description: "How much to change the image (0=same, 1=fully new)"},
				{ID: "num_inference_steps", Label: "Steps", Type: ParameterSlider, Default: 28,
					Min: floatPtr(10), Max: floatPtr(50)},
				{ID: "guidance_scale", Label: "Guidance Scale", Type: ParameterSlider, Default: 3.5,
					Min: floatPtr(1), Max: floatPtr(20), Step: floatPtr(0.5)},
				{ID: "seed", Label: "Seed", Type: ParameterNumber, Default: -1},
			},
			CreditCost:    3,
			Provider:      models.ProviderFal,
			ProviderModel: "fal-ai/flux/dev/image-to-image",
			Tags:          []string{"img2img", "transform", "edit"},
		},
	}
}

// RegisterDefaults registers the complete built-in node catalog.
func (r *Registry) RegisterDefaults() {
	for _, group := range [][]*Definition{
		imageGenNodes(),
		videoGenNodes(),
		imageEditNodes(),
		helperNodes(),
	} {
		for _, def := range group {
			r.Register(def)
		}
	}
}
