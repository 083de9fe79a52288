package registry

import "github.com/haus-node/haus/pkg/models"

// videoGenNodes are the fal-backed video generators. Kling v3 image-to-video
// is the one model that takes start_image_url instead of image_url; the
// providers package carries that exception in its remap table.
func videoGenNodes() []*Definition {
	return []*Definition{
		{
			ID:          "kling-v3",
			Label:       "Kling v3",
			Description: "Latest Kling v3 — text to video with native audio generation",
			Category:    CategoryVideoGen,
			Color:       "#EA580C",
			Inputs: []Port{
				{ID: "prompt", Label: "Prompt", Type: models.PortTypeText},
			},
			Outputs: []Port{
				{ID: "video", Label: "Video", Type: models.PortTypeVideo},
			},
			Parameters: []Parameter{
				{ID: "prompt", Label: "Prompt", Type: ParameterText, Multiline: true, Required: true,
					Placeholder: "Describe the video scene..."},
				{ID: "negative_prompt", Label: "Negative Prompt", Type: ParameterText, Multiline: true},
				{ID: "duration", Label: "Duration", Type: ParameterSelect, Default: "5", Options: []Option{
					{Label: "5 seconds", Value: "5"},
					{Label: "10 seconds", Value: "10"},
				}},
				{ID: "aspect_ratio", Label: "Aspect Ratio", Type: ParameterSelect, Default: "16:9", Options: []Option{
					{Label: "16:9 (Landscape)", Value: "16:9"},
					{Label: "9:16 (Portrait)", Value: "9:16"},
					{Label: "1:1 (Square)", Value: "1:1"},
				}},
				{ID: "generate_audio", Label: "Generate Audio", Type: ParameterBoolean, Default: false},
				{ID: "cfg_scale", Label: "Guidance Scale", Type: ParameterSlider, Default: 0.5,
					Min: floatPtr(0), Max: floatPtr(1), Step: floatPtr(0.1)},
			},
			CreditCost:    40,
			Provider:      models.ProviderFal,
			ProviderModel: "fal-ai/kling-video/v3/standard/text-to-video",
			Tags:          []string{"kling", "video", "text-to-video", "v3"},
		},
		{
			ID:          "kling-v3-i2v",
			Label:       "Kling v3 (Image→Video)",
			Description: "Latest Kling v3 — animate an image with native audio support",
			Category:    CategoryVideoGen,
			Color:       "#C2410C",
			Inputs: []Port{
				{ID: "image", Label: "Start Image", Type: models.PortTypeImage, Required: true},
				{ID: "prompt", Label: "Prompt", Type: models.PortTypeText},
			},
			Outputs: []Port{
				{ID: "video", Label: "Video", Type: models.PortTypeVideo},
			},
			Parameters: []Parameter{
				{ID: "prompt", Label: "Prompt", Type: ParameterText, Multiline: true,
					Placeholder: "Describe the motion..."},
				{ID: "duration", Label: "Duration", Type: ParameterSelect, Default: "5", Options: []Option{
					{Label: "5 seconds", Value: "5"},
					{Label: "10 seconds", Value: "10"},
				}},
				{ID: "aspect_ratio", Label: "Aspect Ratio", Type: ParameterSelect, Default: "16:9", Options: []Option{
					{Label: "16:9 (Landscape)", Value: "16:9"},
					{Label: "9:16 (Portrait)", Value: "9:16"},
					{Label: "1:1 (Square)", Value: "1:1"},
				}},
				{ID: "generate_audio", Label: "Generate Audio", Type: ParameterBoolean, Default: false},
				{ID: "cfg_scale", Label: "Guidance Scale", Type: ParameterSlider, Default: 0.5,
					Min: floatPtr(0), Max: floatPtr(1), Step: floatPtr(0.1)},
			},
			CreditCost:    40,
			Provider:      models.ProviderFal,
			ProviderModel: "fal-ai/kling-video/v3/standard/image-to-video",
			Tags:          []string{"kling", "video", "image-to-video", "v3"},
		},
		{
			ID:          "kling-2-5",
			Label:       "Kling Standard",
			Description: "High-quality video generation — text to video",
			Category:    CategoryVideoGen,
			Color:       "#EA580C",
			Inputs: []Port{
				{ID: "prompt", Label: "Prompt", Type: models.PortTypeText},
				{ID: "image", Label: "Start Image", Type: models.PortTypeImage},
			},
			Outputs: []Port{
				{ID: "video", Label: "Video", Type: models.PortTypeVideo},
			},
			Parameters: []Parameter{
				{ID: "prompt", Label: "Prompt", Type: ParameterText, Multiline: true, Required: true,
					Placeholder: "Describe the video motion and scene..."},
				{ID: "negative_prompt", Label: "Negative Prompt", Type: ParameterText, Multiline: true},
				{ID: "duration", Label: "Duration", Type: ParameterSelect, Default: "5", Options: []Option{
					{Label: "5 seconds", Value: "5"},
					{Label: "10 seconds", Value: "10"},
				}},
				{ID: "aspect_ratio", Label: "Aspect Ratio", Type: ParameterSelect, Default: "16:9", Options: []Option{
					{Label: "16:9 (Landscape)", Value: "16:9"},
					{Label: "9:16 (Portrait)", Value: "9:16"},
					{Label: "1:1 (Square)", Value: "1:1"},
				}},
				{ID: "cfg_scale", Label: "Guidance Scale", Type: ParameterSlider, Default: 0.5,
					Min: floatPtr(0), Max: floatPtr(1), Step: floatPtr(0.1)},
				{ID: "seed", Label: "Seed", Type: ParameterNumber, Default: -1},
			},
			CreditCost:    40,
			Provider:      models.ProviderFal,
			ProviderModel: "fal-ai/kling-video/v1.6/standard/text-to-video",
			Tags:          []string{"kling", "video", "text-to-video"},
		},
		{
			ID:          "kling-2-5-i2v",
			Label:       "Kling (Image→Video)",
			Description: "Animate a still image into a video with Kling 2.1",
			Category:    CategoryVideoGen,
			Color:       "#C2410C",
			Inputs: []Port{
				{ID: "prompt", Label: "Motion Prompt", Type: models.PortTypeText},
				{ID: "image", Label: "Source Image", Type: models.PortTypeImage, Required: true},
			},
			Outputs: []Port{
				{ID: "video", Label: "Video", Type: models.PortTypeVideo},
			},
			Parameters: []Parameter{
				{ID: "prompt", Label: "Motion Prompt", Type: ParameterText, Multiline: true, Required: true,
					Placeholder: "Describe how the image should animate..."},
				{ID: "duration", Label: "Duration", Type: ParameterSelect, Default: "5", Options: []Option{
					{Label: "5 seconds", Value: "5"},
					{Label: "10 seconds", Value: "10"},
				}},
				{ID: "aspect_ratio", Label: "Aspect Ratio", Type: ParameterSelect, Default: "16:9", Options: []Option{
					{Label: "16:9 (Landscape)", Value: "16:9"},
					{Label: "9:16 (Portrait)", Value: "9:16"},
					{Label: "1:1 (Square)", Value: "1:1"},
				}},
				{ID: "cfg_scale", Label: "Guidance Scale", Type: ParameterSlider, Default: 0.5,
					Min: floatPtr(0), Max: floatPtr(1), Step: floatPtr(0.1)},
			},
			CreditCost:    40,
			Provider:      models.ProviderFal,
			ProviderModel: "fal-ai/kling-video/v1.6/pro/image-to-video",
			Tags:          []string{"kling", "video", "image-to-video"},
		},
		{
			ID:          "kling-2-5-pro",
			Label:       "Kling Pro",
			Description: "Highest-quality Kling video generation — pro tier",
			Category:    CategoryVideoGen,
			Color:       "#9A3412",
			Inputs: []Port{
				{ID: "prompt", Label: "Prompt", Type: models.PortTypeText},
				{ID: "image", Label: "Reference Image", Type: models.PortTypeImage},
			},
			Outputs: []Port{
				{ID: "video", Label: "Video", Type: models.PortTypeVideo},
			},
			Parameters: []Parameter{
				{ID: "prompt", Label: "Prompt", Type: ParameterText, Multiline: true, Required: true,
					Placeholder: "Describe the video scene in detail..."},
				{ID: "negative_prompt", Label: "Negative Prompt", Type: ParameterText, Multiline: true},
				{ID: "duration", Label: "Duration", Type: ParameterSelect, Default: "5", Options: []Option{
					{Label: "5 seconds", Value: "5"},
					{Label: "10 seconds", Value: "10"},
				}},
				{ID: "aspect_ratio", Label: "Aspect Ratio", Type: ParameterSelect, Default: "16:9", Options: []Option{
					{Label: "16:9 (Landscape)", Value: "16:9"},
					{Label: "9:16 (Portrait)", Value: "9:16"},
					{Label: "1:1 (Square)", Value: "1:1"},
				}},
				{ID: "cfg_scale", Label: "Guidance Scale", Type: ParameterSlider, Default: 0.5,
					Min: floatPtr(0), Max: floatPtr(1), Step: floatPtr(0.1)},
			},
			CreditCost:    50,
			Provider:      models.ProviderFal,
			ProviderModel: "fal-ai/kling-video/v1.6/pro/text-to-video",
			Tags:          []string{"kling", "video", "text-to-video", "premium"},
		},
		{
			ID:          "wan-2-2",
			Label:       "Wan 2.2",
			Description: "Wan 2.2 text to video",
			Category:    CategoryVideoGen,
			Color:       "#9A3412",
			Inputs: []Port{
				{ID: "prompt", Label: "Prompt", Type: models.PortTypeText},
			},
			Outputs: []Port{
				{ID: "video", Label: "Video", Type: models.PortTypeVideo},
			},
			Parameters: []Parameter{
				{ID: "prompt", Label: "Prompt", Type: ParameterText, Multiline: true, Required: true},
				{ID: "negative_prompt", Label: "Negative Prompt", Type: ParameterText, Multiline: true},
				{ID: "num_frames", Label: "Frames", Type: ParameterSlider, Default: 81,
					Min: floatPtr(17), Max: floatPtr(121), Step: floatPtr(4)},
				{ID: "resolution", Label: "Resolution", Type: ParameterSelect, Default: "720p", Options: []Option{
					{Label: "480p", Value: "480p"},
					{Label: "720p", Value: "720p"},
				}},
				{ID: "seed", Label: "Seed", Type: ParameterNumber, Default: -1, Description: "-1 for random"},
			},
			CreditCost:    24,
			Provider:      models.ProviderFal,
			ProviderModel: "fal-ai/wan/v2.2-a14b/text-to-video",
			Tags:          []string{"wan", "video", "text-to-video"},
		},
		{
			ID:          "wan-2-2-i2v",
			Label:       "Wan 2.2 (Image→Video)",
			Description: "Animate a still image into a video with Wan 2.2",
			Category:    CategoryVideoGen,
			Color:       "#92400E",
			Inputs: []Port{
				{ID: "prompt", Label: "Prompt", Type: models.PortTypeText},
				{ID: "image", Label: "Source Image", Type: models.PortTypeImage, Required: true},
			},
			Outputs: []Port{
				{ID: "video", Label: "Video", Type: models.PortTypeVideo},
			},
			Parameters: []Parameter{
				{ID: "prompt", Label: "Prompt", Type: ParameterText, Multiline: true, Required: true,
					Placeholder: "Describe the motion and animation..."},
				{ID: "negative_prompt", Label: "Negative Prompt", Type: ParameterText, Multiline: true},
				{ID: "num_frames", Label: "Duration (frames)", Type: ParameterSelect, Default: "81", Options: []Option{
					{Label: "~3 sec (81 frames)", Value: "81"},
					{Label: "~5 sec (121 frames)", Value: "121"},
				}},
				{ID: "resolution", Label: "Resolution", Type: ParameterSelect, Default: "480p", Options: []Option{
					{Label: "480p", Value: "480p"},
					{Label: "720p", Value: "720p"},
				}},
				{ID: "seed", Label: "Seed", Type: ParameterNumber, Default: -1},
			},
			CreditCost:    24,
			Provider:      models.ProviderFal,
			ProviderModel: "fal-ai/wan/v2.2-a14b/image-to-video",
			Tags:          []string{"wan", "video", "image-to-video"},
		},
		{
			ID:          "ltx-video",
			Label:       "LTX Video",
			Description: "Real-time capable video generation",
			Category:    CategoryVideoGen,
			Color:       "#7E22CE",
			Inputs: []Port{
				{ID: "prompt", Label: "Prompt", Type: models.PortTypeText},
				{ID: "image", Label: "Start Image", Type: models.PortTypeImage},
			},
			Outputs: []Port{
				{ID: "video", Label: "Video", Type: models.PortTypeVideo},
			},
			Parameters: []Parameter{
				{ID: "prompt", Label: "Prompt", Type: ParameterText, Multiline: true, Required: true},
				{ID: "negative_prompt", Label: "Negative Prompt", Type: ParameterText, Multiline: true,
					Default: "worst quality, inconsistent motion, blurry, jittery"},
				{ID: "num_frames", Label: "Frames", Type: ParameterSlider, Default: 121,
					Min: floatPtr(25), Max: floatPtr(257), Step: floatPtr(8)},
				{ID: "width", Label: "Width", Type: ParameterNumber, Default: 768},
				{ID: "height", Label: "Height", Type: ParameterNumber, Default: 512},
				{ID: "seed", Label: "Seed", Type: ParameterNumber, Default: -1},
			},
			CreditCost:    20,
			Provider:      models.ProviderFal,
			ProviderModel: "fal-ai/ltx-video",
			Tags:          []string{"ltx", "video", "fast"},
		},
	}
}
