// Package openai executes the OpenAI-backed nodes: prompt enhancement,
// image description and DALL·E generation.
package openai

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	openaisdk "github.com/openai/openai-go"
	openaiopt "github.com/openai/openai-go/option"

	"github.com/haus-node/haus/pkg/providers"
	"github.com/haus-node/haus/pkg/storage"
)

const maxCompletionTokens = 500

// enhancerPrompts select the system prompt for the prompt-enhancer node.
var enhancerPrompts = map[string]string{
	"detailed":    "You are an expert image prompt writer. Expand and improve the given prompt to be more detailed and descriptive. Return only the improved prompt, nothing else.",
	"cinematic":   "You are a cinematographer. Rewrite this prompt in cinematic terms with camera angles, lighting, and mood. Return only the improved prompt.",
	"artistic":    "You are an art director. Enhance this prompt with artistic style, technique, and aesthetic details. Return only the improved prompt.",
	"photography": "You are a professional photographer. Add technical photography details like lens, aperture, lighting setup. Return only the improved prompt.",
	"minimal":     "Clean up and slightly improve this prompt. Keep it concise. Return only the improved prompt.",
}

// describerPrompts select the user prompt for the image-describer node.
var describerPrompts = map[string]string{
	"prompt":      "Describe this image as a detailed AI image generation prompt. Be specific about style, subject, colors, lighting, composition.",
	"descriptive": "Describe what you see in this image in natural language.",
	"technical":   "Provide a technical analysis of this image: composition, lighting, color palette, style, and technique.",
}

// Adapter dispatches on the node definition id; each OpenAI node uses a
// different API surface.
type Adapter struct {
	client openaisdk.Client
	mirror storage.Mirror
	logger *slog.Logger
}

func New(apiKey string, mirror storage.Mirror, logger *slog.Logger) *Adapter {
	return &Adapter{
		client: openaisdk.NewClient(openaiopt.WithAPIKey(apiKey)),
		mirror: mirror,
		logger: logger.With("module", "openai"),
	}
}

func (a *Adapter) Execute(ctx context.Context, req providers.Request) (map[string]any, error) {
	switch req.Definition.ID {
	case "prompt-enhancer":
		return a.enhancePrompt(ctx, req)
	case "image-describer":
		return a.describeImage(ctx, req)
	case "dalle-3":
		return a.generateImage(ctx, req)
	default:
		return nil, fmt.Errorf("unhandled OpenAI node: %s", req.Definition.ID)
	}
}

func (a *Adapter) enhancePrompt(ctx context.Context, req providers.Request) (map[string]any, error) {
	style, _ := req.Inputs["style"].(string)

	system, ok := enhancerPrompts[style]
	if !ok {
		system = enhancerPrompts["detailed"]
	}

	text, _ := req.Inputs["text"].(string)

	completion, err := a.client.Chat.Completions.New(ctx, openaisdk.ChatCompletionNewParams{
		Model: openaisdk.ChatModel(req.Definition.ProviderModel),
		Messages: []openaisdk.ChatCompletionMessageParamUnion{
			openaisdk.SystemMessage(system),
			openaisdk.UserMessage(text),
		},
		MaxCompletionTokens: openaisdk.Int(maxCompletionTokens),
	})
	if err != nil {
		return nil, fmt.Errorf("chat completion failed: %w", err)
	}

	if len(completion.Choices) == 0 {
		return map[string]any{"text": ""}, nil
	}

	return map[string]any{"text": completion.Choices[0].Message.Content}, nil
}

func (a *Adapter) describeImage(ctx context.Context, req providers.Request) (map[string]any, error) {
	imageURL, _ := req.Inputs["image"].(string)
	if imageURL == "" {
		return nil, errors.New("image input is required")
	}

	style, _ := req.Inputs["style"].(string)

	prompt, ok := describerPrompts[style]
	if !ok {
		prompt = describerPrompts["prompt"]
	}

	parts := []openaisdk.ChatCompletionContentPartUnionParam{
		{
			OfImageURL: &openaisdk.ChatCompletionContentPartImageParam{
				ImageURL: openaisdk.ChatCompletionContentPartImageImageURLParam{URL: imageURL},
			},
		},
		{
			OfText: &openaisdk.ChatCompletionContentPartTextParam{Text: prompt},
		},
	}

	completion, err := a.client.Chat.Completions.New(ctx, openaisdk.ChatCompletionNewParams{
		Model: openaisdk.ChatModel(req.Definition.ProviderModel),
		Messages: []openaisdk.ChatCompletionMessageParamUnion{
			openaisdk.UserMessage(parts),
		},
		MaxCompletionTokens: openaisdk.Int(maxCompletionTokens),
	})
	if err != nil {
		return nil, fmt.Errorf("vision completion failed: %w", err)
	}

	if len(completion.Choices) == 0 {
		return map[string]any{"text": ""}, nil
	}

	return map[string]any{"text": completion.Choices[0].Message.Content}, nil
}

func (a *Adapter) generateImage(ctx context.Context, req providers.Request) (map[string]any, error) {
	prompt, _ := req.Inputs["prompt"].(string)
	size, _ := req.Inputs["size"].(string)
	quality, _ := req.Inputs["quality"].(string)
	style, _ := req.Inputs["style"].(string)

	if size == "" {
		size = "1024x1024"
	}

	if quality == "" {
		quality = "standard"
	}

	if style == "" {
		style = "vivid"
	}

	resp, err := a.client.Images.Generate(ctx, openaisdk.ImageGenerateParams{
		Model:   openaisdk.ImageModel(req.Definition.ProviderModel),
		Prompt:  prompt,
		N:       openaisdk.Int(1),
		Size:    openaisdk.ImageGenerateParamsSize(size),
		Quality: openaisdk.ImageGenerateParamsQuality(quality),
		Style:   openaisdk.ImageGenerateParamsStyle(style),
	})
	if err != nil {
		return nil, fmt.Errorf("image generation failed: %w", err)
	}

	if len(resp.Data) == 0 || resp.Data[0].URL == "" {
		return nil, errors.New("image generation returned no image URL")
	}

	imageURL := resp.Data[0].URL

	obj, err := a.mirror.MirrorURL(ctx, imageURL, storage.FolderImages)
	if err != nil {
		a.logger.WarnContext(ctx, "Mirror failed, keeping provider URL",
			"url", imageURL, "error", err)

		return map[string]any{"image": imageURL}, nil
	}

	return map[string]any{"image": obj.URL}, nil
}
