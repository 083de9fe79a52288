// Package gemini executes the Imagen nodes through Google's genai SDK.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"google.golang.org/genai"

	"github.com/haus-node/haus/pkg/providers"
	"github.com/haus-node/haus/pkg/storage"
)

// Adapter generates images with Imagen and uploads the returned bytes to
// durable storage. Unlike the URL-returning providers there is nothing to
// fall back to on upload failure, so upload errors fail the node.
type Adapter struct {
	client *genai.Client
	store  storage.Uploader
	logger *slog.Logger
}

func New(ctx context.Context, apiKey string, store storage.Uploader, logger *slog.Logger) (*Adapter, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &Adapter{
		client: client,
		store:  store,
		logger: logger.With("module", "gemini"),
	}, nil
}

func (a *Adapter) Execute(ctx context.Context, req providers.Request) (map[string]any, error) {
	prompt, _ := req.Inputs["prompt"].(string)

	aspectRatio, _ := req.Inputs["aspectRatio"].(string)
	if aspectRatio == "" {
		aspectRatio = "1:1"
	}

	resp, err := a.client.Models.GenerateImages(ctx, req.Definition.ProviderModel, prompt,
		&genai.GenerateImagesConfig{
			NumberOfImages: int32(sampleCount(req.Inputs)),
			AspectRatio:    aspectRatio,
		})
	if err != nil {
		return nil, fmt.Errorf("image generation failed: %w", err)
	}

	if len(resp.GeneratedImages) == 0 || resp.GeneratedImages[0].Image == nil {
		return nil, errors.New("image generation returned no images")
	}

	image := resp.GeneratedImages[0].Image

	mimeType := image.MIMEType
	if mimeType == "" {
		mimeType = "image/png"
	}

	obj, err := a.store.Upload(ctx, storage.FolderImages,
		uuid.New().String()+".png", mimeType, image.ImageBytes)
	if err != nil {
		return nil, fmt.Errorf("failed to store generated image: %w", err)
	}

	return map[string]any{"image": obj.URL}, nil
}

func sampleCount(inputs map[string]any) int {
	switch v := inputs["sampleCount"].(type) {
	case int:
		return v
	case float64:
		return int(v)
	default:
		return 1
	}
}
