// Package fal executes nodes against fal.ai's synchronous HTTP endpoints.
package fal

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/haus-node/haus/pkg/providers"
	"github.com/haus-node/haus/pkg/storage"
)

const (
	defaultBaseURL = "https://fal.run"
	callTimeout    = 10 * time.Minute
)

// Adapter calls fal.run/{model} and normalizes the response envelope into
// the node's declared output ports.
type Adapter struct {
	apiKey  string
	baseURL string
	http    *http.Client
	mirror  storage.Mirror
	logger  *slog.Logger
}

func New(apiKey string, mirror storage.Mirror, logger *slog.Logger) *Adapter {
	return &Adapter{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		http:    &http.Client{Timeout: callTimeout},
		mirror:  mirror,
		logger:  logger.With("module", "fal"),
	}
}

// WithBaseURL points the adapter at a different endpoint. Tests use it to
// target a local server.
func (a *Adapter) WithBaseURL(url string) *Adapter {
	a.baseURL = url

	return a
}

func (a *Adapter) Execute(ctx context.Context, req providers.Request) (map[string]any, error) {
	body, err := json.Marshal(req.Inputs)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal fal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		a.baseURL+"/"+req.Definition.ProviderModel, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build fal request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Key "+a.apiKey)

	resp, err := a.http.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("fal request failed: %w", err)
	}

	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read fal response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("fal API error %d: %s", resp.StatusCode, string(data))
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode fal response: %w", err)
	}

	return a.normalize(ctx, unwrap(raw)), nil
}

// unwrap peels the { data: {...}, requestId: ... } envelope the queue-style
// endpoints use; the raw body is kept when data is absent.
func unwrap(raw map[string]any) map[string]any {
	if data, ok := raw["data"].(map[string]any); ok {
		return data
	}

	return raw
}

// normalize flattens fal's result shapes onto the graph's port names and
// mirrors the media into durable storage. Mirroring is best-effort: on any
// failure the original fal URL is returned instead.
func (a *Adapter) normalize(ctx context.Context, output map[string]any) map[string]any {
	if images, ok := output["images"].([]any); ok && len(images) > 0 {
		if url := urlOf(images[0]); url != "" {
			return map[string]any{
				"image":  a.mirrorOrOriginal(ctx, url, storage.FolderImages),
				"images": images,
			}
		}
	}

	if url := urlOf(output["video"]); url != "" {
		return map[string]any{"video": a.mirrorOrOriginal(ctx, url, storage.FolderVideos)}
	}

	if url := urlOf(output["image"]); url != "" {
		return map[string]any{"image": a.mirrorOrOriginal(ctx, url, storage.FolderImages)}
	}

	return output
}

func (a *Adapter) mirrorOrOriginal(ctx context.Context, url, folder string) string {
	obj, err := a.mirror.MirrorURL(ctx, url, folder)
	if err != nil {
		a.logger.WarnContext(ctx, "Mirror failed, keeping provider URL",
			"url", url, "error", err)

		return url
	}

	return obj.URL
}

func urlOf(value any) string {
	obj, ok := value.(map[string]any)
	if !ok {
		return ""
	}

	url, _ := obj["url"].(string)

	return url
}
