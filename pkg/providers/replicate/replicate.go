// Package replicate executes nodes against Replicate's predictions API,
// using synchronous mode so a single request carries the node to completion.
package replicate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/haus-node/haus/pkg/models"
	"github.com/haus-node/haus/pkg/providers"
	"github.com/haus-node/haus/pkg/registry"
	"github.com/haus-node/haus/pkg/storage"
)

const (
	defaultBaseURL = "https://api.replicate.com/v1"
	callTimeout    = 10 * time.Minute
)

// prediction is the slice of Replicate's response the adapter reads.
type prediction struct {
	Status string `json:"status"`
	Output any    `json:"output"`
	Error  any    `json:"error"`
}

// Adapter posts to /models/{model}/predictions with Prefer: wait and
// normalizes the prediction output onto the node's ports.
type Adapter struct {
	token   string
	baseURL string
	http    *http.Client
	mirror  storage.Mirror
	logger  *slog.Logger
}

func New(token string, mirror storage.Mirror, logger *slog.Logger) *Adapter {
	return &Adapter{
		token:   token,
		baseURL: defaultBaseURL,
		http:    &http.Client{Timeout: callTimeout},
		mirror:  mirror,
		logger:  logger.With("module", "replicate"),
	}
}

// WithBaseURL points the adapter at a different endpoint. Tests use it to
// target a local server.
func (a *Adapter) WithBaseURL(url string) *Adapter {
	a.baseURL = url

	return a
}

func (a *Adapter) Execute(ctx context.Context, req providers.Request) (map[string]any, error) {
	body, err := json.Marshal(map[string]any{"input": req.Inputs})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal replicate request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/models/%s/predictions", a.baseURL, req.Definition.ProviderModel)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build replicate request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+a.token)
	httpReq.Header.Set("Prefer", "wait")

	resp, err := a.http.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("replicate request failed: %w", err)
	}

	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read replicate response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("replicate API error %d: %s", resp.StatusCode, string(data))
	}

	var pred prediction
	if err := json.Unmarshal(data, &pred); err != nil {
		return nil, fmt.Errorf("failed to decode replicate response: %w", err)
	}

	if pred.Status == "failed" || pred.Status == "canceled" {
		return nil, fmt.Errorf("replicate prediction %s: %v", pred.Status, pred.Error)
	}

	return a.normalize(ctx, req.Definition.Outputs, pred.Output)
}

// normalize maps the prediction output (a URL, a list of URLs, or a keyed
// object) onto the node's declared output ports, mirroring media URLs
// best-effort.
func (a *Adapter) normalize(ctx context.Context, ports []registry.Port, output any) (map[string]any, error) {
	if keyed, ok := output.(map[string]any); ok {
		result := make(map[string]any, len(keyed))

		for key, value := range keyed {
			if url, ok := value.(string); ok && isHTTPURL(url) {
				value = a.mirrorOrOriginal(ctx, url, folderForPort(ports, key))
			}

			result[key] = value
		}

		return result, nil
	}

	url := firstURL(output)
	if url == "" {
		return nil, fmt.Errorf("replicate prediction returned no usable output")
	}

	if len(ports) == 0 {
		return nil, fmt.Errorf("node declares no output ports")
	}

	port := ports[0]

	return map[string]any{
		port.ID: a.mirrorOrOriginal(ctx, url, folderForType(port.Type)),
	}, nil
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

func firstURL(output any) string {
	switch v := output.(type) {
	case string:
		if isHTTPURL(v) {
			return v
		}
	case []any:
		for _, item := range v {
			if url, ok := item.(string); ok && isHTTPURL(url) {
				return url
			}
		}
	}

	return ""
}

func isHTTPURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

func folderForPort(ports []registry.Port, id string) string {
	for _, port := range ports {
		if port.ID == id {
			return folderForType(port.Type)
		}
	}

	return storage.FolderImages
}

func folderForType(t models.PortType) string {
	if t == models.PortTypeVideo {
		return storage.FolderVideos
	}

	return storage.FolderImages
}
