package fal

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haus-node/haus/pkg/providers"
	"github.com/haus-node/haus/pkg/registry"
	"github.com/haus-node/haus/pkg/storage"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, nil))
}

func testAdapter(t *testing.T, store *storage.MemoryStore, handler http.HandlerFunc) *Adapter {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return New("test-key", store, testLogger()).WithBaseURL(server.URL)
}

func request(model string, inputs map[string]any) providers.Request {
	return providers.Request{
		Definition: &registry.Definition{ProviderModel: model},
		Inputs:     inputs,
	}
}

func TestExecute_SendsModelPathAndAuth(t *testing.T) {
	var gotPath, gotAuth string

	var gotBody map[string]any

	adapter := testAdapter(t, storage.NewMemoryStore(), func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		_ = json.NewEncoder(w).Encode(map[string]any{"ok": true})
	})

	_, err := adapter.Execute(context.Background(), request("fal-ai/flux/dev", map[string]any{"prompt": "a cat"}))
	require.NoError(t, err)

	assert.Equal(t, "/fal-ai/flux/dev", gotPath)
	assert.Equal(t, "Key test-key", gotAuth)
	assert.Equal(t, map[string]any{"prompt": "a cat"}, gotBody)
}

func TestExecute_UnwrapsDataEnvelope(t *testing.T) {
	store := storage.NewMemoryStore()
	adapter := testAdapter(t, store, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"data": map[string]any{
				"video": map[string]any{"url": "https://fal.media/v.mp4"},
			},
			"requestId": "req-1",
		})
	})

	out, err := adapter.Execute(context.Background(), request("fal-ai/kling-video/v3/pro/text-to-video", nil))
	require.NoError(t, err)

	video, ok := out["video"].(string)
	require.True(t, ok)
	assert.True(t, strings.HasPrefix(video, "memory://outputs/videos/"), "video should be mirrored, got %s", video)
	assert.NotContains(t, out, "requestId")
}

func TestExecute_NormalizesImagesList(t *testing.T) {
	store := storage.NewMemoryStore()
	adapter := testAdapter(t, store, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"images": []any{
				map[string]any{"url": "https://fal.media/a.png"},
				map[string]any{"url": "https://fal.media/b.png"},
			},
			"seed": 1234,
		})
	})

	out, err := adapter.Execute(context.Background(), request("fal-ai/flux/dev", nil))
	require.NoError(t, err)

	image, ok := out["image"].(string)
	require.True(t, ok)
	assert.True(t, strings.HasPrefix(image, "memory://outputs/images/"))

	// The original list is kept alongside the mirrored primary image.
	images, ok := out["images"].([]any)
	require.True(t, ok)
	assert.Len(t, images, 2)
}

func TestExecute_MirrorFailureFallsBackToProviderURL(t *testing.T) {
	store := storage.NewMemoryStore()
	store.Fail = errors.New("bucket offline")

	adapter := testAdapter(t, store, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"image": map[string]any{"url": "https://fal.media/a.png"},
		})
	})

	out, err := adapter.Execute(context.Background(), request("fal-ai/flux/dev", nil))
	require.NoError(t, err)

	assert.Equal(t, "https://fal.media/a.png", out["image"])
}

func TestExecute_NonMediaResponsePassesThrough(t *testing.T) {
	adapter := testAdapter(t, storage.NewMemoryStore(), func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"text": "hello", "tokens": float64(12)})
	})

	out, err := adapter.Execute(context.Background(), request("fal-ai/any-llm", nil))
	require.NoError(t, err)

	assert.Equal(t, map[string]any{"text": "hello", "tokens": float64(12)}, out)
}

func TestExecute_APIErrorIncludesStatusAndBody(t *testing.T) {
	adapter := testAdapter(t, storage.NewMemoryStore(), func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"detail":"prompt is required"}`))
	})

	_, err := adapter.Execute(context.Background(), request("fal-ai/flux/dev", nil))
	require.Error(t, err)

	assert.Contains(t, err.Error(), "fal API error 422")
	assert.Contains(t, err.Error(), "prompt is required")
}
