package storage

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_Upload(t *testing.T) {
	store := NewMemoryStore()

	obj, err := store.Upload(context.Background(), FolderImages, "a.png", "image/png", []byte("pixels"))
	require.NoError(t, err)

	assert.Equal(t, "outputs/images/a.png", obj.Key)
	assert.Equal(t, "memory://outputs/images/a.png", obj.URL)
	assert.Equal(t, 1, store.Len())
}

func TestMemoryStore_MirrorURL(t *testing.T) {
	store := NewMemoryStore()

	obj, err := store.MirrorURL(context.Background(), "https://cdn.example/v.mp4", FolderVideos)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(obj.URL, "memory://outputs/videos/"))
	assert.Equal(t, 1, store.Len())
}

func TestMemoryStore_Fail(t *testing.T) {
	store := NewMemoryStore()
	store.Fail = errors.New("bucket offline")

	_, err := store.Upload(context.Background(), FolderImages, "a.png", "image/png", nil)
	assert.Error(t, err)

	_, err = store.MirrorURL(context.Background(), "https://cdn.example/a.png", FolderImages)
	assert.Error(t, err)
	assert.Zero(t, store.Len())
}

func TestExtensionFor(t *testing.T) {
	assert.Equal(t, ".png", extensionFor("image/png", "https://cdn.example/file"))
	assert.Equal(t, ".mp4", extensionFor("", "https://cdn.example/clip.mp4?token=abc"))
	assert.Equal(t, ".bin", extensionFor("", "https://cdn.example/stream"))
}
