// Package storage mirrors provider-hosted result files into durable object
// storage so job outputs outlive the providers' short-lived URLs.
package storage

import "context"

// Folders job outputs are mirrored into.
const (
	FolderImages = "outputs/images"
	FolderVideos = "outputs/videos"
)

// Object is the durable location of a mirrored file.
type Object struct {
	URL string `json:"url"`
	Key string `json:"key"`
}

// Uploader writes raw bytes into the bucket.
type Uploader interface {
	Upload(ctx context.Context, folder, filename, contentType string, data []byte) (Object, error)
}

// Mirror copies a remote file into the bucket. Best-effort by contract:
// implementations return an error, but callers fall back to the original
// URL instead of failing the node.
type Mirror interface {
	Uploader
	MirrorURL(ctx context.Context, remoteURL, folder string) (Object, error)
}
