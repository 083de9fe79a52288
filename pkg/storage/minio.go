package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	miniocreds "github.com/minio/minio-go/v7/pkg/credentials"
)

// maxMirrorBytes caps how much of a provider result we will pull into the
// bucket. Video results run large; 512 MiB covers the longest clips the
// node catalog can produce.
const maxMirrorBytes = 512 << 20

// MinioStore implements Mirror against any S3-compatible endpoint.
type MinioStore struct {
	client    *minio.Client
	bucket    string
	publicURL string
	http      *http.Client
	logger    *slog.Logger
}

// MinioConfig carries the connection settings for an S3-compatible bucket.
type MinioConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
	// PublicURL is the base URL objects are served from, e.g. a CDN in
	// front of the bucket. Defaults to the endpoint itself.
	PublicURL string
}

func NewMinioStore(ctx context.Context, cfg MinioConfig, logger *slog.Logger) (*MinioStore, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  miniocreds.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create object storage client: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket: %w", err)
	}

	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create bucket: %w", err)
		}
	}

	publicURL := cfg.PublicURL
	if publicURL == "" {
		scheme := "http"
		if cfg.UseSSL {
			scheme = "https"
		}

		publicURL = fmt.Sprintf("%s://%s/%s", scheme, cfg.Endpoint, cfg.Bucket)
	}

	return &MinioStore{
		client:    client,
		bucket:    cfg.Bucket,
		publicURL: strings.TrimRight(publicURL, "/"),
		http:      &http.Client{Timeout: 5 * time.Minute},
		logger:    logger.With("module", "storage"),
	}, nil
}

func (s *MinioStore) Upload(ctx context.Context, folder, filename, contentType string, data []byte) (Object, error) {
	key := path.Join(folder, filename)

	_, err := s.client.PutObject(ctx, s.bucket, key,
		bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return Object{}, fmt.Errorf("failed to upload object %s: %w", key, err)
	}

	return Object{URL: s.publicURL + "/" + key, Key: key}, nil
}

// MirrorURL downloads the remote file and re-uploads it under folder. The
// object key gets a random name with an extension derived from the response
// content type, falling back to the URL path's extension.
func (s *MinioStore) MirrorURL(ctx context.Context, remoteURL, folder string) (Object, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, remoteURL, nil)
	if err != nil {
		return Object{}, fmt.Errorf("failed to build download request: %w", err)
	}

	resp, err := s.http.Do(req)
	if err != nil {
		return Object{}, fmt.Errorf("failed to download %s: %w", remoteURL, err)
	}

	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return Object{}, fmt.Errorf("download of %s returned status %d", remoteURL, resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxMirrorBytes+1))
	if err != nil {
		return Object{}, fmt.Errorf("failed to read %s: %w", remoteURL, err)
	}

	if len(data) > maxMirrorBytes {
		return Object{}, fmt.Errorf("remote file %s exceeds mirror size limit", remoteURL)
	}

	contentType := resp.Header.Get("Content-Type")
	filename := uuid.New().String() + extensionFor(contentType, remoteURL)

	return s.Upload(ctx, folder, filename, contentType, data)
}

func extensionFor(contentType, remoteURL string) string {
	if contentType != "" {
		if exts, err := mime.ExtensionsByType(contentType); err == nil && len(exts) > 0 {
			return exts[0]
		}
	}

	if ext := path.Ext(strings.SplitN(remoteURL, "?", 2)[0]); ext != "" {
		return ext
	}

	return ".bin"
}
