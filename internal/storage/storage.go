package storage

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// MaxUploadSize is the largest accepted image upload, in bytes.
const MaxUploadSize = 5 << 20

// allowedImageTypes lists the content types accepted for avatar and logo
// uploads.
var allowedImageTypes = map[string]bool{
	"image/png":  true,
	"image/jpeg": true,
	"image/webp": true,
	"image/gif":  true,
}

// ValidateImage checks an upload's content type and size before it is sent to
// the object store.
func ValidateImage(contentType string, size int64) error {
	if !allowedImageTypes[contentType] {
		return fmt.Errorf("unsupported image type %q", contentType)
	}
	if size > MaxUploadSize {
		return fmt.Errorf("file exceeds the %d byte upload limit", int64(MaxUploadSize))
	}
	return nil
}

// Client uploads objects to an S3-compatible storage HTTP API and serves
// public URLs for them. Buckets are expected to exist and allow public reads.
type Client struct {
	baseURL    string
	serviceKey string
	httpClient *http.Client
	logger     *logrus.Logger
}

// NewClient creates a storage client for the given API base URL and service
// key.
func NewClient(baseURL, serviceKey string, logger *logrus.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		serviceKey: serviceKey,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		logger:     logger,
	}
}

// Upload writes an object into the bucket, replacing any existing object at
// the same path, and returns its public URL.
func (c *Client) Upload(ctx context.Context, bucket, object, contentType string, body io.Reader) (string, error) {
	uploadURL := fmt.Sprintf("%s/storage/v1/object/%s/%s", c.baseURL, bucket, object)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, uploadURL, body)
	if err != nil {
		return "", fmt.Errorf("failed to create upload request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.serviceKey)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("x-upsert", "true")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to upload object: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		c.logger.WithFields(logrus.Fields{
			"bucket": bucket,
			"object": object,
			"status": resp.StatusCode,
			"body":   string(respBody),
		}).Error("Object upload rejected by storage API")
		return "", fmt.Errorf("storage API returned status %d", resp.StatusCode)
	}

	return c.PublicURL(bucket, object), nil
}

// PublicURL returns the unauthenticated read URL for an object.
func (c *Client) PublicURL(bucket, object string) string {
	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s", c.baseURL, bucket, object)
}
