// Package storage uploads media (chat images, voice notes, registration ID
// documents) straight from the client to the object storage bucket, then
// derives the public URL the API records.
package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"path"
	"strings"

	"github.com/google/uuid"
)

// StorageService is the upload surface the screens use.
type StorageService interface {
	Upload(ctx context.Context, folder, filename string, body io.Reader, contentType string) (string, error)
	Delete(ctx context.Context, objectPath string) error
	PublicURL(objectPath string) string
}

// BucketStorage talks to the storage HTTP API. The bearer token rides on the
// shared transport middleware, like every other authenticated call.
type BucketStorage struct {
	baseURL string
	bucket  string
	http    *http.Client
}

// NewBucketStorage creates a storage client for one bucket.
func NewBucketStorage(baseURL, bucket string, hc *http.Client) *BucketStorage {
	return &BucketStorage{
		baseURL: strings.TrimRight(baseURL, "/"),
		bucket:  bucket,
		http:    hc,
	}
}

// Upload stores the object under folder/<uuid><ext> and returns the object
// path. The random name avoids collisions between clients.
func (s *BucketStorage) Upload(ctx context.Context, folder, filename string, body io.Reader, contentType string) (string, error) {
	objectPath := path.Join(folder, uuid.New().String()+path.Ext(filename))
	u := fmt.Sprintf("%s/object/%s/%s", s.baseURL, s.bucket, objectPath)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, body)
	if err != nil {
		return "", fmt.Errorf("storage: failed to build upload request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)

	resp, err := s.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("storage: upload failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("storage: upload rejected with status %d", resp.StatusCode)
	}

	// The server echoes the stored key; fall back to our own path if the
	// response body is not the expected shape.
	var ack struct {
		Key string `json:"Key"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&ack); err == nil && ack.Key != "" {
		return strings.TrimPrefix(ack.Key, s.bucket+"/"), nil
	}
	return objectPath, nil
}

// Delete removes an object.
func (s *BucketStorage) Delete(ctx context.Context, objectPath string) error {
	u := fmt.Sprintf("%s/object/%s/%s", s.baseURL, s.bucket, objectPath)
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, u, nil)
	if err != nil {
		return fmt.Errorf("storage: failed to build delete request: %w", err)
	}
	resp, err := s.http.Do(req)
	if err != nil {
		return fmt.Errorf("storage: delete failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("storage: delete rejected with status %d", resp.StatusCode)
	}
	return nil
}

// PublicURL returns the unauthenticated URL for a stored object.
func (s *BucketStorage) PublicURL(objectPath string) string {
	return fmt.Sprintf("%s/object/public/%s/%s", s.baseURL, s.bucket, objectPath)
}
