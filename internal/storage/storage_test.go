package storage

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func newTestLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func TestValidateImage(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		size        int64
		wantErr     bool
	}{
		{name: "png within limit", contentType: "image/png", size: 1024},
		{name: "jpeg within limit", contentType: "image/jpeg", size: MaxUploadSize},
		{name: "oversized upload", contentType: "image/png", size: MaxUploadSize + 1, wantErr: true},
		{name: "unsupported type", contentType: "image/svg+xml", size: 1024, wantErr: true},
		{name: "not an image", contentType: "application/pdf", size: 1024, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateImage(tt.contentType, tt.size)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestUpload(t *testing.T) {
	var gotPath, gotAuth, gotUpsert, gotContentType, gotBody string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		gotUpsert = r.Header.Get("x-upsert")
		gotContentType = r.Header.Get("Content-Type")
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewClient(server.URL+"/", "service-key", newTestLogger())

	url, err := client.Upload(context.Background(), "avatars", "user-1/pic.png", "image/png", strings.NewReader("png-bytes"))

	assert.NoError(t, err)
	assert.Equal(t, "/storage/v1/object/avatars/user-1/pic.png", gotPath)
	assert.Equal(t, "Bearer service-key", gotAuth)
	assert.Equal(t, "true", gotUpsert)
	assert.Equal(t, "image/png", gotContentType)
	assert.Equal(t, "png-bytes", gotBody)
	assert.Equal(t, server.URL+"/storage/v1/object/public/avatars/user-1/pic.png", url)
}

func TestUploadRejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"error":"bucket not found"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "service-key", newTestLogger())

	url, err := client.Upload(context.Background(), "missing", "obj.png", "image/png", strings.NewReader("x"))

	assert.Error(t, err)
	assert.Empty(t, url)
	assert.Contains(t, err.Error(), "403")
}
