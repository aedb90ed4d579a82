package storage

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUploadPostsToBucketPath(t *testing.T) {
	var gotPath, gotContentType, gotBody string
	mux := http.NewServeMux()
	mux.HandleFunc("POST /object/bellavie-media/{folder}/{name}", func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotContentType = r.Header.Get("Content-Type")
		b, _ := io.ReadAll(r.Body)
		gotBody = string(b)
		w.WriteHeader(http.StatusOK)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	s := NewBucketStorage(srv.URL, "bellavie-media", srv.Client())
	objectPath, err := s.Upload(context.Background(), "id-documents", "cni.jpg", strings.NewReader("jpeg-bytes"), "image/jpeg")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(objectPath, "id-documents/"))
	assert.True(t, strings.HasSuffix(objectPath, ".jpg"))
	// The generated name must not reuse the client filename.
	assert.NotContains(t, objectPath, "cni")
	assert.Equal(t, "/object/bellavie-media/"+objectPath, gotPath)
	assert.Equal(t, "image/jpeg", gotContentType)
	assert.Equal(t, "jpeg-bytes", gotBody)
}

func TestUploadPrefersServerKey(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /object/bellavie-media/{rest...}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"Key":"bellavie-media/chat/renamed.jpg"}`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	s := NewBucketStorage(srv.URL, "bellavie-media", srv.Client())
	objectPath, err := s.Upload(context.Background(), "chat", "photo.jpg", strings.NewReader("x"), "image/jpeg")
	require.NoError(t, err)
	assert.Equal(t, "chat/renamed.jpg", objectPath)
}

func TestUploadSurfacesRejection(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bucket not found", http.StatusNotFound)
	}))
	defer srv.Close()

	s := NewBucketStorage(srv.URL, "missing", srv.Client())
	_, err := s.Upload(context.Background(), "chat", "a.png", strings.NewReader("x"), "image/png")
	assert.ErrorContains(t, err, "404")
}

func TestDelete(t *testing.T) {
	var gotMethod, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
	}))
	defer srv.Close()

	s := NewBucketStorage(srv.URL, "bellavie-media", srv.Client())
	require.NoError(t, s.Delete(context.Background(), "chat/old.jpg"))
	assert.Equal(t, http.MethodDelete, gotMethod)
	assert.Equal(t, "/object/bellavie-media/chat/old.jpg", gotPath)
}

func TestPublicURL(t *testing.T) {
	s := NewBucketStorage("https://storage.example.com/v1/", "bellavie-media", nil)
	assert.Equal(t,
		"https://storage.example.com/v1/object/public/bellavie-media/chat/a.jpg",
		s.PublicURL("chat/a.jpg"))
}
