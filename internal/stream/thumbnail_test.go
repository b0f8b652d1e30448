package stream

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gaan/gaan-downloader/internal/model"
)

func TestFetchThumbnail(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/missing.jpg" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "image/jpeg")
		_, _ = w.Write([]byte("jpegdata"))
	}))
	defer server.Close()

	data, err := FetchThumbnail(context.Background(), server.URL+"/thumb.jpg")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if string(data) != "jpegdata" {
		t.Errorf("Expected 'jpegdata', got '%s'", data)
	}

	_, err = FetchThumbnail(context.Background(), server.URL+"/missing.jpg")
	if !errors.Is(err, model.ErrNetwork) {
		t.Errorf("Expected ErrNetwork for 404, got %v", err)
	}
}

func TestFetchThumbnail_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL + "/t.jpg"
	server.Close()

	_, err := FetchThumbnail(context.Background(), url)
	if !errors.Is(err, model.ErrNetwork) {
		t.Errorf("Expected ErrNetwork, got %v", err)
	}
}
