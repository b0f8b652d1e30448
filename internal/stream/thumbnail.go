package stream

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gaan/gaan-downloader/internal/model"
)

// Client is the HTTP client shared by the site backend and thumbnail requests
var Client = &http.Client{
	Timeout:   time.Minute,
	Transport: newTransport(),
}

func newTransport() *http.Transport {
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.MaxIdleConnsPerHost = 10
	t.IdleConnTimeout = 30 * time.Second
	t.ResponseHeaderTimeout = 30 * time.Second
	return t
}

// MaxThumbnailSize caps the bytes read for a thumbnail image
const MaxThumbnailSize = 10 << 20

// FetchThumbnail downloads the image at url with a plain GET
func FetchThumbnail(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("invalid thumbnail url: %w", err)
	}

	resp, err := Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to load thumbnail: %w: %w", model.ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to load thumbnail: %w: status %d", model.ErrNetwork, resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, MaxThumbnailSize))
	if err != nil {
		return nil, fmt.Errorf("failed to read thumbnail: %w: %w", model.ErrNetwork, err)
	}
	return data, nil
}
