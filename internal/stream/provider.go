package stream

import (
	"context"
	"io"

	"github.com/gaan/gaan-downloader/internal/model"
)

// ProgressFunc is called after every chunk written during a stream download
type ProgressFunc func(desc model.StreamDescriptor, chunk []byte, bytesRemaining int64)

// Source is one resolved video: its metadata and the stream variants on offer
type Source interface {
	Title() string
	ThumbnailURL() string
	Streams() []model.StreamDescriptor
	// Download writes the stream identified by desc to w, blocking until done
	Download(ctx context.Context, desc model.StreamDescriptor, w io.Writer, onProgress ProgressFunc) error
}

// StreamProvider resolves URLs against a streaming site
type StreamProvider interface {
	Resolve(ctx context.Context, url string) (Source, error)
}
