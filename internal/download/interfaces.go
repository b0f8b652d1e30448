package download

import (
	"context"

	"github.com/gaan/gaan-downloader/internal/model"
	"github.com/gaan/gaan-downloader/internal/stream"
)

// Downloader defines the interface for the download service.
type Downloader interface {
	SetUpdateCallback(func(*model.DownloadJob))

	// DownloadVideo fetches the stream at resolution and writes <title>.<format> to dir
	DownloadVideo(ctx context.Context, session *stream.Session, dir, resolution, format string) (*model.DownloadJob, error)

	// DownloadAudio fetches the audio stream at bitrate and converts it to format
	DownloadAudio(ctx context.Context, session *stream.Session, dir, bitrate, format string) (*model.DownloadJob, error)
}
