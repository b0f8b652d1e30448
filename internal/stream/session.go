package stream

import (
	"context"
	"fmt"
	"io"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/gaan/gaan-downloader/internal/model"
)

// Container is the only stream container offered to the user
const Container = "mp4"

// SessionIDPrefix is prepended to every session ID
const SessionIDPrefix = "session-"

// Session is the result of a successful fetch. It is replaced on each fetch
// and read by downloads once the fetch has been reported to the UI.
type Session struct {
	ID   string
	URL  string
	Info model.VideoInfo

	source  Source
	streams []model.StreamDescriptor
}

// NewSession builds a session from a resolved source. Only mp4 streams are
// kept; a source without any of them yields model.ErrNoStreamsAvailable.
func NewSession(url string, src Source) (*Session, error) {
	streams := lo.Filter(src.Streams(), func(d model.StreamDescriptor, _ int) bool {
		return d.Container == Container
	})

	info := model.VideoInfo{
		Title:        src.Title(),
		ThumbnailURL: src.ThumbnailURL(),
		Resolutions: distinctDescending(lo.FilterMap(streams, func(d model.StreamDescriptor, _ int) (string, bool) {
			return d.Resolution, d.Kind.HasVideo() && d.Resolution != ""
		})),
		Bitrates: distinctDescending(lo.FilterMap(streams, func(d model.StreamDescriptor, _ int) (string, bool) {
			return d.Bitrate, d.Kind == model.StreamKindAudio && d.Bitrate != ""
		})),
	}
	if !info.HasStreams() {
		return nil, fmt.Errorf("%s: %w", url, model.ErrNoStreamsAvailable)
	}

	return &Session{
		ID:      generateSessionID(),
		URL:     url,
		Info:    info,
		source:  src,
		streams: streams,
	}, nil
}

// Ready reports whether the session can serve downloads
func (s *Session) Ready() bool {
	return s != nil && s.source != nil && s.Info.HasStreams()
}

// Streams returns the mp4 stream variants of the session
func (s *Session) Streams() []model.StreamDescriptor {
	if s == nil {
		return nil
	}
	return s.streams
}

// Download writes one stream of the session to w
func (s *Session) Download(ctx context.Context, desc model.StreamDescriptor, w io.Writer, onProgress ProgressFunc) error {
	if !s.Ready() {
		return model.ErrNotFetched
	}
	return s.source.Download(ctx, desc, w, onProgress)
}

// distinctDescending dedupes labels and orders them by their numeric magnitude, highest first
func distinctDescending(labels []string) []string {
	out := lo.Uniq(labels)
	slices.SortStableFunc(out, func(a, b string) int {
		return model.ParseQuality(b) - model.ParseQuality(a)
	})
	return out
}

func generateSessionID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Sprintf(SessionIDPrefix+"%d", time.Now().UnixNano())
	}
	return SessionIDPrefix + id.String()
}
