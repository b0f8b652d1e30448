package stream

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/kkdai/youtube/v2"
	"github.com/samber/lo"

	"github.com/gaan/gaan-downloader/internal/model"
)

// YouTube resolves videos through the kkdai/youtube client
type YouTube struct {
	client *youtube.Client
}

// NewYouTube creates a provider using the shared HTTP client
func NewYouTube() *YouTube {
	return &YouTube{client: &youtube.Client{HTTPClient: Client}}
}

// Resolve loads the video metadata and its format list
func (y *YouTube) Resolve(ctx context.Context, url string) (Source, error) {
	video, err := y.client.GetVideoContext(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", model.ErrNetwork, err)
	}
	return &youtubeSource{client: y.client, video: video}, nil
}

type youtubeSource struct {
	client *youtube.Client
	video  *youtube.Video
}

func (s *youtubeSource) Title() string {
	return s.video.Title
}

// ThumbnailURL returns the widest thumbnail
func (s *youtubeSource) ThumbnailURL() string {
	if len(s.video.Thumbnails) == 0 {
		return ""
	}
	best := lo.MaxBy(s.video.Thumbnails, func(a, b youtube.Thumbnail) bool {
		return a.Width > b.Width
	})
	return best.URL
}

func (s *youtubeSource) Streams() []model.StreamDescriptor {
	return lo.FilterMap(s.video.Formats, func(f youtube.Format, _ int) (model.StreamDescriptor, bool) {
		return describeFormat(f)
	})
}

func (s *youtubeSource) Download(ctx context.Context, desc model.StreamDescriptor, w io.Writer, onProgress ProgressFunc) error {
	format, ok := lo.Find(s.video.Formats, func(f youtube.Format) bool {
		return f.ItagNo == desc.Itag
	})
	if !ok {
		return fmt.Errorf("itag %d: %w", desc.Itag, model.ErrNoStreamFound)
	}

	stream, size, err := s.client.GetStreamContext(ctx, s.video, &format)
	if err != nil {
		return fmt.Errorf("starting stream: %w: %w", model.ErrNetwork, err)
	}
	defer stream.Close()

	if _, err := io.Copy(io.MultiWriter(w, newProgressWriter(desc, size, onProgress)), stream); err != nil {
		return fmt.Errorf("download failed: %w: %w", model.ErrNetwork, err)
	}
	return nil
}

// describeFormat classifies a site format; formats with neither track are skipped
func describeFormat(f youtube.Format) (model.StreamDescriptor, bool) {
	hasVideo := f.Width > 0 && f.Height > 0
	hasAudio := f.AudioChannels > 0

	desc := model.StreamDescriptor{
		Itag:      f.ItagNo,
		Container: mimeToExt(f.MimeType),
		MimeType:  f.MimeType,
		Filesize:  f.ContentLength,
	}

	switch {
	case hasVideo && hasAudio:
		desc.Kind = model.StreamKindProgressive
	case hasVideo:
		desc.Kind = model.StreamKindVideo
	case hasAudio:
		desc.Kind = model.StreamKindAudio
	default:
		return desc, false
	}

	if hasVideo {
		desc.Resolution = resolutionLabel(f)
	}
	if hasAudio {
		if kbps := bitrateForFormat(f) / 1000; kbps > 0 {
			desc.Bitrate = fmt.Sprintf("%dkbps", kbps)
		}
	}
	return desc, true
}

// resolutionLabel keeps the site's quality label without frame rate or HDR
// suffix ("1080p60 HDR" -> "1080p"); the height is used only when no label is set
func resolutionLabel(f youtube.Format) string {
	if lines := model.ParseQuality(f.QualityLabel); lines > 0 {
		return fmt.Sprintf("%dp", lines)
	}
	return fmt.Sprintf("%dp", f.Height)
}

func bitrateForFormat(f youtube.Format) int {
	if f.AverageBitrate > 0 {
		return f.AverageBitrate
	}
	return f.Bitrate
}

// mimeToExt maps "video/mp4; codecs=..." to "mp4"
func mimeToExt(mime string) string {
	if i := strings.Index(mime, ";"); i >= 0 {
		mime = mime[:i]
	}
	_, sub, ok := strings.Cut(strings.TrimSpace(mime), "/")
	if !ok || sub == "" {
		return ""
	}
	if sub == "3gpp" {
		return "3gp"
	}
	return sub
}
