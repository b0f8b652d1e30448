package model

import (
	"strconv"
	"strings"
	"unicode"
)

// StreamKind classifies a stream variant by the tracks it carries
type StreamKind string

const (
	// StreamKindProgressive is a single file with both audio and video tracks
	StreamKindProgressive StreamKind = "progressive"

	// StreamKindVideo is an adaptive video-only stream
	StreamKindVideo StreamKind = "video"

	// StreamKindAudio is an adaptive audio-only stream
	StreamKindAudio StreamKind = "audio"
)

// HasVideo returns true for kinds that carry a video track
func (k StreamKind) HasVideo() bool {
	return k == StreamKindProgressive || k == StreamKindVideo
}

// StreamDescriptor describes one downloadable stream variant. Values are
// produced by a stream provider and only read by the orchestrator.
type StreamDescriptor struct {
	Itag       int        // provider reference used to trigger the download
	Kind       StreamKind // progressive, video-only or audio-only
	Container  string     // file extension of the stream, e.g. "mp4"
	MimeType   string     // raw mime type reported by the site
	Resolution string     // e.g. "720p", empty for audio-only streams
	Bitrate    string     // e.g. "160kbps", empty when unknown
	Filesize   int64      // content length in bytes, 0 if unknown
}

// VideoInfo is the result of a fetch: metadata plus the distinct qualities on offer.
type VideoInfo struct {
	Title        string
	ThumbnailURL string
	Resolutions  []string // distinct, highest first
	Bitrates     []string // distinct, highest first
}

// HasStreams returns true if at least one resolution or bitrate is available
func (vi VideoInfo) HasStreams() bool {
	return len(vi.Resolutions) > 0 || len(vi.Bitrates) > 0
}

// ParseQuality extracts the leading number of a quality label:
// "1080p" -> 1080, "160kbps" -> 160. Labels without digits yield 0.
func ParseQuality(label string) int {
	digits := strings.TrimLeftFunc(label, func(r rune) bool { return !unicode.IsDigit(r) })
	end := strings.IndexFunc(digits, func(r rune) bool { return !unicode.IsDigit(r) })
	if end >= 0 {
		digits = digits[:end]
	}
	value, err := strconv.Atoi(digits)
	if err != nil {
		return 0
	}
	return value
}
