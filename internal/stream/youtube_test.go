package stream

import (
	"testing"

	"github.com/kkdai/youtube/v2"

	"github.com/gaan/gaan-downloader/internal/model"
)

func TestDescribeFormat(t *testing.T) {
	tests := []struct {
		name       string
		format     youtube.Format
		ok         bool
		kind       model.StreamKind
		container  string
		resolution string
		bitrate    string
	}{
		{
			name:   "progressive",
			format: youtube.Format{ItagNo: 22, MimeType: `video/mp4; codecs="avc1.64001F, mp4a.40.2"`, Width: 1280, Height: 720, AudioChannels: 2, AverageBitrate: 192000},
			ok:     true, kind: model.StreamKindProgressive, container: "mp4", resolution: "720p", bitrate: "192kbps",
		},
		{
			name:   "adaptive video",
			format: youtube.Format{ItagNo: 137, MimeType: `video/mp4; codecs="avc1.640028"`, Width: 1920, Height: 1080, Bitrate: 4000000},
			ok:     true, kind: model.StreamKindVideo, container: "mp4", resolution: "1080p",
		},
		{
			name:   "frame rate suffix is dropped",
			format: youtube.Format{ItagNo: 299, MimeType: `video/mp4; codecs="avc1.64002a"`, QualityLabel: "1080p60 HDR", Width: 1920, Height: 1080},
			ok:     true, kind: model.StreamKindVideo, container: "mp4", resolution: "1080p",
		},
		{
			name:   "portrait video uses quality label",
			format: youtube.Format{ItagNo: 137, MimeType: `video/mp4; codecs="avc1.640028"`, QualityLabel: "1080p", Width: 1080, Height: 1920},
			ok:     true, kind: model.StreamKindVideo, container: "mp4", resolution: "1080p",
		},
		{
			name:   "letterboxed video uses quality label",
			format: youtube.Format{ItagNo: 136, MimeType: `video/mp4; codecs="avc1.4d401f"`, QualityLabel: "720p", Width: 1280, Height: 536},
			ok:     true, kind: model.StreamKindVideo, container: "mp4", resolution: "720p",
		},
		{
			name:   "audio only falls back to bitrate",
			format: youtube.Format{ItagNo: 140, MimeType: `audio/mp4; codecs="mp4a.40.2"`, AudioChannels: 2, Bitrate: 130000},
			ok:     true, kind: model.StreamKindAudio, container: "mp4", bitrate: "130kbps",
		},
		{
			name:   "webm audio",
			format: youtube.Format{ItagNo: 251, MimeType: `audio/webm; codecs="opus"`, AudioChannels: 2, AverageBitrate: 160000},
			ok:     true, kind: model.StreamKindAudio, container: "webm", bitrate: "160kbps",
		},
		{
			name:   "no tracks",
			format: youtube.Format{ItagNo: 1, MimeType: "text/plain"},
			ok:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			desc, ok := describeFormat(tt.format)
			if ok != tt.ok {
				t.Fatalf("Expected ok=%v, got %v", tt.ok, ok)
			}
			if !ok {
				return
			}
			if desc.Itag != tt.format.ItagNo {
				t.Errorf("Expected itag %d, got %d", tt.format.ItagNo, desc.Itag)
			}
			if desc.Kind != tt.kind {
				t.Errorf("Expected kind %s, got %s", tt.kind, desc.Kind)
			}
			if desc.Container != tt.container {
				t.Errorf("Expected container %s, got %s", tt.container, desc.Container)
			}
			if desc.Resolution != tt.resolution {
				t.Errorf("Expected resolution '%s', got '%s'", tt.resolution, desc.Resolution)
			}
			if desc.Bitrate != tt.bitrate {
				t.Errorf("Expected bitrate '%s', got '%s'", tt.bitrate, desc.Bitrate)
			}
		})
	}
}

func TestMimeToExt(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{`video/mp4; codecs="avc1"`, "mp4"},
		{"audio/webm", "webm"},
		{"video/3gpp", "3gp"},
		{"", ""},
		{"garbage", ""},
	}

	for _, test := range tests {
		if result := mimeToExt(test.input); result != test.expected {
			t.Errorf("mimeToExt(%q) = %q, expected %q", test.input, result, test.expected)
		}
	}
}

func TestThumbnailURL_Widest(t *testing.T) {
	src := &youtubeSource{video: &youtube.Video{Thumbnails: youtube.Thumbnails{
		{URL: "small", Width: 120},
		{URL: "large", Width: 1280},
		{URL: "medium", Width: 480},
	}}}
	if got := src.ThumbnailURL(); got != "large" {
		t.Errorf("Expected widest thumbnail, got '%s'", got)
	}

	empty := &youtubeSource{video: &youtube.Video{}}
	if got := empty.ThumbnailURL(); got != "" {
		t.Errorf("Expected empty thumbnail url, got '%s'", got)
	}
}
