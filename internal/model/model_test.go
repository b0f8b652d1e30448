package model

import (
	"errors"
	"strings"
	"testing"
)

func TestParseQuality(t *testing.T) {
	tests := []struct {
		label    string
		expected int
	}{
		{"1080p", 1080},
		{"720p", 720},
		{"144p", 144},
		{"160kbps", 160},
		{"48kbps", 48},
		{"", 0},
		{"audio", 0},
	}

	for _, test := range tests {
		result := ParseQuality(test.label)
		if result != test.expected {
			t.Errorf("ParseQuality(%q) = %d, expected %d", test.label, result, test.expected)
		}
	}
}

func TestStreamKind_HasVideo(t *testing.T) {
	if !StreamKindProgressive.HasVideo() {
		t.Error("Expected progressive streams to carry video")
	}
	if !StreamKindVideo.HasVideo() {
		t.Error("Expected adaptive video streams to carry video")
	}
	if StreamKindAudio.HasVideo() {
		t.Error("Expected audio-only streams to carry no video")
	}
}

func TestVideoInfo_HasStreams(t *testing.T) {
	if (VideoInfo{}).HasStreams() {
		t.Error("Expected empty info to have no streams")
	}
	if !(VideoInfo{Bitrates: []string{"128kbps"}}).HasStreams() {
		t.Error("Expected info with a bitrate to have streams")
	}
}

func TestDownloadJob_GetDisplayTitle(t *testing.T) {
	tests := []struct {
		title    string
		output   string
		expected string
	}{
		{"Video Title", "/tmp/other.mp4", "Video Title"},
		{"", "/tmp/Some Video (1).mkv", "Some Video (1)"},
		{"", "", ""},
	}

	for _, test := range tests {
		job := &DownloadJob{Title: test.title, OutputPath: test.output}
		result := job.GetDisplayTitle()
		if result != test.expected {
			t.Errorf("GetDisplayTitle() with title=%q output=%q = %q, expected %q",
				test.title, test.output, result, test.expected)
		}
	}
}

func TestToolError(t *testing.T) {
	procErr := errors.New("exit status 1")
	err := &ToolError{Kind: ErrMergeFailed, Err: procErr, Diagnostic: "Invalid data found\n"}

	if !errors.Is(err, ErrMergeFailed) {
		t.Error("Expected ToolError to match its kind")
	}
	if !errors.Is(err, procErr) {
		t.Error("Expected ToolError to match the process error")
	}
	if errors.Is(err, ErrConversionFailed) {
		t.Error("Expected merge error not to match conversion kind")
	}
	if !strings.HasSuffix(err.Error(), "Invalid data found") {
		t.Errorf("Expected diagnostic in message, got: %s", err.Error())
	}
}

func TestPlaylist_FindEntry(t *testing.T) {
	p := NewPlaylist("PL1", "https://www.youtube.com/playlist?list=PL1")
	p.AddEntry(&PlaylistEntry{ID: "a", Title: "First"})
	p.AddEntry(&PlaylistEntry{ID: "b", Title: "Second"})

	entry, ok := p.FindEntry("Second")
	if !ok || entry.ID != "b" {
		t.Errorf("Expected to find entry b, got %v (found=%v)", entry, ok)
	}

	if _, ok := p.FindEntry("Missing"); ok {
		t.Error("Expected missing title not to be found")
	}

	titles := p.Titles()
	if len(titles) != 2 || titles[0] != "First" || titles[1] != "Second" {
		t.Errorf("Unexpected titles: %v", titles)
	}
}
