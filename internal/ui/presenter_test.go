package ui

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/gaan/gaan-downloader/internal/model"
)

func TestPresenter_InitialState(t *testing.T) {
	p := NewPresenter(NewLocalization())
	state := p.State()

	if !state.FetchEnabled {
		t.Error("Expected fetch to be enabled initially")
	}
	if state.DownloadEnabled {
		t.Error("Expected download to be disabled initially")
	}
	if state.Mode != model.DownloadKindVideo {
		t.Errorf("Expected video mode, got %s", state.Mode)
	}
	if p.BeginDownload() {
		t.Error("Expected download to be refused without a session")
	}
}

func TestPresenter_FetchLifecycle(t *testing.T) {
	p := NewPresenter(NewLocalization())

	if !p.BeginFetch() {
		t.Fatal("Expected fetch to start")
	}
	if p.BeginFetch() {
		t.Error("Expected a second fetch to be refused while one is running")
	}
	if state := p.State(); state.FetchEnabled || state.DownloadEnabled || state.OptionsEnabled() {
		t.Error("Expected actions and options disabled while fetching")
	}

	session := newTestSession(t)
	p.Apply(FetchSucceeded{Session: session})
	state := p.State()

	if !state.FetchEnabled || !state.DownloadEnabled {
		t.Error("Expected both actions enabled after a successful fetch")
	}
	if state.Title != "Sample" {
		t.Errorf("Expected title 'Sample', got '%s'", state.Title)
	}
	if !reflect.DeepEqual(state.Qualities, []string{"1080p", "720p"}) {
		t.Errorf("Expected resolutions, got %v", state.Qualities)
	}

	p.SetMode(model.DownloadKindAudio)
	if !reflect.DeepEqual(p.State().Qualities, []string{"128kbps"}) {
		t.Errorf("Expected bitrates in audio mode, got %v", p.State().Qualities)
	}
}

func TestPresenter_NoStreamsKeepsDownloadDisabled(t *testing.T) {
	p := NewPresenter(NewLocalization())
	p.BeginFetch()

	p.Apply(FetchFailed{Err: model.ErrNoStreamsAvailable})
	state := p.State()

	if state.DownloadEnabled {
		t.Error("Expected download to stay disabled when no streams are available")
	}
	if !state.FetchEnabled {
		t.Error("Expected fetch to be enabled again")
	}
	if !strings.Contains(state.Status, "No downloadable streams") {
		t.Errorf("Expected no-streams status, got '%s'", state.Status)
	}
	if p.BeginDownload() {
		t.Error("Expected download to be refused")
	}
}

func TestPresenter_FailedFetchDropsPreviousSession(t *testing.T) {
	p := NewPresenter(NewLocalization())
	p.BeginFetch()
	p.Apply(FetchSucceeded{Session: newTestSession(t)})

	p.BeginFetch()
	p.Apply(FetchFailed{Err: model.ErrNetwork})

	state := p.State()
	if state.Session != nil || state.DownloadEnabled || len(state.Qualities) != 0 {
		t.Errorf("Expected previous session to be dropped, got %+v", state)
	}
}

func TestPresenter_DownloadLifecycle(t *testing.T) {
	p := NewPresenter(NewLocalization())
	p.BeginFetch()
	p.Apply(FetchSucceeded{Session: newTestSession(t)})

	if !p.BeginDownload() {
		t.Fatal("Expected download to start")
	}
	if state := p.State(); state.FetchEnabled || state.DownloadEnabled {
		t.Error("Expected both actions disabled while downloading")
	}

	if p.State().OptionsEnabled() {
		t.Error("Expected mode and format choices to be locked while downloading")
	}

	p.Apply(DownloadProgress{Percent: 42})
	state := p.State()
	if state.Status != "Downloading... 42%" {
		t.Errorf("Expected 'Downloading... 42%%', got '%s'", state.Status)
	}
	if state.Progress != 0.42 {
		t.Errorf("Expected progress 0.42, got %f", state.Progress)
	}

	p.Apply(DownloadConverting{})
	if p.State().Status != "Converting..." {
		t.Errorf("Expected converting status, got '%s'", p.State().Status)
	}

	p.Apply(DownloadSucceeded{Kind: model.DownloadKindVideo, Path: "/dl/Sample.mp4"})
	state = p.State()
	if !state.FetchEnabled || !state.DownloadEnabled {
		t.Error("Expected both actions enabled after completion")
	}
	if state.Progress != 0 {
		t.Errorf("Expected progress reset, got %f", state.Progress)
	}
	if !state.OptionsEnabled() {
		t.Error("Expected mode and format choices to be unlocked after completion")
	}
	if state.LastOutput != "/dl/Sample.mp4" {
		t.Errorf("Expected last output path, got '%s'", state.LastOutput)
	}
}

func TestPresenter_DownloadFailed(t *testing.T) {
	p := NewPresenter(NewLocalization())
	p.BeginFetch()
	p.Apply(FetchSucceeded{Session: newTestSession(t)})
	p.BeginDownload()

	p.Apply(DownloadFailed{Err: model.ErrToolMissing})
	state := p.State()

	if !state.FetchEnabled || !state.DownloadEnabled {
		t.Error("Expected actions to be enabled after a failure")
	}
	if !strings.Contains(state.Status, "FFmpeg not found") {
		t.Errorf("Expected tool missing status, got '%s'", state.Status)
	}
}

func TestPresenter_Thumbnail(t *testing.T) {
	p := NewPresenter(NewLocalization())
	p.BeginFetch()
	p.Apply(FetchSucceeded{Session: newTestSession(t), Thumbnail: []byte{1, 2}})
	if len(p.State().Thumbnail) != 2 {
		t.Error("Expected thumbnail bytes to be stored")
	}

	p.BeginFetch()
	p.Apply(FetchSucceeded{Session: newTestSession(t), ThumbnailErr: model.ErrNetwork})
	state := p.State()
	if state.Thumbnail != nil {
		t.Error("Expected thumbnail to be cleared")
	}
	if !strings.HasPrefix(state.Status, "Could not load thumbnail.") {
		t.Errorf("Expected thumbnail status, got '%s'", state.Status)
	}
	if !state.DownloadEnabled {
		t.Error("Expected a missing thumbnail not to block downloads")
	}
}

func TestErrorText(t *testing.T) {
	loc := NewLocalization()
	tests := []struct {
		err      error
		contains string
	}{
		{model.ErrNoStreamsAvailable, "No downloadable streams"},
		{model.ErrNoStreamFound, "not available"},
		{model.ErrToolMissing, "FFmpeg not found"},
		{model.ErrNotFetched, "not been fetched"},
		{&model.ToolError{Kind: model.ErrMergeFailed, Err: errors.New("exit status 1"), Diagnostic: "bad codec"}, "merge failed (bad codec)"},
		{&model.ToolError{Kind: model.ErrConversionFailed, Err: errors.New("exit status 1")}, "conversion failed"},
		{errors.Join(model.ErrNetwork, errors.New("timeout")), "Network error"},
		{errors.New("boom"), "boom"},
	}

	for _, test := range tests {
		result := ErrorText(loc, test.err)
		if !strings.Contains(result, test.contains) {
			t.Errorf("ErrorText(%v) = %q, expected to contain %q", test.err, result, test.contains)
		}
	}

	if ErrorText(loc, nil) != "" {
		t.Error("Expected empty text for nil error")
	}
}
