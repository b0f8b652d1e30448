package ui

import (
	"errors"
	"fmt"

	"github.com/gaan/gaan-downloader/internal/model"
	"github.com/gaan/gaan-downloader/internal/stream"
)

// ViewState is everything the window renders that depends on worker results
type ViewState struct {
	FetchEnabled    bool
	DownloadEnabled bool
	Status          string
	Title           string
	Progress        float64 // 0.0 to 1.0
	Mode            model.DownloadKind
	Qualities       []string // resolutions or bitrates depending on Mode
	Session         *stream.Session
	Playlist        *model.Playlist
	Thumbnail       []byte
	LastOutput      string
}

// OptionsEnabled reports whether mode, format and playlist choices may change.
// They are locked while a fetch or download worker is in flight.
func (s ViewState) OptionsEnabled() bool {
	return s.FetchEnabled
}

// Presenter owns the ViewState. It is only touched from the UI thread.
type Presenter struct {
	loc   *Localization
	state ViewState
}

// NewPresenter creates the initial state: fetch allowed, download disabled
func NewPresenter(loc *Localization) *Presenter {
	return &Presenter{
		loc: loc,
		state: ViewState{
			FetchEnabled: true,
			Status:       loc.GetText(KeyStatusIdle),
			Title:        loc.GetText(KeyTitlePlaceholder),
			Mode:         model.DownloadKindVideo,
		},
	}
}

// State returns a copy of the current state
func (p *Presenter) State() ViewState {
	return p.state
}

// SetMode switches between video and audio and refreshes the quality list
func (p *Presenter) SetMode(kind model.DownloadKind) {
	p.state.Mode = kind
	p.state.Qualities = p.qualities()
}

// BeginFetch disables both actions; false when a worker is already running
func (p *Presenter) BeginFetch() bool {
	if !p.state.FetchEnabled {
		return false
	}
	p.state.FetchEnabled = false
	p.state.DownloadEnabled = false
	p.state.Status = p.loc.GetText(KeyStatusFetching)
	return true
}

// BeginDownload disables both actions; false without a usable session
func (p *Presenter) BeginDownload() bool {
	if !p.state.DownloadEnabled || !p.state.Session.Ready() {
		return false
	}
	p.state.FetchEnabled = false
	p.state.DownloadEnabled = false
	p.state.Progress = 0
	p.state.Status = p.loc.GetText(KeyStatusStarting)
	return true
}

// Apply folds one worker message into the state
func (p *Presenter) Apply(msg Message) {
	switch m := msg.(type) {
	case FetchStarted:
		p.state.Status = p.loc.GetText(KeyStatusFetching)

	case FetchSucceeded:
		p.state.Session = m.Session
		p.state.Playlist = nil
		p.state.Title = m.Session.Info.Title
		p.state.Thumbnail = m.Thumbnail
		p.state.Qualities = p.qualities()
		p.state.FetchEnabled = true
		p.state.DownloadEnabled = m.Session.Info.HasStreams()
		p.state.Status = p.loc.GetText(KeyStatusSelectFormat)
		if m.ThumbnailErr != nil {
			p.state.Status = p.loc.GetText(KeyStatusThumbnailError) + " " + p.state.Status
		}

	case FetchFailed:
		p.state.Session = nil
		p.state.Qualities = nil
		p.state.FetchEnabled = true
		p.state.DownloadEnabled = false
		p.state.Status = p.loc.GetText(KeyStatusFetchError) + ": " + ErrorText(p.loc, m.Err)

	case PlaylistLoaded:
		p.state.Playlist = m.Playlist
		p.state.FetchEnabled = true
		p.state.Status = fmt.Sprintf(p.loc.GetText(KeyStatusPlaylistLoaded), len(m.Playlist.Entries))

	case DownloadProgress:
		p.state.Progress = float64(m.Percent) / 100
		p.state.Status = fmt.Sprintf(p.loc.GetText(KeyStatusDownloading), m.Percent)

	case DownloadConverting:
		p.state.Status = p.loc.GetText(KeyStatusConverting)

	case DownloadSucceeded:
		p.finishDownload()
		p.state.LastOutput = m.Path
		p.state.Status = p.loc.GetText(KeyStatusCompleted)

	case DownloadFailed:
		p.finishDownload()
		p.state.Status = p.loc.GetText(KeyStatusDownloadFailed) + ": " + ErrorText(p.loc, m.Err)
	}
}

func (p *Presenter) finishDownload() {
	p.state.Progress = 0
	p.state.FetchEnabled = true
	p.state.DownloadEnabled = p.state.Session.Ready()
}

func (p *Presenter) qualities() []string {
	if p.state.Session == nil {
		return nil
	}
	if p.state.Mode == model.DownloadKindAudio {
		return p.state.Session.Info.Bitrates
	}
	return p.state.Session.Info.Resolutions
}

// ErrorText maps an error kind onto a localized message
func ErrorText(loc *Localization, err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, model.ErrNoStreamsAvailable):
		return loc.GetText(KeyErrNoStreams)
	case errors.Is(err, model.ErrNoStreamFound):
		return loc.GetText(KeyErrNoStreamFound)
	case errors.Is(err, model.ErrToolMissing):
		return loc.GetText(KeyErrToolMissing)
	case errors.Is(err, model.ErrNotFetched):
		return loc.GetText(KeyErrNotFetched)
	case errors.Is(err, model.ErrMergeFailed):
		return loc.GetText(KeyErrMerge) + detail(err)
	case errors.Is(err, model.ErrConversionFailed):
		return loc.GetText(KeyErrConversion) + detail(err)
	case errors.Is(err, model.ErrNetwork):
		return loc.GetText(KeyErrNetwork) + detail(err)
	default:
		return err.Error()
	}
}

// detail appends the tool diagnostic or the raw error
func detail(err error) string {
	var toolErr *model.ToolError
	if errors.As(err, &toolErr) && toolErr.Diagnostic != "" {
		return " (" + toolErr.Diagnostic + ")"
	}
	return " (" + err.Error() + ")"
}
