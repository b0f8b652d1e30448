package ui

import (
	"context"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/gaan/gaan-downloader/internal/download"
	"github.com/gaan/gaan-downloader/internal/model"
	"github.com/gaan/gaan-downloader/internal/platform"
	"github.com/gaan/gaan-downloader/internal/stream"
)

// InfoFetcher resolves a single video URL into a session
type InfoFetcher interface {
	FetchInfo(ctx context.Context, url string) (*stream.Session, error)
}

// PlaylistResolver expands a playlist URL into its entries
type PlaylistResolver interface {
	ParsePlaylist(ctx context.Context, url string) (*model.Playlist, error)
}

// ThumbnailFunc loads the image bytes behind a thumbnail URL
type ThumbnailFunc func(ctx context.Context, url string) ([]byte, error)

// DownloadRequest is the user's selection at the time Download was pressed
type DownloadRequest struct {
	Session *stream.Session
	Dir     string
	Kind    model.DownloadKind
	Quality string
	Format  string
}

// Actions run the blocking work of the window. Each method is meant to run on
// its own goroutine and reports only through the relay.
type Actions struct {
	relay     *Relay
	fetcher   InfoFetcher
	playlists PlaylistResolver
	downloads download.Downloader
	thumbnail ThumbnailFunc
	log       *logrus.Entry

	progressMutex sync.Mutex
	lastPercent   int
	lastStatus    model.JobStatus
}

// NewActions wires the workers to the relay and registers for job updates
func NewActions(relay *Relay, fetcher InfoFetcher, playlists PlaylistResolver, downloads download.Downloader, thumbnail ThumbnailFunc) *Actions {
	a := &Actions{
		relay:     relay,
		fetcher:   fetcher,
		playlists: playlists,
		downloads: downloads,
		thumbnail: thumbnail,
		log:       logrus.WithField("component", "ui"),
	}
	downloads.SetUpdateCallback(a.onJobUpdate)
	return a
}

// Fetch resolves url. Playlist URLs yield PlaylistLoaded, everything else a
// session together with its thumbnail, so the terminal message is sent only
// once all network work is done.
func (a *Actions) Fetch(ctx context.Context, url string) {
	url = CleanURL(url)
	a.relay.Send(FetchStarted{URL: url})

	if platform.IsPlaylistURL(url) && a.playlists != nil {
		playlist, err := a.playlists.ParsePlaylist(ctx, url)
		if err != nil {
			a.log.WithError(err).Warn("Playlist parsing failed")
			a.relay.Send(FetchFailed{Err: err})
			return
		}
		a.relay.Send(PlaylistLoaded{Playlist: playlist})
		return
	}

	session, err := a.fetcher.FetchInfo(ctx, url)
	if err != nil {
		a.relay.Send(FetchFailed{Err: err})
		return
	}

	msg := FetchSucceeded{Session: session}
	if session.Info.ThumbnailURL != "" && a.thumbnail != nil {
		msg.Thumbnail, msg.ThumbnailErr = a.thumbnail(ctx, session.Info.ThumbnailURL)
		if msg.ThumbnailErr != nil {
			a.log.WithError(msg.ThumbnailErr).Warn("Could not load thumbnail")
			msg.Thumbnail = nil
		}
	}
	a.relay.Send(msg)
}

// Download runs one download to completion
func (a *Actions) Download(ctx context.Context, req DownloadRequest) {
	a.progressMutex.Lock()
	a.lastPercent = -1
	a.lastStatus = model.JobStatusPending
	a.progressMutex.Unlock()

	var (
		job *model.DownloadJob
		err error
	)
	if req.Kind == model.DownloadKindAudio {
		job, err = a.downloads.DownloadAudio(ctx, req.Session, req.Dir, req.Quality, req.Format)
	} else {
		job, err = a.downloads.DownloadVideo(ctx, req.Session, req.Dir, req.Quality, req.Format)
	}
	if err != nil {
		a.relay.Send(DownloadFailed{Err: err})
		return
	}
	a.relay.Send(DownloadSucceeded{Kind: req.Kind, Path: job.OutputPath, Title: job.GetDisplayTitle()})
}

// onJobUpdate forwards changes of percentage or phase; terminal states are
// reported by Download itself.
func (a *Actions) onJobUpdate(job *model.DownloadJob) {
	a.progressMutex.Lock()
	defer a.progressMutex.Unlock()

	if !job.Status.IsActive() {
		return
	}
	switch job.Status {
	case model.JobStatusDownloading:
		if job.Percent != a.lastPercent {
			a.lastPercent = job.Percent
			a.relay.Send(DownloadProgress{Percent: job.Percent})
		}
	case model.JobStatusConverting:
		if a.lastStatus != model.JobStatusConverting {
			a.relay.Send(DownloadConverting{})
		}
	}
	a.lastStatus = job.Status
}

// CleanURL strips line breaks and surrounding whitespace from pasted URLs
func CleanURL(url string) string {
	url = strings.ReplaceAll(url, "\n", "")
	url = strings.ReplaceAll(url, "\r", "")
	url = strings.ReplaceAll(url, "\t", " ")
	return strings.TrimSpace(url)
}
