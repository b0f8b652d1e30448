package ui

import (
	"github.com/gaan/gaan-downloader/internal/model"
	"github.com/gaan/gaan-downloader/internal/stream"
)

// Message is posted by worker goroutines and applied on the UI thread
type Message interface {
	isMessage()
}

// FetchStarted is posted when a fetch worker begins
type FetchStarted struct{ URL string }

// FetchSucceeded carries the new session and the outcome of its thumbnail request.
// It is the last message of a fetch worker.
type FetchSucceeded struct {
	Session      *stream.Session
	Thumbnail    []byte // nil when ThumbnailErr is set or the video has no thumbnail
	ThumbnailErr error
}

// FetchFailed carries the reason a fetch was aborted
type FetchFailed struct{ Err error }

// PlaylistLoaded carries the entries of a playlist URL
type PlaylistLoaded struct{ Playlist *model.Playlist }

// DownloadProgress reports the percentage of the stream currently being received
type DownloadProgress struct{ Percent int }

// DownloadConverting is posted once the media tool takes over
type DownloadConverting struct{}

// DownloadSucceeded carries the finished file and the title to show for it
type DownloadSucceeded struct {
	Kind  model.DownloadKind
	Path  string
	Title string
}

// DownloadFailed carries the reason a download was aborted
type DownloadFailed struct{ Err error }

func (FetchStarted) isMessage()       {}
func (FetchSucceeded) isMessage()     {}
func (FetchFailed) isMessage()        {}
func (PlaylistLoaded) isMessage()     {}
func (DownloadProgress) isMessage()   {}
func (DownloadConverting) isMessage() {}
func (DownloadSucceeded) isMessage()  {}
func (DownloadFailed) isMessage()     {}
