package ui

import (
	"context"
	"io"
	"testing"

	"github.com/gaan/gaan-downloader/internal/model"
	"github.com/gaan/gaan-downloader/internal/stream"
)

type fakeSource struct {
	title   string
	thumb   string
	streams []model.StreamDescriptor
}

func (s *fakeSource) Title() string                     { return s.title }
func (s *fakeSource) ThumbnailURL() string              { return s.thumb }
func (s *fakeSource) Streams() []model.StreamDescriptor { return s.streams }
func (s *fakeSource) Download(ctx context.Context, desc model.StreamDescriptor, w io.Writer, onProgress stream.ProgressFunc) error {
	return nil
}

func newTestSession(t *testing.T) *stream.Session {
	t.Helper()
	session, err := stream.NewSession("https://youtu.be/abc", &fakeSource{
		title: "Sample",
		thumb: "http://img/t.jpg",
		streams: []model.StreamDescriptor{
			{Itag: 22, Kind: model.StreamKindProgressive, Container: "mp4", Resolution: "720p"},
			{Itag: 137, Kind: model.StreamKindVideo, Container: "mp4", Resolution: "1080p"},
			{Itag: 140, Kind: model.StreamKindAudio, Container: "mp4", Bitrate: "128kbps"},
		},
	})
	if err != nil {
		t.Fatalf("Failed to create session: %v", err)
	}
	return session
}

type fakeFetcher struct {
	session *stream.Session
	err     error
	urls    []string
}

func (f *fakeFetcher) FetchInfo(ctx context.Context, url string) (*stream.Session, error) {
	f.urls = append(f.urls, url)
	return f.session, f.err
}

type fakePlaylists struct {
	playlist *model.Playlist
	err      error
}

func (p *fakePlaylists) ParsePlaylist(ctx context.Context, url string) (*model.Playlist, error) {
	return p.playlist, p.err
}

// fakeDownloader replays a fixed sequence of job updates
type fakeDownloader struct {
	onUpdate func(*model.DownloadJob)
	updates  []model.DownloadJob
	output   string
	err      error
	lastKind model.DownloadKind
}

func (d *fakeDownloader) SetUpdateCallback(cb func(*model.DownloadJob)) { d.onUpdate = cb }

func (d *fakeDownloader) run(kind model.DownloadKind) (*model.DownloadJob, error) {
	d.lastKind = kind
	for i := range d.updates {
		job := d.updates[i]
		d.onUpdate(&job)
	}
	job := &model.DownloadJob{Kind: kind, OutputPath: d.output}
	return job, d.err
}

func (d *fakeDownloader) DownloadVideo(ctx context.Context, session *stream.Session, dir, resolution, format string) (*model.DownloadJob, error) {
	return d.run(model.DownloadKindVideo)
}

func (d *fakeDownloader) DownloadAudio(ctx context.Context, session *stream.Session, dir, bitrate, format string) (*model.DownloadJob, error) {
	return d.run(model.DownloadKindAudio)
}
