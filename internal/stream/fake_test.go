package stream

import (
	"context"
	"errors"
	"io"

	"github.com/gaan/gaan-downloader/internal/model"
)

type fakeSource struct {
	title   string
	thumb   string
	streams []model.StreamDescriptor
	payload []byte
}

func (s *fakeSource) Title() string                     { return s.title }
func (s *fakeSource) ThumbnailURL() string              { return s.thumb }
func (s *fakeSource) Streams() []model.StreamDescriptor { return s.streams }

func (s *fakeSource) Download(ctx context.Context, desc model.StreamDescriptor, w io.Writer, onProgress ProgressFunc) error {
	pw := newProgressWriter(desc, int64(len(s.payload)), onProgress)
	_, err := io.MultiWriter(w, pw).Write(s.payload)
	return err
}

type fakeProvider struct {
	src Source
	err error
}

func (p *fakeProvider) Resolve(ctx context.Context, url string) (Source, error) {
	if p.err != nil {
		return nil, p.err
	}
	return p.src, nil
}

var errOffline = errors.New("dial tcp: no route to host")
