package stream

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/gaan/gaan-downloader/internal/model"
)

// Fetcher turns a URL into a Session
type Fetcher struct {
	provider StreamProvider
	log      *logrus.Entry
}

// NewFetcher creates a fetcher on top of the given provider
func NewFetcher(provider StreamProvider) *Fetcher {
	return &Fetcher{
		provider: provider,
		log:      logrus.WithField("component", "fetcher"),
	}
}

// FetchInfo resolves url and collects its distinct resolutions and bitrates.
// Metadata failures are reported as model.ErrNetwork; a video without usable
// streams as model.ErrNoStreamsAvailable.
func (f *Fetcher) FetchInfo(ctx context.Context, url string) (*Session, error) {
	f.log.WithField("url", url).Info("Fetching video info")

	src, err := f.provider.Resolve(ctx, url)
	if err != nil {
		if !errors.Is(err, model.ErrNetwork) {
			err = fmt.Errorf("%w: %w", model.ErrNetwork, err)
		}
		f.log.WithError(err).Error("Failed to resolve video")
		return nil, fmt.Errorf("failed to fetch video info: %w", err)
	}

	session, err := NewSession(url, src)
	if err != nil {
		f.log.WithError(err).Warn("Video has no downloadable streams")
		return nil, err
	}

	f.log.WithFields(logrus.Fields{
		"title":       session.Info.Title,
		"resolutions": session.Info.Resolutions,
		"bitrates":    session.Info.Bitrates,
	}).Info("Video info fetched")
	return session, nil
}
