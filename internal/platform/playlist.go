package platform

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gaan/gaan-downloader/internal/model"
	"github.com/ytget/ytdlp/v2"
)

// Timeout constants
const (
	DefaultParseTimeout = 60 * time.Second
)

// URL parameters and separators
const (
	PlaylistParam  = "list="
	ParamSeparator = "&"
)

// URL templates
const (
	YouTubeVideoURLTemplate = "https://www.youtube.com/watch?v=%s"
)

// Default values
const (
	DefaultPlaylistName = "Unknown Playlist"
	PlaylistSuffix      = " Playlist"
	MaxTitleLength      = 50
	TitleTruncateSuffix = "..."
)

// playlistFetchFunc lists the entries of a playlist by its ID
type playlistFetchFunc func(ctx context.Context, playlistID string) ([]*model.PlaylistEntry, error)

// PlaylistService expands playlist URLs into their entries
type PlaylistService struct {
	timeout time.Duration
	fetch   playlistFetchFunc
}

// NewPlaylistService creates a playlist service backed by the ytdlp library
func NewPlaylistService() *PlaylistService {
	return &PlaylistService{
		timeout: DefaultParseTimeout,
		fetch:   fetchPlaylistEntries,
	}
}

// IsPlaylistURL reports whether the URL carries a playlist parameter
func IsPlaylistURL(url string) bool {
	return strings.Contains(url, PlaylistParam)
}

// ExtractPlaylistID extracts the playlist ID from watch and playlist URLs
func ExtractPlaylistID(url string) (string, error) {
	parts := strings.SplitN(url, PlaylistParam, 2)
	if len(parts) < 2 {
		return "", fmt.Errorf("URL does not contain playlist parameter")
	}

	playlistID := parts[1]
	if idx := strings.Index(playlistID, ParamSeparator); idx >= 0 {
		playlistID = playlistID[:idx]
	}
	if playlistID == "" {
		return "", fmt.Errorf("empty playlist ID")
	}
	return playlistID, nil
}

// ParsePlaylist resolves a playlist URL into its entries
func (p *PlaylistService) ParsePlaylist(ctx context.Context, url string) (*model.Playlist, error) {
	if !IsPlaylistURL(url) {
		return nil, fmt.Errorf("invalid playlist URL: %s", url)
	}

	playlistID, err := ExtractPlaylistID(url)
	if err != nil {
		return nil, fmt.Errorf("could not extract playlist ID from URL %s: %w", url, err)
	}

	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	entries, err := p.fetch(ctx, playlistID)
	if err != nil {
		return nil, fmt.Errorf("failed to get playlist items: %w: %v", model.ErrNetwork, err)
	}

	playlist := model.NewPlaylist(playlistID, url)
	for _, entry := range entries {
		playlist.AddEntry(entry)
	}
	playlist.Title = playlistTitle(playlist.Entries)
	return playlist, nil
}

// fetchPlaylistEntries lists playlist items through the ytdlp library
func fetchPlaylistEntries(ctx context.Context, playlistID string) ([]*model.PlaylistEntry, error) {
	d := ytdlp.New()
	items, err := d.GetPlaylistItemsAll(ctx, playlistID, 0)
	if err != nil {
		return nil, err
	}

	entries := make([]*model.PlaylistEntry, 0, len(items))
	for _, it := range items {
		entries = append(entries, &model.PlaylistEntry{
			ID:    it.VideoID,
			Title: it.Title,
			URL:   fmt.Sprintf(YouTubeVideoURLTemplate, it.VideoID),
		})
	}
	return entries, nil
}

// playlistTitle derives a display title from the first entry
func playlistTitle(entries []*model.PlaylistEntry) string {
	if len(entries) == 0 {
		return DefaultPlaylistName
	}
	title := entries[0].Title
	if len(title) > MaxTitleLength {
		title = title[:MaxTitleLength] + TitleTruncateSuffix
	}
	return title + PlaylistSuffix
}
