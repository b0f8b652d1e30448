package model

import (
	"time"
)

// PlaylistEntry represents a single video listed in a playlist
type PlaylistEntry struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	URL   string `json:"url"`
}

// Playlist represents a playlist whose entries can be fetched one at a time
type Playlist struct {
	ID        string           `json:"id"`
	Title     string           `json:"title"`
	URL       string           `json:"url"`
	Entries   []*PlaylistEntry `json:"entries"`
	CreatedAt time.Time        `json:"created_at"`
}

// NewPlaylist creates a new playlist instance
func NewPlaylist(id, url string) *Playlist {
	return &Playlist{
		ID:        id,
		URL:       url,
		Entries:   make([]*PlaylistEntry, 0),
		CreatedAt: time.Now(),
	}
}

// AddEntry appends an entry to the playlist
func (p *Playlist) AddEntry(entry *PlaylistEntry) {
	p.Entries = append(p.Entries, entry)
}

// FindEntry returns the entry with the given title
func (p *Playlist) FindEntry(title string) (*PlaylistEntry, bool) {
	for _, entry := range p.Entries {
		if entry.Title == title {
			return entry, true
		}
	}
	return nil, false
}

// Titles returns entry titles in playlist order
func (p *Playlist) Titles() []string {
	titles := make([]string, 0, len(p.Entries))
	for _, entry := range p.Entries {
		titles = append(titles, entry.Title)
	}
	return titles
}
