package model

import (
	"path/filepath"
	"strings"
	"time"
)

// DownloadKind selects between a video download and an audio-only download
type DownloadKind string

const (
	DownloadKindVideo DownloadKind = "video"
	DownloadKindAudio DownloadKind = "audio"
)

// DownloadJob describes one requested download and carries its runtime telemetry.
// A job exists only for the duration of one download operation.
type DownloadJob struct {
	ID         string
	Dir        string       // target directory
	Quality    string       // requested resolution ("720p") or bitrate ("160kbps")
	Format     string       // desired output container, e.g. "mkv"
	Kind       DownloadKind // video or audio
	Title      string       // video title
	Status     JobStatus
	Progress   float64   // 0.0 to 1.0
	Percent    int       // 0 to 100
	LastError  string    // last error message if any
	OutputPath string    // final file, set once known
	StartedAt  time.Time // when the job was created
	FinishedAt time.Time // when the job reached a terminal state
}

// GetDisplayTitle returns the title, or the output file name without extension
func (j *DownloadJob) GetDisplayTitle() string {
	if j.Title != "" {
		return j.Title
	}
	if j.OutputPath == "" {
		return ""
	}
	name := filepath.Base(j.OutputPath)
	return strings.TrimSuffix(name, filepath.Ext(name))
}
