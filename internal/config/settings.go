package config

import (
	"fyne.io/fyne/v2"
	"github.com/samber/lo"

	"github.com/gaan/gaan-downloader/internal/platform"
)

// Settings keys for Fyne preferences
const (
	KeyDownloadDir        = "download_directory"
	KeyVideoFormat        = "video_format"
	KeyAudioFormat        = "audio_format"
	KeyFFmpegPath         = "ffmpeg_path"
	KeyLanguage           = "app_language"
	KeyAutoRevealComplete = "auto_reveal_on_complete"
	KeyLogLevel           = "log_level"
)

// Default values
const (
	DefaultVideoFormat        = "mp4"
	DefaultAudioFormat        = "mp3"
	DefaultFFmpegPath         = platform.DefaultFFmpegCommand
	DefaultLanguage           = "system"
	DefaultAutoRevealComplete = true
	DefaultLogLevel           = "info"
)

// Output containers offered in the format selector. Video containers must
// accept H.264 video and AAC audio, since merges copy the video track.
var (
	VideoFormats = []string{"mp4", "mkv", "avi", "mov"}
	AudioFormats = []string{"mp3", "wav", "aac", "flac", "ogg"}
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetDownloadDirectory returns the configured download directory
func (s *Settings) GetDownloadDirectory() string {
	dir := s.app.Preferences().String(KeyDownloadDir)
	if dir == "" {
		// Use system default Downloads directory
		defaultDir, err := platform.GetHomeDownloadsDir()
		if err != nil {
			defaultDir = "."
		}
		s.SetDownloadDirectory(defaultDir)
		return defaultDir
	}
	return dir
}

// SetDownloadDirectory sets the download directory
func (s *Settings) SetDownloadDirectory(dir string) {
	s.app.Preferences().SetString(KeyDownloadDir, dir)
}

// GetVideoFormat returns the default output container for video downloads
func (s *Settings) GetVideoFormat() string {
	format := s.app.Preferences().StringWithFallback(KeyVideoFormat, DefaultVideoFormat)
	if !lo.Contains(VideoFormats, format) {
		return DefaultVideoFormat
	}
	return format
}

// SetVideoFormat sets the default video container; unknown formats are ignored
func (s *Settings) SetVideoFormat(format string) {
	if !lo.Contains(VideoFormats, format) {
		return
	}
	s.app.Preferences().SetString(KeyVideoFormat, format)
}

// GetAudioFormat returns the default output container for audio downloads
func (s *Settings) GetAudioFormat() string {
	return s.app.Preferences().StringWithFallback(KeyAudioFormat, DefaultAudioFormat)
}

// SetAudioFormat sets the default audio container; unknown formats are ignored
func (s *Settings) SetAudioFormat(format string) {
	if !lo.Contains(AudioFormats, format) {
		return
	}
	s.app.Preferences().SetString(KeyAudioFormat, format)
}

// GetFFmpegPath returns the ffmpeg command or path
func (s *Settings) GetFFmpegPath() string {
	path := s.app.Preferences().String(KeyFFmpegPath)
	if path == "" {
		return DefaultFFmpegPath
	}
	return path
}

// SetFFmpegPath sets the ffmpeg command; empty restores the default
func (s *Settings) SetFFmpegPath(path string) {
	s.app.Preferences().SetString(KeyFFmpegPath, path)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetAutoRevealOnComplete returns whether to auto-reveal completed downloads
func (s *Settings) GetAutoRevealOnComplete() bool {
	return s.app.Preferences().BoolWithFallback(KeyAutoRevealComplete, DefaultAutoRevealComplete)
}

// SetAutoRevealOnComplete sets whether to auto-reveal completed downloads
func (s *Settings) SetAutoRevealOnComplete(autoReveal bool) {
	s.app.Preferences().SetBool(KeyAutoRevealComplete, autoReveal)
}

// GetLogLevel returns the logrus level name
func (s *Settings) GetLogLevel() string {
	return s.app.Preferences().StringWithFallback(KeyLogLevel, DefaultLogLevel)
}

// SetLogLevel sets the logrus level name
func (s *Settings) SetLogLevel(level string) {
	s.app.Preferences().SetString(KeyLogLevel, level)
}

// GetFormatOptions returns the containers offered for a download kind
func (s *Settings) GetFormatOptions(audio bool) []string {
	if audio {
		return AudioFormats
	}
	return VideoFormats
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}
