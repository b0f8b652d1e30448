package config

import (
	"testing"

	"fyne.io/fyne/v2/test"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestDownloadDirectory(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	dir := settings.GetDownloadDirectory()
	if dir == "" {
		t.Error("Download directory should not be empty")
	}

	// Test setting custom value
	customDir := "/custom/downloads"
	settings.SetDownloadDirectory(customDir)

	retrievedDir := settings.GetDownloadDirectory()
	if retrievedDir != customDir {
		t.Errorf("Expected download directory %s, got %s", customDir, retrievedDir)
	}
}

func TestFormats(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default values
	if settings.GetVideoFormat() != DefaultVideoFormat {
		t.Errorf("Expected default video format %s, got %s", DefaultVideoFormat, settings.GetVideoFormat())
	}
	if settings.GetAudioFormat() != DefaultAudioFormat {
		t.Errorf("Expected default audio format %s, got %s", DefaultAudioFormat, settings.GetAudioFormat())
	}

	// Test setting custom values
	settings.SetVideoFormat("mkv")
	settings.SetAudioFormat("flac")
	if settings.GetVideoFormat() != "mkv" {
		t.Errorf("Expected video format mkv, got %s", settings.GetVideoFormat())
	}
	if settings.GetAudioFormat() != "flac" {
		t.Errorf("Expected audio format flac, got %s", settings.GetAudioFormat())
	}

	// Unknown formats are ignored
	settings.SetVideoFormat("mp3")
	settings.SetAudioFormat("exe")
	if settings.GetVideoFormat() != "mkv" {
		t.Errorf("Expected video format to stay mkv, got %s", settings.GetVideoFormat())
	}
	if settings.GetAudioFormat() != "flac" {
		t.Errorf("Expected audio format to stay flac, got %s", settings.GetAudioFormat())
	}
}

func TestVideoFormatRejectsWebM(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	settings.SetVideoFormat("webm")
	if settings.GetVideoFormat() != DefaultVideoFormat {
		t.Errorf("Expected webm to be refused, got %s", settings.GetVideoFormat())
	}

	// A value stored by an older version falls back to the default
	app.Preferences().SetString(KeyVideoFormat, "webm")
	if settings.GetVideoFormat() != DefaultVideoFormat {
		t.Errorf("Expected stored webm to fall back to %s, got %s", DefaultVideoFormat, settings.GetVideoFormat())
	}
}

func TestGetFormatOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	tests := []struct {
		audio    bool
		expected []string
	}{
		{false, []string{"mp4", "mkv", "avi", "mov"}},
		{true, []string{"mp3", "wav", "aac", "flac", "ogg"}},
	}

	for _, test := range tests {
		options := settings.GetFormatOptions(test.audio)
		if len(options) != len(test.expected) {
			t.Fatalf("Expected %d format options, got %d", len(test.expected), len(options))
		}
		for i, expected := range test.expected {
			if options[i] != expected {
				t.Errorf("Format option %d: expected %s, got %s", i, expected, options[i])
			}
		}
	}
}

func TestFFmpegPath(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.GetFFmpegPath() != DefaultFFmpegPath {
		t.Errorf("Expected default ffmpeg path %s, got %s", DefaultFFmpegPath, settings.GetFFmpegPath())
	}

	settings.SetFFmpegPath("/opt/ffmpeg/bin/ffmpeg")
	if settings.GetFFmpegPath() != "/opt/ffmpeg/bin/ffmpeg" {
		t.Errorf("Expected custom ffmpeg path, got %s", settings.GetFFmpegPath())
	}

	// Empty path restores the default
	settings.SetFFmpegPath("")
	if settings.GetFFmpegPath() != DefaultFFmpegPath {
		t.Errorf("Expected default ffmpeg path after reset, got %s", settings.GetFFmpegPath())
	}
}

func TestLanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	lang := settings.GetLanguage()
	if lang != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, lang)
	}

	// Test setting custom value
	settings.SetLanguage("en")

	retrievedLang := settings.GetLanguage()
	if retrievedLang != "en" {
		t.Errorf("Expected language 'en', got %s", retrievedLang)
	}
}

func TestLogLevelAndAutoReveal(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.GetLogLevel() != DefaultLogLevel {
		t.Errorf("Expected default log level %s, got %s", DefaultLogLevel, settings.GetLogLevel())
	}
	settings.SetLogLevel("debug")
	if settings.GetLogLevel() != "debug" {
		t.Errorf("Expected log level debug, got %s", settings.GetLogLevel())
	}

	if settings.GetAutoRevealOnComplete() != DefaultAutoRevealComplete {
		t.Error("Expected default auto-reveal setting")
	}
	settings.SetAutoRevealOnComplete(false)
	if settings.GetAutoRevealOnComplete() {
		t.Error("Expected auto-reveal to be disabled")
	}
}

func TestGetLanguageOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	options := settings.GetLanguageOptions()

	expectedLangs := []string{"system", "en", "ru", "pt"}
	for _, lang := range expectedLangs {
		if _, exists := options[lang]; !exists {
			t.Errorf("Expected language option '%s' to exist", lang)
		}
	}

	if len(options) != len(expectedLangs) {
		t.Errorf("Expected %d language options, got %d", len(expectedLangs), len(options))
	}
}
