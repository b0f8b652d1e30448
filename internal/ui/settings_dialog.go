package ui

import (
	"sort"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"

	"github.com/gaan/gaan-downloader/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings *config.Settings
	loc      *Localization
	window   fyne.Window
	dialog   *dialog.ConfirmDialog
	onSaved  func()

	// UI components
	downloadDirEntry *widget.Entry
	videoFormat      *widget.Select
	audioFormat      *widget.Select
	ffmpegEntry      *widget.Entry
	autoRevealCheck  *widget.Check
	languageSelect   *widget.Select
	logLevelSelect   *widget.Select
}

// ShowSettingsDialog builds the dialog, loads current values and shows it
func ShowSettingsDialog(window fyne.Window, settings *config.Settings, loc *Localization, onSaved func()) {
	sd := NewSettingsDialog(settings, loc, window)
	sd.onSaved = onSaved
	sd.Show()
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, loc *Localization, window fyne.Window) *SettingsDialog {
	sd := &SettingsDialog{
		settings: settings,
		loc:      loc,
		window:   window,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	// Download directory selection
	sd.downloadDirEntry = widget.NewEntry()
	sd.downloadDirEntry.SetPlaceHolder("Download directory path")

	browseDirBtn := widget.NewButton(sd.loc.GetText(KeyBrowse), sd.onBrowseDirectory)
	downloadDirRow := container.NewBorder(nil, nil, nil, browseDirBtn, sd.downloadDirEntry)

	sd.videoFormat = widget.NewSelect(config.VideoFormats, nil)
	sd.audioFormat = widget.NewSelect(config.AudioFormats, nil)

	sd.ffmpegEntry = widget.NewEntry()
	sd.ffmpegEntry.SetPlaceHolder(config.DefaultFFmpegPath)

	sd.autoRevealCheck = widget.NewCheck(sd.loc.GetText(KeyAutoReveal), nil)

	// Language selection, sorted by code for a stable order
	languageOptions := lo.Keys(sd.settings.GetLanguageOptions())
	sort.Strings(languageOptions)
	sd.languageSelect = widget.NewSelect(languageOptions, nil)
	sd.languageSelect.PlaceHolder = "Select language"

	sd.logLevelSelect = widget.NewSelect(lo.Map(logrus.AllLevels, func(l logrus.Level, _ int) string {
		return l.String()
	}), nil)

	// Create form
	form := container.NewVBox(
		widget.NewLabel(sd.loc.GetText(KeyDownloadDirectory)+":"),
		downloadDirRow,

		widget.NewLabel(sd.loc.GetText(KeyVideoFormat)+":"),
		sd.videoFormat,

		widget.NewLabel(sd.loc.GetText(KeyAudioFormat)+":"),
		sd.audioFormat,

		widget.NewLabel(sd.loc.GetText(KeyFFmpegPath)+":"),
		sd.ffmpegEntry,

		sd.autoRevealCheck,

		widget.NewSeparator(),

		widget.NewLabel(sd.loc.GetText(KeyLanguage)+":"),
		sd.languageSelect,

		widget.NewLabel("Log level:"),
		sd.logLevelSelect,
	)

	// Create dialog with buttons
	sd.dialog = dialog.NewCustomConfirm(
		sd.loc.GetText(KeySettings),
		sd.loc.GetText(KeySave),
		sd.loc.GetText(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(500, 520))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.downloadDirEntry.SetText(sd.settings.GetDownloadDirectory())
	sd.videoFormat.SetSelected(sd.settings.GetVideoFormat())
	sd.audioFormat.SetSelected(sd.settings.GetAudioFormat())
	sd.ffmpegEntry.SetText(sd.settings.GetFFmpegPath())
	sd.autoRevealCheck.SetChecked(sd.settings.GetAutoRevealOnComplete())
	sd.languageSelect.SetSelected(sd.settings.GetLanguage())
	sd.logLevelSelect.SetSelected(sd.settings.GetLogLevel())
}

// onBrowseDirectory handles directory browsing
func (sd *SettingsDialog) onBrowseDirectory() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		sd.downloadDirEntry.SetText(uri.Path())
	}, sd.window)
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	if downloadDir := sd.downloadDirEntry.Text; downloadDir != "" {
		sd.settings.SetDownloadDirectory(downloadDir)
	}
	sd.settings.SetVideoFormat(sd.videoFormat.Selected)
	sd.settings.SetAudioFormat(sd.audioFormat.Selected)
	sd.settings.SetFFmpegPath(sd.ffmpegEntry.Text)
	sd.settings.SetAutoRevealOnComplete(sd.autoRevealCheck.Checked)

	if sd.languageSelect.Selected != "" {
		sd.settings.SetLanguage(sd.languageSelect.Selected)
	}
	if level, err := logrus.ParseLevel(sd.logLevelSelect.Selected); err == nil {
		sd.settings.SetLogLevel(level.String())
		logrus.SetLevel(level)
	}

	if sd.onSaved != nil {
		sd.onSaved()
	}
	dialog.ShowInformation(sd.loc.GetText(KeySettings), sd.loc.GetText(KeySettingsSaved), sd.window)
}
