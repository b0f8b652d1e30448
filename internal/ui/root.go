package ui

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"slices"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"github.com/gaan/gaan-downloader/internal/config"
	"github.com/gaan/gaan-downloader/internal/model"
	"github.com/gaan/gaan-downloader/internal/platform"
)

// RootUI represents the main window
type RootUI struct {
	ctx          context.Context
	window       fyne.Window
	settings     *config.Settings
	fs           afero.Fs
	localization *Localization
	relay        *Relay
	actions      *Actions
	presenter    *Presenter
	log          *logrus.Entry

	urlEntry       *widget.Entry
	checkBtn       *widget.Button
	modeRadio      *widget.RadioGroup
	qualitySelect  *widget.Select
	formatSelect   *widget.Select
	downloadBtn    *widget.Button
	progressBar    *widget.ProgressBar
	thumbnail      *canvas.Image
	titleLabel     *widget.Label
	statusLabel    *widget.Label
	infoCard       *widget.Card
	playlistSelect *widget.Select
}

// NewRootUI creates and initializes the main window content
func NewRootUI(ctx context.Context, window fyne.Window, settings *config.Settings, fs afero.Fs, relay *Relay, actions *Actions) *RootUI {
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		ctx:          ctx,
		window:       window,
		settings:     settings,
		fs:           fs,
		localization: localization,
		relay:        relay,
		actions:      actions,
		presenter:    NewPresenter(localization),
		log:          logrus.WithField("component", "ui"),
	}

	window.SetTitle(localization.GetText(KeyAppTitle))
	ui.setupUI()
	ui.render()
	return ui
}

// Start begins draining the relay until the context ends
func (ui *RootUI) Start() {
	go ui.relay.Run(ui.ctx, func(batch []Message) {
		fyne.Do(func() { ui.applyAll(batch) })
	})
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	ui.urlEntry = widget.NewEntry()
	ui.urlEntry.SetPlaceHolder(ui.localization.GetText(KeyEnterURL))
	ui.urlEntry.Validator = ui.validateURL
	ui.urlEntry.OnSubmitted = func(string) { ui.onCheckClick() }

	ui.checkBtn = widget.NewButton(ui.localization.GetText(KeyCheck), ui.onCheckClick)
	ui.checkBtn.Importance = widget.HighImportance

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	left := container.NewHBox(settingsBtn)
	if logo, err := LoadLogoResource(); err == nil {
		logoImage := canvas.NewImageFromResource(logo)
		logoImage.SetMinSize(fyne.NewSize(32, 32))
		logoImage.FillMode = canvas.ImageFillContain
		left = container.NewHBox(logoImage, settingsBtn)
	}
	urlRow := container.NewBorder(nil, nil, left, ui.checkBtn, ui.urlEntry)

	ui.playlistSelect = widget.NewSelect(nil, ui.onPlaylistEntrySelected)
	ui.playlistSelect.PlaceHolder = ui.localization.GetText(KeyPlaylistEntries)
	ui.playlistSelect.Hide()

	ui.modeRadio = widget.NewRadioGroup(ui.modeOptions(), ui.onModeChanged)
	ui.modeRadio.Horizontal = true
	ui.modeRadio.Required = true

	ui.qualitySelect = widget.NewSelect(nil, nil)
	ui.qualitySelect.PlaceHolder = ui.localization.GetText(KeyQuality)

	ui.formatSelect = widget.NewSelect(nil, nil)
	ui.formatSelect.PlaceHolder = ui.localization.GetText(KeyFormat)

	ui.downloadBtn = widget.NewButton(ui.localization.GetText(KeyDownload), ui.onDownloadClick)
	ui.downloadBtn.Importance = widget.SuccessImportance

	ui.progressBar = widget.NewProgressBar()

	ui.thumbnail = canvas.NewImageFromImage(PlaceholderThumbnail())
	ui.thumbnail.FillMode = canvas.ImageFillContain
	ui.thumbnail.SetMinSize(fyne.NewSize(ThumbnailWidth, ThumbnailHeight))

	ui.titleLabel = widget.NewLabel("")
	ui.titleLabel.Alignment = fyne.TextAlignCenter
	ui.titleLabel.TextStyle = fyne.TextStyle{Bold: true}
	ui.titleLabel.Wrapping = fyne.TextWrapWord

	ui.statusLabel = widget.NewLabel("")
	ui.statusLabel.Alignment = fyne.TextAlignCenter
	ui.statusLabel.Wrapping = fyne.TextWrapWord

	ui.infoCard = widget.NewCard(ui.localization.GetText(KeyVideoInformation), "",
		container.NewVBox(container.NewCenter(ui.thumbnail), ui.titleLabel, ui.statusLabel))

	options := container.NewGridWithColumns(3, ui.modeRadio, ui.qualitySelect, ui.formatSelect)

	content := container.NewVBox(
		urlRow,
		ui.playlistSelect,
		options,
		ui.downloadBtn,
		ui.progressBar,
		ui.infoCard,
	)

	ui.modeRadio.SetSelected(ui.localization.GetText(KeyVideo))
	ui.window.SetContent(container.NewPadded(content))
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))
	for code, name := range ui.localization.GetAvailableLanguages() {
		langCode := code
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})
		langItem.Checked = ui.localization.GetCurrentLanguage() == code
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	ui.window.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem),
		languageMenu,
	))
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.refreshUITexts()
	ui.createMenu()
}

// refreshUITexts updates all static UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.urlEntry.SetPlaceHolder(ui.localization.GetText(KeyEnterURL))
	ui.checkBtn.SetText(ui.localization.GetText(KeyCheck))
	ui.downloadBtn.SetText(ui.localization.GetText(KeyDownload))
	ui.infoCard.SetTitle(ui.localization.GetText(KeyVideoInformation))

	audio := ui.presenter.State().Mode == model.DownloadKindAudio
	ui.modeRadio.Options = ui.modeOptions()
	ui.modeRadio.Selected = ui.modeLabel(audio)
	ui.modeRadio.Refresh()
}

func (ui *RootUI) modeOptions() []string {
	return []string{ui.localization.GetText(KeyVideo), ui.localization.GetText(KeyAudio)}
}

func (ui *RootUI) modeLabel(audio bool) string {
	if audio {
		return ui.localization.GetText(KeyAudio)
	}
	return ui.localization.GetText(KeyVideo)
}

// validateURL validates the entered URL
func (ui *RootUI) validateURL(input string) error {
	if strings.TrimSpace(input) == "" {
		return nil // Empty is allowed
	}

	parsedURL, err := url.Parse(CleanURL(input))
	if err != nil {
		return err
	}
	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return fmt.Errorf("URL must start with http:// or https://")
	}
	return nil
}

// onCheckClick starts a fetch worker for the entered URL
func (ui *RootUI) onCheckClick() {
	urlText := CleanURL(ui.urlEntry.Text)
	if urlText == "" {
		dialog.ShowInformation(ui.localization.GetText(KeyInvalidURL), ui.localization.GetText(KeyPleaseEnterURL), ui.window)
		return
	}
	if err := ui.validateURL(urlText); err != nil {
		dialog.ShowError(fmt.Errorf("%s: %w", ui.localization.GetText(KeyInvalidURL), err), ui.window)
		return
	}

	if !ui.presenter.BeginFetch() {
		return
	}
	ui.render()
	go ui.actions.Fetch(ui.ctx, urlText)
}

// onModeChanged switches quality and format lists between video and audio
func (ui *RootUI) onModeChanged(selected string) {
	audio := selected == ui.localization.GetText(KeyAudio)
	if audio {
		ui.presenter.SetMode(model.DownloadKindAudio)
		ui.formatSelect.SetOptions(ui.settings.GetFormatOptions(true))
		ui.formatSelect.SetSelected(ui.settings.GetAudioFormat())
	} else {
		ui.presenter.SetMode(model.DownloadKindVideo)
		ui.formatSelect.SetOptions(ui.settings.GetFormatOptions(false))
		ui.formatSelect.SetSelected(ui.settings.GetVideoFormat())
	}
	ui.render()
}

// onDownloadClick asks for a target folder and starts a download worker
func (ui *RootUI) onDownloadClick() {
	state := ui.presenter.State()
	quality := ui.qualitySelect.Selected
	format := ui.formatSelect.Selected
	if quality == "" || format == "" {
		dialog.ShowInformation(ui.localization.GetText(KeyDownload), ui.localization.GetText(KeyStatusSelectFormat), ui.window)
		return
	}

	folder := dialog.NewFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		if !ui.presenter.BeginDownload() {
			return
		}
		ui.render()

		req := DownloadRequest{
			Session: state.Session,
			Dir:     uri.Path(),
			Kind:    state.Mode,
			Quality: quality,
			Format:  format,
		}
		ui.log.WithFields(logrus.Fields{"dir": req.Dir, "quality": quality, "format": format}).Info("Download requested")
		go ui.actions.Download(ui.ctx, req)
	}, ui.window)

	if dir := ui.settings.GetDownloadDirectory(); dir != "" {
		if err := platform.EnsureDir(ui.fs, dir); err != nil {
			ui.log.WithError(err).Warn("Download directory unavailable")
		}
		if lister, err := storage.ListerForURI(storage.NewFileURI(dir)); err == nil {
			folder.SetLocation(lister)
		}
	}
	folder.Show()
}

// onPlaylistEntrySelected fetches the chosen playlist entry as a single video
func (ui *RootUI) onPlaylistEntrySelected(title string) {
	playlist := ui.presenter.State().Playlist
	if playlist == nil || title == "" {
		return
	}
	entry, ok := playlist.FindEntry(title)
	if !ok {
		return
	}
	ui.urlEntry.SetText(entry.URL)
	ui.onCheckClick()
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.localization, func() {
		ui.localization.SetLanguage(ui.settings.GetLanguage())
		ui.refreshUITexts()
		ui.createMenu()
	})
}

// ShowToolMissing tells the user that conversions will fail
func (ui *RootUI) ShowToolMissing(err error) {
	ui.log.WithError(err).Warn("Media tool missing")
	dialog.ShowInformation(ui.localization.GetText(KeySettings), ui.localization.GetText(KeyToolMissingNotice), ui.window)
}

// applyAll folds a batch of worker messages into the presenter and renders once
func (ui *RootUI) applyAll(batch []Message) {
	for _, msg := range batch {
		ui.presenter.Apply(msg)

		switch m := msg.(type) {
		case FetchSucceeded:
			ui.thumbnail.Image = PlaceholderThumbnail()
			if img := DecodeThumbnail(m.Thumbnail); img != nil {
				ui.thumbnail.Image = img
			}
			ui.thumbnail.Refresh()
		case PlaylistLoaded:
			ui.playlistSelect.ClearSelected()
		case DownloadSucceeded:
			ui.onDownloadSucceeded(m)
		case FetchFailed:
			dialog.ShowError(errors.New(ErrorText(ui.localization, m.Err)), ui.window)
		case DownloadFailed:
			dialog.ShowError(errors.New(ErrorText(ui.localization, m.Err)), ui.window)
		}
	}
	ui.render()
}

// render pushes the presenter state into the widgets
func (ui *RootUI) render() {
	state := ui.presenter.State()

	setEnabled(ui.checkBtn, state.FetchEnabled)
	setEnabled(ui.downloadBtn, state.DownloadEnabled)
	setEnabled(ui.qualitySelect, state.DownloadEnabled)
	setEnabled(ui.modeRadio, state.OptionsEnabled())
	setEnabled(ui.formatSelect, state.OptionsEnabled())
	setEnabled(ui.playlistSelect, state.OptionsEnabled())

	if !slices.Equal(ui.qualitySelect.Options, state.Qualities) {
		ui.qualitySelect.SetOptions(state.Qualities)
	}
	if len(state.Qualities) > 0 && !lo.Contains(state.Qualities, ui.qualitySelect.Selected) {
		ui.qualitySelect.SetSelected(state.Qualities[0])
	} else if len(state.Qualities) == 0 {
		ui.qualitySelect.ClearSelected()
	}

	if state.Playlist != nil {
		ui.playlistSelect.SetOptions(state.Playlist.Titles())
		ui.playlistSelect.Show()
	} else {
		ui.playlistSelect.Hide()
	}

	ui.titleLabel.SetText(state.Title)
	ui.statusLabel.SetText(state.Status)
	ui.progressBar.SetValue(state.Progress)
}

// onDownloadSucceeded notifies the user and optionally reveals the file
func (ui *RootUI) onDownloadSucceeded(m DownloadSucceeded) {
	fyne.CurrentApp().SendNotification(&fyne.Notification{
		Title:   ui.localization.GetText(KeyDownloadCompleted),
		Content: m.Title,
	})

	if ui.settings.GetAutoRevealOnComplete() {
		ui.onRevealFile(m.Path)
	}
	ui.showToastNotification(m.Path)
}

// onRevealFile handles revealing a file in the system file manager
func (ui *RootUI) onRevealFile(filePath string) {
	if filePath == "" {
		return
	}
	if err := platform.OpenFileInManager(filePath); err != nil {
		ui.log.WithError(err).WithField("path", filePath).Error("Failed to reveal file")
		dialog.ShowError(fmt.Errorf("%s: %w", ui.localization.GetText(KeyErrorOpeningFile), err), ui.window)
	}
}

// onOpenFile handles opening a downloaded file with the default application
func (ui *RootUI) onOpenFile(filePath string) {
	if filePath == "" {
		return
	}
	if err := platform.OpenFileWithDefaultApp(filePath); err != nil {
		ui.log.WithError(err).WithField("path", filePath).Error("Failed to open file")
		dialog.ShowError(fmt.Errorf("%s: %w", ui.localization.GetText(KeyErrorOpeningFile), err), ui.window)
	}
}

// showToastNotification shows an in-app toast with reveal and open actions
func (ui *RootUI) showToastNotification(path string) {
	titleLabel := widget.NewLabel(ui.localization.GetText(KeyDownloadCompleted))
	titleLabel.TextStyle = fyne.TextStyle{Bold: true}

	messageLabel := widget.NewLabel(path)
	messageLabel.Truncation = fyne.TextTruncateEllipsis

	revealBtn := widget.NewButton(ui.localization.GetText(KeyReveal), func() { ui.onRevealFile(path) })
	revealBtn.Importance = widget.HighImportance
	openBtn := widget.NewButton(ui.localization.GetText(KeyOpen), func() { ui.onOpenFile(path) })

	var toastPopup *widget.PopUp
	closeBtn := widget.NewButton(IconClose, func() {
		if toastPopup != nil {
			toastPopup.Hide()
		}
	})
	closeBtn.Importance = widget.LowImportance

	content := container.NewVBox(
		container.NewBorder(nil, nil, titleLabel, closeBtn),
		messageLabel,
		container.NewHBox(revealBtn, openBtn),
	)
	toastPopup = widget.NewPopUp(content, ui.window.Canvas())

	// Position in top-right corner
	canvasSize := ui.window.Canvas().Size()
	toastSize := fyne.NewSize(ToastWidth, ToastHeight)
	toastPopup.Resize(toastSize)
	toastPopup.Move(fyne.NewPos(canvasSize.Width-toastSize.Width-ToastMargin, ToastMargin))
	toastPopup.Show()

	time.AfterFunc(ToastAutoHide, func() {
		fyne.Do(toastPopup.Hide)
	})
}

type enabler interface {
	Enable()
	Disable()
}

func setEnabled(w enabler, enabled bool) {
	if enabled {
		w.Enable()
	} else {
		w.Disable()
	}
}
