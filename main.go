package main

import (
	"context"
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"github.com/gaan/gaan-downloader/internal/config"
	"github.com/gaan/gaan-downloader/internal/convert"
	"github.com/gaan/gaan-downloader/internal/download"
	"github.com/gaan/gaan-downloader/internal/logging"
	"github.com/gaan/gaan-downloader/internal/platform"
	"github.com/gaan/gaan-downloader/internal/stream"
	"github.com/gaan/gaan-downloader/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.gaan.gaan-downloader"
	AppName = "Gaan Downloader"
)

func main() {
	myApp := app.NewWithID(AppID)
	settings := config.NewSettings(myApp)

	if err := logging.Setup(os.Stderr, settings.GetLogLevel()); err != nil {
		logrus.WithError(err).Warn("Falling back to default log level")
	}
	logrus.WithField("version", version).Info("Gaan Downloader starting")

	myApp.Settings().SetTheme(ui.NewCompactTheme())

	myWindow := myApp.NewWindow(fmt.Sprintf("%s v%s", AppName, version))
	myWindow.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))

	// Initialize services
	fs := afero.NewOsFs()
	ffmpeg := convert.NewFFmpeg(settings.GetFFmpegPath(), fs)
	downloadSvc := download.NewService(fs, ffmpeg)
	fetcher := stream.NewFetcher(stream.NewYouTube())
	playlists := platform.NewPlaylistService()

	relay := ui.NewRelay()
	actions := ui.NewActions(relay, fetcher, playlists, downloadSvc, stream.FetchThumbnail)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	rootUI := ui.NewRootUI(ctx, myWindow, settings, fs, relay, actions)
	rootUI.Start()

	if err := platform.CheckTool(ffmpeg.Command()); err != nil {
		rootUI.ShowToolMissing(err)
	}

	myWindow.ShowAndRun()
}
