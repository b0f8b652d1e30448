package convert

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"github.com/gaan/gaan-downloader/internal/model"
	"github.com/gaan/gaan-downloader/internal/platform"
)

// FFmpeg constants for conversion settings
const (
	// Merge codec settings: copy video, re-encode audio
	VideoCodecCopy = "copy"
	AudioCodec     = "aac"
	StrictLevel    = "experimental"

	// Logging and overwrite flags
	OverwriteFlag = "-y"
	LogLevel      = "error"
)

// Runner executes the media tool and returns whatever it wrote to stderr
type Runner func(ctx context.Context, name string, args ...string) ([]byte, error)

// FFmpeg runs conversions and merges through the ffmpeg command line tool
type FFmpeg struct {
	command string
	fs      afero.Fs
	run     Runner
	log     *logrus.Entry
}

// NewFFmpeg creates a processor for the given ffmpeg command. Inputs are removed from fs.
func NewFFmpeg(command string, fs afero.Fs) *FFmpeg {
	if command == "" {
		command = platform.DefaultFFmpegCommand
	}
	return &FFmpeg{
		command: command,
		fs:      fs,
		run:     execRunner,
		log:     logrus.WithField("component", "ffmpeg"),
	}
}

// SetRunner replaces the process runner
func (f *FFmpeg) SetRunner(run Runner) {
	f.run = run
}

// Command returns the configured ffmpeg command
func (f *FFmpeg) Command() string {
	return f.command
}

// Convert transcodes inputPath into outputPath's container and removes inputPath
func (f *FFmpeg) Convert(ctx context.Context, inputPath, outputPath string) error {
	defer f.cleanup(inputPath)

	f.log.WithFields(logrus.Fields{"input": inputPath, "output": outputPath}).Info("Converting")
	if err := f.exec(ctx, model.ErrConversionFailed, BuildConvertArgs(inputPath, outputPath)); err != nil {
		return err
	}
	f.log.WithField("output", outputPath).Info("Conversion completed")
	return nil
}

// Merge muxes the video track of videoPath with the audio of audioPath and removes both inputs
func (f *FFmpeg) Merge(ctx context.Context, videoPath, audioPath, outputPath string) error {
	defer f.cleanup(videoPath, audioPath)

	f.log.WithFields(logrus.Fields{"video": videoPath, "audio": audioPath, "output": outputPath}).Info("Merging")
	if err := f.exec(ctx, model.ErrMergeFailed, BuildMergeArgs(videoPath, audioPath, outputPath)); err != nil {
		return err
	}
	f.log.WithField("output", outputPath).Info("Merge completed")
	return nil
}

// BuildConvertArgs builds the ffmpeg arguments for a plain conversion
func BuildConvertArgs(inputPath, outputPath string) []string {
	return []string{
		"-i", inputPath,
		OverwriteFlag,
		"-loglevel", LogLevel,
		outputPath,
	}
}

// BuildMergeArgs builds the ffmpeg arguments for muxing separate video and audio files
func BuildMergeArgs(videoPath, audioPath, outputPath string) []string {
	return []string{
		"-i", videoPath,
		"-i", audioPath,
		"-c:v", VideoCodecCopy,
		"-c:a", AudioCodec,
		"-strict", StrictLevel,
		OverwriteFlag,
		"-loglevel", LogLevel,
		outputPath,
	}
}

// exec runs the tool and maps failures onto the model error kinds
func (f *FFmpeg) exec(ctx context.Context, kind error, args []string) error {
	stderr, err := f.run(ctx, f.command, args...)
	if err == nil {
		return nil
	}
	if errors.Is(err, exec.ErrNotFound) || errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("%s: %w", f.command, model.ErrToolMissing)
	}
	f.log.WithError(err).WithField("stderr", string(stderr)).Error("ffmpeg failed")
	return &model.ToolError{Kind: kind, Err: err, Diagnostic: string(stderr)}
}

// cleanup removes temporary inputs that still exist
func (f *FFmpeg) cleanup(paths ...string) {
	for _, path := range paths {
		if err := platform.RemoveIfExists(f.fs, path); err != nil {
			f.log.WithError(err).WithField("path", path).Warn("Failed to remove temporary file")
		}
	}
}

// execRunner runs the command and captures stderr
func execRunner(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.SysProcAttr = sysProcAttr()
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	err := cmd.Run()
	return stderr.Bytes(), err
}
