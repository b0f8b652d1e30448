package model

import (
	"errors"
	"fmt"
	"strings"
)

// Error kinds surfaced by the fetcher, the orchestrator and the media adapter.
var (
	// ErrNoStreamsAvailable means a fetch found nothing downloadable
	ErrNoStreamsAvailable = errors.New("no downloadable streams found for this video")

	// ErrNoStreamFound means the requested resolution or bitrate is not offered
	ErrNoStreamFound = errors.New("no stream found for the requested quality")

	// ErrToolMissing means the external media tool is not on the search path
	ErrToolMissing = errors.New("ffmpeg not found, please ensure it is installed and in your PATH")

	// ErrConversionFailed means the media tool exited non-zero while converting
	ErrConversionFailed = errors.New("conversion failed")

	// ErrMergeFailed means the media tool exited non-zero while merging
	ErrMergeFailed = errors.New("merge failed")

	// ErrNetwork marks failures talking to the streaming site or thumbnail host
	ErrNetwork = errors.New("network error")

	// ErrNotFetched means a download was requested without a completed fetch
	ErrNotFetched = errors.New("video information has not been fetched")
)

// ToolError carries the diagnostic output of a failed media tool run.
type ToolError struct {
	Kind       error  // ErrConversionFailed or ErrMergeFailed
	Err        error  // underlying process error, e.g. exit status
	Diagnostic string // stderr of the tool
}

func (e *ToolError) Error() string {
	msg := fmt.Sprintf("ffmpeg %s: %v", e.Kind, e.Err)
	if diag := strings.TrimSpace(e.Diagnostic); diag != "" {
		msg += ": " + diag
	}
	return msg
}

// Unwrap exposes both the error kind and the process error to errors.Is
func (e *ToolError) Unwrap() []error {
	return []error{e.Kind, e.Err}
}
