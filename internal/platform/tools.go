package platform

import (
	"fmt"
	"os/exec"

	"github.com/gaan/gaan-downloader/internal/model"
)

// DefaultFFmpegCommand is used when no explicit ffmpeg path is configured
const DefaultFFmpegCommand = "ffmpeg"

// ToolStatus reports whether an external binary could be resolved
type ToolStatus struct {
	Name  string
	Found bool
	Path  string
}

// LookupTool resolves name on the command search path
func LookupTool(name string) ToolStatus {
	status := ToolStatus{Name: name}
	if path, err := exec.LookPath(name); err == nil {
		status.Found = true
		status.Path = path
	}
	return status
}

// CheckTool returns an error wrapping model.ErrToolMissing when name cannot be resolved
func CheckTool(name string) error {
	if name == "" {
		name = DefaultFFmpegCommand
	}
	if status := LookupTool(name); !status.Found {
		return fmt.Errorf("%s: %w", name, model.ErrToolMissing)
	}
	return nil
}
