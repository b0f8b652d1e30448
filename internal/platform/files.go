package platform

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/spf13/afero"
)

// Operating system constants
const (
	OSDarwin  = "darwin"
	OSWindows = "windows"
	OSLinux   = "linux"
)

// DefaultDirPermissions is used for the download directory and its parents
const DefaultDirPermissions = 0o755

// DownloadsDirName is the conventional per-user downloads folder
const DownloadsDirName = "Downloads"

// XDGOpenCommand opens a path with the desktop default handler on Linux
const XDGOpenCommand = "xdg-open"

// LinuxFileManagers are tried in order when xdg-open is not usable
var LinuxFileManagers = []string{"nautilus", "dolphin", "thunar", "nemo", "pcmanfm"}

// Command is an external program invocation
type Command struct {
	Name string
	Args []string
}

// RevealCommand returns the command that shows path in the file manager of goos.
// Linux has no standard way to select a file, so its folder is opened instead.
func RevealCommand(goos, path string) (Command, error) {
	switch goos {
	case OSDarwin:
		return Command{Name: "open", Args: []string{"-R", path}}, nil
	case OSWindows:
		return Command{Name: "explorer", Args: []string{"/select,", path}}, nil
	case OSLinux:
		return Command{Name: XDGOpenCommand, Args: []string{filepath.Dir(path)}}, nil
	default:
		return Command{}, fmt.Errorf("unsupported operating system: %s", goos)
	}
}

// OpenCommand returns the command that opens path with the default application of goos
func OpenCommand(goos, path string) (Command, error) {
	switch goos {
	case OSDarwin:
		return Command{Name: "open", Args: []string{path}}, nil
	case OSWindows:
		return Command{Name: "cmd", Args: []string{"/c", "start", "", path}}, nil
	case OSLinux:
		return Command{Name: XDGOpenCommand, Args: []string{path}}, nil
	default:
		return Command{}, fmt.Errorf("unsupported operating system: %s", goos)
	}
}

// OpenFileInManager highlights a finished download in the system file manager
func OpenFileInManager(filePath string) error {
	absPath, err := existingAbs(filePath)
	if err != nil {
		return err
	}

	cmd, err := RevealCommand(runtime.GOOS, absPath)
	if err != nil {
		return err
	}
	if err := exec.Command(cmd.Name, cmd.Args...).Run(); err == nil || runtime.GOOS != OSLinux {
		return err
	}

	dir := filepath.Dir(absPath)
	for _, fm := range LinuxFileManagers {
		if _, err := exec.LookPath(fm); err == nil {
			return exec.Command(fm, dir).Run()
		}
	}
	return fmt.Errorf("no suitable file manager found")
}

// OpenFileWithDefaultApp plays a finished download with the default system application
func OpenFileWithDefaultApp(filePath string) error {
	absPath, err := existingAbs(filePath)
	if err != nil {
		return err
	}

	cmd, err := OpenCommand(runtime.GOOS, absPath)
	if err != nil {
		return err
	}
	return exec.Command(cmd.Name, cmd.Args...).Run()
}

func existingAbs(filePath string) (string, error) {
	if _, err := os.Stat(filePath); err != nil {
		return "", fmt.Errorf("file does not exist: %w", err)
	}
	absPath, err := filepath.Abs(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to get absolute path: %w", err)
	}
	return absPath, nil
}

// EnsureDir creates dir on fs if it is missing
func EnsureDir(fs afero.Fs, dir string) error {
	exists, err := afero.DirExists(fs, dir)
	if err != nil {
		return fmt.Errorf("failed to check %s: %w", dir, err)
	}
	if exists {
		return nil
	}
	if err := fs.MkdirAll(dir, DefaultDirPermissions); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}
	return nil
}

// GetHomeDownloadsDir returns the standard Downloads directory for the user
func GetHomeDownloadsDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(homeDir, DownloadsDirName), nil
}
