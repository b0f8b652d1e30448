package platform

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// InvalidFilenameChars are removed from titles before they become file names
const InvalidFilenameChars = `<>:"/\|?*`

// Suffixes for temporary artifacts of one job
const (
	TempSuffix  = "_temp"
	VideoSuffix = "_vid"
	AudioSuffix = "_aud"
)

// DuplicateNameFormat renders "stem (n)" for an occupied path
const DuplicateNameFormat = "%s (%d)%s"

// Sanitize removes characters that are invalid in file names. Nothing else is
// touched: no trimming, truncation or escaping.
func Sanitize(name string) string {
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(InvalidFilenameChars, r) {
			return -1
		}
		return r
	}, name)
}

// UniquePath returns path unchanged if nothing exists there, otherwise the
// first free "stem (n).ext" with n starting at 1.
//
// The result is only free at call time; a concurrent writer can still take it.
func UniquePath(fs afero.Fs, path string) (string, error) {
	exists, err := afero.Exists(fs, path)
	if err != nil {
		return "", fmt.Errorf("failed to check %s: %w", path, err)
	}
	if !exists {
		return path, nil
	}

	dir, name := filepath.Split(path)
	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(name, ext)

	for counter := 1; ; counter++ {
		candidate := filepath.Join(dir, fmt.Sprintf(DuplicateNameFormat, stem, counter, ext))
		exists, err := afero.Exists(fs, candidate)
		if err != nil {
			return "", fmt.Errorf("failed to check %s: %w", candidate, err)
		}
		if !exists {
			return candidate, nil
		}
	}
}

// ArtifactPath builds dir/<title><suffix>.<ext> for a sanitized title
func ArtifactPath(dir, title, suffix, ext string) string {
	return filepath.Join(dir, Sanitize(title)+suffix+"."+ext)
}

// RemoveIfExists deletes path when present; a missing file is not an error
func RemoveIfExists(fs afero.Fs, path string) error {
	exists, err := afero.Exists(fs, path)
	if err != nil || !exists {
		return err
	}
	return fs.Remove(path)
}
