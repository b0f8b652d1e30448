// Package logging configures the process-wide logrus logger.
package logging

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

// DefaultLevel is used when the configured level is empty or unknown
const DefaultLevel = logrus.InfoLevel

// Setup points logrus at w with a text formatter and the given level.
// An unknown level falls back to DefaultLevel and is reported as an error.
func Setup(w io.Writer, level string) error {
	logrus.SetOutput(w)
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	if level == "" {
		logrus.SetLevel(DefaultLevel)
		return nil
	}

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		logrus.SetLevel(DefaultLevel)
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	logrus.SetLevel(parsed)
	return nil
}
