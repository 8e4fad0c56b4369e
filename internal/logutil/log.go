// Package logutil builds the process logger and premade loggers for tests.
package logutil

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/its-jojoo/sharebutton/internal/core"
)

// Discard is a logrus.Logger instance configured to not log anything.
var Discard = logrus.New()

// Debug is a logrus.Logger instance configured to log in logrus.DebugLevel.
var Debug = logrus.New()

func init() {
	Discard.SetOutput(io.Discard)
	// Set level to panic might save a few cycles if we don't even attempt to write to io.Discard.
	Discard.SetLevel(logrus.PanicLevel)

	Debug.SetLevel(logrus.DebugLevel)
}

// New returns the server logger. Lines carry a full local ISO-8601 timestamp;
// debug switches the level from Info to Debug.
func New(debug bool) *logrus.Logger {
	return NewWithOutput(os.Stderr, debug)
}

func NewWithOutput(w io.Writer, debug bool) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: core.ISOLocalLayout,
	})
	l.SetLevel(logrus.InfoLevel)
	if debug {
		l.SetLevel(logrus.DebugLevel)
	}
	return l
}
