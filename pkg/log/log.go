// Package log provides the logging interface used throughout the
// emulator, backed by logrus.
package log

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Logger is the logging interface shared by every component.
type Logger interface {
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Debugf(format string, args ...interface{})
	Fatal(args ...interface{})
}

var _ Logger = (*logrus.Logger)(nil)

// New returns a Logger writing to stderr at info level.
func New() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetLevel(logrus.InfoLevel)
	l.Formatter = &logrus.TextFormatter{
		DisableColors:    !isTerminal(os.Stderr.Fd()),
		DisableTimestamp: true,
		DisableSorting:   true,
		DisableQuote:     true,
	}
	return l
}

// NewWithLevel returns a Logger with the level parsed from name
// (panic, fatal, error, warn, info, debug, trace).
func NewWithLevel(name string) (*logrus.Logger, error) {
	l := New()
	level, err := logrus.ParseLevel(name)
	if err != nil {
		return nil, err
	}
	l.SetLevel(level)
	return l, nil
}
