// Package xlog wraps logrus the way the teacher's pkg/log wrapped its
// hand-rolled logger, so the engine logs through one narrow interface
// instead of importing logrus directly.
package xlog

import "github.com/sirupsen/logrus"

// Logger is the narrow logging surface every subsystem depends on.
type Logger = logrus.FieldLogger

// New returns a logrus-backed Logger at the given level. Construction
// failures (bad cartridge headers, unsupported MBC codes) are always
// returned as errors to the caller; nothing here is fatal.
func New(level logrus.Level) *logrus.Logger {
	l := logrus.New()
	l.SetLevel(level)
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: false})
	return l
}

// Silent returns a Logger that discards everything, used as the default
// when the caller does not supply one via gameboy.WithLogger.
func Silent() *logrus.Logger {
	l := logrus.New()
	l.SetLevel(logrus.PanicLevel)
	return l
}
