// Package log provides the shared logger for the module.
package log

import (
	"io"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Default is the process-wide logger. Components accept a
// logrus.FieldLogger and fall back to this one.
var Default *logrus.Logger

func init() {
	Default = logrus.New()
	Default.SetLevel(logrus.InfoLevel)
}

// SetLevel parses and applies a level string such as "debug" or "warn".
func SetLevel(lvstr string) {
	lv, err := logrus.ParseLevel(lvstr)
	if err != nil {
		Default.Error(err)
	} else {
		Default.SetLevel(lv)
	}
}

// EnableRotation mirrors log output into a size-rotated file.
func EnableRotation(filename string) {
	output := &lumberjack.Logger{
		Filename:   filename,
		MaxSize:    100, // megabytes
		MaxBackups: 4,
		MaxAge:     7, // days
		LocalTime:  true,
	}
	Default.SetOutput(io.MultiWriter(Default.Out, output))
}

// Infof logs a message at level Info on the default logger.
func Infof(format string, args ...interface{}) {
	Default.Infof(format, args...)
}

// Warnf logs a message at level Warn on the default logger.
func Warnf(format string, args ...interface{}) {
	Default.Warnf(format, args...)
}

// Errorf logs a message at level Error on the default logger.
func Errorf(format string, args ...interface{}) {
	Default.Errorf(format, args...)
}

// Debugf logs a message at level Debug on the default logger.
func Debugf(format string, args ...interface{}) {
	Default.Debugf(format, args...)
}
