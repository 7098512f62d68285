// Package logging provides the logging abstraction used by every component of the
// extraction pipeline. Components depend on Logger, never on logrus directly.
package logging

import (
	"sync"

	"github.com/sirupsen/logrus"
)

// Logger defines the interface for structured logging throughout the application.
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)

	// WithError returns a new logger with an error field attached
	WithError(err error) Logger
	// WithField returns a new logger with a single field attached
	WithField(key string, value interface{}) Logger
	// WithFields returns a new logger with multiple fields attached
	WithFields(fields ...Field) Logger

	Fatal(msg string, fields ...Field)
	Fatalf(msg string, args ...interface{})
}

// Field represents a key-value pair for structured logging.
type Field struct {
	Key   string
	Value interface{}
}

var (
	defaultMu     sync.Mutex
	defaultLogger *logrus.Logger
)

// GetLogger returns the process-wide default logger, creating it on first use.
func GetLogger() Logger {
	return NewLogrusAdapterFromLogger(defaultLogrus())
}

// SetAllLogLevels sets the level of the global logrus logger and of the default logger.
func SetAllLogLevels(level logrus.Level) {
	logrus.SetLevel(level)
	defaultLogrus().SetLevel(level)
}

func defaultLogrus() *logrus.Logger {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultLogger == nil {
		defaultLogger = logrus.New()
		defaultLogger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
		defaultLogger.SetLevel(logrus.GetLevel())
	}
	return defaultLogger
}
