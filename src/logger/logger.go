package logger

import (
	"os"

	"quote-server/src/config"

	"github.com/sirupsen/logrus"
)

// -----------------------------------------------------------------------------

// Logger is a thin leveled logger handed to every component constructor.
// It wraps logrus so level and format stay configurable from one place.
type Logger struct {
	name string
	log  *logrus.Logger
}

// -----------------------------------------------------------------------------

// NewLogger creates a Logger configured from the log section of the config.
func NewLogger(config *config.Config, name string) *Logger {
	log := logrus.New()
	log.SetOutput(os.Stdout)

	level, err := logrus.ParseLevel(config.Log.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	if config.Log.Format == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	return &Logger{name: name, log: log}
}

// -----------------------------------------------------------------------------

func (l *Logger) Debug(format string, args ...any) {
	l.entry().Debugf(format, args...)
}

func (l *Logger) Info(format string, args ...any) {
	l.entry().Infof(format, args...)
}

func (l *Logger) Warning(format string, args ...any) {
	l.entry().Warnf(format, args...)
}

func (l *Logger) Error(format string, args ...any) {
	l.entry().Errorf(format, args...)
}

// Critical logs at error level with a severity marker. It does not exit;
// the caller decides whether the condition is terminal.
func (l *Logger) Critical(format string, args ...any) {
	l.entry().WithField("severity", "critical").Errorf(format, args...)
}

// -----------------------------------------------------------------------------

func (l *Logger) entry() *logrus.Entry {
	return l.log.WithField("service", l.name)
}
