package internal

import (
	"os"

	"github.com/sirupsen/logrus"
)

var logger = newLogger("info", "text")

func newLogger(level, format string) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)

	switch level {
	case "debug":
		l.SetLevel(logrus.DebugLevel)
	case "info":
		l.SetLevel(logrus.InfoLevel)
	case "warn":
		l.SetLevel(logrus.WarnLevel)
	case "error":
		l.SetLevel(logrus.ErrorLevel)
	default:
		l.SetLevel(logrus.InfoLevel)
	}

	switch format {
	case "json":
		l.SetFormatter(&logrus.JSONFormatter{})
	default:
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	return l
}

// InitLogger configures the package logger from config values
func InitLogger(level, format string) {
	logger = newLogger(level, format)
}

// SetVerbose enables verbose (debug) logging
func SetVerbose(verbose bool) {
	if verbose {
		logger.SetLevel(logrus.DebugLevel)
	}
}

// Level returns the current log level as a string
func Level() string {
	return logger.GetLevel().String()
}

// LogError logs an error message
func LogError(format string, args ...interface{}) {
	logger.Errorf(format, args...)
}

// LogWarn logs a warning message
func LogWarn(format string, args ...interface{}) {
	logger.Warnf(format, args...)
}

// LogInfo logs an info message
func LogInfo(format string, args ...interface{}) {
	logger.Infof(format, args...)
}

// LogDebug logs a debug message
func LogDebug(format string, args ...interface{}) {
	logger.Debugf(format, args...)
}
