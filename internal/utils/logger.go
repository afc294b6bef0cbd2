package utils

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

const (
	debug   = "debug"
	warning = "warning"
	info    = "info"
	error_  = "error"
	fatal   = "fatal"
)

// Log инициализирован уровнем error, чтобы пакеты могли логировать и до InitLogger (например в тестах)
var Log = newLogger(os.Stderr, error_)

func InitLogger(logLevel string) *logrus.Logger {
	Log = newLogger(os.Stdout, logLevel)

	return Log
}

func newLogger(out io.Writer, logLevel string) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(out)

	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	switch logLevel {
	case debug:
		l.SetLevel(logrus.DebugLevel)
	case warning:
		l.SetLevel(logrus.WarnLevel)
	case info:
		l.SetLevel(logrus.InfoLevel)
	case error_:
		l.SetLevel(logrus.ErrorLevel)
	case fatal:
		l.SetLevel(logrus.FatalLevel)
	default:
		l.SetLevel(logrus.ErrorLevel)
	}

	return l
}
