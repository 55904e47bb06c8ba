package utils

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	InfoLogger  = logrus.New()
	ErrorLogger = logrus.New()
)

// LogOptions controls where the two loggers write. An empty File keeps the
// output on stdout/stderr only.
type LogOptions struct {
	Level      string
	File       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

func InitLogger() {
	InitLoggerWith(LogOptions{})
}

func InitLoggerWith(opts LogOptions) {
	InfoLogger = logrus.New()
	ErrorLogger = logrus.New()

	var infoOut io.Writer = os.Stdout
	var errorOut io.Writer = os.Stderr
	if opts.File != "" {
		rotator := &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    orDefault(opts.MaxSizeMB, 50),
			MaxBackups: orDefault(opts.MaxBackups, 5),
			MaxAge:     orDefault(opts.MaxAgeDays, 14),
			Compress:   true,
		}
		infoOut = io.MultiWriter(os.Stdout, rotator)
		errorOut = io.MultiWriter(os.Stderr, rotator)
	}

	InfoLogger.SetOutput(infoOut)
	InfoLogger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	ErrorLogger.SetOutput(errorOut)
	ErrorLogger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	level, err := logrus.ParseLevel(opts.Level)
	if err != nil || opts.Level == "" {
		level = logrus.InfoLevel
	}
	InfoLogger.SetLevel(level)
	// warnings (partial writes, ambiguous lookups) go to the error stream too
	ErrorLogger.SetLevel(logrus.WarnLevel)
}

func orDefault(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}
