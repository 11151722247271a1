package main

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// newLogger builds a zerolog.Logger that writes leveled, structured records
// to both stderr (human-readable) and a rotating file under logDir via
// lumberjack, so long-running batch invocations don't grow one log file
// without bound.
func newLogger(logDir, level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}

	rotator := &lumberjack.Logger{
		Filename:   logDir + "/fpscli.log",
		MaxSize:    16, // MB
		MaxBackups: 3,
		MaxAge:     14, // days
		Compress:   true,
	}

	console := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}
	w := io.MultiWriter(console, rotator)

	return zerolog.New(w).Level(lvl).With().Timestamp().Logger()
}
