// Package logging sets up the structured logger. Stdout carries the status
// line, so records are written to a rotated file instead.
package logging

import (
	"io"
	"log/slog"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Options configures the log file.
type Options struct {
	Path       string
	Level      slog.Level
	MaxSizeMB  int
	MaxBackups int
}

// New returns a logger writing text records to the file at opts.Path,
// rotating it once it grows past opts.MaxSizeMB. The returned closer
// releases the file.
func New(opts Options) (*slog.Logger, io.Closer) {
	w := &lumberjack.Logger{
		Filename:   opts.Path,
		MaxSize:    opts.MaxSizeMB,
		MaxBackups: opts.MaxBackups,
	}

	h := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: opts.Level,
	})

	return slog.New(h), w
}
