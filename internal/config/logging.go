package config

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/lmittmann/tint"
	"gopkg.in/natefinch/lumberjack.v2"
)

func (l Log) level() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(l.Level))); err != nil {
		return slog.LevelInfo
	}
	return level
}

// NewLogger builds the process logger: colored text in development, JSON
// otherwise, plus a rotating JSON file when log.file is set. The returned
// closer releases the file.
func NewLogger(cfg *Config, stderr io.Writer) (*slog.Logger, io.Closer) {
	level := cfg.Log.level()

	var handler slog.Handler = slog.NewJSONHandler(stderr, &slog.HandlerOptions{
		Level: level,
	})
	if cfg.Development {
		if level > slog.LevelDebug {
			level = slog.LevelDebug
		}
		handler = tint.NewHandler(stderr, &tint.Options{Level: level})
	}

	if cfg.Log.File == "" {
		return slog.New(handler), nopCloser{}
	}

	file := &lumberjack.Logger{
		Filename:   cfg.Log.File,
		MaxSize:    max(1, cfg.Log.MaxSize),
		MaxBackups: max(0, cfg.Log.MaxBackups),
		MaxAge:     max(0, cfg.Log.MaxAge),
		Compress:   cfg.Log.Compress,
	}
	fileHandler := slog.NewJSONHandler(file, &slog.HandlerOptions{Level: level})

	return slog.New(teeHandler{handler, fileHandler}), file
}

func DefaultLogger() *slog.Logger {
	return slog.New(tint.NewHandler(os.Stderr, nil))
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// teeHandler sends every record to each of its handlers.
type teeHandler []slog.Handler

func (t teeHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range t {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (t teeHandler) Handle(ctx context.Context, r slog.Record) error {
	var errs []error
	for _, h := range t {
		if h.Enabled(ctx, r.Level) {
			errs = append(errs, h.Handle(ctx, r.Clone()))
		}
	}
	return errors.Join(errs...)
}

func (t teeHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	handlers := make(teeHandler, len(t))
	for i, h := range t {
		handlers[i] = h.WithAttrs(attrs)
	}
	return handlers
}

func (t teeHandler) WithGroup(name string) slog.Handler {
	handlers := make(teeHandler, len(t))
	for i, h := range t {
		handlers[i] = h.WithGroup(name)
	}
	return handlers
}
