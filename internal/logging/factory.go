package logging

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options selects and tunes a Logger backend.
type Options struct {
	Backend string // "slog" or "zap"
	Format  string // "text" or "json"; zap is always JSON
	Level   string // "debug", "info", "warn", "error"
	Output  io.Writer
}

// New builds a Logger for the requested backend.
func New(opts Options) (Logger, error) {
	level, err := parseLevel(opts.Level)
	if err != nil {
		return nil, err
	}

	switch strings.ToLower(opts.Backend) {
	case "", "slog":
		hopts := &slog.HandlerOptions{Level: level}
		var h slog.Handler
		switch strings.ToLower(opts.Format) {
		case "", "text":
			h = slog.NewTextHandler(opts.Output, hopts)
		case "json":
			h = slog.NewJSONHandler(opts.Output, hopts)
		default:
			return nil, fmt.Errorf("unknown log format %q", opts.Format)
		}
		return NewSlogLogger(slog.New(h)), nil

	case "zap":
		enc := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
		core := zapcore.NewCore(enc, zapcore.AddSync(opts.Output), zapLevel(level))
		return NewZapLogger(zap.New(core)), nil

	default:
		return nil, fmt.Errorf("unknown log backend %q", opts.Backend)
	}
}

func parseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if s == "" {
		return slog.LevelInfo, nil
	}
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return l, fmt.Errorf("unknown log level %q: %w", s, err)
	}
	return l, nil
}

func zapLevel(l slog.Level) zapcore.Level {
	switch {
	case l <= slog.LevelDebug:
		return zapcore.DebugLevel
	case l <= slog.LevelInfo:
		return zapcore.InfoLevel
	case l <= slog.LevelWarn:
		return zapcore.WarnLevel
	default:
		return zapcore.ErrorLevel
	}
}
