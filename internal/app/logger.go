package app

import (
	"io"
	"log/slog"
)

// logLevels maps the CLI's log-level enum onto slog levels. The CLI layer
// validates the value before it reaches us; anything unknown (e.g. a Config
// built directly in tests) falls back to info.
var logLevels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// newLogger builds the App's private slog.Logger from its validated config.
// The global logger is never touched, so concurrent App instances stay
// isolated from each other.
func newLogger(cfg *Config, outW io.Writer) *slog.Logger {
	level, ok := logLevels[cfg.LogLevel]
	if !ok {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}

	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(outW, opts))
	}
	return slog.New(slog.NewTextHandler(outW, opts))
}
