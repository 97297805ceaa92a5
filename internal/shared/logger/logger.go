package logger

import (
	"io"
	"log/slog"
	"os"

	"hd2api/internal/shared/config"
)

// Init installs the default logger. Every record carries the upstream
// provider and war season so lines from different deployments can be told
// apart once aggregated.
func Init() {
	if config.GlobalConfig == nil {
		panic("config must be initialized before logger")
	}
	cfg := config.GlobalConfig

	slog.SetDefault(New(os.Stdout, cfg.Logging,
		slog.String("provider", cfg.Upstream.Provider),
		slog.Int("war_season", cfg.Upstream.WarSeason),
	))

	logger := slog.With("component", "logger")
	logger.Debug("Logger initialized",
		"level", cfg.Logging.Level,
		"json_format", cfg.Logging.JSONFormat,
		"environment", cfg.Server.Environment,
	)
}

// New builds a logger writing to w in the configured format and level.
func New(w io.Writer, cfg config.LoggingConfig, attrs ...slog.Attr) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLogLevel(cfg.Level)}

	var handler slog.Handler
	if cfg.JSONFormat {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	if len(attrs) > 0 {
		handler = handler.WithAttrs(attrs)
	}
	return slog.New(handler)
}

// parseLogLevel accepts slog level names in any case, including offsets
// such as "warn+2". Anything else means debug.
func parseLogLevel(levelStr string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(levelStr)); err != nil {
		return slog.LevelDebug
	}
	return level
}
