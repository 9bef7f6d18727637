package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/ByronBenton/Transaction-Data-Quality-Savings-Explorer/internal/config"
)

func newLogger(cfg config.LoggingConfig, w io.Writer) (*slog.Logger, error) {
	handlerOpts := &slog.HandlerOptions{Level: cfg.SlogLevel()}

	switch cfg.Format {
	case "", "text":
		return slog.New(slog.NewTextHandler(w, handlerOpts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, handlerOpts)), nil
	default:
		return nil, fmt.Errorf("%w: log format %q", errInvalidFlag, cfg.Format)
	}
}
