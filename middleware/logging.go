package middleware

import (
	"context"
	"log/slog"
	"time"

	"github.com/Winderton/cuehttp"
	"github.com/Winderton/cuehttp/logger"
)

// LoggingConfig configures the request logging middleware.
type LoggingConfig struct {
	// Skip defines a function to skip middleware execution for specific requests
	Skip func(ctx cuehttp.Context) bool

	// Logger is the slog logger to use (default: slog.Default())
	Logger *slog.Logger

	// LogLevel for request logging (default: slog.LevelInfo)
	LogLevel slog.Level

	// SlowRequestThreshold escalates slow requests to warning level (default: 5s)
	SlowRequestThreshold time.Duration

	// Component name for structured logging (default: "http")
	Component string
}

// Logging creates a request logging middleware with default configuration.
func Logging() cuehttp.Handler {
	return LoggingWithConfig(LoggingConfig{})
}

// LoggingWithLogger creates a logging middleware with a custom logger.
func LoggingWithLogger(log *slog.Logger) cuehttp.Handler {
	return LoggingWithConfig(LoggingConfig{Logger: log})
}

// LoggingWithConfig creates a request logging middleware with custom
// configuration. It logs once after the rest of the chain completes, with
// the final status the chain produced; the level escalates for client
// errors, server errors, and slow requests.
func LoggingWithConfig(cfg LoggingConfig) cuehttp.Handler {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.LogLevel == 0 {
		cfg.LogLevel = slog.LevelInfo
	}
	if cfg.SlowRequestThreshold <= 0 {
		cfg.SlowRequestThreshold = 5 * time.Second
	}
	if cfg.Component == "" {
		cfg.Component = "http"
	}

	return func(ctx cuehttp.Context, next cuehttp.Next) {
		if cfg.Skip != nil && cfg.Skip(ctx) {
			next()
			return
		}

		start := time.Now()
		next()
		duration := time.Since(start)

		attrs := []slog.Attr{
			logger.Component(cfg.Component),
			logger.Event("request"),
			logger.Method(ctx.Method()),
			logger.Path(ctx.Path()),
			logger.StatusCode(ctx.Status()),
			logger.Duration(duration),
		}

		reqCtx := context.Background()
		if hc, ok := ctx.(cuehttp.HTTPContext); ok {
			reqCtx = hc.Request().Context()
			attrs = append(attrs,
				logger.RemoteAddr(hc.Request().RemoteAddr),
				logger.RequestID(hc.ResponseWriter().Header().Get(DefaultRequestIDHeader)),
			)
		}

		level := cfg.LogLevel
		switch {
		case ctx.Status() >= 500:
			level = slog.LevelError
		case ctx.Status() >= 400 && ctx.Status() != cuehttp.StatusUnhandled:
			level = slog.LevelWarn
		case duration > cfg.SlowRequestThreshold:
			level = slog.LevelWarn
			attrs = append(attrs, slog.Bool("slow_request", true))
		}

		cfg.Logger.LogAttrs(reqCtx, level, "request completed", attrs...)
	}
}
