package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/Winderton/cuehttp"
	"github.com/Winderton/cuehttp/logger"
)

// RecoverConfig configures the panic recovery middleware.
type RecoverConfig struct {
	// Logger is the slog logger to use (default: slog.Default())
	Logger *slog.Logger
	// IncludeStack controls whether full stack traces are logged. Disable in
	// production if logs may be exposed.
	IncludeStack bool
}

// Recover creates a panic recovery middleware with default configuration.
// The chain composer itself never intercepts panics; recovery is strictly
// opt-in through this middleware.
func Recover() cuehttp.Handler {
	return RecoverWithConfig(RecoverConfig{IncludeStack: true})
}

// RecoverWithConfig creates a panic recovery middleware with custom
// configuration. A recovered panic is logged and the request is marked as an
// internal server error; handlers that already produced a status keep the
// chain's other effects.
func RecoverWithConfig(cfg RecoverConfig) cuehttp.Handler {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	return func(ctx cuehttp.Context, next cuehttp.Next) {
		defer func() {
			if rvr := recover(); rvr != nil {
				attrs := []any{
					slog.Any("panic", rvr),
					logger.Method(ctx.Method()),
					logger.Path(ctx.Path()),
				}
				if cfg.IncludeStack {
					attrs = append(attrs, slog.String("stack", string(debug.Stack())))
				}

				cfg.Logger.Error("panic recovered", attrs...)
				ctx.SetStatus(http.StatusInternalServerError)
			}
		}()

		next()
	}
}
