package middleware

import (
	"github.com/Winderton/cuehttp"
	"github.com/google/uuid"
)

// DefaultRequestIDHeader is the header carrying the request identifier.
const DefaultRequestIDHeader = "X-Request-ID"

// RequestIDConfig configures the request ID middleware.
type RequestIDConfig struct {
	// Skip defines a function to skip middleware execution for specific requests
	Skip func(ctx cuehttp.Context) bool
	// Generator creates new request IDs (default: UUID v4)
	Generator func() string
	// HeaderName specifies the header name for the request ID (default: "X-Request-ID")
	HeaderName string
	// UseExisting determines whether to reuse a request ID from the incoming request
	UseExisting bool
}

// RequestID creates a request ID middleware with default configuration: a
// fresh UUID per request, echoed in the response headers.
func RequestID() cuehttp.Handler {
	return RequestIDWithConfig(RequestIDConfig{})
}

// RequestIDWithConfig creates a request ID middleware with custom
// configuration. The ID is set on the response headers before the rest of
// the chain runs so downstream handlers can read it back.
func RequestIDWithConfig(cfg RequestIDConfig) cuehttp.Handler {
	if cfg.HeaderName == "" {
		cfg.HeaderName = DefaultRequestIDHeader
	}
	if cfg.Generator == nil {
		cfg.Generator = func() string {
			return uuid.New().String()
		}
	}

	return func(ctx cuehttp.Context, next cuehttp.Next) {
		if cfg.Skip != nil && cfg.Skip(ctx) {
			next()
			return
		}

		hc, ok := ctx.(cuehttp.HTTPContext)
		if !ok {
			next()
			return
		}

		var requestID string
		if cfg.UseExisting {
			requestID = hc.Request().Header.Get(cfg.HeaderName)
		}
		if requestID == "" {
			requestID = cfg.Generator()
		}

		hc.ResponseWriter().Header().Set(cfg.HeaderName, requestID)
		next()
	}
}
