package logger

import (
	"log/slog"
	"time"
)

// Attribute helpers follow the empty Attr pattern for nil safety: a nil error
// or empty identifier yields an empty Attr that slog drops silently.

// Component creates an attribute for component names.
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Event creates an attribute for event names.
func Event(name string) slog.Attr {
	return slog.String("event", name)
}

// Method creates an attribute for HTTP methods.
func Method(method string) slog.Attr {
	return slog.String("method", method)
}

// Path creates an attribute for URL paths.
func Path(path string) slog.Attr {
	return slog.String("path", path)
}

// RemoteAddr creates an attribute for the client network address.
func RemoteAddr(addr string) slog.Attr {
	return slog.String("remote_addr", addr)
}

// StatusCode creates an attribute for HTTP status codes.
func StatusCode(code int) slog.Attr {
	return slog.Int("status_code", code)
}

// Duration creates an attribute for a duration.
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

// RequestID creates an attribute for HTTP request IDs. Returns an empty Attr
// for an empty ID.
func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

// Error creates an attribute for a single error under the key "error".
// Returns an empty Attr for nil errors, enabling safe usage without nil
// checks.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}
