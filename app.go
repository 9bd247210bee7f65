package cuehttp

import (
	"io"
	"log/slog"
	"net/http"
	"sync"
)

// App sequences onion-model stages into one pipeline and adapts it to
// net/http. Stages added through Use run in order; a router plugs in as one
// stage among them via UseRouter. The stage list freezes into a single
// composed chain on the first request.
type App struct {
	handlers   []Handler
	logger     *slog.Logger
	newContext func(http.ResponseWriter, *http.Request) Context

	once     sync.Once
	pipeline DispatchFunc
}

// AppOption configures an App during creation.
type AppOption func(*App)

// WithLogger sets the logger for request completion logs.
func WithLogger(logger *slog.Logger) AppOption {
	return func(a *App) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// WithContextFactory replaces the default RequestContext factory. Custom
// contexts are responsible for writing their own response; only contexts
// produced by NewRequestContext are finalized by the App.
func WithContextFactory(f func(http.ResponseWriter, *http.Request) Context) AppOption {
	return func(a *App) {
		if f != nil {
			a.newContext = f
		}
	}
}

// NewApp creates an App with no stages and a discarded logger.
func NewApp(opts ...AppOption) *App {
	a := &App{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		newContext: func(w http.ResponseWriter, r *http.Request) Context {
			return NewRequestContext(w, r)
		},
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Use appends stages to the pipeline. All stages must be added before the
// first request is served.
func (a *App) Use(handlers ...Handler) *App {
	a.handlers = append(a.handlers, handlers...)
	return a
}

// UseRouter freezes the router's table and installs its dispatcher as one
// pipeline stage. The stage always continues, leaving unmatched requests to
// later stages or to finalization.
func (a *App) UseRouter(r *Router) *App {
	return a.Use(Wrap(r.Routes()))
}

// ServeHTTP implements http.Handler. Panics raised inside handlers propagate
// to the caller unmodified; use the recover middleware to intercept them.
func (a *App) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a.once.Do(func() {
		a.pipeline = compose(a.handlers)
	})

	ctx := a.newContext(w, r)
	a.pipeline(ctx)

	if f, ok := ctx.(finalizer); ok {
		f.finalize()
	}

	a.logger.DebugContext(r.Context(), "request served",
		slog.String("method", ctx.Method()),
		slog.String("path", ctx.Path()),
		slog.Int("status", ctx.Status()),
	)
}
