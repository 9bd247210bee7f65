package cuehttp

import (
	"fmt"
	"maps"
	"net/http"
)

// methods is the fixed verb set the router registers and matches.
var methods = []string{
	http.MethodDelete,
	http.MethodGet,
	http.MethodHead,
	http.MethodPost,
	http.MethodPut,
}

// Router is the mutable route-table builder. Registration calls mutate it
// during the build phase; Routes freezes the table into a read-only
// dispatcher for the serve phase. A Router must not be mutated concurrently
// with itself, but every dispatcher it exports is an independent snapshot
// safe to share.
type Router struct {
	prefix  string
	entries map[string]DispatchFunc
}

// Option configures a Router during creation.
type Option func(*Router)

// WithPrefix sets the route prefix concatenated ahead of every registered and
// looked-up path.
func WithPrefix(prefix string) Option {
	return func(r *Router) {
		r.prefix = prefix
	}
}

// New creates an empty Router.
func New(opts ...Option) *Router {
	r := &Router{entries: make(map[string]DispatchFunc)}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Prefix replaces the route prefix. It affects registrations and dispatchers
// created after the call; previously registered routes keep the prefix they
// were registered under.
func (r *Router) Prefix(prefix string) *Router {
	r.prefix = prefix
	return r
}

// Delete registers a handler chain for DELETE requests on path.
func (r *Router) Delete(path string, handlers ...Handler) *Router {
	return r.handle(http.MethodDelete, path, handlers)
}

// Get registers a handler chain for GET requests on path.
func (r *Router) Get(path string, handlers ...Handler) *Router {
	return r.handle(http.MethodGet, path, handlers)
}

// Head registers a handler chain for HEAD requests on path.
func (r *Router) Head(path string, handlers ...Handler) *Router {
	return r.handle(http.MethodHead, path, handlers)
}

// Post registers a handler chain for POST requests on path.
func (r *Router) Post(path string, handlers ...Handler) *Router {
	return r.handle(http.MethodPost, path, handlers)
}

// Put registers a handler chain for PUT requests on path.
func (r *Router) Put(path string, handlers ...Handler) *Router {
	return r.handle(http.MethodPut, path, handlers)
}

// All registers the same handler chain under every verb in the fixed set.
func (r *Router) All(path string, handlers ...Handler) *Router {
	for _, method := range methods {
		r.handle(method, path, handlers)
	}
	return r
}

// handle composes one chain and inserts it into the table. The first
// registration for a route key wins; later registrations for the same key are
// silently dropped.
func (r *Router) handle(method, path string, handlers []Handler) *Router {
	if len(path) == 0 || path[0] != '/' {
		panic(fmt.Errorf("%w: %q", ErrInvalidPath, path))
	}
	for _, h := range handlers {
		if h == nil {
			panic(fmt.Errorf("%w: %s %s", ErrNilHandler, method, path))
		}
	}

	key := routeKey(method, r.prefix, path)
	if _, exists := r.entries[key]; exists {
		return r
	}
	r.entries[key] = compose(handlers)
	return r
}

// Routes exports the current table as a single pipeline stage. The returned
// dispatcher runs over a frozen snapshot: registrations and prefix changes
// made afterwards do not affect it.
func (r *Router) Routes() DispatchFunc {
	rt := &routes{prefix: r.prefix, entries: maps.Clone(r.entries)}
	return rt.dispatch
}

// routes is the frozen, shareable form of a route table.
type routes struct {
	prefix  string
	entries map[string]DispatchFunc
}

// dispatch claims a request only while the pipeline still marks it unhandled.
// An upstream stage that already produced a response keeps it; a lookup miss
// leaves the sentinel in place for the outer pipeline to report.
func (rt *routes) dispatch(ctx Context) {
	if ctx.Status() != StatusUnhandled {
		return
	}
	if handler, ok := rt.entries[routeKey(ctx.Method(), rt.prefix, ctx.Path())]; ok {
		handler(ctx)
	}
}

func routeKey(method, prefix, path string) string {
	return method + "+" + prefix + path
}
