// Package cuehttp provides an exact-match HTTP request router with
// onion-model middleware execution. Handlers registered for a route form an
// ordered chain; each handler receives a continuation and may act both before
// and after the rest of the chain runs. The router itself is one stage of a
// larger pipeline: it claims a request only while the request still carries
// the unhandled sentinel status, so several routers and middlewares can be
// sequenced without overwriting each other's responses.
package cuehttp

import "net/http"

// StatusUnhandled marks a request no pipeline stage has claimed yet. A fresh
// RequestContext carries it, and dispatch only runs while it is still set.
const StatusUnhandled = http.StatusNotFound

// Next resumes the next handler in a chain. Calling it advances the chain by
// one handler; not calling it terminates the chain at the current handler.
type Next func()

// Handler is the canonical handler shape. Every registration form reduces to
// it through the adapter constructors in handler.go.
type Handler func(ctx Context, next Next)

// DispatchFunc is a single pipeline stage: a composed handler chain or a
// frozen router dispatcher, invoked with one request's context.
type DispatchFunc func(ctx Context)

// Context is the per-request state the router borrows for one dispatch.
// It never owns or outlives it.
type Context interface {
	// Method returns the request method.
	Method() string
	// Path returns the request path.
	Path() string
	// Status returns the current response status code.
	Status() int
	// SetStatus sets the response status code.
	SetStatus(code int)
	// Redirect sets the redirect destination for the response.
	Redirect(location string)
}

// HTTPContext extends Context with access to the underlying request and
// response pair. RequestContext implements it; middleware that needs headers
// or the raw writer asserts to it.
type HTTPContext interface {
	Context
	Request() *http.Request
	ResponseWriter() http.ResponseWriter
}
