package cuehttp

import "net/http"

// RequestContext is the default Context implementation bridging net/http.
// A fresh context carries StatusUnhandled so a router stage can claim the
// request; handlers either mutate status, redirect target and body through
// the context, or write to the ResponseWriter directly and bypass
// finalization.
type RequestContext struct {
	w        *responseWriter
	r        *http.Request
	status   int
	location string
	body     []byte
}

// NewRequestContext wraps a response writer and request into a context ready
// for dispatch.
func NewRequestContext(w http.ResponseWriter, r *http.Request) *RequestContext {
	return &RequestContext{
		w:      &responseWriter{ResponseWriter: w},
		r:      r,
		status: StatusUnhandled,
	}
}

// Method returns the request method.
func (c *RequestContext) Method() string {
	return c.r.Method
}

// Path returns the request path, never empty.
func (c *RequestContext) Path() string {
	if p := c.r.URL.Path; p != "" {
		return p
	}
	return "/"
}

// Status returns the current response status code.
func (c *RequestContext) Status() int {
	return c.status
}

// SetStatus sets the response status code.
func (c *RequestContext) SetStatus(code int) {
	c.status = code
}

// Redirect sets the redirect destination written as the Location header
// during finalization.
func (c *RequestContext) Redirect(location string) {
	c.location = location
}

// Location returns the redirect destination, empty when none is set.
func (c *RequestContext) Location() string {
	return c.location
}

// SetBody sets the response body written during finalization.
func (c *RequestContext) SetBody(body []byte) {
	c.body = body
}

// Body returns the buffered response body.
func (c *RequestContext) Body() []byte {
	return c.body
}

// Request returns the underlying *http.Request.
func (c *RequestContext) Request() *http.Request {
	return c.r
}

// ResponseWriter returns the underlying http.ResponseWriter.
func (c *RequestContext) ResponseWriter() http.ResponseWriter {
	return c.w
}

// finalizer is implemented by contexts that buffer their response and flush
// it once the pipeline completes.
type finalizer interface {
	finalize()
}

// finalize writes the buffered response. It is a no-op when a handler already
// wrote through the ResponseWriter directly.
func (c *RequestContext) finalize() {
	if c.w.Written() {
		return
	}
	if c.location != "" {
		c.w.Header().Set("Location", c.location)
	}
	c.w.WriteHeader(c.status)
	switch {
	case len(c.body) > 0:
		_, _ = c.w.Write(c.body)
	case c.status == StatusUnhandled:
		_, _ = c.w.Write([]byte("404 Not Found"))
	}
}
