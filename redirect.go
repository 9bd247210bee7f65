package cuehttp

import "net/http"

// Redirect registers a permanent (301) redirect from path to location under
// every verb in the fixed set.
func (r *Router) Redirect(path, location string) *Router {
	return r.RedirectWithStatus(path, location, http.StatusMovedPermanently)
}

// RedirectWithStatus registers a redirect from path to location with a custom
// status code under every verb in the fixed set.
func (r *Router) RedirectWithStatus(path, location string, status int) *Router {
	return r.All(path, Wrap(func(ctx Context) {
		ctx.Redirect(location)
		ctx.SetStatus(status)
	}))
}
