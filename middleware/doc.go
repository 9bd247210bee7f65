// Package middleware provides onion-model handlers for cross-cutting
// concerns: request identification, structured request logging, and panic
// recovery. Every middleware has the canonical cuehttp.Handler shape and can
// be installed as an App stage or as part of any route's handler chain.
//
// Middleware that needs the underlying request or response writer asserts
// the context to cuehttp.HTTPContext and degrades to a pass-through when a
// custom context does not implement it.
package middleware
