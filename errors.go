package cuehttp

import "errors"

// Registration misuse errors. The builder panics with these during the build
// phase; dispatch itself never produces errors, an unmatched route simply
// leaves the sentinel status untouched.
var (
	ErrInvalidPath = errors.New("route path must begin with '/'")
	ErrNilHandler  = errors.New("cannot register nil handler")
)
