package cuehttp

import "slices"

// compose collapses an ordered handler chain into a single dispatchable
// function. An empty chain is a no-op and a single handler runs with a no-op
// continuation; longer chains thread a shared cursor through every
// continuation call.
func compose(handlers []Handler) DispatchFunc {
	switch len(handlers) {
	case 0:
		return func(Context) {}
	case 1:
		h := handlers[0]
		return func(ctx Context) {
			h(ctx, func() {})
		}
	default:
		hs := slices.Clone(handlers)
		return func(ctx Context) {
			run := &chainRun{ctx: ctx, handlers: hs}
			hs[0](ctx, run.next)
		}
	}
}

// chainRun owns the cursor for one dispatch through a multi-handler chain.
// Every handler receives the same next method value, so a handler that calls
// it twice skips over the handler that followed it, and calls past the end of
// the chain are no-ops. Each dispatch gets its own chainRun.
type chainRun struct {
	ctx      Context
	handlers []Handler
	cursor   int
}

func (r *chainRun) next() {
	r.cursor++
	if r.cursor < len(r.handlers) {
		r.handlers[r.cursor](r.ctx, r.next)
	}
}
