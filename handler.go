package cuehttp

// Wrap adapts a handler that never needs the continuation. The function runs,
// then the chain continues unconditionally, so a wrapped handler cannot
// short-circuit.
func Wrap(fn func(Context)) Handler {
	return func(ctx Context, next Next) {
		fn(ctx)
		next()
	}
}

// Bind adapts a continuation-accepting method to run on the given receiver.
//
// A nil receiver skips the call and does not continue the chain: handlers
// registered after a nil-bound one never run. Callers that want the chain to
// proceed past an optional receiver should use BindFunc instead.
func Bind[T any](receiver *T, method func(*T, Context, Next)) Handler {
	return func(ctx Context, next Next) {
		if receiver == nil {
			return
		}
		method(receiver, ctx, next)
	}
}

// BindNew adapts a continuation-accepting method to run on a fresh zero-value
// receiver constructed per invocation.
func BindNew[T any](method func(*T, Context, Next)) Handler {
	return func(ctx Context, next Next) {
		method(new(T), ctx, next)
	}
}

// BindFunc adapts a continuation-less method to run on the given receiver.
// A nil receiver skips the call; the chain continues either way.
func BindFunc[T any](receiver *T, method func(*T, Context)) Handler {
	return func(ctx Context, next Next) {
		if receiver != nil {
			method(receiver, ctx)
		}
		next()
	}
}

// BindNewFunc adapts a continuation-less method to run on a fresh zero-value
// receiver constructed per invocation. The chain continues after every call.
func BindNewFunc[T any](method func(*T, Context)) Handler {
	return func(ctx Context, next Next) {
		method(new(T), ctx)
		next()
	}
}
