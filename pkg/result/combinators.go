package result

// Map returns a Result containing mapper applied to the result of r. If r
// holds a failure, the failure is carried over and mapper is not called.
func Map[R, F, S any](r Result[R, F], mapper func(R) S) Result[S, F] {
	requireFunc("Map", "mapper", mapper)
	r.check("Map")
	if r.variant == present {
		return Of[S, F](mapper(r.result))
	}
	return Fail[S](r.failure)
}

// FlatMap returns the Result produced by mapper for the result of r. If r
// holds a failure, the failure is carried over and mapper is not called.
func FlatMap[R, F, S any](r Result[R, F], mapper func(R) Result[S, F]) Result[S, F] {
	requireFunc("FlatMap", "mapper", mapper)
	r.check("FlatMap")
	if r.variant == present {
		return mapper(r.result)
	}
	return Fail[S](r.failure)
}

// Or returns the Result produced by failureMapper for the failure of r. If
// r holds a result, the result is carried over and failureMapper is not
// called.
func Or[R, F, G any](r Result[R, F], failureMapper func(F) Result[R, G]) Result[R, G] {
	requireFunc("Or", "failure mapper", failureMapper)
	r.check("Or")
	if r.variant == present {
		return Of[R, G](r.result)
	}
	return failureMapper(r.failure)
}

// MapFailure is the failure-side counterpart of Map.
func MapFailure[R, F, G any](r Result[R, F], mapper func(F) G) Result[R, G] {
	requireFunc("MapFailure", "mapper", mapper)
	r.check("MapFailure")
	if r.variant == failed {
		return Fail[R](mapper(r.failure))
	}
	return Of[R, G](r.result)
}

// Fold collapses r into a single value.
func Fold[R, F, T any](r Result[R, F], onResult func(R) T, onFailure func(F) T) T {
	requireFunc("Fold", "result handler", onResult)
	requireFunc("Fold", "failure handler", onFailure)
	r.check("Fold")
	if r.variant == present {
		return onResult(r.result)
	}
	return onFailure(r.failure)
}

// OrElseErr returns the result of r, if present. Otherwise it returns the
// error built by failureMapper, keeping its static type.
func OrElseErr[R, F any, E error](r Result[R, F], failureMapper func(F) E) (R, E) {
	return orElseErr("OrElseErr", r, failureMapper)
}

func orElseErr[R, F any, E error](op string, r Result[R, F], failureMapper func(F) E) (R, E) {
	requireFunc(op, "failure mapper", failureMapper)
	r.check(op)
	if r.variant == present {
		var noErr E
		return r.result, noErr
	}
	var zero R
	err := failureMapper(r.failure)
	if isAbsent(err) {
		if e, ok := any(newError(op, ErrInvalidArgument, "failure mapper returned nil")).(E); ok {
			return zero, e
		}
		panic(newError(op, ErrInvalidArgument, "failure mapper returned nil"))
	}
	return zero, err
}
