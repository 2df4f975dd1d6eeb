package chain

import (
	"context"

	"github.com/fluxroot/result/pkg/result"
)

// Chain wraps a result.Result with context to enable fluent chaining
type Chain[R, F any] struct {
	ctx context.Context
	res result.Result[R, F]
}

// Start creates a new chain from a result.Result. A nil ctx is replaced by
// context.Background().
func Start[R, F any](ctx context.Context, r result.Result[R, F]) Chain[R, F] {
	if ctx == nil {
		ctx = context.Background()
	}
	return Chain[R, F]{ctx: ctx, res: r}
}

// FromValue creates a new chain holding a result
func FromValue[R, F any](ctx context.Context, v R) Chain[R, F] {
	return Start(ctx, result.Of[R, F](v))
}

// FromFailure creates a new chain holding a failure
func FromFailure[R, F any](ctx context.Context, f F) Chain[R, F] {
	return Start(ctx, result.Fail[R](f))
}

func (c Chain[R, F]) Result() result.Result[R, F] {
	return c.res
}

func (c Chain[R, F]) Context() context.Context {
	return c.ctx
}

// Then composes functions that already return result.Result[R, F]
func (c Chain[R, F]) Then(onSuccess func(ctx context.Context, r R) result.Result[R, F]) Chain[R, F] {
	return Then(c, onSuccess)
}

// ThenTry composes functions that return (R, error), like repository calls.
// A non-nil error becomes the failure produced by onError.
func (c Chain[R, F]) ThenTry(try func(ctx context.Context, r R) (R, error),
	onError func(ctx context.Context, err error) F) Chain[R, F] {
	mustNotBeNil("ThenTry", "try", try == nil)
	mustNotBeNil("ThenTry", "error mapper", onError == nil)

	return c.Then(func(ctx context.Context, r R) result.Result[R, F] {
		v, err := try(ctx, r)
		if err != nil {
			return result.Fail[R](onError(ctx, err))
		}
		return result.Of[R, F](v)
	})
}

// Map transforms the result to a new value of the same type
func (c Chain[R, F]) Map(onSuccess func(ctx context.Context, r R) R) Chain[R, F] {
	return Map(c, onSuccess)
}

// Filter replaces a result not matching predicate with newFailure
func (c Chain[R, F]) Filter(predicate func(ctx context.Context, r R) bool, newFailure F) Chain[R, F] {
	return Chain[R, F]{ctx: c.ctx, res: c.res.Filter(bind(c.ctx, predicate), newFailure)}
}

// Recover replaces a failure with the Result produced by onFailure
func (c Chain[R, F]) Recover(onFailure func(ctx context.Context, f F) result.Result[R, F]) Chain[R, F] {
	return Chain[R, F]{ctx: c.ctx, res: result.Or(c.res, bind(c.ctx, onFailure))}
}

// Ensure triggers side effects for result/failure without changing the
// chain. Nil callbacks are skipped.
func (c Chain[R, F]) Ensure(onSuccess func(context.Context, R), onFailure func(context.Context, F)) Chain[R, F] {
	if onSuccess != nil {
		c.res.IfPresent(func(r R) { onSuccess(c.ctx, r) })
	}
	if onFailure != nil {
		c.res.IfFailure(func(f F) { onFailure(c.ctx, f) })
	}
	return c
}

// Or returns c if it holds a result, otherwise alternative if that holds a
// result, otherwise c.
func (c Chain[R, F]) Or(alternative Chain[R, F]) Chain[R, F] {
	if c.res.IsPresent() || !alternative.res.IsPresent() {
		return c
	}
	return alternative
}

// And returns the first chain holding a failure, otherwise required.
func (c Chain[R, F]) And(required Chain[R, F]) Chain[R, F] {
	if c.res.IsFailure() {
		return c
	}
	return required
}

// RepeatUntil applies onSuccess, checking done after each step, and stops on
// a failure or once done reports true. The number of steps is bounded by
// MaxIterations; with a bound of zero or a done context no step runs.
func (c Chain[R, F]) RepeatUntil(onSuccess func(ctx context.Context, r R) result.Result[R, F],
	done func(ctx context.Context, r R) bool) Chain[R, F] {
	mustNotBeNil("RepeatUntil", "step", onSuccess == nil)
	mustNotBeNil("RepeatUntil", "done", done == nil)

	limit := MaxIterations(c.ctx, DefaultMaxIterations)
	for i := 0; i < limit && c.res.IsPresent() && c.ctx.Err() == nil; i++ {
		c = c.Then(onSuccess)
		if !c.res.IsPresent() || done(c.ctx, c.res.MustGet()) {
			return c
		}
	}
	return c
}

// While applies onSuccess as long as the chain holds a result matching
// while. The number of steps is bounded by MaxIterations.
func (c Chain[R, F]) While(onSuccess func(ctx context.Context, r R) result.Result[R, F],
	while func(ctx context.Context, r R) bool) Chain[R, F] {
	mustNotBeNil("While", "step", onSuccess == nil)
	mustNotBeNil("While", "condition", while == nil)

	limit := MaxIterations(c.ctx, DefaultMaxIterations)
	for i := 0; i < limit && c.res.IsPresent() && c.ctx.Err() == nil && while(c.ctx, c.res.MustGet()); i++ {
		c = c.Then(onSuccess)
	}
	return c
}

// Then chains a function that returns result.Result[S, F]
func Then[R, F, S any](c Chain[R, F], onSuccess func(context.Context, R) result.Result[S, F]) Chain[S, F] {
	return Chain[S, F]{ctx: c.ctx, res: result.FlatMap(c.res, bind(c.ctx, onSuccess))}
}

// Map chains a pure transformation function
func Map[R, F, S any](c Chain[R, F], onSuccess func(context.Context, R) S) Chain[S, F] {
	return Chain[S, F]{ctx: c.ctx, res: result.Map(c.res, bind(c.ctx, onSuccess))}
}

// Finally collapses the chain to a final value, delegating to result.Fold
func Finally[R, F, T any](c Chain[R, F], onSuccess func(context.Context, R) T,
	onFailure func(context.Context, F) T) T {
	return result.Fold(c.res, bind(c.ctx, onSuccess), bind(c.ctx, onFailure))
}

// bind closes fn over ctx. A nil fn stays nil so the result package reports
// it as an invalid argument.
func bind[A, B any](ctx context.Context, fn func(context.Context, A) B) func(A) B {
	if fn == nil {
		return nil
	}
	return func(a A) B {
		return fn(ctx, a)
	}
}

func mustNotBeNil(op, name string, isNil bool) {
	if isNil {
		panic(&result.Error{Op: "chain." + op, Err: result.ErrInvalidArgument, Message: name + " is nil"})
	}
}
