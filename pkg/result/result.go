package result

import (
	"fmt"
	"hash/maphash"
)

type variant uint8

const (
	invalid variant = iota
	present
	failed
)

// Result holds either a result of type R or a failure of type F, never both.
// Create one with Of or Fail. The zero value holds neither and every
// operation on it other than IsPresent, IsFailure, Equal and String panics
// with ErrInvalidState.
//
// Result is immutable. When R and F are comparable, so is Result, and ==
// agrees with Equal unless a payload type has its own Equal method.
type Result[R, F any] struct {
	variant variant
	result  R
	failure F
}

// Of returns a Result containing result. It panics with ErrInvalidState if
// result is nil.
func Of[R, F any](result R) Result[R, F] {
	if isAbsent(result) {
		panic(newError("Of", ErrInvalidState, "result is nil"))
	}
	return Result[R, F]{variant: present, result: result}
}

// Fail returns a Result containing failure. It panics with ErrInvalidState
// if failure is nil.
func Fail[R, F any](failure F) Result[R, F] {
	if isAbsent(failure) {
		panic(newError("Fail", ErrInvalidState, "failure is nil"))
	}
	return Result[R, F]{variant: failed, failure: failure}
}

// New returns a Result from exactly one non-nil slot. It returns
// ErrInvalidState when both or neither slot is set.
func New[R, F any](result *R, failure *F) (Result[R, F], error) {
	if (result == nil) == (failure == nil) {
		return Result[R, F]{}, newError("New", ErrInvalidState, "either result or failure must be set")
	}
	if result != nil {
		if isAbsent(*result) {
			return Result[R, F]{}, newError("New", ErrInvalidState, "result is nil")
		}
		return Result[R, F]{variant: present, result: *result}, nil
	}
	if isAbsent(*failure) {
		return Result[R, F]{}, newError("New", ErrInvalidState, "failure is nil")
	}
	return Result[R, F]{variant: failed, failure: *failure}, nil
}

func (r Result[R, F]) IsPresent() bool {
	return r.variant == present
}

func (r Result[R, F]) IsFailure() bool {
	return r.variant == failed
}

func (r Result[R, F]) Contains(result R) bool {
	return r.variant == present && equal(r.result, result)
}

func (r Result[R, F]) ContainsFailure(failure F) bool {
	return r.variant == failed && equal(r.failure, failure)
}

// Get returns the result, or ErrNoValuePresent if r holds a failure.
func (r Result[R, F]) Get() (R, error) {
	switch r.variant {
	case present:
		return r.result, nil
	case failed:
		var zero R
		return zero, newError("Get", ErrNoValuePresent, "no result present")
	}
	var zero R
	return zero, newError("Get", ErrInvalidState, "zero Result")
}

// GetFailure returns the failure, or ErrNoValuePresent if r holds a result.
func (r Result[R, F]) GetFailure() (F, error) {
	switch r.variant {
	case failed:
		return r.failure, nil
	case present:
		var zero F
		return zero, newError("GetFailure", ErrNoValuePresent, "no failure present")
	}
	var zero F
	return zero, newError("GetFailure", ErrInvalidState, "zero Result")
}

// MustGet is like Get but panics instead of returning an error.
func (r Result[R, F]) MustGet() R {
	v, err := r.Get()
	if err != nil {
		panic(err)
	}
	return v
}

// MustGetFailure is like GetFailure but panics instead of returning an error.
func (r Result[R, F]) MustGetFailure() F {
	f, err := r.GetFailure()
	if err != nil {
		panic(err)
	}
	return f
}

// Tuple exposes both slots and whether the result is present. The slot of
// the inactive variant is the zero value.
func (r Result[R, F]) Tuple() (R, F, bool) {
	r.check("Tuple")
	return r.result, r.failure, r.variant == present
}

func (r Result[R, F]) IfPresent(action func(R)) {
	requireFunc("IfPresent", "action", action)
	r.check("IfPresent")
	if r.variant == present {
		action(r.result)
	}
}

func (r Result[R, F]) IfFailure(action func(F)) {
	requireFunc("IfFailure", "action", action)
	r.check("IfFailure")
	if r.variant == failed {
		action(r.failure)
	}
}

// Peek performs action with the result, if present, and returns r.
func (r Result[R, F]) Peek(action func(R)) Result[R, F] {
	requireFunc("Peek", "action", action)
	r.check("Peek")
	if r.variant == present {
		action(r.result)
	}
	return r
}

// PeekFailure performs action with the failure, if present, and returns r.
func (r Result[R, F]) PeekFailure(action func(F)) Result[R, F] {
	requireFunc("PeekFailure", "action", action)
	r.check("PeekFailure")
	if r.variant == failed {
		action(r.failure)
	}
	return r
}

// Filter returns r if it holds a failure or a result matching predicate.
// Otherwise it returns a Result containing newFailure. newFailure must be
// non-nil even when it is not used.
func (r Result[R, F]) Filter(predicate func(R) bool, newFailure F) Result[R, F] {
	requireFunc("Filter", "predicate", predicate)
	if isAbsent(newFailure) {
		panic(newError("Filter", ErrInvalidArgument, "new failure is nil"))
	}
	r.check("Filter")
	if r.variant == failed || predicate(r.result) {
		return r
	}
	return Fail[R](newFailure)
}

// OrElseGet returns the result, if present, otherwise the value produced by
// failureMapper.
func (r Result[R, F]) OrElseGet(failureMapper func(F) R) R {
	requireFunc("OrElseGet", "failure mapper", failureMapper)
	r.check("OrElseGet")
	if r.variant == present {
		return r.result
	}
	return failureMapper(r.failure)
}

// OrElseThrow returns the result, if present. Otherwise it returns the error
// produced by failureMapper. A nil error from failureMapper is reported as
// ErrInvalidArgument.
func (r Result[R, F]) OrElseThrow(failureMapper func(F) error) (R, error) {
	return orElseErr("OrElseThrow", r, failureMapper)
}

// Equal reports whether r and other hold the same variant with equal
// payloads. Payloads with an Equal(T) bool method are compared with it.
func (r Result[R, F]) Equal(other Result[R, F]) bool {
	if r.variant != other.variant {
		return false
	}
	switch r.variant {
	case present:
		return equal(r.result, other.result)
	case failed:
		return equal(r.failure, other.failure)
	}
	return true
}

func (r Result[R, F]) String() string {
	switch r.variant {
	case present:
		return fmt.Sprintf("Result[%v]", r.result)
	case failed:
		return fmt.Sprintf("Failure[%v]", r.failure)
	}
	return "Result.Invalid"
}

func (r Result[R, F]) GoString() string {
	switch r.variant {
	case present:
		return fmt.Sprintf("result.Of[%T, %T](%#v)", r.result, r.failure, r.result)
	case failed:
		return fmt.Sprintf("result.Fail[%T, %T](%#v)", r.result, r.failure, r.failure)
	}
	return fmt.Sprintf("result.Result[%T, %T]{}", r.result, r.failure)
}

// Hash returns a hash of r consistent with ==. It also agrees with Equal
// for payloads without a custom Equal method.
func Hash[R, F comparable](r Result[R, F], seed maphash.Seed) uint64 {
	return maphash.Comparable(seed, r)
}

func (r Result[R, F]) check(op string) {
	if r.variant == invalid {
		panic(newError(op, ErrInvalidState, "zero Result"))
	}
}
