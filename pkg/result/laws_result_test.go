package result_test

import (
	"testing"
	"testing/quick"

	"github.com/fluxroot/result/pkg/result"
)

func build(value int, ok bool) result.Result[int, string] {
	if ok {
		return result.Of[int, string](value)
	}
	return result.Fail[int]("boom")
}

func TestResultFunctorLaws(t *testing.T) {
	id := func(x int) int { return x }
	inc := func(x int) int { return x + 1 }
	dbl := func(x int) int { return x * 2 }

	check := func(value int, ok bool) bool {
		res := build(value, ok)
		left := result.Map(result.Map(res, inc), dbl)
		right := result.Map(res, func(v int) int { return dbl(inc(v)) })
		return res == result.Map(res, id) && left == right
	}

	if err := quick.Check(check, nil); err != nil {
		t.Fatalf("functor laws failed: %v", err)
	}
}

func TestResultMonadLaws(t *testing.T) {
	f := func(x int) result.Result[int, string] {
		if x%2 == 0 {
			return result.Of[int, string](x / 2)
		}
		return result.Fail[int]("odd")
	}
	g := func(x int) result.Result[int, string] {
		return result.Of[int, string](x + 3)
	}

	leftIdentity := func(x int) bool {
		return result.FlatMap(result.Of[int, string](x), f) == f(x)
	}
	if err := quick.Check(leftIdentity, nil); err != nil {
		t.Fatalf("left identity failed: %v", err)
	}

	rightIdentity := func(value int, ok bool) bool {
		res := build(value, ok)
		return result.FlatMap(res, result.Of[int, string]) == res
	}
	if err := quick.Check(rightIdentity, nil); err != nil {
		t.Fatalf("right identity failed: %v", err)
	}

	associativity := func(value int, ok bool) bool {
		res := build(value, ok)
		left := result.FlatMap(result.FlatMap(res, f), g)
		right := result.FlatMap(res, func(v int) result.Result[int, string] {
			return result.FlatMap(f(v), g)
		})
		return left.Equal(right)
	}
	if err := quick.Check(associativity, nil); err != nil {
		t.Fatalf("associativity failed: %v", err)
	}
}

func TestFailureShortCircuitLaw(t *testing.T) {
	check := func(failure string) bool {
		res := result.Fail[int](failure)
		called := false
		mapped := result.Map(res, func(v int) int { called = true; return v })
		bound := result.FlatMap(res, func(v int) result.Result[int, string] {
			called = true
			return result.Of[int, string](v)
		})
		return !called && mapped.ContainsFailure(failure) && bound.ContainsFailure(failure)
	}
	if err := quick.Check(check, nil); err != nil {
		t.Fatalf("short circuit failed: %v", err)
	}
}

func TestFilterLaw(t *testing.T) {
	check := func(value int) bool {
		even := func(v int) bool { return v%2 == 0 }
		filtered := result.Of[int, string](value).Filter(even, "odd")
		if even(value) {
			return filtered == result.Of[int, string](value)
		}
		return filtered == result.Fail[int]("odd") &&
			result.Fail[int]("f").Filter(even, "odd") == result.Fail[int]("f")
	}
	if err := quick.Check(check, nil); err != nil {
		t.Fatalf("filter law failed: %v", err)
	}
}
