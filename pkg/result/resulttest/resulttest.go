package resulttest

import (
	"testing"

	"github.com/fluxroot/result/pkg/result"
	"github.com/stretchr/testify/require"
)

// Subject is the read side of a Result that assertions rely on.
type Subject[R, F any] interface {
	// IsPresent reports whether a result is held
	IsPresent() bool
	// IsFailure reports whether a failure is held
	IsFailure() bool
	// Contains reports whether the held result equals result
	Contains(result R) bool
	// ContainsFailure reports whether the held failure equals failure
	ContainsFailure(failure F) bool
	// Get returns the result or an error if none is held
	Get() (R, error)
	// GetFailure returns the failure or an error if none is held
	GetFailure() (F, error)
	// String describes the subject in failure messages
	String() string
}

// Assertion wraps a Subject and fails the test through require on the
// first unmet expectation. Methods return the receiver for chaining.
type Assertion[R, F any] struct {
	t      testing.TB
	actual Subject[R, F]
}

// Assert starts an assertion on actual.
func Assert[R, F any](t testing.TB, actual result.Result[R, F]) *Assertion[R, F] {
	t.Helper()
	return AssertSubject[R, F](t, actual)
}

func AssertSubject[R, F any](t testing.TB, actual Subject[R, F]) *Assertion[R, F] {
	t.Helper()
	require.NotNil(t, actual, "expected a result")
	return &Assertion[R, F]{t: t, actual: actual}
}

func (a *Assertion[R, F]) IsPresent() *Assertion[R, F] {
	a.t.Helper()
	require.Truef(a.t, a.actual.IsPresent(), "expected result to be present, got %s", a.actual)
	return a
}

func (a *Assertion[R, F]) IsFailure() *Assertion[R, F] {
	a.t.Helper()
	require.Truef(a.t, a.actual.IsFailure(), "expected failure, got %s", a.actual)
	return a
}

func (a *Assertion[R, F]) Contains(expected R) *Assertion[R, F] {
	a.t.Helper()
	a.IsPresent()
	require.Truef(a.t, a.actual.Contains(expected), "expected result %v, got %s", expected, a.actual)
	return a
}

func (a *Assertion[R, F]) ContainsFailure(expected F) *Assertion[R, F] {
	a.t.Helper()
	a.IsFailure()
	require.Truef(a.t, a.actual.ContainsFailure(expected), "expected failure %v, got %s", expected, a.actual)
	return a
}

// HasValueSatisfying runs requirements against the result.
func (a *Assertion[R, F]) HasValueSatisfying(requirements func(t testing.TB, value R)) *Assertion[R, F] {
	a.t.Helper()
	a.IsPresent()
	value, err := a.actual.Get()
	require.NoError(a.t, err)
	requirements(a.t, value)
	return a
}

// HasFailureSatisfying runs requirements against the failure.
func (a *Assertion[R, F]) HasFailureSatisfying(requirements func(t testing.TB, failure F)) *Assertion[R, F] {
	a.t.Helper()
	a.IsFailure()
	failure, err := a.actual.GetFailure()
	require.NoError(a.t, err)
	requirements(a.t, failure)
	return a
}

func (a *Assertion[R, F]) HasString(expected string) *Assertion[R, F] {
	a.t.Helper()
	require.Equal(a.t, expected, a.actual.String())
	return a
}
