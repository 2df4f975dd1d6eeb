package resulttest

import (
	"fmt"
	"testing"

	"github.com/fluxroot/result/pkg/result"
	"github.com/stretchr/testify/assert"
)

// recordingT records failures instead of stopping the test.
type recordingT struct {
	testing.TB
	failed   bool
	messages []string
}

func (r *recordingT) Helper() {}

func (r *recordingT) Errorf(format string, args ...any) {
	r.failed = true
	r.messages = append(r.messages, fmt.Sprintf(format, args...))
}

func (r *recordingT) FailNow() {
	r.failed = true
}

func newRecordingT(t *testing.T) *recordingT {
	return &recordingT{TB: t}
}

func TestAssert_PassesOnMatchingResult(t *testing.T) {
	t.Parallel()
	rec := newRecordingT(t)

	Assert(rec, result.Of[string, int]("ok")).
		IsPresent().
		Contains("ok").
		HasString("Result[ok]").
		HasValueSatisfying(func(t testing.TB, v string) {
			assert.Equal(t, "ok", v)
		})

	assert.False(t, rec.failed, "unexpected failures: %v", rec.messages)
}

func TestAssert_PassesOnMatchingFailure(t *testing.T) {
	t.Parallel()
	rec := newRecordingT(t)

	Assert(rec, result.Fail[string](3)).
		IsFailure().
		ContainsFailure(3).
		HasString("Failure[3]").
		HasFailureSatisfying(func(t testing.TB, f int) {
			assert.Equal(t, 3, f)
		})

	assert.False(t, rec.failed, "unexpected failures: %v", rec.messages)
}

func TestAssert_FailsOnWrongVariant(t *testing.T) {
	t.Parallel()

	rec := newRecordingT(t)
	Assert(rec, result.Fail[string](3)).IsPresent()
	assert.True(t, rec.failed)

	rec = newRecordingT(t)
	Assert(rec, result.Of[string, int]("ok")).IsFailure()
	assert.True(t, rec.failed)
}

func TestAssert_FailsOnDifferentPayload(t *testing.T) {
	t.Parallel()

	rec := newRecordingT(t)
	Assert(rec, result.Of[string, int]("ok")).Contains("other")
	assert.True(t, rec.failed)

	rec = newRecordingT(t)
	Assert(rec, result.Fail[string](3)).ContainsFailure(4)
	assert.True(t, rec.failed)
}

func TestAssert_SatisfyingFailsOnWrongVariant(t *testing.T) {
	t.Parallel()

	rec := newRecordingT(t)
	Assert(rec, result.Fail[string](3)).HasValueSatisfying(func(testing.TB, string) {})
	assert.True(t, rec.failed)

	rec = newRecordingT(t)
	Assert(rec, result.Of[string, int]("ok")).HasFailureSatisfying(func(testing.TB, int) {})
	assert.True(t, rec.failed)
}

type stubSubject struct {
	present bool
}

func (s stubSubject) IsPresent() bool { return s.present }
func (s stubSubject) IsFailure() bool { return !s.present }
func (s stubSubject) Contains(string) bool { return s.present }
func (s stubSubject) ContainsFailure(int) bool { return !s.present }
func (s stubSubject) Get() (string, error) { return "stub", nil }
func (s stubSubject) GetFailure() (int, error) { return 1, nil }
func (s stubSubject) String() string { return "stub" }

func TestAssertSubject_OnlyUsesReadAccessors(t *testing.T) {
	t.Parallel()
	rec := newRecordingT(t)

	AssertSubject[string, int](rec, stubSubject{present: true}).
		Contains("anything").
		HasString("stub")

	assert.False(t, rec.failed, "unexpected failures: %v", rec.messages)
}
