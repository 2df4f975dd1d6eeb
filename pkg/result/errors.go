package result

import (
	"errors"
	"fmt"
)

// Errors reported by Result operations. Match them with errors.Is.
var (
	ErrInvalidState    = errors.New("invalid state")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrNoValuePresent  = errors.New("no value present")
)

// Error describes a failed Result operation. Err is one of the sentinel
// errors above.
type Error struct {
	Op      string
	Err     error
	Message string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("result: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("result: %s: %v: %s", e.Op, e.Err, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newError(op string, err error, message string) *Error {
	return &Error{Op: op, Err: err, Message: message}
}

// requireFunc panics with ErrInvalidArgument when fn is nil.
func requireFunc[T any](op, name string, fn T) {
	if isAbsent(fn) {
		panic(newError(op, ErrInvalidArgument, name+" is nil"))
	}
}
