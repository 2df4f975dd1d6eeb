package result

// FromTuple converts a (value, error) pair into a Result. A non-nil err
// wins over value; a nil value with a nil err panics like Of.
func FromTuple[R any](value R, err error) Result[R, error] {
	if err != nil {
		return Fail[R](err)
	}
	return Of[R, error](value)
}

// Try calls fn and converts its return values with FromTuple.
func Try[R any](fn func() (R, error)) Result[R, error] {
	requireFunc("Try", "fn", fn)
	value, err := fn()
	return FromTuple(value, err)
}
