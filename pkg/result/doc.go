// Package result provides Result[R, F], an immutable value holding either a
// result of type R or a failure of type F.
//
// Operations that keep both type parameters are methods:
// - Of/Fail/New: construct a Result
// - IsPresent/IsFailure/Contains/ContainsFailure: query the variant
// - Get/GetFailure/MustGet/MustGetFailure: extract a payload
// - IfPresent/IfFailure/Peek/PeekFailure: side effects
// - Filter/OrElseGet/OrElseThrow: narrow or terminate a Result
//
// Operations that change a type parameter are functions, because Go methods
// cannot declare their own type parameters:
// - Map/FlatMap: transform the result
// - Or/MapFailure: transform the failure
// - Fold/OrElseErr: terminate with a value or a typed error
// - FromTuple/Try: bridge from (value, error) returns
//
// Passing a nil function to any operation panics with ErrInvalidArgument.
package result
