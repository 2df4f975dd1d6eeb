// Package chain provides a minimal fluent Chain[R, F] for synchronous
// composition of result.Result[R, F] values that carry a context.
//
// - Start/FromValue/FromFailure: create a Chain
// - Then/ThenTry: compose result-returning or error-returning steps
// - Map/Filter/Recover: transform, narrow or recover the chain
// - Ensure: trigger side effects without changing the chain
// - RepeatUntil/While: bounded loops, see WithMaxIterations
// - Finally: reduce to a concrete value via handlers
//
// Steps run on the caller's goroutine. The context is forwarded to every
// step and only consulted by the loops, which stop once it is done.
package chain
