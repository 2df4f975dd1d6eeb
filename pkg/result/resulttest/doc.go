// Package resulttest provides testify-backed assertions for result.Result.
//
//	resulttest.Assert(t, r).
//		Contains("ok").
//		HasString("Result[ok]")
package resulttest
