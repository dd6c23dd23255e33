// Package chain provides a minimal fluent Chain[T, E] for synchronous
// composition of Result values that keep the same success type.
//
// It keeps the API surface very small:
// - Start/FromValue: create a Chain
// - Then/ThenTry: compose result-returning or error-returning functions
// - Map: transform the successful value
// - Recover/RecoverWith: rejoin the success track after a failure
// - Ensure: trigger side effects without changing the result
// - Finally: reduce to a concrete value via handlers
//
// Every step short-circuits on a failed chain, so a pipeline stops at its
// first failing link and that exact error reaches Finally. For pipelines
// that change the value type mid-stream, use the package-level combinators
// of package result directly.
package chain
