// Package result provides an explicit success/failure container and a small
// algebra for composing fallible operations as values instead of control
// flow.
//
// A Result[T, E] is always exactly one of two variants: a success carrying a
// T or a failure carrying an E. E is unconstrained; domain failures are data,
// never raised. The only operations permitted to panic are the fail-fast
// accessors Value and Err, which raise *MisuseError on the wrong variant to
// flag a caller bug.
//
// Core operations:
// - Success/Failure: construct a variant
// - Fold: collapse to a final value, the terminal step of every chain
// - Map/MapErr: transform one side, passing the other through untouched
// - AndThen/FlatMap: chain result-returning steps, short-circuiting on the
//   first failure
// - Recover/RecoverWith: turn a failure back into the success track
// - Guard/GuardAsync: run boundary code (network, parsing) and convert any
//   returned error or panic into a typed failure via a caller-supplied
//   mapping
//
// Convenience accessors and side-effect hooks live in the ext subpackage;
// a fluent wrapper for same-type pipelines lives in chain.
package result
