// Package ext provides convenience accessors and side-effect hooks layered
// on the public contract of package result. Nothing here touches the
// container's internals; every helper is expressible through Fold and the
// total queries, which is why it lives in its own package.
//
// - ValueOrNil/ErrOrNil: non-panicking reads with a nil absent marker
// - GetOrElse: total extraction with an error-derived fallback
// - Tap/TapError: observe one side without altering the result
package ext
