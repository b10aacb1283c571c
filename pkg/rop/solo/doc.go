// Package solo contains single-value, synchronous combinators over Result[T].
//
// Highlights:
// - Succeed/Fail/Cancel: construct Result[T]
// - Switch: move from Result[In] to Result[Out]
// - Map: transform successful values
// - Try: call a function (Out, error) and convert error to failure
// - Tee/DoubleTee: side-effect helpers
// - Finally: reduce to a concrete value via success/error/cancel handlers
package solo
