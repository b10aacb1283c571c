// Package chain provides a fluent wrapper around Result[T] for building
// synchronous railway chains out of solo primitives.
//
// Each step runs only while the chain is on the success track; the first
// failure or cancellation is carried unchanged to the end.
//
// Key operations:
// - Start/FromValue: begin a chain from a Result[T] or value
// - Then: switch to a new Result[U] via a function
// - ThenTry: call a function (U, error) and convert error to failure
// - Map: transform the successful value (T -> U)
// - Ensure: run side effects on success without changing the result
// - Recover: observe the failure or cancellation that stopped the chain
// - Finally: collapse the chain into a final value via handlers
package chain
