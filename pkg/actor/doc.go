// Package actor implements the two long-lived workers of the word frequency
// pipeline, the Loader and the Counter.
//
// Each worker owns one inbox and serves it strictly one request at a time, in
// arrival order. Every request carries its own single-use reply channel and
// gets exactly one rop.Result back: a value, a failure for worker-local errors
// such as a missing file, or a cancellation when the worker stopped or the
// caller's context ended first. Worker-local errors never end the loop.
package actor
