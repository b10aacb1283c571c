// Package rop defines Result[T], the railway value used as the reply of every
// worker request: a success carrying a value, a failure carrying an error, or
// a cancellation when the request never got an answer.
package rop
