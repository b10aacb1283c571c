package rop

import "time"

type ResultProvider[T any] interface {
	// Result returns the successful result value
	Result() T
	// CreatedAt time creation (UTC)
	CreatedAt() time.Time
}

// Reply is what a requester can observe about a worker's answer
type Reply[T any] interface {
	ResultProvider[T]
	// Err returns the error if the request failed or was cancelled
	Err() error
	// IsSuccess returns true if the worker produced a value
	IsSuccess() bool
	// IsCancel returns true if no reply could be delivered
	IsCancel() bool
}

var _ Reply[int] = Result[int]{}
