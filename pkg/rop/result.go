package rop

import (
	"time"

	"github.com/google/uuid"
)

// Result is the single value a worker hands back to its requester: either the
// produced value, a failure, or a cancellation when the reply could not be
// delivered at all.
type Result[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	result    T
	err       error
	isSuccess bool
	isCancel  bool
}

func Success[T any](r T) Result[T] {
	return Result[T]{
		result:    r,
		isSuccess: true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Fail[T any](err error) Result[T] {
	return Result[T]{
		err:       err,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Cancel[T any](err error) Result[T] {
	return Result[T]{
		err:       err,
		isCancel:  true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// FailFrom moves a non-successful result to another value type, keeping its
// id, error and kind.
func FailFrom[In, Out any](from Result[In]) Result[Out] {
	return Result[Out]{
		err:       from.err,
		isSuccess: false,
		isCancel:  from.isCancel,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

func (r Result[T]) Result() T {
	return r.result
}

func (r Result[T]) Err() error {
	return r.err
}

func (r Result[T]) IsSuccess() bool {
	return r.isSuccess
}

func (r Result[T]) IsFailure() bool {
	return !r.isSuccess
}

func (r Result[T]) IsCancel() bool {
	return r.isCancel
}

func (r Result[T]) CreatedAt() time.Time {
	return r.createdAt
}

// IsEmpty reports a zero Result, e.g. one received from a closed channel.
func (r Result[T]) IsEmpty() bool {
	return r.err == nil && !r.isCancel && !r.isSuccess
}

func (r Result[T]) Id() uuid.UUID {
	return r.id
}
