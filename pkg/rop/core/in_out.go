package core

import (
	"context"
	"errors"
)

// ErrStopped is returned when the other side of a channel has shut down.
var ErrStopped = errors.New("peer stopped")

// ToChan sends value unless ctx is done or stopped is closed first.
func ToChan[T any](ctx context.Context, ch chan<- T, value T, stopped <-chan struct{}) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	select {
	case <-stopped:
		return ErrStopped
	default:
	}

	select {
	case ch <- value:
		return nil
	case <-stopped:
		return ErrStopped
	case <-ctx.Done():
		return ctx.Err()
	}
}

// FromChanFirst waits for the first value on out. A value already buffered in
// out wins over a concurrent shutdown of the sender.
func FromChanFirst[T any](ctx context.Context, out <-chan T, stopped <-chan struct{}) (T, error) {
	var zero T

	select {
	case v, ok := <-out:
		if !ok {
			return zero, ErrStopped
		}
		return v, nil
	case <-stopped:
		select {
		case v, ok := <-out:
			if ok {
				return v, nil
			}
		default:
		}
		return zero, ErrStopped
	case <-ctx.Done():
		return zero, ctx.Err()
	}
}

// FromChanMany collects values until out is closed or ctx is done.
func FromChanMany[T any](ctx context.Context, out <-chan T) []T {
	res := make([]T, 0)
	for {
		select {
		case v, ok := <-out:
			if !ok {
				return res
			}
			res = append(res, v)
		case <-ctx.Done():
			return res
		}
	}
}
