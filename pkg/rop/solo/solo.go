package solo

import (
	"context"

	"github.com/ib-77/wordfreq/pkg/rop"
)

func Succeed[T any](input T) rop.Result[T] {
	return rop.Success(input)
}

func Fail[T any](err error) rop.Result[T] {
	return rop.Fail[T](err)
}

func Cancel[T any](err error) rop.Result[T] {
	return rop.Cancel[T](err)
}

func Switch[In any, Out any](ctx context.Context,
	input rop.Result[In],
	onSuccess func(ctx context.Context, r In) rop.Result[Out]) rop.Result[Out] {

	if input.IsSuccess() {
		return onSuccess(ctx, input.Result())
	}
	return rop.FailFrom[In, Out](input)
}

func Map[In any, Out any](ctx context.Context,
	input rop.Result[In],
	onSuccess func(ctx context.Context, r In) Out) rop.Result[Out] {

	if input.IsSuccess() {
		return rop.Success(onSuccess(ctx, input.Result()))
	}
	return rop.FailFrom[In, Out](input)
}

func Try[In any, Out any](ctx context.Context, input rop.Result[In],
	onTryExecute func(ctx context.Context, r In) (Out, error)) rop.Result[Out] {

	if input.IsSuccess() {
		out, err := onTryExecute(ctx, input.Result())
		if err != nil {
			return rop.FromError[Out](err)
		}
		return rop.Success(out)
	}
	return rop.FailFrom[In, Out](input)
}

func Tee[T any](ctx context.Context,
	input rop.Result[T],
	onSuccess func(ctx context.Context, r rop.Result[T])) rop.Result[T] {

	if input.IsSuccess() {
		onSuccess(ctx, input)
	}
	return input
}

func DoubleTee[T any](ctx context.Context, input rop.Result[T],
	onSuccess func(ctx context.Context, r T),
	onError func(ctx context.Context, err error),
	onCancel func(ctx context.Context, err error)) rop.Result[T] {

	switch {
	case input.IsSuccess():
		if onSuccess != nil {
			onSuccess(ctx, input.Result())
		}
	case input.IsCancel():
		if onCancel != nil {
			onCancel(ctx, input.Err())
		}
	default:
		if onError != nil {
			onError(ctx, input.Err())
		}
	}
	return input
}

func Finally[In, Out any](ctx context.Context, input rop.Result[In],
	onSuccess func(ctx context.Context, r In) Out,
	onError func(ctx context.Context, err error) Out,
	onCancel func(ctx context.Context, err error) Out) Out {

	if input.IsSuccess() {
		return onSuccess(ctx, input.Result())
	} else if input.IsCancel() {
		return onCancel(ctx, input.Err())
	} else {
		return onError(ctx, input.Err())
	}
}
