package core

import (
	"context"
	"sync"
)

// Locomotive drains inbox one message at a time until the inbox is closed or
// ctx is done. engine runs synchronously, so a worker never processes two
// messages at once and messages are handled in arrival order.
//
// onStop, if set, receives every message still queued when ctx is cancelled.
func Locomotive[Msg any](ctx context.Context, inbox <-chan Msg,
	engine func(ctx context.Context, msg Msg),
	onStop func(ctx context.Context, unprocessed Msg),
	wg *sync.WaitGroup) {
	defer wg.Done()

	for {
		select {
		case <-ctx.Done():
			if onStop != nil {
				drain(ctx, inbox, onStop)
			}
			return
		case msg, ok := <-inbox:
			if !ok {
				return
			}
			if ctx.Err() != nil {
				if onStop != nil {
					onStop(ctx, msg)
					drain(ctx, inbox, onStop)
				}
				return
			}
			engine(ctx, msg)
		}
	}
}

func drain[Msg any](ctx context.Context, inbox <-chan Msg, onStop func(ctx context.Context, unprocessed Msg)) {
	for {
		select {
		case msg, ok := <-inbox:
			if !ok {
				return
			}
			onStop(ctx, msg)
		default:
			return
		}
	}
}
