package actor

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/ib-77/wordfreq/pkg/rop"
	"github.com/ib-77/wordfreq/pkg/rop/core"
)

const defaultInboxSize = 0

type Option func(*options)

type options struct {
	logger *slog.Logger
}

func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

func buildOptions(opts []Option) options {
	o := options{logger: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// worker is the receive-process-reply loop shared by Loader and Counter.
type worker[P, R any] struct {
	name   string
	inbox  chan Request[P, R]
	done   chan struct{}
	cancel context.CancelFunc
	handle func(ctx context.Context, req Request[P, R]) rop.Result[R]
	logger *slog.Logger
}

func startWorker[P, R any](ctx context.Context, name string,
	handle func(ctx context.Context, req Request[P, R]) rop.Result[R], o options) *worker[P, R] {

	ctx, cancel := context.WithCancel(ctx)
	w := &worker[P, R]{
		name:   name,
		inbox:  make(chan Request[P, R], core.GetInboxSize(ctx, defaultInboxSize)),
		done:   make(chan struct{}),
		cancel: cancel,
		handle: handle,
		logger: o.logger.With(slog.String("worker", name)),
	}

	wg := &sync.WaitGroup{}
	wg.Add(1)
	go core.Locomotive[Request[P, R]](ctx, w.inbox, w.serve, w.reject, wg)

	go func() {
		wg.Wait()
		close(w.done)
		w.logger.Debug("worker quitting")
	}()

	w.logger.Debug("worker starting")
	return w
}

func (w *worker[P, R]) serve(ctx context.Context, req Request[P, R]) {
	w.logger.Debug("request received", slog.String("id", req.ID.String()), slog.String("kind", req.Kind.String()))

	res := w.safeHandle(ctx, req)
	if res.IsFailure() {
		w.logger.Warn("request failed", slog.String("id", req.ID.String()),
			slog.String("kind", req.Kind.String()), slog.Any("err", res.Err()))
	}
	req.Reply <- res
}

func (w *worker[P, R]) safeHandle(ctx context.Context, req Request[P, R]) (res rop.Result[R]) {
	defer func() {
		if p := recover(); p != nil {
			res = rop.Fail[R](fmt.Errorf("%w: %s %s: %v", ErrWorkerPanic, w.name, req.Kind, p))
		}
	}()
	return w.handle(ctx, req)
}

func (w *worker[P, R]) reject(_ context.Context, req Request[P, R]) {
	req.Reply <- rop.Cancel[R](fmt.Errorf("%w: %s", ErrWorkerStopped, w.name))
}

// send enqueues req without waiting for its reply.
func (w *worker[P, R]) send(ctx context.Context, req Request[P, R]) error {
	if err := core.ToChan[Request[P, R]](ctx, w.inbox, req, w.done); err != nil {
		return w.channelError(err)
	}
	return nil
}

func (w *worker[P, R]) await(ctx context.Context, reply <-chan rop.Result[R]) rop.Result[R] {
	res, err := core.FromChanFirst(ctx, reply, w.done)
	if err != nil {
		return rop.Cancel[R](w.channelError(err))
	}
	return res
}

func (w *worker[P, R]) call(ctx context.Context, kind Kind, payload P) rop.Result[R] {
	req, reply := NewRequest[P, R](kind, payload)
	if err := w.send(ctx, req); err != nil {
		return rop.Cancel[R](err)
	}
	return w.await(ctx, reply)
}

func (w *worker[P, R]) channelError(err error) error {
	if rop.IsCancellationError(err) {
		return err
	}
	return fmt.Errorf("%w: %s", ErrWorkerStopped, w.name)
}

func (w *worker[P, R]) stop() {
	w.cancel()
	<-w.done
}
