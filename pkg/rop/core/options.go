package core

import "context"

type OptionKey string

const WorkerOptionKey OptionKey = "worker_options"

type WorkerOptions struct {
	InboxSize int
}

// WithWorkerOptions sets the inbox capacity used by workers started with ctx.
func WithWorkerOptions(ctx context.Context, inboxSize int) context.Context {
	return context.WithValue(ctx, WorkerOptionKey, WorkerOptions{InboxSize: inboxSize})
}

func GetInboxSize(ctx context.Context, defaultInboxSize int) int {
	options, ok := ctx.Value(WorkerOptionKey).(WorkerOptions)
	if ok && options.InboxSize >= 0 {
		return options.InboxSize
	}
	return defaultInboxSize
}
