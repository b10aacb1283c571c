package actor

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ib-77/wordfreq/pkg/rop"
	"github.com/ib-77/wordfreq/pkg/words"
)

// Counter turns word lists into frequency tables.
type Counter struct {
	w *worker[CountPayload, *words.FrequencyTable]
}

func StartCounter(ctx context.Context, opts ...Option) *Counter {
	c := &Counter{}
	c.w = startWorker(ctx, "counter", c.handle, buildOptions(opts))
	return c
}

func (c *Counter) handle(_ context.Context, req CountRequest) rop.Result[*words.FrequencyTable] {
	if req.Kind != CountWords {
		return rop.Fail[*words.FrequencyTable](fmt.Errorf("%w: counter cannot serve %s", ErrUnsupportedRequest, req.Kind))
	}

	table := words.Count(req.Payload.Words, req.Payload.StopWords)
	c.w.logger.Debug("words counted", slog.Int("tokens", len(req.Payload.Words)),
		slog.Int("distinct", table.Len()), slog.Int("counted", table.Total()))
	return rop.Success(table)
}

// CountWords counts list, skipping stop words. The caller must not touch list
// after the call.
func (c *Counter) CountWords(ctx context.Context, list words.WordList, stop words.StopWordSet) rop.Result[*words.FrequencyTable] {
	return c.w.call(ctx, CountWords, CountPayload{Words: list, StopWords: stop})
}

// Send enqueues a prepared request. The request's reply channel must have
// room for one value.
func (c *Counter) Send(ctx context.Context, req CountRequest) error {
	return c.w.send(ctx, req)
}

func (c *Counter) Await(ctx context.Context, reply <-chan rop.Result[*words.FrequencyTable]) rop.Result[*words.FrequencyTable] {
	return c.w.await(ctx, reply)
}

func (c *Counter) Stop() {
	c.w.stop()
}

func (c *Counter) Done() <-chan struct{} {
	return c.w.done
}
