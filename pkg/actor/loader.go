package actor

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ib-77/wordfreq/pkg/rop"
	"github.com/ib-77/wordfreq/pkg/source"
	"github.com/ib-77/wordfreq/pkg/words"
)

// Loader reads whole documents from a source and turns them into word lists.
type Loader struct {
	w   *worker[string, words.WordList]
	src source.Source
}

// StartLoader spawns the loader goroutine. It runs until ctx is done or Stop
// is called.
func StartLoader(ctx context.Context, src source.Source, opts ...Option) *Loader {
	l := &Loader{src: src}
	l.w = startWorker(ctx, "loader", l.handle, buildOptions(opts))
	return l
}

func (l *Loader) handle(ctx context.Context, req LoadRequest) rop.Result[words.WordList] {
	switch req.Kind {
	case LoadInput:
		text, err := source.ReadAll(ctx, l.src, req.Payload)
		if err != nil {
			return rop.Fail[words.WordList](err)
		}
		// the whole buffer at once, so no word is split at a line boundary
		list := words.Words(text)
		l.w.logger.Debug("input loaded", slog.String("path", req.Payload), slog.Int("words", len(list)))
		return rop.Success(list)

	case LoadStopWords:
		text, err := source.ReadAll(ctx, l.src, req.Payload)
		if err != nil {
			return rop.Fail[words.WordList](err)
		}
		list := words.ParseStopWords(text)
		l.w.logger.Debug("stop words loaded", slog.String("path", req.Payload), slog.Int("words", len(list)))
		return rop.Success(list)

	default:
		return rop.Fail[words.WordList](fmt.Errorf("%w: loader cannot serve %s", ErrUnsupportedRequest, req.Kind))
	}
}

// LoadInput tokenizes the document at path.
func (l *Loader) LoadInput(ctx context.Context, path string) rop.Result[words.WordList] {
	return l.w.call(ctx, LoadInput, path)
}

// LoadStopWords reads the comma separated stop-word document at path.
func (l *Loader) LoadStopWords(ctx context.Context, path string) rop.Result[words.WordList] {
	return l.w.call(ctx, LoadStopWords, path)
}

// Submit enqueues a request and returns its reply channel without waiting.
func (l *Loader) Submit(ctx context.Context, kind Kind, path string) (<-chan rop.Result[words.WordList], error) {
	req, reply := NewRequest[string, words.WordList](kind, path)
	if err := l.w.send(ctx, req); err != nil {
		return nil, err
	}
	return reply, nil
}

// Await waits for a reply obtained from Submit.
func (l *Loader) Await(ctx context.Context, reply <-chan rop.Result[words.WordList]) rop.Result[words.WordList] {
	return l.w.await(ctx, reply)
}

// Stop ends the loader and waits for its goroutine. Queued requests are
// answered with ErrWorkerStopped.
func (l *Loader) Stop() {
	l.w.stop()
}

// Done is closed once the loader goroutine has exited.
func (l *Loader) Done() <-chan struct{} {
	return l.w.done
}
