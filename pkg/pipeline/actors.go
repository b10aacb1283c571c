package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ib-77/wordfreq/pkg/actor"
	"github.com/ib-77/wordfreq/pkg/rop"
	"github.com/ib-77/wordfreq/pkg/rop/chain"
	"github.com/ib-77/wordfreq/pkg/rop/solo"
	"github.com/ib-77/wordfreq/pkg/source"
	"github.com/ib-77/wordfreq/pkg/words"
)

type loaded struct {
	input words.WordList
	stop  words.StopWordSet
}

// RunActors starts a Loader and a Counter, drives them through the load,
// load, count sequence and ranks the counted table. Both workers are stopped
// before it returns.
func RunActors(ctx context.Context, src source.Source, cfg Config) rop.Result[[]words.Pair] {
	cfg = cfg.withDefaults()
	logger := cfg.Logger.With(slog.String("mode", string(ModeActor)))

	loader := actor.StartLoader(ctx, src, actor.WithLogger(logger))
	defer loader.Stop()
	counter := actor.StartCounter(ctx, actor.WithLogger(logger))
	defer counter.Stop()

	m := &machine{state: Start, onTransition: cfg.OnTransition, logger: logger}

	var both *chain.Chain[loaded]
	if cfg.Concurrent {
		both = chain.Start(ctx, loadConcurrently(ctx, m, loader, cfg))
	} else {
		input := chain.Then(chain.FromValue(ctx, cfg.InputPath),
			func(ctx context.Context, path string) rop.Result[words.WordList] {
				m.to(AwaitInput)
				return loader.LoadInput(ctx, path)
			})
		both = chain.Then(input, func(ctx context.Context, list words.WordList) rop.Result[loaded] {
			m.to(AwaitStopWords)
			return withStopWords(ctx, list, loader.LoadStopWords(ctx, cfg.StopWordsPath))
		})
	}

	counted := chain.Then(both, func(ctx context.Context, l loaded) rop.Result[*words.FrequencyTable] {
		m.to(AwaitCount)
		return counter.CountWords(ctx, l.input, l.stop)
	})

	ranked := chain.Map(counted, func(ctx context.Context, table *words.FrequencyTable) []words.Pair {
		m.to(Ranking)
		return table.Top(cfg.Top)
	})

	return ranked.
		Ensure(func(ctx context.Context, pairs []words.Pair) {
			m.to(Done)
			logger.Info("ranking done", slog.Int("pairs", len(pairs)))
		}).
		Recover(func(ctx context.Context, r rop.Result[[]words.Pair]) {
			m.to(Failed)
			logger.Error("run failed", slog.Bool("cancelled", r.IsCancel()), slog.Any("err", r.Err()))
		}).
		Result()
}

// loadConcurrently queues both loads before waiting on either. The loader
// still serves them one after the other, input first.
func loadConcurrently(ctx context.Context, m *machine, loader *actor.Loader, cfg Config) rop.Result[loaded] {
	m.to(AwaitInput)

	inputReply, err := loader.Submit(ctx, actor.LoadInput, cfg.InputPath)
	if err != nil {
		return rop.Cancel[loaded](fmt.Errorf("queue input load: %w", err))
	}
	stopReply, err := loader.Submit(ctx, actor.LoadStopWords, cfg.StopWordsPath)
	if err != nil {
		return rop.Cancel[loaded](fmt.Errorf("queue stop words load: %w", err))
	}

	return solo.Switch(ctx, loader.Await(ctx, inputReply),
		func(ctx context.Context, list words.WordList) rop.Result[loaded] {
			m.to(AwaitStopWords)
			return withStopWords(ctx, list, loader.Await(ctx, stopReply))
		})
}

func withStopWords(ctx context.Context, input words.WordList, stop rop.Result[words.WordList]) rop.Result[loaded] {
	return solo.Map(ctx, stop, func(ctx context.Context, list words.WordList) loaded {
		return loaded{input: input, stop: words.NewStopWordSet(list...)}
	})
}
