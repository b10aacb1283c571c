package pipeline

import (
	"context"
	"iter"
	"log/slog"

	"github.com/ib-77/wordfreq/pkg/rop"
	"github.com/ib-77/wordfreq/pkg/rop/chain"
	"github.com/ib-77/wordfreq/pkg/source"
	"github.com/ib-77/wordfreq/pkg/words"
)

// RunIterators counts the input through a lazy chain: lines, tokens, stop
// word filter, table. Nothing is read before the table pulls from it.
func RunIterators(ctx context.Context, src source.Source, cfg Config) rop.Result[[]words.Pair] {
	cfg = cfg.withDefaults()
	logger := cfg.Logger.With(slog.String("mode", string(ModeIterators)))

	stop := chain.ThenTry(chain.FromValue(ctx, cfg.StopWordsPath),
		func(ctx context.Context, path string) (words.StopWordSet, error) {
			return loadStopWordSet(ctx, src, path)
		})

	counted := chain.ThenTry(stop, func(ctx context.Context, set words.StopWordSet) (*words.FrequencyTable, error) {
		var readErr error
		tokens := words.Flatten(mapSeq(lines(ctx, src, cfg.InputPath, &readErr), words.Tokenize))
		table := words.CountSeq(words.Filter(tokens, set))
		return table, readErr
	})

	return chain.Map(counted, func(ctx context.Context, table *words.FrequencyTable) []words.Pair {
		return table.Top(cfg.Top)
	}).
		Ensure(func(ctx context.Context, pairs []words.Pair) {
			logger.Info("ranking done", slog.Int("pairs", len(pairs)))
		}).
		Recover(func(ctx context.Context, r rop.Result[[]words.Pair]) {
			logger.Error("run failed", slog.Any("err", r.Err()))
		}).
		Result()
}

func mapSeq[In, Out any](seq iter.Seq[In], f func(In) Out) iter.Seq[Out] {
	return func(yield func(Out) bool) {
		for v := range seq {
			if !yield(f(v)) {
				return
			}
		}
	}
}
