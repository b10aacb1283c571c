package pipeline

import (
	"context"
	"log/slog"

	"github.com/ib-77/wordfreq/pkg/rop"
	"github.com/ib-77/wordfreq/pkg/source"
	"github.com/ib-77/wordfreq/pkg/words"
)

// RunMonolithic loads the stop words, then tokenizes and counts the input one
// line at a time in a single loop.
func RunMonolithic(ctx context.Context, src source.Source, cfg Config) rop.Result[[]words.Pair] {
	cfg = cfg.withDefaults()
	logger := cfg.Logger.With(slog.String("mode", string(ModeMonolithic)))

	stop, err := loadStopWordSet(ctx, src, cfg.StopWordsPath)
	if err != nil {
		logger.Error("run failed", slog.Any("err", err))
		return rop.FromError[[]words.Pair](err)
	}

	table := words.NewFrequencyTable()
	var readErr error
	for line := range lines(ctx, src, cfg.InputPath, &readErr) {
		for token := range words.Tokenize(line) {
			if stop.Contains(token) {
				continue
			}
			table.Add(token)
		}
	}
	if readErr != nil {
		logger.Error("run failed", slog.Any("err", readErr))
		return rop.FromError[[]words.Pair](readErr)
	}

	logger.Info("ranking done", slog.Int("distinct", table.Len()))
	return rop.Success(table.Top(cfg.Top))
}
