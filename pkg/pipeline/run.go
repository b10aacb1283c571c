package pipeline

import (
	"context"
	"fmt"

	"github.com/ib-77/wordfreq/pkg/rop"
	"github.com/ib-77/wordfreq/pkg/source"
	"github.com/ib-77/wordfreq/pkg/words"
)

// Run ranks cfg.InputPath with the engine selected by cfg.Mode.
func Run(ctx context.Context, src source.Source, cfg Config) rop.Result[[]words.Pair] {
	cfg = cfg.withDefaults()

	switch cfg.Mode {
	case ModeActor:
		return RunActors(ctx, src, cfg)
	case ModeMonolithic:
		return RunMonolithic(ctx, src, cfg)
	case ModeIterators:
		return RunIterators(ctx, src, cfg)
	default:
		return rop.Fail[[]words.Pair](fmt.Errorf("%w: %q", ErrUnknownMode, cfg.Mode))
	}
}
