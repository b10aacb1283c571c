package pipeline

import (
	"bufio"
	"context"
	"fmt"
	"iter"

	"github.com/ib-77/wordfreq/pkg/source"
	"github.com/ib-77/wordfreq/pkg/words"
)

const maxLineSize = 16 * 1024 * 1024

// lines yields the lines of the document at path. The sequence stops at the
// first error, which is then stored in *errp.
func lines(ctx context.Context, src source.Source, path string, errp *error) iter.Seq[string] {
	return func(yield func(string) bool) {
		rc, err := src.Open(ctx, path)
		if err != nil {
			*errp = fmt.Errorf("%w %q: %w", source.ErrOpen, path, err)
			return
		}
		defer rc.Close()

		scanner := bufio.NewScanner(rc)
		scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
		for scanner.Scan() {
			if err := ctx.Err(); err != nil {
				*errp = err
				return
			}
			if !yield(scanner.Text()) {
				return
			}
		}
		if err := scanner.Err(); err != nil {
			*errp = fmt.Errorf("%w %q: %w", source.ErrRead, path, err)
		}
	}
}

func loadStopWordSet(ctx context.Context, src source.Source, path string) (words.StopWordSet, error) {
	text, err := source.ReadAll(ctx, src, path)
	if err != nil {
		return words.StopWordSet{}, err
	}
	return words.NewStopWordSet(words.ParseStopWords(text)...), nil
}
