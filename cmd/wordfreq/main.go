package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/ib-77/wordfreq/pkg/pipeline"
	"github.com/ib-77/wordfreq/pkg/rop/chain"
	"github.com/ib-77/wordfreq/pkg/source"
	"github.com/ib-77/wordfreq/pkg/words"
)

const (
	exitOK     = 0
	exitFailed = 1
	exitUsage  = 2
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Getenv, os.Stdout, os.Stderr, newSource)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, getenv func(string) string, stdout, stderr io.Writer,
	sourceFor func(cfg Config) (source.Source, error)) int {

	cfg, err := getConfig(args, getenv, stderr)
	if errors.Is(err, ErrMissingArgument) {
		fmt.Fprintln(stdout, "Missing required argument: input file path.")
		return exitOK
	}
	if errors.Is(err, flag.ErrHelp) {
		return exitOK
	}
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}

	level := slog.LevelWarn
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	src, err := sourceFor(cfg)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitFailed
	}

	res := pipeline.Run(ctx, src, pipeline.Config{
		InputPath:     cfg.InputPath,
		StopWordsPath: cfg.StopWordsPath,
		Top:           cfg.Top,
		Mode:          cfg.Mode,
		Concurrent:    cfg.Concurrent,
		Logger:        logger,
	})

	return chain.Finally(chain.Start(ctx, res),
		func(ctx context.Context, pairs []words.Pair) int {
			for _, p := range pairs {
				fmt.Fprintln(stdout, p)
			}
			return exitOK
		},
		func(ctx context.Context, err error) int {
			fmt.Fprintf(stderr, "wordfreq: %v\n", err)
			return exitFailed
		},
		func(ctx context.Context, err error) int {
			fmt.Fprintf(stderr, "wordfreq: interrupted: %v\n", err)
			return exitFailed
		})
}

// newSource reads local files, and S3 objects when a path asks for them.
func newSource(cfg Config) (source.Source, error) {
	mux := source.Mux{Local: source.Files{}}
	if source.IsS3Path(cfg.InputPath) || source.IsS3Path(cfg.StopWordsPath) {
		s3src, err := source.NewS3()
		if err != nil {
			return nil, err
		}
		mux.Remote = s3src
	}
	return mux, nil
}
