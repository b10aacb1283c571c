package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"

	"github.com/ib-77/wordfreq/pkg/pipeline"
)

var ErrMissingArgument = errors.New("missing required argument: input file path")

type Config struct {
	InputPath     string
	StopWordsPath string
	Top           int
	Mode          pipeline.Mode
	Concurrent    bool
	Verbose       bool
}

// getConfig reads WORDFREQ_* variables first and lets flags override them.
func getConfig(args []string, getenv func(string) string, output io.Writer) (Config, error) {
	c := Config{
		StopWordsPath: pipeline.DefaultStopWordsPath,
		Top:           pipeline.DefaultTop,
		Mode:          pipeline.ModeActor,
	}

	if v := getenv("WORDFREQ_STOP_WORDS"); v != "" {
		c.StopWordsPath = v
	}
	if v := getenv("WORDFREQ_TOP"); v != "" {
		top, err := strconv.Atoi(v)
		if err != nil {
			return c, fmt.Errorf("invalid WORDFREQ_TOP %q: %w", v, err)
		}
		c.Top = top
	}
	if v := getenv("WORDFREQ_MODE"); v != "" {
		c.Mode = pipeline.Mode(v)
	}

	fs := flag.NewFlagSet("wordfreq", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "usage: wordfreq [flags] <input file>")
		fs.PrintDefaults()
	}
	fs.StringVar(&c.StopWordsPath, "stop-words", c.StopWordsPath, "comma separated stop word file (local path or s3://bucket/key)")
	fs.IntVar(&c.Top, "top", c.Top, "number of words to print")
	mode := fs.String("mode", string(c.Mode), "engine: actor, monolithic or iterators")
	fs.BoolVar(&c.Concurrent, "concurrent", false, "actor mode: queue both loads before waiting")
	fs.BoolVar(&c.Verbose, "v", false, "debug logging")

	if err := fs.Parse(args); err != nil {
		return c, err
	}

	m, err := pipeline.ParseMode(*mode)
	if err != nil {
		return c, err
	}
	c.Mode = m

	if c.Top <= 0 {
		return c, fmt.Errorf("invalid top %d", c.Top)
	}
	if c.StopWordsPath == "" {
		return c, fmt.Errorf("empty stop words path")
	}

	if fs.NArg() < 1 {
		return c, ErrMissingArgument
	}
	c.InputPath = fs.Arg(0)

	return c, nil
}
