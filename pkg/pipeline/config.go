package pipeline

import (
	"errors"
	"fmt"
	"log/slog"
)

const (
	DefaultTop           = 25
	DefaultStopWordsPath = "./stop_words.txt"
)

var ErrUnknownMode = errors.New("unknown mode")

type Mode string

const (
	ModeActor      Mode = "actor"
	ModeMonolithic Mode = "monolithic"
	ModeIterators  Mode = "iterators"
)

func ParseMode(s string) (Mode, error) {
	switch m := Mode(s); m {
	case ModeActor, ModeMonolithic, ModeIterators:
		return m, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}

type Config struct {
	InputPath     string
	StopWordsPath string
	// Top is the number of ranked pairs returned; <= 0 means DefaultTop.
	Top  int
	Mode Mode
	// Concurrent lets the actor engine queue both loads before waiting.
	Concurrent bool
	Logger     *slog.Logger
	// OnTransition observes every state change of the actor engine.
	OnTransition func(from, to State)
}

func (c Config) withDefaults() Config {
	if c.StopWordsPath == "" {
		c.StopWordsPath = DefaultStopWordsPath
	}
	if c.Top <= 0 {
		c.Top = DefaultTop
	}
	if c.Mode == "" {
		c.Mode = ModeActor
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
	return c
}
