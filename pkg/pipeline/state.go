package pipeline

import (
	"fmt"
	"log/slog"
)

type State int

const (
	Start State = iota
	AwaitInput
	AwaitStopWords
	AwaitCount
	Ranking
	Done
	Failed
)

func (s State) String() string {
	switch s {
	case Start:
		return "Start"
	case AwaitInput:
		return "AwaitInput"
	case AwaitStopWords:
		return "AwaitStopWords"
	case AwaitCount:
		return "AwaitCount"
	case Ranking:
		return "Ranking"
	case Done:
		return "Done"
	case Failed:
		return "Failed"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// next lists the legal successors of each state.
var next = map[State][]State{
	Start:          {AwaitInput},
	AwaitInput:     {AwaitStopWords, Failed},
	AwaitStopWords: {AwaitCount, Failed},
	AwaitCount:     {Ranking, Failed},
	Ranking:        {Done},
}

type machine struct {
	state        State
	onTransition func(from, to State)
	logger       *slog.Logger
}

func (m *machine) to(s State) {
	legal := false
	for _, n := range next[m.state] {
		if n == s {
			legal = true
			break
		}
	}
	if !legal {
		panic(fmt.Sprintf("pipeline: illegal transition %s -> %s", m.state, s))
	}

	from := m.state
	m.state = s
	m.logger.Debug("state changed", slog.String("from", from.String()), slog.String("to", s.String()))
	if m.onTransition != nil {
		m.onTransition(from, s)
	}
}
