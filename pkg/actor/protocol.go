package actor

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/ib-77/wordfreq/pkg/rop"
	"github.com/ib-77/wordfreq/pkg/words"
)

var (
	ErrWorkerStopped      = errors.New("worker stopped")
	ErrUnsupportedRequest = errors.New("unsupported request")
	ErrWorkerPanic        = errors.New("worker panicked")
)

type Kind int

const (
	LoadInput Kind = iota + 1
	LoadStopWords
	CountWords
)

func (k Kind) String() string {
	switch k {
	case LoadInput:
		return "LoadInput"
	case LoadStopWords:
		return "LoadStopWords"
	case CountWords:
		return "CountWords"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Request is one message in a worker inbox. Reply must have room for one
// value; the worker sends exactly one Result on it and never closes it.
type Request[P, R any] struct {
	ID      uuid.UUID
	Kind    Kind
	Payload P
	Reply   chan<- rop.Result[R]
}

// NewRequest builds a request together with its reply channel.
func NewRequest[P, R any](kind Kind, payload P) (Request[P, R], <-chan rop.Result[R]) {
	reply := make(chan rop.Result[R], 1)
	return Request[P, R]{
		ID:      uuid.New(),
		Kind:    kind,
		Payload: payload,
		Reply:   reply,
	}, reply
}

// LoadRequest asks the Loader for the words of the document at Payload.
type LoadRequest = Request[string, words.WordList]

// CountPayload hands both word lists to the Counter. The sender gives up
// ownership of Words and StopWords once the request is sent.
type CountPayload struct {
	Words     words.WordList
	StopWords words.StopWordSet
}

type CountRequest = Request[CountPayload, *words.FrequencyTable]
