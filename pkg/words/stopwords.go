package words

import (
	"strings"
	"unicode"
)

// StopWordDelimiter separates tokens in a stop-word buffer.
const StopWordDelimiter = ","

// ParseStopWords splits a comma separated buffer into lowercase tokens.
// Fragments are trimmed of surrounding whitespace and empty ones are dropped,
// so "a, b,\n" yields ["a" "b"].
func ParseStopWords(buf string) WordList {
	list := make(WordList, 0)
	for _, fragment := range strings.Split(buf, StopWordDelimiter) {
		fragment = strings.TrimFunc(fragment, unicode.IsSpace)
		if fragment == "" {
			continue
		}
		list = append(list, strings.ToLower(fragment))
	}
	return list
}

// StopWordSet is an immutable membership set of lowercase tokens.
type StopWordSet struct {
	set map[string]struct{}
}

func NewStopWordSet(tokens ...string) StopWordSet {
	set := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		set[strings.ToLower(t)] = struct{}{}
	}
	return StopWordSet{set: set}
}

func (s StopWordSet) Contains(token string) bool {
	_, ok := s.set[token]
	return ok
}

func (s StopWordSet) Len() int {
	return len(s.set)
}
