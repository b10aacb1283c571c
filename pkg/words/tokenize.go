package words

import (
	"iter"
	"strings"
	"unicode"

	"github.com/rivo/uniseg"
)

// WordList is a sequence of lowercase tokens in order of appearance.
type WordList []string

// Tokenize splits text on Unicode (UAX #29) word boundaries and yields every
// segment that contains a letter or a digit, lowercased. Whitespace and
// punctuation segments are skipped.
func Tokenize(text string) iter.Seq[string] {
	return func(yield func(string) bool) {
		rest, state := text, -1
		var segment string
		for len(rest) > 0 {
			segment, rest, state = uniseg.FirstWordInString(rest, state)
			if !isWord(segment) {
				continue
			}
			if !yield(strings.ToLower(segment)) {
				return
			}
		}
	}
}

// Words collects Tokenize(text).
func Words(text string) WordList {
	list := make(WordList, 0)
	for w := range Tokenize(text) {
		list = append(list, w)
	}
	return list
}

func isWord(segment string) bool {
	return strings.IndexFunc(segment, func(r rune) bool {
		return unicode.IsLetter(r) || unicode.IsNumber(r)
	}) >= 0
}
