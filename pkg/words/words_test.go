package words

import (
	"iter"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWords_CaseFoldsAndStripsPunctuation(t *testing.T) {
	t.Parallel()

	assert.Equal(t, WordList{"the", "quick", "quick", "fox"}, Words("The Quick, quick fox!"))
}

func TestWords_Unicode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want WordList
	}{
		{"empty", "", WordList{}},
		{"only punctuation", " ,.!? -- ", WordList{}},
		{"accents", "Ça VA, Élan élan", WordList{"ça", "va", "élan", "élan"}},
		{"contraction", "Don't stop", WordList{"don't", "stop"}},
		{"numbers", "route 66 and 3.14", WordList{"route", "66", "and", "3.14"}},
		{"cyrillic", "Привет, мир", WordList{"привет", "мир"}},
		{"line break", "alpha\nbeta\r\ngamma", WordList{"alpha", "beta", "gamma"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Words(tt.text))
		})
	}
}

func TestTokenize_StopsEarlyAndIsReusable(t *testing.T) {
	t.Parallel()

	seq := Tokenize("one two three")
	var first []string
	for w := range seq {
		first = append(first, w)
		if len(first) == 2 {
			break
		}
	}
	assert.Equal(t, []string{"one", "two"}, first)

	var again []string
	for w := range seq {
		again = append(again, w)
	}
	assert.Equal(t, []string{"one", "two", "three"}, again)
}

func TestParseStopWords(t *testing.T) {
	t.Parallel()

	assert.Equal(t, WordList{"a", "the", "of"}, ParseStopWords("a,The, of ,\n"))
	assert.Equal(t, WordList{}, ParseStopWords(""))
	assert.Equal(t, WordList{}, ParseStopWords(",,,"))
}

func TestStopWordSet(t *testing.T) {
	t.Parallel()

	set := NewStopWordSet("The", "a", "the")
	assert.Equal(t, 2, set.Len())
	assert.True(t, set.Contains("the"))
	assert.True(t, set.Contains("a"))
	assert.False(t, set.Contains("fox"))

	var empty StopWordSet
	assert.False(t, empty.Contains("x"))
	assert.Zero(t, empty.Len())
}

func TestCount_FiltersStopWords(t *testing.T) {
	t.Parallel()

	table := Count(WordList{"the", "fox", "the", "dog"}, NewStopWordSet("the"))

	assert.Equal(t, map[string]int{"fox": 1, "dog": 1}, table.Map())
	assert.Equal(t, 2, table.Total())
	assert.Equal(t, 0, table.Count("the"))
}

func TestCount_Conservation(t *testing.T) {
	t.Parallel()

	text := `It was the best of times, it was the worst of times, it was the age of
wisdom, it was the age of foolishness, it was the epoch of belief.`
	stop := NewStopWordSet(ParseStopWords("it,was,the,of")...)
	list := Words(text)

	stopped := 0
	for _, w := range list {
		if stop.Contains(w) {
			stopped++
		}
	}

	table := Count(list, stop)
	sum := 0
	for _, v := range table.Map() {
		sum += v
	}

	assert.Equal(t, len(list), sum+stopped)
	assert.Equal(t, sum, table.Total())
}

func TestTop_TieBreakByFirstAppearance(t *testing.T) {
	t.Parallel()

	table := Count(WordList{"a", "b", "c", "a", "b", "c", "a", "b", "c", "c", "c"}, NewStopWordSet())
	require.Equal(t, map[string]int{"a": 3, "b": 3, "c": 5}, table.Map())

	assert.Equal(t, []Pair{{"c", 5}, {"a", 3}}, table.Top(2))

	table = Count(WordList{"b", "a", "c", "b", "a", "c", "b", "a", "c", "c", "c"}, NewStopWordSet())
	assert.Equal(t, []Pair{{"c", 5}, {"b", 3}}, table.Top(2))
}

func TestTop_Bounds(t *testing.T) {
	t.Parallel()

	table := Count(WordList{"x", "y", "x"}, NewStopWordSet())
	assert.Equal(t, []Pair{{"x", 2}, {"y", 1}}, table.Top(25))
	assert.Equal(t, []Pair{{"x", 2}, {"y", 1}}, table.Top(0))
	assert.Empty(t, NewFrequencyTable().Top(25))
}

func TestTable_EachInsertionOrder(t *testing.T) {
	t.Parallel()

	table := Count(WordList{"z", "y", "z", "x"}, NewStopWordSet())
	var order []string
	table.Each(func(token string, count int) bool {
		order = append(order, token)
		return token != "y"
	})
	assert.Equal(t, []string{"z", "y"}, order)
	assert.Equal(t, 3, table.Len())
}

func TestPair_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, `("fox", 3)`, Pair{Word: "fox", Count: 3}.String())
}

func TestFlatten_FilterCountSeq(t *testing.T) {
	t.Parallel()

	lines := func(yield func(iter.Seq[string]) bool) {
		for _, line := range []string{"The fox", "", "the DOG, the fox"} {
			if !yield(Tokenize(line)) {
				return
			}
		}
	}

	table := CountSeq(Filter(Flatten(lines), NewStopWordSet("the")))
	assert.Equal(t, []Pair{{"fox", 2}, {"dog", 1}}, table.Top(0))

	var first []string
	for w := range Flatten(lines) {
		first = append(first, w)
		if len(first) == 3 {
			break
		}
	}
	assert.Equal(t, []string{"the", "fox", "the"}, first)
}
