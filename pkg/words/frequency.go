package words

import (
	"fmt"
	"slices"
)

// FrequencyTable counts tokens. It remembers the order in which tokens were
// first added so that ranking ties resolve the same way on every run.
type FrequencyTable struct {
	counts map[string]int
	order  []string
	total  int
}

func NewFrequencyTable() *FrequencyTable {
	return &FrequencyTable{counts: make(map[string]int)}
}

// Add increments token, inserting it with count 1 on first sight.
func (f *FrequencyTable) Add(token string) {
	if _, ok := f.counts[token]; !ok {
		f.order = append(f.order, token)
	}
	f.counts[token]++
	f.total++
}

// Count returns the count for token, 0 when absent.
func (f *FrequencyTable) Count(token string) int {
	return f.counts[token]
}

// Len is the number of distinct tokens.
func (f *FrequencyTable) Len() int {
	return len(f.order)
}

// Total is the sum of all counts.
func (f *FrequencyTable) Total() int {
	return f.total
}

// Each visits entries in first-appearance order until fn returns false.
func (f *FrequencyTable) Each(fn func(token string, count int) bool) {
	for _, token := range f.order {
		if !fn(token, f.counts[token]) {
			return
		}
	}
}

// Map returns a copy of the counts.
func (f *FrequencyTable) Map() map[string]int {
	m := make(map[string]int, len(f.counts))
	for k, v := range f.counts {
		m[k] = v
	}
	return m
}

// Count builds a table from list, skipping every token in stop.
func Count(list WordList, stop StopWordSet) *FrequencyTable {
	return CountSeq(Filter(slices.Values(list), stop))
}

type Pair struct {
	Word  string
	Count int
}

func (p Pair) String() string {
	return fmt.Sprintf("(%q, %d)", p.Word, p.Count)
}

// Top ranks entries by descending count and returns at most n of them.
// Equal counts keep first-appearance order. n <= 0 returns every entry.
func (f *FrequencyTable) Top(n int) []Pair {
	pairs := make([]Pair, 0, len(f.order))
	f.Each(func(token string, count int) bool {
		pairs = append(pairs, Pair{Word: token, Count: count})
		return true
	})

	slices.SortStableFunc(pairs, func(a, b Pair) int {
		return b.Count - a.Count
	})

	if n > 0 && n < len(pairs) {
		pairs = pairs[:n]
	}
	return pairs
}
