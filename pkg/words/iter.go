package words

import "iter"

// Filter drops every token of seq that is in stop.
func Filter(seq iter.Seq[string], stop StopWordSet) iter.Seq[string] {
	return func(yield func(string) bool) {
		for token := range seq {
			if stop.Contains(token) {
				continue
			}
			if !yield(token) {
				return
			}
		}
	}
}

// Flatten concatenates the sequences produced by outer.
func Flatten(outer iter.Seq[iter.Seq[string]]) iter.Seq[string] {
	return func(yield func(string) bool) {
		for inner := range outer {
			for token := range inner {
				if !yield(token) {
					return
				}
			}
		}
	}
}

// CountSeq consumes seq into a new table.
func CountSeq(seq iter.Seq[string]) *FrequencyTable {
	table := NewFrequencyTable()
	for token := range seq {
		table.Add(token)
	}
	return table
}
