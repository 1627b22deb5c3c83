package analyzer

import (
	"sort"
	"unicode/utf8"
)

// TopByFrequency returns up to n entries sorted by count descending. Ties
// keep document order: a token first seen earlier outranks a later one with
// the same count (stable sort over the table's first-seen order).
func TopByFrequency(table *FrequencyTable, n int) []WordFrequency {
	if n < 0 {
		n = 0
	}

	ranked := make([]WordFrequency, 0, table.Len())
	for tok := range table.Tokens() {
		ranked = append(ranked, WordFrequency{Word: tok, Count: table.Count(tok)})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})

	if len(ranked) > n {
		ranked = ranked[:n]
	}
	for i := range ranked {
		ranked[i].Rank = i + 1
	}
	return ranked
}

// TopLongestUnique returns up to n distinct tokens sorted by character
// length descending, ties alphabetical ascending. Frequency is irrelevant
// here: each distinct token weighs once.
func TopLongestUnique(table *FrequencyTable, n int) []LongestWord {
	if n < 0 {
		n = 0
	}

	ranked := make([]LongestWord, 0, table.Len())
	for tok := range table.Tokens() {
		ranked = append(ranked, LongestWord{Word: tok, Length: utf8.RuneCountInString(tok)})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Length != ranked[j].Length {
			return ranked[i].Length > ranked[j].Length
		}
		return ranked[i].Word < ranked[j].Word
	})

	if len(ranked) > n {
		ranked = ranked[:n]
	}
	for i := range ranked {
		ranked[i].Rank = i + 1
	}
	return ranked
}
