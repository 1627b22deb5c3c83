package analyzer

import (
	"iter"
	"unicode/utf8"
)

// FrequencyTable maps each normalized token to its occurrence count and
// remembers the order in which tokens were first seen, which the frequency
// ranking uses to break ties deterministically.
type FrequencyTable struct {
	counts    map[string]int
	firstSeen []string // distinct tokens in document order
}

// Count returns the occurrence count for tok (0 if absent).
func (t *FrequencyTable) Count(tok string) int {
	return t.counts[tok]
}

// Len returns the number of distinct tokens.
func (t *FrequencyTable) Len() int {
	return len(t.counts)
}

// Tokens yields distinct tokens in first-seen document order.
func (t *FrequencyTable) Tokens() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, tok := range t.firstSeen {
			if !yield(tok) {
				return
			}
		}
	}
}

// Aggregate consumes a token sequence and returns the frequency table, the
// total token count, and the total number of token characters (counted per
// occurrence, so repeated words contribute each time they appear).
//
// Invariant: the sum of the table's counts equals the returned word count.
func Aggregate(tokens iter.Seq[string]) (table *FrequencyTable, wordCount, wordChars int) {
	table = &FrequencyTable{counts: make(map[string]int)}

	for tok := range tokens {
		if _, seen := table.counts[tok]; !seen {
			table.firstSeen = append(table.firstSeen, tok)
		}
		table.counts[tok]++
		wordCount++
		wordChars += utf8.RuneCountInString(tok)
	}

	return table, wordCount, wordChars
}
