package analyzer

import "sort"

// buildDistributionEntries ranks the entire frequency table the same way
// the top-N view does (count descending, first-seen order on ties) and
// attaches each token's share of the total word count.
func buildDistributionEntries(table *FrequencyTable, wordCount int) []DistributionEntry {
	entries := make([]DistributionEntry, 0, table.Len())
	for tok := range table.Tokens() {
		count := table.Count(tok)
		entries = append(entries, DistributionEntry{
			Word:    tok,
			Count:   count,
			Percent: round2(float64(count) / float64(wordCount) * 100),
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})

	return entries
}

// BuildDistribution assembles the chart-ready full frequency distribution
// from a finished record.
func BuildDistribution(rec *StatisticsRecord) *Distribution {
	return &Distribution{
		TotalWords:  rec.WordCount,
		UniqueWords: rec.UniqueWords,
		Entries:     rec.FullDistribution,
	}
}
