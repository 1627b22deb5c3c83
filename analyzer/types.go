package analyzer

// --- JSON output structs ---

// ErrorResult is the JSON envelope returned when rendering itself fails.
type ErrorResult struct {
	Error string `json:"error"`
	TopN  int    `json:"topN,omitempty"` // omitted when zero
}

// WordFrequency is one row of the top-N frequency ranking.
type WordFrequency struct {
	Rank  int    `json:"rank"`
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// LongestWord is one row of the top-N longest unique words ranking.
type LongestWord struct {
	Rank   int    `json:"rank"`
	Word   string `json:"word"`
	Length int    `json:"length"` // characters, not bytes
}

// StatisticsRecord is the complete output of one analysis run. It is a
// plain value: produced once, never mutated afterwards, so re-running the
// same document renders byte-identical output.
type StatisticsRecord struct {
	WordCount     int `json:"wordCount"`
	CharCount     int `json:"charCount"` // Unicode characters incl. whitespace
	SentenceCount int `json:"sentenceCount"`
	UniqueWords   int `json:"uniqueWords"`

	AvgWordLength     float64 `json:"avgWordLength"`     // rounded to 2 decimals
	AvgSentenceLength float64 `json:"avgSentenceLength"` // words per sentence, 2 decimals

	TopWords     []WordFrequency `json:"topWords"`
	LongestWords []LongestWord   `json:"longestWords"`

	// FullDistribution holds every distinct token in ranked order. The
	// standard JSON rendering omits it; the distribution-json format is
	// built from it.
	FullDistribution []DistributionEntry `json:"-"`
}

// DistributionEntry is one bar of the chart-ready full frequency
// distribution (see distribution.go).
type DistributionEntry struct {
	Word    string  `json:"word"`
	Count   int     `json:"count"`
	Percent float64 `json:"percent"` // share of total word count
}

// Distribution is the full word-frequency distribution, suitable for bar
// chart libraries that take a flat ranked series.
type Distribution struct {
	TotalWords  int                 `json:"totalWords"`
	UniqueWords int                 `json:"uniqueWords"`
	Entries     []DistributionEntry `json:"entries"`
}

// Keyword is one stemmed, stopword-filtered keyword with its aggregate count.
type Keyword struct {
	Rank  int    `json:"rank"`
	Word  string `json:"word"` // first surface form seen for the stem
	Stem  string `json:"stem"`
	Count int    `json:"count"`
}
