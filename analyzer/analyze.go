package analyzer

import (
	"errors"
	"log"
	"unicode/utf8"
)

// Defaults for the two ranked views.
const (
	DefaultTopWords   = 20
	DefaultTopLongest = 10
)

// Terminal error kinds. Each one aborts the run: the caller reports it and
// exits non-zero, no partial report is produced.
var (
	// ErrEmptyDocument means zero tokens survived normalization, so every
	// average would divide by zero.
	ErrEmptyDocument = errors.New("document contains no words")

	// ErrInvalidEncoding means the input is not valid UTF-8.
	ErrInvalidEncoding = errors.New("document is not valid UTF-8")
)

// Options configures the two ranked views of a run. The zero value selects
// the defaults.
type Options struct {
	TopWords   int // frequency ranking size (default 20)
	TopLongest int // longest-unique ranking size (default 10)
}

func (o Options) withDefaults() Options {
	if o.TopWords <= 0 {
		o.TopWords = DefaultTopWords
	}
	if o.TopLongest <= 0 {
		o.TopLongest = DefaultTopLongest
	}
	return o
}

// AnalyzeTranscript runs the full pipeline over one document: tokenize,
// count sentences, aggregate, rank, compute averages. The document is
// analyzed in a single pass and the returned record is never mutated, so
// identical input yields an identical record.
func AnalyzeTranscript(text string, opts Options) (*StatisticsRecord, error) {
	opts = opts.withDefaults()

	if !utf8.ValidString(text) {
		return nil, ErrInvalidEncoding
	}

	table, wordCount, wordChars := Aggregate(Tokens(text))
	if wordCount == 0 {
		return nil, ErrEmptyDocument
	}

	sentences := CountSentences(text)
	log.Printf("Analyzed transcript: %d words, %d unique, %d sentences", wordCount, table.Len(), sentences)

	return &StatisticsRecord{
		WordCount:         wordCount,
		CharCount:         utf8.RuneCountInString(text),
		SentenceCount:     sentences,
		UniqueWords:       table.Len(),
		AvgWordLength:     round2(float64(wordChars) / float64(wordCount)),
		AvgSentenceLength: round2(float64(wordCount) / float64(sentences)),
		TopWords:          TopByFrequency(table, opts.TopWords),
		LongestWords:      TopLongestUnique(table, opts.TopLongest),
		FullDistribution:  buildDistributionEntries(table, wordCount),
	}, nil
}
