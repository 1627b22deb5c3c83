package analyzer

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Supported output formats.
const (
	FormatText             = "text"
	FormatMarkdown         = "markdown"
	FormatJSON             = "json"
	FormatDistributionJSON = "distribution-json"
)

// Renderer turns a finished StatisticsRecord into presentation bytes. The
// statistics pipeline never depends on a renderer; callers pick one by
// format name and apply it to the record.
type Renderer interface {
	Render(rec *StatisticsRecord) ([]byte, error)
}

// NewRenderer returns the renderer for a format name.
func NewRenderer(format string) (Renderer, error) {
	switch format {
	case FormatText:
		return textRenderer{}, nil
	case FormatMarkdown:
		return markdownRenderer{}, nil
	case FormatJSON:
		return jsonRenderer{}, nil
	case FormatDistributionJSON:
		return distributionRenderer{}, nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
}

// FormatReport renders rec in the requested format.
func FormatReport(rec *StatisticsRecord, format string) (string, error) {
	r, err := NewRenderer(format)
	if err != nil {
		return "", err
	}
	out, err := r.Render(rec)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// --- plain text ---

type textRenderer struct{}

func (textRenderer) Render(rec *StatisticsRecord) ([]byte, error) {
	var b strings.Builder

	b.WriteString("=== Transcript Analysis ===\n\n")

	// Summary table.
	b.WriteString(fmt.Sprintf("%-36s%s\n", "Metric", "Value"))
	b.WriteString(strings.Repeat("-", 50) + "\n")
	b.WriteString(fmt.Sprintf("%-36s%d\n", "Word count", rec.WordCount))
	b.WriteString(fmt.Sprintf("%-36s%d\n", "Character count (incl. whitespace)", rec.CharCount))
	b.WriteString(fmt.Sprintf("%-36s%d\n", "Sentence count", rec.SentenceCount))
	b.WriteString(fmt.Sprintf("%-36s%d\n", "Unique words", rec.UniqueWords))
	b.WriteString(fmt.Sprintf("%-36s%s\n", "Average word length (chars)", FormatAverage(rec.AvgWordLength)))
	b.WriteString(fmt.Sprintf("%-36s%s\n", "Average sentence length (words)", FormatAverage(rec.AvgSentenceLength)))
	b.WriteString("\n")

	// Frequency table.
	b.WriteString(fmt.Sprintf("Top %d words by frequency:\n", len(rec.TopWords)))
	b.WriteString(fmt.Sprintf("%-5s%-20s%s\n", "Rank", "Word", "Count"))
	b.WriteString(strings.Repeat("-", 40) + "\n")
	for _, w := range rec.TopWords {
		b.WriteString(fmt.Sprintf("%-5d%-20s%d\n", w.Rank, w.Word, w.Count))
	}
	b.WriteString("\n")

	// Longest unique words.
	b.WriteString(fmt.Sprintf("Top %d longest unique words:\n", len(rec.LongestWords)))
	for _, w := range rec.LongestWords {
		b.WriteString(fmt.Sprintf("%d. %s (%d chars)\n", w.Rank, w.Word, w.Length))
	}

	return []byte(b.String()), nil
}

// --- markdown ---

// markdownRenderer wraps the text tables in a fenced block so fixed-width
// alignment survives markdown viewers.
type markdownRenderer struct{}

func (markdownRenderer) Render(rec *StatisticsRecord) ([]byte, error) {
	body, err := textRenderer{}.Render(rec)
	if err != nil {
		return nil, err
	}

	var b strings.Builder
	b.WriteString("```text\n")
	b.Write(body)
	b.WriteString("```\n")
	return []byte(b.String()), nil
}

// --- json ---

type jsonRenderer struct{}

func (jsonRenderer) Render(rec *StatisticsRecord) ([]byte, error) {
	out, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		// Return a simple JSON error envelope instead of failing the run.
		errJSON, _ := json.Marshal(ErrorResult{Error: fmt.Sprintf("failed to marshal record to JSON: %v", err)})
		return errJSON, nil
	}
	return out, nil
}

// --- distribution json ---

type distributionRenderer struct{}

func (distributionRenderer) Render(rec *StatisticsRecord) ([]byte, error) {
	dist := BuildDistribution(rec)
	out, err := json.Marshal(dist)
	if err != nil {
		errJSON, _ := json.Marshal(ErrorResult{Error: fmt.Sprintf("failed to marshal distribution to JSON: %v", err)})
		return errJSON, nil
	}
	return out, nil
}
