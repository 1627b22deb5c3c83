// Command speechstat prints a statistics report for a plain-text speech
// transcript: word/character/sentence counts, averages, the top words by
// frequency, and the longest unique words.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/davecgh/go-spew/spew"

	"github.com/ZephyrDeng/speech-analyzer-mcp/analyzer"
	"github.com/ZephyrDeng/speech-analyzer-mcp/config"
)

func main() {
	var (
		format     string
		topN       int
		topLongest int
		keywords   int
		configPath string
		debug      bool
	)

	flag.StringVar(&format, "format", "", "output format: text, markdown, json, or distribution-json")
	flag.IntVar(&topN, "topn", 0, "how many top-frequency words to show")
	flag.IntVar(&topLongest, "longest", 0, "how many longest unique words to show")
	flag.IntVar(&keywords, "keywords", 0, "also show the top N extracted keywords (0 = off)")
	flag.StringVar(&configPath, "config", "", "path to a YAML config with report defaults")
	flag.BoolVar(&debug, "debug", false, "dump the raw statistics record to stderr")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] <transcript.txt>\nanalyze a speech transcript\n\noptions:\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}
	inputPath := flag.Arg(0)

	// Flags left unset fall back to the config file, then to built-ins.
	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		cfg = loaded
	}
	if format == "" {
		format = cfg.OutputFormat
	}
	if topN <= 0 {
		topN = cfg.TopWords
	}
	if topLongest <= 0 {
		topLongest = cfg.TopLongest
	}
	if keywords <= 0 {
		keywords = cfg.Keywords
	}

	data, err := os.ReadFile(inputPath)
	if err != nil {
		if os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "Error: input file '%s' not found.\n", inputPath)
		} else {
			fmt.Fprintf(os.Stderr, "Error: cannot read input file '%s': %v\n", inputPath, err)
		}
		os.Exit(2)
	}
	text := string(data)

	rec, err := analyzer.AnalyzeTranscript(text, analyzer.Options{
		TopWords:   topN,
		TopLongest: topLongest,
	})
	if err != nil {
		switch {
		case errors.Is(err, analyzer.ErrEmptyDocument):
			fmt.Fprintf(os.Stderr, "Error: input file '%s' contains no words.\n", inputPath)
		case errors.Is(err, analyzer.ErrInvalidEncoding):
			fmt.Fprintf(os.Stderr, "Error: input file '%s' is not valid UTF-8.\n", inputPath)
		default:
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}

	if debug {
		spew.Fdump(os.Stderr, rec)
	}

	report, err := analyzer.FormatReport(rec, format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(report)

	if keywords > 0 {
		kws, err := analyzer.ExtractKeywords(text, keywords, cfg.Stopwords)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		kwFormat := format
		if kwFormat == analyzer.FormatDistributionJSON {
			kwFormat = analyzer.FormatJSON
		}
		out, err := analyzer.FormatKeywords(kws, kwFormat)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(out)
	}
}
