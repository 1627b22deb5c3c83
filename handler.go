package main

import (
	"context"
	"fmt"
	"log"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/ZephyrDeng/speech-analyzer-mcp/analyzer"
)

// handleAnalyzeTranscript is the handler for the "analyze_transcript" tool.
func handleAnalyzeTranscript(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments

	// --- 1. Extract and validate arguments ---
	documentURI, ok := args["document_uri"].(string)
	if !ok || documentURI == "" {
		return nil, fmt.Errorf("missing or invalid required argument: document_uri (string)")
	}
	outputFormat, ok := args["output_format"].(string)
	if !ok || outputFormat == "" {
		outputFormat = serverConfig.OutputFormat
	}
	topN := intArg(args, "top_n", serverConfig.TopWords)
	topLongest := intArg(args, "top_longest", serverConfig.TopLongest)

	log.Printf("Handling analyze_transcript: URI=%s, TopN=%d, TopLongest=%d, Format=%s",
		documentURI, topN, topLongest, outputFormat)

	// --- 2. Fetch the document (local or download) and load it ---
	filePath, cleanup, err := getDocumentAsFile(documentURI)
	if err != nil {
		return nil, fmt.Errorf("failed to get transcript file: %w", err)
	}
	defer cleanup()

	text, err := readDocument(filePath)
	if err != nil {
		return nil, err
	}

	// --- 3. Run the pipeline ---
	rec, err := analyzer.AnalyzeTranscript(text, analyzer.Options{
		TopWords:   topN,
		TopLongest: topLongest,
	})
	if err != nil {
		log.Printf("Analysis error for '%s': %v", documentURI, err)
		return nil, fmt.Errorf("failed to analyze transcript '%s': %w", documentURI, err)
	}

	// --- 4. Render and return ---
	report, err := analyzer.FormatReport(rec, outputFormat)
	if err != nil {
		return nil, err
	}

	log.Printf("Analysis successful for '%s'. Report length: %d", documentURI, len(report))
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.TextContent{
				Type: "text",
				Text: report,
			},
		},
	}, nil
}

// handleExtractKeywords is the handler for the "extract_keywords" tool.
func handleExtractKeywords(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments

	documentURI, ok := args["document_uri"].(string)
	if !ok || documentURI == "" {
		return nil, fmt.Errorf("missing or invalid required argument: document_uri (string)")
	}
	outputFormat, ok := args["output_format"].(string)
	if !ok || outputFormat == "" {
		outputFormat = analyzer.FormatText
	}
	limit := intArg(args, "limit", analyzer.DefaultKeywordLimit)

	log.Printf("Handling extract_keywords: URI=%s, Limit=%d, Format=%s", documentURI, limit, outputFormat)

	filePath, cleanup, err := getDocumentAsFile(documentURI)
	if err != nil {
		return nil, fmt.Errorf("failed to get transcript file: %w", err)
	}
	defer cleanup()

	text, err := readDocument(filePath)
	if err != nil {
		return nil, err
	}

	keywords, err := analyzer.ExtractKeywords(text, limit, serverConfig.Stopwords)
	if err != nil {
		log.Printf("Keyword extraction error for '%s': %v", documentURI, err)
		return nil, fmt.Errorf("failed to extract keywords from '%s': %w", documentURI, err)
	}

	out, err := analyzer.FormatKeywords(keywords, outputFormat)
	if err != nil {
		return nil, err
	}

	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.TextContent{
				Type: "text",
				Text: out,
			},
		},
	}, nil
}

// intArg reads a numeric tool argument (JSON numbers arrive as float64) and
// falls back to def when absent or non-positive.
func intArg(args map[string]interface{}, name string, def int) int {
	f, ok := args[name].(float64)
	if !ok {
		return def
	}
	n := int(f)
	if n <= 0 {
		return def
	}
	return n
}
