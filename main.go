package main

import (
	"log"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/ZephyrDeng/speech-analyzer-mcp/analyzer"
	"github.com/ZephyrDeng/speech-analyzer-mcp/config"
)

// serverConfig holds report defaults, loaded once at startup from the file
// named by $SPEECH_ANALYZER_CONFIG (built-in defaults when unset).
var serverConfig *config.Config

func main() {
	// 1. Load report defaults.
	cfg, err := config.LoadFromEnv("SPEECH_ANALYZER_CONFIG")
	if err != nil {
		log.Fatalf("Config error: %v", err)
	}
	serverConfig = cfg

	// 2. Initialize the MCP server.
	mcpServer := server.NewMCPServer(
		"SpeechAnalyzer",
		"0.1.0",
		server.WithLogging(),
		server.WithRecovery(),
	)

	// 3. Define the analyze_transcript tool and its parameters.
	analyzeTool := mcp.NewTool("analyze_transcript",
		mcp.WithDescription("Analyze a plain-text speech transcript: word/character/sentence counts, average word and sentence length, top words by frequency, and longest unique words."),
		mcp.WithString("document_uri",
			mcp.Description("URI of the transcript to analyze ('file://', 'http://', 'https://', or a plain local path). For example 'file:///path/to/speech.txt'."),
			mcp.Required(),
		),
		mcp.WithNumber("top_n",
			mcp.Description("How many top-frequency words to include (e.g. Top 10, Top 20)."),
			mcp.DefaultNumber(float64(analyzer.DefaultTopWords)),
		),
		mcp.WithNumber("top_longest",
			mcp.Description("How many longest unique words to include."),
			mcp.DefaultNumber(float64(analyzer.DefaultTopLongest)),
		),
		mcp.WithString("output_format",
			mcp.Description("Output format for the report. 'distribution-json' returns the full chart-ready word-frequency distribution."),
			mcp.DefaultString(analyzer.FormatText),
			mcp.Enum(analyzer.FormatText, analyzer.FormatMarkdown, analyzer.FormatJSON, analyzer.FormatDistributionJSON),
		),
	)

	// 4. Define the extract_keywords tool.
	keywordsTool := mcp.NewTool("extract_keywords",
		mcp.WithDescription("Extract the top content keywords from a transcript (stopword-filtered, stemmed so inflected forms aggregate)."),
		mcp.WithString("document_uri",
			mcp.Description("URI of the transcript ('file://', 'http://', 'https://', or a plain local path)."),
			mcp.Required(),
		),
		mcp.WithNumber("limit",
			mcp.Description("How many keywords to return."),
			mcp.DefaultNumber(float64(analyzer.DefaultKeywordLimit)),
		),
		mcp.WithString("output_format",
			mcp.Description("Output format for the keyword list."),
			mcp.DefaultString(analyzer.FormatText),
			mcp.Enum(analyzer.FormatText, analyzer.FormatMarkdown, analyzer.FormatJSON),
		),
	)

	// 5. Register tools with their handlers.
	mcpServer.AddTool(analyzeTool, handleAnalyzeTranscript)
	mcpServer.AddTool(keywordsTool, handleExtractKeywords)

	// 6. Install the cleanup signal handler before serving.
	setupSignalHandler()

	// 7. Start the server over stdio transport.
	log.Println("Starting SpeechAnalyzer MCP server via stdio...")
	if err := server.ServeStdio(mcpServer); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
