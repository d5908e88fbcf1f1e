package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/sirupsen/logrus"

	"github.com/altommo/nca-workflow/pkg/articles"
	"github.com/altommo/nca-workflow/pkg/articles/ner"
	"github.com/altommo/nca-workflow/services"
)

var defaultPipeline = sync.OnceValue(func() *articles.Pipeline {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetOutput(os.Stderr)

	var classifier articles.Classifier
	if client := services.DefaultOpenAIClient(); client != nil {
		classifier = articles.NewOpenAIClassifier(client, os.Getenv("CLASSIFIER_MODEL"))
	}

	analyzer := articles.NewAnalyzer(ner.NewProseRecognizer(logger), classifier, logger)
	return articles.NewPipeline(analyzer, logger, &articles.RunLog{}, articles.DefaultWorkers)
})

// RegisterArticleTools exposes the article analysis pipeline over MCP.
func RegisterArticleTools(s *server.MCPServer) {
	analyzeTool := mcp.NewTool("analyze_article",
		mcp.WithDescription("Analyze a single news-article document (HTML or JSON) and extract structured criminal-justice facts: entities, perpetrators, charges, sentences, monetary amounts, drug quantities, timeline, and crime categories. Returns the result as JSON."),
		mcp.WithString("path",
			mcp.Required(),
			mcp.Description("Filesystem path of the article document to analyze"),
		),
	)
	s.AddTool(analyzeTool, errorGuard(analyzeArticleHandler))

	collectionTool := mcp.NewTool("analyze_article_collection",
		mcp.WithDescription("Analyze every article document (.html, .htm, .json) in a directory. Failures in individual documents are reported inline; the batch always completes. Returns an ordered JSON array of results."),
		mcp.WithString("path",
			mcp.Required(),
			mcp.Description("Directory containing article documents"),
		),
	)
	s.AddTool(collectionTool, errorGuard(analyzeCollectionHandler))
}

func analyzeArticleHandler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	arguments := request.Params.Arguments
	path, ok := arguments["path"].(string)
	if !ok || path == "" {
		return mcp.NewToolResultError("path must be a non-empty string"), nil
	}

	result := defaultPipeline().ProcessFile(context.Background(), path)
	return toolResultJSON(result)
}

func analyzeCollectionHandler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	arguments := request.Params.Arguments
	path, ok := arguments["path"].(string)
	if !ok || path == "" {
		return mcp.NewToolResultError("path must be a non-empty string"), nil
	}

	paths, err := articles.CollectDocuments(path)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to enumerate documents: %s", err)), nil
	}
	if len(paths) == 0 {
		return mcp.NewToolResultError(fmt.Sprintf("no article documents found in %s", path)), nil
	}

	results := defaultPipeline().ProcessCollection(context.Background(), paths)
	return toolResultJSON(results)
}

func toolResultJSON(v interface{}) (*mcp.CallToolResult, error) {
	payload, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to encode result: %s", err)), nil
	}
	return mcp.NewToolResultText(string(payload)), nil
}

// errorGuard converts handler panics into tool error results so one bad
// document can never take the server down.
func errorGuard(handler server.ToolHandlerFunc) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (result *mcp.CallToolResult, err error) {
		defer func() {
			if r := recover(); r != nil {
				result = mcp.NewToolResultError(fmt.Sprintf("internal error: %v", r))
				err = nil
			}
		}()
		return handler(ctx, request)
	}
}
