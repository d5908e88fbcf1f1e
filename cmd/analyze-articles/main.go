package main

import (
	"context"
	"encoding/json"
	"flag"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/altommo/nca-workflow/pkg/articles"
	"github.com/altommo/nca-workflow/pkg/articles/ner"
	"github.com/altommo/nca-workflow/services"
)

var (
	outputFile = flag.String("output", "", "Output file path; results are printed when empty")
	modelID    = flag.String("model", "", "Remote classification model identifier (keyword scoring is used when unset)")
	workers    = flag.Int("workers", articles.DefaultWorkers, "Number of concurrent document workers")
	logLevel   = flag.String("log-level", "info", "Logging level (debug, info, warn, error)")
	envFile    = flag.String("env", ".env", "Path to environment file")
)

func main() {
	flag.Parse()

	logger := logrus.New()
	level, err := logrus.ParseLevel(*logLevel)
	if err != nil {
		logger.Fatalf("Invalid log level: %v", err)
	}
	logger.SetLevel(level)
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
	logger.SetOutput(os.Stderr)

	if flag.NArg() < 1 {
		logger.Fatal("Usage: analyze-articles <html-file-or-directory> [-output path] [-model id]")
	}
	path := flag.Arg(0)

	if err := godotenv.Load(*envFile); err != nil {
		logger.Debugf("No env file loaded from %s: %v", *envFile, err)
	}

	var classifier articles.Classifier
	if client := services.DefaultOpenAIClient(); client != nil {
		classifier = articles.NewOpenAIClassifier(client, *modelID)
	} else if *modelID != "" {
		logger.Warn("Classification model requested but OPENAI_API_KEY is unset, using keyword scoring")
	}

	analyzer := articles.NewAnalyzer(ner.NewProseRecognizer(logger), classifier, logger)
	pipeline := articles.NewPipeline(analyzer, logger, &articles.RunLog{}, *workers)

	ctx := context.Background()

	info, err := os.Stat(path)
	if err != nil {
		logger.Fatalf("Cannot access %s: %v", path, err)
	}

	if info.IsDir() {
		paths, err := articles.CollectDocuments(path)
		if err != nil {
			logger.Fatalf("Failed to enumerate input collection: %v", err)
		}
		if len(paths) == 0 {
			logger.Fatalf("No article documents found in %s", path)
		}

		logger.Infof("Found %d documents to process", len(paths))
		results := pipeline.ProcessCollection(ctx, paths)
		if err := emit(results, *outputFile); err != nil {
			logger.Fatalf("Failed to write results: %v", err)
		}
		return
	}

	result := pipeline.ProcessFile(ctx, path)
	if err := emit(result, *outputFile); err != nil {
		logger.Fatalf("Failed to write result: %v", err)
	}
}

// emit writes v as indented JSON to path, or to stdout when path is empty.
func emit(v interface{}, path string) error {
	payload, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	if path == "" {
		_, err = os.Stdout.Write(append(payload, '\n'))
		return err
	}
	return os.WriteFile(path, append(payload, '\n'), 0o644)
}
