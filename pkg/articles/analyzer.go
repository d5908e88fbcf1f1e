package articles

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"

	"github.com/altommo/nca-workflow/pkg/articles/metrics"
)

// minUsableContent is the body length below which a document is recorded as
// an extraction failure and structured extraction is skipped.
const minUsableContent = 100

// Analyzer runs the full extraction pipeline for one document: content
// extraction, chunked entity recognition, proximity attribute derivation,
// structured fact extraction, and category classification.
type Analyzer struct {
	recognizer EntityRecognizer
	classifier Classifier
	fallback   *KeywordScorer
	logger     *logrus.Logger

	// Chunk sizing for the recognizer's input window.
	MaxChunkWords int
	ChunkOverlap  int
}

// NewAnalyzer builds an Analyzer. recognizer and classifier may be nil; a nil
// recognizer yields empty entity buckets and a nil (or failing) classifier
// degrades to the keyword scorer.
func NewAnalyzer(recognizer EntityRecognizer, classifier Classifier, logger *logrus.Logger) *Analyzer {
	if logger == nil {
		logger = logrus.New()
		logger.SetFormatter(&logrus.JSONFormatter{})
	}
	return &Analyzer{
		recognizer:    recognizer,
		classifier:    classifier,
		fallback:      NewKeywordScorer(),
		logger:        logger,
		MaxChunkWords: DefaultChunkWords,
		ChunkOverlap:  DefaultChunkOverlap,
	}
}

// Analyze processes one decoded document and returns its ProcessingResult.
// It never returns an error: failures degrade to partial results carrying
// extraction_error.
func (a *Analyzer) Analyze(ctx context.Context, source, raw string) ProcessingResult {
	timer := prometheus.NewTimer(metrics.DocumentProcessingDuration)
	defer timer.ObserveDuration()

	extracted := ExtractContent(raw)
	metrics.ExtractionMethodUsed.WithLabelValues(string(extracted.Method)).Inc()

	result := ProcessingResult{
		Title:       extracted.Title,
		Content:     extracted.Content,
		Source:      source,
		ProcessedAt: time.Now().UTC(),
	}

	if len(extracted.Content) < minUsableContent {
		a.logger.WithFields(logrus.Fields{
			"source": source,
			"method": extracted.Method,
			"length": len(extracted.Content),
		}).Warn("Insufficient content extracted")
		result.ExtractionError = "Insufficient content extracted"
		return result
	}

	content := extracted.Content
	bag := a.recognizeEntities(ctx, source, content)
	result.Entities = &bag
	result.Locations = bag.Locations
	result.Organizations = bag.Organizations

	result.Perpetrators = ExtractPerpetrators(content, bag.People)
	result.Relationships = ExtractRelationships(content, bag.People, bag.Organizations)
	result.Sentences = ExtractSentences(content)
	result.Charges = ExtractCharges(content)
	result.MoneyAmounts = ExtractMoneyAmounts(content)
	result.DrugQuantities = ExtractDrugQuantities(content)
	result.Timeline = ExtractTimeline(content, bag.Dates)
	result.Quotes = ExtractQuotes(content)
	result.Summary = Summarize(content, DefaultSummaryLength)
	result.Categories = a.classify(ctx, source, content)

	a.logger.WithFields(logrus.Fields{
		"source":        source,
		"method":        extracted.Method,
		"people":        len(bag.People),
		"perpetrators":  len(result.Perpetrators),
		"relationships": len(result.Relationships),
		"categories":    len(result.Categories),
	}).Info("Article processing completed")

	return result
}

// recognizeEntities chunks the body to the recognizer's input window, merges
// recognition output across chunks, and organizes it into buckets. Recognizer
// failures degrade to empty contribution for the failing chunk.
func (a *Analyzer) recognizeEntities(ctx context.Context, source, content string) EntityBag {
	if a.recognizer == nil {
		return EntityBag{}
	}

	chunks := Chunk(content, a.MaxChunkWords, a.ChunkOverlap)
	metrics.ChunksPerDocument.Observe(float64(len(chunks)))
	if a.logger.IsLevelEnabled(logrus.DebugLevel) {
		a.logger.WithFields(logrus.Fields{
			"source": source,
			"chunks": len(chunks),
			"tokens": EstimateTokens(content),
		}).Debug("Chunked body for entity recognition")
	}

	var all []RecognizedEntity
	for i, chunk := range chunks {
		entities, err := a.recognizer.Recognize(ctx, chunk)
		if err != nil {
			a.logger.WithError(err).WithFields(logrus.Fields{
				"source": source,
				"chunk":  i,
			}).Error("Entity recognition failed for chunk")
			continue
		}
		all = append(all, entities...)
	}

	bag := Organize(all)
	metrics.EntitiesExtracted.WithLabelValues("people").Add(float64(len(bag.People)))
	metrics.EntitiesExtracted.WithLabelValues("locations").Add(float64(len(bag.Locations)))
	metrics.EntitiesExtracted.WithLabelValues("organizations").Add(float64(len(bag.Organizations)))
	metrics.EntitiesExtracted.WithLabelValues("miscellaneous").Add(float64(len(bag.Miscellaneous)))
	metrics.EntitiesExtracted.WithLabelValues("dates").Add(float64(len(bag.Dates)))
	return bag
}

// classify prefers the configured classifier and falls back to the keyword
// scorer when it is absent or fails.
func (a *Analyzer) classify(ctx context.Context, source, content string) []string {
	scores, err := a.classifyScores(ctx, source, content)
	if err != nil {
		return nil
	}
	categories := make([]string, 0, len(scores))
	for _, s := range scores {
		categories = append(categories, s.Category)
	}
	return categories
}

func (a *Analyzer) classifyScores(ctx context.Context, source, content string) ([]CategoryScore, error) {
	if a.classifier != nil {
		scores, err := a.classifier.Classify(ctx, content, CrimeCategories)
		if err == nil {
			return scores, nil
		}
		a.logger.WithError(err).WithField("source", source).
			Warn("Classifier failed, falling back to keyword scoring")
	}
	return a.fallback.Classify(ctx, content, CrimeCategories)
}
