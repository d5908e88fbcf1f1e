package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Pipeline metrics
	DocumentProcessingDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name: "article_processing_duration_seconds",
		Help: "Time spent processing a single article",
	})

	DocumentsProcessed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "articles_processed_total",
			Help: "Total number of articles processed",
		},
		[]string{"status"},
	)

	// Extraction metrics
	ExtractionMethodUsed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "article_extraction_method_total",
			Help: "Content extraction strategy that produced each body",
		},
		[]string{"method"},
	)

	EntitiesExtracted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "article_entities_extracted_total",
			Help: "Number of entities extracted by category",
		},
		[]string{"category"},
	)

	ChunksPerDocument = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "article_chunks_per_document",
		Help:    "Number of model-sized chunks per article body",
		Buckets: prometheus.LinearBuckets(1, 2, 10),
	})
)
