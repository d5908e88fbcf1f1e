package articles

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/altommo/nca-workflow/pkg/articles/metrics"
)

// DefaultWorkers bounds the per-document concurrency of a batch run.
const DefaultWorkers = 4

// RunLogEntry is one collected log line from a batch run.
type RunLogEntry struct {
	Level     string    `json:"level"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// RunLog collects log entries for a single batch run. It implements
// logrus.Hook so a run-scoped logger can feed it, replacing any process-wide
// log buffer. Safe for concurrent use.
type RunLog struct {
	mu      sync.Mutex
	entries []RunLogEntry
}

// Levels implements logrus.Hook.
func (l *RunLog) Levels() []logrus.Level { return logrus.AllLevels }

// Fire implements logrus.Hook.
func (l *RunLog) Fire(entry *logrus.Entry) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, RunLogEntry{
		Level:     entry.Level.String(),
		Message:   entry.Message,
		Timestamp: entry.Time,
	})
	return nil
}

// Entries returns a copy of the collected entries.
func (l *RunLog) Entries() []RunLogEntry {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]RunLogEntry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Pipeline processes document collections through an Analyzer with a bounded
// worker pool. Results always come back in submission order, and a failure in
// one document never aborts the batch.
type Pipeline struct {
	analyzer *Analyzer
	logger   *logrus.Logger
	runLog   *RunLog
	workers  int
}

// NewPipeline wires an Analyzer into a batch pipeline. runLog may be nil.
func NewPipeline(analyzer *Analyzer, logger *logrus.Logger, runLog *RunLog, workers int) *Pipeline {
	if logger == nil {
		logger = logrus.New()
		logger.SetFormatter(&logrus.JSONFormatter{})
	}
	if runLog != nil {
		logger.AddHook(runLog)
	}
	if workers <= 0 {
		workers = DefaultWorkers
	}
	return &Pipeline{
		analyzer: analyzer,
		logger:   logger,
		runLog:   runLog,
		workers:  workers,
	}
}

// RunLog returns the run-scoped log collector, or nil if none was injected.
func (p *Pipeline) RunLog() *RunLog { return p.runLog }

// ProcessFile reads, decodes, and analyzes a single document. I/O failures
// and panics are converted into an error-carrying ProcessingResult.
func (p *Pipeline) ProcessFile(ctx context.Context, path string) (result ProcessingResult) {
	source := filepath.Base(path)

	defer func() {
		if r := recover(); r != nil {
			p.logger.WithField("source", source).Errorf("Panic while processing document: %v", r)
			metrics.DocumentsProcessed.WithLabelValues("error").Inc()
			result = errorResult(source, fmt.Errorf("panic: %v", r))
		}
	}()

	raw, err := os.ReadFile(path)
	if err != nil {
		p.logger.WithError(err).WithField("source", source).Error("Failed to read document")
		metrics.DocumentsProcessed.WithLabelValues("error").Inc()
		return errorResult(source, err)
	}

	result = p.analyzer.Analyze(ctx, source, DecodeBytes(raw))
	if result.ExtractionError != "" {
		metrics.DocumentsProcessed.WithLabelValues("extraction_error").Inc()
	} else {
		metrics.DocumentsProcessed.WithLabelValues("success").Inc()
	}
	return result
}

// ProcessCollection analyzes every path and returns one result per path in
// submission order. Documents run concurrently across the worker pool;
// cancellation stops dispatch and records an error result for documents that
// never started, leaving completed results intact.
func (p *Pipeline) ProcessCollection(ctx context.Context, paths []string) []ProcessingResult {
	runID := uuid.New().String()
	p.logger.WithFields(logrus.Fields{
		"run_id":    runID,
		"documents": len(paths),
		"workers":   p.workers,
	}).Info("Starting batch processing")

	type job struct {
		index int
		path  string
	}

	results := make([]ProcessingResult, len(paths))
	jobs := make(chan job)
	var wg sync.WaitGroup

	for w := 0; w < p.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				results[j.index] = p.ProcessFile(ctx, j.path)
			}
		}()
	}

dispatch:
	for i, path := range paths {
		select {
		case jobs <- job{index: i, path: path}:
		case <-ctx.Done():
			break dispatch
		}
	}
	close(jobs)
	wg.Wait()

	// Documents the cancelled dispatch never reached still need a record so
	// the output stays one-to-one with the input.
	for i := range results {
		if results[i].Source == "" {
			results[i] = errorResult(filepath.Base(paths[i]), ctx.Err())
		}
	}

	p.logger.WithField("run_id", runID).Info("Batch processing completed")
	return results
}

func errorResult(source string, err error) ProcessingResult {
	msg := "processing aborted"
	if err != nil {
		msg = err.Error()
	}
	return ProcessingResult{
		Source:      source,
		ProcessedAt: time.Now().UTC(),
		Error:       msg,
	}
}
