// Package pipeline orchestrates the full analysis run: extract transactions
// from each source document, then categorize and classify the merged batch.
// Per-transaction enrichment is independent, so the batch stage fans out over
// a small worker pool.
package pipeline

import (
	"context"
	"sync"

	"github.com/abhaysalunke711/bank-statement-analyzer/internal/categorizer"
	"github.com/abhaysalunke711/bank-statement-analyzer/internal/classifier"
	"github.com/abhaysalunke711/bank-statement-analyzer/internal/extractor"
	"github.com/abhaysalunke711/bank-statement-analyzer/internal/logging"
	"github.com/abhaysalunke711/bank-statement-analyzer/internal/models"
)

// Document is one unit of source text, already extracted from whatever
// carrier (PDF, scan, export) produced it.
type Document struct {
	Name string
	Text string
}

// DefaultWorkers bounds the enrichment fan-out when no worker count is
// configured.
const DefaultWorkers = 4

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithWorkers sets the enrichment worker count.
func WithWorkers(n int) Option {
	return func(p *Pipeline) {
		if n > 0 {
			p.workers = n
		}
	}
}

// WithFuzzyThreshold overrides the fuzzy categorization threshold.
func WithFuzzyThreshold(threshold float64) Option {
	return func(p *Pipeline) {
		p.fuzzyThreshold = threshold
	}
}

// WithAIClient enables the AI categorization fallback tier.
func WithAIClient(client categorizer.AIClient) Option {
	return func(p *Pipeline) {
		p.aiClient = client
	}
}

// WithExtractor replaces the default extractor, e.g. to change the amount
// selection policy or fallback year.
func WithExtractor(e *extractor.Extractor) Option {
	return func(p *Pipeline) {
		if e != nil {
			p.extractor = e
		}
	}
}

// Pipeline runs documents through extraction and batch enrichment. The
// keyword table may be hot-swapped between runs; each Process call snapshots
// the table once so a swap mid-run never mixes table versions.
type Pipeline struct {
	mu    sync.RWMutex
	table *models.KeywordTable

	extractor      *extractor.Extractor
	classifier     *classifier.Classifier
	aiClient       categorizer.AIClient
	fuzzyThreshold float64
	workers        int
	logger         logging.Logger
}

// New creates a Pipeline. A keyword table must be installed with SwapTable
// before Process is called.
func New(logger logging.Logger, opts ...Option) *Pipeline {
	if logger == nil {
		logger = logging.GetLogger()
	}
	p := &Pipeline{
		extractor:  extractor.NewExtractor(logger),
		classifier: classifier.NewClassifier(logger),
		workers:    DefaultWorkers,
		logger:     logger,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// SwapTable atomically replaces the keyword table for subsequent runs.
// In-flight runs keep the snapshot they started with.
func (p *Pipeline) SwapTable(table *models.KeywordTable) {
	p.mu.Lock()
	p.table = table
	p.mu.Unlock()
}

func (p *Pipeline) snapshotTable() *models.KeywordTable {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.table
}

// Process extracts transactions from every document and enriches the merged
// batch with categories and income/expense types. It fails only when no
// keyword table has been installed; per-document and per-record problems
// degrade with warnings.
func (p *Pipeline) Process(ctx context.Context, docs []Document) ([]models.Transaction, error) {
	table := p.snapshotTable()
	cat, err := categorizer.NewCategorizer(table, p.fuzzyThreshold, p.aiClient, p.logger)
	if err != nil {
		return nil, err
	}

	batch := []models.Transaction{}
	for _, doc := range docs {
		txs := p.extractor.Extract(doc.Text)
		if len(txs) == 0 {
			p.logger.WithField(logging.FieldSourceFile, doc.Name).
				Warn("Document yielded no transactions")
			continue
		}
		for i := range txs {
			txs[i].SourceFile = doc.Name
		}
		batch = append(batch, txs...)
	}

	p.enrich(ctx, cat, batch)

	SortChronologically(batch)
	DetectDuplicates(batch, p.logger)

	p.logger.WithFields(
		logging.Field{Key: "documents", Value: len(docs)},
		logging.Field{Key: logging.FieldCount, Value: len(batch)},
	).Info("Pipeline run complete")
	return batch, nil
}

// enrich categorizes and classifies every transaction in place using a
// bounded worker pool.
func (p *Pipeline) enrich(ctx context.Context, cat *categorizer.Categorizer, batch []models.Transaction) {
	if len(batch) == 0 {
		return
	}

	workers := p.workers
	if workers > len(batch) {
		workers = len(batch)
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				tx := &batch[i]
				tx.Category = cat.Categorize(ctx, *tx).Name
				result := p.classifier.Classify(*tx)
				tx.Type = result.Type
				tx.TypeConfidence = result.Confidence
				tx.TypeReason = result.Reason
			}
		}()
	}

	for i := range batch {
		jobs <- i
	}
	close(jobs)
	wg.Wait()
}
