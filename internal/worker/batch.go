package worker

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/credlens/credlens/internal/fetch"
	"github.com/credlens/credlens/internal/model"
)

// Verifier produces a verification result for raw article text
type Verifier interface {
	Verify(ctx context.Context, text string) (*model.VerificationResult, error)
}

// Fetcher retrieves article text for URL items
type Fetcher interface {
	Fetch(ctx context.Context, rawURL string) (*fetch.Article, error)
}

// AnalyzeJob analyzes one batch item: a URL to fetch or a local text file
type AnalyzeJob struct {
	Item      string
	processor *BatchProcessor
}

// Execute resolves the item to text and verifies it
func (j *AnalyzeJob) Execute(ctx context.Context) Result {
	text, err := j.processor.resolve(ctx, j.Item)
	if err != nil {
		return &AnalyzeResult{Item: j.Item, Err: err}
	}

	result, err := j.processor.verifier.Verify(ctx, text)
	return &AnalyzeResult{Item: j.Item, Result: result, Err: err}
}

// AnalyzeResult is the outcome of one batch item
type AnalyzeResult struct {
	Item   string
	Result *model.VerificationResult
	Err    error
}

// GetError returns the item's error, if any
func (r *AnalyzeResult) GetError() error {
	return r.Err
}

// BatchProcessor analyzes many items concurrently. URL items go through the
// per-domain limiter before fetching; the per-item pacing lives here, outside
// the engine.
type BatchProcessor struct {
	verifier    Verifier
	fetcher     Fetcher
	limiter     *Limiter
	concurrency int
}

// NewBatchProcessor creates a batch processor. fetcher and limiter may be nil
// when no URL items are expected.
func NewBatchProcessor(verifier Verifier, fetcher Fetcher, limiter *Limiter, concurrency int) *BatchProcessor {
	return &BatchProcessor{
		verifier:    verifier,
		fetcher:     fetcher,
		limiter:     limiter,
		concurrency: concurrency,
	}
}

// ProcessItems analyzes all items concurrently and returns one result per item
func (b *BatchProcessor) ProcessItems(ctx context.Context, items []string) []*AnalyzeResult {
	if len(items) == 0 {
		return []*AnalyzeResult{}
	}

	pool := NewPool(b.concurrency)
	pool.Start()

	for _, item := range items {
		pool.Submit(&AnalyzeJob{Item: item, processor: b})
	}

	results := pool.Wait()

	analyzeResults := make([]*AnalyzeResult, len(results))
	for i, result := range results {
		analyzeResults[i] = result.(*AnalyzeResult)
	}

	return analyzeResults
}

// ProcessFile reads items from a file and analyzes them concurrently
func (b *BatchProcessor) ProcessFile(ctx context.Context, path string) ([]*AnalyzeResult, error) {
	items, err := ReadItemsFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("read items: %w", err)
	}

	return b.ProcessItems(ctx, items), nil
}

// resolve turns a batch item into article text: URLs are fetched under the
// domain limiter, anything else is read as a local text file.
func (b *BatchProcessor) resolve(ctx context.Context, item string) (string, error) {
	if strings.HasPrefix(item, "http://") || strings.HasPrefix(item, "https://") {
		if b.fetcher == nil {
			return "", fmt.Errorf("URL item %q but no fetcher configured", item)
		}

		if b.limiter != nil {
			if err := b.limiter.Wait(ctx, item); err != nil {
				return "", fmt.Errorf("rate limit: %w", err)
			}
		}

		article, err := b.fetcher.Fetch(ctx, item)
		if err != nil {
			return "", fmt.Errorf("fetch %s: %w", item, err)
		}
		return article.Text, nil
	}

	data, err := os.ReadFile(item)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", item, err)
	}
	return string(data), nil
}

// ReadItemsFromFile reads batch items, one per line, skipping blanks,
// comments, and duplicates.
func ReadItemsFromFile(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var items []string
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if seen[line] {
			continue
		}
		seen[line] = true
		items = append(items, line)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan file: %w", err)
	}

	return items, nil
}
