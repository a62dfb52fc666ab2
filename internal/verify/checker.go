package verify

import (
	"context"
	"strings"

	"github.com/credlens/credlens/internal/fetch"
	"github.com/credlens/credlens/internal/model"
)

// CrossChecker checks a claim against external sources. Implementations must
// report real lookups only; a claim with no reachable corroboration is
// Found=false, never a made-up agreement figure.
type CrossChecker interface {
	Check(ctx context.Context, claim string, sourceURLs []string) (model.CrossCheckResult, error)
}

// HTTPChecker fetches candidate source pages and measures token overlap
// between the claim and each page's visible text.
type HTTPChecker struct {
	fetcher       *fetch.Fetcher
	minSimilarity float64
}

// NewHTTPChecker creates a checker; claims need at least minSimilarity token
// overlap (0..1) with a source to count as found.
func NewHTTPChecker(fetcher *fetch.Fetcher, minSimilarity float64) *HTTPChecker {
	return &HTTPChecker{
		fetcher:       fetcher,
		minSimilarity: minSimilarity,
	}
}

// Check fetches each source and returns the best overlap. Unreachable sources
// are skipped; the error is non-nil only when the claim itself is unusable.
func (c *HTTPChecker) Check(ctx context.Context, claim string, sourceURLs []string) (model.CrossCheckResult, error) {
	claimTokens := tokenize(claim)
	if len(claimTokens) == 0 {
		return model.CrossCheckResult{}, nil
	}

	best := model.CrossCheckResult{}

	for _, rawURL := range sourceURLs {
		article, err := c.fetcher.Fetch(ctx, rawURL)
		if err != nil {
			continue
		}

		similarity := overlap(claimTokens, tokenize(article.Text))
		if similarity > best.Similarity {
			best = model.CrossCheckResult{
				Found:       similarity >= c.minSimilarity,
				Similarity:  similarity,
				URL:         article.FinalURL,
				PublishedAt: article.LastModified,
			}
		}
	}

	return best, nil
}

// NopChecker reports every claim as not found. Used when no source list is
// configured.
type NopChecker struct{}

// Check always reports not found
func (NopChecker) Check(ctx context.Context, claim string, sourceURLs []string) (model.CrossCheckResult, error) {
	return model.CrossCheckResult{}, nil
}

// tokenize lowercases and splits on non-letter/digit runes, keeping tokens of
// four or more characters so stop words don't inflate overlap.
func tokenize(text string) map[string]bool {
	tokens := make(map[string]bool)
	for _, field := range strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !(r >= 'a' && r <= 'z' || r >= '0' && r <= '9' || r >= 0x80)
	}) {
		if len(field) >= 4 {
			tokens[field] = true
		}
	}
	return tokens
}

// overlap is the share of claim tokens present in the source
func overlap(claim, source map[string]bool) float64 {
	if len(claim) == 0 {
		return 0
	}
	hits := 0
	for token := range claim {
		if source[token] {
			hits++
		}
	}
	return float64(hits) / float64(len(claim))
}
