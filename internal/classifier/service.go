package classifier

import (
	"context"
	"fmt"
	"os"

	"github.com/credlens/credlens/internal/analyze"
	"github.com/credlens/credlens/internal/model"
)

// Service wraps the remote classifier with the local heuristic engine as
// fallback. When the remote call succeeds its verdict and importances replace
// the local ones; claims and the score breakdown always come from the local
// engine, which sees every text either way. Remote failure is never fatal.
type Service struct {
	provider Provider
	analyzer *analyze.Analyzer
	verbose  bool
}

// NewService creates a verification service. provider may be nil, in which
// case every text is scored locally.
func NewService(provider Provider, analyzer *analyze.Analyzer, verbose bool) *Service {
	return &Service{
		provider: provider,
		analyzer: analyzer,
		verbose:  verbose,
	}
}

// Verify produces a VerificationResult for raw article text, preferring the
// remote classifier and falling back to the local engine.
func (s *Service) Verify(ctx context.Context, text string) (*model.VerificationResult, error) {
	if s.provider == nil {
		return s.analyzer.Analyze(text)
	}

	resp, err := s.provider.Classify(ctx, ClassifyRequest{Text: text})
	if err != nil {
		if s.verbose {
			fmt.Fprintf(os.Stderr, "remote classifier failed: %v, scoring locally\n", err)
		}
		return s.analyzer.Analyze(text)
	}

	result, err := s.analyzer.AnalyzeWithImportances(text, resp.Importances)
	if err != nil {
		return nil, err
	}

	result.Prediction = resp.Prediction
	result.Confidence = resp.Confidence
	result.Source = s.provider.Name()
	return result, nil
}
