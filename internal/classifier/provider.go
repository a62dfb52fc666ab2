package classifier

import (
	"context"
	"fmt"
	"strings"

	"github.com/credlens/credlens/internal/model"
)

// Provider defines the interface to an upstream classification service. The
// service returns a verdict plus optional per-word importances; it never sees
// the local lexicons.
type Provider interface {
	// Name returns the provider name
	Name() string

	// Classify asks the service for a verdict on raw article text
	Classify(ctx context.Context, req ClassifyRequest) (*ClassifyResponse, error)

	// IsAvailable checks if the provider is properly configured and reachable
	IsAvailable(ctx context.Context) bool
}

// ClassifyRequest contains the input for remote classification
type ClassifyRequest struct {
	// Text is the raw article text
	Text string

	// Model is the provider-specific model name (empty for provider default)
	Model string

	// MaxTokens limits the response length
	MaxTokens int
}

// ClassifyResponse contains the remote verdict
type ClassifyResponse struct {
	// Prediction is the remote verdict
	Prediction model.Prediction

	// Confidence in [0, 100]
	Confidence float64

	// Importances are per-token signed weights (positive = credible-leaning).
	// May be empty when the service offers no explanation.
	Importances []model.WordImportance

	// Model is the model that produced the response
	Model string
}

// NewProvider creates a provider by name. An empty name disables remote
// classification and returns nil.
func NewProvider(cfg model.ClassifierConfig) (Provider, error) {
	switch strings.ToLower(cfg.Provider) {
	case "openai":
		return NewOpenAIClassifier(cfg)

	case "":
		return nil, nil

	default:
		return nil, fmt.Errorf("unknown classifier provider: %s (supported: openai)", cfg.Provider)
	}
}
