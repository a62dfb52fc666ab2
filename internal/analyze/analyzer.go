package analyze

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/credlens/credlens/internal/cache"
	"github.com/credlens/credlens/internal/explain"
	"github.com/credlens/credlens/internal/extract"
	"github.com/credlens/credlens/internal/match"
	"github.com/credlens/credlens/internal/model"
	"github.com/credlens/credlens/internal/score"
	"gopkg.in/yaml.v3"
)

// Analyzer assembles the full verdict: matching against both lexicons,
// scoring, claim extraction, and explanation ranking. It performs no I/O and
// holds no mutable state, so concurrent calls for different texts need no
// coordination. Results for repeated inputs come from an optional
// content-addressed cache keyed by text and configuration fingerprint.
type Analyzer struct {
	cfg         model.ScoringConfig
	fake        []model.IndicatorDefinition
	credible    []model.IndicatorDefinition
	matcher     *match.Matcher
	scorer      *score.Scorer
	extractor   *extract.ClaimExtractor
	renderer    *explain.Renderer
	cache       cache.Cache
	fingerprint string
}

// Option configures an Analyzer
type Option func(*Analyzer)

// WithCache attaches a result cache. Without it every call recomputes.
func WithCache(c cache.Cache) Option {
	return func(a *Analyzer) { a.cache = c }
}

// NewAnalyzer creates an analyzer for the given configuration and lexicons
func NewAnalyzer(cfg model.ScoringConfig, fake, credible []model.IndicatorDefinition, opts ...Option) *Analyzer {
	a := &Analyzer{
		cfg:         cfg,
		fake:        fake,
		credible:    credible,
		matcher:     match.NewMatcher(),
		scorer:      score.NewScorer(cfg),
		extractor:   extract.NewClaimExtractor(cfg),
		renderer:    explain.NewRenderer(cfg.TopWords),
		fingerprint: fingerprint(cfg, fake, credible),
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Analyze runs the complete local pipeline on raw article text. Word
// importances are derived from the indicator matches themselves: each matched
// phrase contributes its indicator's weight, negated for the fake lexicon.
func (a *Analyzer) Analyze(text string) (*model.VerificationResult, error) {
	return a.analyze(text, nil)
}

// AnalyzeWithImportances runs the pipeline but ranks the given upstream word
// importances (e.g. from a remote explainer) instead of deriving them from
// matches. An empty list degrades to "no explanation available".
func (a *Analyzer) AnalyzeWithImportances(text string, importances []model.WordImportance) (*model.VerificationResult, error) {
	return a.analyze(text, importances)
}

func (a *Analyzer) analyze(text string, upstream []model.WordImportance) (*model.VerificationResult, error) {
	key := cache.AnalysisKey(a.fingerprint, text)
	if a.cache != nil && upstream == nil {
		if data, found := a.cache.Get(key); found {
			var cached model.VerificationResult
			if err := json.Unmarshal(data, &cached); err == nil {
				return &cached, nil
			}
		}
	}

	fakeMatches, err := a.matcher.Match(text, a.fake)
	if err != nil {
		return nil, fmt.Errorf("match fake lexicon: %w", err)
	}

	credibleMatches, err := a.matcher.Match(text, a.credible)
	if err != nil {
		return nil, fmt.Errorf("match credible lexicon: %w", err)
	}

	breakdown := a.scorer.Score(fakeMatches, credibleMatches)

	claims, err := a.extractor.ExtractClaims(text)
	if err != nil {
		return nil, fmt.Errorf("extract claims: %w", err)
	}

	importances := upstream
	if importances == nil {
		importances = deriveImportances(fakeMatches, credibleMatches)
	}

	result := &model.VerificationResult{
		Prediction:  a.scorer.Verdict(breakdown),
		Confidence:  a.scorer.Confidence(breakdown),
		Score:       breakdown,
		Claims:      claims,
		Explanation: a.renderer.Rank(importances),
		Source:      "local",
	}

	if a.cache != nil && upstream == nil {
		if data, err := json.Marshal(result); err == nil {
			_ = a.cache.Set(key, data, 0)
		}
	}

	return result, nil
}

// deriveImportances reinterprets match results as word importances. The sign
// comes from which lexicon matched: fake indicators push negative, credible
// indicators push positive. Each phrase carries its indicator's weight.
func deriveImportances(fakeMatches, credibleMatches []model.MatchResult) []model.WordImportance {
	var importances []model.WordImportance

	for _, m := range fakeMatches {
		weight := m.PhraseWeight()
		for _, phrase := range m.MatchedPhrases {
			importances = append(importances, model.WordImportance{Token: phrase, Weight: -weight})
		}
	}

	for _, m := range credibleMatches {
		weight := m.PhraseWeight()
		for _, phrase := range m.MatchedPhrases {
			importances = append(importances, model.WordImportance{Token: phrase, Weight: weight})
		}
	}

	return importances
}

// fingerprint hashes the scoring constants and both lexicons so cached
// results are invalidated by any tuning change.
func fingerprint(cfg model.ScoringConfig, fake, credible []model.IndicatorDefinition) string {
	data, err := yaml.Marshal(struct {
		Scoring  model.ScoringConfig
		Fake     []model.IndicatorDefinition
		Credible []model.IndicatorDefinition
	}{cfg, fake, credible})
	if err != nil {
		// yaml.Marshal on plain structs cannot fail; keep a stable fallback
		return "unversioned"
	}

	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:8])
}
