package score

import (
	"testing"

	"github.com/credlens/credlens/internal/model"
)

func testConfig() model.ScoringConfig {
	return model.DefaultConfig().Scoring
}

func matches(weights ...float64) []model.MatchResult {
	results := make([]model.MatchResult, len(weights))
	for i, w := range weights {
		results[i] = model.MatchResult{
			IndicatorKey:     "test",
			MatchedPhrases:   []string{"phrase"},
			OccurrenceWeight: w,
		}
	}
	return results
}

func TestScorer_Aggregation(t *testing.T) {
	scorer := NewScorer(testConfig())

	b := scorer.Score(matches(2.0, 2.5), matches(1.5))

	if b.FakeScore != 4.5 {
		t.Errorf("Expected fake score 4.5, got %v", b.FakeScore)
	}
	if b.CredibleScore != 1.5 {
		t.Errorf("Expected credible score 1.5, got %v", b.CredibleScore)
	}

	// 4.5 / (4.5 + 1.5 + 0.5) * 100 = 69.23...
	expected := 4.5 / 6.5 * 100
	if b.FakePercentage != expected {
		t.Errorf("Expected fake percentage %v, got %v", expected, b.FakePercentage)
	}
}

func TestScorer_ScoresNeverNegative(t *testing.T) {
	scorer := NewScorer(testConfig())

	b := scorer.Score(nil, nil)
	if b.FakeScore < 0 || b.CredibleScore < 0 {
		t.Errorf("Expected non-negative scores, got fake=%v credible=%v", b.FakeScore, b.CredibleScore)
	}
}

func TestScorer_ZeroEvidenceDefaultsToReal(t *testing.T) {
	scorer := NewScorer(testConfig())

	b := scorer.Score(nil, nil)

	if b.FakePercentage != 0 {
		t.Errorf("Expected fake percentage 0 with no evidence, got %v", b.FakePercentage)
	}
	if verdict := scorer.Verdict(b); verdict != model.PredictionLikelyReal {
		t.Errorf("Expected Likely Real on zero evidence, got %s", verdict)
	}
	if confidence := scorer.Confidence(b); confidence != 60 {
		t.Errorf("Expected minimum confidence 60 on zero evidence, got %v", confidence)
	}
}

func TestScorer_ThresholdBoundaryIsStrict(t *testing.T) {
	scorer := NewScorer(testConfig())

	// 4.5 / (4.5 + 5.0 + 0.5) * 100 = exactly 45
	b := scorer.Score(matches(4.5), matches(5.0))

	if b.FakePercentage != 45 {
		t.Fatalf("Test setup wrong: expected fake percentage exactly 45, got %v", b.FakePercentage)
	}
	if verdict := scorer.Verdict(b); verdict != model.PredictionLikelyReal {
		t.Errorf("Expected Likely Real at exactly the threshold (strict >), got %s", verdict)
	}

	// Nudge past the threshold
	b2 := scorer.Score(matches(4.6), matches(5.0))
	if b2.FakePercentage <= 45 {
		t.Fatalf("Test setup wrong: expected fake percentage > 45, got %v", b2.FakePercentage)
	}
	if verdict := scorer.Verdict(b2); verdict != model.PredictionLikelyFake {
		t.Errorf("Expected Likely Fake above the threshold, got %s", verdict)
	}
}

func TestScorer_ConfidenceSaturates(t *testing.T) {
	scorer := NewScorer(testConfig())

	// Extreme imbalance: confidence must hit the cap, never exceed it
	b := scorer.Score(matches(1000), nil)

	if confidence := scorer.Confidence(b); confidence != 95 {
		t.Errorf("Expected confidence capped at 95, got %v", confidence)
	}
}

func TestScorer_ConfidenceGrowsWithDifference(t *testing.T) {
	scorer := NewScorer(testConfig())

	small := scorer.Confidence(scorer.Score(matches(0.5), nil))
	large := scorer.Confidence(scorer.Score(matches(1.5), nil))

	// base 60 + 20 per unit difference
	if small != 70 {
		t.Errorf("Expected confidence 70 for difference 0.5, got %v", small)
	}
	if large != 90 {
		t.Errorf("Expected confidence 90 for difference 1.5, got %v", large)
	}
}

func TestScorer_OrderIndependentBetweenSides(t *testing.T) {
	scorer := NewScorer(testConfig())

	fake := matches(2.0, 1.0)
	credible := matches(3.0)

	b1 := scorer.Score(fake, credible)
	b2 := scorer.Score(fake, credible)

	if b1.FakePercentage != b2.FakePercentage || b1.FakeScore != b2.FakeScore {
		t.Error("Expected identical breakdowns for identical inputs")
	}
}

func TestScorer_ConfigurableThreshold(t *testing.T) {
	cfg := testConfig()
	cfg.Threshold = 80
	scorer := NewScorer(cfg)

	// 69% fake-leaning: fake under the raised threshold
	b := scorer.Score(matches(4.5), matches(1.5))
	if verdict := scorer.Verdict(b); verdict != model.PredictionLikelyReal {
		t.Errorf("Expected Likely Real under raised threshold, got %s", verdict)
	}
}
