package score

import (
	"math"

	"github.com/credlens/credlens/internal/model"
)

// Scorer aggregates indicator matches into a verdict. All constants come from
// ScoringConfig so behavior can be tuned without code changes.
type Scorer struct {
	cfg model.ScoringConfig
}

// NewScorer creates a new scorer
func NewScorer(cfg model.ScoringConfig) *Scorer {
	return &Scorer{cfg: cfg}
}

// Score aggregates both match sets into a breakdown. Pure: identical inputs
// give identical output, and the two match sets never interact beyond the
// final percentage.
//
// fakePercentage = fakeScore / (fakeScore + credibleScore + epsilon) * 100.
// Epsilon keeps the division defined when no indicator matched at all; with
// both scores at zero the percentage is 0, which the verdict rule reads as
// "Likely Real". Defaulting to real on no evidence is deliberate.
func (s *Scorer) Score(fakeMatches, credibleMatches []model.MatchResult) model.ScoreBreakdown {
	fakeScore := sumWeights(fakeMatches)
	credibleScore := sumWeights(credibleMatches)

	fakePercentage := fakeScore / (fakeScore + credibleScore + s.cfg.Epsilon) * 100

	return model.ScoreBreakdown{
		FakeScore:       fakeScore,
		CredibleScore:   credibleScore,
		FakePercentage:  fakePercentage,
		FakeMatches:     fakeMatches,
		CredibleMatches: credibleMatches,
	}
}

// Verdict applies the threshold rule. The comparison is strictly greater:
// a percentage exactly at the threshold reads as "Likely Real".
func (s *Scorer) Verdict(b model.ScoreBreakdown) model.Prediction {
	if b.FakePercentage > s.cfg.Threshold {
		return model.PredictionLikelyFake
	}
	return model.PredictionLikelyReal
}

// Confidence grows with the absolute score difference and saturates at the
// configured band instead of diverging: base + slope*|fake - credible|,
// clamped to [min, max].
func (s *Scorer) Confidence(b model.ScoreBreakdown) float64 {
	diff := math.Abs(b.FakeScore - b.CredibleScore)
	confidence := s.cfg.ConfidenceBase + s.cfg.ConfidenceSlope*diff

	if confidence < s.cfg.ConfidenceMin {
		confidence = s.cfg.ConfidenceMin
	}
	if confidence > s.cfg.ConfidenceMax {
		confidence = s.cfg.ConfidenceMax
	}

	return confidence
}

func sumWeights(matches []model.MatchResult) float64 {
	var total float64
	for _, m := range matches {
		total += m.OccurrenceWeight
	}
	return total
}
