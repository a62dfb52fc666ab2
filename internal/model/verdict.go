package model

// Prediction is the engine's verdict on a piece of text
type Prediction string

const (
	PredictionLikelyFake Prediction = "Likely Fake"
	PredictionLikelyReal Prediction = "Likely Real"
)

// ScoreBreakdown is the transparent aggregation of matched indicators
type ScoreBreakdown struct {
	FakeScore       float64       `json:"fake_score"`       // Sum of occurrence weights over fake matches, >= 0
	CredibleScore   float64       `json:"credible_score"`   // Sum of occurrence weights over credible matches, >= 0
	FakePercentage  float64       `json:"fake_percentage"`  // fake / (fake + credible + epsilon) * 100
	FakeMatches     []MatchResult `json:"fake_matches"`
	CredibleMatches []MatchResult `json:"credible_matches"`
}

// WordImportance attaches a signed weight to a token. Positive weights lean
// credible, negative weights lean fake.
type WordImportance struct {
	Token  string  `json:"token"`
	Weight float64 `json:"weight"`
}

// Explanation is the presentation-ready ranking of word importances
type Explanation struct {
	TopPositive []WordImportance `json:"top_positive"` // Most credible-leaning first, at most N entries
	TopNegative []WordImportance `json:"top_negative"` // Most fake-leaning first, at most N entries
	All         []WordImportance `json:"all"`          // Full ranked list, zero weights included
	Available   bool             `json:"available"`
	Message     string           `json:"message,omitempty"` // Set when no explanation is available
}

// ClaimClass categorizes an extracted claim
type ClaimClass string

const (
	ClaimFactual ClaimClass = "factual" // Carries numbers or attribution tokens
	ClaimOpinion ClaimClass = "opinion"
)

// Claim is a candidate factual statement extracted from the input text
type Claim struct {
	ID    int        `json:"id"`   // Sequential, starting at 1
	Text  string     `json:"text"` // Trimmed sentence
	Class ClaimClass `json:"class"`
}

// VerificationResult is the complete output of one analysis. It is ephemeral:
// created per call, consumed by the caller, never stored by the engine.
type VerificationResult struct {
	Prediction  Prediction     `json:"prediction"`
	Confidence  float64        `json:"confidence"` // Clamped to the configured band
	Score       ScoreBreakdown `json:"score"`
	Claims      []Claim        `json:"claims"`
	Explanation Explanation    `json:"explanation"`
	Source      string         `json:"source"` // "local" or the remote classifier name
}

// CrossCheckResult is the outcome of checking a claim against an external source.
// Produced by a real cross-source checker; never fabricated.
type CrossCheckResult struct {
	Found       bool    `json:"found"`
	Similarity  float64 `json:"similarity"` // 0..1 token overlap with the best matching source
	URL         string  `json:"url,omitempty"`
	PublishedAt string  `json:"published_at,omitempty"` // From the source's Last-Modified header, if any
}
