package model

// IndicatorDefinition is a named category of phrases with a weight, used to
// detect fake-leaning or credible-leaning language
type IndicatorDefinition struct {
	Key         string   `json:"key" yaml:"key"`                             // Unique within its lexicon
	DisplayName string   `json:"display_name" yaml:"display_name"`           // Human-readable category name
	Description string   `json:"description,omitempty" yaml:"description,omitempty"` // What this category detects
	Phrases     []string `json:"phrases" yaml:"phrases"`                     // Matched case-insensitively as substrings
	Weight      float64  `json:"weight" yaml:"weight"`                       // Must be > 0
}

// LexiconSide identifies which verdict a lexicon's indicators support
type LexiconSide string

const (
	SideFake     LexiconSide = "fake"     // Indicators of fabricated or manipulative language
	SideCredible LexiconSide = "credible" // Indicators of sourced, verifiable language
)

// MatchResult records which phrases of a single indicator were found in a text.
// Produced fresh per analysis; never persisted.
type MatchResult struct {
	IndicatorKey     string   `json:"indicator_key"`
	MatchedPhrases   []string `json:"matched_phrases"`   // Distinct phrases found, in lexicon order
	OccurrenceWeight float64  `json:"occurrence_weight"` // indicator weight * count of distinct matched phrases
}

// PhraseWeight returns the weight contributed by each matched phrase.
// This is the indicator's own weight, recovered from the aggregate.
func (m MatchResult) PhraseWeight() float64 {
	if len(m.MatchedPhrases) == 0 {
		return 0
	}
	return m.OccurrenceWeight / float64(len(m.MatchedPhrases))
}
