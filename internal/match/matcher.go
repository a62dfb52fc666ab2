package match

import (
	"strings"
	"unicode/utf8"

	"github.com/credlens/credlens/internal/model"
)

// Matcher scans text for lexicon phrase occurrences. It is stateless and safe
// for concurrent use.
type Matcher struct{}

// NewMatcher creates a new matcher
func NewMatcher() *Matcher {
	return &Matcher{}
}

// Match scans text for each indicator's phrases and returns one MatchResult
// per indicator with at least one hit, in lexicon order.
//
// Matching is case-insensitive substring containment, not token-boundary
// aware: "cure" matches inside "curettage". The occurrence weight counts
// distinct matched phrases, not how often each phrase occurs.
//
// Empty or whitespace-only text yields an empty result with no error. Text
// that is not valid UTF-8 fails with model.ErrInvalidInput so caller bugs
// surface instead of reading as a clean no-match.
func (m *Matcher) Match(text string, lexicon []model.IndicatorDefinition) ([]model.MatchResult, error) {
	if !utf8.ValidString(text) {
		return nil, model.ErrInvalidInput
	}

	results := []model.MatchResult{}
	if strings.TrimSpace(text) == "" {
		return results, nil
	}

	lowered := strings.ToLower(text)

	for _, ind := range lexicon {
		var matched []string
		for _, phrase := range ind.Phrases {
			if strings.Contains(lowered, strings.ToLower(phrase)) {
				matched = append(matched, phrase)
			}
		}

		if len(matched) > 0 {
			results = append(results, model.MatchResult{
				IndicatorKey:     ind.Key,
				MatchedPhrases:   matched,
				OccurrenceWeight: ind.Weight * float64(len(matched)),
			})
		}
	}

	return results, nil
}
