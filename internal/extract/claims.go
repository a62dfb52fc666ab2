package extract

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/credlens/credlens/internal/model"
)

// attributionTokens mark a sentence as reporting rather than opining. Used by
// the factual/opinion heuristic; matched case-insensitively as substrings.
var attributionTokens = []string{
	"according to", "said", "reported", "announced", "confirmed",
	"stated", "study", "survey", "percent", "%",
}

// ClaimExtractor splits input text into candidate factual statements
type ClaimExtractor struct {
	minLength int
	maxClaims int
}

// NewClaimExtractor creates a claim extractor with the given limits
func NewClaimExtractor(cfg model.ScoringConfig) *ClaimExtractor {
	return &ClaimExtractor{
		minLength: cfg.MinClaimLength,
		maxClaims: cfg.MaxClaims,
	}
}

// ExtractClaims splits text on sentence terminators, discards fragments whose
// trimmed length is below the minimum, and keeps at most the first maxClaims
// qualifying fragments, numbered from 1 in source order.
//
// Non-UTF-8 input fails with model.ErrInvalidInput; empty or whitespace-only
// input returns an empty list with no error.
func (e *ClaimExtractor) ExtractClaims(text string) ([]model.Claim, error) {
	if !utf8.ValidString(text) {
		return nil, model.ErrInvalidInput
	}

	claims := []model.Claim{}
	if strings.TrimSpace(text) == "" {
		return claims, nil
	}

	fragments := strings.FieldsFunc(text, func(r rune) bool {
		return r == '.' || r == '!' || r == '?'
	})

	for _, fragment := range fragments {
		if len(claims) >= e.maxClaims {
			break
		}

		sentence := strings.TrimSpace(fragment)
		if utf8.RuneCountInString(sentence) < e.minLength {
			continue
		}

		claims = append(claims, model.Claim{
			ID:    len(claims) + 1,
			Text:  sentence,
			Class: ClassifyClaim(sentence),
		})
	}

	return claims, nil
}

// ClassifyClaim tags a sentence as factual when it carries a digit or an
// attribution token, and as opinion otherwise.
//
// This is a deterministic surface heuristic for presentation grouping. It does
// not detect whether a statement is actually true or verifiable.
func ClassifyClaim(sentence string) model.ClaimClass {
	for _, r := range sentence {
		if unicode.IsDigit(r) {
			return model.ClaimFactual
		}
	}

	lowered := strings.ToLower(sentence)
	for _, token := range attributionTokens {
		if strings.Contains(lowered, token) {
			return model.ClaimFactual
		}
	}

	return model.ClaimOpinion
}
