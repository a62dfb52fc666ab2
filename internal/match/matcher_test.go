package match

import (
	"errors"
	"testing"

	"github.com/credlens/credlens/internal/model"
)

func testLexicon() []model.IndicatorDefinition {
	return []model.IndicatorDefinition{
		{Key: "clickbait", Phrases: []string{"breaking", "shocking"}, Weight: 2.0},
		{Key: "miracle", Phrases: []string{"cure", "miracle"}, Weight: 2.5},
	}
}

func TestMatcher_CaseInsensitiveSubstring(t *testing.T) {
	matcher := NewMatcher()

	results, err := matcher.Match("BREAKING news: a Shocking miracle!", testLexicon())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(results) != 2 {
		t.Fatalf("Expected 2 match results, got %d", len(results))
	}

	if results[0].IndicatorKey != "clickbait" {
		t.Errorf("Expected clickbait first (lexicon order), got %s", results[0].IndicatorKey)
	}
	if len(results[0].MatchedPhrases) != 2 {
		t.Errorf("Expected both clickbait phrases matched, got %v", results[0].MatchedPhrases)
	}
	if results[0].OccurrenceWeight != 4.0 {
		t.Errorf("Expected occurrence weight 4.0 (2.0 * 2 phrases), got %v", results[0].OccurrenceWeight)
	}

	if results[1].IndicatorKey != "miracle" {
		t.Errorf("Expected miracle second, got %s", results[1].IndicatorKey)
	}
	if results[1].OccurrenceWeight != 2.5 {
		t.Errorf("Expected occurrence weight 2.5, got %v", results[1].OccurrenceWeight)
	}
}

func TestMatcher_CountsDistinctPhrasesNotOccurrences(t *testing.T) {
	matcher := NewMatcher()

	// "cure" appears three times but counts once
	results, err := matcher.Match("cure cure cure", testLexicon())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(results) != 1 {
		t.Fatalf("Expected 1 match result, got %d", len(results))
	}
	if results[0].OccurrenceWeight != 2.5 {
		t.Errorf("Expected weight 2.5 for one distinct phrase, got %v", results[0].OccurrenceWeight)
	}
}

func TestMatcher_SubstringQuirk(t *testing.T) {
	matcher := NewMatcher()

	// Matching is not token-boundary aware: "cure" matches inside "curettage"
	results, err := matcher.Match("the curettage procedure", testLexicon())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(results) != 1 || results[0].IndicatorKey != "miracle" {
		t.Fatalf("Expected the embedded 'cure' to match, got %v", results)
	}
}

func TestMatcher_EmptyAndWhitespaceInput(t *testing.T) {
	matcher := NewMatcher()

	for _, text := range []string{"", "   \t\n  "} {
		results, err := matcher.Match(text, testLexicon())
		if err != nil {
			t.Fatalf("Expected no error for %q, got %v", text, err)
		}
		if len(results) != 0 {
			t.Errorf("Expected empty result for %q, got %v", text, results)
		}
	}
}

func TestMatcher_NoMatches(t *testing.T) {
	matcher := NewMatcher()

	results, err := matcher.Match("the committee met on tuesday", testLexicon())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(results) != 0 {
		t.Errorf("Expected no matches, got %v", results)
	}
}

func TestMatcher_InvalidUTF8(t *testing.T) {
	matcher := NewMatcher()

	_, err := matcher.Match(string([]byte{0xff, 0xfe, 0xfd}), testLexicon())
	if !errors.Is(err, model.ErrInvalidInput) {
		t.Fatalf("Expected ErrInvalidInput, got %v", err)
	}
}

func TestMatcher_Deterministic(t *testing.T) {
	matcher := NewMatcher()
	text := "breaking: shocking miracle cure"

	first, err := matcher.Match(text, testLexicon())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	second, err := matcher.Match(text, testLexicon())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(first) != len(second) {
		t.Fatalf("Expected identical results, got %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].IndicatorKey != second[i].IndicatorKey || first[i].OccurrenceWeight != second[i].OccurrenceWeight {
			t.Errorf("Result %d differs between calls", i)
		}
	}
}
