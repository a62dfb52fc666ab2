package extract

import (
	"errors"
	"strings"
	"testing"

	"github.com/credlens/credlens/internal/model"
)

func newTestExtractor() *ClaimExtractor {
	return NewClaimExtractor(model.DefaultConfig().Scoring)
}

func TestClaimExtractor_BasicExtraction(t *testing.T) {
	extractor := newTestExtractor()

	text := "The committee approved the budget on Tuesday afternoon. " +
		"Researchers at the university published their findings yesterday! " +
		"The ministry confirmed the figures in an official statement. " +
		"Short one."

	claims, err := extractor.ExtractClaims(text)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(claims) != 3 {
		t.Fatalf("Expected exactly 3 claims (the 10-char fragment discarded), got %d", len(claims))
	}

	for i, claim := range claims {
		if claim.ID != i+1 {
			t.Errorf("Expected claim ID %d, got %d", i+1, claim.ID)
		}
		if strings.TrimSpace(claim.Text) != claim.Text {
			t.Errorf("Expected trimmed claim text, got %q", claim.Text)
		}
	}

	if !strings.Contains(claims[0].Text, "committee") {
		t.Errorf("Expected claims in source order, first was %q", claims[0].Text)
	}
}

func TestClaimExtractor_KeepsAtMostMaxClaims(t *testing.T) {
	extractor := newTestExtractor()

	var sb strings.Builder
	for i := 0; i < 8; i++ {
		sb.WriteString("This sentence is comfortably over twenty characters long. ")
	}

	claims, err := extractor.ExtractClaims(sb.String())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(claims) != 5 {
		t.Errorf("Expected at most 5 claims, got %d", len(claims))
	}
	if len(claims) > 0 && claims[len(claims)-1].ID != len(claims) {
		t.Errorf("Expected sequential IDs ending at %d, got %d", len(claims), claims[len(claims)-1].ID)
	}
}

func TestClaimExtractor_SplitsOnAllTerminators(t *testing.T) {
	extractor := newTestExtractor()

	text := "Did the committee really approve the budget? The spokesperson confirmed it immediately! The report was published the following morning."

	claims, err := extractor.ExtractClaims(text)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(claims) != 3 {
		t.Errorf("Expected 3 claims across ., !, ? terminators, got %d", len(claims))
	}
}

func TestClaimExtractor_EmptyInput(t *testing.T) {
	extractor := newTestExtractor()

	for _, text := range []string{"", "   \n\t "} {
		claims, err := extractor.ExtractClaims(text)
		if err != nil {
			t.Fatalf("Expected no error for %q, got %v", text, err)
		}
		if len(claims) != 0 {
			t.Errorf("Expected no claims for %q, got %d", text, len(claims))
		}
	}
}

func TestClaimExtractor_InvalidUTF8(t *testing.T) {
	extractor := newTestExtractor()

	_, err := extractor.ExtractClaims(string([]byte{0xc0, 0x80}))
	if !errors.Is(err, model.ErrInvalidInput) {
		t.Fatalf("Expected ErrInvalidInput, got %v", err)
	}
}

func TestClassifyClaim_Deterministic(t *testing.T) {
	cases := []struct {
		sentence string
		want     model.ClaimClass
	}{
		{"The budget grew by 12 million dollars", model.ClaimFactual},
		{"According to the ministry, exports rose", model.ClaimFactual},
		{"The spokesperson said the plan works", model.ClaimFactual},
		{"A recent study found higher engagement", model.ClaimFactual},
		{"This policy is clearly a terrible idea", model.ClaimOpinion},
		{"Everyone should be worried about this", model.ClaimOpinion},
	}

	for _, tc := range cases {
		if got := ClassifyClaim(tc.sentence); got != tc.want {
			t.Errorf("ClassifyClaim(%q) = %s, want %s", tc.sentence, got, tc.want)
		}
		// Same input, same answer: the tag must never be random
		if again := ClassifyClaim(tc.sentence); again != ClassifyClaim(tc.sentence) {
			t.Errorf("ClassifyClaim(%q) is not deterministic", tc.sentence)
		}
	}
}
