package explain

import (
	"testing"

	"github.com/credlens/credlens/internal/model"
)

func TestRenderer_SplitsAndOrders(t *testing.T) {
	renderer := NewRenderer(5)

	explanation := renderer.Rank([]model.WordImportance{
		{Token: "breaking", Weight: -2.0},
		{Token: "according to", Weight: 2.0},
		{Token: "miracle", Weight: -2.5},
		{Token: "reported", Weight: 1.5},
		{Token: "filler", Weight: 0},
	})

	if !explanation.Available {
		t.Fatal("Expected explanation to be available")
	}

	if len(explanation.TopPositive) != 2 {
		t.Fatalf("Expected 2 positive entries, got %d", len(explanation.TopPositive))
	}
	if explanation.TopPositive[0].Token != "according to" {
		t.Errorf("Expected highest positive weight first, got %s", explanation.TopPositive[0].Token)
	}

	if len(explanation.TopNegative) != 2 {
		t.Fatalf("Expected 2 negative entries, got %d", len(explanation.TopNegative))
	}
	if explanation.TopNegative[0].Token != "miracle" {
		t.Errorf("Expected most negative weight first, got %s", explanation.TopNegative[0].Token)
	}

	// Zero weights stay out of the top lists but remain in All
	if len(explanation.All) != 5 {
		t.Errorf("Expected all 5 entries in All, got %d", len(explanation.All))
	}
	for _, imp := range explanation.TopPositive {
		if imp.Weight <= 0 {
			t.Errorf("Non-positive weight %v in TopPositive", imp.Weight)
		}
	}
	for _, imp := range explanation.TopNegative {
		if imp.Weight >= 0 {
			t.Errorf("Non-negative weight %v in TopNegative", imp.Weight)
		}
	}
}

func TestRenderer_TruncatesToN(t *testing.T) {
	renderer := NewRenderer(2)

	explanation := renderer.Rank([]model.WordImportance{
		{Token: "a", Weight: 1},
		{Token: "b", Weight: 2},
		{Token: "c", Weight: 3},
		{Token: "d", Weight: -1},
		{Token: "e", Weight: -2},
		{Token: "f", Weight: -3},
	})

	if len(explanation.TopPositive) != 2 || len(explanation.TopNegative) != 2 {
		t.Fatalf("Expected lists truncated to 2, got %d and %d",
			len(explanation.TopPositive), len(explanation.TopNegative))
	}
	if explanation.TopPositive[0].Token != "c" || explanation.TopNegative[0].Token != "f" {
		t.Error("Expected the extreme weights to survive truncation")
	}
	if len(explanation.All) != 6 {
		t.Errorf("Expected All untruncated, got %d", len(explanation.All))
	}
}

func TestRenderer_ListsNeverOverlap(t *testing.T) {
	renderer := NewRenderer(5)

	explanation := renderer.Rank([]model.WordImportance{
		{Token: "a", Weight: 1},
		{Token: "b", Weight: -1},
	})

	seen := make(map[string]bool)
	for _, imp := range explanation.TopPositive {
		seen[imp.Token] = true
	}
	for _, imp := range explanation.TopNegative {
		if seen[imp.Token] {
			t.Errorf("Token %s appears in both lists", imp.Token)
		}
	}
}

func TestRenderer_TiesKeepInputOrder(t *testing.T) {
	renderer := NewRenderer(5)

	explanation := renderer.Rank([]model.WordImportance{
		{Token: "first", Weight: 1.5},
		{Token: "second", Weight: 1.5},
		{Token: "third", Weight: 1.5},
	})

	want := []string{"first", "second", "third"}
	for i, token := range want {
		if explanation.TopPositive[i].Token != token {
			t.Errorf("Position %d: expected %s (stable order), got %s", i, token, explanation.TopPositive[i].Token)
		}
	}
}

func TestRenderer_EmptyInputDegradesGracefully(t *testing.T) {
	renderer := NewRenderer(5)

	for _, input := range [][]model.WordImportance{nil, {}} {
		explanation := renderer.Rank(input)

		if explanation.Available {
			t.Error("Expected Available=false for empty input")
		}
		if explanation.Message != NoExplanationMessage {
			t.Errorf("Expected %q, got %q", NoExplanationMessage, explanation.Message)
		}
		if len(explanation.TopPositive) != 0 || len(explanation.TopNegative) != 0 {
			t.Error("Expected empty top lists")
		}
	}
}
