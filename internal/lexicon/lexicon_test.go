package lexicon

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/credlens/credlens/internal/model"
)

func TestValidate_Builtins(t *testing.T) {
	if err := Validate(BuiltinFake()); err != nil {
		t.Errorf("Built-in fake lexicon failed validation: %v", err)
	}
	if err := Validate(BuiltinCredible()); err != nil {
		t.Errorf("Built-in credible lexicon failed validation: %v", err)
	}
}

func TestValidate_RejectsBadDefinitions(t *testing.T) {
	cases := []struct {
		name       string
		indicators []model.IndicatorDefinition
	}{
		{
			name: "zero weight",
			indicators: []model.IndicatorDefinition{
				{Key: "a", Phrases: []string{"x"}, Weight: 0},
			},
		},
		{
			name: "negative weight",
			indicators: []model.IndicatorDefinition{
				{Key: "a", Phrases: []string{"x"}, Weight: -1},
			},
		},
		{
			name: "no phrases",
			indicators: []model.IndicatorDefinition{
				{Key: "a", Phrases: nil, Weight: 1},
			},
		},
		{
			name: "empty phrase",
			indicators: []model.IndicatorDefinition{
				{Key: "a", Phrases: []string{"x", ""}, Weight: 1},
			},
		},
		{
			name: "duplicate key",
			indicators: []model.IndicatorDefinition{
				{Key: "a", Phrases: []string{"x"}, Weight: 1},
				{Key: "a", Phrases: []string{"y"}, Weight: 1},
			},
		},
		{
			name: "empty key",
			indicators: []model.IndicatorDefinition{
				{Key: "", Phrases: []string{"x"}, Weight: 1},
			},
		},
	}

	for _, tc := range cases {
		if err := Validate(tc.indicators); err == nil {
			t.Errorf("%s: expected validation error, got nil", tc.name)
		}
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "fake.yaml")

	content := `indicators:
  - key: sensational
    display_name: Sensational language
    phrases: ["incredible", "stunning"]
    weight: 1.5
  - key: urgency
    display_name: Urgency
    phrases: ["act now"]
    weight: 2.0
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	indicators, err := LoadFile(path)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(indicators) != 2 {
		t.Fatalf("Expected 2 indicators, got %d", len(indicators))
	}
	if indicators[0].Key != "sensational" || indicators[0].Weight != 1.5 {
		t.Errorf("Unexpected first indicator: %+v", indicators[0])
	}
	if len(indicators[0].Phrases) != 2 {
		t.Errorf("Expected 2 phrases, got %v", indicators[0].Phrases)
	}
}

func TestLoadFile_RejectsInvalid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")

	content := `indicators:
  - key: broken
    phrases: []
    weight: 1.0
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	if _, err := LoadFile(path); err == nil {
		t.Error("Expected validation error for empty phrase list")
	}
}

func TestForConfig_Defaults(t *testing.T) {
	fake, credible, err := ForConfig(model.LexiconConfig{})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(fake) == 0 || len(credible) == 0 {
		t.Error("Expected built-in lexicons when no paths are configured")
	}
}
