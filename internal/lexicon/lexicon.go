package lexicon

import (
	"fmt"
	"os"

	"github.com/credlens/credlens/internal/model"
	"gopkg.in/yaml.v3"
)

// File is the on-disk lexicon format
type File struct {
	Indicators []model.IndicatorDefinition `yaml:"indicators"`
}

// Validate checks the invariants every lexicon must hold: positive weights,
// non-empty phrase lists, and keys unique within the lexicon. The fake and
// credible lexicons are separate namespaces and may reuse keys.
func Validate(indicators []model.IndicatorDefinition) error {
	seen := make(map[string]bool, len(indicators))

	for i, ind := range indicators {
		if ind.Key == "" {
			return fmt.Errorf("indicator %d: empty key", i)
		}
		if seen[ind.Key] {
			return fmt.Errorf("indicator %q: duplicate key", ind.Key)
		}
		seen[ind.Key] = true

		if ind.Weight <= 0 {
			return fmt.Errorf("indicator %q: weight must be positive, got %v", ind.Key, ind.Weight)
		}
		if len(ind.Phrases) == 0 {
			return fmt.Errorf("indicator %q: no phrases", ind.Key)
		}
		for j, phrase := range ind.Phrases {
			if phrase == "" {
				return fmt.Errorf("indicator %q: phrase %d is empty", ind.Key, j)
			}
		}
	}

	return nil
}

// LoadFile reads and validates a lexicon from a YAML file
func LoadFile(path string) ([]model.IndicatorDefinition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read lexicon: %w", err)
	}

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse lexicon %s: %w", path, err)
	}

	if err := Validate(file.Indicators); err != nil {
		return nil, fmt.Errorf("lexicon %s: %w", path, err)
	}

	return file.Indicators, nil
}

// ForConfig resolves the fake and credible lexicons from configuration,
// falling back to the built-ins when no path is set.
func ForConfig(cfg model.LexiconConfig) (fake, credible []model.IndicatorDefinition, err error) {
	fake = BuiltinFake()
	if cfg.FakePath != "" {
		if fake, err = LoadFile(cfg.FakePath); err != nil {
			return nil, nil, err
		}
	}

	credible = BuiltinCredible()
	if cfg.CrediblePath != "" {
		if credible, err = LoadFile(cfg.CrediblePath); err != nil {
			return nil, nil, err
		}
	}

	return fake, credible, nil
}
