package model

import "time"

// Config is the complete credlens configuration tree.
// Populated from defaults, then ~/.credlens/config.yaml, then CREDLENS_* env
// vars, then CLI flags (lowest to highest priority).
type Config struct {
	Scoring     ScoringConfig     `json:"scoring" yaml:"scoring"`
	Lexicons    LexiconConfig     `json:"lexicons" yaml:"lexicons"`
	Classifier  ClassifierConfig  `json:"classifier" yaml:"classifier"`
	HTTP        HTTPConfig        `json:"http" yaml:"http"`
	Cache       CacheConfig       `json:"cache" yaml:"cache"`
	Concurrency ConcurrencyConfig `json:"concurrency" yaml:"concurrency"`
	Output      OutputConfig      `json:"output" yaml:"output"`
}

// ScoringConfig holds every tunable constant of the scoring engine.
// Defaults reproduce the reference behavior; tests depend on them.
type ScoringConfig struct {
	Threshold       float64 `json:"threshold" yaml:"threshold"`               // Verdict is fake iff fakePercentage > Threshold (strict)
	Epsilon         float64 `json:"epsilon" yaml:"epsilon"`                   // Smoothing constant guarding division by zero
	ConfidenceBase  float64 `json:"confidence_base" yaml:"confidence_base"`   // Confidence at zero score difference
	ConfidenceSlope float64 `json:"confidence_slope" yaml:"confidence_slope"` // Confidence gained per unit of |fake - credible|
	ConfidenceMin   float64 `json:"confidence_min" yaml:"confidence_min"`
	ConfidenceMax   float64 `json:"confidence_max" yaml:"confidence_max"`
	TopWords        int     `json:"top_words" yaml:"top_words"`               // Entries kept in topPositive/topNegative
	MinClaimLength  int     `json:"min_claim_length" yaml:"min_claim_length"` // Shorter fragments are discarded
	MaxClaims       int     `json:"max_claims" yaml:"max_claims"`
}

// LexiconConfig points at optional lexicon files. When a path is empty the
// built-in lexicon for that side is used.
type LexiconConfig struct {
	FakePath     string `json:"fake_path,omitempty" yaml:"fake_path,omitempty"`
	CrediblePath string `json:"credible_path,omitempty" yaml:"credible_path,omitempty"`
}

// ClassifierConfig configures the optional remote classification service.
// When Provider is empty the engine always scores locally.
type ClassifierConfig struct {
	Provider  string        `json:"provider,omitempty" yaml:"provider,omitempty"` // "openai" or ""
	Model     string        `json:"model,omitempty" yaml:"model,omitempty"`
	APIKey    string        `json:"-" yaml:"-"` // From OPENAI_API_KEY, never written to disk
	BaseURL   string        `json:"base_url,omitempty" yaml:"base_url,omitempty"`
	Timeout   time.Duration `json:"timeout" yaml:"timeout"`
	MaxTokens int           `json:"max_tokens" yaml:"max_tokens"`
}

// HTTPConfig configures article fetching
type HTTPConfig struct {
	Timeout       time.Duration `json:"timeout" yaml:"timeout"`
	UserAgent     string        `json:"user_agent" yaml:"user_agent"`
	MaxBodyBytes  int64         `json:"max_body_bytes" yaml:"max_body_bytes"`
	RespectRobots bool          `json:"respect_robots" yaml:"respect_robots"`
}

// CacheConfig configures the content-addressed analysis cache
type CacheConfig struct {
	Enabled   bool          `json:"enabled" yaml:"enabled"`
	MemoryTTL time.Duration `json:"memory_ttl" yaml:"memory_ttl"`
	DiskDir   string        `json:"disk_dir,omitempty" yaml:"disk_dir,omitempty"` // Empty disables the disk layer
	DiskTTL   time.Duration `json:"disk_ttl" yaml:"disk_ttl"`
}

// ConcurrencyConfig configures batch processing
type ConcurrencyConfig struct {
	Workers       int     `json:"workers" yaml:"workers"`
	RatePerSecond float64 `json:"rate_per_second" yaml:"rate_per_second"` // Per-domain fetch rate for batch URLs
	RateBurst     int     `json:"rate_burst" yaml:"rate_burst"`
}

// OutputConfig configures rendering
type OutputConfig struct {
	Verbose       bool `json:"verbose" yaml:"verbose"`
	IncludeFooter bool `json:"include_footer" yaml:"include_footer"`
}

// DefaultConfig returns the built-in defaults
func DefaultConfig() *Config {
	return &Config{
		Scoring: ScoringConfig{
			Threshold:       45,
			Epsilon:         0.5,
			ConfidenceBase:  60,
			ConfidenceSlope: 20,
			ConfidenceMin:   60,
			ConfidenceMax:   95,
			TopWords:        5,
			MinClaimLength:  20,
			MaxClaims:       5,
		},
		Classifier: ClassifierConfig{
			Timeout:   30 * time.Second,
			MaxTokens: 1000,
		},
		HTTP: HTTPConfig{
			Timeout:       30 * time.Second,
			UserAgent:     "Credlens/0.1 (+https://github.com/credlens/credlens)",
			MaxBodyBytes:  2_000_000,
			RespectRobots: true,
		},
		Cache: CacheConfig{
			Enabled:   true,
			MemoryTTL: 15 * time.Minute,
			DiskTTL:   24 * time.Hour,
		},
		Concurrency: ConcurrencyConfig{
			Workers:       4,
			RatePerSecond: 2,
			RateBurst:     5,
		},
		Output: OutputConfig{
			IncludeFooter: true,
		},
	}
}
