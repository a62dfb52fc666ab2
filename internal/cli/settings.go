package cli

import (
	"github.com/credlens/credlens/internal/model"
	"github.com/spf13/viper"
)

// buildConfig resolves the effective configuration: built-in defaults
// overlaid with whatever the config file or CREDLENS_* env vars set. CLI
// flags are applied afterwards by each command.
func buildConfig() *model.Config {
	cfg := model.DefaultConfig()

	set := func(key string, apply func()) {
		if viper.IsSet(key) {
			apply()
		}
	}

	set("scoring.threshold", func() { cfg.Scoring.Threshold = viper.GetFloat64("scoring.threshold") })
	set("scoring.epsilon", func() { cfg.Scoring.Epsilon = viper.GetFloat64("scoring.epsilon") })
	set("scoring.confidence_base", func() { cfg.Scoring.ConfidenceBase = viper.GetFloat64("scoring.confidence_base") })
	set("scoring.confidence_slope", func() { cfg.Scoring.ConfidenceSlope = viper.GetFloat64("scoring.confidence_slope") })
	set("scoring.confidence_min", func() { cfg.Scoring.ConfidenceMin = viper.GetFloat64("scoring.confidence_min") })
	set("scoring.confidence_max", func() { cfg.Scoring.ConfidenceMax = viper.GetFloat64("scoring.confidence_max") })
	set("scoring.top_words", func() { cfg.Scoring.TopWords = viper.GetInt("scoring.top_words") })
	set("scoring.min_claim_length", func() { cfg.Scoring.MinClaimLength = viper.GetInt("scoring.min_claim_length") })
	set("scoring.max_claims", func() { cfg.Scoring.MaxClaims = viper.GetInt("scoring.max_claims") })

	set("lexicons.fake_path", func() { cfg.Lexicons.FakePath = viper.GetString("lexicons.fake_path") })
	set("lexicons.credible_path", func() { cfg.Lexicons.CrediblePath = viper.GetString("lexicons.credible_path") })

	set("classifier.provider", func() { cfg.Classifier.Provider = viper.GetString("classifier.provider") })
	set("classifier.model", func() { cfg.Classifier.Model = viper.GetString("classifier.model") })
	set("classifier.base_url", func() { cfg.Classifier.BaseURL = viper.GetString("classifier.base_url") })

	set("http.timeout", func() { cfg.HTTP.Timeout = viper.GetDuration("http.timeout") })
	set("http.user_agent", func() { cfg.HTTP.UserAgent = viper.GetString("http.user_agent") })
	set("http.max_body_bytes", func() { cfg.HTTP.MaxBodyBytes = viper.GetInt64("http.max_body_bytes") })
	set("http.respect_robots", func() { cfg.HTTP.RespectRobots = viper.GetBool("http.respect_robots") })

	set("cache.enabled", func() { cfg.Cache.Enabled = viper.GetBool("cache.enabled") })
	set("cache.memory_ttl", func() { cfg.Cache.MemoryTTL = viper.GetDuration("cache.memory_ttl") })
	set("cache.disk_dir", func() { cfg.Cache.DiskDir = viper.GetString("cache.disk_dir") })
	set("cache.disk_ttl", func() { cfg.Cache.DiskTTL = viper.GetDuration("cache.disk_ttl") })

	set("concurrency.workers", func() { cfg.Concurrency.Workers = viper.GetInt("concurrency.workers") })
	set("concurrency.rate_per_second", func() { cfg.Concurrency.RatePerSecond = viper.GetFloat64("concurrency.rate_per_second") })
	set("concurrency.rate_burst", func() { cfg.Concurrency.RateBurst = viper.GetInt("concurrency.rate_burst") })

	cfg.Output.Verbose = viper.GetBool("verbose")

	return cfg
}
