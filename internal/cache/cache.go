package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache defines the interface for caching analysis results
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// AnalysisKey builds a content-addressed key for one analysis. The hash covers
// the input text and the configuration fingerprint, so a config or lexicon
// change never serves a stale verdict.
func AnalysisKey(configVersion, text string) string {
	hash := sha256.Sum256([]byte(configVersion + "\x00" + text))
	return "credlens:v1:" + hex.EncodeToString(hash[:])
}

// ForConfig builds the cache stack described by the configuration: memory
// only by default, layered with disk when a directory is set, nil when
// caching is disabled.
func ForConfig(enabled bool, memoryTTL time.Duration, diskDir string, diskTTL time.Duration) Cache {
	if !enabled {
		return nil
	}
	if diskDir != "" {
		return NewLayeredCache(memoryTTL, diskDir, diskTTL)
	}
	return NewMemoryCache(memoryTTL, 10*time.Minute)
}
