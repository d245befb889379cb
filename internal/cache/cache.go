package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"
)

// Cache defines the interface for caching
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// Normalize folds a question so trivially different spellings share an entry:
// lowercase, trimmed, inner whitespace collapsed. Accents are kept.
func Normalize(question string) string {
	return strings.Join(strings.Fields(strings.ToLower(question)), " ")
}

// Key generates a cache key from a question
func Key(question string) string {
	hash := sha256.Sum256([]byte(Normalize(question)))
	return "footbot:v1:" + hex.EncodeToString(hash[:])
}
