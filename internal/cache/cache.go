package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache stores translated statements by key
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// CacheKey derives the key for a statement. The engine version is part of
// the hash so entries written by an older translator are never served.
func CacheKey(engineVersion, statement string) string {
	hash := sha256.Sum256([]byte(engineVersion + "\x00" + statement))
	return "geoshort:v1:" + hex.EncodeToString(hash[:])
}
