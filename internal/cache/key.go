package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"
)

// Key builds a deterministic cache key for a query: the query name plus a
// sha256 digest of its normalized parameters.
func Key(query string, params any) string {
	b, _ := json.Marshal(params)
	sum := sha256.Sum256(b)
	return "market:" + query + ":" + hex.EncodeToString(sum[:])
}

// NormalizeParam trims, lower-cases and collapses whitespace so equivalent
// filter spellings share one cache entry.
func NormalizeParam(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return strings.Join(strings.Fields(s), " ")
}
