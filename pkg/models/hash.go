package models

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// ContentHash hashes fetched text after whitespace normalization, so that
// layout-only churn (re-rendered pages with identical prose) does not defeat
// the unchanged-content check.
func ContentHash(text string) string {
	normalized := strings.Join(strings.Fields(text), " ")
	sum := sha256.Sum256([]byte(normalized))
	return hex.EncodeToString(sum[:])
}

// Snippet returns the leading n runes of text for evidence records.
func Snippet(text string, n int) string {
	text = strings.TrimSpace(text)
	runes := []rune(text)
	if len(runes) <= n {
		return text
	}
	return string(runes[:n])
}
