// Package fingerprint derives the stable identity used to recognise the same
// posting across repeated scrapes.
package fingerprint

import (
	"crypto/sha256"
	"encoding/hex"
)

// Generate returns the hex-encoded SHA-256 digest of "url|title|employer".
func Generate(url, title, employer string) string {
	h := sha256.Sum256([]byte(url + "|" + title + "|" + employer))
	return hex.EncodeToString(h[:])
}

// ForPosting returns a fingerprint pointer when all three inputs are present,
// nil otherwise.
func ForPosting(url, title, employer string) *string {
	if url == "" || title == "" || employer == "" {
		return nil
	}
	fp := Generate(url, title, employer)
	return &fp
}
