package core

import (
	"crypto/sha256"
	"encoding/hex"
)

// Fingerprint identifies normalized content so repeated clips can be skipped.
// Empty content has no fingerprint.
func Fingerprint(content string) string {
	if content == "" {
		return ""
	}
	h := sha256.New()
	h.Write([]byte(content))
	return hex.EncodeToString(h.Sum(nil))
}
