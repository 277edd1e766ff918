package util

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashUserKey derives the object-store namespace for a user ID. Guest and
// Google IDs contain ':' so the raw value never appears in keys or paths.
func HashUserKey(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}
