package util

import (
	"crypto/rand"
	"encoding/hex"
)

// GenerateID returns a random hex identifier with the given prefix, used to
// tag aggregation runs in logs.
func GenerateID(prefix string) string {
	bytes := make([]byte, 8)
	if _, err := rand.Read(bytes); err != nil {
		panic(err)
	}
	return prefix + hex.EncodeToString(bytes)
}
