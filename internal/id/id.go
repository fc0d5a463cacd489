package id

import (
	"crypto/rand"
	"encoding/base64"
)

// tokenBytes gives 192 bits of entropy per token.
const tokenBytes = 24

// NewToken returns a URL-safe random bearer token (32 characters).
func NewToken() string {
	b := make([]byte, tokenBytes)
	if _, err := rand.Read(b); err != nil {
		panic("crypto/rand failed: " + err.Error())
	}
	return base64.RawURLEncoding.EncodeToString(b)
}
