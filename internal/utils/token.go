package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// HashToken returns the hex HMAC-SHA256 of a session token. Sessions are stored and
// looked up by this value so a leaked table does not expose usable tokens.
func HashToken(token, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(token))
	return hex.EncodeToString(h.Sum(nil))
}

// TokenMatches compares a token against a stored hash in constant time
func TokenMatches(token, hash, secret string) bool {
	return hmac.Equal([]byte(HashToken(token, secret)), []byte(hash))
}
