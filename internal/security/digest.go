package security

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"
)

// Digest hashes secret followed by salt with SHA-256 and returns the
// lowercase hex string. Deterministic, 64 characters.
func Digest(secret, salt string) string {
	h := sha256.New()
	h.Write([]byte(secret))
	h.Write([]byte(salt))
	return hex.EncodeToString(h.Sum(nil))
}

// EncodeToken wraps the client-side credential hash in base64 for storage.
// This is a reversible transform, not encryption: it only lets the raw hash
// travel and persist safely as text.
func EncodeToken(raw string) string {
	return base64.StdEncoding.EncodeToString([]byte(raw))
}

// DecodeToken reverses EncodeToken.
func DecodeToken(stored string) (string, error) {
	b, err := base64.StdEncoding.DecodeString(stored)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// VerifyToken checks a login attempt against the stored encoded token.
// The client sends Digest(clientHash, salt) where clientHash is the value
// that was encoded at registration; the salt is chosen per attempt and
// never persisted. The comparison is constant time.
func VerifyToken(storedToken, salt, attempt string) bool {
	raw, err := DecodeToken(storedToken)
	if err != nil {
		return false
	}
	expected := Digest(raw, salt)
	return subtle.ConstantTimeCompare([]byte(expected), []byte(attempt)) == 1
}
