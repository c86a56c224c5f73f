// Package cryptox implements password hashing for locally stored accounts.
//
// Accounts never keep the password itself: the stored value is a SHA-256
// verifier of an argon2id-derived key, with a per-account random salt.
// Comparison is constant time.
package cryptox

import (
	"crypto/sha256"
	"crypto/subtle"

	"golang.org/x/crypto/argon2"
)

// DeriveKey stretches a password with argon2id using the given salt.
func DeriveKey(password []byte, salt []byte) []byte {
	return argon2.IDKey(password, salt, 1, 64*1024, 4, 32)
}

// MakeVerifier hashes a derived key into the value kept at rest.
func MakeVerifier(key []byte) []byte {
	hash := sha256.Sum256(key)
	return hash[:]
}

// HashPassword produces the stored verifier for a password and salt.
func HashPassword(password []byte, salt []byte) []byte {
	return MakeVerifier(DeriveKey(password, salt))
}

// VerifyPassword reports whether password+salt reproduces the stored
// verifier.
func VerifyPassword(password []byte, salt []byte, verifier []byte) bool {
	candidate := HashPassword(password, salt)
	return subtle.ConstantTimeCompare(candidate, verifier) == 1
}
