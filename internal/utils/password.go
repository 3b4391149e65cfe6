package utils

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword derives a bcrypt digest from the given plaintext password
// using the provided work factor.
//
// The returned string embeds the salt and the cost, so it is self-contained
// for later verification with VerifyPassword.
//
// Returns an error if the cost is outside bcrypt's supported range or the
// password exceeds bcrypt's 72-byte input limit.
func HashPassword(password string, cost int) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(digest), nil
}

// VerifyPassword reports whether the plaintext password matches the stored
// bcrypt digest. Any bcrypt error (including a plain mismatch) is reported
// as false; callers treat all failures identically to avoid leaking which
// part of the credential pair was wrong.
func VerifyPassword(digest, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}
