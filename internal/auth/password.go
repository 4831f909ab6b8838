// Package auth provides password credential hashing and verification.
package auth

import "golang.org/x/crypto/bcrypt"

// HashPassword derives an opaque credential from a plaintext password.
// bcrypt salts every hash, so two calls on the same input produce
// different credentials that both verify.
func HashPassword(plaintext string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// CheckPassword reports whether plaintext matches the stored credential.
// A malformed credential verifies as false rather than failing.
func CheckPassword(plaintext, credential string) bool {
	return bcrypt.CompareHashAndPassword([]byte(credential), []byte(plaintext)) == nil
}
