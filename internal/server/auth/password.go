package auth

import (
	"golang.org/x/crypto/bcrypt"
)

// hashCost is the bcrypt work factor. Deliberately expensive: raising it
// trades login latency for brute-force resistance.
const hashCost = 10

// HashPassword derives a salted one-way digest of a plaintext password.
// bcrypt embeds a fresh random salt, so hashing the same input twice yields
// different digests.
func HashPassword(password string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(password), hashCost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// VerifyPassword reports whether password matches the stored digest.
// A mismatch is an ordinary false, never an error.
func VerifyPassword(password, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}
