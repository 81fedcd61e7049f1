package passwordhash

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// Cost is the bcrypt work factor used for new hashes.
const Cost = 10

// Hash derives a salted bcrypt digest from a plaintext password. Hashing the
// same plaintext twice yields different digests.
func Hash(password string) (string, error) {
	if password == "" {
		return "", errors.New("password is empty")
	}
	digest, err := bcrypt.GenerateFromPassword([]byte(password), Cost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// Verify reports whether plaintext matches a stored digest.
func Verify(password, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}
