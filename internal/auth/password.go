// Package auth provides password hashing and bearer-token services for the
// job board API.
package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// defaultCost is the bcrypt work factor for production hashing. Hashing at
// this cost takes a noticeable fraction of a second, which is the point.
const defaultCost = 12

// Hasher hashes and verifies passwords with bcrypt. The work factor is a
// field so tests can run at bcrypt.MinCost instead of paying the production
// cost on every registration.
type Hasher struct {
	cost int
}

func NewHasher() *Hasher {
	return &Hasher{cost: defaultCost}
}

// NewHasherWithCost exists for tests; production callers use NewHasher.
func NewHasherWithCost(cost int) *Hasher {
	return &Hasher{cost: cost}
}

// Hash returns the bcrypt hash of plaintext. A fresh salt is generated per
// call and embedded in the output, so equal passwords hash differently.
func (h *Hasher) Hash(plaintext string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hashed), nil
}

// Verify reports whether plaintext matches the stored hash.
func (h *Hasher) Verify(hash, plaintext string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
