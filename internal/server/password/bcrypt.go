// Package password derives and verifies salted password hashes.
//
// The store keeps a single process-wide salt (see the salt repository);
// the hasher receives it once at construction and mixes it into every
// bcrypt input. Rotating that salt invalidates every stored hash.
package password

import (
	"golang.org/x/crypto/bcrypt"
)

// Hasher hashes plaintext passwords and verifies candidates against stored
// hashes. Verify must not distinguish where a mismatch occurred.
type Hasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) bool
}

// BcryptHasher implements Hasher on bcrypt, an adaptive hash whose cost is
// tunable via the cost parameter. bcrypt additionally embeds a random
// per-call salt in its output, so Hash is not deterministic; only the
// Verify round-trip is guaranteed.
type BcryptHasher struct {
	salt []byte
	cost int
}

// NewBcryptHasher returns a hasher bound to the store-wide salt. A cost
// outside bcrypt's valid range falls back to bcrypt.DefaultCost.
func NewBcryptHasher(salt []byte, cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{salt: salt, cost: cost}
}

// Hash returns the bcrypt hash of the salted password. bcrypt caps its
// input at 72 bytes; with a 16-byte salt prefix this leaves 56 bytes for
// the password itself, and longer passwords return an error.
func (h *BcryptHasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword(h.salted(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Verify reports whether password matches hash. It never returns an error:
// malformed hashes and mismatches both yield false. bcrypt compares the
// derived keys in constant time.
func (h *BcryptHasher) Verify(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), h.salted(password)) == nil
}

func (h *BcryptHasher) salted(password string) []byte {
	b := make([]byte, 0, len(h.salt)+len(password))
	b = append(b, h.salt...)
	b = append(b, password...)
	return b
}
