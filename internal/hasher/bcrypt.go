package hasher

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/oghenefuyereo/spendwise-api/internal/model"
)

var _ model.PasswordHasher = (*Bcrypt)(nil)

// Bcrypt hashes passwords with a per-hash random salt and an adaptive cost
// factor. Hashing is CPU-bound; callers run it per request, never on a path
// shared with unauthenticated traffic.
type Bcrypt struct {
	cost int
}

// NewBcrypt creates a Bcrypt hasher with the given cost. Costs below the
// bcrypt minimum fall back to the library default (10).
func NewBcrypt(cost int) *Bcrypt {
	if cost < bcrypt.MinCost {
		cost = bcrypt.DefaultCost
	}
	return &Bcrypt{cost: cost}
}

// Hash returns the salted one-way hash of plaintext. Two calls with the same
// input produce different hashes.
func (b *Bcrypt) Hash(plaintext string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), b.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}

// Compare reports whether plaintext matches hash. Malformed hashes compare
// as a mismatch rather than an error.
func (b *Bcrypt) Compare(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
