package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// AccountStore defines persistence operations for accounts.
type AccountStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (Account, error)
	GetByEmail(ctx context.Context, email string) (Account, error)
	GetByExternalID(ctx context.Context, externalID string) (Account, error)
	Create(ctx context.Context, account Account) (Account, error)
	Update(ctx context.Context, account Account) (Account, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Account represents a stored account with its authentication material.
// Email is always stored lowercase.
type Account struct {
	ID          uuid.UUID
	Name        string
	Email       string
	Credentials Credentials
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// PasswordHasher applies a salted one-way transform to plaintext passwords.
// Compare must tolerate malformed hashes and report them as a mismatch.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Compare(plaintext, hash string) bool
}

// MinPasswordLength is the minimum accepted plaintext password length,
// enforced before hashing.
const MinPasswordLength = 6
