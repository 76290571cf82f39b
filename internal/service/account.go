package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/oghenefuyereo/spendwise-api/internal/logger"
	"github.com/oghenefuyereo/spendwise-api/internal/model"
)

// Account provides profile operations on the caller's own account.
type Account struct {
	accounts model.AccountStore
	hasher   model.PasswordHasher
	logger   *logger.Logger
}

// NewAccount creates a new Account service.
func NewAccount(accounts model.AccountStore, hasher model.PasswordHasher, logger *logger.Logger) *Account {
	return &Account{
		accounts: accounts,
		hasher:   hasher,
		logger:   logger,
	}
}

// UpdateParams carries partial profile input. Nil fields are left unchanged.
type UpdateParams struct {
	Name     *string
	Email    *string
	Password *string
}

// Empty reports whether no field is set.
func (p UpdateParams) Empty() bool {
	return p.Name == nil && p.Email == nil && p.Password == nil
}

// Get returns the account by id.
func (s *Account) Get(ctx context.Context, id uuid.UUID) (model.Account, error) {
	account, err := s.accounts.GetByID(ctx, id)
	if errors.Is(err, model.ErrNotFound) {
		return model.Account{}, model.ErrNotFound
	}
	if err != nil {
		return model.Account{}, fmt.Errorf("failed to get account by id: %w", err)
	}
	return account, nil
}

// Update applies a partial profile update. Email changes re-check uniqueness;
// password changes re-apply the plaintext strength precondition before
// hashing.
func (s *Account) Update(ctx context.Context, id uuid.UUID, params UpdateParams) (model.Account, error) {
	if params.Empty() {
		return model.Account{}, model.NewValidationError("body", "at least one field is required")
	}

	account, err := s.accounts.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.Account{}, model.ErrNotFound
		}
		return model.Account{}, fmt.Errorf("failed to get account by id: %w", err)
	}

	if params.Name != nil {
		name := strings.TrimSpace(*params.Name)
		if name == "" {
			return model.Account{}, model.NewValidationError("name", "must not be empty")
		}
		account.Name = name
	}

	if params.Email != nil {
		email := normalizeEmail(*params.Email)
		if err := validateEmail(email); err != nil {
			return model.Account{}, err
		}
		if email != account.Email {
			_, err := s.accounts.GetByEmail(ctx, email)
			if err == nil {
				return model.Account{}, model.ErrDuplicateEmail
			}
			if !errors.Is(err, model.ErrNotFound) {
				return model.Account{}, fmt.Errorf("failed to get account by email: %w", err)
			}
			account.Email = email
		}
	}

	if params.Password != nil {
		if len(*params.Password) < model.MinPasswordLength {
			return model.Account{}, model.NewValidationError("password",
				fmt.Sprintf("must be at least %d characters long", model.MinPasswordLength))
		}
		hash, err := s.hasher.Hash(*params.Password)
		if err != nil {
			return model.Account{}, fmt.Errorf("failed to hash password: %w", err)
		}
		account.Credentials = account.Credentials.WithPasswordHash(hash)
	}

	account.UpdatedAt = time.Now()

	updated, err := s.accounts.Update(ctx, account)
	if err != nil {
		if errors.Is(err, model.ErrDuplicateEmail) {
			return model.Account{}, model.ErrDuplicateEmail
		}
		return model.Account{}, fmt.Errorf("failed to update account: %w", err)
	}

	s.logger.Info("Account service: profile updated", "account_id", updated.ID)
	return updated, nil
}

// Delete removes the account. Owned resources are removed by the store in
// the same operation.
func (s *Account) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.accounts.Delete(ctx, id); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.ErrNotFound
		}
		return fmt.Errorf("failed to delete account: %w", err)
	}

	s.logger.Info("Account service: account deleted", "account_id", id)
	return nil
}
