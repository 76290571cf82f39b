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

// Auth resolves accounts from local credentials or verified external
// identities and issues bearer tokens.
type Auth struct {
	accounts model.AccountStore
	hasher   model.PasswordHasher
	tokens   model.TokenManager
	logger   *logger.Logger
}

// NewAuth creates a new Auth service.
func NewAuth(
	accounts model.AccountStore,
	hasher model.PasswordHasher,
	tokens model.TokenManager,
	logger *logger.Logger,
) *Auth {
	return &Auth{
		accounts: accounts,
		hasher:   hasher,
		tokens:   tokens,
		logger:   logger,
	}
}

// RegisterParams carries registration input. Password is plaintext and must
// never be logged or persisted.
type RegisterParams struct {
	Name     string
	Email    string
	Password string
}

// Register creates a local account with a freshly hashed password.
func (a *Auth) Register(ctx context.Context, params RegisterParams) (model.Account, error) {
	name := strings.TrimSpace(params.Name)
	email := normalizeEmail(params.Email)

	if name == "" {
		return model.Account{}, model.NewValidationError("name", "must not be empty")
	}
	if err := validateEmail(email); err != nil {
		return model.Account{}, err
	}
	if len(params.Password) < model.MinPasswordLength {
		return model.Account{}, model.NewValidationError("password",
			fmt.Sprintf("must be at least %d characters long", model.MinPasswordLength))
	}

	_, err := a.accounts.GetByEmail(ctx, email)
	if err == nil {
		a.logger.Info("Auth service: registration rejected, email taken", "email", email)
		return model.Account{}, model.ErrDuplicateEmail
	}
	if !errors.Is(err, model.ErrNotFound) {
		return model.Account{}, fmt.Errorf("failed to get account by email: %w", err)
	}

	hash, err := a.hasher.Hash(params.Password)
	if err != nil {
		return model.Account{}, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	account := model.Account{
		ID:          uuid.New(),
		Name:        name,
		Email:       email,
		Credentials: model.LocalCredentials(hash),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	// The pre-check above is advisory only. A concurrent registration with
	// the same email is caught by the store's uniqueness constraint and
	// surfaces as ErrDuplicateEmail here.
	created, err := a.accounts.Create(ctx, account)
	if err != nil {
		if errors.Is(err, model.ErrDuplicateEmail) {
			return model.Account{}, model.ErrDuplicateEmail
		}
		return model.Account{}, fmt.Errorf("failed to create account: %w", err)
	}

	a.logger.Info("Auth service: account registered", "account_id", created.ID)
	return created, nil
}

// Login authenticates local credentials and returns the account with a fresh
// bearer token. All failure modes return ErrInvalidCredentials; they are
// distinguished only in logs to avoid account enumeration.
func (a *Auth) Login(ctx context.Context, email, password string) (model.Account, string, error) {
	email = normalizeEmail(email)

	account, err := a.accounts.GetByEmail(ctx, email)
	if errors.Is(err, model.ErrNotFound) {
		a.logger.Info("Auth service: login failed, unknown email", "email", email)
		return model.Account{}, "", model.ErrInvalidCredentials
	}
	if err != nil {
		return model.Account{}, "", fmt.Errorf("failed to get account by email: %w", err)
	}

	hash, ok := account.Credentials.PasswordHash()
	if !ok {
		a.logger.Info("Auth service: login failed, external-identity-only account",
			"account_id", account.ID)
		return model.Account{}, "", model.ErrInvalidCredentials
	}

	if !a.hasher.Compare(password, hash) {
		a.logger.Info("Auth service: login failed, password mismatch", "account_id", account.ID)
		return model.Account{}, "", model.ErrInvalidCredentials
	}

	token, err := a.tokens.Generate(account.ID)
	if err != nil {
		return model.Account{}, "", fmt.Errorf("failed to issue token: %w", err)
	}

	a.logger.Info("Auth service: login succeeded", "account_id", account.ID)
	return account, token, nil
}

// ExternalLogin resolves a verified external identity to an account and
// issues a bearer token for it.
func (a *Auth) ExternalLogin(ctx context.Context, identity model.ExternalIdentity) (model.Account, string, error) {
	account, err := a.ResolveExternalIdentity(ctx, identity)
	if err != nil {
		return model.Account{}, "", err
	}

	token, err := a.tokens.Generate(account.ID)
	if err != nil {
		return model.Account{}, "", fmt.Errorf("failed to issue token: %w", err)
	}

	return account, token, nil
}

// ResolveExternalIdentity finds or creates the account for a verified
// external identity. Lookup order matters: an existing external link wins, a
// matching email links the identity onto the local account, and only then is
// a fresh account created. This never overwrites an existing link and never
// duplicates an account for a user who registered locally first.
func (a *Auth) ResolveExternalIdentity(ctx context.Context, identity model.ExternalIdentity) (model.Account, error) {
	if identity.ExternalID == "" || identity.Email == "" {
		return model.Account{}, model.ErrInvalidAssertion
	}
	email := normalizeEmail(identity.Email)

	account, err := a.accounts.GetByExternalID(ctx, identity.ExternalID)
	if err == nil {
		return account, nil
	}
	if !errors.Is(err, model.ErrNotFound) {
		return model.Account{}, fmt.Errorf("failed to get account by external id: %w", err)
	}

	account, err = a.accounts.GetByEmail(ctx, email)
	if err == nil {
		linked, linkErr := account.Credentials.Link(identity.ExternalID)
		if linkErr != nil {
			return model.Account{}, linkErr
		}
		account.Credentials = linked
		account.UpdatedAt = time.Now()

		updated, updateErr := a.accounts.Update(ctx, account)
		if updateErr != nil {
			if errors.Is(updateErr, model.ErrDuplicateExternalID) {
				return model.Account{}, model.ErrDuplicateExternalID
			}
			return model.Account{}, fmt.Errorf("failed to link external identity: %w", updateErr)
		}

		a.logger.Info("Auth service: linked external identity", "account_id", updated.ID)
		return updated, nil
	}
	if !errors.Is(err, model.ErrNotFound) {
		return model.Account{}, fmt.Errorf("failed to get account by email: %w", err)
	}

	name := strings.TrimSpace(identity.DisplayName)
	if name == "" {
		if at := strings.Index(email, "@"); at > 0 {
			name = email[:at]
		} else {
			name = email
		}
	}

	now := time.Now()
	created, err := a.accounts.Create(ctx, model.Account{
		ID:          uuid.New(),
		Name:        name,
		Email:       email,
		Credentials: model.ExternalCredentials(identity.ExternalID),
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		if errors.Is(err, model.ErrDuplicateEmail) || errors.Is(err, model.ErrDuplicateExternalID) {
			return model.Account{}, err
		}
		return model.Account{}, fmt.Errorf("failed to create account: %w", err)
	}

	a.logger.Info("Auth service: account created from external identity", "account_id", created.ID)
	return created, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func validateEmail(email string) error {
	if email == "" {
		return model.NewValidationError("email", "must not be empty")
	}
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return model.NewValidationError("email", "must be a valid address")
	}
	return nil
}
