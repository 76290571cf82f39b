package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/oghenefuyereo/spendwise-api/internal/model"
)

var _ model.AccountStore = (*AccountRepository)(nil)

type AccountRepository struct {
	db *Connection
}

func NewAccountRepository(db *Connection) *AccountRepository {
	return &AccountRepository{
		db: db,
	}
}

const accountColumns = `id, name, email, password_hash, external_id, created_at, updated_at`

func scanAccount(row pgx.Row) (model.Account, error) {
	var (
		account      model.Account
		passwordHash *string
		externalID   *string
	)
	err := row.Scan(
		&account.ID, &account.Name, &account.Email, &passwordHash, &externalID,
		&account.CreatedAt, &account.UpdatedAt,
	)
	if err != nil {
		return model.Account{}, err
	}

	account.Credentials, err = model.CredentialsFromStored(passwordHash, externalID)
	if err != nil {
		return model.Account{}, err
	}
	return account, nil
}

func credentialColumns(c model.Credentials) (passwordHash, externalID *string) {
	if hash, ok := c.PasswordHash(); ok {
		passwordHash = &hash
	}
	if id, ok := c.ExternalID(); ok {
		externalID = &id
	}
	return passwordHash, externalID
}

// mapUniqueViolation converts constraint violations on the accounts table to
// domain errors so services see duplicates the same way with or without a
// racing writer.
func mapUniqueViolation(err error) error {
	constraint, ok := uniqueViolation(err)
	if !ok {
		return nil
	}
	switch constraint {
	case "accounts_email_idx":
		return model.ErrDuplicateEmail
	case "accounts_external_id_idx":
		return model.ErrDuplicateExternalID
	default:
		return nil
	}
}

func (r *AccountRepository) GetByID(ctx context.Context, id uuid.UUID) (model.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE id = $1`

	account, err := scanAccount(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Account{}, model.ErrNotFound
		}
		return model.Account{}, fmt.Errorf("failed to get account by id: %w", err)
	}
	return account, nil
}

func (r *AccountRepository) GetByEmail(ctx context.Context, email string) (model.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE lower(email) = lower($1)`

	account, err := scanAccount(r.db.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Account{}, model.ErrNotFound
		}
		return model.Account{}, fmt.Errorf("failed to get account by email: %w", err)
	}
	return account, nil
}

func (r *AccountRepository) GetByExternalID(ctx context.Context, externalID string) (model.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE external_id = $1`

	account, err := scanAccount(r.db.QueryRow(ctx, query, externalID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Account{}, model.ErrNotFound
		}
		return model.Account{}, fmt.Errorf("failed to get account by external id: %w", err)
	}
	return account, nil
}

func (r *AccountRepository) Create(ctx context.Context, account model.Account) (model.Account, error) {
	query := `INSERT INTO accounts (id, name, email, password_hash, external_id, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)
			  RETURNING ` + accountColumns

	passwordHash, externalID := credentialColumns(account.Credentials)

	saved, err := scanAccount(r.db.QueryRow(ctx, query,
		account.ID, account.Name, account.Email, passwordHash, externalID,
		account.CreatedAt, account.UpdatedAt,
	))
	if err != nil {
		if mapped := mapUniqueViolation(err); mapped != nil {
			return model.Account{}, mapped
		}
		return model.Account{}, fmt.Errorf("failed to create account: %w", err)
	}
	return saved, nil
}

func (r *AccountRepository) Update(ctx context.Context, account model.Account) (model.Account, error) {
	query := `UPDATE accounts
			  SET name = $2, email = $3, password_hash = $4, external_id = $5, updated_at = $6
			  WHERE id = $1
			  RETURNING ` + accountColumns

	passwordHash, externalID := credentialColumns(account.Credentials)

	saved, err := scanAccount(r.db.QueryRow(ctx, query,
		account.ID, account.Name, account.Email, passwordHash, externalID, account.UpdatedAt,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Account{}, model.ErrNotFound
		}
		if mapped := mapUniqueViolation(err); mapped != nil {
			return model.Account{}, mapped
		}
		return model.Account{}, fmt.Errorf("failed to update account: %w", err)
	}
	return saved, nil
}

func (r *AccountRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM accounts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete account: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotFound
	}
	return nil
}
