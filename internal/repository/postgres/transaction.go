package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/oghenefuyereo/spendwise-api/internal/model"
)

var _ model.TransactionStore = (*TransactionRepository)(nil)

type TransactionRepository struct {
	db *Connection
}

func NewTransactionRepository(db *Connection) *TransactionRepository {
	return &TransactionRepository{
		db: db,
	}
}

const transactionColumns = `id, account_id, amount, type, category_id, description, occurred_at, receipt_key, created_at, updated_at`

func scanTransaction(row pgx.Row) (model.Transaction, error) {
	var (
		transaction model.Transaction
		receiptKey  *string
	)
	err := row.Scan(
		&transaction.ID, &transaction.AccountID, &transaction.Amount, &transaction.Type,
		&transaction.CategoryID, &transaction.Description, &transaction.OccurredAt,
		&receiptKey, &transaction.CreatedAt, &transaction.UpdatedAt,
	)
	if err != nil {
		return model.Transaction{}, err
	}
	if receiptKey != nil {
		transaction.ReceiptKey = *receiptKey
	}
	return transaction, nil
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func (r *TransactionRepository) Create(ctx context.Context, transaction model.Transaction) (model.Transaction, error) {
	query := `INSERT INTO transactions (id, account_id, amount, type, category_id, description, occurred_at, receipt_key, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			  RETURNING ` + transactionColumns

	saved, err := scanTransaction(r.db.QueryRow(ctx, query,
		transaction.ID, transaction.AccountID, transaction.Amount, transaction.Type,
		transaction.CategoryID, transaction.Description, transaction.OccurredAt,
		nullable(transaction.ReceiptKey), transaction.CreatedAt, transaction.UpdatedAt,
	))
	if err != nil {
		return model.Transaction{}, fmt.Errorf("failed to create transaction: %w", err)
	}
	return saved, nil
}

func (r *TransactionRepository) GetByID(ctx context.Context, accountID, id uuid.UUID) (model.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE id = $1 AND account_id = $2`

	transaction, err := scanTransaction(r.db.QueryRow(ctx, query, id, accountID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Transaction{}, model.ErrNotFound
		}
		return model.Transaction{}, fmt.Errorf("failed to get transaction: %w", err)
	}
	return transaction, nil
}

func (r *TransactionRepository) GetByAccountID(ctx context.Context, accountID uuid.UUID) ([]model.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE account_id = $1 ORDER BY occurred_at DESC`

	rows, err := r.db.Query(ctx, query, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	defer rows.Close()

	transactions := make([]model.Transaction, 0)
	for rows.Next() {
		transaction, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		transactions = append(transactions, transaction)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read transactions: %w", err)
	}
	return transactions, nil
}

func (r *TransactionRepository) Update(ctx context.Context, transaction model.Transaction) (model.Transaction, error) {
	query := `UPDATE transactions
			  SET amount = $3, type = $4, category_id = $5, description = $6, occurred_at = $7, receipt_key = $8, updated_at = $9
			  WHERE id = $1 AND account_id = $2
			  RETURNING ` + transactionColumns

	saved, err := scanTransaction(r.db.QueryRow(ctx, query,
		transaction.ID, transaction.AccountID, transaction.Amount, transaction.Type,
		transaction.CategoryID, transaction.Description, transaction.OccurredAt,
		nullable(transaction.ReceiptKey), transaction.UpdatedAt,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Transaction{}, model.ErrNotFound
		}
		return model.Transaction{}, fmt.Errorf("failed to update transaction: %w", err)
	}
	return saved, nil
}

func (r *TransactionRepository) Delete(ctx context.Context, accountID, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM transactions WHERE id = $1 AND account_id = $2`, id, accountID)
	if err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotFound
	}
	return nil
}
