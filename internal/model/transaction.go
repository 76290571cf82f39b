package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// EntryType classifies a financial record as money in or money out.
type EntryType string

const (
	EntryIncome  EntryType = "income"
	EntryExpense EntryType = "expense"
)

// Valid reports whether the entry type is one of the known values.
func (t EntryType) Valid() bool {
	return t == EntryIncome || t == EntryExpense
}

// TransactionStore defines persistence operations for transactions. Every
// read and write is scoped by account id.
type TransactionStore interface {
	Create(ctx context.Context, transaction Transaction) (Transaction, error)
	GetByID(ctx context.Context, accountID, id uuid.UUID) (Transaction, error)
	GetByAccountID(ctx context.Context, accountID uuid.UUID) ([]Transaction, error)
	Update(ctx context.Context, transaction Transaction) (Transaction, error)
	Delete(ctx context.Context, accountID, id uuid.UUID) error
}

// Transaction represents a single financial record owned by an account.
type Transaction struct {
	ID          uuid.UUID
	AccountID   uuid.UUID
	Amount      float64
	Type        EntryType
	CategoryID  uuid.UUID
	Description string
	OccurredAt  time.Time
	ReceiptKey  string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CreateTransactionParams carries validated input for creating a transaction.
type CreateTransactionParams struct {
	AccountID   uuid.UUID
	Amount      float64
	Type        EntryType
	CategoryID  uuid.UUID
	Description string
	OccurredAt  time.Time
}

// UpdateTransactionParams carries partial input for updating a transaction.
// Nil fields are left unchanged.
type UpdateTransactionParams struct {
	Amount      *float64
	Type        *EntryType
	CategoryID  *uuid.UUID
	Description *string
	OccurredAt  *time.Time
}

// Empty reports whether no field is set.
func (p UpdateTransactionParams) Empty() bool {
	return p.Amount == nil && p.Type == nil && p.CategoryID == nil &&
		p.Description == nil && p.OccurredAt == nil
}
