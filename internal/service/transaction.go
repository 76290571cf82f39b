package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/oghenefuyereo/spendwise-api/internal/logger"
	"github.com/oghenefuyereo/spendwise-api/internal/model"
)

// Transaction provides CRUD over an account's financial records and their
// receipt attachments. Every operation is scoped to the owning account;
// records belonging to other accounts are indistinguishable from missing
// ones.
type Transaction struct {
	transactions model.TransactionStore
	categories   model.CategoryStore
	receipts     model.ReceiptStorage
	logger       *logger.Logger
}

// NewTransaction creates a new Transaction service.
func NewTransaction(
	transactions model.TransactionStore,
	categories model.CategoryStore,
	receipts model.ReceiptStorage,
	logger *logger.Logger,
) *Transaction {
	return &Transaction{
		transactions: transactions,
		categories:   categories,
		receipts:     receipts,
		logger:       logger,
	}
}

// Create validates and persists a new transaction. The category must be
// visible to the account (its own or a global one).
func (s *Transaction) Create(ctx context.Context, params model.CreateTransactionParams) (model.Transaction, error) {
	if params.Amount <= 0 {
		return model.Transaction{}, model.NewValidationError("amount", "must be greater than zero")
	}
	if !params.Type.Valid() {
		return model.Transaction{}, model.NewValidationError("type", "must be income or expense")
	}
	if params.CategoryID == uuid.Nil {
		return model.Transaction{}, model.NewValidationError("category_id", "is required")
	}

	if err := s.checkCategory(ctx, params.AccountID, params.CategoryID); err != nil {
		return model.Transaction{}, err
	}

	occurredAt := params.OccurredAt
	if occurredAt.IsZero() {
		occurredAt = time.Now()
	}

	now := time.Now()
	created, err := s.transactions.Create(ctx, model.Transaction{
		ID:          uuid.New(),
		AccountID:   params.AccountID,
		Amount:      params.Amount,
		Type:        params.Type,
		CategoryID:  params.CategoryID,
		Description: params.Description,
		OccurredAt:  occurredAt,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return model.Transaction{}, fmt.Errorf("failed to create transaction: %w", err)
	}

	s.logger.Info("Transaction service: created", "transaction_id", created.ID, "account_id", params.AccountID)
	return created, nil
}

// Get returns a single transaction owned by the account.
func (s *Transaction) Get(ctx context.Context, accountID, id uuid.UUID) (model.Transaction, error) {
	transaction, err := s.transactions.GetByID(ctx, accountID, id)
	if errors.Is(err, model.ErrNotFound) {
		return model.Transaction{}, model.ErrNotFound
	}
	if err != nil {
		return model.Transaction{}, fmt.Errorf("failed to get transaction: %w", err)
	}
	return transaction, nil
}

// List returns every transaction owned by the account.
func (s *Transaction) List(ctx context.Context, accountID uuid.UUID) ([]model.Transaction, error) {
	transactions, err := s.transactions.GetByAccountID(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return transactions, nil
}

// Update applies a partial update to an owned transaction.
func (s *Transaction) Update(ctx context.Context, accountID, id uuid.UUID, params model.UpdateTransactionParams) (model.Transaction, error) {
	if params.Empty() {
		return model.Transaction{}, model.NewValidationError("body", "at least one field is required")
	}

	transaction, err := s.transactions.GetByID(ctx, accountID, id)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.Transaction{}, model.ErrNotFound
		}
		return model.Transaction{}, fmt.Errorf("failed to get transaction: %w", err)
	}

	if params.Amount != nil {
		if *params.Amount <= 0 {
			return model.Transaction{}, model.NewValidationError("amount", "must be greater than zero")
		}
		transaction.Amount = *params.Amount
	}
	if params.Type != nil {
		if !params.Type.Valid() {
			return model.Transaction{}, model.NewValidationError("type", "must be income or expense")
		}
		transaction.Type = *params.Type
	}
	if params.CategoryID != nil {
		if err := s.checkCategory(ctx, accountID, *params.CategoryID); err != nil {
			return model.Transaction{}, err
		}
		transaction.CategoryID = *params.CategoryID
	}
	if params.Description != nil {
		transaction.Description = *params.Description
	}
	if params.OccurredAt != nil {
		transaction.OccurredAt = *params.OccurredAt
	}
	transaction.UpdatedAt = time.Now()

	updated, err := s.transactions.Update(ctx, transaction)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.Transaction{}, model.ErrNotFound
		}
		return model.Transaction{}, fmt.Errorf("failed to update transaction: %w", err)
	}
	return updated, nil
}

// Delete removes an owned transaction and its receipt, if one is attached.
func (s *Transaction) Delete(ctx context.Context, accountID, id uuid.UUID) error {
	transaction, err := s.transactions.GetByID(ctx, accountID, id)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.ErrNotFound
		}
		return fmt.Errorf("failed to get transaction: %w", err)
	}

	if err := s.transactions.Delete(ctx, accountID, id); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.ErrNotFound
		}
		return fmt.Errorf("failed to delete transaction: %w", err)
	}

	if transaction.ReceiptKey != "" {
		// The record is already gone; a dangling object is logged, not fatal.
		if err := s.receipts.Delete(ctx, transaction.ReceiptKey); err != nil {
			s.logger.Error("Transaction service: failed to delete receipt object",
				"transaction_id", id, "error", err)
		}
	}

	s.logger.Info("Transaction service: deleted", "transaction_id", id, "account_id", accountID)
	return nil
}

// AttachReceipt stores a receipt object for an owned transaction and records
// its key. An existing receipt is overwritten.
func (s *Transaction) AttachReceipt(ctx context.Context, accountID, id uuid.UUID, reader io.Reader, size int64, contentType string) error {
	transaction, err := s.transactions.GetByID(ctx, accountID, id)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.ErrNotFound
		}
		return fmt.Errorf("failed to get transaction: %w", err)
	}

	key := receiptKey(accountID, id)
	if err := s.receipts.Upload(ctx, key, reader, size, contentType); err != nil {
		return fmt.Errorf("failed to upload receipt: %w", err)
	}

	if transaction.ReceiptKey != key {
		transaction.ReceiptKey = key
		transaction.UpdatedAt = time.Now()
		if _, err := s.transactions.Update(ctx, transaction); err != nil {
			return fmt.Errorf("failed to record receipt key: %w", err)
		}
	}

	s.logger.Info("Transaction service: receipt attached", "transaction_id", id, "key", key)
	return nil
}

// DownloadReceipt streams the receipt attached to an owned transaction. A
// transaction without a receipt is ErrNotFound.
func (s *Transaction) DownloadReceipt(ctx context.Context, accountID, id uuid.UUID) (io.ReadCloser, error) {
	transaction, err := s.transactions.GetByID(ctx, accountID, id)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}

	if transaction.ReceiptKey == "" {
		return nil, model.ErrNotFound
	}

	reader, err := s.receipts.Download(ctx, transaction.ReceiptKey)
	if err != nil {
		return nil, fmt.Errorf("failed to download receipt: %w", err)
	}
	return reader, nil
}

// checkCategory verifies the category exists and is visible to the account.
// Someone else's category is reported the same way as a missing one.
func (s *Transaction) checkCategory(ctx context.Context, accountID, categoryID uuid.UUID) error {
	_, err := s.categories.GetByID(ctx, accountID, categoryID)
	if errors.Is(err, model.ErrNotFound) {
		return model.NewValidationError("category_id", "unknown category")
	}
	if err != nil {
		return fmt.Errorf("failed to get category: %w", err)
	}
	return nil
}

func receiptKey(accountID, transactionID uuid.UUID) string {
	return fmt.Sprintf("receipts/%s/%s", accountID, transactionID)
}
