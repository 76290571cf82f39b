package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/oghenefuyereo/spendwise-api/internal/logger"
	"github.com/oghenefuyereo/spendwise-api/internal/model"
)

// TransactionService provides transaction CRUD and receipt attachments.
type TransactionService interface {
	Create(ctx context.Context, params model.CreateTransactionParams) (model.Transaction, error)
	Get(ctx context.Context, accountID, id uuid.UUID) (model.Transaction, error)
	List(ctx context.Context, accountID uuid.UUID) ([]model.Transaction, error)
	Update(ctx context.Context, accountID, id uuid.UUID, params model.UpdateTransactionParams) (model.Transaction, error)
	Delete(ctx context.Context, accountID, id uuid.UUID) error
	AttachReceipt(ctx context.Context, accountID, id uuid.UUID, reader io.Reader, size int64, contentType string) error
	DownloadReceipt(ctx context.Context, accountID, id uuid.UUID) (io.ReadCloser, error)
}

// maxReceiptSize caps receipt uploads at 10 MiB.
const maxReceiptSize = 10 << 20

// Transaction handles the transaction endpoints.
type Transaction struct {
	transactionService TransactionService
	contextManager     model.ContextManager
	logger             *logger.Logger
}

// NewTransaction creates a new Transaction handler.
func NewTransaction(transactionService TransactionService, contextManager model.ContextManager, logger *logger.Logger) *Transaction {
	return &Transaction{
		transactionService: transactionService,
		contextManager:     contextManager,
		logger:             logger,
	}
}

func (h *Transaction) scope(w http.ResponseWriter, r *http.Request) (accountID uuid.UUID, ok bool) {
	accountID, ok = h.contextManager.GetAccountID(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "authorization token required")
	}
	return accountID, ok
}

func pathID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		// an unparseable id can never name an owned resource
		writeMessage(w, http.StatusNotFound, "not found")
		return uuid.Nil, false
	}
	return id, true
}

type createTransactionRequest struct {
	Amount      float64         `json:"amount"`
	Type        model.EntryType `json:"type"`
	CategoryID  uuid.UUID       `json:"category_id"`
	Description string          `json:"description"`
	OccurredAt  *time.Time      `json:"occurred_at"`
}

// Create records a new transaction.
func (h *Transaction) Create(w http.ResponseWriter, r *http.Request) {
	accountID, ok := h.scope(w, r)
	if !ok {
		return
	}

	var req createTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	params := model.CreateTransactionParams{
		AccountID:   accountID,
		Amount:      req.Amount,
		Type:        req.Type,
		CategoryID:  req.CategoryID,
		Description: req.Description,
	}
	if req.OccurredAt != nil {
		params.OccurredAt = *req.OccurredAt
	}

	transaction, err := h.transactionService.Create(r.Context(), params)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toTransactionResponse(transaction))
}

// List returns the caller's transactions.
func (h *Transaction) List(w http.ResponseWriter, r *http.Request) {
	accountID, ok := h.scope(w, r)
	if !ok {
		return
	}

	transactions, err := h.transactionService.List(r.Context(), accountID)
	if err != nil {
		writeError(w, err)
		return
	}

	response := make([]transactionResponse, 0, len(transactions))
	for _, transaction := range transactions {
		response = append(response, toTransactionResponse(transaction))
	}
	writeJSON(w, http.StatusOK, response)
}

// Get returns a single owned transaction.
func (h *Transaction) Get(w http.ResponseWriter, r *http.Request) {
	accountID, ok := h.scope(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	transaction, err := h.transactionService.Get(r.Context(), accountID, id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toTransactionResponse(transaction))
}

type updateTransactionRequest struct {
	Amount      *float64         `json:"amount"`
	Type        *model.EntryType `json:"type"`
	CategoryID  *uuid.UUID       `json:"category_id"`
	Description *string          `json:"description"`
	OccurredAt  *time.Time       `json:"occurred_at"`
}

// Update applies a partial update to an owned transaction.
func (h *Transaction) Update(w http.ResponseWriter, r *http.Request) {
	accountID, ok := h.scope(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req updateTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	transaction, err := h.transactionService.Update(r.Context(), accountID, id, model.UpdateTransactionParams{
		Amount:      req.Amount,
		Type:        req.Type,
		CategoryID:  req.CategoryID,
		Description: req.Description,
		OccurredAt:  req.OccurredAt,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toTransactionResponse(transaction))
}

// Delete removes an owned transaction.
func (h *Transaction) Delete(w http.ResponseWriter, r *http.Request) {
	accountID, ok := h.scope(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.transactionService.Delete(r.Context(), accountID, id); err != nil {
		writeError(w, err)
		return
	}

	writeMessage(w, http.StatusOK, "transaction deleted successfully")
}

// AttachReceipt stores the request body as the transaction's receipt.
func (h *Transaction) AttachReceipt(w http.ResponseWriter, r *http.Request) {
	accountID, ok := h.scope(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	contentType := r.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	body := http.MaxBytesReader(w, r.Body, maxReceiptSize)
	err := h.transactionService.AttachReceipt(r.Context(), accountID, id, body, r.ContentLength, contentType)
	if err != nil {
		writeError(w, err)
		return
	}

	writeMessage(w, http.StatusOK, "receipt attached successfully")
}

// DownloadReceipt streams the transaction's receipt back to the caller.
func (h *Transaction) DownloadReceipt(w http.ResponseWriter, r *http.Request) {
	accountID, ok := h.scope(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	reader, err := h.transactionService.DownloadReceipt(r.Context(), accountID, id)
	if err != nil {
		writeError(w, err)
		return
	}
	defer reader.Close()

	w.Header().Set("Content-Type", "application/octet-stream")
	w.WriteHeader(http.StatusOK)
	if _, err := io.Copy(w, reader); err != nil {
		h.logger.Error("Transaction handler: receipt stream interrupted",
			"transaction_id", id, "error", err.Error())
	}
}
