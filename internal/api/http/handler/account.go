package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/oghenefuyereo/spendwise-api/internal/logger"
	"github.com/oghenefuyereo/spendwise-api/internal/model"
	"github.com/oghenefuyereo/spendwise-api/internal/service"
)

// AccountService provides profile operations.
type AccountService interface {
	Get(ctx context.Context, id uuid.UUID) (model.Account, error)
	Update(ctx context.Context, id uuid.UUID, params service.UpdateParams) (model.Account, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Account handles the profile endpoints. Every operation targets the
// authenticated account only.
type Account struct {
	accountService AccountService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAccount creates a new Account handler.
func NewAccount(accountService AccountService, contextManager model.ContextManager, logger *logger.Logger) *Account {
	return &Account{
		accountService: accountService,
		contextManager: contextManager,
		logger:         logger,
	}
}

func (h *Account) accountID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	accountID, ok := h.contextManager.GetAccountID(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "authorization token required")
		return uuid.Nil, false
	}
	return accountID, true
}

// Me returns the authenticated account's profile.
func (h *Account) Me(w http.ResponseWriter, r *http.Request) {
	accountID, ok := h.accountID(w, r)
	if !ok {
		return
	}

	account, err := h.accountService.Get(r.Context(), accountID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toAccountResponse(account))
}

type updateAccountRequest struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
}

// UpdateMe applies a partial profile update.
func (h *Account) UpdateMe(w http.ResponseWriter, r *http.Request) {
	accountID, ok := h.accountID(w, r)
	if !ok {
		return
	}

	var req updateAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	account, err := h.accountService.Update(r.Context(), accountID, service.UpdateParams{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toAccountResponse(account))
}

// DeleteMe removes the authenticated account and everything it owns.
func (h *Account) DeleteMe(w http.ResponseWriter, r *http.Request) {
	accountID, ok := h.accountID(w, r)
	if !ok {
		return
	}

	if err := h.accountService.Delete(r.Context(), accountID); err != nil {
		h.logger.Error("Account handler: deletion failed", "account_id", accountID, "error", err.Error())
		writeError(w, err)
		return
	}

	writeMessage(w, http.StatusOK, "account deleted successfully")
}
