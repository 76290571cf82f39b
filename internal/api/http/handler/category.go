package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/oghenefuyereo/spendwise-api/internal/logger"
	"github.com/oghenefuyereo/spendwise-api/internal/model"
)

// CategoryService provides category CRUD.
type CategoryService interface {
	Create(ctx context.Context, accountID uuid.UUID, name string, entryType model.EntryType) (model.Category, error)
	Get(ctx context.Context, accountID, id uuid.UUID) (model.Category, error)
	List(ctx context.Context, accountID uuid.UUID) ([]model.Category, error)
	Update(ctx context.Context, accountID, id uuid.UUID, name *string, entryType *model.EntryType) (model.Category, error)
	Delete(ctx context.Context, accountID, id uuid.UUID) error
}

// Category handles the category endpoints.
type Category struct {
	categoryService CategoryService
	contextManager  model.ContextManager
	logger          *logger.Logger
}

// NewCategory creates a new Category handler.
func NewCategory(categoryService CategoryService, contextManager model.ContextManager, logger *logger.Logger) *Category {
	return &Category{
		categoryService: categoryService,
		contextManager:  contextManager,
		logger:          logger,
	}
}

func (h *Category) scope(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	accountID, ok := h.contextManager.GetAccountID(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "authorization token required")
	}
	return accountID, ok
}

type categoryRequest struct {
	Name string          `json:"name"`
	Type model.EntryType `json:"type"`
}

// Create adds a category owned by the caller.
func (h *Category) Create(w http.ResponseWriter, r *http.Request) {
	accountID, ok := h.scope(w, r)
	if !ok {
		return
	}

	var req categoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	category, err := h.categoryService.Create(r.Context(), accountID, req.Name, req.Type)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toCategoryResponse(category))
}

// List returns the caller's categories plus the global set.
func (h *Category) List(w http.ResponseWriter, r *http.Request) {
	accountID, ok := h.scope(w, r)
	if !ok {
		return
	}

	categories, err := h.categoryService.List(r.Context(), accountID)
	if err != nil {
		writeError(w, err)
		return
	}

	response := make([]categoryResponse, 0, len(categories))
	for _, category := range categories {
		response = append(response, toCategoryResponse(category))
	}
	writeJSON(w, http.StatusOK, response)
}

// Get returns a single visible category.
func (h *Category) Get(w http.ResponseWriter, r *http.Request) {
	accountID, ok := h.scope(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	category, err := h.categoryService.Get(r.Context(), accountID, id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toCategoryResponse(category))
}

type updateCategoryRequest struct {
	Name *string          `json:"name"`
	Type *model.EntryType `json:"type"`
}

// Update renames or retypes an owned category.
func (h *Category) Update(w http.ResponseWriter, r *http.Request) {
	accountID, ok := h.scope(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req updateCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	category, err := h.categoryService.Update(r.Context(), accountID, id, req.Name, req.Type)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toCategoryResponse(category))
}

// Delete removes an owned category.
func (h *Category) Delete(w http.ResponseWriter, r *http.Request) {
	accountID, ok := h.scope(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.categoryService.Delete(r.Context(), accountID, id); err != nil {
		writeError(w, err)
		return
	}

	writeMessage(w, http.StatusOK, "category deleted successfully")
}
