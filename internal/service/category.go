package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/oghenefuyereo/spendwise-api/internal/logger"
	"github.com/oghenefuyereo/spendwise-api/internal/model"
)

// Category provides CRUD over an account's categories. Listing and lookup
// include global categories; writes only ever touch the account's own.
type Category struct {
	categories model.CategoryStore
	logger     *logger.Logger
}

// NewCategory creates a new Category service.
func NewCategory(categories model.CategoryStore, logger *logger.Logger) *Category {
	return &Category{
		categories: categories,
		logger:     logger,
	}
}

// Create persists a new category owned by the account.
func (s *Category) Create(ctx context.Context, accountID uuid.UUID, name string, entryType model.EntryType) (model.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.Category{}, model.NewValidationError("name", "must not be empty")
	}
	if !entryType.Valid() {
		return model.Category{}, model.NewValidationError("type", "must be income or expense")
	}

	owner := accountID
	created, err := s.categories.Create(ctx, model.Category{
		ID:        uuid.New(),
		AccountID: &owner,
		Name:      name,
		Type:      entryType,
	})
	if err != nil {
		return model.Category{}, fmt.Errorf("failed to create category: %w", err)
	}

	s.logger.Info("Category service: created", "category_id", created.ID, "account_id", accountID)
	return created, nil
}

// Get returns a category visible to the account, own or global.
func (s *Category) Get(ctx context.Context, accountID, id uuid.UUID) (model.Category, error) {
	category, err := s.categories.GetByID(ctx, accountID, id)
	if errors.Is(err, model.ErrNotFound) {
		return model.Category{}, model.ErrNotFound
	}
	if err != nil {
		return model.Category{}, fmt.Errorf("failed to get category: %w", err)
	}
	return category, nil
}

// List returns the categories visible to the account: its own plus the
// global set.
func (s *Category) List(ctx context.Context, accountID uuid.UUID) ([]model.Category, error) {
	categories, err := s.categories.GetVisible(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

// Update renames or retypes a category the account owns. Global categories
// are read-only and treated as not found for writes.
func (s *Category) Update(ctx context.Context, accountID, id uuid.UUID, name *string, entryType *model.EntryType) (model.Category, error) {
	if name == nil && entryType == nil {
		return model.Category{}, model.NewValidationError("body", "at least one field is required")
	}

	category, err := s.categories.GetByID(ctx, accountID, id)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.Category{}, model.ErrNotFound
		}
		return model.Category{}, fmt.Errorf("failed to get category: %w", err)
	}

	// global categories are shared reference data, nobody edits them
	if category.AccountID == nil || *category.AccountID != accountID {
		return model.Category{}, model.ErrNotFound
	}

	if name != nil {
		trimmed := strings.TrimSpace(*name)
		if trimmed == "" {
			return model.Category{}, model.NewValidationError("name", "must not be empty")
		}
		category.Name = trimmed
	}
	if entryType != nil {
		if !entryType.Valid() {
			return model.Category{}, model.NewValidationError("type", "must be income or expense")
		}
		category.Type = *entryType
	}

	updated, err := s.categories.Update(ctx, category)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.Category{}, model.ErrNotFound
		}
		return model.Category{}, fmt.Errorf("failed to update category: %w", err)
	}
	return updated, nil
}

// Delete removes a category the account owns. Global and foreign categories
// are not found.
func (s *Category) Delete(ctx context.Context, accountID, id uuid.UUID) error {
	category, err := s.categories.GetByID(ctx, accountID, id)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.ErrNotFound
		}
		return fmt.Errorf("failed to get category: %w", err)
	}

	if category.AccountID == nil || *category.AccountID != accountID {
		return model.ErrNotFound
	}

	if err := s.categories.Delete(ctx, accountID, id); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.ErrNotFound
		}
		return fmt.Errorf("failed to delete category: %w", err)
	}

	s.logger.Info("Category service: deleted", "category_id", id, "account_id", accountID)
	return nil
}
