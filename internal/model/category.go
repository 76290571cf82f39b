package model

import (
	"context"

	"github.com/google/uuid"
)

// CategoryStore defines persistence operations for categories. Reads include
// global categories (no owner) alongside the caller's own; writes only ever
// touch the caller's.
type CategoryStore interface {
	Create(ctx context.Context, category Category) (Category, error)
	GetByID(ctx context.Context, accountID, id uuid.UUID) (Category, error)
	GetVisible(ctx context.Context, accountID uuid.UUID) ([]Category, error)
	Update(ctx context.Context, category Category) (Category, error)
	Delete(ctx context.Context, accountID, id uuid.UUID) error
}

// Category labels transactions. A nil AccountID marks a global category
// visible to everyone.
type Category struct {
	ID        uuid.UUID
	AccountID *uuid.UUID
	Name      string
	Type      EntryType
}
