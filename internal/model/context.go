package model

import (
	"context"

	"github.com/google/uuid"
)

// ContextManager attaches and retrieves the authenticated account id on a
// request-scoped context.
type ContextManager interface {
	SetAccountID(ctx context.Context, accountID uuid.UUID) context.Context
	GetAccountID(ctx context.Context) (uuid.UUID, bool)
}
