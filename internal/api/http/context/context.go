// Package context carries the authenticated account id through a request's
// context.
package context

import (
	"context"

	"github.com/google/uuid"

	"github.com/oghenefuyereo/spendwise-api/internal/model"
)

type contextKey int

const accountIDKey contextKey = iota

var _ model.ContextManager = (*Manager)(nil)

// Manager stores and retrieves the authenticated account id on request
// contexts.
type Manager struct{}

// NewManager creates a new context manager instance.
func NewManager() *Manager {
	return &Manager{}
}

// SetAccountID returns a child context carrying the account id.
func (m *Manager) SetAccountID(ctx context.Context, accountID uuid.UUID) context.Context {
	return context.WithValue(ctx, accountIDKey, accountID)
}

// GetAccountID retrieves the account id set by the access gate. The boolean
// is false on contexts that never passed through it.
func (m *Manager) GetAccountID(ctx context.Context) (uuid.UUID, bool) {
	accountID, ok := ctx.Value(accountIDKey).(uuid.UUID)
	if !ok || accountID == uuid.Nil {
		return uuid.Nil, false
	}
	return accountID, true
}
