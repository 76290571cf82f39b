package context

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_SetAndGet(t *testing.T) {
	m := NewManager()
	id := uuid.New()

	ctx := m.SetAccountID(context.Background(), id)

	got, ok := m.GetAccountID(ctx)
	require.True(t, ok)
	assert.Equal(t, id, got)
}

func TestManager_Get_Unset(t *testing.T) {
	m := NewManager()

	_, ok := m.GetAccountID(context.Background())
	assert.False(t, ok)
}

func TestManager_Get_NilID(t *testing.T) {
	m := NewManager()

	ctx := m.SetAccountID(context.Background(), uuid.Nil)
	_, ok := m.GetAccountID(ctx)
	assert.False(t, ok)
}
