package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/oghenefuyereo/spendwise-api/internal/model"
)

// TransactionStore is a testify mock for model.TransactionStore.
type TransactionStore struct {
	mock.Mock
}

func (m *TransactionStore) Create(ctx context.Context, transaction model.Transaction) (model.Transaction, error) {
	args := m.Called(ctx, transaction)
	return args.Get(0).(model.Transaction), args.Error(1)
}

func (m *TransactionStore) GetByID(ctx context.Context, accountID, id uuid.UUID) (model.Transaction, error) {
	args := m.Called(ctx, accountID, id)
	return args.Get(0).(model.Transaction), args.Error(1)
}

func (m *TransactionStore) GetByAccountID(ctx context.Context, accountID uuid.UUID) ([]model.Transaction, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Transaction), args.Error(1)
}

func (m *TransactionStore) Update(ctx context.Context, transaction model.Transaction) (model.Transaction, error) {
	args := m.Called(ctx, transaction)
	return args.Get(0).(model.Transaction), args.Error(1)
}

func (m *TransactionStore) Delete(ctx context.Context, accountID, id uuid.UUID) error {
	args := m.Called(ctx, accountID, id)
	return args.Error(0)
}

// CategoryStore is a testify mock for model.CategoryStore.
type CategoryStore struct {
	mock.Mock
}

func (m *CategoryStore) Create(ctx context.Context, category model.Category) (model.Category, error) {
	args := m.Called(ctx, category)
	return args.Get(0).(model.Category), args.Error(1)
}

func (m *CategoryStore) GetByID(ctx context.Context, accountID, id uuid.UUID) (model.Category, error) {
	args := m.Called(ctx, accountID, id)
	return args.Get(0).(model.Category), args.Error(1)
}

func (m *CategoryStore) GetVisible(ctx context.Context, accountID uuid.UUID) ([]model.Category, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Category), args.Error(1)
}

func (m *CategoryStore) Update(ctx context.Context, category model.Category) (model.Category, error) {
	args := m.Called(ctx, category)
	return args.Get(0).(model.Category), args.Error(1)
}

func (m *CategoryStore) Delete(ctx context.Context, accountID, id uuid.UUID) error {
	args := m.Called(ctx, accountID, id)
	return args.Error(0)
}

// GoalStore is a testify mock for model.GoalStore.
type GoalStore struct {
	mock.Mock
}

func (m *GoalStore) Create(ctx context.Context, goal model.Goal) (model.Goal, error) {
	args := m.Called(ctx, goal)
	return args.Get(0).(model.Goal), args.Error(1)
}

func (m *GoalStore) GetByID(ctx context.Context, accountID, id uuid.UUID) (model.Goal, error) {
	args := m.Called(ctx, accountID, id)
	return args.Get(0).(model.Goal), args.Error(1)
}

func (m *GoalStore) GetByAccountID(ctx context.Context, accountID uuid.UUID) ([]model.Goal, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Goal), args.Error(1)
}

func (m *GoalStore) Update(ctx context.Context, goal model.Goal) (model.Goal, error) {
	args := m.Called(ctx, goal)
	return args.Get(0).(model.Goal), args.Error(1)
}

func (m *GoalStore) Delete(ctx context.Context, accountID, id uuid.UUID) error {
	args := m.Called(ctx, accountID, id)
	return args.Error(0)
}
