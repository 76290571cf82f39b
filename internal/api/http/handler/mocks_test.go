package handler

import (
	"context"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/oghenefuyereo/spendwise-api/internal/model"
	"github.com/oghenefuyereo/spendwise-api/internal/service"
)

func jsonBody(s string) io.Reader {
	return strings.NewReader(s)
}

type authServiceMock struct {
	mock.Mock
}

func (m *authServiceMock) Register(ctx context.Context, params service.RegisterParams) (model.Account, error) {
	args := m.Called(ctx, params)
	return args.Get(0).(model.Account), args.Error(1)
}

func (m *authServiceMock) Login(ctx context.Context, email, password string) (model.Account, string, error) {
	args := m.Called(ctx, email, password)
	return args.Get(0).(model.Account), args.String(1), args.Error(2)
}

func (m *authServiceMock) ExternalLogin(ctx context.Context, identity model.ExternalIdentity) (model.Account, string, error) {
	args := m.Called(ctx, identity)
	return args.Get(0).(model.Account), args.String(1), args.Error(2)
}

type accountServiceMock struct {
	mock.Mock
}

func (m *accountServiceMock) Get(ctx context.Context, id uuid.UUID) (model.Account, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Account), args.Error(1)
}

func (m *accountServiceMock) Update(ctx context.Context, id uuid.UUID, params service.UpdateParams) (model.Account, error) {
	args := m.Called(ctx, id, params)
	return args.Get(0).(model.Account), args.Error(1)
}

func (m *accountServiceMock) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type transactionServiceMock struct {
	mock.Mock
}

func (m *transactionServiceMock) Create(ctx context.Context, params model.CreateTransactionParams) (model.Transaction, error) {
	args := m.Called(ctx, params)
	return args.Get(0).(model.Transaction), args.Error(1)
}

func (m *transactionServiceMock) Get(ctx context.Context, accountID, id uuid.UUID) (model.Transaction, error) {
	args := m.Called(ctx, accountID, id)
	return args.Get(0).(model.Transaction), args.Error(1)
}

func (m *transactionServiceMock) List(ctx context.Context, accountID uuid.UUID) ([]model.Transaction, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Transaction), args.Error(1)
}

func (m *transactionServiceMock) Update(ctx context.Context, accountID, id uuid.UUID, params model.UpdateTransactionParams) (model.Transaction, error) {
	args := m.Called(ctx, accountID, id, params)
	return args.Get(0).(model.Transaction), args.Error(1)
}

func (m *transactionServiceMock) Delete(ctx context.Context, accountID, id uuid.UUID) error {
	args := m.Called(ctx, accountID, id)
	return args.Error(0)
}

func (m *transactionServiceMock) AttachReceipt(ctx context.Context, accountID, id uuid.UUID, reader io.Reader, size int64, contentType string) error {
	args := m.Called(ctx, accountID, id, reader, size, contentType)
	return args.Error(0)
}

func (m *transactionServiceMock) DownloadReceipt(ctx context.Context, accountID, id uuid.UUID) (io.ReadCloser, error) {
	args := m.Called(ctx, accountID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(io.ReadCloser), args.Error(1)
}

type categoryServiceMock struct {
	mock.Mock
}

func (m *categoryServiceMock) Create(ctx context.Context, accountID uuid.UUID, name string, entryType model.EntryType) (model.Category, error) {
	args := m.Called(ctx, accountID, name, entryType)
	return args.Get(0).(model.Category), args.Error(1)
}

func (m *categoryServiceMock) Get(ctx context.Context, accountID, id uuid.UUID) (model.Category, error) {
	args := m.Called(ctx, accountID, id)
	return args.Get(0).(model.Category), args.Error(1)
}

func (m *categoryServiceMock) List(ctx context.Context, accountID uuid.UUID) ([]model.Category, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Category), args.Error(1)
}

func (m *categoryServiceMock) Update(ctx context.Context, accountID, id uuid.UUID, name *string, entryType *model.EntryType) (model.Category, error) {
	args := m.Called(ctx, accountID, id, name, entryType)
	return args.Get(0).(model.Category), args.Error(1)
}

func (m *categoryServiceMock) Delete(ctx context.Context, accountID, id uuid.UUID) error {
	args := m.Called(ctx, accountID, id)
	return args.Error(0)
}

type goalServiceMock struct {
	mock.Mock
}

func (m *goalServiceMock) Create(ctx context.Context, params service.CreateGoalParams) (model.Goal, error) {
	args := m.Called(ctx, params)
	return args.Get(0).(model.Goal), args.Error(1)
}

func (m *goalServiceMock) Get(ctx context.Context, accountID, id uuid.UUID) (model.Goal, error) {
	args := m.Called(ctx, accountID, id)
	return args.Get(0).(model.Goal), args.Error(1)
}

func (m *goalServiceMock) List(ctx context.Context, accountID uuid.UUID) ([]model.Goal, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Goal), args.Error(1)
}

func (m *goalServiceMock) Update(ctx context.Context, accountID, id uuid.UUID, params model.UpdateGoalParams) (model.Goal, error) {
	args := m.Called(ctx, accountID, id, params)
	return args.Get(0).(model.Goal), args.Error(1)
}

func (m *goalServiceMock) Delete(ctx context.Context, accountID, id uuid.UUID) error {
	args := m.Called(ctx, accountID, id)
	return args.Error(0)
}
