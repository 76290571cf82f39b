package mocks

import (
	"context"
	"io"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/oghenefuyereo/spendwise-api/internal/model"
)

// TokenManager is a testify mock for model.TokenManager.
type TokenManager struct {
	mock.Mock
}

func (m *TokenManager) Generate(accountID uuid.UUID) (string, error) {
	args := m.Called(accountID)
	return args.String(0), args.Error(1)
}

func (m *TokenManager) Parse(token string) (uuid.UUID, error) {
	args := m.Called(token)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

// PasswordHasher is a testify mock for model.PasswordHasher.
type PasswordHasher struct {
	mock.Mock
}

func (m *PasswordHasher) Hash(plaintext string) (string, error) {
	args := m.Called(plaintext)
	return args.String(0), args.Error(1)
}

func (m *PasswordHasher) Compare(plaintext, hash string) bool {
	args := m.Called(plaintext, hash)
	return args.Bool(0)
}

// IdentityVerifier is a testify mock for model.IdentityVerifier.
type IdentityVerifier struct {
	mock.Mock
}

func (m *IdentityVerifier) VerifyAssertion(ctx context.Context, rawToken string) (model.ExternalIdentity, error) {
	args := m.Called(ctx, rawToken)
	return args.Get(0).(model.ExternalIdentity), args.Error(1)
}

func (m *IdentityVerifier) AuthURL() (string, error) {
	args := m.Called()
	return args.String(0), args.Error(1)
}

func (m *IdentityVerifier) Redeem(ctx context.Context, state, code string) (model.ExternalIdentity, error) {
	args := m.Called(ctx, state, code)
	return args.Get(0).(model.ExternalIdentity), args.Error(1)
}

// ReceiptStorage is a testify mock for model.ReceiptStorage.
type ReceiptStorage struct {
	mock.Mock
}

func (m *ReceiptStorage) Upload(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error {
	args := m.Called(ctx, key, reader, size, contentType)
	return args.Error(0)
}

func (m *ReceiptStorage) Download(ctx context.Context, key string) (io.ReadCloser, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(io.ReadCloser), args.Error(1)
}

func (m *ReceiptStorage) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *ReceiptStorage) Exists(ctx context.Context, key string) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}
