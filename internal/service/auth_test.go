package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/oghenefuyereo/spendwise-api/internal/logger"
	servermocks "github.com/oghenefuyereo/spendwise-api/internal/mocks"
	"github.com/oghenefuyereo/spendwise-api/internal/model"
)

func TestAuth_Register_Success(t *testing.T) {
	ctx := context.Background()
	accounts := &servermocks.AccountStore{}
	hasher := &servermocks.PasswordHasher{}
	tokens := &servermocks.TokenManager{}

	accounts.On("GetByEmail", mock.Anything, "alice@example.com").Return(model.Account{}, model.ErrNotFound)
	hasher.On("Hash", "s3cret1").Return("$2a$10$hash", nil)
	accounts.On("Create", mock.Anything, mock.MatchedBy(func(a model.Account) bool {
		hash, ok := a.Credentials.PasswordHash()
		return a.Email == "alice@example.com" && a.Name == "Alice" && ok && hash == "$2a$10$hash"
	})).Return(model.Account{ID: uuid.New(), Name: "Alice", Email: "alice@example.com"}, nil)

	a := NewAuth(accounts, hasher, tokens, logger.New(0))

	created, err := a.Register(ctx, RegisterParams{Name: " Alice ", Email: "Alice@Example.COM", Password: "s3cret1"})
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", created.Email)
	accounts.AssertExpectations(t)
}

func TestAuth_Register_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	accounts := &servermocks.AccountStore{}
	hasher := &servermocks.PasswordHasher{}
	tokens := &servermocks.TokenManager{}

	accounts.On("GetByEmail", mock.Anything, "taken@example.com").Return(model.Account{ID: uuid.New()}, nil)

	a := NewAuth(accounts, hasher, tokens, logger.New(0))

	// case and whitespace differences collapse to the same address
	_, err := a.Register(ctx, RegisterParams{Name: "Bob", Email: "  TAKEN@example.com ", Password: "s3cret1"})
	require.ErrorIs(t, err, model.ErrDuplicateEmail)
	accounts.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAuth_Register_DuplicateRaceOnCreate(t *testing.T) {
	ctx := context.Background()
	accounts := &servermocks.AccountStore{}
	hasher := &servermocks.PasswordHasher{}
	tokens := &servermocks.TokenManager{}

	accounts.On("GetByEmail", mock.Anything, "race@example.com").Return(model.Account{}, model.ErrNotFound)
	hasher.On("Hash", "s3cret1").Return("h", nil)
	accounts.On("Create", mock.Anything, mock.Anything).Return(model.Account{}, model.ErrDuplicateEmail)

	a := NewAuth(accounts, hasher, tokens, logger.New(0))

	_, err := a.Register(ctx, RegisterParams{Name: "Race", Email: "race@example.com", Password: "s3cret1"})
	require.ErrorIs(t, err, model.ErrDuplicateEmail)
}

func TestAuth_Register_Validation(t *testing.T) {
	tests := []struct {
		name   string
		params RegisterParams
	}{
		{name: "empty name", params: RegisterParams{Name: "  ", Email: "a@b.c", Password: "s3cret1"}},
		{name: "empty email", params: RegisterParams{Name: "A", Email: "", Password: "s3cret1"}},
		{name: "email without at", params: RegisterParams{Name: "A", Email: "not-an-address", Password: "s3cret1"}},
		{name: "email at starts", params: RegisterParams{Name: "A", Email: "@b.c", Password: "s3cret1"}},
		{name: "short password", params: RegisterParams{Name: "A", Email: "a@b.c", Password: "12345"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			accounts := &servermocks.AccountStore{}
			a := NewAuth(accounts, &servermocks.PasswordHasher{}, &servermocks.TokenManager{}, logger.New(0))

			_, err := a.Register(context.Background(), tt.params)
			var verr *model.ValidationError
			require.ErrorAs(t, err, &verr)
			accounts.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestAuth_Login_Success(t *testing.T) {
	ctx := context.Background()
	accounts := &servermocks.AccountStore{}
	hasher := &servermocks.PasswordHasher{}
	tokens := &servermocks.TokenManager{}

	id := uuid.New()
	account := model.Account{ID: id, Email: "alice@example.com", Credentials: model.LocalCredentials("stored-hash")}
	accounts.On("GetByEmail", mock.Anything, "alice@example.com").Return(account, nil)
	hasher.On("Compare", "s3cret1", "stored-hash").Return(true)
	tokens.On("Generate", id).Return("bearer-token", nil)

	a := NewAuth(accounts, hasher, tokens, logger.New(0))

	got, token, err := a.Login(ctx, "Alice@Example.com", "s3cret1")
	require.NoError(t, err)
	assert.Equal(t, id, got.ID)
	assert.Equal(t, "bearer-token", token)
}

func TestAuth_Login_UnknownEmail(t *testing.T) {
	accounts := &servermocks.AccountStore{}
	accounts.On("GetByEmail", mock.Anything, "ghost@example.com").Return(model.Account{}, model.ErrNotFound)

	a := NewAuth(accounts, &servermocks.PasswordHasher{}, &servermocks.TokenManager{}, logger.New(0))

	_, _, err := a.Login(context.Background(), "ghost@example.com", "whatever")
	require.ErrorIs(t, err, model.ErrInvalidCredentials)
}

func TestAuth_Login_WrongPassword(t *testing.T) {
	accounts := &servermocks.AccountStore{}
	hasher := &servermocks.PasswordHasher{}

	account := model.Account{ID: uuid.New(), Credentials: model.LocalCredentials("stored-hash")}
	accounts.On("GetByEmail", mock.Anything, "a@b.c").Return(account, nil)
	hasher.On("Compare", "wrong", "stored-hash").Return(false)

	a := NewAuth(accounts, hasher, &servermocks.TokenManager{}, logger.New(0))

	_, _, err := a.Login(context.Background(), "a@b.c", "wrong")
	require.ErrorIs(t, err, model.ErrInvalidCredentials)
}

func TestAuth_Login_ExternalOnlyAccount(t *testing.T) {
	accounts := &servermocks.AccountStore{}
	hasher := &servermocks.PasswordHasher{}

	// an account created through Google has no password hash to compare
	account := model.Account{ID: uuid.New(), Credentials: model.ExternalCredentials("google-sub-1")}
	accounts.On("GetByEmail", mock.Anything, "a@b.c").Return(account, nil)

	a := NewAuth(accounts, hasher, &servermocks.TokenManager{}, logger.New(0))

	_, _, err := a.Login(context.Background(), "a@b.c", "any-password")
	require.ErrorIs(t, err, model.ErrInvalidCredentials)
	hasher.AssertNotCalled(t, "Compare", mock.Anything, mock.Anything)
}

func TestAuth_ResolveExternalIdentity_ExistingLink(t *testing.T) {
	ctx := context.Background()
	accounts := &servermocks.AccountStore{}

	id := uuid.New()
	account := model.Account{ID: id, Email: "alice@example.com", Credentials: model.ExternalCredentials("sub-1")}
	accounts.On("GetByExternalID", mock.Anything, "sub-1").Return(account, nil)

	a := NewAuth(accounts, &servermocks.PasswordHasher{}, &servermocks.TokenManager{}, logger.New(0))

	got, err := a.ResolveExternalIdentity(ctx, model.ExternalIdentity{ExternalID: "sub-1", Email: "alice@example.com"})
	require.NoError(t, err)
	assert.Equal(t, id, got.ID)
	accounts.AssertNotCalled(t, "GetByEmail", mock.Anything, mock.Anything)
	accounts.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAuth_ResolveExternalIdentity_LinksByEmail(t *testing.T) {
	ctx := context.Background()
	accounts := &servermocks.AccountStore{}

	id := uuid.New()
	local := model.Account{ID: id, Email: "alice@example.com", Credentials: model.LocalCredentials("stored-hash")}
	accounts.On("GetByExternalID", mock.Anything, "sub-1").Return(model.Account{}, model.ErrNotFound)
	accounts.On("GetByEmail", mock.Anything, "alice@example.com").Return(local, nil)
	accounts.On("Update", mock.Anything, mock.MatchedBy(func(a model.Account) bool {
		ext, ok := a.Credentials.ExternalID()
		hash, hasHash := a.Credentials.PasswordHash()
		return a.ID == id && ok && ext == "sub-1" && hasHash && hash == "stored-hash"
	})).Return(model.Account{ID: id}, nil)

	a := NewAuth(accounts, &servermocks.PasswordHasher{}, &servermocks.TokenManager{}, logger.New(0))

	got, err := a.ResolveExternalIdentity(ctx, model.ExternalIdentity{ExternalID: "sub-1", Email: "Alice@Example.com"})
	require.NoError(t, err)
	assert.Equal(t, id, got.ID)
	accounts.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAuth_ResolveExternalIdentity_CreatesAccount(t *testing.T) {
	ctx := context.Background()
	accounts := &servermocks.AccountStore{}

	accounts.On("GetByExternalID", mock.Anything, "sub-9").Return(model.Account{}, model.ErrNotFound)
	accounts.On("GetByEmail", mock.Anything, "new@example.com").Return(model.Account{}, model.ErrNotFound)
	accounts.On("Create", mock.Anything, mock.MatchedBy(func(a model.Account) bool {
		ext, ok := a.Credentials.ExternalID()
		_, hasHash := a.Credentials.PasswordHash()
		return a.Email == "new@example.com" && a.Name == "New User" && ok && ext == "sub-9" && !hasHash
	})).Return(model.Account{ID: uuid.New(), Email: "new@example.com"}, nil)

	a := NewAuth(accounts, &servermocks.PasswordHasher{}, &servermocks.TokenManager{}, logger.New(0))

	got, err := a.ResolveExternalIdentity(ctx, model.ExternalIdentity{
		ExternalID:  "sub-9",
		Email:       "new@example.com",
		DisplayName: "New User",
	})
	require.NoError(t, err)
	assert.Equal(t, "new@example.com", got.Email)
}

func TestAuth_ResolveExternalIdentity_NameFallsBackToLocalPart(t *testing.T) {
	ctx := context.Background()
	accounts := &servermocks.AccountStore{}

	accounts.On("GetByExternalID", mock.Anything, "sub-9").Return(model.Account{}, model.ErrNotFound)
	accounts.On("GetByEmail", mock.Anything, "nameless@example.com").Return(model.Account{}, model.ErrNotFound)
	accounts.On("Create", mock.Anything, mock.MatchedBy(func(a model.Account) bool {
		return a.Name == "nameless"
	})).Return(model.Account{ID: uuid.New()}, nil)

	a := NewAuth(accounts, &servermocks.PasswordHasher{}, &servermocks.TokenManager{}, logger.New(0))

	_, err := a.ResolveExternalIdentity(ctx, model.ExternalIdentity{ExternalID: "sub-9", Email: "nameless@example.com"})
	require.NoError(t, err)
	accounts.AssertExpectations(t)
}

func TestAuth_ResolveExternalIdentity_NameFallsBackToFullEmail(t *testing.T) {
	ctx := context.Background()
	accounts := &servermocks.AccountStore{}

	// a provider may hand over an address without a local part to split on
	accounts.On("GetByExternalID", mock.Anything, "sub-x").Return(model.Account{}, model.ErrNotFound)
	accounts.On("GetByEmail", mock.Anything, "noatsign").Return(model.Account{}, model.ErrNotFound)
	accounts.On("Create", mock.Anything, mock.MatchedBy(func(a model.Account) bool {
		return a.Name == "noatsign"
	})).Return(model.Account{ID: uuid.New()}, nil)

	a := NewAuth(accounts, &servermocks.PasswordHasher{}, &servermocks.TokenManager{}, logger.New(0))

	_, err := a.ResolveExternalIdentity(ctx, model.ExternalIdentity{ExternalID: "sub-x", Email: "noatsign"})
	require.NoError(t, err)
	accounts.AssertExpectations(t)
}

func TestAuth_ResolveExternalIdentity_MissingFields(t *testing.T) {
	a := NewAuth(&servermocks.AccountStore{}, &servermocks.PasswordHasher{}, &servermocks.TokenManager{}, logger.New(0))

	_, err := a.ResolveExternalIdentity(context.Background(), model.ExternalIdentity{Email: "a@b.c"})
	require.ErrorIs(t, err, model.ErrInvalidAssertion)

	_, err = a.ResolveExternalIdentity(context.Background(), model.ExternalIdentity{ExternalID: "sub-1"})
	require.ErrorIs(t, err, model.ErrInvalidAssertion)
}

func TestAuth_ExternalLogin_IssuesToken(t *testing.T) {
	ctx := context.Background()
	accounts := &servermocks.AccountStore{}
	tokens := &servermocks.TokenManager{}

	id := uuid.New()
	accounts.On("GetByExternalID", mock.Anything, "sub-1").Return(model.Account{ID: id}, nil)
	tokens.On("Generate", id).Return("bearer-token", nil)

	a := NewAuth(accounts, &servermocks.PasswordHasher{}, tokens, logger.New(0))

	got, token, err := a.ExternalLogin(ctx, model.ExternalIdentity{ExternalID: "sub-1", Email: "a@b.c"})
	require.NoError(t, err)
	assert.Equal(t, id, got.ID)
	assert.Equal(t, "bearer-token", token)
}
