package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apicontext "github.com/oghenefuyereo/spendwise-api/internal/api/http/context"
	"github.com/oghenefuyereo/spendwise-api/internal/logger"
	servermocks "github.com/oghenefuyereo/spendwise-api/internal/mocks"
	"github.com/oghenefuyereo/spendwise-api/internal/model"
)

func TestAuthenticate_ValidToken(t *testing.T) {
	tokens := &servermocks.TokenManager{}
	cm := apicontext.NewManager()

	accountID := uuid.New()
	tokens.On("Parse", "good-token").Return(accountID, nil)

	var gotID uuid.UUID
	var gotOK bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID, gotOK = cm.GetAccountID(r.Context())
	})

	m := NewAuthenticate(tokens, cm, logger.New(0))
	req := httptest.NewRequest(http.MethodGet, "/api/users/me", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	rec := httptest.NewRecorder()

	m.Handle(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.True(t, gotOK)
	assert.Equal(t, accountID, gotID)
}

func TestAuthenticate_MissingHeader(t *testing.T) {
	m := NewAuthenticate(&servermocks.TokenManager{}, apicontext.NewManager(), logger.New(0))

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run")
	})

	req := httptest.NewRequest(http.MethodGet, "/api/users/me", nil)
	rec := httptest.NewRecorder()

	m.Handle(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "authorization token required")
}

func TestAuthenticate_WrongScheme(t *testing.T) {
	m := NewAuthenticate(&servermocks.TokenManager{}, apicontext.NewManager(), logger.New(0))

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run")
	})

	req := httptest.NewRequest(http.MethodGet, "/api/users/me", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	rec := httptest.NewRecorder()

	m.Handle(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticate_InvalidToken(t *testing.T) {
	tokens := &servermocks.TokenManager{}
	tokens.On("Parse", "bad").Return(uuid.Nil, model.ErrTokenInvalid)

	m := NewAuthenticate(tokens, apicontext.NewManager(), logger.New(0))

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run")
	})

	req := httptest.NewRequest(http.MethodGet, "/api/users/me", nil)
	req.Header.Set("Authorization", "Bearer bad")
	rec := httptest.NewRecorder()

	m.Handle(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid or expired token")
}

func TestAuthenticate_ExpiredToken(t *testing.T) {
	tokens := &servermocks.TokenManager{}
	tokens.On("Parse", "stale").Return(uuid.Nil, model.ErrTokenExpired)

	m := NewAuthenticate(tokens, apicontext.NewManager(), logger.New(0))

	req := httptest.NewRequest(http.MethodGet, "/api/users/me", nil)
	req.Header.Set("Authorization", "Bearer stale")
	rec := httptest.NewRecorder()

	m.Handle(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLogging_PassesThrough(t *testing.T) {
	l := NewLogging(logger.New(0))

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	})

	req := httptest.NewRequest(http.MethodPost, "/api/transactions", nil)
	rec := httptest.NewRecorder()

	l.Handle(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
}
