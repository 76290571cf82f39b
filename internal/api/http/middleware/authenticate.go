package middleware

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/oghenefuyereo/spendwise-api/internal/logger"
	"github.com/oghenefuyereo/spendwise-api/internal/model"
)

// Authenticate is the access gate: it admits requests with a valid bearer
// token and rejects everything else with 401 before any handler runs.
type Authenticate struct {
	tokens         model.TokenManager
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(tokens model.TokenManager, contextManager model.ContextManager, logger *logger.Logger) *Authenticate {
	return &Authenticate{tokens: tokens, contextManager: contextManager, logger: logger}
}

// Handle wraps next so it only runs for authenticated requests, with the
// account id available through the context manager.
func (m *Authenticate) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		accountID, err := m.authenticate(r)
		if err != nil {
			m.logger.Info("Access gate: rejected request",
				"path", r.URL.Path, "reason", err.Error())
			writeUnauthorized(w, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(m.contextManager.SetAccountID(r.Context(), accountID)))
	})
}

func (m *Authenticate) authenticate(r *http.Request) (uuid.UUID, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return uuid.Nil, model.ErrTokenMissing
	}

	accountID, err := m.tokens.Parse(strings.TrimPrefix(authHeader, "Bearer "))
	if err != nil {
		return uuid.Nil, err
	}
	if accountID == uuid.Nil {
		return uuid.Nil, model.ErrTokenInvalid
	}

	return accountID, nil
}

func writeUnauthorized(w http.ResponseWriter, err error) {
	message := "invalid or expired token"
	if err == model.ErrTokenMissing {
		message = "authorization token required"
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"message": message})
}
