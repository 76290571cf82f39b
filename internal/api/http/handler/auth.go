package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/oghenefuyereo/spendwise-api/internal/logger"
	"github.com/oghenefuyereo/spendwise-api/internal/model"
	"github.com/oghenefuyereo/spendwise-api/internal/service"
)

// AuthService resolves accounts and issues bearer tokens.
type AuthService interface {
	Register(ctx context.Context, params service.RegisterParams) (model.Account, error)
	Login(ctx context.Context, email, password string) (model.Account, string, error)
	ExternalLogin(ctx context.Context, identity model.ExternalIdentity) (model.Account, string, error)
}

// Auth handles the authentication endpoints.
type Auth struct {
	authService AuthService
	verifier    model.IdentityVerifier
	logger      *logger.Logger
}

// NewAuth creates a new Auth handler.
func NewAuth(authService AuthService, verifier model.IdentityVerifier, logger *logger.Logger) *Auth {
	return &Auth{
		authService: authService,
		verifier:    verifier,
		logger:      logger,
	}
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register creates a local account.
func (h *Auth) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	account, err := h.authService.Register(r.Context(), service.RegisterParams{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.logger.Info("Auth handler: registration failed", "error", err.Error())
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toAccountResponse(account))
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login authenticates local credentials and returns a bearer token.
func (h *Auth) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Email == "" || req.Password == "" {
		writeMessage(w, http.StatusBadRequest, "email and password are required")
		return
	}

	account, token, err := h.authService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, tokenResponse{Token: token, User: toAccountResponse(account)})
}

type googleRequest struct {
	TokenID string `json:"token_id"`
}

// Google signs a user in from a client-supplied Google ID token, creating or
// linking an account as needed.
func (h *Auth) Google(w http.ResponseWriter, r *http.Request) {
	var req googleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.TokenID == "" {
		writeMessage(w, http.StatusBadRequest, "token_id is required")
		return
	}

	identity, err := h.verifier.VerifyAssertion(r.Context(), req.TokenID)
	if err != nil {
		writeError(w, err)
		return
	}

	account, token, err := h.authService.ExternalLogin(r.Context(), identity)
	if err != nil {
		h.logger.Error("Auth handler: external login failed", "error", err.Error())
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, tokenResponse{Token: token, User: toAccountResponse(account)})
}

// GoogleStart redirects the browser to the provider's consent page.
func (h *Auth) GoogleStart(w http.ResponseWriter, r *http.Request) {
	url, err := h.verifier.AuthURL()
	if err != nil {
		h.logger.Error("Auth handler: failed to build auth url", "error", err.Error())
		writeError(w, err)
		return
	}

	http.Redirect(w, r, url, http.StatusFound)
}

// GoogleCallback completes the redirect flow: the provider calls back with a
// state and code, which are redeemed for a verified identity.
func (h *Auth) GoogleCallback(w http.ResponseWriter, r *http.Request) {
	state := r.URL.Query().Get("state")
	code := r.URL.Query().Get("code")
	if state == "" || code == "" {
		writeMessage(w, http.StatusBadRequest, "state and code are required")
		return
	}

	identity, err := h.verifier.Redeem(r.Context(), state, code)
	if err != nil {
		writeError(w, err)
		return
	}

	account, token, err := h.authService.ExternalLogin(r.Context(), identity)
	if err != nil {
		h.logger.Error("Auth handler: external login failed", "error", err.Error())
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, tokenResponse{Token: token, User: toAccountResponse(account)})
}
