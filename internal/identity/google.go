package identity

import (
	"context"
	"strings"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/idtoken"

	"github.com/oghenefuyereo/spendwise-api/internal/config"
	"github.com/oghenefuyereo/spendwise-api/internal/logger"
	"github.com/oghenefuyereo/spendwise-api/internal/model"
)

// pendingStateTTL bounds how long a redirect flow may stay open between the
// provider redirect and the callback.
const pendingStateTTL = 15 * time.Minute

var _ model.IdentityVerifier = (*Google)(nil)

// Google verifies Google-issued identity assertions. It supports both a
// client-supplied ID token and the server redirect flow. Verification
// failures are logged with provider detail but surface only as
// model.ErrInvalidAssertion.
type Google struct {
	clientID string
	oauth    *oauth2.Config
	states   *stateStore
	logger   *logger.Logger

	// Injection points for tests.
	validate func(ctx context.Context, idToken, audience string) (*idtoken.Payload, error)
	exchange func(ctx context.Context, code string) (*oauth2.Token, error)
}

// NewGoogle creates a Google identity verifier from configuration.
func NewGoogle(cfg config.Google, logger *logger.Logger) *Google {
	oauthCfg := &oauth2.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		RedirectURL:  cfg.RedirectURL,
		Scopes:       []string{"openid", "email", "profile"},
		Endpoint:     google.Endpoint,
	}

	g := &Google{
		clientID: cfg.ClientID,
		oauth:    oauthCfg,
		states:   newStateStore(pendingStateTTL),
		logger:   logger,
		validate: idtoken.Validate,
	}
	g.exchange = func(ctx context.Context, code string) (*oauth2.Token, error) {
		return oauthCfg.Exchange(ctx, code)
	}
	return g
}

// VerifyAssertion validates a client-supplied Google ID token against the
// configured client id and extracts the stable identity.
func (g *Google) VerifyAssertion(ctx context.Context, rawToken string) (model.ExternalIdentity, error) {
	payload, err := g.validate(ctx, rawToken, g.clientID)
	if err != nil {
		g.logger.Info("Identity: ID token validation failed", "error", err.Error())
		return model.ExternalIdentity{}, model.ErrInvalidAssertion
	}

	email, _ := payload.Claims["email"].(string)
	name, _ := payload.Claims["name"].(string)
	if payload.Subject == "" || email == "" {
		g.logger.Info("Identity: ID token missing subject or email")
		return model.ExternalIdentity{}, model.ErrInvalidAssertion
	}

	return model.ExternalIdentity{
		ExternalID:  payload.Subject,
		Email:       strings.ToLower(email),
		DisplayName: name,
	}, nil
}

// AuthURL starts a redirect flow: it issues a single-use state and returns
// the provider URL the client should be redirected to.
func (g *Google) AuthURL() (string, error) {
	state, err := g.states.Issue()
	if err != nil {
		return "", err
	}
	return g.oauth.AuthCodeURL(state), nil
}

// Redeem completes a redirect flow from callback parameters: it checks the
// state, exchanges the authorization code and validates the embedded ID
// token.
func (g *Google) Redeem(ctx context.Context, state, code string) (model.ExternalIdentity, error) {
	if !g.states.Consume(state) {
		g.logger.Info("Identity: unknown or expired state on callback")
		return model.ExternalIdentity{}, model.ErrInvalidAssertion
	}
	if code == "" {
		return model.ExternalIdentity{}, model.ErrInvalidAssertion
	}

	tok, err := g.exchange(ctx, code)
	if err != nil {
		g.logger.Info("Identity: code exchange failed", "error", err.Error())
		return model.ExternalIdentity{}, model.ErrInvalidAssertion
	}

	rawToken, ok := tok.Extra("id_token").(string)
	if !ok || rawToken == "" {
		g.logger.Info("Identity: exchange response carries no ID token")
		return model.ExternalIdentity{}, model.ErrInvalidAssertion
	}

	return g.VerifyAssertion(ctx, rawToken)
}
