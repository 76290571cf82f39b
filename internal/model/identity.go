package model

import "context"

// ExternalIdentity is the stable result of a verified third-party identity
// assertion.
type ExternalIdentity struct {
	ExternalID  string
	Email       string
	DisplayName string
}

// IdentityVerifier validates an externally issued identity assertion. A
// failed verification is reported as ErrInvalidAssertion; provider-internal
// detail never reaches the caller.
type IdentityVerifier interface {
	// VerifyAssertion validates a client-supplied identity token.
	VerifyAssertion(ctx context.Context, rawToken string) (ExternalIdentity, error)
	// AuthURL starts a redirect-based flow and returns the provider URL the
	// client should be sent to.
	AuthURL() (string, error)
	// Redeem completes a redirect-based flow from the provider's callback
	// parameters.
	Redeem(ctx context.Context, state, code string) (ExternalIdentity, error)
}
