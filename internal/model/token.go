package model

import "github.com/google/uuid"

// TokenManager mints and validates signed, time-bound bearer tokens encoding
// an account id. Parsing is pure: it must not touch any store.
type TokenManager interface {
	Generate(accountID uuid.UUID) (string, error)
	Parse(token string) (uuid.UUID, error)
}
