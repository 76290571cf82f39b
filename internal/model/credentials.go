package model

// AuthMeans describes which authentication paths an account carries.
type AuthMeans int

const (
	// AuthLocal means the account authenticates with a password only.
	AuthLocal AuthMeans = iota
	// AuthExternal means the account authenticates through an external
	// identity provider only and has no password.
	AuthExternal
	// AuthLinked means both a password and an external identity are set.
	AuthLinked
)

// Credentials holds an account's authentication material. The zero value is
// invalid: values are built through LocalCredentials, ExternalCredentials or
// CredentialsFromStored, so every account carries at least one
// authentication path.
type Credentials struct {
	passwordHash string
	externalID   string
}

// LocalCredentials builds credentials for a password-only account.
func LocalCredentials(passwordHash string) Credentials {
	return Credentials{passwordHash: passwordHash}
}

// ExternalCredentials builds credentials for an external-identity-only account.
func ExternalCredentials(externalID string) Credentials {
	return Credentials{externalID: externalID}
}

// CredentialsFromStored rebuilds credentials from nullable storage columns.
// Returns ErrNoAuthMeans when both columns are empty.
func CredentialsFromStored(passwordHash, externalID *string) (Credentials, error) {
	c := Credentials{}
	if passwordHash != nil {
		c.passwordHash = *passwordHash
	}
	if externalID != nil {
		c.externalID = *externalID
	}
	if c.passwordHash == "" && c.externalID == "" {
		return Credentials{}, ErrNoAuthMeans
	}
	return c, nil
}

// Means reports the authentication state of the credentials.
func (c Credentials) Means() AuthMeans {
	switch {
	case c.passwordHash != "" && c.externalID != "":
		return AuthLinked
	case c.externalID != "":
		return AuthExternal
	default:
		return AuthLocal
	}
}

// PasswordHash returns the stored hash, if a password is set.
func (c Credentials) PasswordHash() (string, bool) {
	return c.passwordHash, c.passwordHash != ""
}

// ExternalID returns the linked external identity id, if set.
func (c Credentials) ExternalID() (string, bool) {
	return c.externalID, c.externalID != ""
}

// Link returns credentials with the external identity added. The password
// hash, present or not, is left untouched. Linking over an already linked
// identity returns ErrDuplicateExternalID unless the id is identical.
func (c Credentials) Link(externalID string) (Credentials, error) {
	if c.externalID != "" && c.externalID != externalID {
		return Credentials{}, ErrDuplicateExternalID
	}
	c.externalID = externalID
	return c, nil
}

// WithPasswordHash returns credentials with the password hash replaced.
func (c Credentials) WithPasswordHash(hash string) Credentials {
	c.passwordHash = hash
	return c
}
