package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oghenefuyereo/spendwise-api/internal/model"
)

func TestNewAccountRepository(t *testing.T) {
	db := &Connection{}
	repo := NewAccountRepository(db)

	assert.NotNil(t, repo)
	assert.Equal(t, db, repo.db)
}

func TestCredentialColumns(t *testing.T) {
	hash, ext := credentialColumns(model.LocalCredentials("h"))
	require.NotNil(t, hash)
	assert.Equal(t, "h", *hash)
	assert.Nil(t, ext)

	hash, ext = credentialColumns(model.ExternalCredentials("sub"))
	assert.Nil(t, hash)
	require.NotNil(t, ext)
	assert.Equal(t, "sub", *ext)

	linked, err := model.LocalCredentials("h").Link("sub")
	require.NoError(t, err)
	hash, ext = credentialColumns(linked)
	require.NotNil(t, hash)
	require.NotNil(t, ext)
}

func TestMapUniqueViolation_UnrelatedError(t *testing.T) {
	assert.Nil(t, mapUniqueViolation(assert.AnError))
}
