package hasher

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBcrypt_Hash(t *testing.T) {
	tests := []struct {
		name     string
		password string
	}{
		{name: "simple", password: "secret1"},
		{name: "long", password: strings.Repeat("a", 70)},
		{name: "unicode", password: "пароль-秘密"},
		{name: "special chars", password: "p@ssw0rd!#$%"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBcrypt(4)

			hash, err := b.Hash(tt.password)
			require.NoError(t, err)
			assert.NotEmpty(t, hash)
			assert.NotEqual(t, tt.password, hash)
			assert.True(t, b.Compare(tt.password, hash))
		})
	}
}

func TestBcrypt_Hash_Salted(t *testing.T) {
	b := NewBcrypt(4)

	first, err := b.Hash("samePassword")
	require.NoError(t, err)
	second, err := b.Hash("samePassword")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, b.Compare("samePassword", first))
	assert.True(t, b.Compare("samePassword", second))
}

func TestBcrypt_Compare_Mismatch(t *testing.T) {
	b := NewBcrypt(4)
	hash, err := b.Hash("correctPassword")
	require.NoError(t, err)

	tests := []struct {
		name    string
		attempt string
		hash    string
	}{
		{name: "wrong password", attempt: "wrongPassword", hash: hash},
		{name: "case sensitive", attempt: "correctpassword", hash: hash},
		{name: "empty attempt", attempt: "", hash: hash},
		{name: "empty hash", attempt: "correctPassword", hash: ""},
		{name: "malformed hash", attempt: "correctPassword", hash: "not-a-bcrypt-hash"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.False(t, b.Compare(tt.attempt, tt.hash))
		})
	}
}

func TestNewBcrypt_CostFallback(t *testing.T) {
	b := NewBcrypt(0)
	assert.Equal(t, 10, b.cost)

	b = NewBcrypt(12)
	assert.Equal(t, 12, b.cost)
}
