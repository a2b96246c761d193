package password_test

import (
	"lumen/shared/password"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHash(t *testing.T) {
	tests := []struct {
		name          string
		password      string
		expectedError error
	}{
		{name: "valid password", password: "Lumen2024!"},
		{name: "short password", password: "abc"},
		{name: "72 bytes", password: strings.Repeat("a", 72)},
		{name: "empty password", password: "", expectedError: password.ErrEmptyPassword},
		{name: "longer than 72 bytes", password: strings.Repeat("a", 100), expectedError: password.ErrPasswordTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := password.Hash(tt.password)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Empty(t, hash)

				return
			}

			require.NoError(t, err)
			assert.True(t, strings.HasPrefix(hash, "$2a$"), "expected bcrypt hash, got %s", hash)
			assert.NoError(t, password.Verify(tt.password, hash))
		})
	}
}

func TestVerify(t *testing.T) {
	validHash, err := password.Hash("testPassword123")
	require.NoError(t, err)

	tests := []struct {
		name          string
		password      string
		hash          string
		expectedError error
	}{
		{name: "match", password: "testPassword123", hash: validHash},
		{name: "wrong password", password: "wrongPassword", hash: validHash, expectedError: password.ErrInvalidPassword},
		{name: "empty password", password: "", hash: validHash, expectedError: password.ErrInvalidPassword},
		{name: "empty hash", password: "testPassword123", hash: "", expectedError: password.ErrInvalidPassword},
		{name: "malformed hash", password: "testPassword123", hash: "invalid_hash", expectedError: password.ErrVerifyingPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := password.Verify(tt.password, tt.hash)

			if tt.expectedError == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.expectedError)
			}
		})
	}
}

func TestHashIsSalted(t *testing.T) {
	first, err := password.Hash("same")
	require.NoError(t, err)

	second, err := password.Hash("same")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestNewHasher_ClampsCost(t *testing.T) {
	assert.Equal(t, bcrypt.MinCost, password.NewHasher(0).Cost())
	assert.Equal(t, bcrypt.MaxCost, password.NewHasher(99).Cost())
	assert.Equal(t, 12, password.NewHasher(12).Cost())
}

func TestHasher_EncodesCost(t *testing.T) {
	hasher := password.NewHasher(bcrypt.MinCost)

	hash, err := hasher.Hash("Lumen2024!")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.MinCost, cost)
	assert.NoError(t, hasher.Verify("Lumen2024!", hash))
	assert.NoError(t, password.Verify("Lumen2024!", hash))
}
