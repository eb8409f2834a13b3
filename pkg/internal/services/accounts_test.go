package services

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAccount(t *testing.T) {
	resetDatabase(t)

	user, err := NewAccount("leo", "Leo", "leo@example.com", "war-and-peace")
	require.NoError(t, err)
	assert.NotEqual(t, "war-and-peace", user.Password)
	assert.Equal(t, "Leo", user.DisplayName())

	_, err = NewAccount("leo", "", "", "another-one")
	assert.ErrorIs(t, err, ErrAccountExists)

	_, err = NewAccount("bad name!", "", "", "whatever1")
	assert.ErrorIs(t, err, ErrInvalidAccountName)
}

func TestAuthenticateAccount(t *testing.T) {
	resetDatabase(t)
	createTestUser(t, "anna")

	user, err := AuthenticateAccount("anna", "correct-horse")
	require.NoError(t, err)
	assert.Equal(t, "anna", user.Name)

	_, err = AuthenticateAccount("anna", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = AuthenticateAccount("nobody", "correct-horse")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestPermissions(t *testing.T) {
	resetDatabase(t)
	owner := createTestUser(t, "owner")
	other := createTestUser(t, "other")

	item, err := NewPost(owner, "Mine", nil)
	require.NoError(t, err)

	assert.False(t, CanCreatePost(nil))
	assert.True(t, CanCreatePost(&owner))
	assert.True(t, CanEditPost(&owner, item))
	assert.False(t, CanEditPost(&other, item))
	assert.False(t, CanEditPost(nil, item))

	viper.Set("security.administrators", []string{"owner"})
	defer viper.Set("security.administrators", []string{})
	assert.True(t, IsAdministrator(owner))
	assert.False(t, IsAdministrator(other))
}
