package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestUser_SetPasswordNeverStoresPlaintext(t *testing.T) {
	u := &User{Email: "a@x.com"}
	require.NoError(t, u.SetPasswordCost("secret123", bcrypt.MinCost))

	assert.NotEqual(t, "secret123", u.Password)
	assert.NotContains(t, u.Password, "secret123")
}

func TestUser_ComparePassword(t *testing.T) {
	u := &User{}
	require.NoError(t, u.SetPasswordCost("secret123", bcrypt.MinCost))

	assert.True(t, u.ComparePassword("secret123"))
	assert.False(t, u.ComparePassword("wrong"))
	assert.False(t, u.ComparePassword(""))
}

func TestUser_SetPasswordRehashes(t *testing.T) {
	u := &User{}
	require.NoError(t, u.SetPasswordCost("first", bcrypt.MinCost))
	firstHash := u.Password

	require.NoError(t, u.SetPasswordCost("second", bcrypt.MinCost))
	assert.NotEqual(t, firstHash, u.Password)
	assert.False(t, u.ComparePassword("first"))
	assert.True(t, u.ComparePassword("second"))
}
