package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTManager_RoundTrip(t *testing.T) {
	m := NewJWTManager("test-secret", time.Hour)

	token, exp, err := m.Generate("user-1")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp, 5*time.Second)

	claims, err := m.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)

	uid, ok := m.Identity(token)
	assert.True(t, ok)
	assert.Equal(t, "user-1", uid)
}

func TestJWTManager_Expired(t *testing.T) {
	m := NewJWTManager("test-secret", -time.Minute)

	token, _, err := m.Generate("user-1")
	require.NoError(t, err)

	_, err = m.Parse(token)
	assert.Error(t, err)

	_, ok := m.Identity(token)
	assert.False(t, ok)
}

func TestJWTManager_TamperedSignature(t *testing.T) {
	m := NewJWTManager("test-secret", time.Hour)

	token, _, err := m.Generate("user-1")
	require.NoError(t, err)

	tampered := token[:len(token)-2] + "xx"
	_, ok := m.Identity(tampered)
	assert.False(t, ok)
}

func TestJWTManager_WrongSecret(t *testing.T) {
	issuer := NewJWTManager("secret-a", time.Hour)
	verifier := NewJWTManager("secret-b", time.Hour)

	token, _, err := issuer.Generate("user-1")
	require.NoError(t, err)

	_, ok := verifier.Identity(token)
	assert.False(t, ok)
}

func TestJWTManager_IdentityCollapsesAllFailures(t *testing.T) {
	m := NewJWTManager("test-secret", time.Hour)

	for _, tok := range []string{"", "garbage", "a.b.c"} {
		uid, ok := m.Identity(tok)
		assert.False(t, ok, "token %q", tok)
		assert.Empty(t, uid)
	}
}
