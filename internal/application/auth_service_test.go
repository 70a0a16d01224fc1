package application_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/UmerKhan-18/TodoApp/internal/application"
	"github.com/UmerKhan-18/TodoApp/internal/infrastructure/memory"
	"github.com/UmerKhan-18/TodoApp/pkg/helpers"
)

func newAuthService() *application.AuthService {
	jwt := helpers.NewJWTManager("test-secret", 168*time.Hour)
	svc := application.NewAuthService(memory.NewUserRepository(), jwt, nil)
	svc.BcryptCost = bcrypt.MinCost
	return svc
}

func TestAuthService_RegisterThenLogin(t *testing.T) {
	svc := newAuthService()
	ctx := context.Background()

	u, err := svc.Register(ctx, "alice", "a@x.com", "secret123")
	require.NoError(t, err)
	assert.NotEmpty(t, u.ID)
	assert.Equal(t, "alice", u.Username)
	assert.NotEqual(t, "secret123", u.Password)

	logged, token, exp, err := svc.Login(ctx, "a@x.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, u.ID, logged.ID)
	assert.True(t, exp.After(time.Now().Add(6*24*time.Hour)))

	// The issued token resolves back to the same identity.
	uid, ok := svc.JWT.Identity(token)
	assert.True(t, ok)
	assert.Equal(t, u.ID, uid)
}

func TestAuthService_RegisterDuplicateEmail(t *testing.T) {
	svc := newAuthService()
	ctx := context.Background()

	first, err := svc.Register(ctx, "alice", "a@x.com", "secret123")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "intruder", "a@x.com", "other456")
	assert.ErrorIs(t, err, application.ErrEmailTaken)

	// The existing record is untouched.
	stored, err := svc.Users.GetByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, first.ID, stored.ID)
	assert.Equal(t, "alice", stored.Username)
}

func TestAuthService_LoginFailuresAreIndistinguishable(t *testing.T) {
	svc := newAuthService()
	ctx := context.Background()

	_, err := svc.Register(ctx, "alice", "a@x.com", "secret123")
	require.NoError(t, err)

	_, _, _, wrongPwd := svc.Login(ctx, "a@x.com", "wrong")
	_, _, _, unknownEmail := svc.Login(ctx, "nobody@x.com", "secret123")

	assert.ErrorIs(t, wrongPwd, application.ErrInvalidCredentials)
	assert.ErrorIs(t, unknownEmail, application.ErrInvalidCredentials)
	assert.Equal(t, wrongPwd.Error(), unknownEmail.Error())
}
