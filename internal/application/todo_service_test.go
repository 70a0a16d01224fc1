package application_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/UmerKhan-18/TodoApp/internal/application"
	"github.com/UmerKhan-18/TodoApp/internal/infrastructure/memory"
)

func newTodoService() *application.TodoService {
	return application.NewTodoService(memory.NewTodoRepository(), nil, nil, "")
}

func strptr(s string) *string { return &s }
func boolptr(b bool) *bool    { return &b }

func TestTodoService_CreateForcesOwner(t *testing.T) {
	svc := newTodoService()
	ctx := context.Background()

	created, err := svc.Create(ctx, "alice", application.CreateTodoInput{
		Title:       "buy milk",
		Description: "2%",
	})
	require.NoError(t, err)
	assert.Equal(t, "alice", created.OwnerID)
	assert.False(t, created.Completed)

	got, err := svc.Get(ctx, "alice", created.ID)
	require.NoError(t, err)
	assert.Equal(t, "buy milk", got.Title)
	assert.Equal(t, "2%", got.Description)
}

func TestTodoService_ForeignAccessIsForbidden(t *testing.T) {
	svc := newTodoService()
	ctx := context.Background()

	created, err := svc.Create(ctx, "alice", application.CreateTodoInput{Title: "t", Description: "d"})
	require.NoError(t, err)

	_, err = svc.Get(ctx, "bob", created.ID)
	assert.ErrorIs(t, err, application.ErrForbidden)

	_, err = svc.Update(ctx, "bob", created.ID, application.UpdateTodoInput{Title: strptr("hijacked")})
	assert.ErrorIs(t, err, application.ErrForbidden)

	err = svc.Delete(ctx, "bob", created.ID)
	assert.ErrorIs(t, err, application.ErrForbidden)

	// Untouched for the owner.
	got, err := svc.Get(ctx, "alice", created.ID)
	require.NoError(t, err)
	assert.Equal(t, "t", got.Title)
}

func TestTodoService_MissingIDIsNotFound(t *testing.T) {
	svc := newTodoService()
	ctx := context.Background()

	_, err := svc.Get(ctx, "alice", "no-such-id")
	assert.ErrorIs(t, err, application.ErrTodoNotFound)

	_, err = svc.Update(ctx, "alice", "no-such-id", application.UpdateTodoInput{Completed: boolptr(true)})
	assert.ErrorIs(t, err, application.ErrTodoNotFound)

	err = svc.Delete(ctx, "alice", "no-such-id")
	assert.ErrorIs(t, err, application.ErrTodoNotFound)
}

func TestTodoService_ListIsOwnerScoped(t *testing.T) {
	svc := newTodoService()
	ctx := context.Background()

	for _, owner := range []string{"alice", "alice", "bob", "carol"} {
		_, err := svc.Create(ctx, owner, application.CreateTodoInput{Title: "t", Description: "d"})
		require.NoError(t, err)
	}

	aliceTodos, err := svc.List(ctx, "alice")
	require.NoError(t, err)
	assert.Len(t, aliceTodos, 2)
	for _, todo := range aliceTodos {
		assert.Equal(t, "alice", todo.OwnerID)
	}

	noneTodos, err := svc.List(ctx, "nobody")
	require.NoError(t, err)
	assert.Empty(t, noneTodos)
}

func TestTodoService_PartialPatch(t *testing.T) {
	svc := newTodoService()
	ctx := context.Background()

	created, err := svc.Create(ctx, "alice", application.CreateTodoInput{
		Title:       "buy milk",
		Description: "2%",
	})
	require.NoError(t, err)

	// Only completed changes; title and description stay put.
	updated, err := svc.Update(ctx, "alice", created.ID, application.UpdateTodoInput{Completed: boolptr(true)})
	require.NoError(t, err)
	assert.Equal(t, "buy milk", updated.Title)
	assert.Equal(t, "2%", updated.Description)
	assert.True(t, updated.Completed)

	// Only the title changes; completed stays true.
	updated, err = svc.Update(ctx, "alice", created.ID, application.UpdateTodoInput{Title: strptr("buy oat milk")})
	require.NoError(t, err)
	assert.Equal(t, "buy oat milk", updated.Title)
	assert.Equal(t, "2%", updated.Description)
	assert.True(t, updated.Completed)
}

func TestTodoService_DeleteRemoves(t *testing.T) {
	svc := newTodoService()
	ctx := context.Background()

	created, err := svc.Create(ctx, "alice", application.CreateTodoInput{Title: "t", Description: "d"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, "alice", created.ID))

	_, err = svc.Get(ctx, "alice", created.ID)
	assert.ErrorIs(t, err, application.ErrTodoNotFound)
}
