package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/UmerKhan-18/TodoApp/internal/domain/entity"
	"github.com/UmerKhan-18/TodoApp/internal/domain/repository"
)

// TodoRepository is the in-memory counterpart of the postgres todo store.
type TodoRepository struct {
	mu    sync.RWMutex
	todos map[string]entity.Todo
}

func NewTodoRepository() *TodoRepository {
	return &TodoRepository{todos: make(map[string]entity.Todo)}
}

func (r *TodoRepository) Create(ctx context.Context, t *entity.Todo) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now()
	t.ID = uuid.NewString()
	t.CreatedAt = now
	t.UpdatedAt = now
	r.todos[t.ID] = *t
	return nil
}

func (r *TodoRepository) GetByID(ctx context.Context, id string) (*entity.Todo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.todos[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &t, nil
}

func (r *TodoRepository) ListByOwner(ctx context.Context, ownerID string) ([]entity.Todo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entity.Todo, 0)
	for _, t := range r.todos {
		if t.OwnerID == ownerID {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *TodoRepository) Update(ctx context.Context, t *entity.Todo) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.todos[t.ID]; !ok {
		return repository.ErrNotFound
	}
	t.UpdatedAt = time.Now()
	r.todos[t.ID] = *t
	return nil
}

func (r *TodoRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.todos[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.todos, id)
	return nil
}

var _ repository.TodoRepository = (*TodoRepository)(nil)
