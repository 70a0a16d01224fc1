package repository

import (
	"context"

	"github.com/UmerKhan-18/TodoApp/internal/domain/entity"
)

// TodoRepository defines the interface for todo persistence. Ownership is a
// policy concern and lives in the application layer; the repository only
// provides owner-filtered listing.
type TodoRepository interface {
	Create(ctx context.Context, t *entity.Todo) error
	GetByID(ctx context.Context, id string) (*entity.Todo, error)
	ListByOwner(ctx context.Context, ownerID string) ([]entity.Todo, error)
	Update(ctx context.Context, t *entity.Todo) error
	Delete(ctx context.Context, id string) error
}
