package application

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/sirupsen/logrus"

	"github.com/UmerKhan-18/TodoApp/internal/domain/entity"
	repo "github.com/UmerKhan-18/TodoApp/internal/domain/repository"
)

var (
	ErrTodoNotFound = errors.New("todo not found")
	// ErrForbidden means the todo exists but belongs to someone else.
	// Existence is disclosed; content never is.
	ErrForbidden = errors.New("forbidden")
)

// TodoService enforces the per-resource access policy around todo CRUD:
// every operation is scoped to the identity resolved by the caller, owners
// are forced on create, and reads/writes of foreign records fail closed.
type TodoService struct {
	Todos        repo.TodoRepository
	Logger       *logrus.Logger
	ES           *elasticsearch.Client
	ESTodosIndex string
}

func NewTodoService(todos repo.TodoRepository, logger *logrus.Logger, es *elasticsearch.Client, esTodosIndex string) *TodoService {
	return &TodoService{Todos: todos, Logger: logger, ES: es, ESTodosIndex: esTodosIndex}
}

type CreateTodoInput struct {
	Title       string
	Description string
	Completed   bool
}

// UpdateTodoInput carries a partial patch; nil fields are left unchanged.
type UpdateTodoInput struct {
	Title       *string
	Description *string
	Completed   *bool
}

// List returns the caller's todos only.
func (s *TodoService) List(ctx context.Context, ownerID string) ([]entity.Todo, error) {
	return s.Todos.ListByOwner(ctx, ownerID)
}

// Create stores a new todo owned by ownerID. The owner comes from the
// resolved identity, never from the request body.
func (s *TodoService) Create(ctx context.Context, ownerID string, in CreateTodoInput) (*entity.Todo, error) {
	t := &entity.Todo{
		OwnerID:     ownerID,
		Title:       in.Title,
		Description: in.Description,
		Completed:   in.Completed,
	}
	if err := s.Todos.Create(ctx, t); err != nil {
		return nil, err
	}
	s.indexTodo(ctx, t)
	return t, nil
}

// Get loads one todo, checking ownership. Missing id yields ErrTodoNotFound,
// a foreign owner yields ErrForbidden.
func (s *TodoService) Get(ctx context.Context, ownerID, id string) (*entity.Todo, error) {
	return s.loadOwned(ctx, ownerID, id)
}

// Update applies a partial patch to an owned todo.
func (s *TodoService) Update(ctx context.Context, ownerID, id string, in UpdateTodoInput) (*entity.Todo, error) {
	t, err := s.loadOwned(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	if in.Title != nil {
		t.Title = *in.Title
	}
	if in.Description != nil {
		t.Description = *in.Description
	}
	if in.Completed != nil {
		t.Completed = *in.Completed
	}
	if err := s.Todos.Update(ctx, t); err != nil {
		return nil, err
	}
	s.indexTodo(ctx, t)
	return t, nil
}

// Delete removes an owned todo.
func (s *TodoService) Delete(ctx context.Context, ownerID, id string) error {
	t, err := s.loadOwned(ctx, ownerID, id)
	if err != nil {
		return err
	}
	if err := s.Todos.Delete(ctx, t.ID); err != nil {
		return err
	}
	s.deleteTodoIndex(ctx, t.ID)
	return nil
}

func (s *TodoService) loadOwned(ctx context.Context, ownerID, id string) (*entity.Todo, error) {
	t, err := s.Todos.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrTodoNotFound
		}
		return nil, err
	}
	if t.OwnerID != ownerID {
		return nil, ErrForbidden
	}
	return t, nil
}

// indexTodo mirrors the todo into Elasticsearch, best effort. Search is a
// convenience on top of the store of record; failures are logged and ignored.
func (s *TodoService) indexTodo(ctx context.Context, t *entity.Todo) {
	if s.ES == nil || s.ESTodosIndex == "" {
		return
	}
	doc := map[string]any{
		"id":          t.ID,
		"owner_id":    t.OwnerID,
		"title":       t.Title,
		"description": t.Description,
		"completed":   t.Completed,
		"updated_at":  t.UpdatedAt.Format(time.RFC3339Nano),
	}
	b, _ := json.Marshal(doc)
	req := esapi.IndexRequest{Index: s.ESTodosIndex, DocumentID: t.ID, Body: strings.NewReader(string(b)), Refresh: "false"}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("todo_id", t.ID).Warn("es index failed")
		}
		return
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() && s.Logger != nil {
		s.Logger.WithField("status", res.Status()).WithField("todo_id", t.ID).Warn("es index response error")
	}
}

func (s *TodoService) deleteTodoIndex(ctx context.Context, id string) {
	if s.ES == nil || s.ESTodosIndex == "" {
		return
	}
	req := esapi.DeleteRequest{Index: s.ESTodosIndex, DocumentID: id}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("todo_id", id).Warn("es delete failed")
		}
		return
	}
	_ = res.Body.Close()
}

// Search runs a full-text query over the caller's todos. The owner filter is
// part of the Elasticsearch query itself so the index can never leak another
// user's records.
func (s *TodoService) Search(ctx context.Context, ownerID, q string, size int) ([]map[string]any, error) {
	if s.ES == nil || s.ESTodosIndex == "" {
		return []map[string]any{}, nil
	}
	if size <= 0 || size > 50 {
		size = 10
	}
	query := map[string]any{
		"query": map[string]any{
			"bool": map[string]any{
				"must": map[string]any{
					"multi_match": map[string]any{
						"query":  q,
						"fields": []string{"title^2", "description"},
					},
				},
				"filter": map[string]any{
					"term": map[string]any{"owner_id": ownerID},
				},
			},
		},
		"size": size,
	}
	b, _ := json.Marshal(query)

	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := s.ES.Search(
		s.ES.Search.WithContext(c),
		s.ES.Search.WithIndex(s.ESTodosIndex),
		s.ES.Search.WithBody(strings.NewReader(string(b))),
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = res.Body.Close() }()

	var parsed struct {
		Hits struct {
			Hits []struct {
				ID     string         `json:"_id"`
				Source map[string]any `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, err
	}

	out := make([]map[string]any, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		out = append(out, h.Source)
	}
	return out, nil
}
