package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/UmerKhan-18/TodoApp/internal/application"
	"github.com/UmerKhan-18/TodoApp/internal/domain/entity"
	"github.com/UmerKhan-18/TodoApp/internal/interface/middleware"
	"github.com/UmerKhan-18/TodoApp/pkg/response"
	"github.com/UmerKhan-18/TodoApp/pkg/validation"
)

type TodoHandler struct {
	Svc    *application.TodoService
	Logger *logrus.Logger
}

func NewTodoHandler(svc *application.TodoService, logger *logrus.Logger) *TodoHandler {
	return &TodoHandler{Svc: svc, Logger: logger}
}

type createTodoRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	Completed   bool   `json:"completed"`
}

// updateTodoRequest is a partial patch: absent fields stay nil and the
// stored values are kept.
type updateTodoRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Completed   *bool   `json:"completed"`
}

func todoView(t *entity.Todo) gin.H {
	return gin.H{
		"id":          t.ID,
		"owner_id":    t.OwnerID,
		"title":       t.Title,
		"description": t.Description,
		"completed":   t.Completed,
		"created_at":  t.CreatedAt,
		"updated_at":  t.UpdatedAt,
	}
}

func (h *TodoHandler) fail(c *gin.Context, err error, action string) {
	switch {
	case errors.Is(err, application.ErrTodoNotFound):
		response.Error[any](c, http.StatusNotFound, "todo not found", nil)
	case errors.Is(err, application.ErrForbidden):
		response.Error[any](c, http.StatusForbidden, "forbidden", nil)
	default:
		h.Logger.WithError(err).Error(action + " failed")
		response.Error[any](c, http.StatusInternalServerError, "failed to "+action, nil)
	}
}

// List handles GET /api/Todo
func (h *TodoHandler) List(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	todos, err := h.Svc.List(c.Request.Context(), uid)
	if err != nil {
		h.fail(c, err, "list todos")
		return
	}
	views := make([]gin.H, 0, len(todos))
	for i := range todos {
		views = append(views, todoView(&todos[i]))
	}
	response.Success(c, http.StatusOK, gin.H{"todos": views}, "todos")
}

// Create handles POST /api/Todo
func (h *TodoHandler) Create(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	var req createTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	t, err := h.Svc.Create(c.Request.Context(), uid, application.CreateTodoInput{
		Title:       req.Title,
		Description: req.Description,
		Completed:   req.Completed,
	})
	if err != nil {
		h.fail(c, err, "create todo")
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"todo": todoView(t)}, "todo created successfully")
}

// Get handles GET /api/Todo/:id
func (h *TodoHandler) Get(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	t, err := h.Svc.Get(c.Request.Context(), uid, c.Param("id"))
	if err != nil {
		h.fail(c, err, "fetch todo")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"todo": todoView(t)}, "todo")
}

// Update handles PUT /api/Todo/:id
func (h *TodoHandler) Update(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	var req updateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	t, err := h.Svc.Update(c.Request.Context(), uid, c.Param("id"), application.UpdateTodoInput{
		Title:       req.Title,
		Description: req.Description,
		Completed:   req.Completed,
	})
	if err != nil {
		h.fail(c, err, "update todo")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"todo": todoView(t)}, "todo updated successfully")
}

// Delete handles DELETE /api/Todo/:id
func (h *TodoHandler) Delete(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	if err := h.Svc.Delete(c.Request.Context(), uid, c.Param("id")); err != nil {
		h.fail(c, err, "delete todo")
		return
	}
	response.Success[any](c, http.StatusOK, gin.H{"deleted": true}, "todo deleted successfully")
}

// Search handles GET /api/Todo/search?q=
func (h *TodoHandler) Search(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	q := c.Query("q")
	if q == "" {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", map[string]string{"q": "is required"})
		return
	}
	hits, err := h.Svc.Search(c.Request.Context(), uid, q, 10)
	if err != nil {
		h.fail(c, err, "search todos")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"todos": hits}, "search results")
}
