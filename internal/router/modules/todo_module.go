package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/UmerKhan-18/TodoApp/internal/container"
	handlers "github.com/UmerKhan-18/TodoApp/internal/interface/http"
	"github.com/UmerKhan-18/TodoApp/internal/interface/middleware"
	"github.com/UmerKhan-18/TodoApp/pkg/helpers"
)

// TodoModule wires todo CRUD under /api/Todo. Every route sits behind the
// auth gate; ownership checks happen in the service underneath.
type TodoModule struct {
	Handler *handlers.TodoHandler
	JWT     *helpers.JWTManager
}

func NewTodoModule(h *handlers.TodoHandler, jwt *helpers.JWTManager) *TodoModule {
	return &TodoModule{Handler: h, JWT: jwt}
}

func (m *TodoModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.JWT))
	auth.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), nil))
	{
		auth.GET("/Todo", m.Handler.List)
		auth.POST("/Todo", m.Handler.Create)
		auth.GET("/Todo/search", m.Handler.Search)
		auth.GET("/Todo/:id", m.Handler.Get)
		auth.PUT("/Todo/:id", m.Handler.Update)
		auth.DELETE("/Todo/:id", m.Handler.Delete)
	}
}
