package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/UmerKhan-18/TodoApp/internal/interface/http"
	"github.com/UmerKhan-18/TodoApp/internal/interface/middleware"
	"github.com/UmerKhan-18/TodoApp/pkg/helpers"
)

// PagesModule serves the UI pages on the engine root. The sign-in page lives
// at "/" and is where the route guard sends anonymous traffic.
type PagesModule struct {
	Handler *handlers.PageHandler
	JWT     *helpers.JWTManager
}

func NewPagesModule(h *handlers.PageHandler, jwt *helpers.JWTManager) *PagesModule {
	return &PagesModule{Handler: h, JWT: jwt}
}

func (m *PagesModule) Register(rg *gin.RouterGroup) {
	rg.GET("/", m.Handler.SignIn)
	rg.GET("/sign-up", m.Handler.SignUp)

	guard := middleware.RouteGuard(m.JWT, "/")
	rg.GET("/dashboard", guard, m.Handler.Dashboard)
	rg.GET("/Todo/Edit/:id", guard, m.Handler.EditTodo)
}
