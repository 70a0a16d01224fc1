package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/UmerKhan-18/TodoApp/internal/container"
	handlers "github.com/UmerKhan-18/TodoApp/internal/interface/http"
	"github.com/UmerKhan-18/TodoApp/internal/interface/middleware"
)

// AuthModule wires signup/login/logout.
// Public: POST /api/auth/signUp, /api/auth/login, /api/auth/logout.
// Path casing is part of the wire contract; signUp stays camel-cased.
type AuthModule struct {
	Handler *handlers.AuthHandler
}

func NewAuthModule(h *handlers.AuthHandler) *AuthModule {
	return &AuthModule{Handler: h}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	signUpLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIPAndPath(), nil)
	loginLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIPAndPath(), nil)

	rg.POST("/auth/signUp", signUpLimiter, m.Handler.SignUp)
	rg.POST("/auth/login", loginLimiter, m.Handler.Login)
	rg.POST("/auth/logout", m.Handler.Logout)
}
