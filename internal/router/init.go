package router

import (
	"github.com/UmerKhan-18/TodoApp/internal/application"
	"github.com/UmerKhan-18/TodoApp/internal/container"
	pginfra "github.com/UmerKhan-18/TodoApp/internal/infrastructure/postgres"
	handlers "github.com/UmerKhan-18/TodoApp/internal/interface/http"
	"github.com/UmerKhan-18/TodoApp/internal/router/modules"
)

// InitModules builds each feature module from the container singletons and
// registers it. Called once during application startup.
func InitModules(r *Registry) {
	cfg := container.GetConfig()
	pool := container.GetPGPool()
	logger := container.GetLogger()
	jwt := container.GetJWT()

	userRepo := pginfra.NewUserRepository(pool)
	todoRepo := pginfra.NewTodoRepository(pool)

	authSvc := application.NewAuthService(userRepo, jwt, logger)
	todoSvc := application.NewTodoService(todoRepo, logger, container.GetES(), cfg.ESTodosIndex)

	authHandler := handlers.NewAuthHandler(authSvc, logger, cfg, container.GetRabbitPub())
	todoHandler := handlers.NewTodoHandler(todoSvc, logger)
	pageHandler := handlers.NewPageHandler()

	r.Add(modules.NewAuthModule(authHandler))
	r.Add(modules.NewTodoModule(todoHandler, jwt))
	if cfg.DebugMetricsEnabled {
		r.Add(modules.NewDebugModule())
	}
	r.AddRoot(modules.NewPagesModule(pageHandler, jwt))
}
