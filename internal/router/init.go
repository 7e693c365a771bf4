package router

import (
	"github.com/promptopia/promptopia-api/internal/application"
	"github.com/promptopia/promptopia-api/internal/container"
	pginfra "github.com/promptopia/promptopia-api/internal/infrastructure/postgres"
	handlers "github.com/promptopia/promptopia-api/internal/interface/http"
	"github.com/promptopia/promptopia-api/internal/router/modules"
	"github.com/promptopia/promptopia-api/pkg/helpers"
)

// InitModules builds the repositories, services and handlers from the
// container singletons and registers every feature module. Called once
// during startup.
func InitModules(r *Registry) {
	cfg := container.GetConfig()
	logger := container.GetLogger()
	pool := container.GetPGPool()

	userRepo := pginfra.NewUserRepository(pool)
	promptRepo := pginfra.NewPromptRepository(pool)

	identity := application.NewIdentityService(
		userRepo,
		container.GetOAuth(),
		container.GetJWT(),
		container.GetRedis(),
		logger,
	)
	promptSvc := application.NewPromptService(promptRepo, logger)

	cookies := helpers.NewCookie(cfg.CookieDomain, cfg.CookieSecure)

	promptHandler := handlers.NewPromptHandler(promptSvc, logger)
	authHandler := handlers.NewAuthHandler(identity, logger, cookies, cfg.FrontendURL)
	userHandler := handlers.NewUserHandler(userRepo, logger)

	r.Add(modules.NewPromptModule(promptHandler, identity, container.GetJWT()))
	r.Add(modules.NewAuthModule(authHandler, identity, container.GetJWT()))
	r.Add(modules.NewUserModule(userHandler))
	if cfg.DebugMetricsEnabled {
		r.Add(modules.NewDebugModule())
	}
}
