package modules

import (
	"github.com/gin-gonic/gin"

	"github.com/promptopia/promptopia-api/internal/application"
	handlers "github.com/promptopia/promptopia-api/internal/interface/http"
	"github.com/promptopia/promptopia-api/internal/interface/middleware"
	"github.com/promptopia/promptopia-api/pkg/helpers"
)

// PromptModule wires the prompt CRUD and search routes.
// Public: GET /api/prompts, GET /api/prompts/search, GET /api/prompts/:id,
// POST /api/prompts, GET /api/users/:id/prompts
// Session-gated: PATCH /api/prompts/:id, DELETE /api/prompts/:id
type PromptModule struct {
	Handler  *handlers.PromptHandler
	Identity *application.IdentityService
	JWT      *helpers.JWTManager
}

func NewPromptModule(h *handlers.PromptHandler, identity *application.IdentityService, jwt *helpers.JWTManager) *PromptModule {
	return &PromptModule{Handler: h, Identity: identity, JWT: jwt}
}

func (m *PromptModule) Register(rg *gin.RouterGroup) {
	rg.GET("/prompts", m.Handler.List)
	rg.GET("/prompts/search", m.Handler.Search)
	rg.GET("/prompts/:id", m.Handler.Get)
	rg.POST("/prompts", m.Handler.Create)
	rg.GET("/users/:id/prompts", m.Handler.ListByUser)

	// Mutation requires a session; the service enforces ownership.
	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.Identity, m.JWT))
	{
		auth.PATCH("/prompts/:id", m.Handler.Update)
		auth.DELETE("/prompts/:id", m.Handler.Delete)
	}
}
