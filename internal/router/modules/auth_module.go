package modules

import (
	"github.com/gin-gonic/gin"

	"github.com/promptopia/promptopia-api/internal/application"
	handlers "github.com/promptopia/promptopia-api/internal/interface/http"
	"github.com/promptopia/promptopia-api/internal/interface/middleware"
	"github.com/promptopia/promptopia-api/pkg/helpers"
)

// AuthModule wires the identity bridge routes.
// Public: GET /api/auth/google/login, GET /api/auth/google/callback
// Session-gated: GET /api/auth/session, POST /api/auth/logout
type AuthModule struct {
	Handler  *handlers.AuthHandler
	Identity *application.IdentityService
	JWT      *helpers.JWTManager
}

func NewAuthModule(h *handlers.AuthHandler, identity *application.IdentityService, jwt *helpers.JWTManager) *AuthModule {
	return &AuthModule{Handler: h, Identity: identity, JWT: jwt}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	rg.GET("/auth/google/login", m.Handler.GoogleLogin)
	rg.GET("/auth/google/callback", m.Handler.GoogleCallback)

	auth := rg.Group("/auth")
	auth.Use(middleware.Auth(m.Identity, m.JWT))
	{
		auth.GET("/session", m.Handler.SessionInfo)
		auth.POST("/logout", m.Handler.Logout)
	}
}
