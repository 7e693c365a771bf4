package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/promptopia/promptopia-api/internal/interface/http"
)

// UserModule wires read-only user directory routes.
type UserModule struct {
	Handler *handlers.UserHandler
}

func NewUserModule(h *handlers.UserHandler) *UserModule {
	return &UserModule{Handler: h}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	rg.GET("/users/:id", m.Handler.Get)
}
