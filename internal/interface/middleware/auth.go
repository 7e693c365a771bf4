package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/promptopia/promptopia-api/internal/application"
	"github.com/promptopia/promptopia-api/pkg/helpers"
	"github.com/promptopia/promptopia-api/pkg/response"
)

// Context keys set by the auth middlewares.
const (
	CtxUserIDKey   = "userID"
	CtxUsernameKey = "userName"
	CtxEmailKey    = "userEmail"
	CtxImageKey    = "userImage"
)

// Auth validates the session cookie and ensures an active session exists
// in Redis, then exposes the session user in the Gin context. Requests
// without a valid session are rejected with 401.
func Auth(identity *application.IdentityService, jwt *helpers.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		su, ok := resolveSession(c, identity, jwt)
		if !ok {
			response.Error(c, http.StatusUnauthorized, "authentication required", nil)
			c.Abort()
			return
		}
		setSession(c, su)
		c.Next()
	}
}

func resolveSession(c *gin.Context, identity *application.IdentityService, jwt *helpers.JWTManager) (*application.SessionUser, bool) {
	token, err := c.Cookie(helpers.SessionCookie)
	if err != nil || token == "" {
		return nil, false
	}
	claims, err := jwt.ParseSessionToken(token)
	if err != nil {
		return nil, false
	}
	su, err := identity.Session(c.Request.Context(), claims.UserID, claims.SessionID)
	if err != nil {
		return nil, false
	}
	return su, true
}

func setSession(c *gin.Context, su *application.SessionUser) {
	c.Set(CtxUserIDKey, su.ID)
	c.Set(CtxUsernameKey, su.Username)
	c.Set(CtxEmailKey, su.Email)
	c.Set(CtxImageKey, su.Image)
}
