package handlers

import (
	"crypto/rand"
	"encoding/hex"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/promptopia/promptopia-api/internal/application"
	"github.com/promptopia/promptopia-api/internal/interface/middleware"
	"github.com/promptopia/promptopia-api/pkg/helpers"
	"github.com/promptopia/promptopia-api/pkg/response"
)

// AuthHandler exposes the identity bridge over HTTP: the Google redirect,
// the callback that ensures a directory entry and grants a session, and
// the session/logout endpoints.
type AuthHandler struct {
	Identity    *application.IdentityService
	Logger      *logrus.Logger
	Cookies     *helpers.CookieManager
	FrontendURL string
}

func NewAuthHandler(identity *application.IdentityService, logger *logrus.Logger, cookies *helpers.CookieManager, frontendURL string) *AuthHandler {
	return &AuthHandler{Identity: identity, Logger: logger, Cookies: cookies, FrontendURL: frontendURL}
}

// GoogleLogin redirects the browser to the provider consent page with a
// cookie-bound state nonce.
func (h *AuthHandler) GoogleLogin(c *gin.Context) {
	state := randomState()
	h.Cookies.SetOAuthState(c, state)
	c.Redirect(http.StatusFound, h.Identity.AuthCodeURL(state))
}

// GoogleCallback completes the sign-in. Every failure fails closed: the
// browser is sent back to the front end without a session, never a 500.
func (h *AuthHandler) GoogleCallback(c *gin.Context) {
	state, err := c.Cookie(helpers.OAuthStateCookie)
	if err != nil || state == "" || c.Query("state") != state {
		h.Logger.Warn("oauth state mismatch, denying sign-in")
		c.Redirect(http.StatusFound, h.FrontendURL)
		return
	}
	u, err := h.Identity.SignIn(c.Request.Context(), c.Query("code"))
	if err != nil {
		c.Redirect(http.StatusFound, h.FrontendURL)
		return
	}
	token, exp, err := h.Identity.IssueSession(c.Request.Context(), u)
	if err != nil {
		h.Logger.WithError(err).WithField("user_id", u.ID).Warn("issuing session failed, denying sign-in")
		c.Redirect(http.StatusFound, h.FrontendURL)
		return
	}
	h.Cookies.SetSession(c, token, exp)
	c.Redirect(http.StatusFound, h.FrontendURL)
}

// SessionInfo returns the session object for the signed-in user.
func (h *AuthHandler) SessionInfo(c *gin.Context) {
	response.JSON(c, http.StatusOK, gin.H{"user": application.SessionUser{
		ID:       c.GetString(middleware.CtxUserIDKey),
		Email:    c.GetString(middleware.CtxEmailKey),
		Username: c.GetString(middleware.CtxUsernameKey),
		Image:    c.GetString(middleware.CtxImageKey),
	}})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	if uid := c.GetString(middleware.CtxUserIDKey); uid != "" {
		if err := h.Identity.Logout(c.Request.Context(), uid); err != nil {
			h.Logger.WithError(err).WithField("user_id", uid).Warn("dropping session failed")
		}
	}
	h.Cookies.Clear(c)
	response.Message(c, http.StatusOK, "logged out")
}

func randomState() string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}
