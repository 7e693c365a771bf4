package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	repo "github.com/promptopia/promptopia-api/internal/domain/repository"
	"github.com/promptopia/promptopia-api/pkg/response"
)

// UserHandler exposes read-only access to the user directory; profile
// pages resolve the viewed creator through it.
type UserHandler struct {
	Repo   repo.UserRepository
	Logger *logrus.Logger
}

func NewUserHandler(r repo.UserRepository, logger *logrus.Logger) *UserHandler {
	return &UserHandler{Repo: r, Logger: logger}
}

func (h *UserHandler) Get(c *gin.Context) {
	u, err := h.Repo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.JSON(c, http.StatusOK, u)
}
