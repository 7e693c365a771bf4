package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/promptopia/promptopia-api/internal/application"
	"github.com/promptopia/promptopia-api/internal/interface/middleware"
	"github.com/promptopia/promptopia-api/internal/search"
	"github.com/promptopia/promptopia-api/pkg/response"
	"github.com/promptopia/promptopia-api/pkg/validation"
)

type PromptHandler struct {
	Svc    *application.PromptService
	Logger *logrus.Logger
}

func NewPromptHandler(svc *application.PromptService, logger *logrus.Logger) *PromptHandler {
	return &PromptHandler{Svc: svc, Logger: logger}
}

type createPromptRequest struct {
	CreatorID string `json:"creatorId" binding:"required"`
	Prompt    string `json:"prompt" binding:"required"`
	Tag       string `json:"tag" binding:"required"`
}

type updatePromptRequest struct {
	Prompt string `json:"prompt" binding:"required"`
	Tag    string `json:"tag" binding:"required"`
}

// List responds with every prompt, creator populated.
func (h *PromptHandler) List(c *gin.Context) {
	prompts, err := h.Svc.ListAll(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.JSON(c, http.StatusOK, prompts)
}

// Search filters the full prompt list through the search engine with the
// q parameter. An empty q returns the unfiltered list.
func (h *PromptHandler) Search(c *gin.Context) {
	prompts, err := h.Svc.ListAll(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	matched, err := search.Filter(prompts, c.Query("q"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.JSON(c, http.StatusOK, matched)
}

func (h *PromptHandler) Get(c *gin.Context) {
	p, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.JSON(c, http.StatusOK, p)
}

func (h *PromptHandler) Create(c *gin.Context) {
	var req createPromptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	p, err := h.Svc.Create(c.Request.Context(), req.CreatorID, req.Prompt, req.Tag)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.JSON(c, http.StatusCreated, p)
}

func (h *PromptHandler) Update(c *gin.Context) {
	var req updatePromptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	requester := c.GetString(middleware.CtxUserIDKey)
	_, err := h.Svc.Update(c.Request.Context(), c.Param("id"), req.Prompt, req.Tag, requester)
	if err != nil {
		if errors.Is(err, application.ErrNotOwner) {
			response.Error(c, http.StatusForbidden, "you do not own this prompt", nil)
			return
		}
		response.FromError(c, err)
		return
	}
	response.Message(c, http.StatusOK, "prompt updated")
}

func (h *PromptHandler) Delete(c *gin.Context) {
	requester := c.GetString(middleware.CtxUserIDKey)
	if err := h.Svc.Delete(c.Request.Context(), c.Param("id"), requester); err != nil {
		if errors.Is(err, application.ErrNotOwner) {
			response.Error(c, http.StatusForbidden, "you do not own this prompt", nil)
			return
		}
		response.FromError(c, err)
		return
	}
	response.Message(c, http.StatusOK, "prompt deleted")
}

// ListByUser responds with all prompts created by the path user.
func (h *PromptHandler) ListByUser(c *gin.Context) {
	prompts, err := h.Svc.ListByCreator(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.JSON(c, http.StatusOK, prompts)
}
