package application

import (
	"context"
	"errors"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/promptopia/promptopia-api/internal/apperr"
	"github.com/promptopia/promptopia-api/internal/domain/entity"
	repo "github.com/promptopia/promptopia-api/internal/domain/repository"
)

// ErrNotOwner is returned when a caller tries to mutate a prompt they do
// not own. The HTTP layer maps it to 403.
var ErrNotOwner = errors.New("not the prompt owner")

// PromptService encapsulates the prompt lifecycle: create, get, list,
// update, delete, plus the ownership checks around mutation.
type PromptService struct {
	Repo   repo.PromptRepository
	Logger *logrus.Logger
}

func NewPromptService(r repo.PromptRepository, logger *logrus.Logger) *PromptService {
	return &PromptService{Repo: r, Logger: logger}
}

// Create persists a new prompt owned by creatorID and returns it with the
// creator populated.
func (s *PromptService) Create(ctx context.Context, creatorID, body, tag string) (*entity.Prompt, error) {
	if strings.TrimSpace(creatorID) == "" {
		return nil, apperr.Validation("creatorId is required")
	}
	if body == "" {
		return nil, apperr.Validation("prompt is required")
	}
	if tag == "" {
		return nil, apperr.Validation("tag is required")
	}
	p := &entity.Prompt{Creator: &entity.User{ID: creatorID}, Prompt: body, Tag: tag}
	if err := s.Repo.Create(ctx, p); err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("creator_id", creatorID).Error("create prompt failed")
		}
		return nil, err
	}
	// Re-read so the response carries the populated creator, not just its id.
	return s.Repo.GetByID(ctx, p.ID)
}

// Get resolves a single prompt with its creator populated.
func (s *PromptService) Get(ctx context.Context, id string) (*entity.Prompt, error) {
	return s.Repo.GetByID(ctx, id)
}

// ListAll returns every prompt in the store, newest first.
func (s *PromptService) ListAll(ctx context.Context) ([]*entity.Prompt, error) {
	return s.Repo.ListAll(ctx)
}

// ListByCreator returns all prompts owned by userID.
func (s *PromptService) ListByCreator(ctx context.Context, userID string) ([]*entity.Prompt, error) {
	return s.Repo.ListByCreator(ctx, userID)
}

// Update replaces a prompt's body and tag atomically. When requesterID is
// non-empty it must match the prompt's creator.
func (s *PromptService) Update(ctx context.Context, id, body, tag, requesterID string) (*entity.Prompt, error) {
	if body == "" {
		return nil, apperr.Validation("prompt is required")
	}
	if tag == "" {
		return nil, apperr.Validation("tag is required")
	}
	existing, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if requesterID != "" && existing.CreatorID() != requesterID {
		return nil, ErrNotOwner
	}
	existing.Prompt = body
	existing.Tag = tag
	if err := s.Repo.Update(ctx, existing); err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("prompt_id", id).Error("update prompt failed")
		}
		return nil, err
	}
	return existing, nil
}

// Delete removes a prompt. Deleting an id that no longer exists is not an
// error: the end state is the same and the original behaved that way.
func (s *PromptService) Delete(ctx context.Context, id, requesterID string) error {
	existing, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if apperr.IsKind(err, apperr.KindNotFound) {
			return nil
		}
		return err
	}
	if requesterID != "" && existing.CreatorID() != requesterID {
		return ErrNotOwner
	}
	_, err = s.Repo.Delete(ctx, id)
	if err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("prompt_id", id).Error("delete prompt failed")
	}
	return err
}
