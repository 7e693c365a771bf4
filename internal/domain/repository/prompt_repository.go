package repository

import (
	"context"

	"github.com/promptopia/promptopia-api/internal/domain/entity"
)

// PromptRepository defines the interface for prompt persistence. All read
// paths return prompts with the creator populated.
type PromptRepository interface {
	Create(ctx context.Context, p *entity.Prompt) error
	GetByID(ctx context.Context, id string) (*entity.Prompt, error)
	ListAll(ctx context.Context) ([]*entity.Prompt, error)
	ListByCreator(ctx context.Context, userID string) ([]*entity.Prompt, error)
	// Update replaces prompt body and tag in a single statement and
	// refreshes UpdatedAt. Missing ids surface as apperr.KindNotFound.
	Update(ctx context.Context, p *entity.Prompt) error
	// Delete removes a prompt and reports whether a row existed.
	Delete(ctx context.Context, id string) (bool, error)
}
