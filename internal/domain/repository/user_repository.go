package repository

import (
	"context"

	"github.com/promptopia/promptopia-api/internal/domain/entity"
)

// UserRepository defines the interface for user directory persistence.
type UserRepository interface {
	// Create inserts a new user and fills in the server-assigned fields.
	// A duplicate email surfaces as apperr.KindConflict.
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
}
