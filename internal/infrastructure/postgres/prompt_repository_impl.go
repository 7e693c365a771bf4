package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/promptopia/promptopia-api/internal/apperr"
	"github.com/promptopia/promptopia-api/internal/domain/entity"
	"github.com/promptopia/promptopia-api/internal/domain/repository"
)

// selectWithCreator joins the owning user so every read path returns a
// populated creator, the relational equivalent of a document populate.
const selectWithCreator = `
	SELECT p.id, p.prompt, p.tag, p.created_at, p.updated_at,
	       u.id, u.email, u.username, u.image, u.created_at
	FROM prompts p
	JOIN users u ON u.id = p.creator_id
`

type PromptRepository struct {
	pool *pgxpool.Pool
}

func NewPromptRepository(pool *pgxpool.Pool) *PromptRepository {
	return &PromptRepository{pool: pool}
}

func (r *PromptRepository) Create(ctx context.Context, p *entity.Prompt) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO prompts (creator_id, prompt, tag)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`, p.CreatorID(), p.Prompt, p.Tag)

	if err := row.Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return apperr.Persistence("failed to create prompt", err)
	}
	return nil
}

func (r *PromptRepository) GetByID(ctx context.Context, id string) (*entity.Prompt, error) {
	row := r.pool.QueryRow(ctx, selectWithCreator+` WHERE p.id = $1`, id)
	p, err := scanPrompt(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("prompt not found")
		}
		return nil, apperr.Persistence("failed to fetch prompt", err)
	}
	return p, nil
}

func (r *PromptRepository) ListAll(ctx context.Context) ([]*entity.Prompt, error) {
	rows, err := r.pool.Query(ctx, selectWithCreator+` ORDER BY p.created_at DESC, p.id`)
	if err != nil {
		return nil, apperr.Persistence("failed to list prompts", err)
	}
	return collectPrompts(rows)
}

func (r *PromptRepository) ListByCreator(ctx context.Context, userID string) ([]*entity.Prompt, error) {
	rows, err := r.pool.Query(ctx, selectWithCreator+` WHERE p.creator_id = $1 ORDER BY p.created_at DESC, p.id`, userID)
	if err != nil {
		return nil, apperr.Persistence("failed to list prompts by creator", err)
	}
	return collectPrompts(rows)
}

func (r *PromptRepository) Update(ctx context.Context, p *entity.Prompt) error {
	p.UpdatedAt = time.Now()
	res, err := r.pool.Exec(ctx, `
		UPDATE prompts
		SET prompt = $1, tag = $2, updated_at = $3
		WHERE id = $4
	`, p.Prompt, p.Tag, p.UpdatedAt, p.ID)
	if err != nil {
		return apperr.Persistence("failed to update prompt", err)
	}
	if res.RowsAffected() == 0 {
		return apperr.NotFound("prompt not found")
	}
	return nil
}

func (r *PromptRepository) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.pool.Exec(ctx, `DELETE FROM prompts WHERE id = $1`, id)
	if err != nil {
		return false, apperr.Persistence("failed to delete prompt", err)
	}
	return res.RowsAffected() > 0, nil
}

func scanPrompt(row pgx.Row) (*entity.Prompt, error) {
	p := &entity.Prompt{Creator: &entity.User{}}
	err := row.Scan(
		&p.ID, &p.Prompt, &p.Tag, &p.CreatedAt, &p.UpdatedAt,
		&p.Creator.ID, &p.Creator.Email, &p.Creator.Username, &p.Creator.Image, &p.Creator.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func collectPrompts(rows pgx.Rows) ([]*entity.Prompt, error) {
	defer rows.Close()
	out := make([]*entity.Prompt, 0)
	for rows.Next() {
		p, err := scanPrompt(rows)
		if err != nil {
			return nil, apperr.Persistence("failed to scan prompt", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Persistence("failed to read prompt rows", err)
	}
	return out, nil
}

var _ repository.PromptRepository = (*PromptRepository)(nil)
