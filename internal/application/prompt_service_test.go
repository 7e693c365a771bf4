package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/promptopia/promptopia-api/internal/apperr"
	"github.com/promptopia/promptopia-api/internal/domain/entity"
)

// -------- test fakes --------

type fakePromptRepo struct {
	byID    map[string]*entity.Prompt
	nextID  int
	listErr error
}

func newFakePromptRepo() *fakePromptRepo {
	return &fakePromptRepo{byID: map[string]*entity.Prompt{}}
}

func (f *fakePromptRepo) Create(ctx context.Context, p *entity.Prompt) error {
	f.nextID++
	p.ID = "p" + string(rune('0'+f.nextID))
	cp := *p
	f.byID[p.ID] = &cp
	return nil
}

func (f *fakePromptRepo) GetByID(ctx context.Context, id string) (*entity.Prompt, error) {
	p, ok := f.byID[id]
	if !ok {
		return nil, apperr.NotFound("prompt not found")
	}
	cp := *p
	return &cp, nil
}

func (f *fakePromptRepo) ListAll(ctx context.Context) ([]*entity.Prompt, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]*entity.Prompt, 0, len(f.byID))
	for _, p := range f.byID {
		out = append(out, p)
	}
	return out, nil
}

func (f *fakePromptRepo) ListByCreator(ctx context.Context, userID string) ([]*entity.Prompt, error) {
	out := make([]*entity.Prompt, 0)
	for _, p := range f.byID {
		if p.CreatorID() == userID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePromptRepo) Update(ctx context.Context, p *entity.Prompt) error {
	if _, ok := f.byID[p.ID]; !ok {
		return apperr.NotFound("prompt not found")
	}
	cp := *p
	f.byID[p.ID] = &cp
	return nil
}

func (f *fakePromptRepo) Delete(ctx context.Context, id string) (bool, error) {
	if _, ok := f.byID[id]; !ok {
		return false, nil
	}
	delete(f.byID, id)
	return true, nil
}

// -------- tests --------

func TestCreateThenGetRoundTrip(t *testing.T) {
	svc := NewPromptService(newFakePromptRepo(), nil)
	ctx := context.Background()

	created, err := svc.Create(ctx, "u1", "Write a poem", "#poetry")
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Write a poem", got.Prompt)
	assert.Equal(t, "#poetry", got.Tag)
	assert.Equal(t, "u1", got.CreatorID())
}

func TestCreateValidation(t *testing.T) {
	svc := NewPromptService(newFakePromptRepo(), nil)
	ctx := context.Background()

	cases := []struct {
		name                 string
		creatorID, body, tag string
	}{
		{"empty body", "u1", "", "#x"},
		{"empty tag", "u1", "hello", ""},
		{"empty creator", "", "hello", "#x"},
		{"blank creator", "   ", "hello", "#x"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(ctx, tc.creatorID, tc.body, tc.tag)
			require.Error(t, err)
			assert.True(t, apperr.IsKind(err, apperr.KindValidation))
		})
	}
}

func TestGetMissingPrompt(t *testing.T) {
	svc := NewPromptService(newFakePromptRepo(), nil)
	_, err := svc.Get(context.Background(), "nope")
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}

func TestUpdateIsIdempotent(t *testing.T) {
	svc := NewPromptService(newFakePromptRepo(), nil)
	ctx := context.Background()

	created, err := svc.Create(ctx, "u1", "old", "#old")
	require.NoError(t, err)

	first, err := svc.Update(ctx, created.ID, "new", "#new", "u1")
	require.NoError(t, err)
	second, err := svc.Update(ctx, created.ID, "new", "#new", "u1")
	require.NoError(t, err)

	assert.Equal(t, first.Prompt, second.Prompt)
	assert.Equal(t, first.Tag, second.Tag)

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "new", got.Prompt)
	assert.Equal(t, "#new", got.Tag)
}

func TestUpdateMissingPrompt(t *testing.T) {
	svc := NewPromptService(newFakePromptRepo(), nil)
	_, err := svc.Update(context.Background(), "nope", "body", "#tag", "u1")
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}

func TestUpdateRejectsNonOwner(t *testing.T) {
	svc := NewPromptService(newFakePromptRepo(), nil)
	ctx := context.Background()

	created, err := svc.Create(ctx, "u1", "body", "#tag")
	require.NoError(t, err)

	_, err = svc.Update(ctx, created.ID, "hijacked", "#tag", "u2")
	assert.ErrorIs(t, err, ErrNotOwner)

	// Unchanged on failure.
	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "body", got.Prompt)
}

func TestDeleteThenGetNotFound(t *testing.T) {
	svc := NewPromptService(newFakePromptRepo(), nil)
	ctx := context.Background()

	created, err := svc.Create(ctx, "u1", "body", "#tag")
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID, "u1"))

	_, err = svc.Get(ctx, created.ID)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}

func TestDeleteMissingIsNotAnError(t *testing.T) {
	svc := NewPromptService(newFakePromptRepo(), nil)
	assert.NoError(t, svc.Delete(context.Background(), "nope", "u1"))
}

func TestDeleteRejectsNonOwner(t *testing.T) {
	svc := NewPromptService(newFakePromptRepo(), nil)
	ctx := context.Background()

	created, err := svc.Create(ctx, "u1", "body", "#tag")
	require.NoError(t, err)

	err = svc.Delete(ctx, created.ID, "u2")
	assert.ErrorIs(t, err, ErrNotOwner)

	_, err = svc.Get(ctx, created.ID)
	assert.NoError(t, err)
}

func TestListByCreator(t *testing.T) {
	svc := NewPromptService(newFakePromptRepo(), nil)
	ctx := context.Background()

	_, err := svc.Create(ctx, "u1", "one", "#a")
	require.NoError(t, err)
	_, err = svc.Create(ctx, "u2", "two", "#b")
	require.NoError(t, err)
	_, err = svc.Create(ctx, "u1", "three", "#c")
	require.NoError(t, err)

	mine, err := svc.ListByCreator(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, mine, 2)

	all, err := svc.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}
