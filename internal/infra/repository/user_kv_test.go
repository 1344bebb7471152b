package repository

import (
	"context"
	"testing"
	"time"

	"fashionretail/internal/domain/model"
	"fashionretail/internal/infra/kv"
	repo "fashionretail/internal/repository"

	"github.com/stretchr/testify/assert"
)

func TestUserKVRepository_CreateAndFind(t *testing.T) {
	ctx := context.Background()
	r := NewUserRepository(kv.NewMemoryTable())

	u := &model.User{
		ID:           "u1",
		Email:        "alice@example.com",
		PasswordHash: "hash",
		Roles:        []string{model.RoleUser},
		Enabled:      true,
		CreatedAt:    time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	assert.NoError(t, r.Create(ctx, u))

	got, err := r.FindByID(ctx, "u1")
	assert.NoError(t, err)
	assert.Equal(t, "alice@example.com", got.Email)

	got, err = r.FindByEmail(ctx, "alice@example.com")
	assert.NoError(t, err)
	assert.Equal(t, "u1", got.ID)
}

func TestUserKVRepository_EmailIsCaseSensitive(t *testing.T) {
	ctx := context.Background()
	r := NewUserRepository(kv.NewMemoryTable())

	u := &model.User{ID: "u1", Email: "Alice@example.com", Enabled: true}
	assert.NoError(t, r.Create(ctx, u))

	//保存したとおりの表記だけ一致する
	_, err := r.FindByEmail(ctx, "alice@example.com")
	assert.ErrorIs(t, err, repo.ErrUserNotFound)

	exists, err := r.ExistsByEmail(ctx, "Alice@example.com")
	assert.NoError(t, err)
	assert.True(t, exists)

	exists, err = r.ExistsByEmail(ctx, "alice@example.com")
	assert.NoError(t, err)
	assert.False(t, exists)
}

func TestUserKVRepository_FindMissingReturnsNotFound(t *testing.T) {
	ctx := context.Background()
	r := NewUserRepository(kv.NewMemoryTable())

	_, err := r.FindByID(ctx, "missing")
	assert.ErrorIs(t, err, repo.ErrUserNotFound)

	_, err = r.FindByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, repo.ErrUserNotFound)
}
