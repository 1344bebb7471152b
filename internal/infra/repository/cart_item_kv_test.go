package repository

import (
	"context"
	"testing"

	"fashionretail/internal/domain/model"
	"fashionretail/internal/infra/kv"
	repo "fashionretail/internal/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCartItemKVRepository_SaveAndFind(t *testing.T) {
	ctx := context.Background()
	r := NewCartItemRepository(kv.NewMemoryTable())

	line := model.CartItem{
		ID:        "ci-1",
		UserID:    "u1",
		ProductID: "p1",
		Quantity:  2,
		Price:     decimal.RequireFromString("10.00"),
	}
	assert.NoError(t, r.Save(ctx, line))

	got, err := r.FindByUserAndProduct(ctx, "u1", "p1")
	assert.NoError(t, err)
	assert.Equal(t, int64(2), got.Quantity)
	assert.True(t, got.Price.Equal(decimal.RequireFromString("10.00")))

	//同じ(userId, productId)への保存は上書きで1件のまま
	line.Quantity = 7
	assert.NoError(t, r.Save(ctx, line))

	lines, err := r.ListByUser(ctx, "u1")
	assert.NoError(t, err)
	assert.Len(t, lines, 1)
	assert.Equal(t, int64(7), lines[0].Quantity)
}

func TestCartItemKVRepository_ListByUserFiltersOtherUsers(t *testing.T) {
	ctx := context.Background()
	r := NewCartItemRepository(kv.NewMemoryTable())

	price := decimal.RequireFromString("5.00")
	assert.NoError(t, r.Save(ctx, model.CartItem{ID: "a", UserID: "u1", ProductID: "p1", Quantity: 1, Price: price}))
	assert.NoError(t, r.Save(ctx, model.CartItem{ID: "b", UserID: "u1", ProductID: "p2", Quantity: 1, Price: price}))
	assert.NoError(t, r.Save(ctx, model.CartItem{ID: "c", UserID: "u2", ProductID: "p1", Quantity: 1, Price: price}))

	lines, err := r.ListByUser(ctx, "u1")
	assert.NoError(t, err)
	assert.Len(t, lines, 2)

	lines, err = r.ListByUser(ctx, "u3")
	assert.NoError(t, err)
	assert.Empty(t, lines)
}

func TestCartItemKVRepository_FindMissingReturnsNotFound(t *testing.T) {
	ctx := context.Background()
	r := NewCartItemRepository(kv.NewMemoryTable())

	_, err := r.FindByUserAndProduct(ctx, "u1", "nonexistent-product")
	assert.ErrorIs(t, err, repo.ErrNotFound)
}

func TestCartItemKVRepository_DeleteByUser(t *testing.T) {
	ctx := context.Background()
	r := NewCartItemRepository(kv.NewMemoryTable())

	price := decimal.RequireFromString("5.00")
	assert.NoError(t, r.Save(ctx, model.CartItem{ID: "a", UserID: "u1", ProductID: "p1", Quantity: 1, Price: price}))
	assert.NoError(t, r.Save(ctx, model.CartItem{ID: "b", UserID: "u1", ProductID: "p2", Quantity: 1, Price: price}))
	assert.NoError(t, r.Save(ctx, model.CartItem{ID: "c", UserID: "u2", ProductID: "p1", Quantity: 1, Price: price}))

	assert.NoError(t, r.DeleteByUser(ctx, "u1"))

	lines, err := r.ListByUser(ctx, "u1")
	assert.NoError(t, err)
	assert.Empty(t, lines)

	//他のユーザーの明細は残る
	lines, err = r.ListByUser(ctx, "u2")
	assert.NoError(t, err)
	assert.Len(t, lines, 1)

	//空カートへの全削除も成功（冪等）
	assert.NoError(t, r.DeleteByUser(ctx, "u1"))
}

func TestCartItemKVRepository_DeleteIsIdempotent(t *testing.T) {
	ctx := context.Background()
	r := NewCartItemRepository(kv.NewMemoryTable())

	assert.NoError(t, r.Delete(ctx, "u1", "nonexistent-product"))
}
