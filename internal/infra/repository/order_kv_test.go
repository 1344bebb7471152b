package repository

import (
	"context"
	"testing"
	"time"

	"fashionretail/internal/domain/model"
	"fashionretail/internal/infra/kv"
	repo "fashionretail/internal/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestOrderKVRepository_SaveAndFind(t *testing.T) {
	ctx := context.Background()
	r := NewOrderRepository(kv.NewMemoryTable())

	order := model.Order{
		ID:              "o1",
		UserID:          "u1",
		TotalAmount:     decimal.RequireFromString("25.00"),
		Status:          model.OrderStatusPending,
		ShippingAddress: "221B Baker St",
		CreatedAt:       time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		OrderItems: []model.OrderItem{
			{ProductID: "p1", ProductName: "Scarf", Quantity: 2, Price: decimal.RequireFromString("10.00")},
		},
	}

	saved, err := r.Save(ctx, order)
	assert.NoError(t, err)
	assert.Equal(t, "o1", saved.ID)

	got, err := r.FindByID(ctx, "o1")
	assert.NoError(t, err)
	assert.Equal(t, model.OrderStatusPending, got.Status)
	assert.Len(t, got.OrderItems, 1)
	assert.True(t, got.TotalAmount.Equal(decimal.RequireFromString("25.00")))
}

func TestOrderKVRepository_FindMissingReturnsNotFound(t *testing.T) {
	ctx := context.Background()
	r := NewOrderRepository(kv.NewMemoryTable())

	_, err := r.FindByID(ctx, "missing")
	assert.ErrorIs(t, err, repo.ErrNotFound)
}

func TestOrderKVRepository_ListByUserNewestFirst(t *testing.T) {
	ctx := context.Background()
	r := NewOrderRepository(kv.NewMemoryTable())

	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, id := range []string{"o1", "o2", "o3"} {
		_, err := r.Save(ctx, model.Order{
			ID:        id,
			UserID:    "u1",
			Status:    model.OrderStatusPending,
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		})
		assert.NoError(t, err)
	}
	//別ユーザーの注文は混ざらない
	_, err := r.Save(ctx, model.Order{ID: "other", UserID: "u2", Status: model.OrderStatusPending, CreatedAt: base})
	assert.NoError(t, err)

	orders, err := r.ListByUserNewestFirst(ctx, "u1")
	assert.NoError(t, err)
	assert.Len(t, orders, 3)

	//created_atの降順
	assert.Equal(t, "o3", orders[0].ID)
	assert.Equal(t, "o2", orders[1].ID)
	assert.Equal(t, "o1", orders[2].ID)
	for i := 1; i < len(orders); i++ {
		assert.False(t, orders[i].CreatedAt.After(orders[i-1].CreatedAt))
	}
}
