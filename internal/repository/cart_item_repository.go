package repository

import (
	"context"

	"fashionretail/internal/domain/model"
)

// カート明細の永続化。キーは (userId, productId) の複合キー。
type CartItemRepository interface {
	ListByUser(ctx context.Context, userID string) ([]model.CartItem, error)
	// 複合キーでの直接取得。無ければ ErrNotFound。
	FindByUserAndProduct(ctx context.Context, userID string, productID string) (model.CartItem, error)
	// 新規・上書きどちらもこれ。
	Save(ctx context.Context, item model.CartItem) error
	// 無くてもエラーにしない（冪等）。
	Delete(ctx context.Context, userID string, productID string) error
	DeleteByUser(ctx context.Context, userID string) error
}
