package repository

import (
	"context"

	"fashionretail/internal/domain/model"
)

type OrderRepository interface {
	Save(ctx context.Context, order model.Order) (model.Order, error)
	FindByID(ctx context.Context, orderID string) (model.Order, error)
	//ユーザーの注文一覧。created_atの降順（新しい順）は呼び出し側との契約。
	ListByUserNewestFirst(ctx context.Context, userID string) ([]model.Order, error)
	Delete(ctx context.Context, orderID string) error
}
