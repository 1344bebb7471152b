package repository

import (
	"context"
	"errors"

	"fashionretail/internal/domain/model"
)

var ErrNotFound = errors.New("not found")

// 商品の永続化（保存・取得）だけを約束。
// 一覧系はすべてフルスキャン＋メモリ内フィルタ（二次索引なし）。
type ProductRepository interface {
	Save(ctx context.Context, p model.Product) (model.Product, error)
	FindByID(ctx context.Context, productID string) (model.Product, error)
	FindAll(ctx context.Context) ([]model.Product, error)
	FindActive(ctx context.Context) ([]model.Product, error)
	FindByCategory(ctx context.Context, category string) ([]model.Product, error)
	SearchByName(ctx context.Context, name string) ([]model.Product, error)
	Delete(ctx context.Context, productID string) error
}
