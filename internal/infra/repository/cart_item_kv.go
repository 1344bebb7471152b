package repository

import (
	"context"
	"encoding/json"
	"errors"

	"fashionretail/internal/domain/model"
	"fashionretail/internal/infra/kv"
	repo "fashionretail/internal/repository"
)

// カート明細。pk=userId, sk=productId の複合キーで保存する。
type CartItemKVRepository struct {
	table kv.Table
}

// DI
func NewCartItemRepository(table kv.Table) *CartItemKVRepository {
	return &CartItemKVRepository{table: table}
}

func (r *CartItemKVRepository) ListByUser(ctx context.Context, userID string) ([]model.CartItem, error) {
	items, err := r.table.Scan(ctx)
	if err != nil {
		return nil, err
	}

	lines := make([]model.CartItem, 0, len(items))
	for _, it := range items {
		if it.PK != userID {
			continue
		}
		var ci model.CartItem
		if err := json.Unmarshal(it.Doc, &ci); err != nil {
			return nil, err
		}
		lines = append(lines, ci)
	}
	return lines, nil
}

func (r *CartItemKVRepository) FindByUserAndProduct(ctx context.Context, userID string, productID string) (model.CartItem, error) {
	doc, err := r.table.Get(ctx, userID, productID)
	if errors.Is(err, kv.ErrItemNotFound) {
		return model.CartItem{}, repo.ErrNotFound
	}
	if err != nil {
		return model.CartItem{}, err
	}

	var ci model.CartItem
	if err := json.Unmarshal(doc, &ci); err != nil {
		return model.CartItem{}, err
	}
	return ci, nil
}

// 新規も上書きもput。同一(userId, productId)は必ず1件になる。
func (r *CartItemKVRepository) Save(ctx context.Context, item model.CartItem) error {
	doc, err := json.Marshal(&item)
	if err != nil {
		return err
	}
	return r.table.Put(ctx, item.UserID, item.ProductID, doc)
}

func (r *CartItemKVRepository) Delete(ctx context.Context, userID string, productID string) error {
	return r.table.Delete(ctx, userID, productID)
}

// ユーザーの明細を全削除。0件でもエラーにしない。
func (r *CartItemKVRepository) DeleteByUser(ctx context.Context, userID string) error {
	items, err := r.table.Scan(ctx)
	if err != nil {
		return err
	}

	for _, it := range items {
		if it.PK != userID {
			continue
		}
		if err := r.table.Delete(ctx, it.PK, it.SK); err != nil {
			return err
		}
	}
	return nil
}
