package repository

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"fashionretail/internal/domain/model"
	"fashionretail/internal/infra/kv"
	repo "fashionretail/internal/repository"
)

type ProductKVRepository struct {
	table kv.Table
}

// DI
func NewProductRepository(table kv.Table) *ProductKVRepository {
	return &ProductKVRepository{table: table}
}

func (r *ProductKVRepository) Save(ctx context.Context, p model.Product) (model.Product, error) {
	doc, err := json.Marshal(&p)
	if err != nil {
		return model.Product{}, err
	}
	if err := r.table.Put(ctx, p.ID, "", doc); err != nil {
		return model.Product{}, err
	}
	return p, nil
}

// IDで商品を取得
func (r *ProductKVRepository) FindByID(ctx context.Context, productID string) (model.Product, error) {
	doc, err := r.table.Get(ctx, productID, "")
	if errors.Is(err, kv.ErrItemNotFound) {
		return model.Product{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Product{}, err
	}

	var p model.Product
	if err := json.Unmarshal(doc, &p); err != nil {
		return model.Product{}, err
	}
	return p, nil
}

func (r *ProductKVRepository) FindAll(ctx context.Context) ([]model.Product, error) {
	return r.scanFilter(ctx, func(model.Product) bool { return true })
}

// 公開（active=true）の商品だけ
func (r *ProductKVRepository) FindActive(ctx context.Context) ([]model.Product, error) {
	return r.scanFilter(ctx, func(p model.Product) bool { return p.Active })
}

func (r *ProductKVRepository) FindByCategory(ctx context.Context, category string) ([]model.Product, error) {
	return r.scanFilter(ctx, func(p model.Product) bool { return p.Category == category })
}

// 商品名の部分一致（大文字小文字は無視）
func (r *ProductKVRepository) SearchByName(ctx context.Context, name string) ([]model.Product, error) {
	needle := strings.ToLower(name)
	return r.scanFilter(ctx, func(p model.Product) bool {
		return strings.Contains(strings.ToLower(p.Name), needle)
	})
}

func (r *ProductKVRepository) Delete(ctx context.Context, productID string) error {
	return r.table.Delete(ctx, productID, "")
}

// フルスキャンしてkeepがtrueのものだけ返す。
func (r *ProductKVRepository) scanFilter(ctx context.Context, keep func(model.Product) bool) ([]model.Product, error) {
	items, err := r.table.Scan(ctx)
	if err != nil {
		return nil, err
	}

	products := make([]model.Product, 0, len(items))
	for _, it := range items {
		var p model.Product
		if err := json.Unmarshal(it.Doc, &p); err != nil {
			return nil, err
		}
		if keep(p) {
			products = append(products, p)
		}
	}
	return products, nil
}
