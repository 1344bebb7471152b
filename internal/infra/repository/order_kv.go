package repository

import (
	"context"
	"encoding/json"
	"errors"
	"sort"

	"fashionretail/internal/domain/model"
	"fashionretail/internal/infra/kv"
	repo "fashionretail/internal/repository"
)

type OrderKVRepository struct {
	table kv.Table
}

// DI
func NewOrderRepository(table kv.Table) *OrderKVRepository {
	return &OrderKVRepository{table: table}
}

func (r *OrderKVRepository) Save(ctx context.Context, order model.Order) (model.Order, error) {
	doc, err := json.Marshal(&order)
	if err != nil {
		return model.Order{}, err
	}
	if err := r.table.Put(ctx, order.ID, "", doc); err != nil {
		return model.Order{}, err
	}
	return order, nil
}

func (r *OrderKVRepository) FindByID(ctx context.Context, orderID string) (model.Order, error) {
	doc, err := r.table.Get(ctx, orderID, "")
	if errors.Is(err, kv.ErrItemNotFound) {
		return model.Order{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Order{}, err
	}

	var o model.Order
	if err := json.Unmarshal(doc, &o); err != nil {
		return model.Order{}, err
	}
	return o, nil
}

// ユーザーの注文一覧。user_idの索引は無いのでフルスキャンして
// メモリ上でcreated_atの降順に並べる。
func (r *OrderKVRepository) ListByUserNewestFirst(ctx context.Context, userID string) ([]model.Order, error) {
	items, err := r.table.Scan(ctx)
	if err != nil {
		return nil, err
	}

	orders := make([]model.Order, 0, len(items))
	for _, it := range items {
		var o model.Order
		if err := json.Unmarshal(it.Doc, &o); err != nil {
			return nil, err
		}
		if o.UserID == userID {
			orders = append(orders, o)
		}
	}

	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
	return orders, nil
}

func (r *OrderKVRepository) Delete(ctx context.Context, orderID string) error {
	return r.table.Delete(ctx, orderID, "")
}
