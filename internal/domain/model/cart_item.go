package model

import "github.com/shopspring/decimal"

// カートの明細。(userId, productId) の組で1件だけ。
// priceは追加時点の価格を必ず保存する（数量変更では更新しない）。
type CartItem struct {
	ID        string          `json:"id"`
	UserID    string          `json:"user_id"`
	ProductID string          `json:"product_id"`
	Quantity  int64           `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}

// Normalizeは生成時の初期化を1回だけ行う。
func (ci *CartItem) Normalize(id string) {
	if ci.ID == "" {
		ci.ID = id
	}
}

// Subtotalは price × quantity
func (ci *CartItem) Subtotal() decimal.Decimal {
	return ci.Price.Mul(decimal.NewFromInt(ci.Quantity))
}
