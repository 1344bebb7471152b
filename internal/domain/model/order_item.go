package model

import "github.com/shopspring/decimal"

// 注文明細。注文作成時点のカート明細のスナップショット（不変）。
type OrderItem struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int64           `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
}

// Subtotalは price × quantity
func (oi *OrderItem) Subtotal() decimal.Decimal {
	return oi.Price.Mul(decimal.NewFromInt(oi.Quantity))
}
