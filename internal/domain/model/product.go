package model

import "github.com/shopspring/decimal"

// 商品。注文明細はIDではなく値のスナップショットを持つため、
// 注文後にここを書き換えても過去の注文金額は変わらない。
type Product struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Price         decimal.Decimal `json:"price"`
	ImageURL      string          `json:"image_url"`
	Category      string          `json:"category"`
	StockQuantity int64           `json:"stock_quantity"`
	Rating        float64         `json:"rating"`
	Active        bool            `json:"active"`
}

// Normalizeは生成時の初期化を1回だけ行う。
func (p *Product) Normalize(id string) {
	if p.ID == "" {
		p.ID = id
	}
}
