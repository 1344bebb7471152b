package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "PENDING"
	OrderStatusConfirmed OrderStatus = "CONFIRMED"
	OrderStatusShipped   OrderStatus = "SHIPPED"
	OrderStatusDelivered OrderStatus = "DELIVERED"
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

// ValidOrderStatusは既知のステータス値かどうかを返す。
func ValidOrderStatus(s OrderStatus) bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// 注文。作成後はstatus以外は不変。
type Order struct {
	ID              string          `json:"id"`
	UserID          string          `json:"user_id"`
	OrderItems      []OrderItem     `json:"order_items"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
	Status          OrderStatus     `json:"status"`
	ShippingAddress string          `json:"shipping_address"`
	CreatedAt       time.Time       `json:"created_at"`
}

// Normalizeは生成時の初期化を1回だけ行う。
func (o *Order) Normalize(id string, now time.Time) {
	if o.ID == "" {
		o.ID = id
	}
	if o.CreatedAt.IsZero() {
		o.CreatedAt = now
	}
	if o.Status == "" {
		o.Status = OrderStatusPending
	}
}
