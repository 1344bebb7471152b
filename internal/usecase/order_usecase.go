package usecase

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"fashionretail/internal/domain/model"
	repo "fashionretail/internal/repository"

	"github.com/shopspring/decimal"
)

// OrderUsecaseはカートから注文への変換と注文の参照・ステータス更新。
type OrderUsecase struct {
	orderRepo    repo.OrderRepository
	cartItemRepo repo.CartItemRepository
	productRepo  repo.ProductRepository
	idGen        IDGenerator
	clock        Clock
}

// DI
func NewOrderUsecase(
	orderRepo repo.OrderRepository,
	cartItemRepo repo.CartItemRepository,
	productRepo repo.ProductRepository,
	idGen IDGenerator,
	clock Clock,
) *OrderUsecase {
	return &OrderUsecase{
		orderRepo:    orderRepo,
		cartItemRepo: cartItemRepo,
		productRepo:  productRepo,
		idGen:        idGen,
		clock:        clock,
	}
}

type CreateOrderInput struct {
	ShippingAddress string
}

type UpdateOrderStatusInput struct {
	Status model.OrderStatus
}

// CreateOrderはカートの明細を不変の注文スナップショットに変換する。
//  1. カートが空なら400
//  2. 各明細の価格はカートに保存したスナップショットをそのまま使い、
//     商品名だけこの時点でカタログから引き直す（消えていたら404）
//  3. 合計は固定小数点の正確な和
//  4. 注文を保存してからカートを空にする
//
// 4は2回の独立した書き込みで、トランザクションでは包まない。
// 途中でクラッシュすると注文済みの明細がカートに残り得る。
// 本当に原子的にするならストア側のトランザクション機能が要る。
func (u *OrderUsecase) CreateOrder(ctx context.Context, userID string, in CreateOrderInput) (model.Order, error) {
	if userID == "" {
		return model.Order{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if strings.TrimSpace(in.ShippingAddress) == "" {
		return model.Order{}, NewHTTPError(http.StatusBadRequest, "shipping address is required")
	}

	lines, err := u.cartItemRepo.ListByUser(ctx, userID)
	if err != nil {
		return model.Order{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if len(lines) == 0 {
		return model.Order{}, NewHTTPError(http.StatusBadRequest, "cart is empty")
	}

	orderItems := make([]model.OrderItem, 0, len(lines))
	total := decimal.Zero

	for _, line := range lines {
		//商品名はいまカタログから引き直す
		p, err := u.productRepo.FindByID(ctx, line.ProductID)
		if errors.Is(err, repo.ErrNotFound) {
			return model.Order{}, NewHTTPError(http.StatusNotFound, "product not found")
		}
		if err != nil {
			return model.Order{}, NewHTTPError(http.StatusInternalServerError, "db error")
		}

		//価格はカート追加時点のスナップショット
		item := model.OrderItem{
			ProductID:   line.ProductID,
			ProductName: p.Name,
			Quantity:    line.Quantity,
			Price:       line.Price,
		}
		orderItems = append(orderItems, item)
		total = total.Add(item.Subtotal())
	}

	order := model.Order{
		UserID:          userID,
		OrderItems:      orderItems,
		TotalAmount:     total,
		Status:          model.OrderStatusPending,
		ShippingAddress: in.ShippingAddress,
	}
	order.Normalize(u.idGen.NewID(), u.clock.Now())

	saved, err := u.orderRepo.Save(ctx, order)
	if err != nil {
		return model.Order{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	//注文保存とカート削除は別書き込み（上のコメント参照）
	if err := u.cartItemRepo.DeleteByUser(ctx, userID); err != nil {
		return model.Order{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return saved, nil
}

// GetByIDは注文1件。無ければ404。
func (u *OrderUsecase) GetByID(ctx context.Context, orderID string) (model.Order, error) {
	if strings.TrimSpace(orderID) == "" {
		return model.Order{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	o, err := u.orderRepo.FindByID(ctx, orderID)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Order{}, NewHTTPError(http.StatusNotFound, "order not found")
	}
	if err != nil {
		return model.Order{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return o, nil
}

// ListForUserはユーザーの注文一覧（新しい順）。
func (u *OrderUsecase) ListForUser(ctx context.Context, userID string) ([]model.Order, error) {
	if userID == "" {
		return nil, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	orders, err := u.orderRepo.ListByUserNewestFirst(ctx, userID)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return orders, nil
}

// UpdateStatusはステータスの無条件上書き。
// 遷移グラフは持たない（DELIVERED→CANCELLEDも通る）。
func (u *OrderUsecase) UpdateStatus(ctx context.Context, orderID string, in UpdateOrderStatusInput) (model.Order, error) {
	if !model.ValidOrderStatus(in.Status) {
		return model.Order{}, NewHTTPError(http.StatusBadRequest, "invalid status")
	}

	o, err := u.GetByID(ctx, orderID)
	if err != nil {
		return model.Order{}, err
	}

	o.Status = in.Status
	saved, err := u.orderRepo.Save(ctx, o)
	if err != nil {
		return model.Order{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return saved, nil
}
