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

// CartUsecaseは /cart の業務ロジックです。
// (userId, productId) につき明細は必ず1件。
type CartUsecase struct {
	cartItemRepo repo.CartItemRepository
	productRepo  repo.ProductRepository
	idGen        IDGenerator
}

// DI
func NewCartUsecase(
	cartItemRepo repo.CartItemRepository,
	productRepo repo.ProductRepository,
	idGen IDGenerator,
) *CartUsecase {
	return &CartUsecase{
		cartItemRepo: cartItemRepo,
		productRepo:  productRepo,
		idGen:        idGen,
	}
}

// priceは追加時点のスナップショット、subtotalは price × quantity。
type CartLineResponse struct {
	ID        string          `json:"id"`
	ProductID string          `json:"product_id"`
	Quantity  int64           `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

type CartResponse struct {
	Items []CartLineResponse `json:"items"`
	Total decimal.Decimal    `json:"total"`
}

type AddCartInput struct {
	ProductID string
	Quantity  int64
}

type UpdateCartLineInput struct {
	Quantity int64
}

// GetCartはカートの明細一覧（空なら空のまま返す）。
func (u *CartUsecase) GetCart(ctx context.Context, userID string) (CartResponse, error) {
	if userID == "" {
		return CartResponse{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	lines, err := u.cartItemRepo.ListByUser(ctx, userID)
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return buildCartResponse(lines), nil
}

// AddToCartはカートに追加（同一商品は数量加算）。
func (u *CartUsecase) AddToCart(ctx context.Context, userID string, in AddCartInput) (CartResponse, error) {
	if userID == "" {
		return CartResponse{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if strings.TrimSpace(in.ProductID) == "" {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid product_id")
	}
	if in.Quantity < 1 {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid quantity")
	}

	// 商品チェック（存在のみ。activeは見ない）
	p, err := u.productRepo.FindByID(ctx, in.ProductID)
	if errors.Is(err, repo.ErrNotFound) {
		return CartResponse{}, NewHTTPError(http.StatusNotFound, "product not found")
	}
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	existing, err := u.cartItemRepo.FindByUserAndProduct(ctx, userID, in.ProductID)
	switch {
	case err == nil:
		// 既存明細に加算。priceは最初の追加時点のまま更新しない。
		existing.Quantity += in.Quantity
		if err := u.cartItemRepo.Save(ctx, existing); err != nil {
			return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
		}
	case errors.Is(err, repo.ErrNotFound):
		// 新規明細。priceはカタログの現在価格を保存する。
		line := model.CartItem{
			UserID:    userID,
			ProductID: in.ProductID,
			Quantity:  in.Quantity,
			Price:     p.Price,
		}
		line.Normalize(u.idGen.NewID())
		if err := u.cartItemRepo.Save(ctx, line); err != nil {
			return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
		}
	default:
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	lines, err := u.cartItemRepo.ListByUser(ctx, userID)
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return buildCartResponse(lines), nil
}

// UpdateCartLineは数量の上書き（priceは再計算しない）。
func (u *CartUsecase) UpdateCartLine(ctx context.Context, userID string, productID string, in UpdateCartLineInput) (CartResponse, error) {
	if userID == "" {
		return CartResponse{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if strings.TrimSpace(productID) == "" {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid product_id")
	}
	if in.Quantity < 1 {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid quantity")
	}

	line, err := u.cartItemRepo.FindByUserAndProduct(ctx, userID, productID)
	if errors.Is(err, repo.ErrNotFound) {
		return CartResponse{}, NewHTTPError(http.StatusNotFound, "cart item not found")
	}
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	line.Quantity = in.Quantity
	if err := u.cartItemRepo.Save(ctx, line); err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	lines, err := u.cartItemRepo.ListByUser(ctx, userID)
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return buildCartResponse(lines), nil
}

// RemoveCartLineは明細削除。無くても成功（冪等）。
func (u *CartUsecase) RemoveCartLine(ctx context.Context, userID string, productID string) (CartResponse, error) {
	if userID == "" {
		return CartResponse{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if strings.TrimSpace(productID) == "" {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid product_id")
	}

	if err := u.cartItemRepo.Delete(ctx, userID, productID); err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	lines, err := u.cartItemRepo.ListByUser(ctx, userID)
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return buildCartResponse(lines), nil
}

// ClearCartは全明細削除。空でも成功（冪等）。
func (u *CartUsecase) ClearCart(ctx context.Context, userID string) error {
	if userID == "" {
		return NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if err := u.cartItemRepo.DeleteByUser(ctx, userID); err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

// 明細をまとめてCartResponseを作る。
func buildCartResponse(lines []model.CartItem) CartResponse {
	items := make([]CartLineResponse, 0, len(lines))
	total := decimal.Zero

	for _, line := range lines {
		subtotal := line.Subtotal()
		items = append(items, CartLineResponse{
			ID:        line.ID,
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			Price:     line.Price,
			Subtotal:  subtotal,
		})
		total = total.Add(subtotal)
	}

	return CartResponse{Items: items, Total: total}
}
