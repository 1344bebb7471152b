package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"fashionretail/internal/domain/model"
	repo "fashionretail/internal/repository"

	"github.com/shopspring/decimal"
)

type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func NewHTTPError(status int, message string) error {
	return &HTTPError{
		Status:  status,
		Message: message,
	}
}

func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	ok := errors.As(err, &he)
	return he, ok
}

// ProductUsecaseはカタログの参照とadminの商品管理。
type ProductUsecase struct {
	productRepo repo.ProductRepository
	idGen       IDGenerator
}

// DI
func NewProductUsecase(productRepo repo.ProductRepository, idGen IDGenerator) *ProductUsecase {
	return &ProductUsecase{
		productRepo: productRepo,
		idGen:       idGen,
	}
}

type ProductInput struct {
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Price         decimal.Decimal `json:"price"`
	ImageURL      string          `json:"image_url"`
	Category      string          `json:"category"`
	StockQuantity int64           `json:"stock_quantity"`
	Rating        float64         `json:"rating"`
}

// ListActiveは公開中の商品一覧。
func (u *ProductUsecase) ListActive(ctx context.Context) ([]model.Product, error) {
	products, err := u.productRepo.FindActive(ctx)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return products, nil
}

// GetByIDは商品1件。無ければ404。
func (u *ProductUsecase) GetByID(ctx context.Context, productID string) (model.Product, error) {
	if strings.TrimSpace(productID) == "" {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	p, err := u.productRepo.FindByID(ctx, productID)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Product{}, NewHTTPError(http.StatusNotFound, "product not found")
	}
	if err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return p, nil
}

func (u *ProductUsecase) ListByCategory(ctx context.Context, category string) ([]model.Product, error) {
	products, err := u.productRepo.FindByCategory(ctx, category)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return products, nil
}

// SearchByNameは商品名の部分一致検索。
func (u *ProductUsecase) SearchByName(ctx context.Context, name string) ([]model.Product, error) {
	products, err := u.productRepo.SearchByName(ctx, name)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return products, nil
}

// Createはadmin用の商品登録。
func (u *ProductUsecase) Create(ctx context.Context, in ProductInput) (model.Product, error) {
	if strings.TrimSpace(in.Name) == "" {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "name is required")
	}
	if in.Price.IsNegative() {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "invalid price")
	}

	p := model.Product{
		Name:          in.Name,
		Description:   in.Description,
		Price:         in.Price,
		ImageURL:      in.ImageURL,
		Category:      in.Category,
		StockQuantity: in.StockQuantity,
		Rating:        in.Rating,
		Active:        true, // 初期値は公開
	}
	p.Normalize(u.idGen.NewID())

	created, err := u.productRepo.Save(ctx, p)
	if err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return created, nil
}

// Updateはadmin用の商品更新（put上書き）。
func (u *ProductUsecase) Update(ctx context.Context, productID string, in ProductInput) (model.Product, error) {
	p, err := u.GetByID(ctx, productID)
	if err != nil {
		return model.Product{}, err
	}

	p.Name = in.Name
	p.Description = in.Description
	p.Price = in.Price
	p.ImageURL = in.ImageURL
	p.Category = in.Category
	p.StockQuantity = in.StockQuantity
	p.Rating = in.Rating

	updated, err := u.productRepo.Save(ctx, p)
	if err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return updated, nil
}

// Deleteはadmin用の商品削除。
func (u *ProductUsecase) Delete(ctx context.Context, productID string) error {
	if strings.TrimSpace(productID) == "" {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if err := u.productRepo.Delete(ctx, productID); err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}
