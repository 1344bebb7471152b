package usecase

import (
	"context"
	"net/http"
	"testing"

	"fashionretail/internal/domain/model"
	repo "fashionretail/internal/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestProductCreate_FillsDefaults(t *testing.T) {
	ctx := context.Background()
	productRepo := new(MockProductRepository)
	uc := NewProductUsecase(productRepo, &stubIDGen{id: "prod-1"})

	productRepo.On("Save", ctx, mock.MatchedBy(func(p model.Product) bool {
		return p.ID == "prod-1" && p.Active
	})).Return(model.Product{
		ID:     "prod-1",
		Name:   "Scarf",
		Price:  decimal.RequireFromString("10.00"),
		Active: true,
	}, nil)

	created, err := uc.Create(ctx, ProductInput{
		Name:  "Scarf",
		Price: decimal.RequireFromString("10.00"),
	})

	assert.NoError(t, err)
	assert.Equal(t, "prod-1", created.ID)
	assert.True(t, created.Active)
	productRepo.AssertExpectations(t)
}

func TestProductCreate_RejectsBlankNameAndNegativePrice(t *testing.T) {
	ctx := context.Background()
	productRepo := new(MockProductRepository)
	uc := NewProductUsecase(productRepo, &stubIDGen{id: "unused"})

	_, err := uc.Create(ctx, ProductInput{Name: "  ", Price: decimal.RequireFromString("10.00")})
	assertHTTPStatus(t, err, http.StatusBadRequest)

	_, err = uc.Create(ctx, ProductInput{Name: "Scarf", Price: decimal.RequireFromString("-1")})
	assertHTTPStatus(t, err, http.StatusBadRequest)

	productRepo.AssertNotCalled(t, "Save")
}

func TestProductGetByID_NotFound(t *testing.T) {
	ctx := context.Background()
	productRepo := new(MockProductRepository)
	uc := NewProductUsecase(productRepo, &stubIDGen{id: "unused"})

	productRepo.On("FindByID", ctx, "missing").Return(model.Product{}, repo.ErrNotFound)

	_, err := uc.GetByID(ctx, "missing")
	assertHTTPStatus(t, err, http.StatusNotFound)
}

func TestProductUpdate_OverwritesFields(t *testing.T) {
	ctx := context.Background()
	productRepo := new(MockProductRepository)
	uc := NewProductUsecase(productRepo, &stubIDGen{id: "unused"})

	existing := model.Product{
		ID:     "p1",
		Name:   "Old Name",
		Price:  decimal.RequireFromString("10.00"),
		Active: true,
	}
	productRepo.On("FindByID", ctx, "p1").Return(existing, nil)
	productRepo.On("Save", ctx, mock.MatchedBy(func(p model.Product) bool {
		// IDとactiveは維持され、他のフィールドが上書きされる
		return p.ID == "p1" && p.Active &&
			p.Name == "New Name" && p.Price.Equal(decimal.RequireFromString("12.50"))
	})).Return(model.Product{ID: "p1", Name: "New Name"}, nil)

	_, err := uc.Update(ctx, "p1", ProductInput{
		Name:  "New Name",
		Price: decimal.RequireFromString("12.50"),
	})

	assert.NoError(t, err)
	productRepo.AssertExpectations(t)
}

func TestProductUpdate_MissingProductReturns404(t *testing.T) {
	ctx := context.Background()
	productRepo := new(MockProductRepository)
	uc := NewProductUsecase(productRepo, &stubIDGen{id: "unused"})

	productRepo.On("FindByID", ctx, "missing").Return(model.Product{}, repo.ErrNotFound)

	_, err := uc.Update(ctx, "missing", ProductInput{Name: "X", Price: decimal.RequireFromString("1")})
	assertHTTPStatus(t, err, http.StatusNotFound)
	productRepo.AssertNotCalled(t, "Save")
}

func TestProductListActive_PassesThrough(t *testing.T) {
	ctx := context.Background()
	productRepo := new(MockProductRepository)
	uc := NewProductUsecase(productRepo, &stubIDGen{id: "unused"})

	want := []model.Product{{ID: "p1", Name: "Scarf", Active: true}}
	productRepo.On("FindActive", ctx).Return(want, nil)

	got, err := uc.ListActive(ctx)
	assert.NoError(t, err)
	assert.Equal(t, want, got)
}
