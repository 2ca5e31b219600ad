package services

import (
	"context"

	"github.com/Y-A-Dawit/alx-backend-graphql-crm/models"
	repositories "github.com/Y-A-Dawit/alx-backend-graphql-crm/repository"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type ProductService struct {
	productRepo repositories.ProductRepository
}

func NewProductService(productRepo repositories.ProductRepository) *ProductService {
	return &ProductService{productRepo: productRepo}
}

// Create validates and persists a single product.
func (s *ProductService) Create(ctx context.Context, name string, price decimal.Decimal, stock int) (*models.Product, error) {
	if name == "" {
		return nil, NewError(KindInvalidValue, "Name is required", nil)
	}
	if price.Cmp(decimal.Zero) <= 0 {
		return nil, NewError(KindInvalidValue, "Price must be positive", nil)
	}
	if stock < 0 {
		return nil, NewError(KindInvalidValue, "Stock cannot be negative", nil)
	}

	product := &models.Product{
		Name:  name,
		Price: price,
		Stock: stock,
	}
	if err := s.productRepo.Create(ctx, product); err != nil {
		zap.L().Error("Failed to create product", zap.String("name", name), zap.Error(err))
		return nil, NewError(KindInternal, "Failed to create product", err)
	}

	return product, nil
}
