package services

import (
	"context"
	"errors"
	"time"

	"github.com/Y-A-Dawit/alx-backend-graphql-crm/models"
	repositories "github.com/Y-A-Dawit/alx-backend-graphql-crm/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type OrderService struct {
	orderRepo    repositories.OrderRepository
	customerRepo repositories.CustomerRepository
	productRepo  repositories.ProductRepository
}

func NewOrderService(
	orderRepo repositories.OrderRepository,
	customerRepo repositories.CustomerRepository,
	productRepo repositories.ProductRepository,
) *OrderService {
	return &OrderService{
		orderRepo:    orderRepo,
		customerRepo: customerRepo,
		productRepo:  productRepo,
	}
}

// Create validates the referenced customer and products, snapshots the
// total from current product prices and persists the order with its
// associations atomically. Any validation failure writes nothing.
func (s *OrderService) Create(ctx context.Context, customerID string, productIDs []string, orderDate *time.Time) (*models.Order, error) {
	customerUUID, err := uuid.Parse(customerID)
	if err != nil {
		return nil, NewError(KindNotFound, "Invalid customer ID", nil)
	}
	if _, err := s.customerRepo.FindByID(ctx, customerUUID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewError(KindNotFound, "Invalid customer ID", nil)
		}
		zap.L().Error("Failed to look up customer", zap.String("customer_id", customerID), zap.Error(err))
		return nil, NewError(KindInternal, "Failed to create order", err)
	}

	if len(productIDs) == 0 {
		return nil, NewError(KindNotFound, "Invalid product IDs", nil)
	}

	// An unparseable id can never resolve, so it is kept in the requested
	// count and caught by the mismatch check below.
	productUUIDs := make([]uuid.UUID, 0, len(productIDs))
	for _, id := range productIDs {
		pid, err := uuid.Parse(id)
		if err != nil {
			continue
		}
		productUUIDs = append(productUUIDs, pid)
	}

	products, err := s.productRepo.FindByIDs(ctx, productUUIDs)
	if err != nil {
		zap.L().Error("Failed to resolve products", zap.Error(err))
		return nil, NewError(KindInternal, "Failed to create order", err)
	}
	if len(products) == 0 {
		return nil, NewError(KindNotFound, "Invalid product IDs", nil)
	}
	// Count comparison only: duplicate ids in the request collapse on
	// resolve and are rejected here as a mismatch.
	if len(products) != len(productIDs) {
		return nil, NewError(KindPartialMismatch, "One or more product IDs do not exist", nil)
	}

	total := decimal.Zero
	orderProducts := make([]models.OrderProduct, 0, len(products))
	for _, p := range products {
		total = total.Add(p.Price)
		orderProducts = append(orderProducts, models.OrderProduct{ProductID: p.ID})
	}

	date := time.Now()
	if orderDate != nil {
		date = *orderDate
	}

	order := &models.Order{
		CustomerID:    customerUUID,
		TotalAmount:   total,
		OrderDate:     date,
		OrderProducts: orderProducts,
	}
	if err := s.orderRepo.Create(ctx, order); err != nil {
		zap.L().Error("Failed to create order", zap.String("customer_id", customerID), zap.Error(err))
		return nil, NewError(KindInternal, "Failed to create order", err)
	}

	hydrated, err := s.orderRepo.FindByID(ctx, order.ID)
	if err != nil {
		zap.L().Error("Failed to reload order", zap.String("order_id", order.ID.String()), zap.Error(err))
		return nil, NewError(KindInternal, "Failed to create order", err)
	}
	return hydrated, nil
}
