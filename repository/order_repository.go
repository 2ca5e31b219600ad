package repositories

import (
	"context"

	"github.com/Y-A-Dawit/alx-backend-graphql-crm/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrderRepository defines the interface for order data access
type OrderRepository interface {
	Create(ctx context.Context, order *models.Order) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.Order, error)
}

// GormOrderRepository implements OrderRepository using GORM
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new instance of GormOrderRepository
func NewGormOrderRepository(db *gorm.DB) OrderRepository {
	return &GormOrderRepository{db: db}
}

// Create inserts the order together with its order_product rows in a
// single transaction; a failure on any row leaves nothing persisted.
// Association rows are inserted explicitly so the composite key on
// (order_id, product_id) rejects duplicate pairs instead of GORM's
// association upsert skipping them.
func (r *GormOrderRepository) Create(ctx context.Context, order *models.Order) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		orderProducts := order.OrderProducts
		order.OrderProducts = nil
		defer func() { order.OrderProducts = orderProducts }()

		if err := tx.Create(order).Error; err != nil {
			return err
		}
		for i := range orderProducts {
			orderProducts[i].OrderID = order.ID
		}
		if len(orderProducts) > 0 {
			if err := tx.Create(&orderProducts).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// FindByID retrieves an order with its customer and products preloaded
func (r *GormOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	var order models.Order
	if err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("OrderProducts.Product").
		Where("id = ?", id).
		First(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}
