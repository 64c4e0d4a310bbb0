package repo

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Skotchmaster/workshop/internal/models"
)

func withOrderGraph(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Client").
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_items.product_id ASC")
		}).
		Preload("Items.Product").
		Preload("Payment")
}

func (r *GormRepo) ListOrders(ctx context.Context) ([]models.Order, error) {
	return findAll[models.Order](ctx, r.DB, "list orders", withOrderGraph)
}

func (r *GormRepo) GetOrder(ctx context.Context, id uint) (*models.Order, error) {
	return findByID[models.Order](ctx, r.DB, "get order", id, withOrderGraph)
}

func (r *GormRepo) OrderExists(ctx context.Context, id uint) (bool, error) {
	return existsByID[models.Order](ctx, r.DB, "order exists", id)
}

// CreateOrder inserts the order row only. Items go through CreateOrderItems
// so a repeated (order, product) pair is rejected instead of upserted.
func (r *GormRepo) CreateOrder(ctx context.Context, order *models.Order) (*models.Order, error) {
	if err := r.DB.WithContext(ctx).Omit(clause.Associations).Create(order).Error; err != nil {
		return nil, translate(err, "create order")
	}
	return order, nil
}

func (r *GormRepo) UpdateOrderStatus(ctx context.Context, id uint, status models.OrderStatus) error {
	res := r.DB.WithContext(ctx).Model(&models.Order{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return translate(res.Error, "update order status")
	}
	return nil
}

func (r *GormRepo) DeleteOrder(ctx context.Context, id uint) error {
	return deleteByID[models.Order](ctx, r.DB, "delete order", id)
}
