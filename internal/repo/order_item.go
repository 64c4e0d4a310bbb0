package repo

import (
	"context"

	"gorm.io/gorm/clause"

	"github.com/Skotchmaster/workshop/internal/models"
)

func (r *GormRepo) ListOrderItems(ctx context.Context) ([]models.OrderItem, error) {
	items := make([]models.OrderItem, 0)
	if err := r.DB.WithContext(ctx).Preload("Product").
		Order("order_id ASC").Order("product_id ASC").
		Find(&items).Error; err != nil {
		return nil, translate(err, "list order items")
	}
	return items, nil
}

func (r *GormRepo) GetOrderItem(ctx context.Context, key models.OrderItemKey) (*models.OrderItem, error) {
	var item models.OrderItem
	if err := r.DB.WithContext(ctx).Preload("Product").
		Where("order_id = ? AND product_id = ?", key.OrderID(), key.ProductID()).
		First(&item).Error; err != nil {
		return nil, translate(err, "get order item")
	}
	return &item, nil
}

func (r *GormRepo) CreateOrderItems(ctx context.Context, items []models.OrderItem) error {
	if len(items) == 0 {
		return nil
	}
	if err := r.DB.WithContext(ctx).Omit(clause.Associations).Create(&items).Error; err != nil {
		return translate(err, "create order items")
	}
	return nil
}

func (r *GormRepo) CreateOrderItem(ctx context.Context, item *models.OrderItem) (*models.OrderItem, error) {
	if err := r.DB.WithContext(ctx).Omit(clause.Associations).Create(item).Error; err != nil {
		return nil, translate(err, "create order item")
	}
	return item, nil
}

func (r *GormRepo) DeleteOrderItem(ctx context.Context, key models.OrderItemKey) error {
	res := r.DB.WithContext(ctx).
		Where("order_id = ? AND product_id = ?", key.OrderID(), key.ProductID()).
		Delete(&models.OrderItem{})
	if res.Error != nil {
		return translate(res.Error, "delete order item")
	}
	if res.RowsAffected == 0 {
		return translate(ErrNotFound, "delete order item")
	}
	return nil
}
