package service

import (
	"context"
	"fmt"

	"github.com/Skotchmaster/workshop/internal/events"
	"github.com/Skotchmaster/workshop/internal/models"
	"github.com/Skotchmaster/workshop/internal/repo"
)

// OrderItemService gives direct access to order items by their composite
// key. Storage failures, integrity violations included, surface as
// ErrStorage.
type OrderItemService struct {
	Repo     *repo.GormRepo
	Producer EventPublisher
}

func (s *OrderItemService) FindAll(ctx context.Context) ([]models.OrderItem, error) {
	items, err := s.Repo.ListOrderItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStorage, err)
	}
	return items, nil
}

// FindByID reports a miss through found rather than an error.
func (s *OrderItemService) FindByID(ctx context.Context, key models.OrderItemKey) (*models.OrderItem, bool, error) {
	item, err := s.Repo.GetOrderItem(ctx, key)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("%w: %w", ErrStorage, err)
	}
	return item, true, nil
}

func (s *OrderItemService) FindByOrderAndProduct(ctx context.Context, orderID, productID uint) (*models.OrderItem, error) {
	key := models.NewOrderItemKey(orderID, productID)
	item, ok, err := s.FindByID(ctx, key)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, notFound("order item", key)
	}
	return item, nil
}

func (s *OrderItemService) Save(ctx context.Context, item models.OrderItem) (*models.OrderItem, error) {
	if item.Quantity < 1 {
		return nil, invalid("quantity must be >= 1")
	}
	if item.Price.IsNegative() {
		return nil, invalid("price must be >= 0")
	}
	saved, err := s.Repo.CreateOrderItem(ctx, &item)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStorage, err)
	}
	publish(ctx, s.Producer, events.TopicOrders, orderKey(item.OrderID), events.New(events.OrderItemAdded, map[string]any{
		"order_id":   item.OrderID,
		"product_id": item.ProductID,
		"quantity":   item.Quantity,
	}))
	return saved, nil
}

func (s *OrderItemService) DeleteByID(ctx context.Context, key models.OrderItemKey) error {
	err := s.Repo.Transaction(ctx, func(tx *repo.GormRepo) error {
		err := tx.DeleteOrderItem(ctx, key)
		switch {
		case err == nil:
			return nil
		case repo.IsNotFound(err):
			return notFound("order item", key)
		default:
			return fmt.Errorf("%w: %w", ErrStorage, err)
		}
	})
	if err != nil {
		return err
	}
	publish(ctx, s.Producer, events.TopicOrders, orderKey(key.OrderID()), events.New(events.OrderItemDeleted, map[string]any{
		"order_id":   key.OrderID(),
		"product_id": key.ProductID(),
	}))
	return nil
}
