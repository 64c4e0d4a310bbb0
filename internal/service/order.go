package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/Skotchmaster/workshop/internal/events"
	"github.com/Skotchmaster/workshop/internal/models"
	"github.com/Skotchmaster/workshop/internal/repo"
	"github.com/Skotchmaster/workshop/internal/transport"
)

type OrderService struct {
	Repo     *repo.GormRepo
	Producer EventPublisher
	Now      func() time.Time
}

func (s *OrderService) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return time.Now().UTC()
}

func (s *OrderService) FindAll(ctx context.Context) ([]models.Order, error) {
	orders, err := s.Repo.ListOrders(ctx)
	return orders, passErr(err)
}

func (s *OrderService) FindByID(ctx context.Context, id uint) (*models.Order, error) {
	order, err := s.Repo.GetOrder(ctx, id)
	if err != nil {
		return nil, lookupErr(err, "order", id)
	}
	return order, nil
}

// Save creates the order and all of its items in one transaction. Nothing is
// stored if the client, any product or any item insert fails.
func (s *OrderService) Save(ctx context.Context, req transport.CreateOrderRequest) (*models.Order, error) {
	status := req.Status
	if status == "" {
		status = models.OrderStatusPending
	}
	if !status.Valid() {
		return nil, invalid("unknown status %q", status)
	}
	for i, it := range req.Items {
		if err := validateItem(it); err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
	}

	var orderID uint
	err := s.Repo.Transaction(ctx, func(tx *repo.GormRepo) error {
		ok, err := tx.UserExists(ctx, req.ClientID)
		if err != nil {
			return passErr(err)
		}
		if !ok {
			return notFound("user", req.ClientID)
		}

		ids := make([]uint, 0, len(req.Items))
		for _, it := range req.Items {
			ids = append(ids, it.ProductID)
		}
		products, err := tx.GetProductsByIDs(ctx, ids)
		if err != nil {
			return passErr(err)
		}
		for _, id := range ids {
			if _, ok := products[id]; !ok {
				return notFound("product", id)
			}
		}

		order, err := tx.CreateOrder(ctx, &models.Order{
			Moment:   s.now(),
			Status:   status,
			ClientID: req.ClientID,
		})
		if err != nil {
			return passErr(err)
		}

		items := make([]models.OrderItem, 0, len(req.Items))
		for _, it := range req.Items {
			product := products[it.ProductID]
			items = append(items, snapshotItem(order.ID, product, it))
		}
		if err := tx.CreateOrderItems(ctx, items); err != nil {
			return passErr(err)
		}
		orderID = order.ID
		return nil
	})
	if err != nil {
		return nil, err
	}

	order, err := s.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	publish(ctx, s.Producer, events.TopicOrders, orderKey(order.ID), events.New(events.OrderCreated, map[string]any{
		"order_id":  order.ID,
		"client_id": order.ClientID,
		"status":    order.Status,
		"items":     len(order.Items),
		"total":     order.Total().String(),
	}))
	return order, nil
}

// Update changes the status only; items are managed through AddItemToOrder
// and the order item endpoints.
func (s *OrderService) Update(ctx context.Context, id uint, req transport.UpdateOrderRequest) (*models.Order, error) {
	if req.Status != nil && !req.Status.Valid() {
		return nil, invalid("unknown status %q", *req.Status)
	}

	err := s.Repo.Transaction(ctx, func(tx *repo.GormRepo) error {
		ok, err := tx.OrderExists(ctx, id)
		if err != nil {
			return passErr(err)
		}
		if !ok {
			return notFound("order", id)
		}
		if req.Status == nil {
			return nil
		}
		return passErr(tx.UpdateOrderStatus(ctx, id, *req.Status))
	})
	if err != nil {
		return nil, err
	}

	order, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	publish(ctx, s.Producer, events.TopicOrders, orderKey(id), events.New(events.OrderUpdated, map[string]any{
		"order_id": id,
		"status":   order.Status,
	}))
	return order, nil
}

// AddItemToOrder appends one item. A product already on the order is not
// merged: the composite key rejects it and the error wraps ErrStorage.
func (s *OrderService) AddItemToOrder(ctx context.Context, orderID uint, req transport.OrderItemRequest) (*models.Order, error) {
	if err := validateItem(req); err != nil {
		return nil, err
	}

	err := s.Repo.Transaction(ctx, func(tx *repo.GormRepo) error {
		ok, err := tx.OrderExists(ctx, orderID)
		if err != nil {
			return passErr(err)
		}
		if !ok {
			return notFound("order", orderID)
		}
		product, err := tx.GetProduct(ctx, req.ProductID)
		if err != nil {
			return lookupErr(err, "product", req.ProductID)
		}
		item := snapshotItem(orderID, *product, req)
		_, err = tx.CreateOrderItem(ctx, &item)
		return passErr(err)
	})
	if err != nil {
		return nil, err
	}

	order, err := s.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	publish(ctx, s.Producer, events.TopicOrders, orderKey(orderID), events.New(events.OrderItemAdded, map[string]any{
		"order_id":   orderID,
		"product_id": req.ProductID,
		"quantity":   req.Quantity,
	}))
	return order, nil
}

// Delete is refused while items or a payment still reference the order.
func (s *OrderService) Delete(ctx context.Context, id uint) error {
	err := s.Repo.Transaction(ctx, func(tx *repo.GormRepo) error {
		if err := tx.DeleteOrder(ctx, id); err != nil {
			return deleteErr(err, "order", id)
		}
		return nil
	})
	if err != nil {
		return err
	}
	publish(ctx, s.Producer, events.TopicOrders, orderKey(id), events.New(events.OrderDeleted, map[string]any{
		"order_id": id,
	}))
	return nil
}

func validateItem(it transport.OrderItemRequest) error {
	if it.ProductID == 0 {
		return invalid("product_id required")
	}
	if it.Quantity < 1 {
		return invalid("quantity must be >= 1")
	}
	if it.Price != nil && it.Price.IsNegative() {
		return invalid("price must be >= 0")
	}
	return nil
}

// snapshotItem fixes the item price at creation time. Without an explicit
// price the product's current price is used.
func snapshotItem(orderID uint, p models.Product, it transport.OrderItemRequest) models.OrderItem {
	price := p.Price
	if it.Price != nil {
		price = *it.Price
	}
	return models.NewOrderItem(models.NewOrderItemKey(orderID, p.ID), it.Quantity, price)
}

func orderKey(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
