package events

import (
	"time"

	"github.com/google/uuid"
)

const (
	TopicProducts = "product_events"
	TopicOrders   = "order_events"
	TopicPayments = "payment_events"
)

const (
	ProductCreated = "product_created"
	ProductUpdated = "product_updated"
	ProductDeleted = "product_deleted"

	OrderCreated     = "order_created"
	OrderUpdated     = "order_updated"
	OrderItemAdded   = "order_item_added"
	OrderDeleted     = "order_deleted"
	OrderItemDeleted = "order_item_deleted"

	PaymentCreated = "payment_created"
	PaymentUpdated = "payment_updated"
	PaymentDeleted = "payment_deleted"
)

// New builds an event body with the common envelope fields set.
func New(kind string, fields map[string]any) map[string]any {
	ev := make(map[string]any, len(fields)+3)
	for k, v := range fields {
		ev[k] = v
	}
	ev["type"] = kind
	ev["event_id"] = uuid.NewString()
	ev["occurred_at"] = time.Now().UTC()
	return ev
}
