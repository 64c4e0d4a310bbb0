package models

type OrderStatus string

const (
	OrderStatusPending        OrderStatus = "PENDING"
	OrderStatusWaitingPayment OrderStatus = "WAITING_PAYMENT"
	OrderStatusPaid           OrderStatus = "PAID"
	OrderStatusShipped        OrderStatus = "SHIPPED"
	OrderStatusDelivered      OrderStatus = "DELIVERED"
	OrderStatusCanceled       OrderStatus = "CANCELED"
)

var orderStatuses = map[OrderStatus]struct{}{
	OrderStatusPending:        {},
	OrderStatusWaitingPayment: {},
	OrderStatusPaid:           {},
	OrderStatusShipped:        {},
	OrderStatusDelivered:      {},
	OrderStatusCanceled:       {},
}

func (s OrderStatus) Valid() bool {
	_, ok := orderStatuses[s]
	return ok
}
