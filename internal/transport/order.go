package transport

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/Skotchmaster/workshop/internal/models"
)

type OrderItemResponse struct {
	OrderID     uint            `json:"order_id"`
	ProductID   uint            `json:"product_id"`
	ProductName string          `json:"product_name,omitempty"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

type OrderResponse struct {
	ID      uint                `json:"id"`
	Moment  time.Time           `json:"moment"`
	Status  models.OrderStatus  `json:"status"`
	Client  *models.User        `json:"client,omitempty"`
	Items   []OrderItemResponse `json:"items"`
	Payment *models.Payment     `json:"payment,omitempty"`
	Total   decimal.Decimal     `json:"total"`
}

func NewOrderItemResponse(it models.OrderItem) OrderItemResponse {
	r := OrderItemResponse{
		OrderID:   it.OrderID,
		ProductID: it.ProductID,
		Quantity:  it.Quantity,
		Price:     it.Price,
		Subtotal:  it.Subtotal(),
	}
	if it.Product != nil {
		r.ProductName = it.Product.Name
	}
	return r
}

func NewOrderResponse(o *models.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, NewOrderItemResponse(it))
	}
	return OrderResponse{
		ID:      o.ID,
		Moment:  o.Moment,
		Status:  o.Status,
		Client:  o.Client,
		Items:   items,
		Payment: o.Payment,
		Total:   o.Total(),
	}
}

func NewOrderResponses(orders []models.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for i := range orders {
		out = append(out, NewOrderResponse(&orders[i]))
	}
	return out
}
