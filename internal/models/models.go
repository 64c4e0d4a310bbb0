package models

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type User struct {
	ID       uint   `gorm:"primaryKey;autoIncrement"  json:"id"`
	Name     string `gorm:"not null"                  json:"name"`
	Email    string `gorm:"uniqueIndex;not null"      json:"email"`
	Phone    string `json:"phone"`
	Password string `gorm:"not null"                  json:"-"`
}

type Category struct {
	ID   uint   `gorm:"primaryKey;autoIncrement"  json:"id"`
	Name string `gorm:"not null"                  json:"name"`
}

type Product struct {
	ID          uint            `gorm:"primaryKey;autoIncrement"       json:"id"`
	Name        string          `gorm:"not null"                       json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `gorm:"type:numeric(12,2);not null"    json:"price"`
	ImgURL      string          `json:"img_url"`
	Categories  []Category      `gorm:"many2many:product_categories"   json:"categories"`
}

type Order struct {
	ID       uint        `gorm:"primaryKey;autoIncrement"       json:"id"`
	Moment   time.Time   `gorm:"not null"                       json:"moment"`
	Status   OrderStatus `gorm:"type:varchar(32);not null"      json:"status"`
	ClientID uint        `gorm:"index;not null"                 json:"client_id"`
	Client   *User       `gorm:"foreignKey:ClientID"            json:"client,omitempty"`
	Items    []OrderItem `gorm:"foreignKey:OrderID"             json:"items"`
	Payment  *Payment    `gorm:"foreignKey:OrderID"             json:"payment,omitempty"`
}

// Total sums the subtotals of the items currently loaded on the order.
func (o *Order) Total() decimal.Decimal {
	total := decimal.Zero
	for i := range o.Items {
		total = total.Add(o.Items[i].Subtotal())
	}
	return total
}

// OrderItem is identified by the (order, product) pair. Price is the value
// captured when the item was added, not the product's current price.
type OrderItem struct {
	OrderID   uint            `gorm:"primaryKey;autoIncrement:false"  json:"order_id"`
	ProductID uint            `gorm:"primaryKey;autoIncrement:false"  json:"product_id"`
	Product   *Product        `gorm:"foreignKey:ProductID"            json:"product,omitempty"`
	Quantity  int             `gorm:"not null;check:quantity>0"       json:"quantity"`
	Price     decimal.Decimal `gorm:"type:numeric(12,2);not null"     json:"price"`
}

func NewOrderItem(key OrderItemKey, quantity int, price decimal.Decimal) OrderItem {
	return OrderItem{
		OrderID:   key.orderID,
		ProductID: key.productID,
		Quantity:  quantity,
		Price:     price,
	}
}

func (i OrderItem) Key() OrderItemKey {
	return NewOrderItemKey(i.OrderID, i.ProductID)
}

func (i OrderItem) Subtotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// OrderItemKey is the composite identity of an OrderItem. It has no setters.
type OrderItemKey struct {
	orderID   uint
	productID uint
}

func NewOrderItemKey(orderID, productID uint) OrderItemKey {
	return OrderItemKey{orderID: orderID, productID: productID}
}

func (k OrderItemKey) OrderID() uint   { return k.orderID }
func (k OrderItemKey) ProductID() uint { return k.productID }

func (k OrderItemKey) String() string {
	return fmt.Sprintf("order=%d product=%d", k.orderID, k.productID)
}

type Payment struct {
	ID      uint      `gorm:"primaryKey;autoIncrement"  json:"id"`
	Moment  time.Time `gorm:"not null"                  json:"moment"`
	OrderID uint      `gorm:"index;not null"            json:"order_id"`
}

func All() []any {
	return []any{&User{}, &Category{}, &Product{}, &Order{}, &OrderItem{}, &Payment{}}
}
