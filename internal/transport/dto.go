package transport

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/Skotchmaster/workshop/internal/models"
)

type CreateUserRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Phone    string `json:"phone"`
	Password string `json:"password" validate:"required,min=6"`
}

// UpdateUserRequest has no password field; passwords are never changed
// through the generic update.
type UpdateUserRequest struct {
	Name  *string `json:"name"  validate:"omitnil,min=1"`
	Email *string `json:"email" validate:"omitnil,email"`
	Phone *string `json:"phone"`
}

type CreateCategoryRequest struct {
	Name string `json:"name" validate:"required"`
}

type UpdateCategoryRequest struct {
	Name *string `json:"name" validate:"omitnil,min=1"`
}

type CreateProductRequest struct {
	Name        string          `json:"name"         validate:"required"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	ImgURL      string          `json:"img_url"`
	CategoryIDs []uint          `json:"category_ids"`
}

// UpdateProductRequest: a present category_ids list replaces the product's
// categories, an absent one leaves them alone.
type UpdateProductRequest struct {
	Name        *string          `json:"name"         validate:"omitnil,min=1"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	ImgURL      *string          `json:"img_url"`
	CategoryIDs *[]uint          `json:"category_ids"`
}

type OrderItemRequest struct {
	ProductID uint             `json:"product_id" validate:"required"`
	Quantity  int              `json:"quantity"   validate:"gte=1"`
	Price     *decimal.Decimal `json:"price"`
}

type CreateOrderRequest struct {
	ClientID uint               `json:"client_id" validate:"required"`
	Status   models.OrderStatus `json:"status"`
	Items    []OrderItemRequest `json:"items"     validate:"dive"`
}

type UpdateOrderRequest struct {
	Status *models.OrderStatus `json:"status"`
}

type SaveOrderItemRequest struct {
	OrderID   uint            `json:"order_id"   validate:"required"`
	ProductID uint            `json:"product_id" validate:"required"`
	Quantity  int             `json:"quantity"   validate:"gte=1"`
	Price     decimal.Decimal `json:"price"`
}

type CreatePaymentRequest struct {
	OrderID uint       `json:"order_id" validate:"required"`
	Moment  *time.Time `json:"moment"`
}

type UpdatePaymentRequest struct {
	Moment *time.Time `json:"moment"`
}

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}
