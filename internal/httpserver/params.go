package httpserver

import (
	"fmt"
	"log/slog"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/workshop/internal/models"
	"github.com/Skotchmaster/workshop/internal/util"
)

func parseID(c echo.Context, l *slog.Logger, op, name string) (uint, error) {
	id, err := util.ParseUint(c.Param(name))
	if err != nil || id == 0 {
		return 0, badRequest(l, op, fmt.Sprintf("%s must be a positive integer", name), err)
	}
	return id, nil
}

func parseItemKey(c echo.Context, l *slog.Logger, op string) (models.OrderItemKey, error) {
	orderID, err := parseID(c, l, op, "orderId")
	if err != nil {
		return models.OrderItemKey{}, err
	}
	productID, err := parseID(c, l, op, "productId")
	if err != nil {
		return models.OrderItemKey{}, err
	}
	return models.NewOrderItemKey(orderID, productID), nil
}

// bind decodes and validates the request body into req.
func bind(c echo.Context, l *slog.Logger, op string, req any) error {
	if err := c.Bind(req); err != nil {
		return badRequest(l, op, "invalid body", err)
	}
	if err := c.Validate(req); err != nil {
		return badRequest(l, op, err.Error(), err)
	}
	return nil
}
