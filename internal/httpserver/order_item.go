package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/workshop/internal/logging"
	"github.com/Skotchmaster/workshop/internal/models"
	"github.com/Skotchmaster/workshop/internal/service"
	"github.com/Skotchmaster/workshop/internal/transport"
)

type OrderItemHTTP struct {
	Svc *service.OrderItemService
}

func (h *OrderItemHTTP) FindAll(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order_item.find_all")

	items, err := h.Svc.FindAll(ctx)
	if err != nil {
		return fail(l, "list_order_items", err)
	}
	out := make([]transport.OrderItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, transport.NewOrderItemResponse(it))
	}
	return c.JSON(http.StatusOK, out)
}

func (h *OrderItemHTTP) FindByID(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order_item.find_by_id")

	key, err := parseItemKey(c, l, "get_order_item")
	if err != nil {
		return err
	}
	item, err := h.Svc.FindByOrderAndProduct(ctx, key.OrderID(), key.ProductID())
	if err != nil {
		return fail(l, "get_order_item", err)
	}
	return c.JSON(http.StatusOK, transport.NewOrderItemResponse(*item))
}

func (h *OrderItemHTTP) Save(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order_item.save")

	var req transport.SaveOrderItemRequest
	if err := bind(c, l, "create_order_item", &req); err != nil {
		return err
	}
	item := models.NewOrderItem(models.NewOrderItemKey(req.OrderID, req.ProductID), req.Quantity, req.Price)
	saved, err := h.Svc.Save(ctx, item)
	if err != nil {
		return fail(l, "create_order_item", err)
	}
	return c.JSON(http.StatusCreated, transport.NewOrderItemResponse(*saved))
}

func (h *OrderItemHTTP) Delete(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order_item.delete")

	key, err := parseItemKey(c, l, "delete_order_item")
	if err != nil {
		return err
	}
	if err := h.Svc.DeleteByID(ctx, key); err != nil {
		return fail(l, "delete_order_item", err)
	}

	l.Info("delete_order_item_success", "order_id", key.OrderID(), "product_id", key.ProductID())
	return c.NoContent(http.StatusNoContent)
}
