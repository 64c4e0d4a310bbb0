package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/workshop/internal/logging"
	"github.com/Skotchmaster/workshop/internal/service"
	"github.com/Skotchmaster/workshop/internal/transport"
)

type OrderHTTP struct {
	Svc *service.OrderService
}

func (h *OrderHTTP) FindAll(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.find_all")

	orders, err := h.Svc.FindAll(ctx)
	if err != nil {
		return fail(l, "list_orders", err)
	}
	return c.JSON(http.StatusOK, transport.NewOrderResponses(orders))
}

func (h *OrderHTTP) FindByID(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.find_by_id")

	id, err := parseID(c, l, "get_order", "id")
	if err != nil {
		return err
	}
	order, err := h.Svc.FindByID(ctx, id)
	if err != nil {
		return fail(l, "get_order", err)
	}
	return c.JSON(http.StatusOK, transport.NewOrderResponse(order))
}

func (h *OrderHTTP) Save(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.save")

	var req transport.CreateOrderRequest
	if err := bind(c, l, "create_order", &req); err != nil {
		return err
	}
	order, err := h.Svc.Save(ctx, req)
	if err != nil {
		return fail(l, "create_order", err)
	}

	l.Info("create_order_success", "order_id", order.ID, "items", len(order.Items))
	return c.JSON(http.StatusCreated, transport.NewOrderResponse(order))
}

func (h *OrderHTTP) Update(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.update")

	id, err := parseID(c, l, "update_order", "id")
	if err != nil {
		return err
	}
	var req transport.UpdateOrderRequest
	if err := bind(c, l, "update_order", &req); err != nil {
		return err
	}
	order, err := h.Svc.Update(ctx, id, req)
	if err != nil {
		return fail(l, "update_order", err)
	}

	l.Info("update_order_success", "order_id", id, "status", order.Status)
	return c.JSON(http.StatusOK, transport.NewOrderResponse(order))
}

func (h *OrderHTTP) AddItem(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.add_item")

	id, err := parseID(c, l, "add_order_item", "id")
	if err != nil {
		return err
	}
	var req transport.OrderItemRequest
	if err := bind(c, l, "add_order_item", &req); err != nil {
		return err
	}
	order, err := h.Svc.AddItemToOrder(ctx, id, req)
	if err != nil {
		return fail(l, "add_order_item", err)
	}

	l.Info("add_order_item_success", "order_id", id, "product_id", req.ProductID)
	return c.JSON(http.StatusCreated, transport.NewOrderResponse(order))
}

func (h *OrderHTTP) Delete(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.delete")

	id, err := parseID(c, l, "delete_order", "id")
	if err != nil {
		return err
	}
	if err := h.Svc.Delete(ctx, id); err != nil {
		return fail(l, "delete_order", err)
	}

	l.Info("delete_order_success", "order_id", id)
	return c.NoContent(http.StatusNoContent)
}
