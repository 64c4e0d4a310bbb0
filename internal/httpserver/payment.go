package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/workshop/internal/logging"
	"github.com/Skotchmaster/workshop/internal/service"
	"github.com/Skotchmaster/workshop/internal/transport"
)

type PaymentHTTP struct {
	Svc *service.PaymentService
}

func (h *PaymentHTTP) FindAll(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "payment.find_all")

	payments, err := h.Svc.FindAll(ctx)
	if err != nil {
		return fail(l, "list_payments", err)
	}
	return c.JSON(http.StatusOK, payments)
}

func (h *PaymentHTTP) FindByID(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "payment.find_by_id")

	id, err := parseID(c, l, "get_payment", "id")
	if err != nil {
		return err
	}
	p, err := h.Svc.FindByID(ctx, id)
	if err != nil {
		return fail(l, "get_payment", err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *PaymentHTTP) Save(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "payment.save")

	var req transport.CreatePaymentRequest
	if err := bind(c, l, "create_payment", &req); err != nil {
		return err
	}
	p, err := h.Svc.CreatePayment(ctx, req)
	if err != nil {
		return fail(l, "create_payment", err)
	}

	l.Info("create_payment_success", "payment_id", p.ID, "order_id", p.OrderID)
	return c.JSON(http.StatusCreated, p)
}

func (h *PaymentHTTP) Update(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "payment.update")

	id, err := parseID(c, l, "update_payment", "id")
	if err != nil {
		return err
	}
	var req transport.UpdatePaymentRequest
	if err := bind(c, l, "update_payment", &req); err != nil {
		return err
	}
	p, err := h.Svc.Update(ctx, id, req)
	if err != nil {
		return fail(l, "update_payment", err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *PaymentHTTP) Delete(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "payment.delete")

	id, err := parseID(c, l, "delete_payment", "id")
	if err != nil {
		return err
	}
	if err := h.Svc.Delete(ctx, id); err != nil {
		return fail(l, "delete_payment", err)
	}
	return c.NoContent(http.StatusNoContent)
}
