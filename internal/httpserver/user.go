package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/workshop/internal/logging"
	"github.com/Skotchmaster/workshop/internal/service"
	"github.com/Skotchmaster/workshop/internal/transport"
)

type UserHTTP struct {
	Svc *service.UserService
}

func (h *UserHTTP) FindAll(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "user.find_all")

	users, err := h.Svc.FindAll(ctx)
	if err != nil {
		return fail(l, "list_users", err)
	}
	return c.JSON(http.StatusOK, users)
}

func (h *UserHTTP) FindByID(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "user.find_by_id")

	id, err := parseID(c, l, "get_user", "id")
	if err != nil {
		return err
	}
	user, err := h.Svc.FindByID(ctx, id)
	if err != nil {
		return fail(l, "get_user", err)
	}
	return c.JSON(http.StatusOK, user)
}

func (h *UserHTTP) Save(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "user.save")

	var req transport.CreateUserRequest
	if err := bind(c, l, "create_user", &req); err != nil {
		return err
	}
	user, err := h.Svc.Save(ctx, req)
	if err != nil {
		return fail(l, "create_user", err)
	}

	l.Info("create_user_success", "user_id", user.ID)
	return c.JSON(http.StatusCreated, user)
}

func (h *UserHTTP) Update(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "user.update")

	id, err := parseID(c, l, "update_user", "id")
	if err != nil {
		return err
	}
	var req transport.UpdateUserRequest
	if err := bind(c, l, "update_user", &req); err != nil {
		return err
	}
	user, err := h.Svc.Update(ctx, id, req)
	if err != nil {
		return fail(l, "update_user", err)
	}

	l.Info("update_user_success", "user_id", id)
	return c.JSON(http.StatusOK, user)
}

func (h *UserHTTP) Delete(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "user.delete")

	id, err := parseID(c, l, "delete_user", "id")
	if err != nil {
		return err
	}
	if err := h.Svc.Delete(ctx, id); err != nil {
		return fail(l, "delete_user", err)
	}

	l.Info("delete_user_success", "user_id", id)
	return c.NoContent(http.StatusNoContent)
}
