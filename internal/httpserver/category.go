package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/workshop/internal/logging"
	"github.com/Skotchmaster/workshop/internal/service"
	"github.com/Skotchmaster/workshop/internal/transport"
)

type CategoryHTTP struct {
	Svc *service.CategoryService
}

func (h *CategoryHTTP) FindAll(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "category.find_all")

	cats, err := h.Svc.FindAll(ctx)
	if err != nil {
		return fail(l, "list_categories", err)
	}
	return c.JSON(http.StatusOK, cats)
}

func (h *CategoryHTTP) FindByID(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "category.find_by_id")

	id, err := parseID(c, l, "get_category", "id")
	if err != nil {
		return err
	}
	cat, err := h.Svc.FindByID(ctx, id)
	if err != nil {
		return fail(l, "get_category", err)
	}
	return c.JSON(http.StatusOK, cat)
}

func (h *CategoryHTTP) Save(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "category.save")

	var req transport.CreateCategoryRequest
	if err := bind(c, l, "create_category", &req); err != nil {
		return err
	}
	cat, err := h.Svc.Save(ctx, req)
	if err != nil {
		return fail(l, "create_category", err)
	}
	return c.JSON(http.StatusCreated, cat)
}

func (h *CategoryHTTP) Update(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "category.update")

	id, err := parseID(c, l, "update_category", "id")
	if err != nil {
		return err
	}
	var req transport.UpdateCategoryRequest
	if err := bind(c, l, "update_category", &req); err != nil {
		return err
	}
	cat, err := h.Svc.Update(ctx, id, req)
	if err != nil {
		return fail(l, "update_category", err)
	}
	return c.JSON(http.StatusOK, cat)
}

func (h *CategoryHTTP) Delete(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "category.delete")

	id, err := parseID(c, l, "delete_category", "id")
	if err != nil {
		return err
	}
	if err := h.Svc.Delete(ctx, id); err != nil {
		return fail(l, "delete_category", err)
	}
	return c.NoContent(http.StatusNoContent)
}
