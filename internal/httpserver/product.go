package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/workshop/internal/logging"
	"github.com/Skotchmaster/workshop/internal/service"
	"github.com/Skotchmaster/workshop/internal/transport"
	"github.com/Skotchmaster/workshop/internal/util"
)

type ProductHTTP struct {
	Svc    *service.ProductService
	Search *service.SearchService
}

func (h *ProductHTTP) FindAll(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.find_all")

	prods, err := h.Svc.FindAll(ctx)
	if err != nil {
		return fail(l, "list_products", err)
	}
	return c.JSON(http.StatusOK, prods)
}

func (h *ProductHTTP) FindByID(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.find_by_id")

	id, err := parseID(c, l, "get_product", "id")
	if err != nil {
		return err
	}
	prod, err := h.Svc.FindByID(ctx, id)
	if err != nil {
		return fail(l, "get_product", err)
	}
	return c.JSON(http.StatusOK, prod)
}

func (h *ProductHTTP) Save(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.save")

	var req transport.CreateProductRequest
	if err := bind(c, l, "create_product", &req); err != nil {
		return err
	}
	prod, err := h.Svc.Save(ctx, req)
	if err != nil {
		return fail(l, "create_product", err)
	}

	l.Info("create_product_success", "product_id", prod.ID)
	return c.JSON(http.StatusCreated, prod)
}

func (h *ProductHTTP) Update(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.update")

	id, err := parseID(c, l, "update_product", "id")
	if err != nil {
		return err
	}
	var req transport.UpdateProductRequest
	if err := bind(c, l, "update_product", &req); err != nil {
		return err
	}
	prod, err := h.Svc.Update(ctx, id, req)
	if err != nil {
		return fail(l, "update_product", err)
	}

	l.Info("update_product_success", "product_id", id)
	return c.JSON(http.StatusOK, prod)
}

func (h *ProductHTTP) Delete(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.delete")

	id, err := parseID(c, l, "delete_product", "id")
	if err != nil {
		return err
	}
	if err := h.Svc.Delete(ctx, id); err != nil {
		return fail(l, "delete_product", err)
	}

	l.Info("delete_product_success", "product_id", id)
	return c.NoContent(http.StatusNoContent)
}

func (h *ProductHTTP) SearchProducts(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.search")

	q := c.QueryParam("q")
	page := util.ParseIntDefault(c.QueryParam("page"), 1)
	size := util.ParseIntDefault(c.QueryParam("size"), util.DefaultPageSize)
	_, limit := util.Calculate(page, size)
	if page < 1 {
		page = 1
	}

	total, items, err := h.Search.Search(ctx, q, page, size)
	if err != nil {
		return fail(l, "search_products", err)
	}

	return c.JSON(http.StatusOK, map[string]any{
		"data": items,
		"meta": map[string]any{
			"page":        page,
			"size":        limit,
			"total":       total,
			"total_pages": (total + int64(limit) - 1) / int64(limit),
			"has_prev":    page > 1,
			"has_next":    int64(page*limit) < total,
		},
	})
}
