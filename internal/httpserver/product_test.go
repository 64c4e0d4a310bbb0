package httpserver

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Skotchmaster/workshop/internal/events"
	"github.com/Skotchmaster/workshop/internal/models"
	"github.com/Skotchmaster/workshop/internal/testutil"
)

func TestProductRoutes_CRUD(t *testing.T) {
	env := newTestEnv(t, nil)
	tools := testutil.CreateCategory(t, env.DB, "Tools")

	rec := env.do(http.MethodPost, "/workshop/products", map[string]any{
		"name": "Hammer", "description": "steel", "price": "12.50", "category_ids": []uint{tools.ID},
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	p := decode[models.Product](t, rec)
	require.Len(t, p.Categories, 1)

	ev := env.Events.Last(t)
	assert.Equal(t, events.ProductCreated, ev.Body["type"])
	assert.Equal(t, "Hammer", ev.Body["name"])

	rec = env.do(http.MethodPut, fmt.Sprintf("/workshop/products/%d", p.ID), map[string]any{"img_url": "http://img/1.png"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	got := decode[models.Product](t, rec)
	assert.Equal(t, "Hammer", got.Name)
	assert.Equal(t, "http://img/1.png", got.ImgURL)
	assert.Len(t, got.Categories, 1)

	rec = env.do(http.MethodPost, "/workshop/products", map[string]any{"name": "Bad", "price": "-1"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.do(http.MethodDelete, fmt.Sprintf("/workshop/categories/%d", tools.ID), nil)
	assert.Equal(t, http.StatusConflict, rec.Code)

	require.Equal(t, http.StatusNoContent, env.do(http.MethodDelete, fmt.Sprintf("/workshop/products/%d", p.ID), nil).Code)
	require.Equal(t, http.StatusNoContent, env.do(http.MethodDelete, fmt.Sprintf("/workshop/categories/%d", tools.ID), nil).Code)
}

func TestProductRoutes_Search(t *testing.T) {
	env := newTestEnv(t, nil)
	testutil.CreateProduct(t, env.DB, "Red Widget", "1.00")
	testutil.CreateProduct(t, env.DB, "Blue Widget", "1.00")
	testutil.CreateProduct(t, env.DB, "Hammer", "1.00")

	rec := env.do(http.MethodGet, "/workshop/products/search?q=widget&page=1&size=1", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	resp := decode[struct {
		Data []models.Product `json:"data"`
		Meta map[string]any   `json:"meta"`
	}](t, rec)
	require.Len(t, resp.Data, 1)
	assert.EqualValues(t, 2, resp.Meta["total"])
	assert.EqualValues(t, 2, resp.Meta["total_pages"])
	assert.Equal(t, true, resp.Meta["has_next"])

	assert.Equal(t, http.StatusBadRequest, env.do(http.MethodGet, "/workshop/products/search", nil).Code)
}

func TestCategoryRoutes(t *testing.T) {
	env := newTestEnv(t, nil)

	rec := env.do(http.MethodPost, "/workshop/categories", map[string]string{"name": "Tools"})
	require.Equal(t, http.StatusCreated, rec.Code)
	cat := decode[models.Category](t, rec)

	rec = env.do(http.MethodPut, fmt.Sprintf("/workshop/categories/%d", cat.ID), map[string]string{"name": "Garden"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Garden", decode[models.Category](t, rec).Name)

	rec = env.do(http.MethodGet, "/workshop/categories", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]models.Category](t, rec), 1)

	assert.Equal(t, http.StatusBadRequest, env.do(http.MethodPost, "/workshop/categories", map[string]string{}).Code)
	assert.Equal(t, http.StatusNotFound, env.do(http.MethodGet, "/workshop/categories/99", nil).Code)
}
