package repo

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Skotchmaster/workshop/internal/models"
	"github.com/Skotchmaster/workshop/internal/testutil"
)

func TestCreateUser_DuplicateEmail(t *testing.T) {
	db := testutil.OpenTestDB(t)
	r := &GormRepo{DB: db}
	ctx := context.Background()

	_, err := r.CreateUser(ctx, &models.User{Name: "Alice", Email: "alice@example.com", Password: "x"})
	require.NoError(t, err)

	_, err = r.CreateUser(ctx, &models.User{Name: "Alice 2", Email: "alice@example.com", Password: "x"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDuplicate)
	assert.True(t, IsIntegrityViolation(err))
}

func TestGetUser_Missing(t *testing.T) {
	r := &GormRepo{DB: testutil.OpenTestDB(t)}

	_, err := r.GetUser(context.Background(), 99)
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
}

func TestCreateOrderItems_DuplicatePairRejected(t *testing.T) {
	db := testutil.OpenTestDB(t)
	r := &GormRepo{DB: db}
	ctx := context.Background()

	alice := testutil.CreateUser(t, db, "Alice", "alice@example.com", "pw")
	widget := testutil.CreateProduct(t, db, "Widget", "9.99")
	order := testutil.CreateOrder(t, db, alice)

	key := models.NewOrderItemKey(order.ID, widget.ID)
	item := models.NewOrderItem(key, 1, widget.Price)
	_, err := r.CreateOrderItem(ctx, &item)
	require.NoError(t, err)

	again := models.NewOrderItem(key, 2, widget.Price)
	_, err = r.CreateOrderItem(ctx, &again)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDuplicate)

	stored, err := r.GetOrderItem(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, 1, stored.Quantity)
}

func TestCreateOrderItem_UnknownProduct(t *testing.T) {
	db := testutil.OpenTestDB(t)
	r := &GormRepo{DB: db}

	alice := testutil.CreateUser(t, db, "Alice", "alice@example.com", "pw")
	order := testutil.CreateOrder(t, db, alice)

	item := models.NewOrderItem(models.NewOrderItemKey(order.ID, 404), 1, decimal.NewFromInt(1))
	_, err := r.CreateOrderItem(context.Background(), &item)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrForeignKey)
}

func TestCreateOrderItem_QuantityCheck(t *testing.T) {
	db := testutil.OpenTestDB(t)
	r := &GormRepo{DB: db}

	alice := testutil.CreateUser(t, db, "Alice", "alice@example.com", "pw")
	widget := testutil.CreateProduct(t, db, "Widget", "9.99")
	order := testutil.CreateOrder(t, db, alice)

	item := models.NewOrderItem(models.NewOrderItemKey(order.ID, widget.ID), 0, widget.Price)
	_, err := r.CreateOrderItem(context.Background(), &item)
	require.Error(t, err)
	assert.True(t, IsIntegrityViolation(err), "got %v", err)
}

func TestDeleteProduct_ClearsCategoriesButKeepsOrderReference(t *testing.T) {
	db := testutil.OpenTestDB(t)
	r := &GormRepo{DB: db}
	ctx := context.Background()

	tools := testutil.CreateCategory(t, db, "Tools")
	hammer := testutil.CreateProduct(t, db, "Hammer", "5.00", tools)
	require.NoError(t, r.DeleteProduct(ctx, hammer.ID))

	_, err := r.GetProduct(ctx, hammer.ID)
	assert.True(t, IsNotFound(err))

	_, err = r.GetCategory(ctx, tools.ID)
	require.NoError(t, err)

	alice := testutil.CreateUser(t, db, "Alice", "alice@example.com", "pw")
	widget := testutil.CreateProduct(t, db, "Widget", "9.99", tools)
	testutil.CreateOrder(t, db, alice, models.NewOrderItem(models.NewOrderItemKey(0, widget.ID), 1, widget.Price))

	err = r.Transaction(ctx, func(tx *GormRepo) error { return tx.DeleteProduct(ctx, widget.ID) })
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrForeignKey)

	still, err := r.GetProduct(ctx, widget.ID)
	require.NoError(t, err)
	require.Len(t, still.Categories, 1, "rolled back delete keeps the category links")
}

func TestTransaction_RollsBackOnError(t *testing.T) {
	db := testutil.OpenTestDB(t)
	r := &GormRepo{DB: db}
	ctx := context.Background()
	boom := errors.New("boom")

	err := r.Transaction(ctx, func(tx *GormRepo) error {
		if _, err := tx.CreateCategory(ctx, &models.Category{Name: "Tmp"}); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	cats, err := r.ListCategories(ctx)
	require.NoError(t, err)
	assert.Empty(t, cats)
}

func TestGetOrder_LoadsGraphInProductOrder(t *testing.T) {
	db := testutil.OpenTestDB(t)
	r := &GormRepo{DB: db}
	ctx := context.Background()

	alice := testutil.CreateUser(t, db, "Alice", "alice@example.com", "pw")
	a := testutil.CreateProduct(t, db, "A", "1.00")
	b := testutil.CreateProduct(t, db, "B", "2.00")
	order := testutil.CreateOrder(t, db, alice,
		models.NewOrderItem(models.NewOrderItemKey(0, b.ID), 1, b.Price),
		models.NewOrderItem(models.NewOrderItemKey(0, a.ID), 2, a.Price),
	)
	_, err := r.CreatePayment(ctx, &models.Payment{Moment: testutil.FixedTime, OrderID: order.ID})
	require.NoError(t, err)

	got, err := r.GetOrder(ctx, order.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Client)
	assert.Equal(t, "Alice", got.Client.Name)
	require.Len(t, got.Items, 2)
	assert.Equal(t, a.ID, got.Items[0].ProductID)
	require.NotNil(t, got.Items[0].Product)
	assert.Equal(t, "A", got.Items[0].Product.Name)
	require.NotNil(t, got.Payment)
	assert.True(t, decimal.RequireFromString("4.00").Equal(got.Total()))
}

func TestSearchProducts_LikeFallback(t *testing.T) {
	db := testutil.OpenTestDB(t)
	r := &GormRepo{DB: db}

	testutil.CreateProduct(t, db, "Red Widget", "1.00")
	testutil.CreateProduct(t, db, "Blue Widget", "1.00")
	testutil.CreateProduct(t, db, "Hammer", "1.00")

	total, items, err := r.SearchProducts(context.Background(), "widget", 0, 1)
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	require.Len(t, items, 1)
	assert.Equal(t, "Red Widget", items[0].Name)
}
