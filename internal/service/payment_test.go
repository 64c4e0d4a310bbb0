package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Skotchmaster/workshop/internal/events"
	"github.com/Skotchmaster/workshop/internal/testutil"
	"github.com/Skotchmaster/workshop/internal/transport"
)

func TestPaymentService_CreateAndUpdate(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := testutil.CreateUser(t, env.DB, "Alice", "alice@example.com", "pw")
	order := testutil.CreateOrder(t, env.DB, alice)

	p, err := env.Payments.CreatePayment(ctx, transport.CreatePaymentRequest{OrderID: order.ID})
	require.NoError(t, err)
	assert.Equal(t, order.ID, p.OrderID)
	assert.True(t, testutil.FixedTime.Equal(p.Moment))
	assert.Equal(t, events.PaymentCreated, env.Events.Last(t).Body["type"])

	later := testutil.FixedTime.Add(2 * time.Hour)
	got, err := env.Payments.Update(ctx, p.ID, transport.UpdatePaymentRequest{Moment: &later})
	require.NoError(t, err)
	assert.True(t, later.Equal(got.Moment))
	assert.Equal(t, order.ID, got.OrderID)

	got, err = env.Payments.Update(ctx, p.ID, transport.UpdatePaymentRequest{})
	require.NoError(t, err)
	assert.True(t, later.Equal(got.Moment))

	loaded, err := env.Orders.FindByID(ctx, order.ID)
	require.NoError(t, err)
	require.NotNil(t, loaded.Payment)
	assert.Equal(t, p.ID, loaded.Payment.ID)
}

func TestPaymentService_CreateMissingOrder(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.Payments.CreatePayment(context.Background(), transport.CreatePaymentRequest{OrderID: 77})
	require.ErrorIs(t, err, ErrNotFound)
	assert.Zero(t, env.Events.Len())
}

func TestPaymentService_UpdateMissing(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.Payments.Update(context.Background(), 3, transport.UpdatePaymentRequest{})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestPaymentService_DeleteFreesOrder(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := testutil.CreateUser(t, env.DB, "Alice", "alice@example.com", "pw")
	order := testutil.CreateOrder(t, env.DB, alice)
	p, err := env.Payments.CreatePayment(ctx, transport.CreatePaymentRequest{OrderID: order.ID})
	require.NoError(t, err)

	require.ErrorIs(t, env.Orders.Delete(ctx, order.ID), ErrConflict)

	require.NoError(t, env.Payments.Delete(ctx, p.ID))
	_, err = env.Payments.FindByID(ctx, p.ID)
	require.ErrorIs(t, err, ErrNotFound)
	require.ErrorIs(t, env.Payments.Delete(ctx, p.ID), ErrNotFound)

	require.NoError(t, env.Orders.Delete(ctx, order.ID))
}

func TestPaymentService_FindAll(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := testutil.CreateUser(t, env.DB, "Alice", "alice@example.com", "pw")
	order := testutil.CreateOrder(t, env.DB, alice)
	for i := 0; i < 2; i++ {
		_, err := env.Payments.CreatePayment(ctx, transport.CreatePaymentRequest{OrderID: order.ID})
		require.NoError(t, err)
	}

	all, err := env.Payments.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
