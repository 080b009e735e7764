package checkout

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pawmart/storefront-backend/internal/catalog"
	"github.com/pawmart/storefront-backend/internal/session"
	"github.com/pawmart/storefront-backend/pkg/config"
	"github.com/pawmart/storefront-backend/pkg/enums"
)

func testConfig() config.CheckoutConfig {
	return config.CheckoutConfig{
		FreeShippingOver: decimal.NewFromInt(50),
		ShippingFee:      decimal.RequireFromString("8.99"),
		TaxRate:          decimal.RequireFromString("0.08"),
		PlaceOrderDelay:  1200 * time.Millisecond,
	}
}

func newTestSession(t *testing.T, seedDemo bool) (*session.Manager, *session.Session) {
	t.Helper()
	source, err := catalog.Default()
	require.NoError(t, err)
	manager, err := session.NewManager(session.ManagerParams{
		Catalog: source,
		Config:  config.SessionConfig{IdleTTL: time.Hour, SweepInterval: time.Minute},
	})
	require.NoError(t, err)
	return manager, manager.Create(seedDemo)
}

func addToCart(t *testing.T, sess *session.Session, productID string, quantity int) {
	t.Helper()
	source, err := catalog.Default()
	require.NoError(t, err)
	product, ok := source.FindByID(productID)
	require.True(t, ok)
	sess.Dispatch(func(st *session.State) bool {
		return st.Cart.AddItem(product, quantity, "Medium", "White")
	})
}

func newTestService(t *testing.T, now func() time.Time, delay func(time.Duration)) Service {
	t.Helper()
	svc, err := NewService(ServiceParams{
		Config: testConfig(),
		Now:    now,
		Delay:  delay,
	})
	require.NoError(t, err)
	return svc
}

func TestQuoteBelowThresholdChargesShipping(t *testing.T) {
	_, sess := newTestSession(t, false)
	addToCart(t, sess, "5", 1) // $45

	svc := newTestService(t, nil, func(time.Duration) {})
	quote, err := svc.Quote(context.Background(), sess)
	require.NoError(t, err)

	assert.True(t, quote.Subtotal.Equal(decimal.NewFromInt(45)), "subtotal %s", quote.Subtotal)
	assert.True(t, quote.ShippingFee.Equal(decimal.RequireFromString("8.99")), "fee %s", quote.ShippingFee)
	assert.True(t, quote.Tax.Equal(decimal.RequireFromString("3.6")), "tax %s", quote.Tax)
	assert.True(t, quote.Total.Equal(decimal.RequireFromString("57.59")), "total %s", quote.Total)
	assert.False(t, quote.FreeShipping)
	assert.Equal(t, 1, quote.ItemCount)
}

func TestQuoteAboveThresholdShipsFree(t *testing.T) {
	_, sess := newTestSession(t, false)
	addToCart(t, sess, "1", 1) // $89

	svc := newTestService(t, nil, func(time.Duration) {})
	quote, err := svc.Quote(context.Background(), sess)
	require.NoError(t, err)

	assert.True(t, quote.FreeShipping)
	assert.True(t, quote.ShippingFee.Equal(decimal.Zero))
	assert.True(t, quote.Tax.Equal(decimal.RequireFromString("7.12")), "tax %s", quote.Tax)
	assert.True(t, quote.Total.Equal(decimal.RequireFromString("96.12")), "total %s", quote.Total)
}

func TestQuoteExactlyAtThresholdStillChargesShipping(t *testing.T) {
	_, sess := newTestSession(t, false)
	// 50 is not strictly greater than the threshold.
	sess.Dispatch(func(st *session.State) bool {
		return st.Cart.AddItem(catalog.Product{ID: "x", Name: "Fixture", Price: decimal.NewFromInt(50)}, 1, "One Size", "Black")
	})

	svc := newTestService(t, nil, func(time.Duration) {})
	quote, err := svc.Quote(context.Background(), sess)
	require.NoError(t, err)

	assert.False(t, quote.FreeShipping)
	assert.True(t, quote.ShippingFee.Equal(decimal.RequireFromString("8.99")))
}

func TestQuoteEmptyCart(t *testing.T) {
	_, sess := newTestSession(t, false)
	svc := newTestService(t, nil, func(time.Duration) {})

	quote, err := svc.Quote(context.Background(), sess)
	require.NoError(t, err)
	assert.True(t, quote.Subtotal.Equal(decimal.Zero))
	assert.Equal(t, 0, quote.ItemCount)
}

func TestPlaceOrderRequiresAddressAndItems(t *testing.T) {
	svc := newTestService(t, nil, func(time.Duration) {})

	// Items but no address.
	_, sess := newTestSession(t, false)
	addToCart(t, sess, "1", 1)
	_, err := svc.PlaceOrder(context.Background(), sess, PlaceOrderInput{})
	require.Error(t, err)

	// Address but no items.
	_, sess = newTestSession(t, true)
	_, err = svc.PlaceOrder(context.Background(), sess, PlaceOrderInput{})
	require.Error(t, err)
}

func TestPlaceOrderRejectsUnknownPaymentMethod(t *testing.T) {
	svc := newTestService(t, nil, func(time.Duration) {})
	_, sess := newTestSession(t, true)
	addToCart(t, sess, "1", 1)

	_, err := svc.PlaceOrder(context.Background(), sess, PlaceOrderInput{
		PaymentMethod: enums.PaymentMethod("barter"),
	})
	require.Error(t, err)
}

func TestPlaceOrderSuccess(t *testing.T) {
	placedAt := time.Date(2026, 2, 14, 10, 30, 0, 0, time.UTC)
	var delayed time.Duration
	svc := newTestService(t,
		func() time.Time { return placedAt },
		func(d time.Duration) { delayed = d },
	)

	_, sess := newTestSession(t, true)
	addToCart(t, sess, "1", 2) // $178, free shipping

	order, err := svc.PlaceOrder(context.Background(), sess, PlaceOrderInput{
		PaymentMethod: enums.PaymentMethodCard,
	})
	require.NoError(t, err)

	assert.Equal(t, fmt.Sprintf("PET-%d", placedAt.UnixMilli()), order.ID)
	assert.Equal(t, "2026-02-14", order.Date)
	assert.Equal(t, enums.OrderStatusProcessing, order.Status)
	assert.Equal(t, 1200*time.Millisecond, delayed)

	// 178 + 0 shipping + 14.24 tax
	assert.True(t, order.Total.Equal(decimal.RequireFromString("192.24")), "total %s", order.Total)

	require.Len(t, order.Items, 1)
	assert.Equal(t, "1", order.Items[0].ProductID)
	assert.Equal(t, 2, order.Items[0].Quantity)
	assert.NotEmpty(t, order.Items[0].Image)

	// Falls back to the default address when none is selected.
	assert.Equal(t, "Home", order.ShippingAddress.Name)

	sess.Read(func(st *session.State) {
		assert.Empty(t, st.Cart.Items, "expected cart cleared")
		assert.True(t, st.Cart.Total.Equal(decimal.Zero))
		require.Len(t, st.Profile.Orders, 4)
		assert.Equal(t, order.ID, st.Profile.Orders[0].ID, "expected order prepended")
	})
}

func TestPlaceOrderWithExplicitAddress(t *testing.T) {
	svc := newTestService(t, nil, func(time.Duration) {})
	_, sess := newTestSession(t, true)
	addToCart(t, sess, "1", 1)

	order, err := svc.PlaceOrder(context.Background(), sess, PlaceOrderInput{AddressID: "2"})
	require.NoError(t, err)
	assert.Equal(t, "Weekend House", order.ShippingAddress.Name)

	_, sess = newTestSession(t, true)
	addToCart(t, sess, "1", 1)
	_, err = svc.PlaceOrder(context.Background(), sess, PlaceOrderInput{AddressID: "missing"})
	require.Error(t, err)
}

func TestPlaceOrderSnapshotIsFrozen(t *testing.T) {
	svc := newTestService(t, nil, func(time.Duration) {})
	_, sess := newTestSession(t, true)
	addToCart(t, sess, "1", 1)

	order, err := svc.PlaceOrder(context.Background(), sess, PlaceOrderInput{})
	require.NoError(t, err)

	// Later cart activity must not touch the recorded order.
	addToCart(t, sess, "5", 3)
	sess.Read(func(st *session.State) {
		recorded := st.Profile.Orders[0]
		assert.Equal(t, order.ID, recorded.ID)
		assert.Len(t, recorded.Items, 1)
		assert.True(t, recorded.Total.Equal(order.Total))
	})
}

func TestPlaceOrderIgnoresContextCancellation(t *testing.T) {
	svc := newTestService(t, nil, func(time.Duration) {})
	_, sess := newTestSession(t, true)
	addToCart(t, sess, "1", 1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	order, err := svc.PlaceOrder(ctx, sess, PlaceOrderInput{})
	require.NoError(t, err)
	assert.NotEmpty(t, order.ID)

	sess.Read(func(st *session.State) {
		assert.Equal(t, order.ID, st.Profile.Orders[0].ID)
	})
}

func TestNewServiceRejectsInvalidConfig(t *testing.T) {
	cfg := testConfig()
	cfg.TaxRate = decimal.NewFromInt(-1)
	_, err := NewService(ServiceParams{Config: cfg})
	require.Error(t, err)
}
