package sync

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fkuebler/paymirror/app/models"
	"github.com/fkuebler/paymirror/internal/pkg/stripeapi"
)

func orderPayload() *stripeapi.OrderData {
	return &stripeapi.OrderData{
		ID:       "or_100",
		Amount:   1599,
		Currency: "usd",
		Customer: "cus_1",
		Livemode: true,
		Metadata: map[string]string{"ref": "a1"},
		Status:   models.OrderStatusCreated,
		Items: []stripeapi.OrderItemData{
			{Amount: 1499, Currency: "usd", Parent: "sku_1", Quantity: 1, Type: "sku"},
			{Amount: 100, Currency: "usd", Type: "tax"},
		},
	}
}

func TestSyncOrderFromData(t *testing.T) {
	s, _ := newTestSyncer(t, &fakeClient{})
	cu := seedCustomer(t, s.DB(), "cus_1")

	o, err := s.SyncOrderFromData(orderPayload())
	require.NoError(t, err)

	assert.Equal(t, cu.ID, o.CustomerID)
	assert.True(t, o.Amount.Equal(decimal.RequireFromString("15.99")))
	assert.Nil(t, o.AmountReturned)
	assert.Nil(t, o.ChargeID)
	assert.Equal(t, models.OrderStatusCreated, o.Status)
	assert.JSONEq(t, `{"ref":"a1"}`, o.Metadata)
	assert.Contains(t, o.Items, `"sku_1"`)
}

func TestSyncOrderRequiresCustomer(t *testing.T) {
	s, _ := newTestSyncer(t, &fakeClient{})

	_, err := s.SyncOrderFromData(orderPayload())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cus_1")

	var count int64
	require.NoError(t, s.DB().Model(&models.Order{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestSyncOrderSyncsReferencedChargeFirst(t *testing.T) {
	client := &fakeClient{
		retrieveCharge: func(id string) (*stripeapi.ChargeData, error) {
			return &stripeapi.ChargeData{
				ID:       id,
				Amount:   1599,
				Currency: "usd",
				Customer: "cus_1",
				Paid:     true,
				Captured: true,
			}, nil
		},
	}
	s, _ := newTestSyncer(t, client)
	seedCustomer(t, s.DB(), "cus_1")

	data := orderPayload()
	data.Charge = "ch_7"
	data.Status = models.OrderStatusPaid

	o, err := s.SyncOrderFromData(data)
	require.NoError(t, err)
	require.NotNil(t, o.ChargeID)

	var ch models.Charge
	require.NoError(t, s.DB().First(&ch, *o.ChargeID).Error)
	assert.Equal(t, "ch_7", ch.StripeID)
	assert.True(t, ch.Paid)
}

func TestSyncOrderAmountReturned(t *testing.T) {
	s, _ := newTestSyncer(t, &fakeClient{})
	seedCustomer(t, s.DB(), "cus_1")

	data := orderPayload()
	returned := int64(500)
	data.AmountReturned = &returned
	data.Status = models.OrderStatusReturned

	o, err := s.SyncOrderFromData(data)
	require.NoError(t, err)
	require.NotNil(t, o.AmountReturned)
	assert.True(t, o.AmountReturned.Equal(decimal.RequireFromString("5")))
}

func TestSyncOrderIdempotent(t *testing.T) {
	s, counter := newTestSyncer(t, &fakeClient{})
	seedCustomer(t, s.DB(), "cus_1")

	_, err := s.SyncOrderFromData(orderPayload())
	require.NoError(t, err)

	before := counter.Count()
	_, err = s.SyncOrderFromData(orderPayload())
	require.NoError(t, err)

	// Customer lookup plus order lookup, nothing written.
	assert.Equal(t, int64(2), counter.Count()-before)

	var count int64
	require.NoError(t, s.DB().Model(&models.Order{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestSyncOrdersWalksListing(t *testing.T) {
	first := orderPayload()
	second := orderPayload()
	second.ID = "or_101"
	client := &fakeClient{
		listOrders: func(customer string) stripeapi.OrderIter {
			return &sliceOrderIter{orders: []stripeapi.OrderData{*first, *second}}
		},
	}
	s, _ := newTestSyncer(t, client)
	seedCustomer(t, s.DB(), "cus_1")

	n, err := s.SyncOrders("")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	var count int64
	require.NoError(t, s.DB().Model(&models.Order{}).Count(&count).Error)
	assert.Equal(t, int64(2), count)
}
