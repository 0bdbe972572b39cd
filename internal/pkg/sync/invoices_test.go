package sync

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fkuebler/paymirror/app/models"
	"github.com/fkuebler/paymirror/internal/pkg/stripeapi"
)

func invoicePayload() *stripeapi.InvoiceData {
	tax := int64(99)
	return &stripeapi.InvoiceData{
		ID:           "in_100",
		Customer:     "cus_1",
		AmountDue:    2599,
		Subtotal:     2500,
		Total:        2599,
		Tax:          &tax,
		Currency:     "usd",
		Paid:         true,
		Closed:       true,
		Attempted:    true,
		AttemptCount: 1,
		Date:         1700000000,
		PeriodStart:  1699000000,
		PeriodEnd:    1700000000,
	}
}

func TestSyncInvoiceFromData(t *testing.T) {
	s, _ := newTestSyncer(t, &fakeClient{})
	cu := seedCustomer(t, s.DB(), "cus_1")

	inv, err := s.SyncInvoiceFromData(invoicePayload())
	require.NoError(t, err)
	assert.Equal(t, cu.ID, inv.CustomerID)
	assert.Equal(t, "25.99", inv.Total.String())
	require.NotNil(t, inv.Tax)
	assert.Equal(t, "0.99", inv.Tax.String())
	assert.True(t, inv.Paid)
	assert.True(t, inv.Closed)
	assert.Equal(t, 1, inv.AttemptCount)
	require.NotNil(t, inv.Date)
}

func TestSyncInvoiceRequiresCustomer(t *testing.T) {
	s, _ := newTestSyncer(t, &fakeClient{})

	_, err := s.SyncInvoiceFromData(invoicePayload())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cus_1")

	var count int64
	require.NoError(t, s.DB().Model(&models.Invoice{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestSyncInvoiceSyncsReferencedChargeFirst(t *testing.T) {
	client := &fakeClient{
		retrieveCharge: func(id string) (*stripeapi.ChargeData, error) {
			return &stripeapi.ChargeData{ID: id, Customer: "cus_1", Amount: 2599, Currency: "usd", Paid: true}, nil
		},
	}
	s, _ := newTestSyncer(t, client)
	seedCustomer(t, s.DB(), "cus_1")

	data := invoicePayload()
	data.Charge = "ch_77"
	inv, err := s.SyncInvoiceFromData(data)
	require.NoError(t, err)
	require.NotNil(t, inv.ChargeID)

	var ch models.Charge
	require.NoError(t, s.DB().First(&ch, *inv.ChargeID).Error)
	assert.Equal(t, "ch_77", ch.StripeID)
}

func TestSyncInvoicesWalksListing(t *testing.T) {
	client := &fakeClient{
		listInvoices: func(customer string) ([]stripeapi.InvoiceData, error) {
			assert.Equal(t, "cus_1", customer)
			first := *invoicePayload()
			second := *invoicePayload()
			second.ID = "in_101"
			second.Paid = false
			second.Closed = false
			return []stripeapi.InvoiceData{first, second}, nil
		},
	}
	s, _ := newTestSyncer(t, client)
	seedCustomer(t, s.DB(), "cus_1")

	n, err := s.SyncInvoices("cus_1")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	var count int64
	require.NoError(t, s.DB().Model(&models.Invoice{}).Count(&count).Error)
	assert.EqualValues(t, 2, count)
}
