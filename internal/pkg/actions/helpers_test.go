package actions

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/fkuebler/paymirror/app/models"
	"github.com/fkuebler/paymirror/internal/pkg/stripeapi"
	"github.com/fkuebler/paymirror/internal/pkg/sync"
)

// fakeClient wires only the methods a test exercises; calling anything else
// panics through the embedded nil interface, which is exactly the signal we
// want for an unexpected remote call.
type fakeClient struct {
	stripeapi.Client

	createOrder   func(stripeapi.OrderCreateParams) (*stripeapi.OrderData, error)
	retrieveOrder func(string) (*stripeapi.OrderData, error)
	payOrder      func(string, string) (*stripeapi.OrderData, error)
	returnOrder   func(string, []stripeapi.OrderItemParams) (*stripeapi.OrderData, error)
	updateOrder   func(string, stripeapi.OrderUpdateParams) (*stripeapi.OrderData, error)
	createCoupon  func(stripeapi.CouponCreateParams) (*stripeapi.CouponData, error)
	deleteCoupon  func(string) error
	createInvItem func(stripeapi.InvoiceItemParams) error

	createSubItem  func(stripeapi.SubscriptionItemCreateParams) (*stripeapi.SubscriptionItemData, error)
	retrieveSubItm func(string) (*stripeapi.SubscriptionItemData, error)
	deleteSubItem  func(string) error
}

func (f *fakeClient) CreateOrder(p stripeapi.OrderCreateParams) (*stripeapi.OrderData, error) {
	return f.createOrder(p)
}

func (f *fakeClient) RetrieveOrder(id string) (*stripeapi.OrderData, error) {
	return f.retrieveOrder(id)
}

func (f *fakeClient) PayOrder(id, source string) (*stripeapi.OrderData, error) {
	return f.payOrder(id, source)
}

func (f *fakeClient) ReturnOrder(id string, items []stripeapi.OrderItemParams) (*stripeapi.OrderData, error) {
	return f.returnOrder(id, items)
}

func (f *fakeClient) UpdateOrder(id string, p stripeapi.OrderUpdateParams) (*stripeapi.OrderData, error) {
	return f.updateOrder(id, p)
}

func (f *fakeClient) CreateCoupon(p stripeapi.CouponCreateParams) (*stripeapi.CouponData, error) {
	return f.createCoupon(p)
}

func (f *fakeClient) DeleteCoupon(id string) error { return f.deleteCoupon(id) }

func (f *fakeClient) CreateInvoiceItem(p stripeapi.InvoiceItemParams) error {
	return f.createInvItem(p)
}

func (f *fakeClient) CreateSubscriptionItem(p stripeapi.SubscriptionItemCreateParams) (*stripeapi.SubscriptionItemData, error) {
	return f.createSubItem(p)
}

func (f *fakeClient) RetrieveSubscriptionItem(id string) (*stripeapi.SubscriptionItemData, error) {
	return f.retrieveSubItm(id)
}

func (f *fakeClient) DeleteSubscriptionItem(id string) error { return f.deleteSubItem(id) }

func newTestSyncer(t *testing.T, client stripeapi.Client) *sync.Syncer {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{}, &models.Customer{}, &models.Card{}, &models.Plan{},
		&models.Subscription{}, &models.SubscriptionItem{}, &models.Charge{},
		&models.Invoice{}, &models.Product{}, &models.Sku{}, &models.Order{},
		&models.Coupon{},
	))
	return sync.NewSyncer(db, client, zerolog.Nop())
}

func seedCustomer(t *testing.T, db *gorm.DB, stripeID string) *models.Customer {
	t.Helper()
	cu := &models.Customer{StripeID: stripeID}
	require.NoError(t, db.Create(cu).Error)
	return cu
}
