package sync

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/fkuebler/paymirror/app/models"
	"github.com/fkuebler/paymirror/internal/pkg/stripeapi"
)

// queryCounter counts every SQL statement GORM executes. Tests use it to
// prove that a no-op reconcile issues reads only.
type queryCounter struct {
	count int64
}

func (c *queryCounter) LogMode(logger.LogLevel) logger.Interface      { return c }
func (c *queryCounter) Info(context.Context, string, ...interface{})  {}
func (c *queryCounter) Warn(context.Context, string, ...interface{})  {}
func (c *queryCounter) Error(context.Context, string, ...interface{}) {}

func (c *queryCounter) Trace(_ context.Context, _ time.Time, _ func() (string, int64), _ error) {
	atomic.AddInt64(&c.count, 1)
}

func (c *queryCounter) Count() int64 { return atomic.LoadInt64(&c.count) }

func newTestDB(t *testing.T) (*gorm.DB, *queryCounter) {
	t.Helper()
	counter := &queryCounter{}
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: counter})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{}, &models.Account{}, &models.Customer{}, &models.Card{},
		&models.Plan{}, &models.Subscription{}, &models.SubscriptionItem{},
		&models.Discount{}, &models.Charge{},
		&models.Invoice{}, &models.Product{}, &models.Sku{}, &models.Order{},
		&models.Coupon{}, &models.Transfer{}, &models.Event{},
	))
	return db, counter
}

func newTestSyncer(t *testing.T, client stripeapi.Client) (*Syncer, *queryCounter) {
	t.Helper()
	db, counter := newTestDB(t)
	return NewSyncer(db, client, zerolog.Nop()), counter
}

// fakeClient satisfies the provider interface with per-method hooks so each
// test wires in only what it exercises.
type fakeClient struct {
	createOrder    func(stripeapi.OrderCreateParams) (*stripeapi.OrderData, error)
	updateOrder    func(string, stripeapi.OrderUpdateParams) (*stripeapi.OrderData, error)
	retrieveOrder  func(string) (*stripeapi.OrderData, error)
	payOrder       func(string, string) (*stripeapi.OrderData, error)
	returnOrder    func(string, []stripeapi.OrderItemParams) (*stripeapi.OrderData, error)
	listOrders     func(string) stripeapi.OrderIter
	retrieveCharge func(string) (*stripeapi.ChargeData, error)
	retrieveCust   func(string) (*stripeapi.CustomerData, error)
	listInvoices   func(string) ([]stripeapi.InvoiceData, error)
	listTransfers  func() ([]stripeapi.TransferData, error)
	listPlans      func() ([]stripeapi.PlanData, error)
	createSubItem  func(stripeapi.SubscriptionItemCreateParams) (*stripeapi.SubscriptionItemData, error)
	updateSubItem  func(string, stripeapi.SubscriptionItemUpdateParams) (*stripeapi.SubscriptionItemData, error)
	retrieveSubItm func(string) (*stripeapi.SubscriptionItemData, error)
	deleteSubItem  func(string) error
	listSubItems   func(string) ([]stripeapi.SubscriptionItemData, error)
	createCoupon   func(stripeapi.CouponCreateParams) (*stripeapi.CouponData, error)
	deleteCoupon   func(string) error
	listCoupons    func() ([]stripeapi.CouponData, error)
	listProducts   func() ([]stripeapi.ProductData, error)
	createSku      func(stripeapi.SkuCreateParams) (*stripeapi.SkuData, error)
	updateSku      func(string, stripeapi.SkuUpdateParams) (*stripeapi.SkuData, error)
	retrieveSku    func(string) (*stripeapi.SkuData, error)
	listSkus       func() ([]stripeapi.SkuData, error)
	createInvItem  func(stripeapi.InvoiceItemParams) error
	retrieveAcct   func(string) (*stripeapi.AccountData, error)
}

func (f *fakeClient) CreateOrder(p stripeapi.OrderCreateParams) (*stripeapi.OrderData, error) {
	return f.createOrder(p)
}

func (f *fakeClient) UpdateOrder(id string, p stripeapi.OrderUpdateParams) (*stripeapi.OrderData, error) {
	return f.updateOrder(id, p)
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

func (f *fakeClient) ListOrders(customer string) stripeapi.OrderIter {
	return f.listOrders(customer)
}

func (f *fakeClient) RetrieveCharge(id string) (*stripeapi.ChargeData, error) {
	return f.retrieveCharge(id)
}

func (f *fakeClient) RetrieveCustomer(id string) (*stripeapi.CustomerData, error) {
	return f.retrieveCust(id)
}

func (f *fakeClient) ListInvoices(customer string) ([]stripeapi.InvoiceData, error) {
	return f.listInvoices(customer)
}

func (f *fakeClient) ListTransfers() ([]stripeapi.TransferData, error) { return f.listTransfers() }

func (f *fakeClient) ListPlans() ([]stripeapi.PlanData, error) { return f.listPlans() }

func (f *fakeClient) CreateSubscriptionItem(p stripeapi.SubscriptionItemCreateParams) (*stripeapi.SubscriptionItemData, error) {
	return f.createSubItem(p)
}

func (f *fakeClient) UpdateSubscriptionItem(id string, p stripeapi.SubscriptionItemUpdateParams) (*stripeapi.SubscriptionItemData, error) {
	return f.updateSubItem(id, p)
}

func (f *fakeClient) RetrieveSubscriptionItem(id string) (*stripeapi.SubscriptionItemData, error) {
	return f.retrieveSubItm(id)
}

func (f *fakeClient) DeleteSubscriptionItem(id string) error { return f.deleteSubItem(id) }

func (f *fakeClient) ListSubscriptionItems(subscription string) ([]stripeapi.SubscriptionItemData, error) {
	return f.listSubItems(subscription)
}

func (f *fakeClient) CreateCoupon(p stripeapi.CouponCreateParams) (*stripeapi.CouponData, error) {
	return f.createCoupon(p)
}

func (f *fakeClient) DeleteCoupon(id string) error { return f.deleteCoupon(id) }

func (f *fakeClient) ListCoupons() ([]stripeapi.CouponData, error) { return f.listCoupons() }

func (f *fakeClient) ListProducts() ([]stripeapi.ProductData, error) { return f.listProducts() }

func (f *fakeClient) CreateSku(p stripeapi.SkuCreateParams) (*stripeapi.SkuData, error) {
	return f.createSku(p)
}

func (f *fakeClient) UpdateSku(id string, p stripeapi.SkuUpdateParams) (*stripeapi.SkuData, error) {
	return f.updateSku(id, p)
}

func (f *fakeClient) RetrieveSku(id string) (*stripeapi.SkuData, error) { return f.retrieveSku(id) }

func (f *fakeClient) ListSkus() ([]stripeapi.SkuData, error) { return f.listSkus() }

func (f *fakeClient) CreateInvoiceItem(p stripeapi.InvoiceItemParams) error {
	return f.createInvItem(p)
}

func (f *fakeClient) RetrieveAccount(id string) (*stripeapi.AccountData, error) {
	return f.retrieveAcct(id)
}

// sliceOrderIter feeds tests a fixed order listing.
type sliceOrderIter struct {
	orders []stripeapi.OrderData
	pos    int
	err    error
}

func (i *sliceOrderIter) Next() bool {
	if i.pos >= len(i.orders) {
		return false
	}
	i.pos++
	return true
}

func (i *sliceOrderIter) Order() *stripeapi.OrderData { return &i.orders[i.pos-1] }
func (i *sliceOrderIter) Err() error                  { return i.err }

func seedCustomer(t *testing.T, db *gorm.DB, stripeID string) *models.Customer {
	t.Helper()
	cu := &models.Customer{StripeID: stripeID}
	require.NoError(t, db.Create(cu).Error)
	return cu
}
