package repository

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/fkuebler/paymirror/app/models"
)

type queryCounter struct {
	count int64
}

func (c *queryCounter) LogMode(logger.LogLevel) logger.Interface      { return c }
func (c *queryCounter) Info(context.Context, string, ...interface{})  {}
func (c *queryCounter) Warn(context.Context, string, ...interface{})  {}
func (c *queryCounter) Error(context.Context, string, ...interface{}) {}

func (c *queryCounter) Trace(context.Context, time.Time, func() (string, int64), error) {
	c.count++
}

func newTestDB(t *testing.T) (*gorm.DB, *queryCounter) {
	t.Helper()
	counter := &queryCounter{}
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: counter})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{}, &models.Account{}, &models.Customer{}, &models.Card{},
		&models.Plan{}, &models.Subscription{}, &models.Charge{},
		&models.Invoice{}, &models.Product{}, &models.Sku{}, &models.Order{},
		&models.Coupon{}, &models.Transfer{}, &models.Event{},
	))
	return db, counter
}

// seedFilterFixture creates three customers: one with a usable card, one with
// a fingerprint-less card, one with no card at all.
func seedFilterFixture(t *testing.T, db *gorm.DB) (withCard, emptyPrint, bare models.Customer) {
	t.Helper()
	withCard = models.Customer{StripeID: "cus_card"}
	emptyPrint = models.Customer{StripeID: "cus_blank"}
	bare = models.Customer{StripeID: "cus_bare"}
	require.NoError(t, db.Create(&withCard).Error)
	require.NoError(t, db.Create(&emptyPrint).Error)
	require.NoError(t, db.Create(&bare).Error)
	require.NoError(t, db.Create(&models.Card{CustomerID: withCard.ID, StripeID: "card_1", Fingerprint: "fp1"}).Error)
	require.NoError(t, db.Create(&models.Card{CustomerID: emptyPrint.ID, StripeID: "card_2"}).Error)
	return withCard, emptyPrint, bare
}

func listStripeIDs(customers []models.Customer) []string {
	ids := make([]string, 0, len(customers))
	for _, c := range customers {
		ids = append(ids, c.StripeID)
	}
	return ids
}

func TestHasCardFilter(t *testing.T) {
	db, _ := newTestDB(t)
	seedFilterFixture(t, db)
	repo := NewCustomerRepository(db)

	got, total, err := repo.List(ListParams{Limit: 10, Filters: map[string]string{"has_card": "yes"}})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.ElementsMatch(t, []string{"cus_card"}, listStripeIDs(got))

	got, total, err = repo.List(ListParams{Limit: 10, Filters: map[string]string{"has_card": "no"}})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.ElementsMatch(t, []string{"cus_blank", "cus_bare"}, listStripeIDs(got))
}

func TestSubscriptionStatusFilter(t *testing.T) {
	db, _ := newTestDB(t)
	active := models.Customer{StripeID: "cus_active"}
	canceled := models.Customer{StripeID: "cus_canceled"}
	bare := models.Customer{StripeID: "cus_none"}
	require.NoError(t, db.Create(&active).Error)
	require.NoError(t, db.Create(&canceled).Error)
	require.NoError(t, db.Create(&bare).Error)

	plan := models.Plan{StripeID: "plan_1"}
	require.NoError(t, db.Create(&plan).Error)
	require.NoError(t, db.Create(&models.Subscription{
		CustomerID: active.ID, PlanID: plan.ID, StripeID: "sub_1",
		Status: models.SubscriptionStatusActive,
	}).Error)
	require.NoError(t, db.Create(&models.Subscription{
		CustomerID: canceled.ID, PlanID: plan.ID, StripeID: "sub_2",
		Status: models.SubscriptionStatusCanceled,
	}).Error)

	repo := NewCustomerRepository(db)

	got, _, err := repo.List(ListParams{Limit: 10, Filters: map[string]string{"sub_status": "active"}})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"cus_active"}, listStripeIDs(got))

	got, _, err = repo.List(ListParams{Limit: 10, Filters: map[string]string{"sub_status": "none"}})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"cus_none"}, listStripeIDs(got))

	// Unknown values select nothing extra, they are ignored.
	got, _, err = repo.List(ListParams{Limit: 10, Filters: map[string]string{"sub_status": "bogus"}})
	require.NoError(t, err)
	assert.Len(t, got, 3)
}

func TestAccountFilter(t *testing.T) {
	db, _ := newTestDB(t)
	acct := models.Account{StripeID: "acct_1", DisplayName: "Main"}
	require.NoError(t, db.Create(&acct).Error)
	linked := models.Customer{StripeID: "cus_linked", AccountID: &acct.ID}
	free := models.Customer{StripeID: "cus_free"}
	require.NoError(t, db.Create(&linked).Error)
	require.NoError(t, db.Create(&free).Error)

	repo := NewCustomerRepository(db)

	got, _, err := repo.List(ListParams{Limit: 10, Filters: map[string]string{"stripe_account": "acct_1"}})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"cus_linked"}, listStripeIDs(got))

	got, _, err = repo.List(ListParams{Limit: 10, Filters: map[string]string{"stripe_account": "none"}})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"cus_free"}, listStripeIDs(got))

	lookups := NewAccountFilter(db).Lookups()
	require.Len(t, lookups, 2)
	assert.Equal(t, "Main", lookups[0].Label)
	assert.Equal(t, "none", lookups[1].Value)
}

// seedAccountFixture creates an account, a customer linked to it and an
// unlinked customer.
func seedAccountFixture(t *testing.T, db *gorm.DB) (linked, free models.Customer) {
	t.Helper()
	acct := models.Account{StripeID: "acct_1", DisplayName: "Main"}
	require.NoError(t, db.Create(&acct).Error)
	linked = models.Customer{StripeID: "cus_linked", AccountID: &acct.ID}
	free = models.Customer{StripeID: "cus_free"}
	require.NoError(t, db.Create(&linked).Error)
	require.NoError(t, db.Create(&free).Error)
	return linked, free
}

func TestChargeAccountFilter(t *testing.T) {
	db, _ := newTestDB(t)
	linked, free := seedAccountFixture(t, db)
	require.NoError(t, db.Create(&models.Charge{CustomerID: &linked.ID, StripeID: "ch_linked"}).Error)
	require.NoError(t, db.Create(&models.Charge{CustomerID: &free.ID, StripeID: "ch_free"}).Error)

	repo := NewChargeRepository(db)

	got, _, err := repo.List(ListParams{Limit: 10, Filters: map[string]string{"stripe_account": "acct_1"}})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "ch_linked", got[0].StripeID)

	got, _, err = repo.List(ListParams{Limit: 10, Filters: map[string]string{"stripe_account": "none"}})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "ch_free", got[0].StripeID)
}

func TestSubscriptionAccountFilter(t *testing.T) {
	db, _ := newTestDB(t)
	linked, free := seedAccountFixture(t, db)
	plan := models.Plan{StripeID: "plan_1"}
	require.NoError(t, db.Create(&plan).Error)
	require.NoError(t, db.Create(&models.Subscription{
		CustomerID: linked.ID, PlanID: plan.ID, StripeID: "sub_linked",
		Status: models.SubscriptionStatusActive,
	}).Error)
	require.NoError(t, db.Create(&models.Subscription{
		CustomerID: free.ID, PlanID: plan.ID, StripeID: "sub_free",
		Status: models.SubscriptionStatusActive,
	}).Error)

	repo := NewSubscriptionRepository(db)

	got, _, err := repo.List(ListParams{Limit: 10, Filters: map[string]string{"stripe_account": "acct_1"}})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "sub_linked", got[0].StripeID)
}

func TestInvoiceAccountFilter(t *testing.T) {
	db, _ := newTestDB(t)
	linked, free := seedAccountFixture(t, db)
	require.NoError(t, db.Create(&models.Invoice{CustomerID: linked.ID, StripeID: "in_linked"}).Error)
	require.NoError(t, db.Create(&models.Invoice{CustomerID: free.ID, StripeID: "in_free"}).Error)

	repo := NewInvoiceRepository(db)

	got, _, err := repo.List(ListParams{Limit: 10, Filters: map[string]string{"stripe_account": "acct_1"}})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "in_linked", got[0].StripeID)
}

func TestTransferAccountFilter(t *testing.T) {
	db, _ := newTestDB(t)
	require.NoError(t, db.Create(&models.Account{StripeID: "acct_1", DisplayName: "Main"}).Error)
	require.NoError(t, db.Create(&models.Transfer{StripeID: "tr_linked", Destination: "acct_1"}).Error)
	require.NoError(t, db.Create(&models.Transfer{StripeID: "tr_bare"}).Error)

	repo := NewTransferRepository(db)

	got, _, err := repo.List(ListParams{Limit: 10, Filters: map[string]string{"stripe_account": "acct_1"}})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "tr_linked", got[0].StripeID)

	got, _, err = repo.List(ListParams{Limit: 10, Filters: map[string]string{"stripe_account": "none"}})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "tr_bare", got[0].StripeID)
}

func TestInvoiceCustomerHasCardFilter(t *testing.T) {
	db, _ := newTestDB(t)
	withCard, _, bare := seedFilterFixture(t, db)
	require.NoError(t, db.Create(&models.Invoice{CustomerID: withCard.ID, StripeID: "in_1"}).Error)
	require.NoError(t, db.Create(&models.Invoice{CustomerID: bare.ID, StripeID: "in_2"}).Error)

	repo := NewInvoiceRepository(db)

	got, _, err := repo.List(ListParams{Limit: 10, Filters: map[string]string{"has_card": "yes"}})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "in_1", got[0].StripeID)
}

func TestCustomerSearchMatchesUserEmail(t *testing.T) {
	db, _ := newTestDB(t)
	user := models.User{Name: "Ada", Email: "ada@example.com"}
	require.NoError(t, db.Create(&user).Error)
	require.NoError(t, db.Create(&models.Customer{StripeID: "cus_ada", UserID: &user.ID}).Error)
	require.NoError(t, db.Create(&models.Customer{StripeID: "cus_other"}).Error)

	repo := NewCustomerRepository(db)

	got, _, err := repo.List(ListParams{Limit: 10, Query: "ada@example"})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"cus_ada"}, listStripeIDs(got))

	got, _, err = repo.List(ListParams{Limit: 10, Query: "cus_other"})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"cus_other"}, listStripeIDs(got))
}

// Listing preloads displayed relations, so the number of queries must not
// grow with the number of rows on the page.
func TestCustomerListQueryCountIsConstant(t *testing.T) {
	db, counter := newTestDB(t)
	repo := NewCustomerRepository(db)

	seedFilterFixture(t, db)

	counter.count = 0
	_, _, err := repo.List(ListParams{Limit: 50})
	require.NoError(t, err)
	small := counter.count

	for i := 0; i < 20; i++ {
		cu := models.Customer{StripeID: "cus_extra_" + string(rune('a'+i))}
		require.NoError(t, db.Create(&cu).Error)
		require.NoError(t, db.Create(&models.Card{CustomerID: cu.ID, StripeID: "card_x_" + string(rune('a'+i)), Fingerprint: "fp"}).Error)
	}

	counter.count = 0
	_, _, err = repo.List(ListParams{Limit: 50})
	require.NoError(t, err)
	large := counter.count

	assert.Equal(t, small, large)
}
