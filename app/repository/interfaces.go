package repository

import (
	"github.com/fkuebler/paymirror/app/models"
	"gorm.io/gorm"
)

// ListParams carries pagination, search and filter selections from the admin
// querystring.
type ListParams struct {
	Offset  int
	Limit   int
	Query   string
	Filters map[string]string
}

// CustomerRepository defines the customer browsing operations
type CustomerRepository interface {
	GetByID(id uint) (*models.Customer, error)
	GetByStripeID(stripeID string) (*models.Customer, error)
	List(params ListParams) ([]models.Customer, int64, error)
	Count() (int64, error)
	Filters() []Filter
}

// OrderRepository defines the order browsing operations
type OrderRepository interface {
	GetByID(id uint) (*models.Order, error)
	GetByStripeID(stripeID string) (*models.Order, error)
	List(params ListParams) ([]models.Order, int64, error)
	Count() (int64, error)
	Filters() []Filter
}

// InvoiceRepository defines the invoice browsing operations
type InvoiceRepository interface {
	GetByID(id uint) (*models.Invoice, error)
	List(params ListParams) ([]models.Invoice, int64, error)
	Count() (int64, error)
	Filters() []Filter
}

// ChargeRepository defines the charge browsing operations
type ChargeRepository interface {
	GetByID(id uint) (*models.Charge, error)
	List(params ListParams) ([]models.Charge, int64, error)
	Count() (int64, error)
	Filters() []Filter
}

// PlanRepository defines the plan browsing operations
type PlanRepository interface {
	GetByID(id uint) (*models.Plan, error)
	List(params ListParams) ([]models.Plan, int64, error)
	Count() (int64, error)
}

// SubscriptionRepository defines the subscription browsing operations
type SubscriptionRepository interface {
	GetByID(id uint) (*models.Subscription, error)
	List(params ListParams) ([]models.Subscription, int64, error)
	Count() (int64, error)
	Filters() []Filter
}

// CouponRepository defines the coupon browsing operations
type CouponRepository interface {
	GetByID(id uint) (*models.Coupon, error)
	List(params ListParams) ([]models.Coupon, int64, error)
	Count() (int64, error)
}

// ProductRepository defines the product browsing operations
type ProductRepository interface {
	GetByID(id uint) (*models.Product, error)
	List(params ListParams) ([]models.Product, int64, error)
	Count() (int64, error)
}

// SkuRepository defines the SKU browsing operations
type SkuRepository interface {
	GetByID(id uint) (*models.Sku, error)
	List(params ListParams) ([]models.Sku, int64, error)
	Count() (int64, error)
}

// TransferRepository defines the transfer browsing operations
type TransferRepository interface {
	GetByID(id uint) (*models.Transfer, error)
	List(params ListParams) ([]models.Transfer, int64, error)
	Count() (int64, error)
	Filters() []Filter
}

// AccountRepository defines the connected-account browsing operations
type AccountRepository interface {
	GetByID(id uint) (*models.Account, error)
	List(params ListParams) ([]models.Account, int64, error)
	Count() (int64, error)
}

// EventRepository defines the webhook-event browsing operations
type EventRepository interface {
	GetByID(id uint) (*models.Event, error)
	List(params ListParams) ([]models.Event, int64, error)
	Count() (int64, error)
}

// Repositories bundles all repository instances
type Repositories struct {
	Customer     CustomerRepository
	Order        OrderRepository
	Invoice      InvoiceRepository
	Charge       ChargeRepository
	Plan         PlanRepository
	Subscription SubscriptionRepository
	Coupon       CouponRepository
	Product      ProductRepository
	Sku          SkuRepository
	Transfer     TransferRepository
	Account      AccountRepository
	Event        EventRepository
}

// NewRepositories creates a new instance of all repositories
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Customer:     NewCustomerRepository(db),
		Order:        NewOrderRepository(db),
		Invoice:      NewInvoiceRepository(db),
		Charge:       NewChargeRepository(db),
		Plan:         NewPlanRepository(db),
		Subscription: NewSubscriptionRepository(db),
		Coupon:       NewCouponRepository(db),
		Product:      NewProductRepository(db),
		Sku:          NewSkuRepository(db),
		Transfer:     NewTransferRepository(db),
		Account:      NewAccountRepository(db),
		Event:        NewEventRepository(db),
	}
}
