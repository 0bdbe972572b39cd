package stripeapi

// Client is the provider API surface the sync and action layers depend on.
// The production implementation wraps the Stripe SDK; tests substitute fakes.
type Client interface {
	// Orders
	CreateOrder(params OrderCreateParams) (*OrderData, error)
	UpdateOrder(id string, params OrderUpdateParams) (*OrderData, error)
	RetrieveOrder(id string) (*OrderData, error)
	PayOrder(id, source string) (*OrderData, error)
	ReturnOrder(id string, items []OrderItemParams) (*OrderData, error)
	// ListOrders returns an auto-paginating iterator over all orders,
	// optionally restricted to one customer.
	ListOrders(customer string) OrderIter

	// Charges
	RetrieveCharge(id string) (*ChargeData, error)

	// Customers
	RetrieveCustomer(id string) (*CustomerData, error)

	// Invoices
	ListInvoices(customer string) ([]InvoiceData, error)

	// Transfers
	ListTransfers() ([]TransferData, error)

	// Plans. A single page, by design.
	ListPlans() ([]PlanData, error)

	// Subscription items
	CreateSubscriptionItem(params SubscriptionItemCreateParams) (*SubscriptionItemData, error)
	UpdateSubscriptionItem(id string, params SubscriptionItemUpdateParams) (*SubscriptionItemData, error)
	RetrieveSubscriptionItem(id string) (*SubscriptionItemData, error)
	DeleteSubscriptionItem(id string) error
	ListSubscriptionItems(subscription string) ([]SubscriptionItemData, error)

	// Coupons
	CreateCoupon(params CouponCreateParams) (*CouponData, error)
	DeleteCoupon(id string) error
	ListCoupons() ([]CouponData, error)

	// Products and SKUs
	ListProducts() ([]ProductData, error)
	CreateSku(params SkuCreateParams) (*SkuData, error)
	UpdateSku(id string, params SkuUpdateParams) (*SkuData, error)
	RetrieveSku(id string) (*SkuData, error)
	ListSkus() ([]SkuData, error)

	// Invoice items. Create-only; the provider attaches them to the next
	// scheduled invoice.
	CreateInvoiceItem(params InvoiceItemParams) error

	// Connected accounts
	RetrieveAccount(id string) (*AccountData, error)
}

// OrderIter walks a provider order listing page by page.
type OrderIter interface {
	Next() bool
	Order() *OrderData
	Err() error
}

// OrderCreateParams are the provider-bound parameters for order creation.
// Zero-valued optional fields are omitted from the remote call.
type OrderCreateParams struct {
	Customer       string `validate:"required"`
	Currency       string `validate:"required,len=3"`
	Items          []OrderItemParams
	Shipping       *ShippingParams
	Coupon         string
	Email          string
	Metadata       map[string]string
	IdempotencyKey string
}

type OrderItemParams struct {
	Type        string
	Parent      string
	Description string
	Currency    string
	Amount      *int64
	Quantity    *int64
}

type ShippingParams struct {
	Name    string
	Phone   string
	Address AddressParams
}

type AddressParams struct {
	Line1      string
	Line2      string
	City       string
	State      string
	PostalCode string
	Country    string
}

// OrderUpdateParams carry only the fields the caller wants changed; empty
// fields are not sent.
type OrderUpdateParams struct {
	Coupon                 string
	Metadata               map[string]string
	SelectedShippingMethod string
	Shipping               *ShippingTrackingParams
	Status                 string
}

type ShippingTrackingParams struct {
	Carrier        string
	TrackingNumber string
}

type CouponCreateParams struct {
	ID               string
	Duration         string `validate:"required,oneof=forever once repeating"`
	Currency         string
	AmountOff        *int64
	DurationInMonths *int64
	MaxRedemptions   *int64
	Metadata         map[string]string
	PercentOff       *float64
}

type SkuCreateParams struct {
	ID                string
	Product           string `validate:"required"`
	Price             int64
	Currency          string `validate:"required,len=3"`
	Inventory         InventoryData
	Attributes        map[string]string
	Metadata          map[string]string
	Image             string
	PackageDimensions *PackageDimensionsData
	Active            *bool
}

type SkuUpdateParams struct {
	Active            *bool
	Attributes        map[string]string
	Currency          string
	Image             string
	Inventory         *InventoryData
	Metadata          map[string]string
	PackageDimensions *PackageDimensionsData
	Price             *int64
	Product           string
}

type SubscriptionItemCreateParams struct {
	Subscription  string `validate:"required"`
	Plan          string `validate:"required"`
	Quantity      *int64
	Metadata      map[string]string
	Prorate       *bool
	ProrationDate *int64
}

type SubscriptionItemUpdateParams struct {
	Plan     string
	Quantity *int64
	Metadata map[string]string
	Prorate  *bool
}

type InvoiceItemParams struct {
	Customer     string `validate:"required"`
	Amount       int64
	Currency     string `validate:"required,len=3"`
	Description  string
	Discountable bool
	Invoice      string
	Metadata     map[string]string
	Subscription string
}
