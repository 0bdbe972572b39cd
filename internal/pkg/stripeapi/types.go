package stripeapi

// Typed payloads for the remote resources this service mirrors. Every
// provider response is decoded into one of these at the API boundary; nothing
// outside this package touches SDK structs or raw payload maps.

// OrderData is the decoded shape of a provider order.
type OrderData struct {
	ID                     string
	Amount                 int64
	AmountReturned         *int64
	Charge                 string
	Currency               string
	Customer               string
	Email                  string
	Livemode               bool
	Metadata               map[string]string
	SelectedShippingMethod string
	Shipping               *ShippingData
	ShippingMethods        []ShippingMethodData
	Status                 string
	StatusTransitions      StatusTransitionsData
	Items                  []OrderItemData
	Created                int64
}

// ShippingData carries an order's shipping address and, once fulfilled, the
// tracking details.
type ShippingData struct {
	Name           string      `json:"name,omitempty"`
	Phone          string      `json:"phone,omitempty"`
	Carrier        string      `json:"carrier,omitempty"`
	TrackingNumber string      `json:"tracking_number,omitempty"`
	Address        AddressData `json:"address"`
}

type AddressData struct {
	Line1      string `json:"line1,omitempty"`
	Line2      string `json:"line2,omitempty"`
	City       string `json:"city,omitempty"`
	State      string `json:"state,omitempty"`
	PostalCode string `json:"postal_code,omitempty"`
	Country    string `json:"country,omitempty"`
}

type ShippingMethodData struct {
	ID          string `json:"id"`
	Description string `json:"description,omitempty"`
	Amount      int64  `json:"amount"`
	Currency    string `json:"currency"`
}

// StatusTransitionsData holds the unix timestamps of order status changes.
type StatusTransitionsData struct {
	Canceled  int64 `json:"canceled,omitempty"`
	Fulfilled int64 `json:"fulfilled,omitempty"`
	Paid      int64 `json:"paid,omitempty"`
	Returned  int64 `json:"returned,omitempty"`
}

// OrderItemData is one opaque line item within an order.
type OrderItemData struct {
	Amount      int64  `json:"amount"`
	Currency    string `json:"currency"`
	Description string `json:"description,omitempty"`
	Parent      string `json:"parent,omitempty"`
	Quantity    int64  `json:"quantity,omitempty"`
	Type        string `json:"type"`
}

// ChargeData is the decoded shape of a provider charge.
type ChargeData struct {
	ID             string
	Amount         int64
	AmountRefunded int64
	Currency       string
	Customer       string
	Description    string
	Invoice        string
	Paid           bool
	Refunded       bool
	Captured       bool
	Disputed       bool
	Livemode       bool
	Created        int64
}

// CustomerData is the decoded shape of a provider customer, including the
// card sources and subscriptions the provider expanded inline.
type CustomerData struct {
	ID            string
	Currency      string
	Balance       int64
	Delinquent    bool
	DefaultSource string
	Email         string
	Livemode      bool
	Cards         []CardData
	Subscriptions []SubscriptionData
	Discount      *DiscountData
}

// DiscountData is the decoded shape of the coupon attached to a customer.
type DiscountData struct {
	Customer string
	Coupon   *CouponData
	Start    int64
	End      int64
}

type CardData struct {
	ID          string
	Customer    string
	Fingerprint string
	Brand       string
	Last4       string
	ExpMonth    int
	ExpYear     int
}

// PlanData is the decoded shape of a provider plan.
type PlanData struct {
	ID                  string
	Amount              int64
	Currency            string
	Interval            string
	IntervalCount       int64
	Name                string
	StatementDescriptor string
	TrialPeriodDays     int64
}

// SubscriptionData is the decoded shape of a provider subscription.
type SubscriptionData struct {
	ID                 string
	Customer           string
	Status             string
	Quantity           int64
	Start              int64
	CurrentPeriodStart int64
	CurrentPeriodEnd   int64
	TrialStart         int64
	TrialEnd           int64
	CanceledAt         int64
	EndedAt            int64
	CancelAtPeriodEnd  bool
	Plan               *PlanData
}

// SubscriptionItemData is the decoded shape of one subscription line item.
type SubscriptionItemData struct {
	ID           string
	Subscription string
	Plan         *PlanData
	Quantity     int64
	Metadata     map[string]string
	Created      int64
}

// InvoiceData is the decoded shape of a provider invoice. Closed is derived
// from the invoice status since the provider retired the raw flag.
type InvoiceData struct {
	ID           string
	Customer     string
	Subscription string
	Charge       string
	AmountDue    int64
	Subtotal     int64
	Total        int64
	Tax          *int64
	Currency     string
	Paid         bool
	Closed       bool
	Attempted    bool
	AttemptCount int64
	Date         int64
	PeriodStart  int64
	PeriodEnd    int64
}

// TransferData is the decoded shape of a provider transfer.
type TransferData struct {
	ID             string
	Amount         int64
	AmountReversed int64
	Currency       string
	Created        int64
	Description    string
	Destination    string
	Livemode       bool
}

// CouponData is the decoded shape of a provider coupon.
type CouponData struct {
	ID               string
	AmountOff        *int64
	Currency         string
	Duration         string
	DurationInMonths *int64
	MaxRedemptions   *int64
	Metadata         map[string]string
	PercentOff       *float64
	RedeemBy         int64
	TimesRedeemed    int64
	Valid            bool
	Livemode         bool
}

// ProductData is the decoded shape of a provider product.
type ProductData struct {
	ID          string
	Name        string
	Caption     string
	Description string
	Active      bool
	Shippable   bool
	Livemode    bool
}

// SkuData is the decoded shape of a provider SKU.
type SkuData struct {
	ID                string
	Product           string
	Price             int64
	Currency          string
	Active            bool
	Image             string
	Attributes        map[string]string
	Inventory         *InventoryData
	PackageDimensions *PackageDimensionsData
	Livemode          bool
	Updated           int64
}

type InventoryData struct {
	Quantity int64  `json:"quantity"`
	Type     string `json:"type"`
	Value    string `json:"value,omitempty"`
}

type PackageDimensionsData struct {
	Height float64 `json:"height"`
	Length float64 `json:"length"`
	Weight float64 `json:"weight"`
	Width  float64 `json:"width"`
}

// AccountData is the decoded shape of a provider connected account.
type AccountData struct {
	ID             string
	Type           string
	Country        string
	Email          string
	DisplayName    string
	ChargesEnabled bool
	PayoutsEnabled bool
}
