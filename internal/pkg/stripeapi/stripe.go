package stripeapi

import (
	"errors"

	stripe "github.com/stripe/stripe-go/v72"
	"github.com/stripe/stripe-go/v72/account"
	"github.com/stripe/stripe-go/v72/charge"
	"github.com/stripe/stripe-go/v72/coupon"
	"github.com/stripe/stripe-go/v72/customer"
	"github.com/stripe/stripe-go/v72/invoice"
	"github.com/stripe/stripe-go/v72/invoiceitem"
	"github.com/stripe/stripe-go/v72/order"
	"github.com/stripe/stripe-go/v72/plan"
	"github.com/stripe/stripe-go/v72/product"
	"github.com/stripe/stripe-go/v72/sku"
	"github.com/stripe/stripe-go/v72/subitem"
	"github.com/stripe/stripe-go/v72/transfer"
)

// apiClient implements Client against the Stripe SDK. It is the only type in
// the codebase that sees SDK structs or SDK errors.
type apiClient struct{}

// NewClient configures the SDK with the given secret key and returns the
// production client.
func NewClient(apiKey string) Client {
	stripe.Key = apiKey
	return &apiClient{}
}

// apiError converts an SDK error into the package error type so callers can
// classify it structurally. Non-SDK errors pass through unchanged.
func apiError(err error) error {
	if err == nil {
		return nil
	}
	var se *stripe.Error
	if errors.As(err, &se) {
		return &Error{Type: ErrorType(se.Type), Code: string(se.Code), Msg: se.Msg}
	}
	return err
}

func (c *apiClient) CreateOrder(params OrderCreateParams) (*OrderData, error) {
	p := &stripe.OrderParams{
		Customer: stripe.String(params.Customer),
		Currency: stripe.String(params.Currency),
	}
	for _, item := range params.Items {
		p.Items = append(p.Items, orderItemParams(item))
	}
	if params.Shipping != nil {
		p.Shipping = &stripe.ShippingParams{
			Name:  stripe.String(params.Shipping.Name),
			Phone: stripe.String(params.Shipping.Phone),
			Address: &stripe.AddressParams{
				Line1:      stripe.String(params.Shipping.Address.Line1),
				Line2:      stripe.String(params.Shipping.Address.Line2),
				City:       stripe.String(params.Shipping.Address.City),
				State:      stripe.String(params.Shipping.Address.State),
				PostalCode: stripe.String(params.Shipping.Address.PostalCode),
				Country:    stripe.String(params.Shipping.Address.Country),
			},
		}
	}
	if params.Coupon != "" {
		p.Coupon = stripe.String(params.Coupon)
	}
	if params.Email != "" {
		p.Email = stripe.String(params.Email)
	}
	for k, v := range params.Metadata {
		p.AddMetadata(k, v)
	}
	if params.IdempotencyKey != "" {
		p.IdempotencyKey = stripe.String(params.IdempotencyKey)
	}

	o, err := order.New(p)
	if err != nil {
		return nil, apiError(err)
	}
	return decodeOrder(o), nil
}

func (c *apiClient) UpdateOrder(id string, params OrderUpdateParams) (*OrderData, error) {
	p := &stripe.OrderUpdateParams{}
	if params.Coupon != "" {
		p.Coupon = stripe.String(params.Coupon)
	}
	for k, v := range params.Metadata {
		p.AddMetadata(k, v)
	}
	if params.SelectedShippingMethod != "" {
		p.SelectedShippingMethod = stripe.String(params.SelectedShippingMethod)
	}
	if params.Shipping != nil {
		p.Shipping = &stripe.OrderUpdateShippingParams{
			Carrier:        stripe.String(params.Shipping.Carrier),
			TrackingNumber: stripe.String(params.Shipping.TrackingNumber),
		}
	}
	if params.Status != "" {
		p.Status = stripe.String(params.Status)
	}

	o, err := order.Update(id, p)
	if err != nil {
		return nil, apiError(err)
	}
	return decodeOrder(o), nil
}

func (c *apiClient) RetrieveOrder(id string) (*OrderData, error) {
	o, err := order.Get(id, nil)
	if err != nil {
		return nil, apiError(err)
	}
	return decodeOrder(o), nil
}

func (c *apiClient) PayOrder(id, source string) (*OrderData, error) {
	p := &stripe.OrderPayParams{}
	if source != "" {
		if err := p.SetSource(source); err != nil {
			return nil, err
		}
	}
	o, err := order.Pay(id, p)
	if err != nil {
		return nil, apiError(err)
	}
	return decodeOrder(o), nil
}

func (c *apiClient) ReturnOrder(id string, items []OrderItemParams) (*OrderData, error) {
	p := &stripe.OrderReturnParams{}
	for _, item := range items {
		p.Items = append(p.Items, orderItemParams(item))
	}
	if _, err := order.Return(id, p); err != nil {
		return nil, apiError(err)
	}
	// The return endpoint answers with the return object; re-fetch the order
	// so callers sync its refreshed state.
	return c.RetrieveOrder(id)
}

func (c *apiClient) ListOrders(customerID string) OrderIter {
	p := &stripe.OrderListParams{}
	if customerID != "" {
		p.Customer = stripe.String(customerID)
	}
	return &orderIter{iter: order.List(p)}
}

type orderIter struct {
	iter *order.Iter
}

func (i *orderIter) Next() bool        { return i.iter.Next() }
func (i *orderIter) Order() *OrderData { return decodeOrder(i.iter.Order()) }
func (i *orderIter) Err() error        { return apiError(i.iter.Err()) }

func (c *apiClient) RetrieveCharge(id string) (*ChargeData, error) {
	ch, err := charge.Get(id, nil)
	if err != nil {
		return nil, apiError(err)
	}
	return decodeCharge(ch), nil
}

func (c *apiClient) RetrieveCustomer(id string) (*CustomerData, error) {
	cu, err := customer.Get(id, nil)
	if err != nil {
		return nil, apiError(err)
	}
	return decodeCustomer(cu), nil
}

func (c *apiClient) ListInvoices(customerID string) ([]InvoiceData, error) {
	p := &stripe.InvoiceListParams{}
	if customerID != "" {
		p.Customer = stripe.String(customerID)
	}
	var invoices []InvoiceData
	iter := invoice.List(p)
	for iter.Next() {
		invoices = append(invoices, *decodeInvoice(iter.Invoice()))
	}
	return invoices, apiError(iter.Err())
}

func (c *apiClient) ListTransfers() ([]TransferData, error) {
	var transfers []TransferData
	iter := transfer.List(&stripe.TransferListParams{})
	for iter.Next() {
		transfers = append(transfers, *decodeTransfer(iter.Transfer()))
	}
	return transfers, apiError(iter.Err())
}

func (c *apiClient) CreateSubscriptionItem(params SubscriptionItemCreateParams) (*SubscriptionItemData, error) {
	si, err := subitem.New(subscriptionItemParams(params))
	if err != nil {
		return nil, apiError(err)
	}
	return decodeSubscriptionItem(si), nil
}

func (c *apiClient) UpdateSubscriptionItem(id string, params SubscriptionItemUpdateParams) (*SubscriptionItemData, error) {
	p := &stripe.SubscriptionItemParams{}
	if params.Plan != "" {
		p.Plan = stripe.String(params.Plan)
	}
	if params.Quantity != nil {
		p.Quantity = stripe.Int64(*params.Quantity)
	}
	if params.Prorate != nil {
		p.ProrationBehavior = stripe.String(prorationBehavior(*params.Prorate))
	}
	for k, v := range params.Metadata {
		p.AddMetadata(k, v)
	}
	si, err := subitem.Update(id, p)
	if err != nil {
		return nil, apiError(err)
	}
	return decodeSubscriptionItem(si), nil
}

func (c *apiClient) RetrieveSubscriptionItem(id string) (*SubscriptionItemData, error) {
	si, err := subitem.Get(id, nil)
	if err != nil {
		return nil, apiError(err)
	}
	return decodeSubscriptionItem(si), nil
}

func (c *apiClient) DeleteSubscriptionItem(id string) error {
	_, err := subitem.Del(id, nil)
	return apiError(err)
}

func (c *apiClient) ListSubscriptionItems(subscription string) ([]SubscriptionItemData, error) {
	p := &stripe.SubscriptionItemListParams{Subscription: stripe.String(subscription)}
	var items []SubscriptionItemData
	iter := subitem.List(p)
	for iter.Next() {
		items = append(items, *decodeSubscriptionItem(iter.SubscriptionItem()))
	}
	return items, apiError(iter.Err())
}

func subscriptionItemParams(params SubscriptionItemCreateParams) *stripe.SubscriptionItemParams {
	p := &stripe.SubscriptionItemParams{
		Subscription: stripe.String(params.Subscription),
		Plan:         stripe.String(params.Plan),
	}
	if params.Quantity != nil {
		p.Quantity = stripe.Int64(*params.Quantity)
	}
	if params.Prorate != nil {
		p.ProrationBehavior = stripe.String(prorationBehavior(*params.Prorate))
	}
	if params.ProrationDate != nil {
		p.ProrationDate = stripe.Int64(*params.ProrationDate)
	}
	for k, v := range params.Metadata {
		p.AddMetadata(k, v)
	}
	return p
}

// prorationBehavior maps the boolean flag onto the values the current API
// generation expects.
func prorationBehavior(prorate bool) string {
	if prorate {
		return "create_prorations"
	}
	return "none"
}

func (c *apiClient) ListPlans() ([]PlanData, error) {
	p := &stripe.PlanListParams{}
	p.Single = true // one page only
	var plans []PlanData
	iter := plan.List(p)
	for iter.Next() {
		plans = append(plans, *decodePlan(iter.Plan()))
	}
	return plans, apiError(iter.Err())
}

func (c *apiClient) CreateCoupon(params CouponCreateParams) (*CouponData, error) {
	p := &stripe.CouponParams{
		Duration: stripe.String(params.Duration),
	}
	if params.ID != "" {
		p.ID = stripe.String(params.ID)
	}
	if params.Currency != "" {
		p.Currency = stripe.String(params.Currency)
	}
	if params.AmountOff != nil {
		p.AmountOff = stripe.Int64(*params.AmountOff)
	}
	if params.DurationInMonths != nil {
		p.DurationInMonths = stripe.Int64(*params.DurationInMonths)
	}
	if params.MaxRedemptions != nil {
		p.MaxRedemptions = stripe.Int64(*params.MaxRedemptions)
	}
	if params.PercentOff != nil {
		p.PercentOff = stripe.Float64(*params.PercentOff)
	}
	for k, v := range params.Metadata {
		p.AddMetadata(k, v)
	}

	co, err := coupon.New(p)
	if err != nil {
		return nil, apiError(err)
	}
	return decodeCoupon(co), nil
}

func (c *apiClient) DeleteCoupon(id string) error {
	_, err := coupon.Del(id, nil)
	return apiError(err)
}

func (c *apiClient) ListCoupons() ([]CouponData, error) {
	var coupons []CouponData
	iter := coupon.List(&stripe.CouponListParams{})
	for iter.Next() {
		coupons = append(coupons, *decodeCoupon(iter.Coupon()))
	}
	return coupons, apiError(iter.Err())
}

func (c *apiClient) ListProducts() ([]ProductData, error) {
	var products []ProductData
	iter := product.List(&stripe.ProductListParams{})
	for iter.Next() {
		products = append(products, *decodeProduct(iter.Product()))
	}
	return products, apiError(iter.Err())
}

func (c *apiClient) CreateSku(params SkuCreateParams) (*SkuData, error) {
	p := &stripe.SKUParams{
		Product:  stripe.String(params.Product),
		Price:    stripe.Int64(params.Price),
		Currency: stripe.String(params.Currency),
		Inventory: &stripe.InventoryParams{
			Quantity: stripe.Int64(params.Inventory.Quantity),
			Type:     stripe.String(params.Inventory.Type),
		},
	}
	if params.Inventory.Value != "" {
		p.Inventory.Value = stripe.String(params.Inventory.Value)
	}
	if params.ID != "" {
		p.ID = stripe.String(params.ID)
	}
	if params.Image != "" {
		p.Image = stripe.String(params.Image)
	}
	if len(params.Attributes) > 0 {
		p.Attributes = params.Attributes
	}
	if params.PackageDimensions != nil {
		p.PackageDimensions = packageDimensionsParams(params.PackageDimensions)
	}
	if params.Active != nil {
		p.Active = stripe.Bool(*params.Active)
	}
	for k, v := range params.Metadata {
		p.AddMetadata(k, v)
	}

	s, err := sku.New(p)
	if err != nil {
		return nil, apiError(err)
	}
	return decodeSku(s), nil
}

func (c *apiClient) UpdateSku(id string, params SkuUpdateParams) (*SkuData, error) {
	p := &stripe.SKUParams{}
	if params.Active != nil {
		p.Active = stripe.Bool(*params.Active)
	}
	if len(params.Attributes) > 0 {
		p.Attributes = params.Attributes
	}
	if params.Currency != "" {
		p.Currency = stripe.String(params.Currency)
	}
	if params.Image != "" {
		p.Image = stripe.String(params.Image)
	}
	if params.Inventory != nil {
		p.Inventory = &stripe.InventoryParams{
			Quantity: stripe.Int64(params.Inventory.Quantity),
			Type:     stripe.String(params.Inventory.Type),
		}
		if params.Inventory.Value != "" {
			p.Inventory.Value = stripe.String(params.Inventory.Value)
		}
	}
	if params.Price != nil {
		p.Price = stripe.Int64(*params.Price)
	}
	if params.Product != "" {
		p.Product = stripe.String(params.Product)
	}
	if params.PackageDimensions != nil {
		p.PackageDimensions = packageDimensionsParams(params.PackageDimensions)
	}
	for k, v := range params.Metadata {
		p.AddMetadata(k, v)
	}

	s, err := sku.Update(id, p)
	if err != nil {
		return nil, apiError(err)
	}
	return decodeSku(s), nil
}

func (c *apiClient) RetrieveSku(id string) (*SkuData, error) {
	s, err := sku.Get(id, nil)
	if err != nil {
		return nil, apiError(err)
	}
	return decodeSku(s), nil
}

func (c *apiClient) ListSkus() ([]SkuData, error) {
	var skus []SkuData
	iter := sku.List(&stripe.SKUListParams{})
	for iter.Next() {
		skus = append(skus, *decodeSku(iter.SKU()))
	}
	return skus, apiError(iter.Err())
}

func (c *apiClient) CreateInvoiceItem(params InvoiceItemParams) error {
	p := &stripe.InvoiceItemParams{
		Customer:     stripe.String(params.Customer),
		Amount:       stripe.Int64(params.Amount),
		Currency:     stripe.String(params.Currency),
		Description:  stripe.String(params.Description),
		Discountable: stripe.Bool(params.Discountable),
	}
	if params.Invoice != "" {
		p.Invoice = stripe.String(params.Invoice)
	}
	if params.Subscription != "" {
		p.Subscription = stripe.String(params.Subscription)
	}
	for k, v := range params.Metadata {
		p.AddMetadata(k, v)
	}
	_, err := invoiceitem.New(p)
	return apiError(err)
}

func (c *apiClient) RetrieveAccount(id string) (*AccountData, error) {
	a, err := account.GetByID(id, nil)
	if err != nil {
		return nil, apiError(err)
	}
	return decodeAccount(a), nil
}

func orderItemParams(item OrderItemParams) *stripe.OrderItemParams {
	p := &stripe.OrderItemParams{}
	if item.Type != "" {
		p.Type = stripe.String(item.Type)
	}
	if item.Parent != "" {
		p.Parent = stripe.String(item.Parent)
	}
	if item.Description != "" {
		p.Description = stripe.String(item.Description)
	}
	if item.Currency != "" {
		p.Currency = stripe.String(item.Currency)
	}
	if item.Amount != nil {
		p.Amount = stripe.Int64(*item.Amount)
	}
	if item.Quantity != nil {
		p.Quantity = stripe.Int64(*item.Quantity)
	}
	return p
}

func packageDimensionsParams(d *PackageDimensionsData) *stripe.PackageDimensionsParams {
	return &stripe.PackageDimensionsParams{
		Height: stripe.Float64(d.Height),
		Length: stripe.Float64(d.Length),
		Weight: stripe.Float64(d.Weight),
		Width:  stripe.Float64(d.Width),
	}
}
