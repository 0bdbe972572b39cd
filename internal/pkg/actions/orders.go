package actions

import (
	"errors"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/fkuebler/paymirror/app/models"
	"github.com/fkuebler/paymirror/internal/pkg/stripeapi"
	"github.com/fkuebler/paymirror/internal/pkg/sync"
)

// ErrSourceRequired is returned when immediate payment is requested without a
// payment source, before any remote call is made.
var ErrSourceRequired = errors.New("immediate payment requires a payment source")

// OrderItem is a tagged union: exactly one field is set. A Sku reference is
// turned into a sku line item when the order is built.
type OrderItem struct {
	Item *stripeapi.OrderItemParams
	Sku  *models.Sku
}

func (i OrderItem) toParams() (stripeapi.OrderItemParams, error) {
	switch {
	case i.Item != nil && i.Sku == nil:
		return *i.Item, nil
	case i.Sku != nil && i.Item == nil:
		qty := int64(1)
		return stripeapi.OrderItemParams{Type: "sku", Parent: i.Sku.StripeID, Quantity: &qty}, nil
	default:
		return stripeapi.OrderItemParams{}, errors.New("order item must carry exactly one of Item or Sku")
	}
}

// OrderRef identifies an order to operate on: either the local mirror or a
// raw remote identifier. Exactly one field is set.
type OrderRef struct {
	Order    *models.Order
	RemoteID string
}

func (r OrderRef) stripeID() (string, error) {
	switch {
	case r.Order != nil && r.RemoteID == "":
		return r.Order.StripeID, nil
	case r.RemoteID != "" && r.Order == nil:
		return r.RemoteID, nil
	default:
		return "", errors.New("order reference must carry exactly one of Order or RemoteID")
	}
}

// OrderCreateInput collects everything an order creation can carry. Only
// Customer and Items are required; Currency defaults to usd.
type OrderCreateInput struct {
	Customer       *models.Customer
	Items          []OrderItem
	Currency       string
	Source         string
	Shipping       *stripeapi.ShippingParams
	Coupon         string
	Email          string
	Metadata       map[string]string
	PayImmediately bool
}

// Orders wraps the provider's mutating order operations. Every mutation ends
// with a sync so the local mirror reflects the remote outcome.
type Orders struct {
	syncer *sync.Syncer
	client stripeapi.Client
	log    zerolog.Logger
}

func NewOrders(syncer *sync.Syncer, log zerolog.Logger) *Orders {
	return &Orders{syncer: syncer, client: syncer.Client(), log: log}
}

// Create places an order remotely and mirrors the result. With
// PayImmediately set it also attempts payment; a provider invalid-request
// rejection of that payment is swallowed and the unpaid order is still
// returned. Order creation must not fail merely because immediate payment
// could not be completed.
func (a *Orders) Create(in OrderCreateInput) (*models.Order, error) {
	if in.PayImmediately && in.Source == "" {
		return nil, ErrSourceRequired
	}
	currency := in.Currency
	if currency == "" {
		currency = "usd"
	}

	params := stripeapi.OrderCreateParams{
		Customer:       in.Customer.StripeID,
		Currency:       currency,
		Shipping:       in.Shipping,
		Coupon:         in.Coupon,
		Email:          in.Email,
		Metadata:       in.Metadata,
		IdempotencyKey: uuid.NewString(),
	}
	for _, item := range in.Items {
		p, err := item.toParams()
		if err != nil {
			return nil, err
		}
		params.Items = append(params.Items, p)
	}
	if err := validate.Struct(params); err != nil {
		return nil, err
	}

	data, err := a.client.CreateOrder(params)
	if err != nil {
		return nil, err
	}

	if in.PayImmediately {
		paid, err := a.client.PayOrder(data.ID, in.Source)
		switch {
		case err == nil:
			data = paid
		case stripeapi.IsInvalidRequest(err):
			a.log.Warn().Str("order", data.ID).Err(err).
				Msg("immediate payment rejected, keeping unpaid order")
		default:
			return nil, err
		}
	}
	return a.syncer.SyncOrderFromData(data)
}

// Update sends only the provided fields to the provider, then re-syncs.
func (a *Orders) Update(order *models.Order, params stripeapi.OrderUpdateParams) (*models.Order, error) {
	data, err := a.client.UpdateOrder(order.StripeID, params)
	if err != nil {
		return nil, err
	}
	return a.syncer.SyncOrderFromData(data)
}

// Retrieve fetches one remote order. An empty identifier is answered locally
// with no remote call, and a provider "no such order" is reported as absence
// rather than an error.
func (a *Orders) Retrieve(stripeID string) (*stripeapi.OrderData, error) {
	if stripeID == "" {
		return nil, nil
	}
	data, err := a.client.RetrieveOrder(stripeID)
	if err != nil {
		if stripeapi.IsResourceMissing(err) {
			return nil, nil
		}
		return nil, err
	}
	return data, nil
}

// Pay pays an order, optionally with an explicit source, then re-syncs.
func (a *Orders) Pay(ref OrderRef, source string) (*models.Order, error) {
	id, err := ref.stripeID()
	if err != nil {
		return nil, err
	}
	data, err := a.client.PayOrder(id, source)
	if err != nil {
		return nil, err
	}
	return a.syncer.SyncOrderFromData(data)
}

// CreateReturn returns the given line items, or the whole order when items is
// nil, then re-syncs.
func (a *Orders) CreateReturn(order *models.Order, items []OrderItem) (*models.Order, error) {
	var params []stripeapi.OrderItemParams
	for _, item := range items {
		p, err := item.toParams()
		if err != nil {
			return nil, err
		}
		params = append(params, p)
	}
	data, err := a.client.ReturnOrder(order.StripeID, params)
	if err != nil {
		return nil, err
	}
	return a.syncer.SyncOrderFromData(data)
}

// SyncAll mirrors every order the provider lists.
func (a *Orders) SyncAll() (int, error) {
	return a.syncer.SyncOrders("")
}

// SyncForCustomer mirrors the orders of one customer.
func (a *Orders) SyncForCustomer(customer *models.Customer) (int, error) {
	return a.syncer.SyncOrders(customer.StripeID)
}
