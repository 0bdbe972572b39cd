package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	OrderStatusCreated   = "created"
	OrderStatusPaid      = "paid"
	OrderStatusCanceled  = "canceled"
	OrderStatusFulfilled = "fulfilled"
	OrderStatusReturned  = "returned"
)

// Order mirrors a Stripe order. Line items and shipping sub-documents are
// kept as opaque JSON text; they are browsed, never individually modeled.
type Order struct {
	ID                     uint             `gorm:"primaryKey" json:"id"`
	CustomerID             uint             `gorm:"not null;index" json:"customer_id"`
	Customer               *Customer        `json:"customer,omitempty"`
	ChargeID               *uint            `gorm:"index;default:null" json:"charge_id,omitempty"`
	Charge                 *Charge          `json:"charge,omitempty"`
	StripeID               string           `gorm:"type:varchar(191);uniqueIndex" json:"stripe_id"`
	Amount                 decimal.Decimal  `gorm:"type:decimal(11,2);default:0" json:"amount"`
	AmountReturned         *decimal.Decimal `gorm:"type:decimal(11,2);default:null" json:"amount_returned,omitempty"`
	Currency               string           `gorm:"type:varchar(10);default:''" json:"currency"`
	Livemode               bool             `gorm:"default:false" json:"livemode"`
	Metadata               string           `gorm:"type:longtext" json:"metadata"`
	SelectedShippingMethod string           `gorm:"type:varchar(191);default:''" json:"selected_shipping_method"`
	Shipping               string           `gorm:"type:longtext" json:"shipping"`
	ShippingMethods        string           `gorm:"type:longtext" json:"shipping_methods"`
	Status                 string           `gorm:"type:varchar(32);not null;index" json:"status"`
	StatusTransitions      string           `gorm:"type:longtext" json:"status_transitions"`
	Items                  string           `gorm:"type:longtext" json:"items"`
	CreatedAt              time.Time        `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt              time.Time        `gorm:"autoUpdateTime" json:"updated_at"`
}
