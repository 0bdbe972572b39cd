package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice mirrors a Stripe invoice for one Customer.
type Invoice struct {
	ID             uint             `gorm:"primaryKey" json:"id"`
	CustomerID     uint             `gorm:"not null;index" json:"customer_id"`
	Customer       *Customer        `json:"customer,omitempty"`
	SubscriptionID *uint            `gorm:"index;default:null" json:"subscription_id,omitempty"`
	ChargeID       *uint            `gorm:"index;default:null" json:"charge_id,omitempty"`
	StripeID       string           `gorm:"type:varchar(191);uniqueIndex" json:"stripe_id"`
	AmountDue      decimal.Decimal  `gorm:"type:decimal(11,2);default:0" json:"amount_due"`
	Subtotal       decimal.Decimal  `gorm:"type:decimal(11,2);default:0" json:"subtotal"`
	Total          decimal.Decimal  `gorm:"type:decimal(11,2);default:0" json:"total"`
	Tax            *decimal.Decimal `gorm:"type:decimal(11,2);default:null" json:"tax,omitempty"`
	Currency       string           `gorm:"type:varchar(10);default:''" json:"currency"`
	Paid           bool             `gorm:"default:false" json:"paid"`
	Closed         bool             `gorm:"default:false" json:"closed"`
	Attempted      bool             `gorm:"default:false" json:"attempted"`
	AttemptCount   int              `gorm:"default:0" json:"attempt_count"`
	Date           *time.Time       `gorm:"type:timestamp;default:null" json:"date,omitempty"`
	PeriodStart    *time.Time       `gorm:"type:timestamp;default:null" json:"period_start,omitempty"`
	PeriodEnd      *time.Time       `gorm:"type:timestamp;default:null" json:"period_end,omitempty"`
	CreatedAt      time.Time        `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time        `gorm:"autoUpdateTime" json:"updated_at"`
}
