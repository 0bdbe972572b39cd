package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Charge mirrors a Stripe charge. Amounts are stored in major units; the raw
// minor-unit integers never reach the database.
type Charge struct {
	ID             uint            `gorm:"primaryKey" json:"id"`
	CustomerID     *uint           `gorm:"index;default:null" json:"customer_id,omitempty"`
	Customer       *Customer       `json:"customer,omitempty"`
	InvoiceID      *uint           `gorm:"index;default:null" json:"invoice_id,omitempty"`
	StripeID       string          `gorm:"type:varchar(191);uniqueIndex" json:"stripe_id"`
	Amount         decimal.Decimal `gorm:"type:decimal(11,2);default:0" json:"amount"`
	AmountRefunded decimal.Decimal `gorm:"type:decimal(11,2);default:0" json:"amount_refunded"`
	Currency       string          `gorm:"type:varchar(10);default:''" json:"currency"`
	Description    string          `gorm:"type:text" json:"description"`
	Paid           bool            `gorm:"default:false" json:"paid"`
	Refunded       bool            `gorm:"default:false" json:"refunded"`
	Captured       bool            `gorm:"default:false" json:"captured"`
	Disputed       bool            `gorm:"default:false" json:"disputed"`
	ReceiptSent    bool            `gorm:"default:false" json:"receipt_sent"`
	Livemode       bool            `gorm:"default:false" json:"livemode"`
	Created        *time.Time      `gorm:"type:timestamp;default:null" json:"created,omitempty"`
	CreatedAt      time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}
