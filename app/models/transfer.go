package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transfer mirrors a Stripe transfer to a connected account or bank.
type Transfer struct {
	ID             uint            `gorm:"primaryKey" json:"id"`
	StripeID       string          `gorm:"type:varchar(191);uniqueIndex" json:"stripe_id"`
	Amount         decimal.Decimal `gorm:"type:decimal(11,2);default:0" json:"amount"`
	AmountReversed decimal.Decimal `gorm:"type:decimal(11,2);default:0" json:"amount_reversed"`
	Currency       string          `gorm:"type:varchar(10);default:''" json:"currency"`
	Status         string          `gorm:"type:varchar(32);default:''" json:"status"`
	Date           *time.Time      `gorm:"type:timestamp;default:null" json:"date,omitempty"`
	Description    string          `gorm:"type:text" json:"description"`
	Destination    string          `gorm:"type:varchar(191);default:''" json:"destination"`
	CreatedAt      time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}
