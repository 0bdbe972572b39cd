package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Plan mirrors a Stripe pricing template. Stripe treats plans as immutable
// after creation, so the admin surface exposes them read-only.
type Plan struct {
	ID                  uint            `gorm:"primaryKey" json:"id"`
	StripeID            string          `gorm:"type:varchar(191);uniqueIndex" json:"stripe_id"`
	Amount              decimal.Decimal `gorm:"type:decimal(11,2);default:0" json:"amount"`
	Currency            string          `gorm:"type:varchar(10);default:''" json:"currency"`
	Interval            string          `gorm:"type:varchar(16);default:''" json:"interval"`
	IntervalCount       int             `gorm:"default:1" json:"interval_count"`
	Name                string          `gorm:"type:varchar(150);default:''" json:"name"`
	StatementDescriptor string          `gorm:"type:varchar(200);default:''" json:"statement_descriptor"`
	TrialPeriodDays     int             `gorm:"default:0" json:"trial_period_days"`
	CreatedAt           time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt           time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}
