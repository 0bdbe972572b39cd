package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Coupon mirrors a Stripe coupon.
type Coupon struct {
	ID               uint             `gorm:"primaryKey" json:"id"`
	StripeID         string           `gorm:"type:varchar(191);uniqueIndex" json:"stripe_id"`
	AmountOff        *decimal.Decimal `gorm:"type:decimal(11,2);default:null" json:"amount_off,omitempty"`
	Currency         string           `gorm:"type:varchar(10);default:''" json:"currency"`
	Duration         string           `gorm:"type:varchar(16);default:''" json:"duration"`
	DurationInMonths *int             `gorm:"default:null" json:"duration_in_months,omitempty"`
	MaxRedemptions   *int             `gorm:"default:null" json:"max_redemptions,omitempty"`
	Metadata         string           `gorm:"type:longtext" json:"metadata"`
	PercentOff       *float64         `gorm:"default:null" json:"percent_off,omitempty"`
	RedeemBy         *time.Time       `gorm:"type:timestamp;default:null" json:"redeem_by,omitempty"`
	TimesRedeemed    int              `gorm:"default:0" json:"times_redeemed"`
	Valid            bool             `gorm:"default:false" json:"valid"`
	Livemode         bool             `gorm:"default:false" json:"livemode"`
	CreatedAt        time.Time        `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time        `gorm:"autoUpdateTime" json:"updated_at"`
}
