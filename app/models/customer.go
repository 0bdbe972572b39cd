package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Customer wraps the relationship between a local user account and a Stripe
// billing identity. It is never deleted by the sync layer; purged customers
// keep their row with DatePurged set.
type Customer struct {
	ID             uint            `gorm:"primaryKey" json:"id"`
	UserID         *uint           `gorm:"index;default:null" json:"user_id,omitempty"`
	User           *User           `json:"user,omitempty"`
	AccountID      *uint           `gorm:"index;default:null" json:"account_id,omitempty"`
	Account        *Account        `json:"account,omitempty"`
	StripeID       string          `gorm:"type:varchar(191);uniqueIndex" json:"stripe_id"`
	Currency       string          `gorm:"type:varchar(10);default:''" json:"currency"`
	AccountBalance decimal.Decimal `gorm:"type:decimal(11,2);default:0" json:"account_balance"`
	Delinquent     bool            `gorm:"default:false" json:"delinquent"`
	DefaultSource  string          `gorm:"type:varchar(191);default:''" json:"default_source"`
	DatePurged     *time.Time      `gorm:"type:timestamp;default:null" json:"date_purged,omitempty"`
	Cards          []Card          `json:"cards,omitempty"`
	Subscriptions  []Subscription  `json:"subscriptions,omitempty"`
	CreatedAt      time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

// GetCustomerByStripeID resolves the local mirror of a Stripe customer. A
// miss is returned as gorm.ErrRecordNotFound; callers that require the
// customer treat it as a hard dependency failure.
func GetCustomerByStripeID(db *gorm.DB, stripeID string) (*Customer, error) {
	var c Customer
	if err := db.Where("stripe_id = ?", stripeID).First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}
