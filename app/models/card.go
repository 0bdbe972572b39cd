package models

import "time"

// Card mirrors a stored payment card attached to a Customer.
type Card struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	CustomerID  uint      `gorm:"not null;index" json:"customer_id"`
	StripeID    string    `gorm:"type:varchar(191);uniqueIndex" json:"stripe_id"`
	Fingerprint string    `gorm:"type:varchar(191);default:''" json:"fingerprint"`
	Brand       string    `gorm:"type:varchar(32);default:''" json:"brand"`
	Last4       string    `gorm:"type:varchar(4);default:''" json:"last4"`
	ExpMonth    int       `gorm:"default:0" json:"exp_month"`
	ExpYear     int       `gorm:"default:0" json:"exp_year"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
