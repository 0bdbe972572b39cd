package models

import "time"

// Discount mirrors the coupon currently attached to a Customer. The provider
// allows at most one discount per customer, so the row is keyed on the
// customer rather than on a provider id of its own.
type Discount struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	CustomerID uint       `gorm:"not null;uniqueIndex" json:"customer_id"`
	Customer   *Customer  `json:"customer,omitempty"`
	CouponID   uint       `gorm:"not null;index" json:"coupon_id"`
	Coupon     *Coupon    `json:"coupon,omitempty"`
	Start      *time.Time `gorm:"type:timestamp;default:null" json:"start,omitempty"`
	End        *time.Time `gorm:"type:timestamp;default:null" json:"end,omitempty"`
	CreatedAt  time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}
