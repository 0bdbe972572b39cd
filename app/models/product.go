package models

import "time"

// Product mirrors a Stripe product. Skus reference it by local FK once the
// product itself has been synchronized.
type Product struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	StripeID    string    `gorm:"type:varchar(191);uniqueIndex" json:"stripe_id"`
	Name        string    `gorm:"type:varchar(200);default:''" json:"name"`
	Caption     string    `gorm:"type:varchar(200);default:''" json:"caption"`
	Description string    `gorm:"type:text" json:"description"`
	Active      bool      `gorm:"default:true" json:"active"`
	Shippable   bool      `gorm:"default:false" json:"shippable"`
	Livemode    bool      `gorm:"default:false" json:"livemode"`
	Skus        []Sku     `json:"skus,omitempty"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
