package models

import "time"

// Event records a provider webhook notification for admin browsing. Delivery
// and retry semantics belong to the provider; this row is only a mirror.
type Event struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	StripeID  string    `gorm:"type:varchar(191);uniqueIndex" json:"stripe_id"`
	Kind      string    `gorm:"type:varchar(100);index" json:"kind"`
	Livemode  bool      `gorm:"default:false" json:"livemode"`
	Valid     bool      `gorm:"default:false" json:"valid"`
	Processed bool      `gorm:"default:false" json:"processed"`
	Message   string    `gorm:"type:longtext" json:"message"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
