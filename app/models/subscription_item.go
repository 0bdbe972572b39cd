package models

import "time"

// SubscriptionItem mirrors one line of a multi-plan subscription.
type SubscriptionItem struct {
	ID             uint          `gorm:"primaryKey" json:"id"`
	StripeID       string        `gorm:"type:varchar(191);uniqueIndex" json:"stripe_id"`
	SubscriptionID uint          `gorm:"not null;index" json:"subscription_id"`
	Subscription   *Subscription `json:"subscription,omitempty"`
	PlanID         uint          `gorm:"not null;index" json:"plan_id"`
	Plan           *Plan         `json:"plan,omitempty"`
	Quantity       int           `gorm:"default:1" json:"quantity"`
	Metadata       string        `gorm:"type:longtext" json:"metadata"`
	Created        *time.Time    `gorm:"type:timestamp;default:null" json:"created,omitempty"`
	CreatedAt      time.Time     `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time     `gorm:"autoUpdateTime" json:"updated_at"`
}
