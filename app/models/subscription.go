package models

import "time"

const (
	SubscriptionStatusActive   = "active"
	SubscriptionStatusTrialing = "trialing"
	SubscriptionStatusPastDue  = "past_due"
	SubscriptionStatusCanceled = "canceled"
	SubscriptionStatusUnpaid   = "unpaid"
)

// Subscription mirrors a Stripe subscription of one Customer to one Plan.
type Subscription struct {
	ID                 uint       `gorm:"primaryKey" json:"id"`
	CustomerID         uint       `gorm:"not null;index" json:"customer_id"`
	Customer           *Customer  `json:"customer,omitempty"`
	PlanID             uint       `gorm:"not null;index" json:"plan_id"`
	Plan               *Plan      `json:"plan,omitempty"`
	StripeID           string     `gorm:"type:varchar(191);uniqueIndex" json:"stripe_id"`
	Status             string     `gorm:"type:varchar(32);not null;index" json:"status"`
	Quantity           int        `gorm:"default:1" json:"quantity"`
	Start              *time.Time `gorm:"type:timestamp;default:null" json:"start,omitempty"`
	CurrentPeriodStart *time.Time `gorm:"type:timestamp;default:null" json:"current_period_start,omitempty"`
	CurrentPeriodEnd   *time.Time `gorm:"type:timestamp;default:null" json:"current_period_end,omitempty"`
	TrialStart         *time.Time `gorm:"type:timestamp;default:null" json:"trial_start,omitempty"`
	TrialEnd           *time.Time `gorm:"type:timestamp;default:null" json:"trial_end,omitempty"`
	CanceledAt         *time.Time `gorm:"type:timestamp;default:null" json:"canceled_at,omitempty"`
	EndedAt            *time.Time `gorm:"type:timestamp;default:null" json:"ended_at,omitempty"`
	CancelAtPeriodEnd  bool       `gorm:"default:false" json:"cancel_at_period_end"`
	CreatedAt          time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt          time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}
