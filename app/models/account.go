package models

import "time"

// Account mirrors a Stripe connected account.
type Account struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	StripeID       string    `gorm:"type:varchar(191);uniqueIndex" json:"stripe_id"`
	Type           string    `gorm:"type:varchar(32);default:''" json:"type"`
	Country        string    `gorm:"type:varchar(2);default:''" json:"country"`
	Email          string    `gorm:"type:varchar(200);default:''" json:"email"`
	DisplayName    string    `gorm:"type:varchar(200);default:''" json:"display_name"`
	ChargesEnabled bool      `gorm:"default:false" json:"charges_enabled"`
	PayoutsEnabled bool      `gorm:"default:false" json:"payouts_enabled"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (a Account) String() string {
	if a.DisplayName != "" {
		return a.DisplayName
	}
	return a.StripeID
}
