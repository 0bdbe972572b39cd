package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sku mirrors a Stripe SKU. The structured sub-documents (attributes,
// inventory, package dimensions) are stored as opaque JSON text, matching how
// the provider hands them over.
type Sku struct {
	ID                uint            `gorm:"primaryKey" json:"id"`
	ProductID         uint            `gorm:"not null;index" json:"product_id"`
	Product           *Product        `json:"product,omitempty"`
	StripeID          string          `gorm:"type:varchar(191);uniqueIndex" json:"stripe_id"`
	Price             decimal.Decimal `gorm:"type:decimal(11,2);default:0" json:"price"`
	Currency          string          `gorm:"type:varchar(10);default:''" json:"currency"`
	Active            bool            `gorm:"default:true" json:"active"`
	Image             string          `gorm:"type:varchar(255);default:''" json:"image"`
	Attributes        string          `gorm:"type:longtext" json:"attributes"`
	Inventory         string          `gorm:"type:longtext" json:"inventory"`
	PackageDimensions string          `gorm:"type:longtext" json:"package_dimensions"`
	Livemode          bool            `gorm:"default:false" json:"livemode"`
	Updated           *time.Time      `gorm:"type:timestamp;default:null" json:"updated,omitempty"`
	CreatedAt         time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}
