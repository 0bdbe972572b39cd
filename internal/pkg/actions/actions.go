package actions

import (
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/fkuebler/paymirror/internal/pkg/sync"
)

var validate = validator.New()

// Actions bundles the per-entity action groups around one syncer.
type Actions struct {
	Orders            *Orders
	Coupons           *Coupons
	Skus              *Skus
	InvoiceItems      *InvoiceItems
	SubscriptionItems *SubscriptionItems
}

func New(syncer *sync.Syncer, log zerolog.Logger) *Actions {
	return &Actions{
		Orders:            NewOrders(syncer, log),
		Coupons:           NewCoupons(syncer, log),
		Skus:              NewSkus(syncer, log),
		InvoiceItems:      NewInvoiceItems(syncer, log),
		SubscriptionItems: NewSubscriptionItems(syncer, log),
	}
}
