package actions

import (
	"github.com/rs/zerolog"

	"github.com/fkuebler/paymirror/app/models"
	"github.com/fkuebler/paymirror/internal/pkg/stripeapi"
	"github.com/fkuebler/paymirror/internal/pkg/sync"
)

// Coupons wraps the provider's coupon operations.
type Coupons struct {
	syncer *sync.Syncer
	client stripeapi.Client
	log    zerolog.Logger
}

func NewCoupons(syncer *sync.Syncer, log zerolog.Logger) *Coupons {
	return &Coupons{syncer: syncer, client: syncer.Client(), log: log}
}

// Create registers a coupon remotely, then mirrors it.
func (a *Coupons) Create(params stripeapi.CouponCreateParams) (*models.Coupon, error) {
	if err := validate.Struct(params); err != nil {
		return nil, err
	}
	data, err := a.client.CreateCoupon(params)
	if err != nil {
		return nil, err
	}
	return a.syncer.SyncCouponFromData(data)
}

// Delete removes a coupon remotely and drops the local mirror. This is an
// operator-initiated removal; sync routines themselves never delete.
func (a *Coupons) Delete(c *models.Coupon) error {
	if err := a.client.DeleteCoupon(c.StripeID); err != nil {
		return err
	}
	return a.syncer.DB().Delete(c).Error
}

// SyncAll mirrors the provider's coupon listing.
func (a *Coupons) SyncAll() error {
	return a.syncer.SyncCoupons()
}
