package sync

import (
	"github.com/fkuebler/paymirror/app/models"
	"github.com/fkuebler/paymirror/internal/pkg/stripeapi"
)

// SyncCoupons mirrors every coupon the provider lists.
func (s *Syncer) SyncCoupons() error {
	coupons, err := s.client.ListCoupons()
	if err != nil {
		return err
	}
	for i := range coupons {
		if _, err := s.SyncCouponFromData(&coupons[i]); err != nil {
			return err
		}
	}
	s.log.Info().Int("count", len(coupons)).Msg("coupons synchronized")
	return nil
}

// SyncCouponFromData reconciles one coupon.
func (s *Syncer) SyncCouponFromData(data *stripeapi.CouponData) (*models.Coupon, error) {
	defaults := map[string]interface{}{
		"AmountOff":        AmountForDBPtr(data.AmountOff, data.Currency),
		"Currency":         data.Currency,
		"Duration":         data.Duration,
		"DurationInMonths": intPtr(data.DurationInMonths),
		"MaxRedemptions":   intPtr(data.MaxRedemptions),
		"Metadata":         marshalJSON(data.Metadata),
		"PercentOff":       data.PercentOff,
		"RedeemBy":         timeFromUnix(data.RedeemBy),
		"TimesRedeemed":    int(data.TimesRedeemed),
		"Valid":            data.Valid,
		"Livemode":         data.Livemode,
	}
	var c models.Coupon
	if _, err := UpsertByStripeID(s.db, &c, data.ID, defaults); err != nil {
		return nil, err
	}
	return &c, nil
}

func intPtr(v *int64) *int {
	if v == nil {
		return nil
	}
	i := int(*v)
	return &i
}
