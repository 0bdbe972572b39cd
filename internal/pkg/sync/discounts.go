package sync

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/fkuebler/paymirror/app/models"
	"github.com/fkuebler/paymirror/internal/pkg/stripeapi"
)

// SyncDiscountFromData reconciles the coupon attached to a customer. The
// customer may be passed in by a caller that already holds it; otherwise it
// is resolved from the payload. The coupon is synchronized first so the
// local row can reference it.
func (s *Syncer) SyncDiscountFromData(customer *models.Customer, data *stripeapi.DiscountData) (*models.Discount, error) {
	if customer == nil {
		cu, err := models.GetCustomerByStripeID(s.db, data.Customer)
		if err != nil {
			return nil, fmt.Errorf("discount: resolving customer %q: %w", data.Customer, err)
		}
		customer = cu
	} else if data.Customer != "" && customer.StripeID != data.Customer {
		return nil, fmt.Errorf("discount: customer %s does not match payload customer %s",
			customer.StripeID, data.Customer)
	}

	if data.Coupon == nil {
		return nil, fmt.Errorf("discount for customer %s: payload carries no coupon", customer.StripeID)
	}
	coupon, err := s.SyncCouponFromData(data.Coupon)
	if err != nil {
		return nil, err
	}

	defaults := map[string]interface{}{
		"CouponID": coupon.ID,
		"Start":    timeFromUnix(data.Start),
		"End":      timeFromUnix(data.End),
	}
	var d models.Discount
	if _, err := UpsertByKey(s.db, &d, "customer_id", "CustomerID", customer.ID, defaults); err != nil {
		return nil, err
	}
	return &d, nil
}

// removeDiscount drops a stored discount once the provider reports the
// customer without one. Reads first so that customers who never had a
// discount stay write-free.
func (s *Syncer) removeDiscount(customer *models.Customer) error {
	var d models.Discount
	err := s.db.Where("customer_id = ?", customer.ID).First(&d).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	return s.db.Delete(&d).Error
}
