package sync

import (
	"fmt"

	"github.com/fkuebler/paymirror/app/models"
	"github.com/fkuebler/paymirror/internal/pkg/stripeapi"
)

// SyncCustomer fetches one customer from the provider and reconciles the
// local mirror. A customer the provider no longer knows is marked purged
// instead of deleted.
func (s *Syncer) SyncCustomer(stripeID string) (*models.Customer, error) {
	data, err := s.client.RetrieveCustomer(stripeID)
	if err != nil {
		if stripeapi.IsResourceMissing(err) {
			return s.purgeCustomer(stripeID)
		}
		return nil, err
	}
	return s.SyncCustomerFromData(data)
}

// SyncCustomerFromData reconciles the local customer row plus the cards,
// subscriptions and discount the payload carries inline.
func (s *Syncer) SyncCustomerFromData(data *stripeapi.CustomerData) (*models.Customer, error) {
	defaults := map[string]interface{}{
		"Currency":       data.Currency,
		"AccountBalance": AmountForDB(data.Balance, data.Currency),
		"Delinquent":     data.Delinquent,
		"DefaultSource":  data.DefaultSource,
	}
	var cu models.Customer
	if _, err := UpsertByStripeID(s.db, &cu, data.ID, defaults); err != nil {
		return nil, err
	}
	for _, card := range data.Cards {
		if _, err := s.SyncCardFromData(&cu, card); err != nil {
			return nil, err
		}
	}
	for _, sub := range data.Subscriptions {
		sub.Customer = data.ID
		if _, err := s.SyncSubscriptionFromData(&sub); err != nil {
			return nil, err
		}
	}
	if data.Discount != nil {
		if _, err := s.SyncDiscountFromData(&cu, data.Discount); err != nil {
			return nil, err
		}
	} else if err := s.removeDiscount(&cu); err != nil {
		return nil, err
	}
	s.log.Debug().Str("customer", data.ID).Msg("customer synchronized")
	return &cu, nil
}

// purgeCustomer records that the provider has deleted a customer. The row
// stays for audit browsing; its stored cards are removed.
func (s *Syncer) purgeCustomer(stripeID string) (*models.Customer, error) {
	cu, err := models.GetCustomerByStripeID(s.db, stripeID)
	if err != nil {
		return nil, fmt.Errorf("purging customer %s: %w", stripeID, err)
	}
	if err := s.db.Where("customer_id = ?", cu.ID).Delete(&models.Card{}).Error; err != nil {
		return nil, err
	}
	now := nowUTC()
	cu.DatePurged = &now
	cu.DefaultSource = ""
	if err := s.db.Save(cu).Error; err != nil {
		return nil, err
	}
	s.log.Info().Str("customer", stripeID).Msg("customer purged upstream, local mirror retained")
	return cu, nil
}
