package sync

import (
	"fmt"

	"github.com/fkuebler/paymirror/app/models"
	"github.com/fkuebler/paymirror/internal/pkg/stripeapi"
)

// SyncOrderFromData reconciles one order. The customer must already be
// mirrored; callers are responsible for syncing customers before their
// orders. A referenced charge is fetched and synchronized first.
func (s *Syncer) SyncOrderFromData(data *stripeapi.OrderData) (*models.Order, error) {
	cu, err := models.GetCustomerByStripeID(s.db, data.Customer)
	if err != nil {
		return nil, fmt.Errorf("order %s: resolving customer %q: %w", data.ID, data.Customer, err)
	}

	var chargeID *uint
	if data.Charge != "" {
		ch, err := s.SyncCharge(data.Charge)
		if err != nil {
			return nil, fmt.Errorf("order %s: syncing charge %q: %w", data.ID, data.Charge, err)
		}
		chargeID = &ch.ID
	}

	defaults := map[string]interface{}{
		"CustomerID":             cu.ID,
		"ChargeID":               chargeID,
		"Amount":                 AmountForDB(data.Amount, data.Currency),
		"Currency":               data.Currency,
		"Livemode":               data.Livemode,
		"Metadata":               marshalJSON(data.Metadata),
		"SelectedShippingMethod": data.SelectedShippingMethod,
		"Shipping":               marshalJSON(data.Shipping),
		"ShippingMethods":        marshalJSON(data.ShippingMethods),
		"Status":                 data.Status,
		"StatusTransitions":      marshalJSON(data.StatusTransitions),
		"Items":                  marshalJSON(data.Items),
	}
	// An absent returned amount stays NULL; zero would claim a return of
	// nothing actually happened.
	if data.AmountReturned != nil {
		defaults["AmountReturned"] = AmountForDBPtr(data.AmountReturned, data.Currency)
	}

	var o models.Order
	if _, err := UpsertByStripeID(s.db, &o, data.ID, defaults); err != nil {
		return nil, err
	}
	return &o, nil
}

// SyncOrders walks the provider's order listing, optionally restricted to
// one customer, and reconciles every order it yields. A failure partway
// leaves earlier writes committed; there is no checkpointing.
func (s *Syncer) SyncOrders(customerStripeID string) (int, error) {
	count := 0
	iter := s.client.ListOrders(customerStripeID)
	for iter.Next() {
		if _, err := s.SyncOrderFromData(iter.Order()); err != nil {
			return count, err
		}
		count++
	}
	if err := iter.Err(); err != nil {
		return count, err
	}
	s.log.Info().Int("count", count).Str("customer", customerStripeID).Msg("orders synchronized")
	return count, nil
}
