package sync

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/fkuebler/paymirror/app/models"
	"github.com/fkuebler/paymirror/internal/pkg/stripeapi"
)

// SyncInvoices mirrors the provider's invoice listing, optionally restricted
// to one customer. Customers must have been synchronized beforehand; an
// invoice for an unknown customer aborts the run.
func (s *Syncer) SyncInvoices(customerStripeID string) (int, error) {
	invoices, err := s.client.ListInvoices(customerStripeID)
	if err != nil {
		return 0, err
	}
	for i := range invoices {
		if _, err := s.SyncInvoiceFromData(&invoices[i]); err != nil {
			return i, err
		}
	}
	s.log.Info().Int("count", len(invoices)).Str("customer", customerStripeID).Msg("invoices synchronized")
	return len(invoices), nil
}

// SyncInvoiceFromData reconciles one invoice. The customer must already be
// mirrored. A referenced charge is fetched and synchronized first so the
// local foreign key can point at it.
func (s *Syncer) SyncInvoiceFromData(data *stripeapi.InvoiceData) (*models.Invoice, error) {
	cu, err := models.GetCustomerByStripeID(s.db, data.Customer)
	if err != nil {
		return nil, fmt.Errorf("invoice %s: resolving customer %q: %w", data.ID, data.Customer, err)
	}

	var chargeID *uint
	if data.Charge != "" {
		ch, err := s.SyncCharge(data.Charge)
		if err != nil {
			return nil, fmt.Errorf("invoice %s: syncing charge %q: %w", data.ID, data.Charge, err)
		}
		chargeID = &ch.ID
	}

	var subscriptionID *uint
	if data.Subscription != "" {
		var sub models.Subscription
		err := s.db.Where("stripe_id = ?", data.Subscription).First(&sub).Error
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		if err == nil {
			subscriptionID = &sub.ID
		}
	}

	defaults := map[string]interface{}{
		"CustomerID":     cu.ID,
		"SubscriptionID": subscriptionID,
		"ChargeID":       chargeID,
		"AmountDue":      AmountForDB(data.AmountDue, data.Currency),
		"Subtotal":       AmountForDB(data.Subtotal, data.Currency),
		"Total":          AmountForDB(data.Total, data.Currency),
		"Tax":            AmountForDBPtr(data.Tax, data.Currency),
		"Currency":       data.Currency,
		"Paid":           data.Paid,
		"Closed":         data.Closed,
		"Attempted":      data.Attempted,
		"AttemptCount":   int(data.AttemptCount),
		"Date":           timeFromUnix(data.Date),
		"PeriodStart":    timeFromUnix(data.PeriodStart),
		"PeriodEnd":      timeFromUnix(data.PeriodEnd),
	}
	var inv models.Invoice
	if _, err := UpsertByStripeID(s.db, &inv, data.ID, defaults); err != nil {
		return nil, err
	}
	return &inv, nil
}
