package sync

import (
	"errors"

	"gorm.io/gorm"

	"github.com/fkuebler/paymirror/app/models"
	"github.com/fkuebler/paymirror/internal/pkg/stripeapi"
)

// SyncCharge fetches one charge from the provider and reconciles it locally.
func (s *Syncer) SyncCharge(stripeID string) (*models.Charge, error) {
	data, err := s.client.RetrieveCharge(stripeID)
	if err != nil {
		return nil, err
	}
	return s.SyncChargeFromData(data)
}

// SyncChargeFromData reconciles one charge. The customer and invoice links
// are attached when their mirrors exist and left unset otherwise; a charge
// can arrive before the records it references.
func (s *Syncer) SyncChargeFromData(data *stripeapi.ChargeData) (*models.Charge, error) {
	var customerID *uint
	if data.Customer != "" {
		cu, err := models.GetCustomerByStripeID(s.db, data.Customer)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		if cu != nil {
			customerID = &cu.ID
		}
	}
	var invoiceID *uint
	if data.Invoice != "" {
		var inv models.Invoice
		err := s.db.Where("stripe_id = ?", data.Invoice).First(&inv).Error
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		if err == nil {
			invoiceID = &inv.ID
		}
	}

	defaults := map[string]interface{}{
		"CustomerID":     customerID,
		"InvoiceID":      invoiceID,
		"Amount":         AmountForDB(data.Amount, data.Currency),
		"AmountRefunded": AmountForDB(data.AmountRefunded, data.Currency),
		"Currency":       data.Currency,
		"Description":    data.Description,
		"Paid":           data.Paid,
		"Refunded":       data.Refunded,
		"Captured":       data.Captured,
		"Disputed":       data.Disputed,
		"Livemode":       data.Livemode,
		"Created":        timeFromUnix(data.Created),
	}
	var ch models.Charge
	if _, err := UpsertByStripeID(s.db, &ch, data.ID, defaults); err != nil {
		return nil, err
	}
	return &ch, nil
}
