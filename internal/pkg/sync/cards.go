package sync

import (
	"github.com/fkuebler/paymirror/app/models"
	"github.com/fkuebler/paymirror/internal/pkg/stripeapi"
)

// SyncCardFromData reconciles one stored payment card for a customer.
func (s *Syncer) SyncCardFromData(customer *models.Customer, data stripeapi.CardData) (*models.Card, error) {
	defaults := map[string]interface{}{
		"CustomerID":  customer.ID,
		"Fingerprint": data.Fingerprint,
		"Brand":       data.Brand,
		"Last4":       data.Last4,
		"ExpMonth":    data.ExpMonth,
		"ExpYear":     data.ExpYear,
	}
	var card models.Card
	if _, err := UpsertByStripeID(s.db, &card, data.ID, defaults); err != nil {
		return nil, err
	}
	return &card, nil
}
