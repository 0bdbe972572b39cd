package sync

import (
	"github.com/fkuebler/paymirror/app/models"
	"github.com/fkuebler/paymirror/internal/pkg/stripeapi"
)

// SyncAccount fetches one connected account and reconciles it locally.
func (s *Syncer) SyncAccount(stripeID string) (*models.Account, error) {
	data, err := s.client.RetrieveAccount(stripeID)
	if err != nil {
		return nil, err
	}
	return s.SyncAccountFromData(data)
}

// SyncAccountFromData reconciles one connected account.
func (s *Syncer) SyncAccountFromData(data *stripeapi.AccountData) (*models.Account, error) {
	defaults := map[string]interface{}{
		"Type":           data.Type,
		"Country":        data.Country,
		"Email":          data.Email,
		"DisplayName":    data.DisplayName,
		"ChargesEnabled": data.ChargesEnabled,
		"PayoutsEnabled": data.PayoutsEnabled,
	}
	var a models.Account
	if _, err := UpsertByStripeID(s.db, &a, data.ID, defaults); err != nil {
		return nil, err
	}
	return &a, nil
}
