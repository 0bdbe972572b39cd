package sync

import (
	"github.com/fkuebler/paymirror/app/models"
	"github.com/fkuebler/paymirror/internal/pkg/stripeapi"
)

// SyncTransfers mirrors every transfer the provider lists. The listing does
// not carry a lifecycle status, so stored statuses from event deliveries are
// left untouched.
func (s *Syncer) SyncTransfers() (int, error) {
	transfers, err := s.client.ListTransfers()
	if err != nil {
		return 0, err
	}
	for i := range transfers {
		if _, err := s.SyncTransferFromData(&transfers[i], ""); err != nil {
			return i, err
		}
	}
	s.log.Info().Int("count", len(transfers)).Msg("transfers synchronized")
	return len(transfers), nil
}

// SyncTransferFromData reconciles one transfer. The provider reports a
// transfer's lifecycle through events rather than a payload field, so the
// status is passed in by the caller; an empty status leaves the stored one
// untouched.
func (s *Syncer) SyncTransferFromData(data *stripeapi.TransferData, status string) (*models.Transfer, error) {
	defaults := map[string]interface{}{
		"Amount":         AmountForDB(data.Amount, data.Currency),
		"AmountReversed": AmountForDB(data.AmountReversed, data.Currency),
		"Currency":       data.Currency,
		"Date":           timeFromUnix(data.Created),
		"Description":    data.Description,
		"Destination":    data.Destination,
	}
	if status != "" {
		defaults["Status"] = status
	}
	var t models.Transfer
	if _, err := UpsertByStripeID(s.db, &t, data.ID, defaults); err != nil {
		return nil, err
	}
	return &t, nil
}
