package sync

import (
	"errors"

	"gorm.io/gorm"

	"github.com/fkuebler/paymirror/app/models"
)

// RecordEvent stores one webhook notification for admin browsing. Recording
// is idempotent on the event's external identifier; a redelivery returns the
// existing row untouched. Processing semantics live with the provider, not
// here.
func (s *Syncer) RecordEvent(stripeID, kind string, livemode bool, message string) (*models.Event, bool, error) {
	var ev models.Event
	err := s.db.Where("stripe_id = ?", stripeID).First(&ev).Error
	if err == nil {
		return &ev, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	ev = models.Event{
		StripeID: stripeID,
		Kind:     kind,
		Livemode: livemode,
		Valid:    true,
		Message:  message,
	}
	if err := s.db.Create(&ev).Error; err != nil {
		return nil, false, err
	}
	s.log.Debug().Str("event", stripeID).Str("kind", kind).Msg("event recorded")
	return &ev, true, nil
}
