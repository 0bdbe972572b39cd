package sync

import (
	"fmt"

	"github.com/fkuebler/paymirror/app/models"
	"github.com/fkuebler/paymirror/internal/pkg/stripeapi"
)

// SyncSubscriptionItemFromData reconciles one subscription line item. The
// subscription must already be mirrored; the plan is synchronized from the
// payload the same way subscription sync does it.
func (s *Syncer) SyncSubscriptionItemFromData(data *stripeapi.SubscriptionItemData) (*models.SubscriptionItem, error) {
	var sub models.Subscription
	if err := s.db.Where("stripe_id = ?", data.Subscription).First(&sub).Error; err != nil {
		return nil, fmt.Errorf("subscription item %s: resolving subscription %q: %w", data.ID, data.Subscription, err)
	}

	if data.Plan == nil {
		return nil, fmt.Errorf("subscription item %s: payload carries no plan", data.ID)
	}
	plan, err := s.SyncPlanFromData(data.Plan)
	if err != nil {
		return nil, fmt.Errorf("subscription item %s: syncing plan %q: %w", data.ID, data.Plan.ID, err)
	}

	defaults := map[string]interface{}{
		"SubscriptionID": sub.ID,
		"PlanID":         plan.ID,
		"Quantity":       int(data.Quantity),
		"Metadata":       marshalJSON(data.Metadata),
		"Created":        timeFromUnix(data.Created),
	}
	var si models.SubscriptionItem
	if _, err := UpsertByStripeID(s.db, &si, data.ID, defaults); err != nil {
		return nil, err
	}
	return &si, nil
}

// SyncSubscriptionItems mirrors the full item listing of one subscription.
// Items the provider no longer lists are removed locally; the listing is the
// authoritative set for its subscription.
func (s *Syncer) SyncSubscriptionItems(sub *models.Subscription) error {
	items, err := s.client.ListSubscriptionItems(sub.StripeID)
	if err != nil {
		return err
	}
	seen := make([]string, 0, len(items))
	for i := range items {
		si, err := s.SyncSubscriptionItemFromData(&items[i])
		if err != nil {
			return err
		}
		seen = append(seen, si.StripeID)
	}

	stale := s.db.Where("subscription_id = ?", sub.ID)
	if len(seen) > 0 {
		stale = stale.Where("stripe_id NOT IN ?", seen)
	}
	if err := stale.Delete(&models.SubscriptionItem{}).Error; err != nil {
		return err
	}
	s.log.Debug().Str("subscription", sub.StripeID).Int("count", len(items)).Msg("subscription items synchronized")
	return nil
}
