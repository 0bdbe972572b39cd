package actions

import (
	"github.com/rs/zerolog"

	"github.com/fkuebler/paymirror/app/models"
	"github.com/fkuebler/paymirror/internal/pkg/stripeapi"
	"github.com/fkuebler/paymirror/internal/pkg/sync"
)

// SubscriptionItems wraps the provider's subscription line item operations.
type SubscriptionItems struct {
	syncer *sync.Syncer
	client stripeapi.Client
	log    zerolog.Logger
}

func NewSubscriptionItems(syncer *sync.Syncer, log zerolog.Logger) *SubscriptionItems {
	return &SubscriptionItems{syncer: syncer, client: syncer.Client(), log: log}
}

// Create adds an item to a subscription remotely, then mirrors it.
func (a *SubscriptionItems) Create(params stripeapi.SubscriptionItemCreateParams) (*models.SubscriptionItem, error) {
	if err := validate.Struct(params); err != nil {
		return nil, err
	}
	data, err := a.client.CreateSubscriptionItem(params)
	if err != nil {
		return nil, err
	}
	return a.syncer.SyncSubscriptionItemFromData(data)
}

// Update sends the provided fields remotely, then re-syncs.
func (a *SubscriptionItems) Update(item *models.SubscriptionItem, params stripeapi.SubscriptionItemUpdateParams) (*models.SubscriptionItem, error) {
	data, err := a.client.UpdateSubscriptionItem(item.StripeID, params)
	if err != nil {
		return nil, err
	}
	return a.syncer.SyncSubscriptionItemFromData(data)
}

// Retrieve fetches the remote item without touching the mirror. An empty id
// or an item the provider no longer knows is absence, not an error.
func (a *SubscriptionItems) Retrieve(stripeID string) (*stripeapi.SubscriptionItemData, error) {
	if stripeID == "" {
		return nil, nil
	}
	data, err := a.client.RetrieveSubscriptionItem(stripeID)
	if stripeapi.IsResourceMissing(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

// Delete removes the item remotely and drops the local mirror row. An item
// already gone upstream still clears locally.
func (a *SubscriptionItems) Delete(stripeID string) error {
	if err := a.client.DeleteSubscriptionItem(stripeID); err != nil && !stripeapi.IsResourceMissing(err) {
		return err
	}
	return a.syncer.DB().Where("stripe_id = ?", stripeID).Delete(&models.SubscriptionItem{}).Error
}

// SyncForSubscription mirrors the authoritative item set of one subscription.
func (a *SubscriptionItems) SyncForSubscription(sub *models.Subscription) error {
	return a.syncer.SyncSubscriptionItems(sub)
}
