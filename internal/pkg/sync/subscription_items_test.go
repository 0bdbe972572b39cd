package sync

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fkuebler/paymirror/app/models"
	"github.com/fkuebler/paymirror/internal/pkg/stripeapi"
)

func seedSubscription(t *testing.T, s *Syncer, customer *models.Customer, stripeID string) *models.Subscription {
	t.Helper()
	plan := &models.Plan{StripeID: "plan_base", Name: "Base"}
	require.NoError(t, s.DB().Create(plan).Error)
	sub := &models.Subscription{StripeID: stripeID, CustomerID: customer.ID, PlanID: plan.ID, Status: models.SubscriptionStatusActive}
	require.NoError(t, s.DB().Create(sub).Error)
	return sub
}

func subscriptionItemPayload(id string) stripeapi.SubscriptionItemData {
	return stripeapi.SubscriptionItemData{
		ID:           id,
		Subscription: "sub_1",
		Plan:         &stripeapi.PlanData{ID: "plan_extra", Amount: 500, Currency: "usd", Interval: "month", Name: "Extra"},
		Quantity:     2,
		Metadata:     map[string]string{"seat": "dev"},
		Created:      1700000000,
	}
}

func TestSyncSubscriptionItemFromData(t *testing.T) {
	s, _ := newTestSyncer(t, &fakeClient{})
	cu := seedCustomer(t, s.DB(), "cus_1")
	sub := seedSubscription(t, s, cu, "sub_1")

	payload := subscriptionItemPayload("si_100")
	item, err := s.SyncSubscriptionItemFromData(&payload)
	require.NoError(t, err)
	assert.Equal(t, sub.ID, item.SubscriptionID)
	assert.Equal(t, 2, item.Quantity)
	assert.JSONEq(t, `{"seat":"dev"}`, item.Metadata)

	var plan models.Plan
	require.NoError(t, s.DB().First(&plan, item.PlanID).Error)
	assert.Equal(t, "plan_extra", plan.StripeID)
}

func TestSyncSubscriptionItemRequiresSubscription(t *testing.T) {
	s, _ := newTestSyncer(t, &fakeClient{})

	payload := subscriptionItemPayload("si_100")
	_, err := s.SyncSubscriptionItemFromData(&payload)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sub_1")
}

func TestSyncSubscriptionItemsRemovesStale(t *testing.T) {
	client := &fakeClient{
		listSubItems: func(subscription string) ([]stripeapi.SubscriptionItemData, error) {
			assert.Equal(t, "sub_1", subscription)
			return []stripeapi.SubscriptionItemData{subscriptionItemPayload("si_100")}, nil
		},
	}
	s, _ := newTestSyncer(t, client)
	cu := seedCustomer(t, s.DB(), "cus_1")
	sub := seedSubscription(t, s, cu, "sub_1")

	stale := &models.SubscriptionItem{StripeID: "si_old", SubscriptionID: sub.ID, PlanID: sub.PlanID}
	require.NoError(t, s.DB().Create(stale).Error)

	require.NoError(t, s.SyncSubscriptionItems(sub))

	var ids []string
	require.NoError(t, s.DB().Model(&models.SubscriptionItem{}).
		Where("subscription_id = ?", sub.ID).Pluck("stripe_id", &ids).Error)
	assert.Equal(t, []string{"si_100"}, ids)
}
