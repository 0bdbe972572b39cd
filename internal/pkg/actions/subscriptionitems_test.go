package actions

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fkuebler/paymirror/app/models"
	"github.com/fkuebler/paymirror/internal/pkg/stripeapi"
)

func remoteSubItem(id string) *stripeapi.SubscriptionItemData {
	return &stripeapi.SubscriptionItemData{
		ID:           id,
		Subscription: "sub_1",
		Plan:         &stripeapi.PlanData{ID: "plan_extra", Interval: "month", IntervalCount: 1},
		Quantity:     2,
	}
}

func TestCreateSubscriptionItemMirrorsRemoteResult(t *testing.T) {
	var got stripeapi.SubscriptionItemCreateParams
	client := &fakeClient{
		createSubItem: func(p stripeapi.SubscriptionItemCreateParams) (*stripeapi.SubscriptionItemData, error) {
			got = p
			return remoteSubItem("si_1"), nil
		},
	}
	syncer := newTestSyncer(t, client)
	cu := seedCustomer(t, syncer.DB(), "cus_1")
	plan := models.Plan{StripeID: "plan_base"}
	require.NoError(t, syncer.DB().Create(&plan).Error)
	require.NoError(t, syncer.DB().Create(&models.Subscription{
		CustomerID: cu.ID, PlanID: plan.ID, StripeID: "sub_1",
		Status: models.SubscriptionStatusActive,
	}).Error)
	items := NewSubscriptionItems(syncer, zerolog.Nop())

	item, err := items.Create(stripeapi.SubscriptionItemCreateParams{
		Subscription: "sub_1",
		Plan:         "plan_extra",
	})
	require.NoError(t, err)
	assert.Equal(t, "sub_1", got.Subscription)
	assert.Equal(t, "si_1", item.StripeID)
	assert.Equal(t, 2, item.Quantity)

	var count int64
	require.NoError(t, syncer.DB().Model(&models.SubscriptionItem{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestCreateSubscriptionItemValidatesBeforeRemoteCall(t *testing.T) {
	calls := 0
	client := &fakeClient{
		createSubItem: func(stripeapi.SubscriptionItemCreateParams) (*stripeapi.SubscriptionItemData, error) {
			calls++
			return remoteSubItem("si_1"), nil
		},
	}
	syncer := newTestSyncer(t, client)
	items := NewSubscriptionItems(syncer, zerolog.Nop())

	_, err := items.Create(stripeapi.SubscriptionItemCreateParams{Subscription: "sub_1"})
	require.Error(t, err)
	assert.Zero(t, calls)
}

func TestRetrieveSubscriptionItemAbsence(t *testing.T) {
	client := &fakeClient{
		retrieveSubItm: func(string) (*stripeapi.SubscriptionItemData, error) {
			return nil, &stripeapi.Error{
				Type: stripeapi.ErrorTypeInvalidRequest,
				Code: "resource_missing",
			}
		},
	}
	syncer := newTestSyncer(t, client)
	items := NewSubscriptionItems(syncer, zerolog.Nop())

	// an empty id never reaches the provider
	data, err := items.Retrieve("")
	require.NoError(t, err)
	assert.Nil(t, data)

	data, err = items.Retrieve("si_gone")
	require.NoError(t, err)
	assert.Nil(t, data)
}

func TestDeleteSubscriptionItemClearsMirrorWhenAlreadyGone(t *testing.T) {
	client := &fakeClient{
		deleteSubItem: func(string) error {
			return &stripeapi.Error{
				Type: stripeapi.ErrorTypeInvalidRequest,
				Code: "resource_missing",
			}
		},
	}
	syncer := newTestSyncer(t, client)
	cu := seedCustomer(t, syncer.DB(), "cus_1")
	plan := models.Plan{StripeID: "plan_base"}
	require.NoError(t, syncer.DB().Create(&plan).Error)
	sub := models.Subscription{
		CustomerID: cu.ID, PlanID: plan.ID, StripeID: "sub_1",
		Status: models.SubscriptionStatusActive,
	}
	require.NoError(t, syncer.DB().Create(&sub).Error)
	require.NoError(t, syncer.DB().Create(&models.SubscriptionItem{
		SubscriptionID: sub.ID, PlanID: plan.ID, StripeID: "si_1",
	}).Error)
	items := NewSubscriptionItems(syncer, zerolog.Nop())

	require.NoError(t, items.Delete("si_1"))

	var count int64
	require.NoError(t, syncer.DB().Model(&models.SubscriptionItem{}).Count(&count).Error)
	assert.Zero(t, count)
}
