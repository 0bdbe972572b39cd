package sync

import (
	"fmt"

	"github.com/fkuebler/paymirror/app/models"
	"github.com/fkuebler/paymirror/internal/pkg/stripeapi"
)

// SyncSubscriptionFromData reconciles one subscription. Both the customer and
// the plan must already be mirrored; a subscription without them is a
// sequencing bug in the caller, not a skippable condition.
func (s *Syncer) SyncSubscriptionFromData(data *stripeapi.SubscriptionData) (*models.Subscription, error) {
	cu, err := models.GetCustomerByStripeID(s.db, data.Customer)
	if err != nil {
		return nil, fmt.Errorf("subscription %s: resolving customer %q: %w", data.ID, data.Customer, err)
	}

	if data.Plan == nil {
		return nil, fmt.Errorf("subscription %s: payload carries no plan", data.ID)
	}
	plan, err := s.SyncPlanFromData(data.Plan)
	if err != nil {
		return nil, fmt.Errorf("subscription %s: syncing plan %q: %w", data.ID, data.Plan.ID, err)
	}

	defaults := map[string]interface{}{
		"CustomerID":         cu.ID,
		"PlanID":             plan.ID,
		"Status":             data.Status,
		"Quantity":           int(data.Quantity),
		"Start":              timeFromUnix(data.Start),
		"CurrentPeriodStart": timeFromUnix(data.CurrentPeriodStart),
		"CurrentPeriodEnd":   timeFromUnix(data.CurrentPeriodEnd),
		"TrialStart":         timeFromUnix(data.TrialStart),
		"TrialEnd":           timeFromUnix(data.TrialEnd),
		"CanceledAt":         timeFromUnix(data.CanceledAt),
		"EndedAt":            timeFromUnix(data.EndedAt),
		"CancelAtPeriodEnd":  data.CancelAtPeriodEnd,
	}
	var sub models.Subscription
	if _, err := UpsertByStripeID(s.db, &sub, data.ID, defaults); err != nil {
		return nil, err
	}
	return &sub, nil
}
