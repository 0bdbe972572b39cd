package sync

import (
	"github.com/fkuebler/paymirror/app/models"
	"github.com/fkuebler/paymirror/internal/pkg/stripeapi"
)

// SyncPlans mirrors the provider's plan catalog. Only the first page is
// fetched; the catalog is expected to stay within one page.
func (s *Syncer) SyncPlans() error {
	plans, err := s.client.ListPlans()
	if err != nil {
		return err
	}
	for i := range plans {
		if _, err := s.SyncPlanFromData(&plans[i]); err != nil {
			return err
		}
	}
	s.log.Info().Int("count", len(plans)).Msg("plans synchronized")
	return nil
}

// SyncPlanFromData reconciles one plan.
func (s *Syncer) SyncPlanFromData(data *stripeapi.PlanData) (*models.Plan, error) {
	defaults := map[string]interface{}{
		"Amount":              AmountForDB(data.Amount, data.Currency),
		"Currency":            data.Currency,
		"Interval":            data.Interval,
		"IntervalCount":       int(data.IntervalCount),
		"Name":                data.Name,
		"StatementDescriptor": data.StatementDescriptor,
		"TrialPeriodDays":     int(data.TrialPeriodDays),
	}
	var p models.Plan
	if _, err := UpsertByStripeID(s.db, &p, data.ID, defaults); err != nil {
		return nil, err
	}
	return &p, nil
}
