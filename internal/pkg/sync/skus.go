package sync

import (
	"fmt"

	"github.com/fkuebler/paymirror/app/models"
	"github.com/fkuebler/paymirror/internal/pkg/stripeapi"
)

// SyncSkus mirrors every SKU the provider lists. Parent products must be
// synchronized first.
func (s *Syncer) SyncSkus() error {
	skus, err := s.client.ListSkus()
	if err != nil {
		return err
	}
	for i := range skus {
		if _, err := s.SyncSkuFromData(&skus[i]); err != nil {
			return err
		}
	}
	s.log.Info().Int("count", len(skus)).Msg("skus synchronized")
	return nil
}

// SyncSkuFromData reconciles one SKU. A missing parent product is a
// sequencing failure, not a skippable condition.
func (s *Syncer) SyncSkuFromData(data *stripeapi.SkuData) (*models.Sku, error) {
	var product models.Product
	if err := s.db.Where("stripe_id = ?", data.Product).First(&product).Error; err != nil {
		return nil, fmt.Errorf("sku %s: resolving product %q: %w", data.ID, data.Product, err)
	}

	defaults := map[string]interface{}{
		"ProductID":         product.ID,
		"Price":             AmountForDB(data.Price, data.Currency),
		"Currency":          data.Currency,
		"Active":            data.Active,
		"Image":             data.Image,
		"Attributes":        marshalJSON(data.Attributes),
		"Inventory":         marshalJSON(data.Inventory),
		"PackageDimensions": marshalJSON(data.PackageDimensions),
		"Livemode":          data.Livemode,
		"Updated":           timeFromUnix(data.Updated),
	}
	var sku models.Sku
	if _, err := UpsertByStripeID(s.db, &sku, data.ID, defaults); err != nil {
		return nil, err
	}
	return &sku, nil
}
