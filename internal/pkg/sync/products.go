package sync

import (
	"github.com/fkuebler/paymirror/app/models"
	"github.com/fkuebler/paymirror/internal/pkg/stripeapi"
)

// SyncProducts mirrors the provider's product catalog, then the SKUs under
// it. Products go first so SKU rows can resolve their parent.
func (s *Syncer) SyncProducts() error {
	products, err := s.client.ListProducts()
	if err != nil {
		return err
	}
	for i := range products {
		if _, err := s.SyncProductFromData(&products[i]); err != nil {
			return err
		}
	}
	s.log.Info().Int("count", len(products)).Msg("products synchronized")
	return s.SyncSkus()
}

// SyncProductFromData reconciles one product.
func (s *Syncer) SyncProductFromData(data *stripeapi.ProductData) (*models.Product, error) {
	defaults := map[string]interface{}{
		"Name":        data.Name,
		"Caption":     data.Caption,
		"Description": data.Description,
		"Active":      data.Active,
		"Shippable":   data.Shippable,
		"Livemode":    data.Livemode,
	}
	var p models.Product
	if _, err := UpsertByStripeID(s.db, &p, data.ID, defaults); err != nil {
		return nil, err
	}
	return &p, nil
}
