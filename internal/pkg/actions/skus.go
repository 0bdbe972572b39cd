package actions

import (
	"github.com/rs/zerolog"

	"github.com/fkuebler/paymirror/app/models"
	"github.com/fkuebler/paymirror/internal/pkg/stripeapi"
	"github.com/fkuebler/paymirror/internal/pkg/sync"
)

// Skus wraps the provider's SKU operations.
type Skus struct {
	syncer *sync.Syncer
	client stripeapi.Client
	log    zerolog.Logger
}

func NewSkus(syncer *sync.Syncer, log zerolog.Logger) *Skus {
	return &Skus{syncer: syncer, client: syncer.Client(), log: log}
}

// Create registers a SKU remotely, then mirrors it. The parent product must
// already be mirrored locally.
func (a *Skus) Create(params stripeapi.SkuCreateParams) (*models.Sku, error) {
	if err := validate.Struct(params); err != nil {
		return nil, err
	}
	data, err := a.client.CreateSku(params)
	if err != nil {
		return nil, err
	}
	return a.syncer.SyncSkuFromData(data)
}

// Update sends the provided fields remotely, then re-syncs.
func (a *Skus) Update(sku *models.Sku, params stripeapi.SkuUpdateParams) (*models.Sku, error) {
	data, err := a.client.UpdateSku(sku.StripeID, params)
	if err != nil {
		return nil, err
	}
	return a.syncer.SyncSkuFromData(data)
}

// SyncAll mirrors products and their SKUs.
func (a *Skus) SyncAll() error {
	return a.syncer.SyncProducts()
}
