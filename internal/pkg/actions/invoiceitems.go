package actions

import (
	"github.com/rs/zerolog"

	"github.com/fkuebler/paymirror/internal/pkg/stripeapi"
	"github.com/fkuebler/paymirror/internal/pkg/sync"
)

// InvoiceItems creates pending invoice items. The provider folds them into
// the customer's next invoice, which arrives back through invoice sync, so
// there is nothing to mirror at creation time.
type InvoiceItems struct {
	client stripeapi.Client
	log    zerolog.Logger
}

func NewInvoiceItems(syncer *sync.Syncer, log zerolog.Logger) *InvoiceItems {
	return &InvoiceItems{client: syncer.Client(), log: log}
}

func (a *InvoiceItems) Create(params stripeapi.InvoiceItemParams) error {
	if err := validate.Struct(params); err != nil {
		return err
	}
	if err := a.client.CreateInvoiceItem(params); err != nil {
		return err
	}
	a.log.Info().Str("customer", params.Customer).Int64("amount", params.Amount).
		Msg("invoice item created")
	return nil
}
