package stripeapi

import (
	stripe "github.com/stripe/stripe-go/v72"
)

func decodeOrder(o *stripe.Order) *OrderData {
	d := &OrderData{
		ID:       o.ID,
		Amount:   o.Amount,
		Currency: string(o.Currency),
		Email:    o.Email,
		Livemode: o.Livemode,
		Metadata: o.Metadata,
		Status:   string(o.Status),
		Created:  o.Created,
	}
	if o.StatusTransitions != (stripe.StatusTransitions{}) {
		d.StatusTransitions = StatusTransitionsData{
			Canceled:  o.StatusTransitions.Canceled,
			Fulfilled: o.StatusTransitions.Fulfilled,
			Paid:      o.StatusTransitions.Paid,
			Returned:  o.StatusTransitions.Returned,
		}
	}
	if o.AmountReturned != 0 {
		v := o.AmountReturned
		d.AmountReturned = &v
	}
	if o.Charge != nil {
		d.Charge = o.Charge.ID
	}
	if o.Customer.ID != "" {
		d.Customer = o.Customer.ID
	}
	if o.SelectedShippingMethod != nil {
		d.SelectedShippingMethod = *o.SelectedShippingMethod
	}
	if o.Shipping != nil {
		d.Shipping = &ShippingData{
			Name:           o.Shipping.Name,
			Phone:          o.Shipping.Phone,
			Carrier:        o.Shipping.Carrier,
			TrackingNumber: o.Shipping.TrackingNumber,
		}
		if o.Shipping.Address != nil {
			d.Shipping.Address = decodeAddress(o.Shipping.Address)
		}
	}
	for _, m := range o.ShippingMethods {
		d.ShippingMethods = append(d.ShippingMethods, ShippingMethodData{
			ID:          m.ID,
			Description: m.Description,
			Amount:      m.Amount,
			Currency:    string(m.Currency),
		})
	}
	for _, item := range o.Items {
		it := OrderItemData{
			Amount:      item.Amount,
			Currency:    string(item.Currency),
			Description: item.Description,
			Quantity:    item.Quantity,
			Type:        string(item.Type),
		}
		if item.Parent != nil {
			it.Parent = item.Parent.ID
		}
		d.Items = append(d.Items, it)
	}
	return d
}

func decodeAddress(a *stripe.Address) AddressData {
	return AddressData{
		Line1:      a.Line1,
		Line2:      a.Line2,
		City:       a.City,
		State:      a.State,
		PostalCode: a.PostalCode,
		Country:    a.Country,
	}
}

func decodeCharge(c *stripe.Charge) *ChargeData {
	d := &ChargeData{
		ID:             c.ID,
		Amount:         c.Amount,
		AmountRefunded: c.AmountRefunded,
		Currency:       string(c.Currency),
		Description:    c.Description,
		Paid:           c.Paid,
		Refunded:       c.Refunded,
		Captured:       c.Captured,
		Disputed:       c.Disputed,
		Livemode:       c.Livemode,
		Created:        c.Created,
	}
	if c.Customer != nil {
		d.Customer = c.Customer.ID
	}
	if c.Invoice != nil {
		d.Invoice = c.Invoice.ID
	}
	return d
}

func decodeCustomer(c *stripe.Customer) *CustomerData {
	d := &CustomerData{
		ID:         c.ID,
		Currency:   string(c.Currency),
		Balance:    c.Balance,
		Delinquent: c.Delinquent,
		Email:      c.Email,
		Livemode:   c.Livemode,
	}
	if c.DefaultSource != nil {
		d.DefaultSource = c.DefaultSource.ID
	}
	if c.Sources != nil {
		for _, src := range c.Sources.Data {
			if src.Card == nil {
				continue
			}
			d.Cards = append(d.Cards, decodeCard(c.ID, src.Card))
		}
	}
	if c.Subscriptions != nil {
		for _, sub := range c.Subscriptions.Data {
			d.Subscriptions = append(d.Subscriptions, *decodeSubscription(sub))
		}
	}
	if c.Discount != nil {
		d.Discount = decodeDiscount(c.Discount)
	}
	return d
}

func decodeDiscount(dc *stripe.Discount) *DiscountData {
	d := &DiscountData{
		Customer: dc.Customer,
		Start:    dc.Start,
		End:      dc.End,
	}
	if dc.Coupon != nil {
		d.Coupon = decodeCoupon(dc.Coupon)
	}
	return d
}

func decodeSubscription(s *stripe.Subscription) *SubscriptionData {
	d := &SubscriptionData{
		ID:                 s.ID,
		Status:             string(s.Status),
		Quantity:           s.Quantity,
		Start:              s.StartDate,
		CurrentPeriodStart: s.CurrentPeriodStart,
		CurrentPeriodEnd:   s.CurrentPeriodEnd,
		TrialStart:         s.TrialStart,
		TrialEnd:           s.TrialEnd,
		CanceledAt:         s.CanceledAt,
		EndedAt:            s.EndedAt,
		CancelAtPeriodEnd:  s.CancelAtPeriodEnd,
	}
	if s.Customer != nil {
		d.Customer = s.Customer.ID
	}
	if s.Plan != nil {
		d.Plan = decodePlan(s.Plan)
	}
	return d
}

func decodeSubscriptionItem(si *stripe.SubscriptionItem) *SubscriptionItemData {
	d := &SubscriptionItemData{
		ID:           si.ID,
		Subscription: si.Subscription,
		Quantity:     si.Quantity,
		Metadata:     si.Metadata,
		Created:      si.Created,
	}
	if si.Plan != nil {
		d.Plan = decodePlan(si.Plan)
	}
	return d
}

// decodeInvoice derives Closed from the status; the provider dropped the raw
// closed flag in this API generation.
func decodeInvoice(in *stripe.Invoice) *InvoiceData {
	d := &InvoiceData{
		ID:           in.ID,
		AmountDue:    in.AmountDue,
		Subtotal:     in.Subtotal,
		Total:        in.Total,
		Currency:     string(in.Currency),
		Paid:         in.Paid,
		Attempted:    in.Attempted,
		AttemptCount: in.AttemptCount,
		Date:         in.Created,
		PeriodStart:  in.PeriodStart,
		PeriodEnd:    in.PeriodEnd,
	}
	switch in.Status {
	case stripe.InvoiceStatusPaid, stripe.InvoiceStatusVoid, stripe.InvoiceStatusUncollectible:
		d.Closed = true
	}
	if in.Tax != 0 {
		v := in.Tax
		d.Tax = &v
	}
	if in.Customer != nil {
		d.Customer = in.Customer.ID
	}
	if in.Charge != nil {
		d.Charge = in.Charge.ID
	}
	if in.Subscription != nil {
		d.Subscription = in.Subscription.ID
	}
	return d
}

func decodeTransfer(t *stripe.Transfer) *TransferData {
	d := &TransferData{
		ID:             t.ID,
		Amount:         t.Amount,
		AmountReversed: t.AmountReversed,
		Currency:       string(t.Currency),
		Created:        t.Created,
		Description:    t.Description,
		Livemode:       t.Livemode,
	}
	if t.Destination != nil {
		d.Destination = t.Destination.ID
	}
	return d
}

func decodeCard(customerID string, c *stripe.Card) CardData {
	return CardData{
		ID:          c.ID,
		Customer:    customerID,
		Fingerprint: c.Fingerprint,
		Brand:       string(c.Brand),
		Last4:       c.Last4,
		ExpMonth:    int(c.ExpMonth),
		ExpYear:     int(c.ExpYear),
	}
}

func decodePlan(p *stripe.Plan) *PlanData {
	return &PlanData{
		ID:              p.ID,
		Amount:          p.Amount,
		Currency:        string(p.Currency),
		Interval:        string(p.Interval),
		IntervalCount:   p.IntervalCount,
		Name:            p.Nickname,
		TrialPeriodDays: p.TrialPeriodDays,
	}
}

func decodeCoupon(c *stripe.Coupon) *CouponData {
	d := &CouponData{
		ID:            c.ID,
		Currency:      string(c.Currency),
		Duration:      string(c.Duration),
		Metadata:      c.Metadata,
		RedeemBy:      c.RedeemBy,
		TimesRedeemed: c.TimesRedeemed,
		Valid:         c.Valid,
		Livemode:      c.Livemode,
	}
	if c.AmountOff != 0 {
		v := c.AmountOff
		d.AmountOff = &v
	}
	if c.DurationInMonths != 0 {
		v := c.DurationInMonths
		d.DurationInMonths = &v
	}
	if c.MaxRedemptions != 0 {
		v := c.MaxRedemptions
		d.MaxRedemptions = &v
	}
	if c.PercentOff != 0 {
		v := c.PercentOff
		d.PercentOff = &v
	}
	return d
}

func decodeProduct(p *stripe.Product) *ProductData {
	return &ProductData{
		ID:          p.ID,
		Name:        p.Name,
		Caption:     p.Caption,
		Description: p.Description,
		Active:      p.Active,
		Shippable:   p.Shippable,
		Livemode:    p.Livemode,
	}
}

func decodeSku(s *stripe.SKU) *SkuData {
	d := &SkuData{
		ID:         s.ID,
		Price:      s.Price,
		Currency:   string(s.Currency),
		Active:     s.Active,
		Image:      s.Image,
		Attributes: s.Attributes,
		Livemode:   s.Livemode,
		Updated:    s.Updated,
	}
	if s.Product != nil {
		d.Product = s.Product.ID
	}
	if s.Inventory != nil {
		d.Inventory = &InventoryData{
			Quantity: s.Inventory.Quantity,
			Type:     string(s.Inventory.Type),
			Value:    string(s.Inventory.Value),
		}
	}
	if s.PackageDimensions != nil {
		d.PackageDimensions = &PackageDimensionsData{
			Height: s.PackageDimensions.Height,
			Length: s.PackageDimensions.Length,
			Weight: s.PackageDimensions.Weight,
			Width:  s.PackageDimensions.Width,
		}
	}
	return d
}

func decodeAccount(a *stripe.Account) *AccountData {
	d := &AccountData{
		ID:             a.ID,
		Type:           string(a.Type),
		Country:        a.Country,
		Email:          a.Email,
		ChargesEnabled: a.ChargesEnabled,
		PayoutsEnabled: a.PayoutsEnabled,
	}
	if a.Settings != nil && a.Settings.Dashboard != nil {
		d.DisplayName = a.Settings.Dashboard.DisplayName
	}
	return d
}
