package repository

import (
	"gorm.io/gorm"
)

// FilterOption is one selectable value of an admin filter.
type FilterOption struct {
	Value string
	Label string
}

// Filter translates one admin filter selection into a query restriction.
// Lookups feed the sidebar rendering; Apply narrows the list query. An
// unknown value leaves the query untouched.
type Filter interface {
	Name() string
	Label() string
	Lookups() []FilterOption
	Apply(db *gorm.DB, value string) *gorm.DB
}

// HasCardFilter narrows customers by whether a usable payment card is on
// file. A card counts only with a non-empty fingerprint; placeholder rows
// without one do not make a customer chargeable.
type HasCardFilter struct{}

func (HasCardFilter) Name() string  { return "has_card" }
func (HasCardFilter) Label() string { return "has payment card" }

func (HasCardFilter) Lookups() []FilterOption {
	return []FilterOption{
		{Value: "yes", Label: "Yes"},
		{Value: "no", Label: "No"},
	}
}

func (HasCardFilter) Apply(db *gorm.DB, value string) *gorm.DB {
	sub := "SELECT 1 FROM cards WHERE cards.customer_id = customers.id AND cards.fingerprint <> ''"
	switch value {
	case "yes":
		return db.Where("EXISTS (" + sub + ")")
	case "no":
		return db.Where("NOT EXISTS (" + sub + ")")
	}
	return db
}

// SubscriptionStatusFilter narrows customers by the status of any of their
// subscriptions. The extra "none" value selects customers with no
// subscription at all.
type SubscriptionStatusFilter struct {
	Statuses []string
}

func (SubscriptionStatusFilter) Name() string  { return "sub_status" }
func (SubscriptionStatusFilter) Label() string { return "subscription status" }

func (f SubscriptionStatusFilter) Lookups() []FilterOption {
	opts := make([]FilterOption, 0, len(f.Statuses)+1)
	for _, s := range f.Statuses {
		opts = append(opts, FilterOption{Value: s, Label: s})
	}
	opts = append(opts, FilterOption{Value: "none", Label: "none"})
	return opts
}

func (f SubscriptionStatusFilter) Apply(db *gorm.DB, value string) *gorm.DB {
	if value == "none" {
		return db.Where("NOT EXISTS (SELECT 1 FROM subscriptions WHERE subscriptions.customer_id = customers.id)")
	}
	for _, s := range f.Statuses {
		if s == value {
			return db.Where(
				"EXISTS (SELECT 1 FROM subscriptions WHERE subscriptions.customer_id = customers.id AND subscriptions.status = ?)",
				value,
			)
		}
	}
	return db
}

// CustomerHasCardFilter narrows invoices by whether the billed customer has a
// usable card on file.
type CustomerHasCardFilter struct{}

func (CustomerHasCardFilter) Name() string  { return "has_card" }
func (CustomerHasCardFilter) Label() string { return "customer has payment card" }

func (CustomerHasCardFilter) Lookups() []FilterOption {
	return []FilterOption{
		{Value: "yes", Label: "Yes"},
		{Value: "no", Label: "No"},
	}
}

func (CustomerHasCardFilter) Apply(db *gorm.DB, value string) *gorm.DB {
	sub := "SELECT 1 FROM cards WHERE cards.customer_id = invoices.customer_id AND cards.fingerprint <> ''"
	switch value {
	case "yes":
		return db.Where("EXISTS (" + sub + ")")
	case "no":
		return db.Where("NOT EXISTS (" + sub + ")")
	}
	return db
}

// AccountFilter narrows customers by the connected account they belong to.
// "none" selects customers not attached to any account.
type AccountFilter struct {
	db *gorm.DB
}

func NewAccountFilter(db *gorm.DB) AccountFilter {
	return AccountFilter{db: db}
}

func (AccountFilter) Name() string  { return "stripe_account" }
func (AccountFilter) Label() string { return "stripe account" }

func (f AccountFilter) Lookups() []FilterOption {
	var accounts []struct {
		StripeID    string
		DisplayName string
	}
	f.db.Table("accounts").Select("stripe_id, display_name").Order("stripe_id").Scan(&accounts)

	opts := make([]FilterOption, 0, len(accounts)+1)
	for _, a := range accounts {
		label := a.DisplayName
		if label == "" {
			label = a.StripeID
		}
		opts = append(opts, FilterOption{Value: a.StripeID, Label: label})
	}
	opts = append(opts, FilterOption{Value: "none", Label: "none"})
	return opts
}

func (f AccountFilter) Apply(db *gorm.DB, value string) *gorm.DB {
	if value == "none" {
		return db.Where("customers.account_id IS NULL")
	}
	return db.Where(
		"customers.account_id IN (SELECT id FROM accounts WHERE accounts.stripe_id = ?)",
		value,
	)
}

// CustomerAccountFilter narrows a billing listing by the connected account of
// the row's customer. Table names the filtered table; its rows must carry a
// customer_id column.
type CustomerAccountFilter struct {
	db    *gorm.DB
	table string
}

func NewCustomerAccountFilter(db *gorm.DB, table string) CustomerAccountFilter {
	return CustomerAccountFilter{db: db, table: table}
}

func (CustomerAccountFilter) Name() string  { return "stripe_account" }
func (CustomerAccountFilter) Label() string { return "stripe account" }

func (f CustomerAccountFilter) Lookups() []FilterOption {
	return AccountFilter{db: f.db}.Lookups()
}

func (f CustomerAccountFilter) Apply(db *gorm.DB, value string) *gorm.DB {
	if value == "none" {
		return db.Where(f.table + ".customer_id IN (SELECT id FROM customers WHERE account_id IS NULL)")
	}
	return db.Where(
		f.table+".customer_id IN (SELECT id FROM customers WHERE account_id IN (SELECT id FROM accounts WHERE stripe_id = ?))",
		value,
	)
}

// TransferAccountFilter narrows transfers by destination account. Transfers
// reference the account by its provider id directly; "none" selects payouts
// without a destination on record.
type TransferAccountFilter struct {
	db *gorm.DB
}

func NewTransferAccountFilter(db *gorm.DB) TransferAccountFilter {
	return TransferAccountFilter{db: db}
}

func (TransferAccountFilter) Name() string  { return "stripe_account" }
func (TransferAccountFilter) Label() string { return "stripe account" }

func (f TransferAccountFilter) Lookups() []FilterOption {
	return AccountFilter{db: f.db}.Lookups()
}

func (f TransferAccountFilter) Apply(db *gorm.DB, value string) *gorm.DB {
	if value == "none" {
		return db.Where("transfers.destination = ''")
	}
	return db.Where("transfers.destination = ?", value)
}

// applyFilters runs every selected filter over the query.
func applyFilters(db *gorm.DB, filters []Filter, selected map[string]string) *gorm.DB {
	for _, f := range filters {
		if value, ok := selected[f.Name()]; ok && value != "" {
			db = f.Apply(db, value)
		}
	}
	return db
}
