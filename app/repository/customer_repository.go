package repository

import (
	"github.com/fkuebler/paymirror/app/models"
	"gorm.io/gorm"
)

// customerRepository implements the CustomerRepository interface
type customerRepository struct {
	db      *gorm.DB
	filters []Filter
}

// NewCustomerRepository creates a new customer repository instance
func NewCustomerRepository(db *gorm.DB) CustomerRepository {
	return &customerRepository{
		db: db,
		filters: []Filter{
			HasCardFilter{},
			SubscriptionStatusFilter{Statuses: []string{
				models.SubscriptionStatusActive,
				models.SubscriptionStatusTrialing,
				models.SubscriptionStatusPastDue,
				models.SubscriptionStatusCanceled,
				models.SubscriptionStatusUnpaid,
			}},
			NewAccountFilter(db),
		},
	}
}

func (r *customerRepository) GetByID(id uint) (*models.Customer, error) {
	var customer models.Customer
	err := r.db.
		Preload("User").
		Preload("Account").
		Preload("Cards").
		Preload("Subscriptions").
		Preload("Subscriptions.Plan").
		First(&customer, id).Error
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

func (r *customerRepository) GetByStripeID(stripeID string) (*models.Customer, error) {
	return models.GetCustomerByStripeID(r.db, stripeID)
}

// List returns one page of customers plus the total matching count. Cards,
// subscriptions and the linked user are preloaded so list rendering stays at
// a fixed number of queries no matter how many rows the page shows.
func (r *customerRepository) List(params ListParams) ([]models.Customer, int64, error) {
	q := r.db.Model(&models.Customer{})
	if params.Query != "" {
		like := "%" + params.Query + "%"
		q = q.Where(
			"customers.stripe_id LIKE ? OR customers.user_id IN (SELECT id FROM users WHERE email LIKE ? OR name LIKE ?)",
			like, like, like,
		)
	}
	q = applyFilters(q, r.filters, params.Filters)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var customers []models.Customer
	err := q.
		Preload("User").
		Preload("Cards").
		Preload("Subscriptions").
		Order("customers.id DESC").
		Offset(params.Offset).
		Limit(params.Limit).
		Find(&customers).Error
	if err != nil {
		return nil, 0, err
	}
	return customers, total, nil
}

func (r *customerRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Customer{}).Count(&count).Error
	return count, err
}

func (r *customerRepository) Filters() []Filter {
	return r.filters
}
