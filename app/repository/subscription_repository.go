package repository

import (
	"github.com/fkuebler/paymirror/app/models"
	"gorm.io/gorm"
)

// subscriptionRepository implements the SubscriptionRepository interface
type subscriptionRepository struct {
	db      *gorm.DB
	filters []Filter
}

// NewSubscriptionRepository creates a new subscription repository instance
func NewSubscriptionRepository(db *gorm.DB) SubscriptionRepository {
	return &subscriptionRepository{
		db: db,
		filters: []Filter{
			NewCustomerAccountFilter(db, "subscriptions"),
		},
	}
}

func (r *subscriptionRepository) GetByID(id uint) (*models.Subscription, error) {
	var sub models.Subscription
	err := r.db.
		Preload("Customer").
		Preload("Customer.User").
		Preload("Plan").
		First(&sub, id).Error
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

func (r *subscriptionRepository) List(params ListParams) ([]models.Subscription, int64, error) {
	q := r.db.Model(&models.Subscription{})
	if params.Query != "" {
		like := "%" + params.Query + "%"
		q = q.Where(
			"subscriptions.stripe_id LIKE ? OR subscriptions.customer_id IN (SELECT id FROM customers WHERE stripe_id LIKE ?)",
			like, like,
		)
	}
	q = applyFilters(q, r.filters, params.Filters)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var subs []models.Subscription
	err := q.
		Preload("Customer").
		Preload("Plan").
		Order("subscriptions.id DESC").
		Offset(params.Offset).
		Limit(params.Limit).
		Find(&subs).Error
	if err != nil {
		return nil, 0, err
	}
	return subs, total, nil
}

func (r *subscriptionRepository) Filters() []Filter {
	return r.filters
}

func (r *subscriptionRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Subscription{}).Count(&count).Error
	return count, err
}
