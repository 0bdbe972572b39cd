package repository

import (
	"github.com/fkuebler/paymirror/app/models"
	"gorm.io/gorm"
)

// StatusFilter narrows a listing by an indexed status column. Reused by the
// order and subscription listings.
type StatusFilter struct {
	Column   string
	Statuses []string
}

func (StatusFilter) Name() string    { return "status" }
func (f StatusFilter) Label() string { return "status" }

func (f StatusFilter) Lookups() []FilterOption {
	opts := make([]FilterOption, 0, len(f.Statuses))
	for _, s := range f.Statuses {
		opts = append(opts, FilterOption{Value: s, Label: s})
	}
	return opts
}

func (f StatusFilter) Apply(db *gorm.DB, value string) *gorm.DB {
	for _, s := range f.Statuses {
		if s == value {
			return db.Where(f.Column+" = ?", value)
		}
	}
	return db
}

// orderRepository implements the OrderRepository interface
type orderRepository struct {
	db      *gorm.DB
	filters []Filter
}

// NewOrderRepository creates a new order repository instance
func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{
		db: db,
		filters: []Filter{
			StatusFilter{Column: "orders.status", Statuses: []string{
				models.OrderStatusCreated,
				models.OrderStatusPaid,
				models.OrderStatusCanceled,
				models.OrderStatusFulfilled,
				models.OrderStatusReturned,
			}},
		},
	}
}

func (r *orderRepository) GetByID(id uint) (*models.Order, error) {
	var order models.Order
	err := r.db.
		Preload("Customer").
		Preload("Customer.User").
		Preload("Charge").
		First(&order, id).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) GetByStripeID(stripeID string) (*models.Order, error) {
	var order models.Order
	err := r.db.Where("stripe_id = ?", stripeID).First(&order).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) List(params ListParams) ([]models.Order, int64, error) {
	q := r.db.Model(&models.Order{})
	if params.Query != "" {
		like := "%" + params.Query + "%"
		q = q.Where(
			"orders.stripe_id LIKE ? OR orders.customer_id IN (SELECT id FROM customers WHERE stripe_id LIKE ?)",
			like, like,
		)
	}
	q = applyFilters(q, r.filters, params.Filters)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var orders []models.Order
	err := q.
		Preload("Customer").
		Preload("Customer.User").
		Order("orders.id DESC").
		Offset(params.Offset).
		Limit(params.Limit).
		Find(&orders).Error
	if err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

func (r *orderRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Order{}).Count(&count).Error
	return count, err
}

func (r *orderRepository) Filters() []Filter {
	return r.filters
}
