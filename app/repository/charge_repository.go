package repository

import (
	"github.com/fkuebler/paymirror/app/models"
	"gorm.io/gorm"
)

// chargeRepository implements the ChargeRepository interface
type chargeRepository struct {
	db      *gorm.DB
	filters []Filter
}

// NewChargeRepository creates a new charge repository instance
func NewChargeRepository(db *gorm.DB) ChargeRepository {
	return &chargeRepository{
		db: db,
		filters: []Filter{
			NewCustomerAccountFilter(db, "charges"),
		},
	}
}

func (r *chargeRepository) GetByID(id uint) (*models.Charge, error) {
	var charge models.Charge
	err := r.db.Preload("Customer").Preload("Customer.User").First(&charge, id).Error
	if err != nil {
		return nil, err
	}
	return &charge, nil
}

func (r *chargeRepository) List(params ListParams) ([]models.Charge, int64, error) {
	q := r.db.Model(&models.Charge{})
	if params.Query != "" {
		like := "%" + params.Query + "%"
		q = q.Where(
			"charges.stripe_id LIKE ? OR charges.customer_id IN (SELECT id FROM customers WHERE stripe_id LIKE ?)",
			like, like,
		)
	}
	q = applyFilters(q, r.filters, params.Filters)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var charges []models.Charge
	err := q.
		Preload("Customer").
		Order("charges.id DESC").
		Offset(params.Offset).
		Limit(params.Limit).
		Find(&charges).Error
	if err != nil {
		return nil, 0, err
	}
	return charges, total, nil
}

func (r *chargeRepository) Filters() []Filter {
	return r.filters
}

func (r *chargeRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Charge{}).Count(&count).Error
	return count, err
}
