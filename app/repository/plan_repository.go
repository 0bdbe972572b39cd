package repository

import (
	"github.com/fkuebler/paymirror/app/models"
	"gorm.io/gorm"
)

// planRepository implements the PlanRepository interface. Plans are a small
// read-only catalog; no filters, name and id search only.
type planRepository struct {
	db *gorm.DB
}

// NewPlanRepository creates a new plan repository instance
func NewPlanRepository(db *gorm.DB) PlanRepository {
	return &planRepository{db: db}
}

func (r *planRepository) GetByID(id uint) (*models.Plan, error) {
	var plan models.Plan
	if err := r.db.First(&plan, id).Error; err != nil {
		return nil, err
	}
	return &plan, nil
}

func (r *planRepository) List(params ListParams) ([]models.Plan, int64, error) {
	q := r.db.Model(&models.Plan{})
	if params.Query != "" {
		like := "%" + params.Query + "%"
		q = q.Where("plans.stripe_id LIKE ? OR plans.name LIKE ?", like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var plans []models.Plan
	err := q.Order("plans.name").Offset(params.Offset).Limit(params.Limit).Find(&plans).Error
	if err != nil {
		return nil, 0, err
	}
	return plans, total, nil
}

func (r *planRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Plan{}).Count(&count).Error
	return count, err
}
