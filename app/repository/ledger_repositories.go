package repository

import (
	"github.com/fkuebler/paymirror/app/models"
	"gorm.io/gorm"
)

// Transfers, connected accounts and webhook events are append-mostly ledgers
// with the same plain browse shape.

type transferRepository struct {
	db      *gorm.DB
	filters []Filter
}

// NewTransferRepository creates a new transfer repository instance
func NewTransferRepository(db *gorm.DB) TransferRepository {
	return &transferRepository{
		db: db,
		filters: []Filter{
			NewTransferAccountFilter(db),
		},
	}
}

func (r *transferRepository) GetByID(id uint) (*models.Transfer, error) {
	var transfer models.Transfer
	if err := r.db.First(&transfer, id).Error; err != nil {
		return nil, err
	}
	return &transfer, nil
}

func (r *transferRepository) List(params ListParams) ([]models.Transfer, int64, error) {
	q := r.db.Model(&models.Transfer{})
	if params.Query != "" {
		like := "%" + params.Query + "%"
		q = q.Where("transfers.stripe_id LIKE ? OR transfers.destination LIKE ?", like, like)
	}
	q = applyFilters(q, r.filters, params.Filters)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var transfers []models.Transfer
	err := q.Order("transfers.id DESC").Offset(params.Offset).Limit(params.Limit).Find(&transfers).Error
	if err != nil {
		return nil, 0, err
	}
	return transfers, total, nil
}

func (r *transferRepository) Filters() []Filter {
	return r.filters
}

func (r *transferRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Transfer{}).Count(&count).Error
	return count, err
}

type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository creates a new account repository instance
func NewAccountRepository(db *gorm.DB) AccountRepository {
	return &accountRepository{db: db}
}

func (r *accountRepository) GetByID(id uint) (*models.Account, error) {
	var account models.Account
	if err := r.db.First(&account, id).Error; err != nil {
		return nil, err
	}
	return &account, nil
}

func (r *accountRepository) List(params ListParams) ([]models.Account, int64, error) {
	q := r.db.Model(&models.Account{})
	if params.Query != "" {
		like := "%" + params.Query + "%"
		q = q.Where("accounts.stripe_id LIKE ? OR accounts.display_name LIKE ?", like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var accounts []models.Account
	err := q.Order("accounts.stripe_id").Offset(params.Offset).Limit(params.Limit).Find(&accounts).Error
	if err != nil {
		return nil, 0, err
	}
	return accounts, total, nil
}

func (r *accountRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Account{}).Count(&count).Error
	return count, err
}

type eventRepository struct {
	db *gorm.DB
}

// NewEventRepository creates a new event repository instance
func NewEventRepository(db *gorm.DB) EventRepository {
	return &eventRepository{db: db}
}

func (r *eventRepository) GetByID(id uint) (*models.Event, error) {
	var event models.Event
	if err := r.db.First(&event, id).Error; err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *eventRepository) List(params ListParams) ([]models.Event, int64, error) {
	q := r.db.Model(&models.Event{})
	if params.Query != "" {
		like := "%" + params.Query + "%"
		q = q.Where("events.stripe_id LIKE ? OR events.kind LIKE ?", like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var events []models.Event
	err := q.Order("events.id DESC").Offset(params.Offset).Limit(params.Limit).Find(&events).Error
	if err != nil {
		return nil, 0, err
	}
	return events, total, nil
}

func (r *eventRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Event{}).Count(&count).Error
	return count, err
}
