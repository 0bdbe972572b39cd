package repository

import (
	"github.com/fkuebler/paymirror/app/models"
	"gorm.io/gorm"
)

// invoiceRepository implements the InvoiceRepository interface
type invoiceRepository struct {
	db      *gorm.DB
	filters []Filter
}

// NewInvoiceRepository creates a new invoice repository instance
func NewInvoiceRepository(db *gorm.DB) InvoiceRepository {
	return &invoiceRepository{
		db: db,
		filters: []Filter{
			CustomerHasCardFilter{},
			NewCustomerAccountFilter(db, "invoices"),
		},
	}
}

func (r *invoiceRepository) GetByID(id uint) (*models.Invoice, error) {
	var invoice models.Invoice
	err := r.db.
		Preload("Customer").
		Preload("Customer.User").
		First(&invoice, id).Error
	if err != nil {
		return nil, err
	}
	return &invoice, nil
}

func (r *invoiceRepository) List(params ListParams) ([]models.Invoice, int64, error) {
	q := r.db.Model(&models.Invoice{})
	if params.Query != "" {
		like := "%" + params.Query + "%"
		q = q.Where(
			"invoices.stripe_id LIKE ? OR invoices.customer_id IN (SELECT id FROM customers WHERE stripe_id LIKE ?)",
			like, like,
		)
	}
	q = applyFilters(q, r.filters, params.Filters)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var invoices []models.Invoice
	err := q.
		Preload("Customer").
		Preload("Customer.User").
		Order("invoices.id DESC").
		Offset(params.Offset).
		Limit(params.Limit).
		Find(&invoices).Error
	if err != nil {
		return nil, 0, err
	}
	return invoices, total, nil
}

func (r *invoiceRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Invoice{}).Count(&count).Error
	return count, err
}

func (r *invoiceRepository) Filters() []Filter {
	return r.filters
}
