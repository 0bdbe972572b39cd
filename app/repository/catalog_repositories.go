package repository

import (
	"github.com/fkuebler/paymirror/app/models"
	"gorm.io/gorm"
)

// The catalog repositories (coupons, products, SKUs) share the same plain
// browse shape: id search, no filters.

type couponRepository struct {
	db *gorm.DB
}

// NewCouponRepository creates a new coupon repository instance
func NewCouponRepository(db *gorm.DB) CouponRepository {
	return &couponRepository{db: db}
}

func (r *couponRepository) GetByID(id uint) (*models.Coupon, error) {
	var coupon models.Coupon
	if err := r.db.First(&coupon, id).Error; err != nil {
		return nil, err
	}
	return &coupon, nil
}

func (r *couponRepository) List(params ListParams) ([]models.Coupon, int64, error) {
	q := r.db.Model(&models.Coupon{})
	if params.Query != "" {
		q = q.Where("coupons.stripe_id LIKE ?", "%"+params.Query+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var coupons []models.Coupon
	err := q.Order("coupons.id DESC").Offset(params.Offset).Limit(params.Limit).Find(&coupons).Error
	if err != nil {
		return nil, 0, err
	}
	return coupons, total, nil
}

func (r *couponRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Coupon{}).Count(&count).Error
	return count, err
}

type productRepository struct {
	db *gorm.DB
}

// NewProductRepository creates a new product repository instance
func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) GetByID(id uint) (*models.Product, error) {
	var product models.Product
	if err := r.db.Preload("Skus").First(&product, id).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) List(params ListParams) ([]models.Product, int64, error) {
	q := r.db.Model(&models.Product{})
	if params.Query != "" {
		like := "%" + params.Query + "%"
		q = q.Where("products.stripe_id LIKE ? OR products.name LIKE ?", like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var products []models.Product
	err := q.Order("products.name").Offset(params.Offset).Limit(params.Limit).Find(&products).Error
	if err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

func (r *productRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Product{}).Count(&count).Error
	return count, err
}

type skuRepository struct {
	db *gorm.DB
}

// NewSkuRepository creates a new SKU repository instance
func NewSkuRepository(db *gorm.DB) SkuRepository {
	return &skuRepository{db: db}
}

func (r *skuRepository) GetByID(id uint) (*models.Sku, error) {
	var sku models.Sku
	if err := r.db.Preload("Product").First(&sku, id).Error; err != nil {
		return nil, err
	}
	return &sku, nil
}

func (r *skuRepository) List(params ListParams) ([]models.Sku, int64, error) {
	q := r.db.Model(&models.Sku{})
	if params.Query != "" {
		like := "%" + params.Query + "%"
		q = q.Where(
			"skus.stripe_id LIKE ? OR skus.product_id IN (SELECT id FROM products WHERE name LIKE ?)",
			like, like,
		)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var skus []models.Sku
	err := q.
		Preload("Product").
		Order("skus.id DESC").
		Offset(params.Offset).
		Limit(params.Limit).
		Find(&skus).Error
	if err != nil {
		return nil, 0, err
	}
	return skus, total, nil
}

func (r *skuRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Sku{}).Count(&count).Error
	return count, err
}
