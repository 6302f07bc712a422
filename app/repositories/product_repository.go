package repositories

import (
	"time"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/tokoku/app/models"
	"github.com/shashiranjanraj/tokoku/pkg/cache"
	"github.com/shashiranjanraj/tokoku/pkg/metrics"
)

const (
	productListCacheKey = "tokoku:products:all"
	productListCacheTTL = time.Minute
)

// ProductRepository handles database access for the catalog.
type ProductRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// All returns every product newest-first. The storefront home page hits
// this on every request, so the result is cached briefly in Redis; writes
// invalidate it.
func (r *ProductRepository) All() ([]models.Product, error) {
	var products []models.Product
	if cache.Get(productListCacheKey, &products) {
		return products, nil
	}

	defer metrics.ObserveDBQuery("product_list", time.Now())
	if err := r.db.Order("id DESC").Find(&products).Error; err != nil {
		return nil, err
	}

	_ = cache.Set(productListCacheKey, products, productListCacheTTL)
	return products, nil
}

// FindByID looks a product up by primary key.
func (r *ProductRepository) FindByID(id uint) (models.Product, error) {
	var p models.Product
	err := r.db.First(&p, id).Error
	return p, err
}

// FindByIDs bulk-resolves product ids in one query. Ids with no matching
// row are simply absent from the result; the caller decides what a stale
// id means.
func (r *ProductRepository) FindByIDs(ids []uint) ([]models.Product, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	defer metrics.ObserveDBQuery("product_bulk_find", time.Now())
	var products []models.Product
	err := r.db.Where("id IN ?", ids).Find(&products).Error
	return products, err
}

// Create persists a new product and invalidates the list cache.
func (r *ProductRepository) Create(p *models.Product) error {
	if err := r.db.Create(p).Error; err != nil {
		return err
	}
	_ = cache.Del(productListCacheKey)
	return nil
}

// Update persists changes to an existing product.
func (r *ProductRepository) Update(p *models.Product) error {
	if err := r.db.Save(p).Error; err != nil {
		return err
	}
	_ = cache.Del(productListCacheKey)
	return nil
}

// Delete hard-deletes a product. Historical order items keep their
// name/price snapshot, so the delete never touches past orders.
func (r *ProductRepository) Delete(id uint) error {
	if err := r.db.Delete(&models.Product{}, id).Error; err != nil {
		return err
	}
	_ = cache.Del(productListCacheKey)
	return nil
}
