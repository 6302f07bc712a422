package repositories

import (
	"time"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/tokoku/app/models"
	"github.com/shashiranjanraj/tokoku/pkg/metrics"
)

// OrderRepository handles database access for orders and their items.
type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// CreateWithItems persists an order and its line items as one transaction.
// Either everything lands or nothing does; a failure after the order row
// was written rolls the row back, so readers never see a half-written
// order.
func (r *OrderRepository) CreateWithItems(order *models.Order, items []models.OrderItem) error {
	defer metrics.ObserveDBQuery("order_create", time.Now())

	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].OrderID = order.ID
			if err := tx.Create(&items[i]).Error; err != nil {
				return err
			}
		}
		order.Items = items
		return nil
	})
}

// AllNewestFirst returns every order, newest first, without items.
func (r *OrderRepository) AllNewestFirst() ([]models.Order, error) {
	defer metrics.ObserveDBQuery("order_list", time.Now())

	var orders []models.Order
	err := r.db.Order("id DESC").Find(&orders).Error
	return orders, err
}

// FindWithItems returns one order with its items, or
// gorm.ErrRecordNotFound.
func (r *OrderRepository) FindWithItems(id uint) (models.Order, error) {
	var order models.Order
	err := r.db.Preload("Items").First(&order, id).Error
	return order, err
}
