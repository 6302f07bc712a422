package models

import "time"

// Order is created exactly once per checkout and never updated.
type Order struct {
	ID        uint        `gorm:"primaryKey" json:"id"`
	CustName  string      `gorm:"column:cust_name;size:255" json:"cust_name"`
	CustWA    string      `gorm:"column:cust_wa;size:50" json:"cust_wa"`
	Address   string      `gorm:"type:text" json:"address"`
	Payment   string      `gorm:"size:50" json:"payment"`
	Total     int64       `gorm:"not null" json:"total"`
	CreatedAt time.Time   `gorm:"autoCreateTime" json:"created_at"`
	Items     []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items,omitempty"`
}

// OrderItem carries a name/price snapshot taken at purchase time, so
// deleting or repricing a product never changes historical orders.
// ProductID is a weak reference and may point to a since-deleted product.
type OrderItem struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	OrderID   uint   `gorm:"column:order_id;not null;index" json:"order_id"`
	ProductID uint   `gorm:"column:product_id" json:"product_id"`
	Name      string `gorm:"size:255" json:"name"`
	Price     int64  `gorm:"not null" json:"price"`
	Qty       int    `gorm:"not null" json:"qty"`
	SubTotal  int64  `gorm:"column:sub_total;not null" json:"sub_total"`
}
