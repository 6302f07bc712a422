package models

import "time"

// Product is a catalog row. Price is in the smallest currency unit (Rupiah
// has no subunit in practice, so price is whole Rupiah). Stock is
// informational only; checkout never decrements it.
type Product struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Price     int64     `gorm:"not null;default:0" json:"price"`
	Image     string    `gorm:"size:255" json:"image"`
	Stock     int       `gorm:"not null;default:0" json:"stock"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}
