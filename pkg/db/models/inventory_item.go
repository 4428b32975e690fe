package models

import "time"

// Item status labels derived from quantity vs. min_stock.
const (
	ItemStatusInStock  = "In Stock"
	ItemStatusLowStock = "Low Stock"
)

// DeriveItemStatus computes the status label for a quantity/threshold pair.
// Every write path that touches quantity or min_stock must persist this value
// so the stored status never disagrees with the stored quantity.
func DeriveItemStatus(quantity, minStock int) string {
	if quantity < minStock {
		return ItemStatusLowStock
	}
	return ItemStatusInStock
}

// InventoryItem is a stocked supply tracked per location.
type InventoryItem struct {
	ID         int64     `gorm:"column:id;primaryKey;autoIncrement"`
	Name       string    `gorm:"column:name;not null"`
	SKU        string    `gorm:"column:sku;not null;uniqueIndex"`
	CategoryID int64     `gorm:"column:category_id"`
	Quantity   int       `gorm:"column:quantity;not null"`
	MinStock   int       `gorm:"column:min_stock;not null"`
	Price      float64   `gorm:"column:price;not null"`
	LocationID int64     `gorm:"column:location_id;not null"`
	PrinterID  *int64    `gorm:"column:printer_id"`
	Status     string    `gorm:"column:status;not null;default:In Stock"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime"`
}
