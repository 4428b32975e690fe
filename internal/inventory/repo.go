package inventory

import (
	"context"

	"gorm.io/gorm"

	"github.com/printventory/printventory-backend/pkg/db/models"
)

// ItemRow is a stock record joined with the names of its references.
type ItemRow struct {
	models.InventoryItem
	CategoryName string
	LocationName string
	PrinterName  *string
	TotalPrice   float64
}

const itemSelect = `inventory_items.*,
COALESCE(categories.name, '') AS category_name,
COALESCE(locations.name, '') AS location_name,
printers.model AS printer_name,
(inventory_items.quantity * inventory_items.price) AS total_price`

// Repository defines persistence operations for the inventory ledger.
type Repository interface {
	List(ctx context.Context) ([]ItemRow, error)
	FindRowByID(ctx context.Context, id int64) (*ItemRow, error)
	Create(ctx context.Context, item *models.InventoryItem) (*models.InventoryItem, error)
	Update(ctx context.Context, id int64, updates map[string]any) (int64, error)
	Delete(ctx context.Context, id int64) error
}

type repository struct {
	db *gorm.DB
}

// NewRepository builds an inventory repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) joined(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("inventory_items").
		Select(itemSelect).
		Joins("LEFT JOIN categories ON inventory_items.category_id = categories.id").
		Joins("LEFT JOIN locations ON inventory_items.location_id = locations.id").
		Joins("LEFT JOIN printers ON inventory_items.printer_id = printers.id")
}

func (r *repository) List(ctx context.Context) ([]ItemRow, error) {
	var rows []ItemRow
	err := r.joined(ctx).
		Order("inventory_items.created_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *repository) FindRowByID(ctx context.Context, id int64) (*ItemRow, error) {
	var row ItemRow
	err := r.joined(ctx).
		Where("inventory_items.id = ?", id).
		Take(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *repository) Create(ctx context.Context, item *models.InventoryItem) (*models.InventoryItem, error) {
	if err := r.db.WithContext(ctx).Create(item).Error; err != nil {
		return nil, err
	}
	return item, nil
}

func (r *repository) Update(ctx context.Context, id int64, updates map[string]any) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&models.InventoryItem{}).
		Where("id = ?", id).
		Updates(updates)
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.InventoryItem{}).Error
}
