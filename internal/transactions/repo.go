package transactions

import (
	"context"

	"gorm.io/gorm"

	"github.com/printventory/printventory-backend/pkg/db/models"
)

// Row is a transaction joined with its item and site names.
type Row struct {
	models.Transaction
	ItemName     string
	LocationName string
}

const rowSelect = `transactions.*,
COALESCE(inventory_items.name, '') AS item_name,
COALESCE(locations.name, '') AS location_name`

// Repository defines persistence operations for the transactions table.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	List(ctx context.Context) ([]Row, error)
	FindRowByID(ctx context.Context, id int64) (*Row, error)
	Create(ctx context.Context, txn *models.Transaction) (*models.Transaction, error)
	ItemExists(ctx context.Context, itemID int64) (bool, error)
	LocationExists(ctx context.Context, locationID int64) (bool, error)
	DecrementItemQuantity(ctx context.Context, itemID int64, quantity int) error
}

type repository struct {
	db *gorm.DB
}

// NewRepository builds a transactions repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{db: tx}
}

func (r *repository) joined(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("transactions").
		Select(rowSelect).
		Joins("LEFT JOIN inventory_items ON transactions.item_id = inventory_items.id").
		Joins("LEFT JOIN locations ON transactions.location_id = locations.id")
}

func (r *repository) List(ctx context.Context) ([]Row, error) {
	var rows []Row
	err := r.joined(ctx).
		Order("transactions.created_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *repository) FindRowByID(ctx context.Context, id int64) (*Row, error) {
	var row Row
	err := r.joined(ctx).
		Where("transactions.id = ?", id).
		Take(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *repository) Create(ctx context.Context, txn *models.Transaction) (*models.Transaction, error) {
	if err := r.db.WithContext(ctx).Create(txn).Error; err != nil {
		return nil, err
	}
	return txn, nil
}

func (r *repository) ItemExists(ctx context.Context, itemID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.InventoryItem{}).
		Where("id = ?", itemID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *repository) LocationExists(ctx context.Context, locationID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Location{}).
		Where("id = ?", locationID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// DecrementItemQuantity applies a sale's stock movement and recomputes the
// derived status in a single UPDATE. The CASE expression sees the pre-update
// quantity, so it subtracts again rather than referencing the new value.
func (r *repository) DecrementItemQuantity(ctx context.Context, itemID int64, quantity int) error {
	return r.db.WithContext(ctx).
		Model(&models.InventoryItem{}).
		Where("id = ?", itemID).
		Updates(map[string]any{
			"quantity": gorm.Expr("quantity - ?", quantity),
			"status": gorm.Expr(
				"CASE WHEN quantity - ? < min_stock THEN ? ELSE ? END",
				quantity, models.ItemStatusLowStock, models.ItemStatusInStock,
			),
		}).Error
}
