package reports

import (
	"context"

	"gorm.io/gorm"

	"github.com/printventory/printventory-backend/pkg/db/models"
)

// Totals carries the transaction sums split by payment status.
type Totals struct {
	Spent   float64
	Pending float64
	Paid    float64
}

// LowStockRow is an inventory row joined with reference names plus its valuation.
type LowStockRow struct {
	models.InventoryItem
	CategoryName string
	LocationName string
	TotalValue   float64
}

// Repository defines the read-only aggregation queries.
type Repository interface {
	CountItems(ctx context.Context) (int64, error)
	CountLowStock(ctx context.Context) (int64, error)
	CountLocations(ctx context.Context) (int64, error)
	CountPrinters(ctx context.Context) (int64, error)
	TransactionTotals(ctx context.Context) (*Totals, error)
	InventoryTrend(ctx context.Context, months int) ([]TrendPoint, error)
	CategoryDistribution(ctx context.Context) ([]CategoryCount, error)
	FinancialByLocation(ctx context.Context) ([]LocationFinancial, error)
	LowStockRows(ctx context.Context) ([]LowStockRow, error)
	ValueByCategory(ctx context.Context) ([]CategoryValue, error)
	ValueByLocation(ctx context.Context) ([]LocationValue, error)
}

type repository struct {
	db *gorm.DB
}

// NewRepository builds a reports repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CountItems(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.InventoryItem{}).Count(&count).Error
	return count, err
}

func (r *repository) CountLowStock(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.InventoryItem{}).
		Where("quantity < min_stock").
		Count(&count).Error
	return count, err
}

func (r *repository) CountLocations(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Location{}).Count(&count).Error
	return count, err
}

func (r *repository) CountPrinters(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Printer{}).Count(&count).Error
	return count, err
}

func (r *repository) TransactionTotals(ctx context.Context) (*Totals, error) {
	var totals Totals
	err := r.db.WithContext(ctx).
		Model(&models.Transaction{}).
		Select(`COALESCE(SUM(total_amount), 0) AS spent,
COALESCE(SUM(CASE WHEN payment_status = ? THEN total_amount ELSE 0 END), 0) AS pending,
COALESCE(SUM(CASE WHEN payment_status = ? THEN total_amount ELSE 0 END), 0) AS paid`,
			models.PaymentStatusPending, models.PaymentStatusPaid).
		Scan(&totals).Error
	if err != nil {
		return nil, err
	}
	return &totals, nil
}

func (r *repository) InventoryTrend(ctx context.Context, months int) ([]TrendPoint, error) {
	var points []TrendPoint
	err := r.db.WithContext(ctx).
		Model(&models.InventoryItem{}).
		Select(`strftime('%Y-%m', created_at) AS month,
COALESCE(SUM(quantity), 0) AS inventory,
COUNT(*) AS items`).
		Group("strftime('%Y-%m', created_at)").
		Order("month DESC").
		Limit(months).
		Scan(&points).Error
	if err != nil {
		return nil, err
	}
	return points, nil
}

func (r *repository) CategoryDistribution(ctx context.Context) ([]CategoryCount, error) {
	var counts []CategoryCount
	err := r.db.WithContext(ctx).
		Table("categories").
		Select("categories.name AS name, COUNT(inventory_items.id) AS count").
		Joins("LEFT JOIN inventory_items ON categories.id = inventory_items.category_id").
		Group("categories.name").
		Scan(&counts).Error
	if err != nil {
		return nil, err
	}
	return counts, nil
}

// FinancialByLocation reports every site, including ones with no recorded
// transactions yet.
func (r *repository) FinancialByLocation(ctx context.Context) ([]LocationFinancial, error) {
	var rows []LocationFinancial
	err := r.db.WithContext(ctx).
		Table("locations").
		Select(`locations.name AS location,
COALESCE(SUM(CASE WHEN transactions.payment_status = ? THEN transactions.total_amount ELSE 0 END), 0) AS pending,
COALESCE(SUM(CASE WHEN transactions.payment_status = ? THEN transactions.total_amount ELSE 0 END), 0) AS paid,
COALESCE(SUM(transactions.total_amount), 0) AS total`,
			models.PaymentStatusPending, models.PaymentStatusPaid).
		Joins("LEFT JOIN transactions ON transactions.location_id = locations.id").
		Group("locations.name").
		Order("locations.name ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *repository) LowStockRows(ctx context.Context) ([]LowStockRow, error) {
	var rows []LowStockRow
	err := r.db.WithContext(ctx).
		Table("inventory_items").
		Select(`inventory_items.*,
COALESCE(categories.name, '') AS category_name,
COALESCE(locations.name, '') AS location_name,
(inventory_items.quantity * inventory_items.price) AS total_value`).
		Joins("LEFT JOIN categories ON inventory_items.category_id = categories.id").
		Joins("LEFT JOIN locations ON inventory_items.location_id = locations.id").
		Where("inventory_items.quantity < inventory_items.min_stock").
		Order("inventory_items.quantity ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *repository) ValueByCategory(ctx context.Context) ([]CategoryValue, error) {
	var rows []CategoryValue
	err := r.db.WithContext(ctx).
		Table("inventory_items").
		Select(`COALESCE(categories.name, '') AS category,
COALESCE(SUM(inventory_items.quantity * inventory_items.price), 0) AS total_value,
COALESCE(SUM(inventory_items.quantity), 0) AS total_quantity`).
		Joins("LEFT JOIN categories ON inventory_items.category_id = categories.id").
		Group("categories.name").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *repository) ValueByLocation(ctx context.Context) ([]LocationValue, error) {
	var rows []LocationValue
	err := r.db.WithContext(ctx).
		Table("inventory_items").
		Select(`COALESCE(locations.name, '') AS location,
COALESCE(SUM(inventory_items.quantity * inventory_items.price), 0) AS total_value,
COUNT(inventory_items.id) AS item_count`).
		Joins("LEFT JOIN locations ON inventory_items.location_id = locations.id").
		Group("locations.name").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
