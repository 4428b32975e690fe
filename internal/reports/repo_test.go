package reports

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupReportsTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	ddl := []string{
		`CREATE TABLE IF NOT EXISTS categories (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  name TEXT NOT NULL UNIQUE,
  description TEXT,
  created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);`,
		`CREATE TABLE IF NOT EXISTS locations (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  name TEXT NOT NULL UNIQUE,
  address TEXT NOT NULL,
  created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);`,
		`CREATE TABLE IF NOT EXISTS printers (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  model TEXT NOT NULL,
  serial_number TEXT NOT NULL UNIQUE,
  location_id INTEGER NOT NULL,
  status TEXT NOT NULL DEFAULT 'Active',
  supplies TEXT,
  created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);`,
		`CREATE TABLE IF NOT EXISTS inventory_items (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  name TEXT NOT NULL,
  sku TEXT NOT NULL UNIQUE,
  category_id INTEGER NOT NULL,
  quantity INTEGER NOT NULL DEFAULT 0,
  min_stock INTEGER NOT NULL DEFAULT 0,
  price REAL NOT NULL DEFAULT 0,
  location_id INTEGER NOT NULL,
  printer_id INTEGER,
  status TEXT NOT NULL DEFAULT 'In Stock',
  created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);`,
		`CREATE TABLE IF NOT EXISTS transactions (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  item_id INTEGER NOT NULL,
  location_id INTEGER NOT NULL,
  transaction_type TEXT NOT NULL,
  quantity INTEGER NOT NULL,
  price_per_unit REAL NOT NULL,
  total_amount REAL NOT NULL,
  payment_status TEXT NOT NULL DEFAULT 'Pending',
  payment_date TEXT,
  notes TEXT,
  created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);`,
	}
	for _, stmt := range ddl {
		require.NoError(t, gdb.Exec(stmt).Error)
	}
	return gdb
}

func seedReportsFixtures(t *testing.T, gdb *gorm.DB) {
	t.Helper()
	stmts := []string{
		`INSERT INTO categories (name) VALUES ('Toner'), ('Paper')`,
		`INSERT INTO locations (name, address) VALUES ('Main Office', '1 First St'), ('Warehouse', '2 Dock Rd')`,
		`INSERT INTO printers (model, serial_number, location_id, status) VALUES ('LaserJet 400', 'SN-1', 1, 'Active')`,
		`INSERT INTO inventory_items (name, sku, category_id, quantity, min_stock, price, location_id, status, created_at)
VALUES ('Black Toner', 'TN-1', 1, 10, 3, 50, 1, 'In Stock', '2026-01-10 09:00:00'),
       ('Cyan Toner', 'TN-2', 1, 1, 5, 40, 1, 'Low Stock', '2026-02-10 09:00:00'),
       ('A4 Paper', 'PA-1', 2, 100, 20, 5, 2, 'In Stock', '2026-02-12 09:00:00')`,
		`INSERT INTO transactions (item_id, location_id, transaction_type, quantity, price_per_unit, total_amount, payment_status)
VALUES (1, 1, 'purchase', 5, 50, 250, 'Paid'),
       (2, 1, 'purchase', 2, 40, 80, 'Pending'),
       (3, 2, 'sale', 10, 6, 60, 'Paid')`,
	}
	for _, stmt := range stmts {
		require.NoError(t, gdb.Exec(stmt).Error)
	}
}

func TestCountsAndTotals(t *testing.T) {
	gdb := setupReportsTestDB(t)
	seedReportsFixtures(t, gdb)
	repo := NewRepository(gdb)
	ctx := context.Background()

	items, err := repo.CountItems(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), items)

	low, err := repo.CountLowStock(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), low)

	locations, err := repo.CountLocations(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), locations)

	printers, err := repo.CountPrinters(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), printers)

	totals, err := repo.TransactionTotals(ctx)
	require.NoError(t, err)
	assert.InDelta(t, 390, totals.Spent, 0.0001)
	assert.InDelta(t, 80, totals.Pending, 0.0001)
	assert.InDelta(t, 310, totals.Paid, 0.0001)
}

func TestTransactionTotalsEmptyTable(t *testing.T) {
	gdb := setupReportsTestDB(t)
	repo := NewRepository(gdb)

	totals, err := repo.TransactionTotals(context.Background())
	require.NoError(t, err)
	assert.Zero(t, totals.Spent)
	assert.Zero(t, totals.Pending)
	assert.Zero(t, totals.Paid)
}

func TestInventoryTrendGroupsByMonth(t *testing.T) {
	gdb := setupReportsTestDB(t)
	seedReportsFixtures(t, gdb)
	repo := NewRepository(gdb)

	points, err := repo.InventoryTrend(context.Background(), 6)
	require.NoError(t, err)
	require.Len(t, points, 2)
	assert.Equal(t, "2026-02", points[0].Month)
	assert.Equal(t, int64(101), points[0].Inventory)
	assert.Equal(t, int64(2), points[0].Items)
	assert.Equal(t, "2026-01", points[1].Month)
	assert.Equal(t, int64(10), points[1].Inventory)
}

func TestCategoryDistributionIncludesEmptyCategories(t *testing.T) {
	gdb := setupReportsTestDB(t)
	seedReportsFixtures(t, gdb)
	require.NoError(t, gdb.Exec(`INSERT INTO categories (name) VALUES ('Drums')`).Error)
	repo := NewRepository(gdb)

	counts, err := repo.CategoryDistribution(context.Background())
	require.NoError(t, err)

	byName := map[string]int64{}
	for _, c := range counts {
		byName[c.Name] = c.Count
	}
	assert.Equal(t, int64(2), byName["Toner"])
	assert.Equal(t, int64(1), byName["Paper"])
	assert.Equal(t, int64(0), byName["Drums"])
}

func TestFinancialByLocationIncludesQuietSites(t *testing.T) {
	gdb := setupReportsTestDB(t)
	seedReportsFixtures(t, gdb)
	require.NoError(t, gdb.Exec(`INSERT INTO locations (name, address) VALUES ('Annex', '3 Side St')`).Error)
	repo := NewRepository(gdb)

	rows, err := repo.FinancialByLocation(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 3)

	byName := map[string]LocationFinancial{}
	for _, row := range rows {
		byName[row.Location] = row
	}
	main := byName["Main Office"]
	assert.InDelta(t, 80, main.Pending, 0.0001)
	assert.InDelta(t, 250, main.Paid, 0.0001)
	assert.InDelta(t, 330, main.Total, 0.0001)

	annex := byName["Annex"]
	assert.Zero(t, annex.Pending)
	assert.Zero(t, annex.Paid)
	assert.Zero(t, annex.Total)
}

func TestLowStockRowsSortedByQuantity(t *testing.T) {
	gdb := setupReportsTestDB(t)
	seedReportsFixtures(t, gdb)
	require.NoError(t, gdb.Exec(
		`INSERT INTO inventory_items (name, sku, category_id, quantity, min_stock, price, location_id, status)
VALUES ('Magenta Toner', 'TN-3', 1, 0, 2, 45, 1, 'Low Stock')`).Error)
	repo := NewRepository(gdb)

	rows, err := repo.LowStockRows(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Magenta Toner", rows[0].Name)
	assert.Equal(t, "Cyan Toner", rows[1].Name)
	assert.Equal(t, "Toner", rows[1].CategoryName)
	assert.InDelta(t, 40, rows[1].TotalValue, 0.0001)
}

func TestValueBreakdowns(t *testing.T) {
	gdb := setupReportsTestDB(t)
	seedReportsFixtures(t, gdb)
	repo := NewRepository(gdb)
	ctx := context.Background()

	byCategory, err := repo.ValueByCategory(ctx)
	require.NoError(t, err)
	catByName := map[string]CategoryValue{}
	for _, row := range byCategory {
		catByName[row.Category] = row
	}
	assert.InDelta(t, 540, catByName["Toner"].TotalValue, 0.0001)
	assert.Equal(t, int64(11), catByName["Toner"].TotalQuantity)
	assert.InDelta(t, 500, catByName["Paper"].TotalValue, 0.0001)

	byLocation, err := repo.ValueByLocation(ctx)
	require.NoError(t, err)
	locByName := map[string]LocationValue{}
	for _, row := range byLocation {
		locByName[row.Location] = row
	}
	assert.InDelta(t, 540, locByName["Main Office"].TotalValue, 0.0001)
	assert.Equal(t, int64(2), locByName["Main Office"].ItemCount)
	assert.Equal(t, int64(1), locByName["Warehouse"].ItemCount)
}
