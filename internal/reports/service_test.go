package reports

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) Service {
	t.Helper()
	gdb := setupReportsTestDB(t)
	seedReportsFixtures(t, gdb)
	svc, err := NewService(NewRepository(gdb))
	require.NoError(t, err)
	return svc
}

func TestDashboardMetrics(t *testing.T) {
	svc := newTestService(t)

	metrics, err := svc.DashboardMetrics(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), metrics.TotalItems)
	assert.Equal(t, int64(1), metrics.LowStockCount)
	assert.Equal(t, int64(2), metrics.TotalLocations)
	assert.Equal(t, int64(1), metrics.TotalPrinters)
	assert.InDelta(t, 390, metrics.TotalSpent, 0.0001)
	assert.InDelta(t, 80, metrics.PendingPayments, 0.0001)
	assert.InDelta(t, 310, metrics.PaidAmount, 0.0001)
}

func TestDashboardChartsNeverNil(t *testing.T) {
	gdb := setupReportsTestDB(t)
	svc, err := NewService(NewRepository(gdb))
	require.NoError(t, err)

	charts, err := svc.DashboardCharts(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, charts.InventoryTrend)
	assert.NotNil(t, charts.CategoryDistribution)
	assert.Empty(t, charts.InventoryTrend)
}

func TestFinancialSummaryRoundsToCents(t *testing.T) {
	gdb := setupReportsTestDB(t)
	require.NoError(t, gdb.Exec(`INSERT INTO locations (name, address) VALUES ('Main Office', '1 First St')`).Error)
	require.NoError(t, gdb.Exec(
		`INSERT INTO transactions (item_id, location_id, transaction_type, quantity, price_per_unit, total_amount, payment_status)
VALUES (1, 1, 'purchase', 3, 33.333, 99.999, 'Paid')`).Error)
	svc, err := NewService(NewRepository(gdb))
	require.NoError(t, err)

	summary, err := svc.FinancialSummary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 100.0, summary.TotalSpent)
	assert.Equal(t, 100.0, summary.TotalPaid)
	require.Len(t, summary.TransactionsByLocation, 1)
	assert.Equal(t, 100.0, summary.TransactionsByLocation[0].Total)
}

func TestLowStockReport(t *testing.T) {
	svc := newTestService(t)

	items, err := svc.LowStock(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Cyan Toner", items[0].Name)
	assert.InDelta(t, 40, items[0].TotalValue, 0.0001)
}

func TestInventoryValueReport(t *testing.T) {
	svc := newTestService(t)

	value, err := svc.InventoryValue(context.Background())
	require.NoError(t, err)
	assert.Len(t, value.ByCategory, 2)
	assert.Len(t, value.ByLocation, 2)
}
