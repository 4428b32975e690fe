package reports

import "time"

// DashboardMetrics is the headline counters shown on the dashboard.
type DashboardMetrics struct {
	TotalItems      int64   `json:"total_items"`
	LowStockCount   int64   `json:"low_stock_count"`
	TotalLocations  int64   `json:"total_locations"`
	TotalPrinters   int64   `json:"total_printers"`
	TotalSpent      float64 `json:"total_spent"`
	PendingPayments float64 `json:"pending_payments"`
	PaidAmount      float64 `json:"paid_amount"`
}

// TrendPoint is one month of the inventory intake trend.
type TrendPoint struct {
	Month     string `json:"month"`
	Inventory int64  `json:"inventory"`
	Items     int64  `json:"items"`
}

// CategoryCount pairs a category name with how many items it holds.
type CategoryCount struct {
	Name  string `json:"name"`
	Count int64  `json:"count"`
}

// DashboardCharts bundles the chart series for the dashboard.
type DashboardCharts struct {
	InventoryTrend       []TrendPoint    `json:"inventory_trend"`
	CategoryDistribution []CategoryCount `json:"category_distribution"`
}

// LocationFinancial is the per-site spending breakdown.
type LocationFinancial struct {
	Location string  `json:"location"`
	Pending  float64 `json:"pending"`
	Paid     float64 `json:"paid"`
	Total    float64 `json:"total"`
}

// FinancialSummary aggregates spending across all recorded transactions.
type FinancialSummary struct {
	TotalSpent             float64             `json:"total_spent"`
	TotalPending           float64             `json:"total_pending"`
	TotalPaid              float64             `json:"total_paid"`
	TransactionsByLocation []LocationFinancial `json:"transactions_by_location"`
}

// LowStockItem is a stock record below its reorder threshold.
type LowStockItem struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	SKU          string    `json:"sku"`
	CategoryID   int64     `json:"category_id"`
	CategoryName string    `json:"category_name"`
	Quantity     int       `json:"quantity"`
	MinStock     int       `json:"min_stock"`
	Price        float64   `json:"price"`
	TotalValue   float64   `json:"total_value"`
	LocationID   int64     `json:"location_id"`
	LocationName string    `json:"location_name"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

// CategoryValue is the stock valuation grouped by category.
type CategoryValue struct {
	Category      string  `json:"category"`
	TotalValue    float64 `json:"total_value"`
	TotalQuantity int64   `json:"total_quantity"`
}

// LocationValue is the stock valuation grouped by site.
type LocationValue struct {
	Location   string  `json:"location"`
	TotalValue float64 `json:"total_value"`
	ItemCount  int64   `json:"item_count"`
}

// InventoryValue bundles both valuation breakdowns.
type InventoryValue struct {
	ByCategory []CategoryValue `json:"by_category"`
	ByLocation []LocationValue `json:"by_location"`
}
