package reports

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	pkgerrors "github.com/printventory/printventory-backend/pkg/errors"
)

// trendMonths caps the inventory trend series returned to the dashboard.
const trendMonths = 6

// Service exposes the read-only aggregation endpoints.
type Service interface {
	DashboardMetrics(ctx context.Context) (*DashboardMetrics, error)
	DashboardCharts(ctx context.Context) (*DashboardCharts, error)
	FinancialSummary(ctx context.Context) (*FinancialSummary, error)
	LowStock(ctx context.Context) ([]LowStockItem, error)
	InventoryValue(ctx context.Context) (*InventoryValue, error)
}

type service struct {
	repo Repository
}

// NewService builds the reports service.
func NewService(repo Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("reports repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) DashboardMetrics(ctx context.Context) (*DashboardMetrics, error) {
	items, err := s.repo.CountItems(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "count items")
	}
	lowStock, err := s.repo.CountLowStock(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "count low stock")
	}
	locations, err := s.repo.CountLocations(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "count locations")
	}
	printers, err := s.repo.CountPrinters(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "count printers")
	}
	totals, err := s.repo.TransactionTotals(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "sum transactions")
	}

	return &DashboardMetrics{
		TotalItems:      items,
		LowStockCount:   lowStock,
		TotalLocations:  locations,
		TotalPrinters:   printers,
		TotalSpent:      round2(totals.Spent),
		PendingPayments: round2(totals.Pending),
		PaidAmount:      round2(totals.Spent - totals.Pending),
	}, nil
}

func (s *service) DashboardCharts(ctx context.Context) (*DashboardCharts, error) {
	trend, err := s.repo.InventoryTrend(ctx, trendMonths)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "inventory trend")
	}
	distribution, err := s.repo.CategoryDistribution(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "category distribution")
	}
	if trend == nil {
		trend = []TrendPoint{}
	}
	if distribution == nil {
		distribution = []CategoryCount{}
	}
	return &DashboardCharts{
		InventoryTrend:       trend,
		CategoryDistribution: distribution,
	}, nil
}

func (s *service) FinancialSummary(ctx context.Context) (*FinancialSummary, error) {
	totals, err := s.repo.TransactionTotals(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "sum transactions")
	}
	byLocation, err := s.repo.FinancialByLocation(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "financial by location")
	}
	for i := range byLocation {
		byLocation[i].Pending = round2(byLocation[i].Pending)
		byLocation[i].Paid = round2(byLocation[i].Paid)
		byLocation[i].Total = round2(byLocation[i].Total)
	}
	if byLocation == nil {
		byLocation = []LocationFinancial{}
	}
	return &FinancialSummary{
		TotalSpent:             round2(totals.Spent),
		TotalPending:           round2(totals.Pending),
		TotalPaid:              round2(totals.Paid),
		TransactionsByLocation: byLocation,
	}, nil
}

func (s *service) LowStock(ctx context.Context) ([]LowStockItem, error) {
	rows, err := s.repo.LowStockRows(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "low stock rows")
	}
	out := make([]LowStockItem, 0, len(rows))
	for i := range rows {
		row := &rows[i]
		out = append(out, LowStockItem{
			ID:           row.ID,
			Name:         row.Name,
			SKU:          row.SKU,
			CategoryID:   row.CategoryID,
			CategoryName: row.CategoryName,
			Quantity:     row.Quantity,
			MinStock:     row.MinStock,
			Price:        row.Price,
			TotalValue:   round2(row.TotalValue),
			LocationID:   row.LocationID,
			LocationName: row.LocationName,
			Status:       row.Status,
			CreatedAt:    row.CreatedAt,
		})
	}
	return out, nil
}

func (s *service) InventoryValue(ctx context.Context) (*InventoryValue, error) {
	byCategory, err := s.repo.ValueByCategory(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "value by category")
	}
	byLocation, err := s.repo.ValueByLocation(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "value by location")
	}
	for i := range byCategory {
		byCategory[i].TotalValue = round2(byCategory[i].TotalValue)
	}
	for i := range byLocation {
		byLocation[i].TotalValue = round2(byLocation[i].TotalValue)
	}
	if byCategory == nil {
		byCategory = []CategoryValue{}
	}
	if byLocation == nil {
		byLocation = []LocationValue{}
	}
	return &InventoryValue{
		ByCategory: byCategory,
		ByLocation: byLocation,
	}, nil
}

func round2(value float64) float64 {
	return decimal.NewFromFloat(value).Round(2).InexactFloat64()
}
