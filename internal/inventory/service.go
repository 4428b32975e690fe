package inventory

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/printventory/printventory-backend/pkg/db"
	"github.com/printventory/printventory-backend/pkg/db/models"
	pkgerrors "github.com/printventory/printventory-backend/pkg/errors"
)

// Service exposes reads and writes over the stock ledger.
type Service interface {
	List(ctx context.Context) ([]ItemResponse, error)
	Create(ctx context.Context, input ItemInput) (*ItemResponse, error)
	Update(ctx context.Context, id int64, input ItemInput) (*ItemResponse, error)
	Delete(ctx context.Context, id int64) error
}

type service struct {
	repo Repository
}

// NewService builds the inventory service.
func NewService(repo Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("inventory repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) List(ctx context.Context) ([]ItemResponse, error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list inventory")
	}
	out := make([]ItemResponse, 0, len(rows))
	for i := range rows {
		out = append(out, toItemResponse(&rows[i]))
	}
	return out, nil
}

func (s *service) Create(ctx context.Context, input ItemInput) (*ItemResponse, error) {
	item := &models.InventoryItem{
		Name:       strings.TrimSpace(input.Name),
		SKU:        strings.TrimSpace(input.SKU),
		CategoryID: input.CategoryID,
		Quantity:   input.Quantity,
		MinStock:   input.MinStock,
		Price:      input.Price,
		LocationID: input.LocationID,
		PrinterID:  input.PrinterID,
		Status:     models.DeriveItemStatus(input.Quantity, input.MinStock),
	}
	created, err := s.repo.Create(ctx, item)
	if err != nil {
		if db.IsUniqueViolation(err, "inventory_items.sku") {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "SKU already exists")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create inventory item")
	}

	row, err := s.repo.FindRowByID(ctx, created.ID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "reload inventory item")
	}
	resp := toItemResponse(row)
	return &resp, nil
}

func (s *service) Update(ctx context.Context, id int64, input ItemInput) (*ItemResponse, error) {
	updates := map[string]any{
		"name":        strings.TrimSpace(input.Name),
		"sku":         strings.TrimSpace(input.SKU),
		"category_id": input.CategoryID,
		"quantity":    input.Quantity,
		"min_stock":   input.MinStock,
		"price":       input.Price,
		"location_id": input.LocationID,
		"printer_id":  input.PrinterID,
		"status":      models.DeriveItemStatus(input.Quantity, input.MinStock),
	}
	affected, err := s.repo.Update(ctx, id, updates)
	if err != nil {
		if db.IsUniqueViolation(err, "inventory_items.sku") {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "SKU already exists")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update inventory item")
	}
	if affected == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "Item not found")
	}

	row, err := s.repo.FindRowByID(ctx, id)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "reload inventory item")
	}
	resp := toItemResponse(row)
	return &resp, nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete inventory item")
	}
	return nil
}

func toItemResponse(row *ItemRow) ItemResponse {
	total := decimal.NewFromInt(int64(row.Quantity)).
		Mul(decimal.NewFromFloat(row.Price)).
		Round(2)
	return ItemResponse{
		ID:           row.ID,
		Name:         row.Name,
		SKU:          row.SKU,
		CategoryID:   row.CategoryID,
		CategoryName: row.CategoryName,
		Quantity:     row.Quantity,
		MinStock:     row.MinStock,
		Price:        row.Price,
		TotalPrice:   total.InexactFloat64(),
		LocationID:   row.LocationID,
		LocationName: row.LocationName,
		PrinterID:    row.PrinterID,
		PrinterName:  row.PrinterName,
		Status:       row.Status,
		CreatedAt:    row.CreatedAt,
	}
}
