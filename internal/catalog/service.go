package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/printventory/printventory-backend/pkg/db"
	"github.com/printventory/printventory-backend/pkg/db/models"
	pkgerrors "github.com/printventory/printventory-backend/pkg/errors"
)

// Service exposes catalog reads and writes for categories, sites and printers.
type Service interface {
	ListCategories(ctx context.Context) ([]CategoryResponse, error)
	CreateCategory(ctx context.Context, input CategoryInput) (*CategoryResponse, error)

	ListLocations(ctx context.Context) ([]LocationResponse, error)
	CreateLocation(ctx context.Context, input LocationInput) (*LocationResponse, error)
	UpdateLocation(ctx context.Context, id int64, input LocationInput) (*LocationResponse, error)
	DeleteLocation(ctx context.Context, id int64) error

	ListPrinters(ctx context.Context) ([]PrinterResponse, error)
	CreatePrinter(ctx context.Context, input PrinterInput) (*PrinterResponse, error)
	UpdatePrinter(ctx context.Context, id int64, input PrinterInput) (*PrinterResponse, error)
	DeletePrinter(ctx context.Context, id int64) error
}

type service struct {
	repo Repository
}

// NewService builds the catalog service.
func NewService(repo Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("catalog repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) ListCategories(ctx context.Context) ([]CategoryResponse, error) {
	categories, err := s.repo.ListCategories(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list categories")
	}
	out := make([]CategoryResponse, 0, len(categories))
	for i := range categories {
		out = append(out, toCategoryResponse(&categories[i]))
	}
	return out, nil
}

func (s *service) CreateCategory(ctx context.Context, input CategoryInput) (*CategoryResponse, error) {
	category := &models.Category{
		Name:        strings.TrimSpace(input.Name),
		Description: input.Description,
	}
	created, err := s.repo.CreateCategory(ctx, category)
	if err != nil {
		if db.IsUniqueViolation(err, "categories.name") {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "Category already exists")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create category")
	}
	resp := toCategoryResponse(created)
	return &resp, nil
}

func (s *service) ListLocations(ctx context.Context) ([]LocationResponse, error) {
	locations, err := s.repo.ListLocations(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list locations")
	}
	counts, err := s.repo.CountByLocation(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "count by location")
	}

	out := make([]LocationResponse, 0, len(locations))
	for i := range locations {
		loc := &locations[i]
		entry := counts[loc.ID]
		out = append(out, LocationResponse{
			ID:       loc.ID,
			Name:     loc.Name,
			Address:  loc.Address,
			Items:    entry.Items,
			Printers: entry.Printers,
		})
	}
	return out, nil
}

func (s *service) CreateLocation(ctx context.Context, input LocationInput) (*LocationResponse, error) {
	location := &models.Location{
		Name:    strings.TrimSpace(input.Name),
		Address: strings.TrimSpace(input.Address),
	}
	created, err := s.repo.CreateLocation(ctx, location)
	if err != nil {
		if db.IsUniqueViolation(err, "locations.name") {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "Location already exists")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create location")
	}
	return &LocationResponse{
		ID:      created.ID,
		Name:    created.Name,
		Address: created.Address,
	}, nil
}

func (s *service) UpdateLocation(ctx context.Context, id int64, input LocationInput) (*LocationResponse, error) {
	affected, err := s.repo.UpdateLocation(ctx, id, strings.TrimSpace(input.Name), strings.TrimSpace(input.Address))
	if err != nil {
		if db.IsUniqueViolation(err, "locations.name") {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "Location already exists")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update location")
	}
	if affected == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "Location not found")
	}

	location, err := s.repo.FindLocationByID(ctx, id)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "reload location")
	}
	counts, err := s.repo.CountByLocation(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "count by location")
	}
	entry := counts[location.ID]
	return &LocationResponse{
		ID:       location.ID,
		Name:     location.Name,
		Address:  location.Address,
		Items:    entry.Items,
		Printers: entry.Printers,
	}, nil
}

func (s *service) DeleteLocation(ctx context.Context, id int64) error {
	if err := s.repo.DeleteLocation(ctx, id); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete location")
	}
	return nil
}

func (s *service) ListPrinters(ctx context.Context) ([]PrinterResponse, error) {
	rows, err := s.repo.ListPrinters(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list printers")
	}
	out := make([]PrinterResponse, 0, len(rows))
	for i := range rows {
		out = append(out, toPrinterResponse(&rows[i]))
	}
	return out, nil
}

func (s *service) CreatePrinter(ctx context.Context, input PrinterInput) (*PrinterResponse, error) {
	status := strings.TrimSpace(input.Status)
	if status == "" {
		status = models.PrinterStatusActive
	}
	printer := &models.Printer{
		Model:        strings.TrimSpace(input.Model),
		SerialNumber: strings.TrimSpace(input.SerialNumber),
		LocationID:   input.LocationID,
		Status:       status,
		Supplies:     input.Supplies,
	}
	created, err := s.repo.CreatePrinter(ctx, printer)
	if err != nil {
		if db.IsUniqueViolation(err, "printers.serial_number") {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "Serial number already exists")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create printer")
	}

	row, err := s.repo.FindPrinterByID(ctx, created.ID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "reload printer")
	}
	resp := toPrinterResponse(row)
	return &resp, nil
}

func (s *service) UpdatePrinter(ctx context.Context, id int64, input PrinterInput) (*PrinterResponse, error) {
	status := strings.TrimSpace(input.Status)
	if status == "" {
		status = models.PrinterStatusActive
	}
	updates := map[string]any{
		"model":         strings.TrimSpace(input.Model),
		"serial_number": strings.TrimSpace(input.SerialNumber),
		"location_id":   input.LocationID,
		"status":        status,
		"supplies":      input.Supplies,
	}
	affected, err := s.repo.UpdatePrinter(ctx, id, updates)
	if err != nil {
		if db.IsUniqueViolation(err, "printers.serial_number") {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "Serial number already exists")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update printer")
	}
	if affected == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "Printer not found")
	}

	row, err := s.repo.FindPrinterByID(ctx, id)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "reload printer")
	}
	resp := toPrinterResponse(row)
	return &resp, nil
}

func (s *service) DeletePrinter(ctx context.Context, id int64) error {
	if err := s.repo.DeletePrinter(ctx, id); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete printer")
	}
	return nil
}

func toCategoryResponse(category *models.Category) CategoryResponse {
	return CategoryResponse{
		ID:          category.ID,
		Name:        category.Name,
		Description: category.Description,
		CreatedAt:   category.CreatedAt,
	}
}

func toPrinterResponse(row *PrinterRow) PrinterResponse {
	return PrinterResponse{
		ID:           row.ID,
		Model:        row.Model,
		SerialNumber: row.SerialNumber,
		LocationID:   row.LocationID,
		LocationName: row.LocationName,
		Status:       row.Status,
		Supplies:     row.Supplies,
		CreatedAt:    row.CreatedAt,
	}
}
