package catalog

import (
	"context"

	"gorm.io/gorm"

	"github.com/printventory/printventory-backend/pkg/db/models"
)

// LocationCounts holds the per-site item and printer tallies.
type LocationCounts struct {
	LocationID int64
	Items      int64
	Printers   int64
}

// PrinterRow is a printer joined with its site name.
type PrinterRow struct {
	models.Printer
	LocationName string
}

// Repository defines persistence operations for categories, locations and printers.
type Repository interface {
	ListCategories(ctx context.Context) ([]models.Category, error)
	CreateCategory(ctx context.Context, category *models.Category) (*models.Category, error)

	ListLocations(ctx context.Context) ([]models.Location, error)
	FindLocationByID(ctx context.Context, id int64) (*models.Location, error)
	CreateLocation(ctx context.Context, location *models.Location) (*models.Location, error)
	UpdateLocation(ctx context.Context, id int64, name, address string) (int64, error)
	DeleteLocation(ctx context.Context, id int64) error
	CountByLocation(ctx context.Context) (map[int64]LocationCounts, error)

	ListPrinters(ctx context.Context) ([]PrinterRow, error)
	FindPrinterByID(ctx context.Context, id int64) (*PrinterRow, error)
	CreatePrinter(ctx context.Context, printer *models.Printer) (*models.Printer, error)
	UpdatePrinter(ctx context.Context, id int64, updates map[string]any) (int64, error)
	DeletePrinter(ctx context.Context, id int64) error
}

type repository struct {
	db *gorm.DB
}

// NewRepository builds a catalog repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) ListCategories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	err := r.db.WithContext(ctx).Order("name ASC").Find(&categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *repository) CreateCategory(ctx context.Context, category *models.Category) (*models.Category, error) {
	if err := r.db.WithContext(ctx).Create(category).Error; err != nil {
		return nil, err
	}
	return category, nil
}

func (r *repository) ListLocations(ctx context.Context) ([]models.Location, error) {
	var locations []models.Location
	err := r.db.WithContext(ctx).Order("name ASC").Find(&locations).Error
	if err != nil {
		return nil, err
	}
	return locations, nil
}

func (r *repository) FindLocationByID(ctx context.Context, id int64) (*models.Location, error) {
	var location models.Location
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&location).Error
	if err != nil {
		return nil, err
	}
	return &location, nil
}

func (r *repository) CreateLocation(ctx context.Context, location *models.Location) (*models.Location, error) {
	if err := r.db.WithContext(ctx).Create(location).Error; err != nil {
		return nil, err
	}
	return location, nil
}

func (r *repository) UpdateLocation(ctx context.Context, id int64, name, address string) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&models.Location{}).
		Where("id = ?", id).
		Updates(map[string]any{"name": name, "address": address})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

func (r *repository) DeleteLocation(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Location{}).Error
}

// CountByLocation tallies items and printers per site in a single pass over each table.
func (r *repository) CountByLocation(ctx context.Context) (map[int64]LocationCounts, error) {
	counts := map[int64]LocationCounts{}

	var itemRows []struct {
		LocationID int64
		Count      int64
	}
	err := r.db.WithContext(ctx).
		Model(&models.InventoryItem{}).
		Select("location_id, COUNT(*) AS count").
		Group("location_id").
		Scan(&itemRows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range itemRows {
		entry := counts[row.LocationID]
		entry.LocationID = row.LocationID
		entry.Items = row.Count
		counts[row.LocationID] = entry
	}

	var printerRows []struct {
		LocationID int64
		Count      int64
	}
	err = r.db.WithContext(ctx).
		Model(&models.Printer{}).
		Select("location_id, COUNT(*) AS count").
		Group("location_id").
		Scan(&printerRows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range printerRows {
		entry := counts[row.LocationID]
		entry.LocationID = row.LocationID
		entry.Printers = row.Count
		counts[row.LocationID] = entry
	}

	return counts, nil
}

func (r *repository) ListPrinters(ctx context.Context) ([]PrinterRow, error) {
	var rows []PrinterRow
	err := r.db.WithContext(ctx).
		Table("printers").
		Select("printers.*, COALESCE(locations.name, '') AS location_name").
		Joins("LEFT JOIN locations ON printers.location_id = locations.id").
		Order("printers.created_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *repository) FindPrinterByID(ctx context.Context, id int64) (*PrinterRow, error) {
	var row PrinterRow
	err := r.db.WithContext(ctx).
		Table("printers").
		Select("printers.*, COALESCE(locations.name, '') AS location_name").
		Joins("LEFT JOIN locations ON printers.location_id = locations.id").
		Where("printers.id = ?", id).
		Take(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *repository) CreatePrinter(ctx context.Context, printer *models.Printer) (*models.Printer, error) {
	if err := r.db.WithContext(ctx).Create(printer).Error; err != nil {
		return nil, err
	}
	return printer, nil
}

func (r *repository) UpdatePrinter(ctx context.Context, id int64, updates map[string]any) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&models.Printer{}).
		Where("id = ?", id).
		Updates(updates)
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

func (r *repository) DeletePrinter(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Printer{}).Error
}
