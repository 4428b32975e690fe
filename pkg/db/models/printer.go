package models

import "time"

// Printer statuses are free text; these are the values the UI ships with.
const (
	PrinterStatusActive      = "Active"
	PrinterStatusMaintenance = "Maintenance"
)

// Printer is a device installed at a location.
type Printer struct {
	ID           int64     `gorm:"column:id;primaryKey;autoIncrement"`
	Model        string    `gorm:"column:model;not null"`
	SerialNumber string    `gorm:"column:serial_number;uniqueIndex"`
	LocationID   int64     `gorm:"column:location_id;not null"`
	Status       string    `gorm:"column:status;not null;default:Active"`
	Supplies     *string   `gorm:"column:supplies"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime"`
}
