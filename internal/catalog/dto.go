package catalog

import "time"

// CategoryInput is the payload accepted when creating a category.
type CategoryInput struct {
	Name        string  `json:"name" validate:"required,max=128"`
	Description *string `json:"description" validate:"omitempty,max=512"`
}

// CategoryResponse mirrors a category row.
type CategoryResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// LocationInput is the payload accepted when creating or updating a site.
type LocationInput struct {
	Name    string `json:"name" validate:"required,max=128"`
	Address string `json:"address" validate:"required,max=256"`
}

// LocationResponse is a site plus the counts of things stored there.
type LocationResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Address  string `json:"address"`
	Items    int64  `json:"items"`
	Printers int64  `json:"printers"`
}

// PrinterInput is the payload accepted when creating or updating a printer.
type PrinterInput struct {
	Model        string  `json:"model" validate:"required,max=128"`
	SerialNumber string  `json:"serial_number" validate:"required,max=128"`
	LocationID   int64   `json:"location_id" validate:"required,gt=0"`
	Status       string  `json:"status" validate:"omitempty,max=32"`
	Supplies     *string `json:"supplies" validate:"omitempty,max=512"`
}

// PrinterResponse is a printer row joined with its site name.
type PrinterResponse struct {
	ID           int64     `json:"id"`
	Model        string    `json:"model"`
	SerialNumber string    `json:"serial_number"`
	LocationID   int64     `json:"location_id"`
	LocationName string    `json:"location_name"`
	Status       string    `json:"status"`
	Supplies     *string   `json:"supplies"`
	CreatedAt    time.Time `json:"created_at"`
}

// DeleteResponse acknowledges a removal.
type DeleteResponse struct {
	Message string `json:"message"`
}
