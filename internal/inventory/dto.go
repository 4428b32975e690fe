package inventory

import "time"

// ItemInput is the payload accepted when creating or updating a stock record.
type ItemInput struct {
	Name       string  `json:"name" validate:"required,max=128"`
	SKU        string  `json:"sku" validate:"required,max=64"`
	CategoryID int64   `json:"category_id" validate:"required,gt=0"`
	Quantity   int     `json:"quantity" validate:"gte=0"`
	MinStock   int     `json:"min_stock" validate:"gte=0"`
	Price      float64 `json:"price" validate:"gte=0"`
	LocationID int64   `json:"location_id" validate:"required,gt=0"`
	PrinterID  *int64  `json:"printer_id" validate:"omitempty,gt=0"`
}

// ItemResponse is a stock record joined with its category, site and printer names.
type ItemResponse struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	SKU          string    `json:"sku"`
	CategoryID   int64     `json:"category_id"`
	CategoryName string    `json:"category_name"`
	Quantity     int       `json:"quantity"`
	MinStock     int       `json:"min_stock"`
	Price        float64   `json:"price"`
	TotalPrice   float64   `json:"total_price"`
	LocationID   int64     `json:"location_id"`
	LocationName string    `json:"location_name"`
	PrinterID    *int64    `json:"printer_id"`
	PrinterName  *string   `json:"printer_name"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

// DeleteResponse acknowledges a removal.
type DeleteResponse struct {
	Message string `json:"message"`
}
