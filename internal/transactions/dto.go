package transactions

import "time"

// CreateInput is the payload accepted when recording a stock transaction.
// Only "sale" carries a stock side effect; any other transaction_type is
// recorded inertly, and payment_status accepts free text.
type CreateInput struct {
	ItemID          int64   `json:"item_id" validate:"required,gt=0"`
	LocationID      int64   `json:"location_id" validate:"required,gt=0"`
	TransactionType string  `json:"transaction_type" validate:"required,max=32"`
	Quantity        int     `json:"quantity" validate:"required,gt=0"`
	PricePerUnit    float64 `json:"price_per_unit" validate:"gte=0"`
	PaymentStatus   string  `json:"payment_status" validate:"omitempty,max=32"`
	PaymentDate     *string `json:"payment_date" validate:"omitempty,max=64"`
	Notes           *string `json:"notes" validate:"omitempty,max=512"`
}

// Response is a transaction joined with its item and site names.
type Response struct {
	ID              int64     `json:"id"`
	ItemID          int64     `json:"item_id"`
	ItemName        string    `json:"item_name"`
	LocationID      int64     `json:"location_id"`
	LocationName    string    `json:"location_name"`
	TransactionType string    `json:"transaction_type"`
	Quantity        int       `json:"quantity"`
	PricePerUnit    float64   `json:"price_per_unit"`
	TotalAmount     float64   `json:"total_amount"`
	PaymentStatus   string    `json:"payment_status"`
	PaymentDate     *string   `json:"payment_date"`
	Notes           *string   `json:"notes"`
	CreatedAt       time.Time `json:"created_at"`
}
