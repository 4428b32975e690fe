package models

import "time"

// TransactionTypeSale is the only type with stock side effects; other types
// are recorded inertly.
const TransactionTypeSale = "sale"

// Payment statuses the aggregation queries key on. The column itself accepts
// free text.
const (
	PaymentStatusPending = "Pending"
	PaymentStatusPaid    = "Paid"
)

// Transaction is an append-only financial/stock-movement record.
type Transaction struct {
	ID              int64     `gorm:"column:id;primaryKey;autoIncrement"`
	ItemID          int64     `gorm:"column:item_id;not null"`
	LocationID      int64     `gorm:"column:location_id;not null"`
	TransactionType string    `gorm:"column:transaction_type;not null"`
	Quantity        int       `gorm:"column:quantity;not null"`
	PricePerUnit    float64   `gorm:"column:price_per_unit;not null"`
	TotalAmount     float64   `gorm:"column:total_amount;not null"`
	PaymentStatus   string    `gorm:"column:payment_status;not null;default:Pending"`
	PaymentDate     *string   `gorm:"column:payment_date"`
	Notes           *string   `gorm:"column:notes"`
	CreatedAt       time.Time `gorm:"column:created_at;autoCreateTime"`
}
