package transactions

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/printventory/printventory-backend/pkg/db/models"
	pkgerrors "github.com/printventory/printventory-backend/pkg/errors"
)

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

// Service records purchases and sales and exposes the transaction log.
type Service interface {
	List(ctx context.Context) ([]Response, error)
	Create(ctx context.Context, input CreateInput) (*Response, error)
}

type service struct {
	repo Repository
	tx   txRunner
}

// NewService builds the transactions service.
func NewService(repo Repository, tx txRunner) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("transactions repository required")
	}
	if tx == nil {
		return nil, fmt.Errorf("transaction runner required")
	}
	return &service{repo: repo, tx: tx}, nil
}

func (s *service) List(ctx context.Context) ([]Response, error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list transactions")
	}
	out := make([]Response, 0, len(rows))
	for i := range rows {
		out = append(out, toResponse(&rows[i]))
	}
	return out, nil
}

// Create persists the transaction and, for sales, decrements the referenced
// item's stock in the same database transaction.
func (s *service) Create(ctx context.Context, input CreateInput) (*Response, error) {
	itemOK, err := s.repo.ItemExists(ctx, input.ItemID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "check item")
	}
	if !itemOK {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "Item does not exist")
	}
	locationOK, err := s.repo.LocationExists(ctx, input.LocationID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "check location")
	}
	if !locationOK {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "Location does not exist")
	}

	paymentStatus := strings.TrimSpace(input.PaymentStatus)
	if paymentStatus == "" {
		paymentStatus = models.PaymentStatusPending
	}

	total := decimal.NewFromInt(int64(input.Quantity)).
		Mul(decimal.NewFromFloat(input.PricePerUnit)).
		Round(2)

	txn := &models.Transaction{
		ItemID:          input.ItemID,
		LocationID:      input.LocationID,
		TransactionType: input.TransactionType,
		Quantity:        input.Quantity,
		PricePerUnit:    input.PricePerUnit,
		TotalAmount:     total.InexactFloat64(),
		PaymentStatus:   paymentStatus,
		PaymentDate:     input.PaymentDate,
		Notes:           input.Notes,
	}

	err = s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		if _, err := repo.Create(ctx, txn); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create transaction")
		}
		if txn.TransactionType == models.TransactionTypeSale {
			if err := repo.DecrementItemQuantity(ctx, txn.ItemID, txn.Quantity); err != nil {
				return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "decrement stock")
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	row, err := s.repo.FindRowByID(ctx, txn.ID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "reload transaction")
	}
	resp := toResponse(row)
	return &resp, nil
}

func toResponse(row *Row) Response {
	return Response{
		ID:              row.ID,
		ItemID:          row.ItemID,
		ItemName:        row.ItemName,
		LocationID:      row.LocationID,
		LocationName:    row.LocationName,
		TransactionType: row.TransactionType,
		Quantity:        row.Quantity,
		PricePerUnit:    row.PricePerUnit,
		TotalAmount:     row.TotalAmount,
		PaymentStatus:   row.PaymentStatus,
		PaymentDate:     row.PaymentDate,
		Notes:           row.Notes,
		CreatedAt:       row.CreatedAt,
	}
}
