package transactions

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/printventory/printventory-backend/pkg/db/models"
	pkgerrors "github.com/printventory/printventory-backend/pkg/errors"
)

type gormTxRunner struct {
	db *gorm.DB
}

func (g gormTxRunner) WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return g.db.WithContext(ctx).Transaction(fn)
}

func newTestService(t *testing.T) (Service, *gorm.DB) {
	t.Helper()
	gdb := setupTransactionsTestDB(t)
	svc, err := NewService(NewRepository(gdb), gormTxRunner{db: gdb})
	require.NoError(t, err)
	return svc, gdb
}

func TestCreatePurchaseLeavesStockAlone(t *testing.T) {
	svc, gdb := newTestService(t)

	resp, err := svc.Create(context.Background(), CreateInput{
		ItemID:          1,
		LocationID:      1,
		TransactionType: "purchase",
		Quantity:        5,
		PricePerUnit:    59.99,
	})
	require.NoError(t, err)
	assert.Equal(t, "Black Toner", resp.ItemName)
	assert.Equal(t, "Main Office", resp.LocationName)
	assert.Equal(t, models.PaymentStatusPending, resp.PaymentStatus)
	assert.InDelta(t, 299.95, resp.TotalAmount, 0.0001)

	qty, status := itemState(t, gdb, 1)
	assert.Equal(t, 10, qty)
	assert.Equal(t, models.ItemStatusInStock, status)
}

func TestCreateSaleDecrementsStockAndStatus(t *testing.T) {
	svc, gdb := newTestService(t)

	resp, err := svc.Create(context.Background(), CreateInput{
		ItemID:          1,
		LocationID:      1,
		TransactionType: "sale",
		Quantity:        8,
		PricePerUnit:    79.99,
		PaymentStatus:   models.PaymentStatusPaid,
	})
	require.NoError(t, err)
	assert.InDelta(t, 639.92, resp.TotalAmount, 0.0001)
	assert.Equal(t, models.PaymentStatusPaid, resp.PaymentStatus)

	qty, status := itemState(t, gdb, 1)
	assert.Equal(t, 2, qty)
	assert.Equal(t, models.ItemStatusLowStock, status)
}

func TestCreateRecordsCustomTypesInertly(t *testing.T) {
	svc, gdb := newTestService(t)

	resp, err := svc.Create(context.Background(), CreateInput{
		ItemID:          1,
		LocationID:      1,
		TransactionType: "restock",
		Quantity:        4,
		PricePerUnit:    25,
		PaymentStatus:   "Partial",
	})
	require.NoError(t, err)
	assert.Equal(t, "restock", resp.TransactionType)
	assert.Equal(t, "Partial", resp.PaymentStatus)
	assert.InDelta(t, 100.0, resp.TotalAmount, 0.0001)

	qty, status := itemState(t, gdb, 1)
	assert.Equal(t, 10, qty)
	assert.Equal(t, models.ItemStatusInStock, status)
}

func TestCreateRejectsUnknownItem(t *testing.T) {
	svc, gdb := newTestService(t)

	_, err := svc.Create(context.Background(), CreateInput{
		ItemID:          99,
		LocationID:      1,
		TransactionType: "sale",
		Quantity:        1,
		PricePerUnit:    10,
	})
	require.Error(t, err)
	var appErr *pkgerrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, pkgerrors.CodeValidation, appErr.Code())

	var count int64
	require.NoError(t, gdb.Model(&models.Transaction{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestCreateRejectsUnknownLocation(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Create(context.Background(), CreateInput{
		ItemID:          1,
		LocationID:      99,
		TransactionType: "purchase",
		Quantity:        1,
		PricePerUnit:    10,
	})
	require.Error(t, err)
	var appErr *pkgerrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, pkgerrors.CodeValidation, appErr.Code())
}

type failingDecrementRepo struct {
	Repository
}

func (f failingDecrementRepo) WithTx(tx *gorm.DB) Repository {
	return failingDecrementRepo{Repository: f.Repository.WithTx(tx)}
}

func (f failingDecrementRepo) DecrementItemQuantity(ctx context.Context, itemID int64, quantity int) error {
	return errors.New("decrement failed")
}

func TestCreateSaleRollsBackWhenDecrementFails(t *testing.T) {
	gdb := setupTransactionsTestDB(t)
	svc, err := NewService(failingDecrementRepo{Repository: NewRepository(gdb)}, gormTxRunner{db: gdb})
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), CreateInput{
		ItemID:          1,
		LocationID:      1,
		TransactionType: "sale",
		Quantity:        2,
		PricePerUnit:    10,
	})
	require.Error(t, err)

	var count int64
	require.NoError(t, gdb.Model(&models.Transaction{}).Count(&count).Error)
	assert.Zero(t, count)

	qty, _ := itemState(t, gdb, 1)
	assert.Equal(t, 10, qty)
}
