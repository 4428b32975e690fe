package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "github.com/printventory/printventory-backend/pkg/errors"
)

func newTestService(t *testing.T) Service {
	t.Helper()
	svc, err := NewService(NewRepository(setupCatalogTestDB(t)))
	require.NoError(t, err)
	return svc
}

func TestCreateCategoryConflict(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.CreateCategory(ctx, CategoryInput{Name: "Toner"})
	require.NoError(t, err)

	_, err = svc.CreateCategory(ctx, CategoryInput{Name: "Toner"})
	require.Error(t, err)
	var appErr *pkgerrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, pkgerrors.CodeConflict, appErr.Code())
	assert.Equal(t, "Category already exists", appErr.Message())
}

func TestListLocationsIncludesCounts(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	loc, err := svc.CreateLocation(ctx, LocationInput{Name: "Main Office", Address: "1 First St"})
	require.NoError(t, err)
	assert.Zero(t, loc.Items)
	assert.Zero(t, loc.Printers)

	_, err = svc.CreatePrinter(ctx, PrinterInput{Model: "LaserJet 400", SerialNumber: "SN-1", LocationID: loc.ID})
	require.NoError(t, err)

	locations, err := svc.ListLocations(ctx)
	require.NoError(t, err)
	require.Len(t, locations, 1)
	assert.Equal(t, int64(1), locations[0].Printers)
	assert.Zero(t, locations[0].Items)
}

func TestUpdateLocationNotFound(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.UpdateLocation(context.Background(), 404, LocationInput{Name: "Ghost", Address: "Nowhere"})
	require.Error(t, err)
	var appErr *pkgerrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, pkgerrors.CodeNotFound, appErr.Code())
}

func TestCreatePrinterDefaultsStatusAndJoinsLocation(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	loc, err := svc.CreateLocation(ctx, LocationInput{Name: "Main Office", Address: "1 First St"})
	require.NoError(t, err)

	printer, err := svc.CreatePrinter(ctx, PrinterInput{Model: "LaserJet 400", SerialNumber: "SN-1", LocationID: loc.ID})
	require.NoError(t, err)
	assert.Equal(t, "Active", printer.Status)
	assert.Equal(t, "Main Office", printer.LocationName)
}

func TestCreatePrinterDuplicateSerial(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	loc, err := svc.CreateLocation(ctx, LocationInput{Name: "Main Office", Address: "1 First St"})
	require.NoError(t, err)

	_, err = svc.CreatePrinter(ctx, PrinterInput{Model: "LaserJet 400", SerialNumber: "SN-1", LocationID: loc.ID})
	require.NoError(t, err)

	_, err = svc.CreatePrinter(ctx, PrinterInput{Model: "LaserJet 500", SerialNumber: "SN-1", LocationID: loc.ID})
	require.Error(t, err)
	var appErr *pkgerrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, pkgerrors.CodeConflict, appErr.Code())
	assert.Equal(t, "Serial number already exists", appErr.Message())
}

func TestDeleteLocationIsPermissive(t *testing.T) {
	svc := newTestService(t)
	require.NoError(t, svc.DeleteLocation(context.Background(), 9999))
}
