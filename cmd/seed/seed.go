package main

import (
	"context"

	"gorm.io/gorm"

	"github.com/printventory/printventory-backend/pkg/config"
	"github.com/printventory/printventory-backend/pkg/db/models"
	"github.com/printventory/printventory-backend/pkg/logger"
	"github.com/printventory/printventory-backend/pkg/security"
)

func strptr(s string) *string { return &s }

func i64ptr(v int64) *int64 { return &v }

// Seed loads the demo dataset. It is idempotent: a populated users table
// means the data is already in place and the run becomes a no-op.
func Seed(ctx context.Context, gdb *gorm.DB, passwordCfg config.PasswordConfig, logg *logger.Logger) error {
	var userCount int64
	if err := gdb.WithContext(ctx).Model(&models.User{}).Count(&userCount).Error; err != nil {
		return err
	}
	if userCount > 0 {
		logg.Info(ctx, "database already seeded, skipping")
		return nil
	}

	return gdb.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		adminHash, err := security.HashPassword("admin123", passwordCfg)
		if err != nil {
			return err
		}
		managerHash, err := security.HashPassword("manager123", passwordCfg)
		if err != nil {
			return err
		}
		usersRows := []models.User{
			{Username: "admin", PasswordHash: adminHash, Email: "admin@ims.com", Role: "Admin"},
			{Username: "manager", PasswordHash: managerHash, Email: "manager@ims.com", Role: "Manager"},
		}
		if err := tx.Create(&usersRows).Error; err != nil {
			return err
		}

		categories := []models.Category{
			{Name: "Toner", Description: strptr("Toner cartridges for printers")},
			{Name: "Paper", Description: strptr("Printing paper and materials")},
			{Name: "Ink", Description: strptr("Ink cartridges")},
			{Name: "Supplies", Description: strptr("General office supplies")},
		}
		if err := tx.Create(&categories).Error; err != nil {
			return err
		}

		locations := []models.Location{
			{Name: "Main School", Address: "123 Education Street, District A"},
			{Name: "Branch School A", Address: "456 Learning Avenue, District B"},
			{Name: "Branch School B", Address: "789 Knowledge Boulevard, District C"},
			{Name: "Central Office", Address: "321 Administration Lane, Downtown"},
		}
		if err := tx.Create(&locations).Error; err != nil {
			return err
		}

		printers := []models.Printer{
			{Model: "HP LaserJet Pro MFP M428fdw", SerialNumber: "SN-HP-001", LocationID: locations[0].ID, Status: models.PrinterStatusActive, Supplies: strptr("Toner, Paper")},
			{Model: "Canon imagePRESS C165", SerialNumber: "SN-CN-001", LocationID: locations[1].ID, Status: models.PrinterStatusActive, Supplies: strptr("Toner, Ink")},
			{Model: "Xerox VersaLink C405", SerialNumber: "SN-XR-001", LocationID: locations[2].ID, Status: models.PrinterStatusMaintenance, Supplies: strptr("Toner")},
			{Model: "Ricoh MP C3004ex", SerialNumber: "SN-RC-001", LocationID: locations[0].ID, Status: models.PrinterStatusActive, Supplies: strptr("Toner, Paper, Ink")},
			{Model: "Brother MFC-L8900CDW", SerialNumber: "SN-BR-001", LocationID: locations[3].ID, Status: models.PrinterStatusActive, Supplies: strptr("Toner, Paper")},
			{Model: "Epson WorkForce Pro WF-C5790", SerialNumber: "SN-EP-001", LocationID: locations[1].ID, Status: models.PrinterStatusActive, Supplies: strptr("Ink, Paper")},
		}
		if err := tx.Create(&printers).Error; err != nil {
			return err
		}

		items := []models.InventoryItem{
			{Name: "Toner Cartridge Black HP 305A", SKU: "TCB-001", CategoryID: categories[0].ID, Quantity: 150, MinStock: 50, Price: 45.99, LocationID: locations[0].ID, PrinterID: i64ptr(printers[0].ID)},
			{Name: "Toner Cartridge Color Canon 046", SKU: "TCC-001", CategoryID: categories[0].ID, Quantity: 45, MinStock: 50, Price: 55.99, LocationID: locations[1].ID, PrinterID: i64ptr(printers[1].ID)},
			{Name: "Paper A4 500 sheets Premium", SKU: "PA4-500", CategoryID: categories[1].ID, Quantity: 500, MinStock: 200, Price: 5.99, LocationID: locations[0].ID, PrinterID: i64ptr(printers[0].ID)},
			{Name: "Ink Cartridge Epson 603XL", SKU: "IC-001", CategoryID: categories[2].ID, Quantity: 20, MinStock: 30, Price: 25.50, LocationID: locations[2].ID, PrinterID: i64ptr(printers[2].ID)},
			{Name: "Toner Cartridge Brother TN-2420", SKU: "TCB-002", CategoryID: categories[0].ID, Quantity: 80, MinStock: 40, Price: 42.99, LocationID: locations[3].ID, PrinterID: i64ptr(printers[4].ID)},
			{Name: "Paper A4 80gsm 2500 sheets", SKU: "PA4-2500", CategoryID: categories[1].ID, Quantity: 300, MinStock: 150, Price: 22.99, LocationID: locations[0].ID, PrinterID: i64ptr(printers[3].ID)},
			{Name: "Ink Cartridge HP 302XL Black", SKU: "IC-002", CategoryID: categories[2].ID, Quantity: 35, MinStock: 25, Price: 29.99, LocationID: locations[1].ID, PrinterID: i64ptr(printers[5].ID)},
			{Name: "Toner Cartridge Xerox 106R03623", SKU: "TCX-001", CategoryID: categories[0].ID, Quantity: 15, MinStock: 30, Price: 68.99, LocationID: locations[2].ID, PrinterID: i64ptr(printers[2].ID)},
		}
		for i := range items {
			items[i].Status = models.DeriveItemStatus(items[i].Quantity, items[i].MinStock)
		}
		if err := tx.Create(&items).Error; err != nil {
			return err
		}

		txns := []models.Transaction{
			{ItemID: items[0].ID, LocationID: locations[0].ID, TransactionType: models.TransactionTypeSale, Quantity: 50, PricePerUnit: 45.99, TotalAmount: 2299.50, PaymentStatus: models.PaymentStatusPending, Notes: strptr("Delivered to Main School")},
			{ItemID: items[1].ID, LocationID: locations[1].ID, TransactionType: models.TransactionTypeSale, Quantity: 30, PricePerUnit: 55.99, TotalAmount: 1679.70, PaymentStatus: models.PaymentStatusPending, Notes: strptr("Delivered to Branch A")},
			{ItemID: items[2].ID, LocationID: locations[0].ID, TransactionType: models.TransactionTypeSale, Quantity: 100, PricePerUnit: 5.99, TotalAmount: 599.00, PaymentStatus: models.PaymentStatusPaid, PaymentDate: strptr("2024-01-15"), Notes: strptr("Bulk order for Main School")},
			{ItemID: items[3].ID, LocationID: locations[2].ID, TransactionType: models.TransactionTypeSale, Quantity: 15, PricePerUnit: 25.50, TotalAmount: 382.50, PaymentStatus: models.PaymentStatusPending, Notes: strptr("Emergency order")},
			{ItemID: items[4].ID, LocationID: locations[3].ID, TransactionType: models.TransactionTypeSale, Quantity: 40, PricePerUnit: 42.99, TotalAmount: 1719.60, PaymentStatus: models.PaymentStatusPending, Notes: strptr("Monthly supplies")},
		}
		if err := tx.Create(&txns).Error; err != nil {
			return err
		}

		return nil
	})
}
