package controllers

import (
	"net/http"

	"github.com/printventory/printventory-backend/api/responses"
	"github.com/printventory/printventory-backend/api/validators"
	"github.com/printventory/printventory-backend/internal/catalog"
	"github.com/printventory/printventory-backend/pkg/logger"
)

// ListPrinters returns every printer with its site name, newest first.
func ListPrinters(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		printers, err := svc.ListPrinters(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, printers)
	}
}

// CreatePrinter registers a printer at a site.
func CreatePrinter(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req catalog.PrinterInput
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		printer, err := svc.CreatePrinter(r.Context(), req)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, printer)
	}
}

// UpdatePrinter replaces a printer's mutable fields.
func UpdatePrinter(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "printerID")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var req catalog.PrinterInput
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		printer, err := svc.UpdatePrinter(r.Context(), id, req)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, printer)
	}
}

// DeletePrinter removes a printer.
func DeletePrinter(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "printerID")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.DeletePrinter(r.Context(), id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, catalog.DeleteResponse{Message: "Printer deleted successfully"})
	}
}
