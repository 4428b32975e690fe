package db

import "strings"

// IsUniqueViolation reports whether the provided error references a SQLite
// unique constraint. When column is provided (e.g. "inventory_items.sku"), the
// helper looks for that column in the error message.
func IsUniqueViolation(err error, column string) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	if !strings.Contains(msg, "UNIQUE constraint failed") {
		return false
	}
	if column != "" {
		return strings.Contains(msg, column)
	}
	return true
}
