// Package env reads raw process environment values. It exists for the few
// reads that happen before the typed config has been loaded.
package env

import "os"

// Get returns the named environment value, or fallback when it is unset
// or empty.
func Get(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
