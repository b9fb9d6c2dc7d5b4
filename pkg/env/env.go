// Package env reads raw process environment values. It covers the few knobs
// that sit outside the typed config, like the logger output format, which is
// needed before config loading can run.
package env

import "os"

// Get returns the named variable, or fallback when it is unset or empty.
func Get(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return fallback
}
