// Package shared provides common utility functions used across
// multiple packages in the nsxfint codebase.
package shared

import (
	"strconv"
	"strings"
)

// NormalizeColumnName trims surrounding whitespace and maps the Usage
// Meter header alias "#Name" to the canonical "Name".
func NormalizeColumnName(value string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "#Name" {
		return "Name"
	}
	return trimmed
}

// ParseUsageMask parses a raw NsxFInt cell. Empty cells and the "-"
// placeholder mean no recorded usage and normalize to zero; anything
// else must be a non-negative integer.
func ParseUsageMask(value string) (uint64, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" || trimmed == "-" {
		return 0, nil
	}
	return strconv.ParseUint(trimmed, 10, 64)
}
