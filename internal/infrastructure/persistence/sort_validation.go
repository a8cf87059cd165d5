package persistence

import (
	"strings"
)

// ValidateSortOrder validates and normalizes the sort order to ASC or DESC.
// Returns "DESC" as the default if the input is invalid or empty.
func ValidateSortOrder(orderDir string) string {
	normalized := strings.ToUpper(strings.TrimSpace(orderDir))
	if normalized == "ASC" {
		return "ASC"
	}
	return "DESC"
}

// ValidateSortField validates the sort field against a whitelist of allowed fields.
// Returns the defaultField if the input is invalid, empty, or not in the whitelist.
func ValidateSortField(sortField string, allowedFields map[string]bool, defaultField string) string {
	trimmed := strings.TrimSpace(sortField)
	if trimmed == "" {
		return defaultField
	}
	if allowedFields[trimmed] {
		return trimmed
	}
	return defaultField
}

// CommonSortFields contains fields common to most entities
var CommonSortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
}

// CustomerSortFields contains allowed sort fields for customers
var CustomerSortFields = map[string]bool{
	"id":                  true,
	"created_at":          true,
	"updated_at":          true,
	"external_id":         true,
	"name":                true,
	"email":               true,
	"segment":             true,
	"status":              true,
	"risk_level":          true,
	"last_interaction_at": true,
}

// CaseSortFields contains allowed sort fields for customer cases
var CaseSortFields = map[string]bool{
	"id":          true,
	"created_at":  true,
	"updated_at":  true,
	"case_number": true,
	"status":      true,
	"priority":    true,
	"category":    true,
	"resolved_at": true,
}

// InteractionSortFields contains allowed sort fields for interactions
var InteractionSortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
	"channel":    true,
	"direction":  true,
	"agent_id":   true,
}

// Customer360SortFields contains allowed sort fields for consolidated view rows
var Customer360SortFields = map[string]bool{
	"customer_id": true,
	"external_id": true,
	"name":        true,
	"status":      true,
	"segment":     true,
	"created_at":  true,
	"updated_at":  true,
}
