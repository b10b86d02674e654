package services

import (
	"strings"

	"gorm.io/gorm"
)

// Searchable text columns per entity.
var (
	customerSearchColumns = []string{"code", "name", "phone", "city"}
	orderSearchColumns    = []string{"code", "customer_code", "saree_type", "payment_status", "delivery_status"}
	followUpSearchColumns = []string{"customer_code", "notes", "status"}
)

// applySearch adds a case-insensitive substring match OR-ed across columns.
func applySearch(db *gorm.DB, q string, columns []string) *gorm.DB {
	q = strings.TrimSpace(q)
	if q == "" {
		return db
	}
	like := "%" + strings.ToLower(q) + "%"
	conds := make([]string, len(columns))
	args := make([]interface{}, len(columns))
	for i, col := range columns {
		conds[i] = "LOWER(" + col + ") LIKE ?"
		args[i] = like
	}
	return db.Where("("+strings.Join(conds, " OR ")+")", args...)
}
