package store

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// lockingClause returns a SELECT ... FOR UPDATE clause where the dialect
// supports it. SQLite serializes writers on its own and rejects the FOR
// UPDATE syntax, so it gets no clause.
func lockingClause(db *gorm.DB) []clause.Expression {
	if db.Dialector.Name() == "sqlite" {
		return nil
	}
	return []clause.Expression{clause.Locking{Strength: "UPDATE"}}
}
