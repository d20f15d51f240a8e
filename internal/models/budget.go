package models

import "finboard/internal/money"

// CategoryBudget is a spending limit for a single category. The
// category column is unique: setting a limit for a category that
// already has one overwrites it (last write wins). Spent amounts are
// never stored here; they are always recomputed from the ledger.
type CategoryBudget struct {
	Base
	Category Category    `gorm:"not null;uniqueIndex" json:"category"`
	Limit    money.Cents `gorm:"not null;column:limit_cents" json:"limit"`
}
