package models

import "time"

// Base contains common columns for all tables. IDs are auto-incremented
// integers, so they are unique and monotonically assigned. Deletes are
// hard deletes: a removed row must stop contributing to every derived
// total immediately.
type Base struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
