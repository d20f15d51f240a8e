package models

import (
	"time"

	"finboard/internal/money"
)

// Goal is a named savings goal. Current grows with posted income and
// explicit contributions; it is never clamped to the target, so
// progress can exceed 100%.
type Goal struct {
	Base
	Name     string      `gorm:"not null" json:"name"`
	Target   money.Cents `gorm:"not null" json:"target"`
	Current  money.Cents `gorm:"not null;default:0" json:"current"`
	Deadline time.Time   `gorm:"not null" json:"deadline"`
}

// Progress returns current/target, unclamped. A zero target yields 0
// rather than a division by zero.
func (g *Goal) Progress() float64 {
	if g.Target <= 0 {
		return 0
	}
	return float64(g.Current) / float64(g.Target)
}
