package models

import (
	"time"

	"finboard/internal/money"
)

// TransactionType represents the direction of a transaction.
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// Account identifies which balance a transaction applies to. The
// secondary account is the savings pot that feeds the financial health
// score.
type Account string

const (
	AccountPrimary   Account = "primary"
	AccountSecondary Account = "secondary"
)

// Transaction is an immutable ledger entry. Amount is always
// non-negative; the signed effect on a balance is +Amount for income
// and -Amount for expense.
type Transaction struct {
	Base
	Date        time.Time       `gorm:"not null;index" json:"date"`
	Description string          `gorm:"not null" json:"description"`
	Type        TransactionType `gorm:"not null" json:"type"`
	Amount      money.Cents     `gorm:"not null" json:"amount"`
	Category    Category        `gorm:"not null;index" json:"category"`
	Account     Account         `gorm:"not null;default:'primary'" json:"account"`
	Seeded      bool            `gorm:"not null;default:false" json:"seeded,omitempty"`
}

// Signed returns the transaction's effect on its account balance.
func (t *Transaction) Signed() money.Cents {
	if t.Type == TransactionTypeExpense {
		return -t.Amount
	}
	return t.Amount
}
