package models

import "finboard/internal/money"

// Profile holds the single user's onboarding data. It is written once
// by the setup wizard and editable later through settings. The initial
// balances and monthly figures drive the synthetic seed transactions;
// debt feeds the financial health score.
type Profile struct {
	Base
	Name            string      `gorm:"not null" json:"name"`
	InitialBalance  money.Cents `gorm:"not null;default:0" json:"initial_balance"`
	InitialSavings  money.Cents `gorm:"not null;default:0" json:"initial_savings"`
	MonthlyIncome   money.Cents `gorm:"not null;default:0" json:"monthly_income"`
	MonthlyExpenses money.Cents `gorm:"not null;default:0" json:"monthly_expenses"`
	Debt            money.Cents `gorm:"not null;default:0" json:"debt"`
}
