package services

import (
	"time"

	"gorm.io/gorm"

	"finboard/internal/models"
	"finboard/internal/money"
	"finboard/internal/pagination"
)

// NewTransaction holds validated input for adding a ledger entry.
// Amount is non-negative; the sign is derived from Type.
type NewTransaction struct {
	Description string
	Amount      money.Cents
	Type        models.TransactionType
	Category    models.Category
	Date        time.Time
	Account     models.Account
	Seeded      bool
}

// TransactionFilter holds optional filter parameters for listing transactions.
type TransactionFilter struct {
	FromDate *time.Time
	ToDate   *time.Time
	Type     *models.TransactionType
	Category *models.Category
	Account  *models.Account
}

// LedgerTotals is the aggregate financial state derived by folding over
// the transaction list. Nothing here is stored: totals are recomputed
// on every read so they can never drift from the ledger.
type LedgerTotals struct {
	Income   money.Cents `json:"income"`
	Expenses money.Cents `json:"expenses"`
	Balance  money.Cents `json:"balance"`
	Savings  money.Cents `json:"savings"`
}

// LedgerServicer defines the contract for the transaction ledger.
type LedgerServicer interface {
	AddTransaction(input NewTransaction) (*models.Transaction, error)
	AddTransactionTx(tx *gorm.DB, input NewTransaction) (*models.Transaction, error)
	GetTransactions(page pagination.PageRequest, filter TransactionFilter) (*pagination.PageResponse[models.Transaction], error)
	GetTransactionByID(id uint) (*models.Transaction, error)
	DeleteTransaction(id uint) error
	CategoryTotal(category models.Category) (money.Cents, error)
	Totals() (*LedgerTotals, error)
}

// BudgetComparison pairs a category's limit with what the ledger says
// was actually spent on it.
type BudgetComparison struct {
	Category  models.Category `json:"category"`
	Limit     money.Cents     `json:"limit"`
	Spent     money.Cents     `json:"spent"`
	Remaining money.Cents     `json:"remaining"`
	Over      bool            `json:"over"`
}

// BudgetServicer defines the contract for per-category budget limits.
type BudgetServicer interface {
	SetLimit(category models.Category, limit money.Cents) (*models.CategoryBudget, error)
	RemoveLimit(category models.Category) error
	GetBudgets() ([]models.CategoryBudget, error)
	Comparison() ([]BudgetComparison, error)
}

// NewGoal holds validated input for creating a savings goal.
type NewGoal struct {
	Name     string
	Target   money.Cents
	Current  money.Cents
	Deadline time.Time
}

// GoalServicer defines the contract for savings goals.
type GoalServicer interface {
	AddGoal(input NewGoal) (*models.Goal, error)
	GetGoals() ([]models.Goal, error)
	GetGoalByID(id uint) (*models.Goal, error)
	RemoveGoal(id uint) error
	ApplyIncome(tx *gorm.DB, amount money.Cents) error
	Contribute(goalID uint, amount money.Cents) (*models.Goal, error)
}

// ScoreInput is the raw financial state fed into the health engine.
type ScoreInput struct {
	Income   money.Cents
	Expenses money.Cents
	Savings  money.Cents
	Debt     money.Cents
}

// Ratios are the intermediate values behind the health score. All rate
// fields are fractions (0.2 means 20%); EmergencyFundMonths is months
// of expenses covered by savings, capped so it stays JSON-safe.
type Ratios struct {
	SavingsRate         float64 `json:"savings_rate"`
	DebtToIncome        float64 `json:"debt_to_income"`
	ExpenseRatio        float64 `json:"expense_ratio"`
	EmergencyFundMonths float64 `json:"emergency_fund_months"`
}

// Severity levels for recommendations.
const (
	SeverityPositive = "positive"
	SeverityWarning  = "warning"
	SeverityInfo     = "info"
)

// Recommendation is a single piece of human-readable advice.
type Recommendation struct {
	Title    string `json:"title"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
}

// HealthServicer defines the contract for the financial health engine.
// All methods are pure functions over their inputs.
type HealthServicer interface {
	Score(in ScoreInput) float64
	Ratios(in ScoreInput) Ratios
	Recommend(r Ratios) []Recommendation
}

// NewProfile holds the onboarding wizard's input.
type NewProfile struct {
	Name            string
	InitialBalance  money.Cents
	InitialSavings  money.Cents
	MonthlyIncome   money.Cents
	MonthlyExpenses money.Cents
	Debt            money.Cents
}

// UpdateProfile holds optional settings changes; nil fields are left unchanged.
type UpdateProfile struct {
	Name            *string
	MonthlyIncome   *money.Cents
	MonthlyExpenses *money.Cents
	Debt            *money.Cents
}

// ProfileServicer defines the contract for the user profile and lifecycle.
type ProfileServicer interface {
	CreateProfile(input NewProfile) (*models.Profile, error)
	GetProfile() (*models.Profile, error)
	UpdateProfile(input UpdateProfile) (*models.Profile, error)
	Reset() error
}

// SnapshotServicer defines the contract for whole-state export/import.
type SnapshotServicer interface {
	Export() (*Snapshot, error)
	Import(raw []byte) error
}
