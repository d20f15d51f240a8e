package services

import (
	"encoding/json"
	"time"

	"gorm.io/gorm"

	apperrors "finboard/internal/errors"
	"finboard/internal/models"
	"finboard/internal/money"
)

// snapshotDateLayout is the calendar-date format used in snapshot files.
const snapshotDateLayout = "2006-01-02"

// ExportFilename is the name the export file is served under.
const ExportFilename = "financial_data.json"

// Snapshot is the whole-state blob written to and read from
// financial_data.json. Every field is optional on import; missing
// fields default to zero or empty. Amounts are decimal numbers.
type Snapshot struct {
	Balance          money.Cents           `json:"balance"`
	Savings          money.Cents           `json:"savings"`
	Income           money.Cents           `json:"income"`
	Expenses         money.Cents           `json:"expenses"`
	Debt             money.Cents           `json:"debt"`
	Transactions     []SnapshotTransaction `json:"transactions"`
	Goals            []SnapshotGoal        `json:"goals"`
	BudgetCategories []SnapshotBudget      `json:"budgetCategories"`
	UserData         *SnapshotUser         `json:"userData,omitempty"`
}

// SnapshotTransaction is a ledger entry in blob form. Amount is signed:
// positive for income, negative for expense. Type is redundant with the
// sign and optional on import.
type SnapshotTransaction struct {
	ID          uint        `json:"id,omitempty"`
	Date        string      `json:"date"`
	Description string      `json:"description"`
	Amount      money.Cents `json:"amount"`
	Type        string      `json:"type,omitempty"`
	Category    string      `json:"category"`
	Account     string      `json:"account,omitempty"`
}

// SnapshotGoal is a savings goal in blob form.
type SnapshotGoal struct {
	ID       uint        `json:"id,omitempty"`
	Name     string      `json:"name"`
	Target   money.Cents `json:"target"`
	Current  money.Cents `json:"current"`
	Deadline string      `json:"deadline"`
}

// SnapshotBudget is a category limit in blob form.
type SnapshotBudget struct {
	Category string      `json:"category"`
	Limit    money.Cents `json:"limit"`
}

// SnapshotUser is the profile in blob form.
type SnapshotUser struct {
	Name            string      `json:"name"`
	InitialBalance  money.Cents `json:"initialBalance"`
	InitialSavings  money.Cents `json:"initialSavings"`
	MonthlyIncome   money.Cents `json:"monthlyIncome"`
	MonthlyExpenses money.Cents `json:"monthlyExpenses"`
}

// snapshotService implements whole-state export and import. The
// persisted aggregate is always replaced wholesale: export serializes
// everything, import wipes and restores everything inside one database
// transaction.
type snapshotService struct {
	db     *gorm.DB
	ledger LedgerServicer
}

// NewSnapshotService creates a new SnapshotServicer.
func NewSnapshotService(db *gorm.DB, ledger LedgerServicer) SnapshotServicer {
	return &snapshotService{db: db, ledger: ledger}
}

// Export builds the full snapshot blob. Totals are derived from the
// ledger at export time, so the blob is internally consistent even
// though only the transaction list is authoritative.
func (s *snapshotService) Export() (*Snapshot, error) {
	totals, err := s.ledger.Totals()
	if err != nil {
		return nil, err
	}

	snapshot := &Snapshot{
		Balance:          totals.Balance,
		Savings:          totals.Savings,
		Income:           totals.Income,
		Expenses:         totals.Expenses,
		Transactions:     []SnapshotTransaction{},
		Goals:            []SnapshotGoal{},
		BudgetCategories: []SnapshotBudget{},
	}

	var transactions []models.Transaction
	if err := s.db.Order("date DESC, id DESC").Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	for _, t := range transactions {
		snapshot.Transactions = append(snapshot.Transactions, SnapshotTransaction{
			ID:          t.ID,
			Date:        t.Date.Format(snapshotDateLayout),
			Description: t.Description,
			Amount:      t.Signed(),
			Type:        string(t.Type),
			Category:    string(t.Category),
			Account:     string(t.Account),
		})
	}

	var goals []models.Goal
	if err := s.db.Order("id ASC").Find(&goals).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	for _, g := range goals {
		snapshot.Goals = append(snapshot.Goals, SnapshotGoal{
			ID:       g.ID,
			Name:     g.Name,
			Target:   g.Target,
			Current:  g.Current,
			Deadline: g.Deadline.Format(snapshotDateLayout),
		})
	}

	var budgets []models.CategoryBudget
	if err := s.db.Order("category ASC").Find(&budgets).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	for _, b := range budgets {
		snapshot.BudgetCategories = append(snapshot.BudgetCategories, SnapshotBudget{
			Category: string(b.Category),
			Limit:    b.Limit,
		})
	}

	var profile models.Profile
	if err := s.db.First(&profile).Error; err == nil {
		snapshot.Debt = profile.Debt
		snapshot.UserData = &SnapshotUser{
			Name:            profile.Name,
			InitialBalance:  profile.InitialBalance,
			InitialSavings:  profile.InitialSavings,
			MonthlyIncome:   profile.MonthlyIncome,
			MonthlyExpenses: profile.MonthlyExpenses,
		}
	}

	return snapshot, nil
}

// Import replaces the entire aggregate state with the contents of a
// snapshot file. A blob that fails to parse leaves the in-memory and
// stored state untouched; a blob that parses replaces everything
// atomically. Goal progress is restored as stored, not re-derived from
// the imported income transactions.
func (s *snapshotService) Import(raw []byte) error {
	var snapshot Snapshot
	if err := json.Unmarshal(raw, &snapshot); err != nil {
		return apperrors.Wrap(apperrors.ErrMalformedSnapshot, err)
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		for _, model := range []interface{}{
			&models.Transaction{},
			&models.Goal{},
			&models.CategoryBudget{},
			&models.Profile{},
		} {
			if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(model).Error; err != nil {
				return apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
		}

		for _, st := range snapshot.Transactions {
			transaction := restoreTransaction(st)
			if err := tx.Create(transaction).Error; err != nil {
				return apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
		}

		for _, sg := range snapshot.Goals {
			goal := &models.Goal{
				Name:     sg.Name,
				Target:   sg.Target,
				Current:  sg.Current,
				Deadline: parseSnapshotDate(sg.Deadline),
			}
			goal.ID = sg.ID
			if err := tx.Create(goal).Error; err != nil {
				return apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
		}

		for _, sb := range snapshot.BudgetCategories {
			category := models.Category(sb.Category)
			if !category.IsValid() {
				category = models.CategoryOther
			}
			budget := &models.CategoryBudget{Category: category, Limit: sb.Limit}
			if err := tx.Create(budget).Error; err != nil {
				return apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
		}

		// Restore the profile when present; a bare debt figure still
		// needs a row to live on. Missing debt defaults to zero.
		if snapshot.UserData != nil || snapshot.Debt != 0 {
			profile := &models.Profile{Debt: snapshot.Debt}
			if u := snapshot.UserData; u != nil {
				profile.Name = u.Name
				profile.InitialBalance = u.InitialBalance
				profile.InitialSavings = u.InitialSavings
				profile.MonthlyIncome = u.MonthlyIncome
				profile.MonthlyExpenses = u.MonthlyExpenses
			}
			if err := tx.Create(profile).Error; err != nil {
				return apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
		}

		return nil
	})
}

// restoreTransaction maps a blob entry back to a ledger row, tolerating
// partial data: a missing type is inferred from the amount's sign, an
// unknown category falls back to Other, a missing account defaults to
// primary.
func restoreTransaction(st SnapshotTransaction) *models.Transaction {
	transactionType := models.TransactionType(st.Type)
	if transactionType != models.TransactionTypeIncome && transactionType != models.TransactionTypeExpense {
		if st.Amount < 0 {
			transactionType = models.TransactionTypeExpense
		} else {
			transactionType = models.TransactionTypeIncome
		}
	}

	amount := st.Amount
	if amount < 0 {
		amount = -amount
	}

	category := models.Category(st.Category)
	if !category.IsValid() {
		category = models.CategoryOther
	}

	account := models.Account(st.Account)
	if account != models.AccountPrimary && account != models.AccountSecondary {
		account = models.AccountPrimary
	}

	transaction := &models.Transaction{
		Date:        parseSnapshotDate(st.Date),
		Description: st.Description,
		Type:        transactionType,
		Amount:      amount,
		Category:    category,
		Account:     account,
	}
	transaction.ID = st.ID
	return transaction
}

// parseSnapshotDate accepts calendar dates and RFC 3339 timestamps;
// anything else falls back to now rather than failing the import.
func parseSnapshotDate(s string) time.Time {
	if t, err := time.Parse(snapshotDateLayout, s); err == nil {
		return t
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t
	}
	return time.Now()
}
