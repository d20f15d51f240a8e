package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	apperrors "finboard/internal/errors"
	"finboard/internal/models"
	"finboard/internal/money"
	"finboard/internal/pagination"
)

// ledgerService handles the transaction ledger. All derived values
// (balances, income/expense totals, per-category spend) are computed by
// aggregating over the transaction list, never kept as counters.
type ledgerService struct {
	db          *gorm.DB
	goalService GoalServicer
}

// NewLedgerService creates a new LedgerServicer.
func NewLedgerService(db *gorm.DB, goalService GoalServicer) LedgerServicer {
	return &ledgerService{
		db:          db,
		goalService: goalService,
	}
}

// AddTransaction validates and records a new transaction. Income
// amounts are also broadcast to every goal's progress.
func (s *ledgerService) AddTransaction(input NewTransaction) (*models.Transaction, error) {
	var result *models.Transaction
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var txErr error
		result, txErr = s.AddTransactionTx(tx, input)
		return txErr
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// AddTransactionTx records a transaction inside an existing database
// transaction, so callers like the onboarding seeder can batch entries
// atomically.
func (s *ledgerService) AddTransactionTx(tx *gorm.DB, input NewTransaction) (*models.Transaction, error) {
	if input.Description == "" {
		return nil, apperrors.WithMessage(apperrors.ErrValidation, "description is required")
	}
	if input.Amount < 0 {
		return nil, apperrors.ErrInvalidAmount
	}
	if input.Type != models.TransactionTypeIncome && input.Type != models.TransactionTypeExpense {
		return nil, apperrors.WithMessage(apperrors.ErrValidation, "type must be income or expense")
	}
	if !input.Category.IsValid() {
		return nil, unknownCategoryError(string(input.Category))
	}
	if input.Account == "" {
		input.Account = models.AccountPrimary
	}
	if input.Account != models.AccountPrimary && input.Account != models.AccountSecondary {
		return nil, apperrors.WithMessage(apperrors.ErrValidation, "account must be primary or secondary")
	}
	if input.Date.IsZero() {
		input.Date = time.Now()
	}

	transaction := &models.Transaction{
		Date:        input.Date,
		Description: input.Description,
		Type:        input.Type,
		Amount:      input.Amount,
		Category:    input.Category,
		Account:     input.Account,
		Seeded:      input.Seeded,
	}

	if err := tx.Create(transaction).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if input.Type == models.TransactionTypeIncome && input.Amount > 0 {
		if err := s.goalService.ApplyIncome(tx, input.Amount); err != nil {
			return nil, err
		}
	}

	return transaction, nil
}

// GetTransactions retrieves a paginated, filtered list of transactions,
// most recent first.
func (s *ledgerService) GetTransactions(page pagination.PageRequest, filter TransactionFilter) (*pagination.PageResponse[models.Transaction], error) {
	page.Defaults()

	base := s.db.Model(&models.Transaction{})
	base = applyTransactionFilters(base, filter)

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var transactions []models.Transaction
	if err := base.Scopes(pagination.Paginate(page)).
		Order("date DESC, id DESC").
		Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(transactions, page.Page, page.PageSize, totalItems)
	return &result, nil
}

func applyTransactionFilters(q *gorm.DB, f TransactionFilter) *gorm.DB {
	if f.FromDate != nil {
		q = q.Where("date >= ?", *f.FromDate)
	}
	if f.ToDate != nil {
		q = q.Where("date <= ?", *f.ToDate)
	}
	if f.Type != nil {
		q = q.Where("type = ?", *f.Type)
	}
	if f.Category != nil {
		q = q.Where("category = ?", *f.Category)
	}
	if f.Account != nil {
		q = q.Where("account = ?", *f.Account)
	}
	return q
}

// GetTransactionByID retrieves a single transaction.
func (s *ledgerService) GetTransactionByID(id uint) (*models.Transaction, error) {
	var transaction models.Transaction
	if err := s.db.First(&transaction, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTransactionNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &transaction, nil
}

// DeleteTransaction removes a transaction. Because totals are derived,
// removing the row exactly reverses the transaction's effect on every
// balance and total. Goal progress gained from income is deliberately
// left in place, matching the dashboard's observed behavior.
func (s *ledgerService) DeleteTransaction(id uint) error {
	transaction, err := s.GetTransactionByID(id)
	if err != nil {
		return err
	}

	if err := s.db.Delete(transaction).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// CategoryTotal returns the sum of expense amounts recorded against a
// category. Recomputed on demand, never cached.
func (s *ledgerService) CategoryTotal(category models.Category) (money.Cents, error) {
	if !category.IsValid() {
		return 0, unknownCategoryError(string(category))
	}

	var total int64
	err := s.db.Model(&models.Transaction{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("category = ? AND type = ?", category, models.TransactionTypeExpense).
		Scan(&total).Error
	if err != nil {
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return money.Cents(total), nil
}

// Totals folds the whole transaction list into the aggregate financial
// state: income and expense totals plus the primary (balance) and
// secondary (savings) account balances.
func (s *ledgerService) Totals() (*LedgerTotals, error) {
	var rows []struct {
		Type    models.TransactionType
		Account models.Account
		Total   int64
	}
	err := s.db.Model(&models.Transaction{}).
		Select("type, account, COALESCE(SUM(amount), 0) AS total").
		Group("type").Group("account").
		Scan(&rows).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	totals := &LedgerTotals{}
	for _, row := range rows {
		amount := money.Cents(row.Total)
		signed := amount
		if row.Type == models.TransactionTypeExpense {
			totals.Expenses += amount
			signed = -amount
		} else {
			totals.Income += amount
		}
		if row.Account == models.AccountSecondary {
			totals.Savings += signed
		} else {
			totals.Balance += signed
		}
	}
	return totals, nil
}

// unknownCategoryError builds an UNKNOWN_CATEGORY error, suggesting the
// closest valid category when the input looks like a typo.
func unknownCategoryError(input string) *apperrors.AppError {
	msg := fmt.Sprintf("unknown category %q", input)
	if suggestion := models.SuggestCategory(input); suggestion != "" {
		msg = fmt.Sprintf("%s (did you mean %q?)", msg, suggestion)
	}
	return apperrors.WithMessage(apperrors.ErrUnknownCategory, msg)
}
