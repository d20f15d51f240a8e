package services

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	apperrors "finboard/internal/errors"
	"finboard/internal/models"
	"finboard/internal/money"
)

// budgetService handles per-category budget limits. It never stores
// spent amounts; Comparison asks the ledger every time.
type budgetService struct {
	db     *gorm.DB
	ledger LedgerServicer
}

// NewBudgetService creates a new BudgetServicer.
func NewBudgetService(db *gorm.DB, ledger LedgerServicer) BudgetServicer {
	return &budgetService{db: db, ledger: ledger}
}

// SetLimit sets the spending limit for a category. A category can have
// at most one limit; setting it again overwrites the previous value
// (last write wins).
func (s *budgetService) SetLimit(category models.Category, limit money.Cents) (*models.CategoryBudget, error) {
	if !category.IsValid() {
		return nil, unknownCategoryError(string(category))
	}
	if limit < 0 {
		return nil, apperrors.ErrInvalidAmount
	}

	budget := &models.CategoryBudget{
		Category: category,
		Limit:    limit,
	}
	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "category"}},
		DoUpdates: clause.AssignmentColumns([]string{"limit_cents", "updated_at"}),
	}).Create(budget).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	// Re-read so the caller sees the surviving row, not the insert attempt.
	var saved models.CategoryBudget
	if err := s.db.Where("category = ?", category).First(&saved).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &saved, nil
}

// RemoveLimit removes a category's budget limit. Removing a category
// that has no limit reports BUDGET_NOT_FOUND rather than failing hard.
func (s *budgetService) RemoveLimit(category models.Category) error {
	result := s.db.Where("category = ?", category).Delete(&models.CategoryBudget{})
	if result.Error != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrBudgetNotFound
	}
	return nil
}

// GetBudgets returns all tracked category limits.
func (s *budgetService) GetBudgets() ([]models.CategoryBudget, error) {
	var budgets []models.CategoryBudget
	if err := s.db.Order("category ASC").Find(&budgets).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return budgets, nil
}

// Comparison returns limit-vs-spent for every tracked category. Spent
// is recomputed from the ledger on each call.
func (s *budgetService) Comparison() ([]BudgetComparison, error) {
	budgets, err := s.GetBudgets()
	if err != nil {
		return nil, err
	}

	comparisons := make([]BudgetComparison, 0, len(budgets))
	for _, budget := range budgets {
		spent, err := s.ledger.CategoryTotal(budget.Category)
		if err != nil {
			return nil, err
		}
		comparisons = append(comparisons, BudgetComparison{
			Category:  budget.Category,
			Limit:     budget.Limit,
			Spent:     spent,
			Remaining: budget.Limit - spent,
			Over:      spent > budget.Limit,
		})
	}
	return comparisons, nil
}
