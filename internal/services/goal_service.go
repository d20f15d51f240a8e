package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "finboard/internal/errors"
	"finboard/internal/models"
	"finboard/internal/money"
)

// goalService handles savings goals.
type goalService struct {
	db *gorm.DB
}

// NewGoalService creates a new GoalServicer.
func NewGoalService(db *gorm.DB) GoalServicer {
	return &goalService{db: db}
}

// AddGoal creates a new savings goal.
func (s *goalService) AddGoal(input NewGoal) (*models.Goal, error) {
	if input.Name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrValidation, "goal name is required")
	}
	if input.Target <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrValidation, "target must be greater than zero")
	}
	if input.Current < 0 {
		return nil, apperrors.WithMessage(apperrors.ErrValidation, "current amount cannot be negative")
	}
	if input.Deadline.IsZero() {
		return nil, apperrors.WithMessage(apperrors.ErrValidation, "deadline is required")
	}

	goal := &models.Goal{
		Name:     input.Name,
		Target:   input.Target,
		Current:  input.Current,
		Deadline: input.Deadline,
	}
	if err := s.db.Create(goal).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return goal, nil
}

// GetGoals returns all goals, oldest first.
func (s *goalService) GetGoals() ([]models.Goal, error) {
	var goals []models.Goal
	if err := s.db.Order("id ASC").Find(&goals).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return goals, nil
}

// GetGoalByID returns a single goal.
func (s *goalService) GetGoalByID(id uint) (*models.Goal, error) {
	var goal models.Goal
	if err := s.db.First(&goal, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrGoalNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &goal, nil
}

// RemoveGoal deletes a goal. Removing an unknown goal reports
// GOAL_NOT_FOUND rather than failing hard.
func (s *goalService) RemoveGoal(id uint) error {
	result := s.db.Delete(&models.Goal{}, id)
	if result.Error != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrGoalNotFound
	}
	return nil
}

// ApplyIncome adds the amount to every goal's progress. This is the
// dashboard's legacy broadcast behavior: income is not tied to any one
// goal, it advances all of them. Runs inside the caller's database
// transaction so a failed ledger write never moves goal progress.
func (s *goalService) ApplyIncome(tx *gorm.DB, amount money.Cents) error {
	if amount <= 0 {
		return nil
	}
	err := tx.Model(&models.Goal{}).
		Session(&gorm.Session{AllowGlobalUpdate: true}).
		Update("current", gorm.Expr("current + ?", int64(amount))).Error
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// Contribute adds an amount to one specific goal. This is the explicit
// alternative to the income broadcast for callers that know which goal
// the money is for.
func (s *goalService) Contribute(goalID uint, amount money.Cents) (*models.Goal, error) {
	if amount <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrValidation, "contribution must be greater than zero")
	}

	goal, err := s.GetGoalByID(goalID)
	if err != nil {
		return nil, err
	}

	if err := s.db.Model(goal).Update("current", gorm.Expr("current + ?", int64(amount))).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	// Re-read so the returned goal reflects the applied expression.
	return s.GetGoalByID(goalID)
}
