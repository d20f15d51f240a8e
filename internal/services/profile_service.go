package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "finboard/internal/errors"
	"finboard/internal/models"
)

// profileService handles the single user profile and the application
// lifecycle around it: onboarding with seed transactions, settings
// updates, and full reset.
type profileService struct {
	db     *gorm.DB
	ledger LedgerServicer
}

// NewProfileService creates a new ProfileServicer.
func NewProfileService(db *gorm.DB, ledger LedgerServicer) ProfileServicer {
	return &profileService{db: db, ledger: ledger}
}

// CreateProfile runs the onboarding wizard's commit step: it stores the
// profile and synthesizes the seed transactions that give the ledger
// its starting balances. Creating a second profile is rejected; use
// UpdateProfile for settings changes or Reset to start over.
func (s *profileService) CreateProfile(input NewProfile) (*models.Profile, error) {
	if input.Name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrValidation, "name is required")
	}
	if input.InitialBalance < 0 || input.InitialSavings < 0 ||
		input.MonthlyIncome < 0 || input.MonthlyExpenses < 0 || input.Debt < 0 {
		return nil, apperrors.ErrInvalidAmount
	}

	var count int64
	if err := s.db.Model(&models.Profile{}).Count(&count).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count > 0 {
		return nil, apperrors.ErrProfileExists
	}

	profile := &models.Profile{
		Name:            input.Name,
		InitialBalance:  input.InitialBalance,
		InitialSavings:  input.InitialSavings,
		MonthlyIncome:   input.MonthlyIncome,
		MonthlyExpenses: input.MonthlyExpenses,
		Debt:            input.Debt,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(profile).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return s.seedTransactions(tx, input)
	})
	if err != nil {
		return nil, err
	}
	return profile, nil
}

// seedTransactions translates the onboarding figures into ledger
// entries so every derived total starts from real transactions.
func (s *profileService) seedTransactions(tx *gorm.DB, input NewProfile) error {
	now := time.Now()
	seeds := []NewTransaction{
		{Description: "Initial balance", Amount: input.InitialBalance, Type: models.TransactionTypeIncome, Category: models.CategoryOther, Account: models.AccountPrimary},
		{Description: "Initial savings", Amount: input.InitialSavings, Type: models.TransactionTypeIncome, Category: models.CategorySavings, Account: models.AccountSecondary},
		{Description: "Monthly income", Amount: input.MonthlyIncome, Type: models.TransactionTypeIncome, Category: models.CategoryOther, Account: models.AccountPrimary},
		{Description: "Monthly expenses", Amount: input.MonthlyExpenses, Type: models.TransactionTypeExpense, Category: models.CategoryOther, Account: models.AccountPrimary},
	}

	for _, seed := range seeds {
		if seed.Amount <= 0 {
			continue
		}
		seed.Date = now
		seed.Seeded = true
		if _, err := s.ledger.AddTransactionTx(tx, seed); err != nil {
			return err
		}
	}
	return nil
}

// GetProfile returns the stored profile.
func (s *profileService) GetProfile() (*models.Profile, error) {
	var profile models.Profile
	if err := s.db.First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &profile, nil
}

// UpdateProfile applies settings changes. Only non-nil fields change;
// initial balances stay fixed because their seed transactions already
// exist in the ledger.
func (s *profileService) UpdateProfile(input UpdateProfile) (*models.Profile, error) {
	profile, err := s.GetProfile()
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if input.Name != nil {
		if *input.Name == "" {
			return nil, apperrors.WithMessage(apperrors.ErrValidation, "name cannot be empty")
		}
		updates["name"] = *input.Name
	}
	if input.MonthlyIncome != nil {
		if *input.MonthlyIncome < 0 {
			return nil, apperrors.ErrInvalidAmount
		}
		updates["monthly_income"] = *input.MonthlyIncome
	}
	if input.MonthlyExpenses != nil {
		if *input.MonthlyExpenses < 0 {
			return nil, apperrors.ErrInvalidAmount
		}
		updates["monthly_expenses"] = *input.MonthlyExpenses
	}
	if input.Debt != nil {
		if *input.Debt < 0 {
			return nil, apperrors.ErrInvalidAmount
		}
		updates["debt"] = *input.Debt
	}

	if len(updates) > 0 {
		if err := s.db.Model(profile).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}
	return profile, nil
}

// Reset wipes all stored data and returns the application to its
// pre-onboarding state.
func (s *profileService) Reset() error {
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
		return nil
	})
}
