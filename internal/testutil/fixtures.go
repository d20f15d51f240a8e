package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"finboard/internal/models"
	"finboard/internal/money"

	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestTransaction creates a transaction of the given type, category, and amount (in cents).
func CreateTestTransaction(t *testing.T, db *gorm.DB, txType models.TransactionType, category models.Category, amount money.Cents) *models.Transaction {
	t.Helper()

	tx := &models.Transaction{
		Description: fmt.Sprintf("Test Transaction %d", nextID()),
		Type:        txType,
		Amount:      amount,
		Category:    category,
		Account:     models.AccountPrimary,
		Date:        time.Now(),
	}
	if err := db.Create(tx).Error; err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}
	return tx
}

// CreateTestGoal creates a savings goal with the given target and current amounts (in cents).
func CreateTestGoal(t *testing.T, db *gorm.DB, target, current money.Cents) *models.Goal {
	t.Helper()

	goal := &models.Goal{
		Name:     fmt.Sprintf("Test Goal %d", nextID()),
		Target:   target,
		Current:  current,
		Deadline: time.Now().AddDate(1, 0, 0),
	}
	if err := db.Create(goal).Error; err != nil {
		t.Fatalf("failed to create test goal: %v", err)
	}
	return goal
}

// CreateTestBudget creates a spending limit for the given category (in cents).
func CreateTestBudget(t *testing.T, db *gorm.DB, category models.Category, limit money.Cents) *models.CategoryBudget {
	t.Helper()

	budget := &models.CategoryBudget{
		Category: category,
		Limit:    limit,
	}
	if err := db.Create(budget).Error; err != nil {
		t.Fatalf("failed to create test budget: %v", err)
	}
	return budget
}

// CreateTestProfile creates a profile row directly, without seeding transactions.
func CreateTestProfile(t *testing.T, db *gorm.DB, debt money.Cents) *models.Profile {
	t.Helper()

	profile := &models.Profile{
		Name:            fmt.Sprintf("Test User %d", nextID()),
		InitialBalance:  100000,
		InitialSavings:  50000,
		MonthlyIncome:   300000,
		MonthlyExpenses: 150000,
		Debt:            debt,
	}
	if err := db.Create(profile).Error; err != nil {
		t.Fatalf("failed to create test profile: %v", err)
	}
	return profile
}
