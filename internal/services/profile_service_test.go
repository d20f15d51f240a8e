package services

import (
	"testing"
	"time"

	"finboard/internal/money"
	"finboard/internal/pagination"
	"finboard/internal/testutil"
)

func newTestProfile(t *testing.T) (ProfileServicer, LedgerServicer, GoalServicer, func()) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	goals := NewGoalService(db)
	ledger := NewLedgerService(db, goals)
	profiles := NewProfileService(db, ledger)
	return profiles, ledger, goals, func() { testutil.TeardownTestDB(t, db) }
}

func TestCreateProfile(t *testing.T) {
	t.Run("seeds_ledger_from_onboarding_figures", func(t *testing.T) {
		profiles, ledger, _, cleanup := newTestProfile(t)
		defer cleanup()

		profile, err := profiles.CreateProfile(NewProfile{
			Name:            "Alex",
			InitialBalance:  100000,
			InitialSavings:  50000,
			MonthlyIncome:   300000,
			MonthlyExpenses: 150000,
			Debt:            20000,
		})
		testutil.AssertNoError(t, err)
		if profile.ID == 0 {
			t.Fatal("expected non-zero profile ID")
		}

		totals, err := ledger.Totals()
		testutil.AssertNoError(t, err)
		if totals.Balance != 250000 {
			t.Errorf("expected balance 250000, got %d", totals.Balance)
		}
		if totals.Savings != 50000 {
			t.Errorf("expected savings 50000, got %d", totals.Savings)
		}
		if totals.Income != 450000 {
			t.Errorf("expected income 450000, got %d", totals.Income)
		}
		if totals.Expenses != 150000 {
			t.Errorf("expected expenses 150000, got %d", totals.Expenses)
		}
	})

	t.Run("skips_zero_figures", func(t *testing.T) {
		profiles, ledger, _, cleanup := newTestProfile(t)
		defer cleanup()

		_, err := profiles.CreateProfile(NewProfile{Name: "Sam"})
		testutil.AssertNoError(t, err)

		page, err := ledger.GetTransactions(pagination.PageRequest{}, TransactionFilter{})
		testutil.AssertNoError(t, err)
		if page.TotalItems != 0 {
			t.Errorf("expected no seed transactions, got %d", page.TotalItems)
		}
	})

	t.Run("second_profile_rejected", func(t *testing.T) {
		profiles, _, _, cleanup := newTestProfile(t)
		defer cleanup()

		_, err := profiles.CreateProfile(NewProfile{Name: "Alex"})
		testutil.AssertNoError(t, err)
		_, err = profiles.CreateProfile(NewProfile{Name: "Sam"})
		testutil.AssertAppError(t, err, "PROFILE_EXISTS")
	})

	t.Run("missing_name", func(t *testing.T) {
		profiles, _, _, cleanup := newTestProfile(t)
		defer cleanup()

		_, err := profiles.CreateProfile(NewProfile{})
		testutil.AssertAppError(t, err, "VALIDATION_ERROR")
	})

	t.Run("negative_figure", func(t *testing.T) {
		profiles, _, _, cleanup := newTestProfile(t)
		defer cleanup()

		_, err := profiles.CreateProfile(NewProfile{Name: "Alex", Debt: -1})
		testutil.AssertAppError(t, err, "INVALID_AMOUNT")
	})
}

func TestGetProfile(t *testing.T) {
	t.Run("not_found_before_onboarding", func(t *testing.T) {
		profiles, _, _, cleanup := newTestProfile(t)
		defer cleanup()

		_, err := profiles.GetProfile()
		testutil.AssertAppError(t, err, "PROFILE_NOT_FOUND")
	})
}

func TestUpdateProfile(t *testing.T) {
	t.Run("partial_update", func(t *testing.T) {
		profiles, _, _, cleanup := newTestProfile(t)
		defer cleanup()

		_, err := profiles.CreateProfile(NewProfile{Name: "Alex", Debt: 20000})
		testutil.AssertNoError(t, err)

		newDebt := money.Cents(5000)
		updated, err := profiles.UpdateProfile(UpdateProfile{Debt: &newDebt})
		testutil.AssertNoError(t, err)
		if updated.Debt != 5000 {
			t.Errorf("expected debt 5000, got %d", updated.Debt)
		}
		if updated.Name != "Alex" {
			t.Errorf("expected name unchanged, got %s", updated.Name)
		}
	})

	t.Run("empty_name_rejected", func(t *testing.T) {
		profiles, _, _, cleanup := newTestProfile(t)
		defer cleanup()

		_, err := profiles.CreateProfile(NewProfile{Name: "Alex"})
		testutil.AssertNoError(t, err)

		empty := ""
		_, err = profiles.UpdateProfile(UpdateProfile{Name: &empty})
		testutil.AssertAppError(t, err, "VALIDATION_ERROR")
	})

	t.Run("no_profile", func(t *testing.T) {
		profiles, _, _, cleanup := newTestProfile(t)
		defer cleanup()

		name := "Ghost"
		_, err := profiles.UpdateProfile(UpdateProfile{Name: &name})
		testutil.AssertAppError(t, err, "PROFILE_NOT_FOUND")
	})
}

func TestReset(t *testing.T) {
	profiles, ledger, goals, cleanup := newTestProfile(t)
	defer cleanup()

	_, err := profiles.CreateProfile(NewProfile{Name: "Alex", InitialBalance: 100000})
	testutil.AssertNoError(t, err)
	_, err = goals.AddGoal(NewGoal{Name: "Vacation", Target: 200000, Deadline: time.Now().AddDate(1, 0, 0)})
	testutil.AssertNoError(t, err)

	testutil.AssertNoError(t, profiles.Reset())

	_, err = profiles.GetProfile()
	testutil.AssertAppError(t, err, "PROFILE_NOT_FOUND")

	totals, err := ledger.Totals()
	testutil.AssertNoError(t, err)
	if totals.Income != 0 || totals.Balance != 0 {
		t.Errorf("expected empty ledger after reset, got %+v", totals)
	}

	remaining, err := goals.GetGoals()
	testutil.AssertNoError(t, err)
	if len(remaining) != 0 {
		t.Errorf("expected no goals after reset, got %d", len(remaining))
	}
}
