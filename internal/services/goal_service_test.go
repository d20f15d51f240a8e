package services

import (
	"testing"
	"time"

	"finboard/internal/testutil"
)

func TestAddGoal(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewGoalService(db)

		goal, err := svc.AddGoal(NewGoal{
			Name:     "Vacation",
			Target:   200000,
			Current:  50000,
			Deadline: time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC),
		})
		testutil.AssertNoError(t, err)
		if goal.ID == 0 {
			t.Fatal("expected non-zero goal ID")
		}
		if goal.Progress() != 0.25 {
			t.Errorf("expected progress 0.25, got %f", goal.Progress())
		}
	})

	t.Run("missing_name", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewGoalService(db)

		_, err := svc.AddGoal(NewGoal{Target: 1000, Deadline: time.Now()})
		testutil.AssertAppError(t, err, "VALIDATION_ERROR")
	})

	t.Run("zero_target", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewGoalService(db)

		_, err := svc.AddGoal(NewGoal{Name: "Broken", Target: 0, Deadline: time.Now()})
		testutil.AssertAppError(t, err, "VALIDATION_ERROR")
	})

	t.Run("negative_current", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewGoalService(db)

		_, err := svc.AddGoal(NewGoal{Name: "Broken", Target: 1000, Current: -1, Deadline: time.Now()})
		testutil.AssertAppError(t, err, "VALIDATION_ERROR")
	})
}

func TestApplyIncome(t *testing.T) {
	t.Run("advances_all_goals", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewGoalService(db)

		first, err := svc.AddGoal(NewGoal{Name: "Vacation", Target: 200000, Current: 50000, Deadline: time.Now().AddDate(1, 0, 0)})
		testutil.AssertNoError(t, err)
		second, err := svc.AddGoal(NewGoal{Name: "Car", Target: 500000, Deadline: time.Now().AddDate(2, 0, 0)})
		testutil.AssertNoError(t, err)

		testutil.AssertNoError(t, svc.ApplyIncome(db, 30000))

		updatedFirst, err := svc.GetGoalByID(first.ID)
		testutil.AssertNoError(t, err)
		if updatedFirst.Current != 80000 {
			t.Errorf("expected first goal at 80000, got %d", updatedFirst.Current)
		}

		updatedSecond, err := svc.GetGoalByID(second.ID)
		testutil.AssertNoError(t, err)
		if updatedSecond.Current != 30000 {
			t.Errorf("expected second goal at 30000, got %d", updatedSecond.Current)
		}
	})

	t.Run("progress_can_exceed_target", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewGoalService(db)

		goal, err := svc.AddGoal(NewGoal{Name: "Small", Target: 1000, Current: 900, Deadline: time.Now().AddDate(0, 1, 0)})
		testutil.AssertNoError(t, err)

		testutil.AssertNoError(t, svc.ApplyIncome(db, 500))

		updated, err := svc.GetGoalByID(goal.ID)
		testutil.AssertNoError(t, err)
		if updated.Current != 1400 {
			t.Errorf("expected current 1400, got %d", updated.Current)
		}
		if updated.Progress() <= 1 {
			t.Errorf("expected progress above 1, got %f", updated.Progress())
		}
	})

	t.Run("non_positive_amount_is_noop", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewGoalService(db)

		goal, err := svc.AddGoal(NewGoal{Name: "Idle", Target: 1000, Deadline: time.Now().AddDate(0, 1, 0)})
		testutil.AssertNoError(t, err)

		testutil.AssertNoError(t, svc.ApplyIncome(db, 0))

		updated, err := svc.GetGoalByID(goal.ID)
		testutil.AssertNoError(t, err)
		if updated.Current != 0 {
			t.Errorf("expected current 0, got %d", updated.Current)
		}
	})
}

func TestContribute(t *testing.T) {
	t.Run("advances_one_goal_only", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewGoalService(db)

		target, err := svc.AddGoal(NewGoal{Name: "Vacation", Target: 200000, Deadline: time.Now().AddDate(1, 0, 0)})
		testutil.AssertNoError(t, err)
		other, err := svc.AddGoal(NewGoal{Name: "Car", Target: 500000, Deadline: time.Now().AddDate(2, 0, 0)})
		testutil.AssertNoError(t, err)

		updated, err := svc.Contribute(target.ID, 25000)
		testutil.AssertNoError(t, err)
		if updated.Current != 25000 {
			t.Errorf("expected current 25000, got %d", updated.Current)
		}

		untouched, err := svc.GetGoalByID(other.ID)
		testutil.AssertNoError(t, err)
		if untouched.Current != 0 {
			t.Errorf("expected other goal untouched, got %d", untouched.Current)
		}
	})

	t.Run("unknown_goal", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewGoalService(db)

		_, err := svc.Contribute(9999, 1000)
		testutil.AssertAppError(t, err, "GOAL_NOT_FOUND")
	})

	t.Run("non_positive_amount", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewGoalService(db)

		goal := testutil.CreateTestGoal(t, db, 1000, 0)
		_, err := svc.Contribute(goal.ID, 0)
		testutil.AssertAppError(t, err, "VALIDATION_ERROR")
	})
}

func TestRemoveGoal(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewGoalService(db)

		goal := testutil.CreateTestGoal(t, db, 100000, 0)
		testutil.AssertNoError(t, svc.RemoveGoal(goal.ID))

		_, err := svc.GetGoalByID(goal.ID)
		testutil.AssertAppError(t, err, "GOAL_NOT_FOUND")
	})

	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewGoalService(db)

		err := svc.RemoveGoal(9999)
		testutil.AssertAppError(t, err, "GOAL_NOT_FOUND")
	})
}
