package services

import (
	"math"
	"testing"
)

func TestScore(t *testing.T) {
	svc := NewHealthService()

	t.Run("weighted_blend", func(t *testing.T) {
		// savings rate 0.20, debt-to-income 0.20, expense ratio 0.60
		in := ScoreInput{Income: 500000, Expenses: 300000, Savings: 100000, Debt: 100000}
		got := svc.Score(in)
		want := (0.20*0.40 + 0.80*0.30 + 0.40*0.30) * 100
		if math.Abs(got-want) > 1e-9 {
			t.Errorf("expected score %.4f, got %.4f", want, got)
		}
	})

	t.Run("zero_income_scores_zero", func(t *testing.T) {
		in := ScoreInput{Income: 0, Expenses: 300000, Savings: 100000, Debt: 100000}
		if got := svc.Score(in); got != 0 {
			t.Errorf("expected 0, got %.4f", got)
		}
	})

	t.Run("clamped_to_100", func(t *testing.T) {
		in := ScoreInput{Income: 1000, Savings: 100000000}
		if got := svc.Score(in); got != 100 {
			t.Errorf("expected 100, got %.4f", got)
		}
	})

	t.Run("clamped_to_0", func(t *testing.T) {
		in := ScoreInput{Income: 1000, Expenses: 100000, Debt: 100000000}
		if got := svc.Score(in); got != 0 {
			t.Errorf("expected 0, got %.4f", got)
		}
	})

	t.Run("monotonic_in_savings", func(t *testing.T) {
		base := ScoreInput{Income: 500000, Expenses: 300000, Savings: 50000, Debt: 100000}
		richer := base
		richer.Savings = 150000
		if svc.Score(richer) <= svc.Score(base) {
			t.Error("expected score to increase with savings")
		}
	})
}

func TestRatios(t *testing.T) {
	svc := NewHealthService()

	t.Run("basic", func(t *testing.T) {
		r := svc.Ratios(ScoreInput{Income: 500000, Expenses: 250000, Savings: 100000, Debt: 50000})
		if math.Abs(r.SavingsRate-0.2) > 1e-9 {
			t.Errorf("expected savings rate 0.2, got %f", r.SavingsRate)
		}
		if math.Abs(r.DebtToIncome-0.1) > 1e-9 {
			t.Errorf("expected debt-to-income 0.1, got %f", r.DebtToIncome)
		}
		if math.Abs(r.ExpenseRatio-0.5) > 1e-9 {
			t.Errorf("expected expense ratio 0.5, got %f", r.ExpenseRatio)
		}
		if math.Abs(r.EmergencyFundMonths-0.4) > 1e-9 {
			t.Errorf("expected 0.4 months, got %f", r.EmergencyFundMonths)
		}
	})

	t.Run("zero_income_yields_zero_ratios", func(t *testing.T) {
		r := svc.Ratios(ScoreInput{Expenses: 250000, Savings: 100000, Debt: 50000})
		if r.SavingsRate != 0 || r.DebtToIncome != 0 || r.ExpenseRatio != 0 {
			t.Errorf("expected zero income-relative ratios, got %+v", r)
		}
	})

	t.Run("no_expenses_caps_emergency_months", func(t *testing.T) {
		r := svc.Ratios(ScoreInput{Income: 100000, Savings: 50000})
		if r.EmergencyFundMonths != emergencyMonthsCap {
			t.Errorf("expected cap %.0f, got %f", emergencyMonthsCap, r.EmergencyFundMonths)
		}
	})
}

func TestRecommend(t *testing.T) {
	svc := NewHealthService()

	t.Run("never_empty", func(t *testing.T) {
		if recs := svc.Recommend(Ratios{}); len(recs) == 0 {
			t.Fatal("expected at least one recommendation")
		}
	})

	t.Run("healthy_profile_is_positive", func(t *testing.T) {
		recs := svc.Recommend(Ratios{SavingsRate: 0.25, ExpenseRatio: 0.5, EmergencyFundMonths: 6})
		if len(recs) != 1 {
			t.Fatalf("expected exactly one recommendation, got %d", len(recs))
		}
		if recs[0].Severity != SeverityPositive {
			t.Errorf("expected positive severity, got %s", recs[0].Severity)
		}
	})

	t.Run("low_savings_warns", func(t *testing.T) {
		recs := svc.Recommend(Ratios{SavingsRate: 0.05, ExpenseRatio: 0.5, EmergencyFundMonths: 6})
		if !hasSeverity(recs, SeverityWarning) {
			t.Errorf("expected a warning, got %+v", recs)
		}
	})

	t.Run("thin_emergency_fund_warns", func(t *testing.T) {
		recs := svc.Recommend(Ratios{SavingsRate: 0.25, ExpenseRatio: 0.5, EmergencyFundMonths: 1})
		if !hasSeverity(recs, SeverityWarning) {
			t.Errorf("expected a warning, got %+v", recs)
		}
	})

	t.Run("high_expense_ratio_warns", func(t *testing.T) {
		recs := svc.Recommend(Ratios{SavingsRate: 0.25, ExpenseRatio: 0.9, EmergencyFundMonths: 6})
		if !hasSeverity(recs, SeverityWarning) {
			t.Errorf("expected a warning, got %+v", recs)
		}
	})
}

func hasSeverity(recs []Recommendation, severity string) bool {
	for _, r := range recs {
		if r.Severity == severity {
			return true
		}
	}
	return false
}
