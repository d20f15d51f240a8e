package services

import "fmt"

// Weights and thresholds for the financial health engine. The score is
// a weighted blend of savings rate, debt-to-income, and expense ratio;
// the recommendation rules use the conventional 20% savings target,
// three months of emergency coverage, and a 70% expense ceiling.
const (
	savingsRateWeight  = 0.40
	debtToIncomeWeight = 0.30
	expenseRatioWeight = 0.30

	savingsRateTarget  = 0.20
	emergencyFundFloor = 3.0
	expenseRatioLimit  = 0.70

	// Months of coverage are capped so degenerate inputs (no expenses
	// recorded yet) stay finite and JSON-serializable.
	emergencyMonthsCap = 120.0
)

// healthService implements the financial health engine. It holds no
// state; every method is a pure function over its inputs.
type healthService struct{}

// NewHealthService creates a new HealthServicer.
func NewHealthService() HealthServicer {
	return &healthService{}
}

// Ratios computes the intermediate ratios behind the score. With zero
// income every income-relative ratio is 0 rather than NaN or Inf.
func (s *healthService) Ratios(in ScoreInput) Ratios {
	r := Ratios{}

	if in.Income > 0 {
		income := in.Income.Float()
		r.SavingsRate = in.Savings.Float() / income
		r.DebtToIncome = in.Debt.Float() / income
		r.ExpenseRatio = in.Expenses.Float() / income
	}

	switch {
	case in.Expenses > 0:
		r.EmergencyFundMonths = in.Savings.Float() / in.Expenses.Float()
		if r.EmergencyFundMonths > emergencyMonthsCap {
			r.EmergencyFundMonths = emergencyMonthsCap
		}
	case in.Savings > 0:
		// No expenses on record: savings cover everything.
		r.EmergencyFundMonths = emergencyMonthsCap
	}

	return r
}

// Score computes the 0-100 financial health score. Zero income always
// scores 0: there is nothing meaningful to rate.
func (s *healthService) Score(in ScoreInput) float64 {
	if in.Income <= 0 {
		return 0
	}

	r := s.Ratios(in)
	raw := r.SavingsRate*savingsRateWeight +
		(1-r.DebtToIncome)*debtToIncomeWeight +
		(1-r.ExpenseRatio)*expenseRatioWeight

	score := raw * 100
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// Recommend produces advice from the intermediate ratios. Rules are not
// mutually exclusive; the generic encouragement only appears when no
// other rule fired, so the list is never empty.
func (s *healthService) Recommend(r Ratios) []Recommendation {
	var recs []Recommendation

	if r.SavingsRate >= savingsRateTarget {
		recs = append(recs, Recommendation{
			Title:    "Strong savings rate",
			Severity: SeverityPositive,
			Message: fmt.Sprintf("You are saving %.0f%% of your income. Keep it up - that's at or above the recommended %.0f%%.",
				r.SavingsRate*100, savingsRateTarget*100),
		})
	} else {
		recs = append(recs, Recommendation{
			Title:    "Increase your savings",
			Severity: SeverityWarning,
			Message: fmt.Sprintf("You are currently saving %.0f%% of your income. The 50/30/20 guideline suggests putting at least %.0f%% toward savings.",
				r.SavingsRate*100, savingsRateTarget*100),
		})
	}

	if r.EmergencyFundMonths < emergencyFundFloor {
		recs = append(recs, Recommendation{
			Title:    "Build your emergency fund",
			Severity: SeverityWarning,
			Message: fmt.Sprintf("Your savings cover %.1f months of expenses. Aim for at least %.0f months.",
				r.EmergencyFundMonths, emergencyFundFloor),
		})
	}

	if r.ExpenseRatio > expenseRatioLimit {
		recs = append(recs, Recommendation{
			Title:    "Expenses are high relative to income",
			Severity: SeverityWarning,
			Message: fmt.Sprintf("You are spending %.0f%% of your income. Keeping expenses under %.0f%% leaves room to save and absorb surprises.",
				r.ExpenseRatio*100, expenseRatioLimit*100),
		})
	}

	if len(recs) == 0 {
		recs = append(recs, Recommendation{
			Title:    "Keep up the good work",
			Severity: SeverityInfo,
			Message:  "Your finances look healthy. Keep doing what you're doing.",
		})
	}
	return recs
}
