package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	apperrors "finboard/internal/errors"
	"finboard/internal/models"
	"finboard/internal/services"
)

// --- mock profile service ---

type mockProfileService struct {
	createProfileFn func(input services.NewProfile) (*models.Profile, error)
	getProfileFn    func() (*models.Profile, error)
	updateProfileFn func(input services.UpdateProfile) (*models.Profile, error)
	resetFn         func() error
}

func (m *mockProfileService) CreateProfile(input services.NewProfile) (*models.Profile, error) {
	if m.createProfileFn != nil {
		return m.createProfileFn(input)
	}
	return &models.Profile{}, nil
}

func (m *mockProfileService) GetProfile() (*models.Profile, error) {
	if m.getProfileFn != nil {
		return m.getProfileFn()
	}
	return &models.Profile{}, nil
}

func (m *mockProfileService) UpdateProfile(input services.UpdateProfile) (*models.Profile, error) {
	if m.updateProfileFn != nil {
		return m.updateProfileFn(input)
	}
	return &models.Profile{}, nil
}

func (m *mockProfileService) Reset() error {
	if m.resetFn != nil {
		return m.resetFn()
	}
	return nil
}

var _ services.ProfileServicer = (*mockProfileService)(nil)

func setupSummaryRouter(handler *SummaryHandler) *gin.Engine {
	r := gin.New()
	r.GET("/summary", handler.GetSummary)
	return r
}

// --- tests ---

func TestSummaryHandler_GetSummary(t *testing.T) {
	t.Run("returns totals score and recommendations", func(t *testing.T) {
		ledger := &mockLedgerService{
			totalsFn: func() (*services.LedgerTotals, error) {
				return &services.LedgerTotals{
					Income:   500000,
					Expenses: 300000,
					Balance:  200000,
					Savings:  100000,
				}, nil
			},
		}
		profile := &mockProfileService{
			getProfileFn: func() (*models.Profile, error) {
				return &models.Profile{Name: "Alex", Debt: 100000}, nil
			},
		}
		handler := NewSummaryHandler(ledger, profile, services.NewHealthService())
		r := setupSummaryRouter(handler)

		rec := doRequest(r, "GET", "/summary", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		if result["income"].(float64) != 5000 {
			t.Errorf("expected income 5000, got %v", result["income"])
		}
		if result["debt"].(float64) != 1000 {
			t.Errorf("expected debt 1000, got %v", result["debt"])
		}

		// savings rate 0.20, debt-to-income 0.20, expense ratio 0.60
		score := result["score"].(float64)
		if score < 43.9 || score > 44.1 {
			t.Errorf("expected score near 44, got %v", score)
		}

		recs := result["recommendations"].([]interface{})
		if len(recs) == 0 {
			t.Error("expected at least one recommendation")
		}
	})

	t.Run("missing profile means zero debt", func(t *testing.T) {
		ledger := &mockLedgerService{
			totalsFn: func() (*services.LedgerTotals, error) {
				return &services.LedgerTotals{Income: 100000, Balance: 100000}, nil
			},
		}
		profile := &mockProfileService{
			getProfileFn: func() (*models.Profile, error) {
				return nil, apperrors.ErrProfileNotFound
			},
		}
		handler := NewSummaryHandler(ledger, profile, services.NewHealthService())
		r := setupSummaryRouter(handler)

		rec := doRequest(r, "GET", "/summary", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		if result["debt"].(float64) != 0 {
			t.Errorf("expected debt 0, got %v", result["debt"])
		}
	})
}
