package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "finboard/internal/errors"
	"finboard/internal/money"
	"finboard/internal/services"
)

// SummaryHandler composes the dashboard's aggregate view: derived
// totals, the financial health score, and recommendations.
type SummaryHandler struct {
	ledger  services.LedgerServicer
	profile services.ProfileServicer
	health  services.HealthServicer
}

// NewSummaryHandler creates a new SummaryHandler.
func NewSummaryHandler(ledger services.LedgerServicer, profile services.ProfileServicer, health services.HealthServicer) *SummaryHandler {
	return &SummaryHandler{ledger: ledger, profile: profile, health: health}
}

// SummaryResponse is the aggregate financial state plus derived health data.
type SummaryResponse struct {
	Balance         money.Cents               `json:"balance"`
	Savings         money.Cents               `json:"savings"`
	Income          money.Cents               `json:"income"`
	Expenses        money.Cents               `json:"expenses"`
	Debt            money.Cents               `json:"debt"`
	Score           float64                   `json:"score"`
	Ratios          services.Ratios           `json:"ratios"`
	Recommendations []services.Recommendation `json:"recommendations"`
}

// GetSummary returns the aggregate state with score and recommendations.
// @Summary     Dashboard summary
// @Description Derived totals, the 0-100 financial health score, its ratios, and recommendations
// @Tags        summary
// @Produce     json
// @Success     200 {object} SummaryResponse
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /summary [get]
func (h *SummaryHandler) GetSummary(c *gin.Context) {
	totals, err := h.ledger.Totals()
	if err != nil {
		respondWithError(c, err)
		return
	}

	// No profile yet just means no debt on record.
	var debt money.Cents
	if profile, err := h.profile.GetProfile(); err == nil {
		debt = profile.Debt
	} else if !errors.Is(err, apperrors.ErrProfileNotFound) {
		respondWithError(c, err)
		return
	}

	input := services.ScoreInput{
		Income:   totals.Income,
		Expenses: totals.Expenses,
		Savings:  totals.Savings,
		Debt:     debt,
	}
	ratios := h.health.Ratios(input)

	c.JSON(http.StatusOK, SummaryResponse{
		Balance:         totals.Balance,
		Savings:         totals.Savings,
		Income:          totals.Income,
		Expenses:        totals.Expenses,
		Debt:            debt,
		Score:           h.health.Score(input),
		Ratios:          ratios,
		Recommendations: h.health.Recommend(ratios),
	})
}
