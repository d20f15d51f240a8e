package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "finboard/internal/errors"
	"finboard/internal/services"
)

// ProfileHandler handles onboarding, settings, and reset.
type ProfileHandler struct {
	profile services.ProfileServicer
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(profile services.ProfileServicer) *ProfileHandler {
	return &ProfileHandler{profile: profile}
}

// CreateProfileRequest is the onboarding wizard's payload. All monetary
// fields are decimal strings; omitted fields default to zero.
type CreateProfileRequest struct {
	Name            string `json:"name" binding:"required,min=1,max=100"`
	InitialBalance  string `json:"initial_balance" binding:"omitempty,amount"`
	InitialSavings  string `json:"initial_savings" binding:"omitempty,amount"`
	MonthlyIncome   string `json:"monthly_income" binding:"omitempty,amount"`
	MonthlyExpenses string `json:"monthly_expenses" binding:"omitempty,amount"`
	Debt            string `json:"debt" binding:"omitempty,amount"`
}

// UpdateProfileRequest is the settings payload; omitted fields are unchanged.
type UpdateProfileRequest struct {
	Name            *string `json:"name" binding:"omitempty,min=1,max=100"`
	MonthlyIncome   *string `json:"monthly_income" binding:"omitempty,amount"`
	MonthlyExpenses *string `json:"monthly_expenses" binding:"omitempty,amount"`
	Debt            *string `json:"debt" binding:"omitempty,amount"`
}

// CreateProfile completes onboarding: stores the profile and seeds the
// ledger from the initial figures.
// @Summary     Create the profile
// @Description Complete onboarding; seed transactions are created for the initial balances and monthly figures
// @Tags        profile
// @Accept      json
// @Produce     json
// @Param       request body CreateProfileRequest true "Profile details"
// @Success     201 {object} models.Profile "Profile created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     409 {object} ErrorResponse "Profile already exists"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /profile [post]
func (h *ProfileHandler) CreateProfile(c *gin.Context) {
	var req CreateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrValidation, err.Error()))
		return
	}

	input := services.NewProfile{Name: req.Name}

	var err error
	if input.InitialBalance, err = parseOptionalAmount(req.InitialBalance); err != nil {
		respondWithError(c, err)
		return
	}
	if input.InitialSavings, err = parseOptionalAmount(req.InitialSavings); err != nil {
		respondWithError(c, err)
		return
	}
	if input.MonthlyIncome, err = parseOptionalAmount(req.MonthlyIncome); err != nil {
		respondWithError(c, err)
		return
	}
	if input.MonthlyExpenses, err = parseOptionalAmount(req.MonthlyExpenses); err != nil {
		respondWithError(c, err)
		return
	}
	if input.Debt, err = parseOptionalAmount(req.Debt); err != nil {
		respondWithError(c, err)
		return
	}

	profile, err := h.profile.CreateProfile(input)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"profile": profile})
}

// GetProfile returns the stored profile.
// @Summary     Get the profile
// @Tags        profile
// @Produce     json
// @Success     200 {object} models.Profile
// @Failure     404 {object} ErrorResponse "Not set up yet"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /profile [get]
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	profile, err := h.profile.GetProfile()
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"profile": profile})
}

// UpdateProfile applies settings changes.
// @Summary     Update the profile
// @Tags        profile
// @Accept      json
// @Produce     json
// @Param       request body UpdateProfileRequest true "Settings changes"
// @Success     200 {object} models.Profile "Updated profile"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Not set up yet"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /profile [put]
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrValidation, err.Error()))
		return
	}

	input := services.UpdateProfile{Name: req.Name}

	var err error
	if input.MonthlyIncome, err = parseOptionalAmountPtr(req.MonthlyIncome); err != nil {
		respondWithError(c, err)
		return
	}
	if input.MonthlyExpenses, err = parseOptionalAmountPtr(req.MonthlyExpenses); err != nil {
		respondWithError(c, err)
		return
	}
	if input.Debt, err = parseOptionalAmountPtr(req.Debt); err != nil {
		respondWithError(c, err)
		return
	}

	profile, err := h.profile.UpdateProfile(input)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"profile": profile})
}

// Reset wipes everything and returns to the onboarding state.
// @Summary     Reset all data
// @Description Delete every transaction, goal, budget, and the profile
// @Tags        profile
// @Produce     json
// @Success     200 {object} map[string]string "Reset complete"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /reset [post]
func (h *ProfileHandler) Reset(c *gin.Context) {
	if err := h.profile.Reset(); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "All data cleared"})
}
