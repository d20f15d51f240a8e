package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "finboard/internal/errors"
	"finboard/internal/models"
	"finboard/internal/services"
)

// BudgetHandler handles budget limit requests.
type BudgetHandler struct {
	budgets services.BudgetServicer
}

// NewBudgetHandler creates a new BudgetHandler.
func NewBudgetHandler(budgets services.BudgetServicer) *BudgetHandler {
	return &BudgetHandler{budgets: budgets}
}

// SetBudgetRequest represents the request payload for setting a category limit.
type SetBudgetRequest struct {
	Limit string `json:"limit" binding:"required,amount"`
}

// SetBudget sets (or overwrites) the limit for a category.
// @Summary     Set a category budget
// @Description Set the spending limit for a category; setting it again overwrites the previous limit
// @Tags        budgets
// @Accept      json
// @Produce     json
// @Param       category path string true "Category name"
// @Param       request body SetBudgetRequest true "Budget limit"
// @Success     200 {object} models.CategoryBudget "Limit stored"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budgets/{category} [put]
func (h *BudgetHandler) SetBudget(c *gin.Context) {
	var req SetBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrValidation, err.Error()))
		return
	}

	limit, err := parseAmount(req.Limit)
	if err != nil {
		respondWithError(c, err)
		return
	}

	budget, err := h.budgets.SetLimit(models.Category(c.Param("category")), limit)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"budget": budget})
}

// GetBudgets lists all tracked category limits.
// @Summary     List budgets
// @Tags        budgets
// @Produce     json
// @Success     200 {object} map[string][]models.CategoryBudget
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budgets [get]
func (h *BudgetHandler) GetBudgets(c *gin.Context) {
	budgets, err := h.budgets.GetBudgets()
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"budgets": budgets})
}

// GetComparison returns limit-vs-spent for every tracked category.
// @Summary     Budget comparison
// @Description Limit versus actual spend per tracked category; spend is recomputed from the ledger
// @Tags        budgets
// @Produce     json
// @Success     200 {object} map[string][]services.BudgetComparison
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budgets/comparison [get]
func (h *BudgetHandler) GetComparison(c *gin.Context) {
	comparisons, err := h.budgets.Comparison()
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"comparison": comparisons})
}

// DeleteBudget removes a category's limit.
// @Summary     Remove a category budget
// @Tags        budgets
// @Produce     json
// @Param       category path string true "Category name"
// @Success     200 {object} map[string]string "Removed"
// @Failure     404 {object} ErrorResponse "No limit set"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budgets/{category} [delete]
func (h *BudgetHandler) DeleteBudget(c *gin.Context) {
	if err := h.budgets.RemoveLimit(models.Category(c.Param("category"))); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Budget removed"})
}
