package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"finboard/internal/models"
	"finboard/internal/services"
)

// CategoryHandler exposes the fixed category set and per-category totals.
type CategoryHandler struct {
	ledger services.LedgerServicer
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(ledger services.LedgerServicer) *CategoryHandler {
	return &CategoryHandler{ledger: ledger}
}

// GetCategories lists the closed category set.
// @Summary     List categories
// @Description Get the fixed set of valid transaction categories
// @Tags        categories
// @Produce     json
// @Success     200 {object} map[string][]string
// @Router      /categories [get]
func (h *CategoryHandler) GetCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": models.Categories})
}

// GetCategoryTotal returns the total spent on one category.
// @Summary     Get category spend
// @Description Sum of expense transactions recorded against a category
// @Tags        categories
// @Produce     json
// @Param       category path string true "Category name"
// @Success     200 {object} map[string]interface{}
// @Failure     400 {object} ErrorResponse "Unknown category"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /categories/{category}/total [get]
func (h *CategoryHandler) GetCategoryTotal(c *gin.Context) {
	category := models.Category(c.Param("category"))

	total, err := h.ledger.CategoryTotal(category)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"category": category,
		"total":    total,
	})
}
