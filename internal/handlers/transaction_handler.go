package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "finboard/internal/errors"
	"finboard/internal/models"
	"finboard/internal/pagination"
	"finboard/internal/services"
)

// TransactionHandler handles ledger requests.
type TransactionHandler struct {
	ledger services.LedgerServicer
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(ledger services.LedgerServicer) *TransactionHandler {
	return &TransactionHandler{ledger: ledger}
}

// CreateTransactionRequest represents the request payload for recording a transaction.
// Amount is a non-negative decimal string with at most two decimal places.
type CreateTransactionRequest struct {
	Description string     `json:"description" binding:"required,min=1,max=200"`
	Amount      string     `json:"amount" binding:"required,amount"`
	Type        string     `json:"type" binding:"required,transaction_type"`
	Category    string     `json:"category" binding:"required,category"`
	Date        *time.Time `json:"date"`
	Account     string     `json:"account" binding:"omitempty,account"`
}

// transactionListQuery holds optional filters for listing transactions.
type transactionListQuery struct {
	pagination.PageRequest
	Type     string `form:"type" binding:"omitempty,transaction_type"`
	Category string `form:"category" binding:"omitempty,category"`
	Account  string `form:"account" binding:"omitempty,account"`
}

// CreateTransaction records a new ledger entry.
// @Summary     Record a transaction
// @Description Add an income or expense transaction to the ledger
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Param       request body CreateTransactionRequest true "Transaction details"
// @Success     201 {object} models.Transaction "Transaction recorded"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions [post]
func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	var req CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrValidation, err.Error()))
		return
	}

	amount, err := parseAmount(req.Amount)
	if err != nil {
		respondWithError(c, err)
		return
	}

	input := services.NewTransaction{
		Description: req.Description,
		Amount:      amount,
		Type:        models.TransactionType(req.Type),
		Category:    models.Category(req.Category),
		Account:     models.Account(req.Account),
	}
	if req.Date != nil {
		input.Date = *req.Date
	}

	transaction, err := h.ledger.AddTransaction(input)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"transaction": transaction})
}

// GetTransactions lists ledger entries, most recent first.
// @Summary     List transactions
// @Description Get a paginated list of transactions, most recent first
// @Tags        transactions
// @Produce     json
// @Param       page query int false "Page number"
// @Param       page_size query int false "Page size"
// @Param       type query string false "Filter by type (income|expense)"
// @Param       category query string false "Filter by category"
// @Param       account query string false "Filter by account (primary|secondary)"
// @Success     200 {object} pagination.PageResponse[models.Transaction]
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions [get]
func (h *TransactionHandler) GetTransactions(c *gin.Context) {
	var query transactionListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrValidation, err.Error()))
		return
	}

	filter := services.TransactionFilter{}
	if query.Type != "" {
		t := models.TransactionType(query.Type)
		filter.Type = &t
	}
	if query.Category != "" {
		cat := models.Category(query.Category)
		filter.Category = &cat
	}
	if query.Account != "" {
		acc := models.Account(query.Account)
		filter.Account = &acc
	}

	result, err := h.ledger.GetTransactions(query.PageRequest, filter)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetTransactionByID returns a single ledger entry.
// @Summary     Get a transaction
// @Tags        transactions
// @Produce     json
// @Param       id path int true "Transaction ID"
// @Success     200 {object} models.Transaction
// @Failure     404 {object} ErrorResponse "Not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions/{id} [get]
func (h *TransactionHandler) GetTransactionByID(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	transaction, err := h.ledger.GetTransactionByID(id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"transaction": transaction})
}

// DeleteTransaction removes a ledger entry and thereby reverses its
// effect on every derived total.
// @Summary     Delete a transaction
// @Tags        transactions
// @Produce     json
// @Param       id path int true "Transaction ID"
// @Success     200 {object} map[string]string "Deleted"
// @Failure     404 {object} ErrorResponse "Not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions/{id} [delete]
func (h *TransactionHandler) DeleteTransaction(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.ledger.DeleteTransaction(id); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Transaction deleted"})
}
