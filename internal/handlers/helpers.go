package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "finboard/internal/errors"
	"finboard/internal/logger"
	"finboard/internal/money"
)

// parsePathID parses a uint path parameter.
// Returns a VALIDATION_ERROR if the parameter is not a valid positive integer.
func parsePathID(c *gin.Context, param string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(param), 10, 32)
	if err != nil {
		return 0, apperrors.WithMessage(apperrors.ErrValidation, "Invalid "+param)
	}
	return uint(id), nil
}

// parseAmount converts a validated decimal string into cents, mapping
// parse failures onto INVALID_AMOUNT.
func parseAmount(s string) (money.Cents, error) {
	cents, err := money.Parse(s)
	if err != nil {
		return 0, apperrors.WithMessage(apperrors.ErrInvalidAmount, err.Error())
	}
	return cents, nil
}

// parseOptionalAmount is parseAmount for fields that may be empty;
// an empty string means zero.
func parseOptionalAmount(s string) (money.Cents, error) {
	if s == "" {
		return 0, nil
	}
	return parseAmount(s)
}

// parseOptionalAmountPtr converts an optional decimal-string field into
// an optional cents value, preserving "not provided" as nil.
func parseOptionalAmountPtr(s *string) (*money.Cents, error) {
	if s == nil {
		return nil, nil
	}
	cents, err := parseAmount(*s)
	if err != nil {
		return nil, err
	}
	return &cents, nil
}

// respondWithError writes a consistent JSON error response. If the error is an
// *AppError it uses the error's status code, code, and message. Otherwise it
// logs the unexpected error and returns a generic internal server error.
func respondWithError(c *gin.Context, err error) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		if appErr.Internal != nil {
			logger.Get().Errorw("app error",
				"code", appErr.Code,
				"internal", appErr.Internal.Error(),
				"path", c.Request.URL.Path,
			)
		}
		c.JSON(appErr.StatusCode, gin.H{
			"error": gin.H{
				"code":    appErr.Code,
				"message": appErr.Message,
			},
		})
		return
	}

	logger.Get().Errorw("unexpected error",
		"error", err.Error(),
		"path", c.Request.URL.Path,
		"method", c.Request.Method,
	)
	c.JSON(apperrors.ErrInternalServer.StatusCode, gin.H{
		"error": gin.H{
			"code":    apperrors.ErrInternalServer.Code,
			"message": apperrors.ErrInternalServer.Message,
		},
	})
}

// ErrorResponse documents the error envelope for swagger.
type ErrorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}
