// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"finboard/internal/models"
	"finboard/internal/money"
)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("amount", validateAmount)
		_ = v.RegisterValidation("category", validateCategory)
		_ = v.RegisterValidation("transaction_type", validateTransactionType)
		_ = v.RegisterValidation("account", validateAccount)
	}
}

// validateAmount accepts a non-negative decimal string with at most two
// decimal places ("1000", "12.5", "0.99").
func validateAmount(fl validator.FieldLevel) bool {
	return money.IsValid(fl.Field().String())
}

func validateCategory(fl validator.FieldLevel) bool {
	return models.Category(fl.Field().String()).IsValid()
}

func validateTransactionType(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "income", "expense":
		return true
	}
	return false
}

func validateAccount(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "", "primary", "secondary":
		return true
	}
	return false
}
