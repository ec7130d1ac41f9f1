// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("calendar_month", validateCalendarMonth)
		_ = v.RegisterValidation("expense_sort", validateExpenseSort)
	}
}

func validateCalendarMonth(fl validator.FieldLevel) bool {
	m := fl.Field().Int()
	return m >= 1 && m <= 12
}

func validateExpenseSort(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "date", "amount", "created_at":
		return true
	}
	return false
}
