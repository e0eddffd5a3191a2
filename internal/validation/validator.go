package validation

import (
	"reflect"
	"strings"

	"expense-manager/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

// singleton instance of the validator
var instance *Validator

// GetValidator returns the singleton validator instance
func GetValidator() *Validator {
	if instance == nil {
		instance = NewValidator()
	}
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	v.RegisterCustomTypeFunc(decimalValuer, decimal.Decimal{})

	_ = v.RegisterValidation("expense_amount", validateExpenseAmount)
	_ = v.RegisterValidation("notblank", validateNotBlank)
	_ = v.RegisterValidation("expense_category", validateExpenseCategory)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// decimalValuer surfaces decimal fields to the validator as their canonical
// string form so custom rules can reparse them without precision loss
func decimalValuer(field reflect.Value) interface{} {
	if value, ok := field.Interface().(decimal.Decimal); ok {
		return value.String()
	}
	return nil
}

// Custom validation functions

// validateExpenseAmount validates that an amount is positive with at most
// 13 integer digits and 2 fractional digits
func validateExpenseAmount(fl validator.FieldLevel) bool {
	amount, err := decimal.NewFromString(fl.Field().String())
	if err != nil {
		return false
	}

	if !amount.IsPositive() {
		return false
	}

	if amount.Exponent() < -2 {
		return false
	}

	integerDigits := len(amount.Truncate(0).Abs().String())
	return integerDigits <= models.MaxAmountIntegerDigits
}

// validateNotBlank rejects strings that are empty or whitespace only
func validateNotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

// validateExpenseCategory validates that a category is one of the known
// spending categories or the fallback
func validateExpenseCategory(fl validator.FieldLevel) bool {
	category := fl.Field().String()
	if category == models.DefaultCategory {
		return true
	}
	for _, known := range models.SeededCategories() {
		if category == known {
			return true
		}
	}
	return false
}
