package models

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpense_Validate(t *testing.T) {
	validDate := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		expense Expense
		wantErr error
	}{
		{
			name: "valid expense",
			expense: Expense{
				Date:       validDate,
				Amount:     decimal.NewFromFloat(499.99),
				VendorName: "Amazon",
				Category:   CategoryShopping,
			},
			wantErr: nil,
		},
		{
			name: "valid expense with description",
			expense: Expense{
				Date:        validDate,
				Amount:      decimal.NewFromInt(100),
				VendorName:  "Swiggy",
				Description: "Team lunch",
				Category:    CategoryFoodDining,
			},
			wantErr: nil,
		},
		{
			name: "missing date",
			expense: Expense{
				Amount:     decimal.NewFromInt(100),
				VendorName: "Amazon",
				Category:   CategoryShopping,
			},
			wantErr: ErrExpenseDateRequired,
		},
		{
			name: "zero amount",
			expense: Expense{
				Date:       validDate,
				Amount:     decimal.Zero,
				VendorName: "Amazon",
				Category:   CategoryShopping,
			},
			wantErr: ErrExpenseAmountInvalid,
		},
		{
			name: "negative amount",
			expense: Expense{
				Date:       validDate,
				Amount:     decimal.NewFromInt(-5),
				VendorName: "Amazon",
				Category:   CategoryShopping,
			},
			wantErr: ErrExpenseAmountInvalid,
		},
		{
			name: "blank vendor name",
			expense: Expense{
				Date:       validDate,
				Amount:     decimal.NewFromInt(100),
				VendorName: "   ",
				Category:   CategoryShopping,
			},
			wantErr: ErrVendorNameRequired,
		},
		{
			name: "vendor name too long",
			expense: Expense{
				Date:       validDate,
				Amount:     decimal.NewFromInt(100),
				VendorName: strings.Repeat("a", MaxVendorNameLength+1),
				Category:   CategoryShopping,
			},
			wantErr: ErrVendorNameTooLong,
		},
		{
			name: "description too long",
			expense: Expense{
				Date:        validDate,
				Amount:      decimal.NewFromInt(100),
				VendorName:  "Amazon",
				Description: strings.Repeat("a", MaxDescriptionLength+1),
				Category:    CategoryShopping,
			},
			wantErr: ErrDescriptionTooLong,
		},
		{
			name: "missing category",
			expense: Expense{
				Date:       validDate,
				Amount:     decimal.NewFromInt(100),
				VendorName: "Amazon",
			},
			wantErr: ErrCategoryRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.expense.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestExpense_Validate_BoundaryLengths(t *testing.T) {
	expense := Expense{
		Date:        time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		Amount:      decimal.NewFromInt(100),
		VendorName:  strings.Repeat("a", MaxVendorNameLength),
		Description: strings.Repeat("b", MaxDescriptionLength),
		Category:    CategoryShopping,
	}

	require.NoError(t, expense.Validate())
}

func TestExpense_TableName(t *testing.T) {
	expense := Expense{}
	assert.Equal(t, "expenses", expense.TableName())
}
