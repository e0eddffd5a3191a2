package dto

import (
	"time"

	"expense-manager/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ExpenseDateLayout is the wire format for expense dates
const ExpenseDateLayout = "2006-01-02"

// ExpenseRequest is the payload for creating a single expense. The same
// field-level rules apply to every CSV row; the row parser produces one of
// these per data row.
type ExpenseRequest struct {
	Date        string          `json:"date" validate:"required,datetime=2006-01-02"`
	Amount      decimal.Decimal `json:"amount" validate:"expense_amount"`
	VendorName  string          `json:"vendorName" validate:"notblank,max=255"`
	Description string          `json:"description" validate:"max=1000"`
}

// ParsedDate returns the request date as a time.Time. Callers must validate
// the request first; a malformed date yields the zero time.
func (r *ExpenseRequest) ParsedDate() time.Time {
	date, err := time.Parse(ExpenseDateLayout, r.Date)
	if err != nil {
		return time.Time{}
	}
	return date
}

// ExpenseResponse is the wire representation of a persisted expense
type ExpenseResponse struct {
	ID          uuid.UUID `json:"id"`
	Date        string    `json:"date"`
	Amount      string    `json:"amount"`
	VendorName  string    `json:"vendorName"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	IsAnomaly   bool      `json:"isAnomaly"`
	CreatedAt   time.Time `json:"createdAt"`
}

// NewExpenseResponse converts a persisted expense to its wire representation
func NewExpenseResponse(expense *models.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:          expense.ID,
		Date:        expense.Date.Format(ExpenseDateLayout),
		Amount:      expense.Amount.StringFixed(2),
		VendorName:  expense.VendorName,
		Description: expense.Description,
		Category:    expense.Category,
		IsAnomaly:   expense.IsAnomaly,
		CreatedAt:   expense.CreatedAt,
	}
}

// NewExpenseResponses converts a slice of persisted expenses
func NewExpenseResponses(expenses []*models.Expense) []ExpenseResponse {
	responses := make([]ExpenseResponse, 0, len(expenses))
	for _, expense := range expenses {
		responses = append(responses, NewExpenseResponse(expense))
	}
	return responses
}

// CsvUploadResponse summarizes one CSV batch upload
type CsvUploadResponse struct {
	TotalRows     int               `json:"totalRows"`
	SuccessCount  int               `json:"successCount"`
	FailureCount  int               `json:"failureCount"`
	Errors        []string          `json:"errors"`
	SavedExpenses []ExpenseResponse `json:"savedExpenses"`
}

// NewCsvUploadResponse converts a batch result to its wire representation
func NewCsvUploadResponse(result *models.BatchResult) CsvUploadResponse {
	return CsvUploadResponse{
		TotalRows:     result.TotalRows,
		SuccessCount:  result.SuccessCount,
		FailureCount:  result.FailureCount,
		Errors:        result.Errors,
		SavedExpenses: NewExpenseResponses(result.SavedExpenses),
	}
}
