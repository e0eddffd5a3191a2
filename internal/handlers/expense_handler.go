package handlers

import (
	stderrors "errors"
	"fmt"
	"net/http"

	"expense-manager/internal/dto"
	"expense-manager/internal/errors"
	"expense-manager/internal/services"

	"github.com/labstack/echo/v4"
)

// ExpenseHandler handles expense ingestion and dashboard HTTP requests
type ExpenseHandler struct {
	expenseService services.ExpenseServiceInterface
	csvService     services.CsvIngestServiceInterface
	maxCSVBytes    int64
}

// NewExpenseHandler creates a new expense handler
func NewExpenseHandler(
	expenseService services.ExpenseServiceInterface,
	csvService services.CsvIngestServiceInterface,
	maxCSVBytes int64,
) *ExpenseHandler {
	return &ExpenseHandler{
		expenseService: expenseService,
		csvService:     csvService,
		maxCSVBytes:    maxCSVBytes,
	}
}

// CreateExpense records a single expense
// @Summary Create expense
// @Description Record one expense; the vendor is categorized and the amount checked against the category's spending pattern
// @Tags Expenses
// @Accept json
// @Produce json
// @Param request body dto.ExpenseRequest true "Expense details"
// @Success 201 {object} dto.ExpenseResponse "Expense recorded"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request payload"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /expenses [post]
func (h *ExpenseHandler) CreateExpense(c echo.Context) error {
	var req dto.ExpenseRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	expense, err := h.expenseService.AddExpense(&req)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, dto.NewExpenseResponse(expense))
}

// UploadCSV ingests a batch of expenses from a CSV file
// @Summary Upload expenses CSV
// @Description Process a CSV file of expenses; failed rows are reported individually and do not abort the batch
// @Tags Expenses
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "CSV file (date,amount,vendorName,description)"
// @Success 200 {object} dto.CsvUploadResponse "Batch processing summary"
// @Failure 400 {object} errors.ErrorResponse "CSV_001 - Missing file, CSV_002 - Empty file, CSV_003 - Malformed file or CSV_004 - File too large"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /expenses/upload-csv [post]
func (h *ExpenseHandler) UploadCSV(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return SendError(c, errors.CsvFileMissing)
	}

	if fileHeader.Size > h.maxCSVBytes {
		return SendError(c, errors.CsvFileTooLarge, errors.WithDetails(
			fmt.Sprintf("File size %d bytes exceeds the limit of %d bytes", fileHeader.Size, h.maxCSVBytes),
		))
	}

	file, err := fileHeader.Open()
	if err != nil {
		return SendError(c, errors.CsvFileUnreadable)
	}
	defer file.Close()

	result, err := h.csvService.ProcessCSV(file)
	if err != nil {
		switch {
		case stderrors.Is(err, services.ErrCsvEmpty):
			return SendError(c, errors.CsvFileEmpty)
		case stderrors.Is(err, services.ErrCsvMalformed):
			return SendError(c, errors.CsvParseFailed, errors.WithDetails(err.Error()))
		default:
			return SendSystemError(c, err)
		}
	}

	return c.JSON(http.StatusOK, dto.NewCsvUploadResponse(result))
}

// GetMonthlyTotals returns per-category spend grouped by calendar month
// @Summary Monthly totals per category
// @Description Spend totals grouped by year, month and category, most recent first
// @Tags Dashboard
// @Produce json
// @Success 200 {array} dto.CategoryTotalResponse "Monthly totals"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /expenses/dashboard/monthly-totals [get]
func (h *ExpenseHandler) GetMonthlyTotals(c echo.Context) error {
	totals, err := h.expenseService.GetMonthlyTotalsPerCategory()
	if err != nil {
		return SendSystemError(c, err)
	}
	return c.JSON(http.StatusOK, dto.NewCategoryTotalResponses(totals))
}

// GetTopVendors returns the highest-spend vendors
// @Summary Top vendors by spend
// @Description Vendors ranked by total spend across all recorded expenses
// @Tags Dashboard
// @Produce json
// @Success 200 {array} dto.TopVendorResponse "Top vendors"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /expenses/dashboard/top-vendors [get]
func (h *ExpenseHandler) GetTopVendors(c echo.Context) error {
	vendors, err := h.expenseService.GetTopVendors()
	if err != nil {
		return SendSystemError(c, err)
	}
	return c.JSON(http.StatusOK, dto.NewTopVendorResponses(vendors))
}

// GetAnomalies returns all expenses flagged as anomalous
// @Summary List anomalies
// @Description All expenses flagged as anomalous, most recent first
// @Tags Dashboard
// @Produce json
// @Success 200 {array} dto.ExpenseResponse "Anomalous expenses"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /expenses/dashboard/anomalies [get]
func (h *ExpenseHandler) GetAnomalies(c echo.Context) error {
	anomalies, err := h.expenseService.GetAnomalies()
	if err != nil {
		return SendSystemError(c, err)
	}
	return c.JSON(http.StatusOK, dto.NewExpenseResponses(anomalies))
}

// GetAnomalyCount returns the total number of anomalous expenses
// @Summary Count anomalies
// @Description Total number of expenses flagged as anomalous
// @Tags Dashboard
// @Produce json
// @Success 200 {object} dto.AnomalyCountResponse "Anomaly count"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /expenses/dashboard/anomalies/count [get]
func (h *ExpenseHandler) GetAnomalyCount(c echo.Context) error {
	count, err := h.expenseService.GetAnomalyCount()
	if err != nil {
		return SendSystemError(c, err)
	}
	return c.JSON(http.StatusOK, dto.AnomalyCountResponse{Count: count})
}
