package handlers

import (
	"net/http"
	"strconv"

	"expense-manager/internal/services"

	"github.com/labstack/echo/v4"
)

const (
	defaultSampleCount = 100
	maxSampleCount     = 1000
)

// DevHandler handles development-only endpoints
// These endpoints should only be available in development environments
type DevHandler struct {
	expenseService services.ExpenseServiceInterface
	generator      services.ExpenseGeneratorInterface
}

// NewDevHandler creates a new development handler
func NewDevHandler(expenseService services.ExpenseServiceInterface) *DevHandler {
	return &DevHandler{
		expenseService: expenseService,
		generator:      services.NewSampleExpenseGenerator(),
	}
}

// GenerateTestData generates realistic sample expenses
//
// Method: POST /api/v1/dev/generate-test-data
// Environment: Development only
//
// Query parameters:
//   - count: Number of expenses to generate (default: 100, max: 1000)
//
// Success Response: 200 OK
//   - message: Success message
//   - expenses_created: Number of expenses created
func (h *DevHandler) GenerateTestData(c echo.Context) error {
	count := defaultSampleCount
	if countParam := c.QueryParam("count"); countParam != "" {
		parsed, err := strconv.Atoi(countParam)
		if err != nil || parsed <= 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid count parameter")
		}
		if parsed > maxSampleCount {
			parsed = maxSampleCount
		}
		count = parsed
	}

	created := 0
	for _, request := range h.generator.GenerateSampleExpenses(count) {
		if _, err := h.expenseService.AddExpense(request); err != nil {
			continue
		}
		created++
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":          "sample expenses generated",
		"expenses_created": created,
	})
}
