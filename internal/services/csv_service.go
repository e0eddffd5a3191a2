package services

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"expense-manager/internal/dto"
	"expense-manager/internal/models"

	"github.com/shopspring/decimal"
)

var (
	// ErrCsvEmpty is returned when the uploaded file contains no rows at all
	ErrCsvEmpty = errors.New("csv file is empty")
	// ErrCsvMalformed is returned when the file cannot be parsed as CSV
	ErrCsvMalformed = errors.New("csv file is malformed")
)

// expectedCsvColumns is the fixed row shape: date, amount, vendor, description
const expectedCsvColumns = 4

type csvIngestService struct {
	expenseService ExpenseServiceInterface
	metrics        MetricsRecorderInterface
	logger         *slog.Logger
}

// NewCsvIngestService creates the CSV batch coordinator
func NewCsvIngestService(expenseService ExpenseServiceInterface, metrics MetricsRecorderInterface) CsvIngestServiceInterface {
	return &csvIngestService{
		expenseService: expenseService,
		metrics:        metrics,
		logger:         slog.Default(),
	}
}

// ProcessCSV parses the upload and runs every data row through the single
// record pipeline in file order. Row failures are isolated: a bad row is
// recorded in the result and processing continues with the next row. Only a
// structurally unreadable or empty file fails the batch as a whole.
func (s *csvIngestService) ProcessCSV(reader io.Reader) (*models.BatchResult, error) {
	start := time.Now()

	csvReader := csv.NewReader(reader)
	csvReader.FieldsPerRecord = -1

	rows, err := csvReader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCsvMalformed, err)
	}
	if len(rows) == 0 {
		return nil, ErrCsvEmpty
	}

	startIndex := 0
	if isHeaderRow(rows[0]) {
		startIndex = 1
	}

	result := models.NewBatchResult()
	result.TotalRows = len(rows) - startIndex

	for i := startIndex; i < len(rows); i++ {
		rowNumber := i + 1

		request, err := parseRow(rows[i])
		if err != nil {
			result.RecordFailure(fmt.Sprintf("Row %d: %s", rowNumber, err.Error()))
			continue
		}

		expense, err := s.expenseService.AddExpense(request)
		if err != nil {
			result.RecordFailure(fmt.Sprintf("Row %d: %s", rowNumber, err.Error()))
			continue
		}

		result.RecordSuccess(expense)
	}

	s.metrics.IncrementCounter("csv.batch_processed", nil)
	s.metrics.RecordProcessingTime("csv.batch", time.Since(start))
	s.metrics.RecordGauge("csv.last_batch_failures", float64(result.FailureCount), nil)

	s.logger.Info("csv batch processed",
		slog.Int("total_rows", result.TotalRows),
		slog.Int("success_count", result.SuccessCount),
		slog.Int("failure_count", result.FailureCount),
		slog.Duration("elapsed", time.Since(start)),
	)

	return result, nil
}

// isHeaderRow detects the conventional header line by its first cell. Quoted
// headers survive upstream tools that re-quote every cell.
func isHeaderRow(row []string) bool {
	if len(row) == 0 {
		return false
	}
	first := strings.ToLower(strings.TrimSpace(row[0]))
	return first == "date" || first == "\"date\""
}

// parseRow converts one data row into an expense request, enforcing the
// fixed column layout and field formats. Rows carrying extra trailing fields
// (an unquoted comma in a description) are accepted and read as their first
// four columns. The returned error message is the row-level reason surfaced
// to the client.
func parseRow(row []string) (*dto.ExpenseRequest, error) {
	if len(row) < expectedCsvColumns {
		return nil, fmt.Errorf("Expected %d columns but found %d.", expectedCsvColumns, len(row))
	}

	dateText := strings.TrimSpace(row[0])
	amountText := strings.TrimSpace(row[1])
	vendorName := strings.TrimSpace(row[2])
	description := strings.TrimSpace(row[3])

	if _, err := time.Parse(dto.ExpenseDateLayout, dateText); err != nil {
		return nil, fmt.Errorf("Invalid date format '%s'. Expected yyyy-MM-dd.", dateText)
	}

	amount, err := decimal.NewFromString(amountText)
	if err != nil {
		return nil, fmt.Errorf("Invalid amount '%s'.", amountText)
	}
	if !amount.IsPositive() {
		return nil, errors.New("Amount must be greater than 0.")
	}

	if vendorName == "" {
		return nil, errors.New("Vendor name must not be blank.")
	}

	return &dto.ExpenseRequest{
		Date:        dateText,
		Amount:      amount,
		VendorName:  vendorName,
		Description: description,
	}, nil
}
