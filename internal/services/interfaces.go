package services

import (
	"io"
	"time"

	"expense-manager/internal/dto"
	"expense-manager/internal/models"

	"github.com/shopspring/decimal"
)

// CategorizationStrategy maps a vendor name to a spending category. It never
// fails and never returns an empty category; unmatched vendors resolve to
// models.DefaultCategory. Rule-based lookup is the only implementation today,
// but the pipeline depends on this interface so alternative strategies can be
// slotted in.
type CategorizationStrategy interface {
	Categorize(vendorName string) string
}

// AnomalyDetectorInterface decides whether an amount is abnormal for a
// category, based on the history persisted at the moment of evaluation
type AnomalyDetectorInterface interface {
	IsAnomaly(category string, amount decimal.Decimal) (bool, error)
}

// ExpenseServiceInterface is the single-record ingestion pipeline plus the
// dashboard read passthroughs
type ExpenseServiceInterface interface {
	// AddExpense classifies, anomaly-checks and persists one candidate.
	// Used identically by the manual-entry API and by every CSV row.
	AddExpense(request *dto.ExpenseRequest) (*models.Expense, error)

	GetMonthlyTotalsPerCategory() ([]models.CategoryMonthlyTotal, error)
	GetTopVendors() ([]models.VendorSpend, error)
	GetAnomalies() ([]*models.Expense, error)
	GetAnomalyCount() (int64, error)
}

// CsvIngestServiceInterface drives the ingestion pipeline over an uploaded
// CSV file, isolating failures per row
type CsvIngestServiceInterface interface {
	ProcessCSV(reader io.Reader) (*models.BatchResult, error)
}

// MetricsRecorderInterface decouples services from the metrics backend
type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}

// ExpenseGeneratorInterface generates realistic expense data for development
// dashboards and tests
type ExpenseGeneratorInterface interface {
	GenerateSampleExpenses(count int) []*dto.ExpenseRequest
}
