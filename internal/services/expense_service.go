package services

import (
	"fmt"
	"log/slog"
	"time"

	"expense-manager/internal/dto"
	"expense-manager/internal/models"
	"expense-manager/internal/repositories"
)

// defaultTopVendorsLimit caps the top-vendors dashboard to five rows
const defaultTopVendorsLimit = 5

type expenseService struct {
	expenseRepo    repositories.ExpenseRepositoryInterface
	categorization CategorizationStrategy
	anomalyDetect  AnomalyDetectorInterface
	metrics        MetricsRecorderInterface
	logger         *slog.Logger
}

// NewExpenseService creates the expense ingestion and dashboard service
func NewExpenseService(
	expenseRepo repositories.ExpenseRepositoryInterface,
	categorization CategorizationStrategy,
	anomalyDetect AnomalyDetectorInterface,
	metrics MetricsRecorderInterface,
) ExpenseServiceInterface {
	return &expenseService{
		expenseRepo:    expenseRepo,
		categorization: categorization,
		anomalyDetect:  anomalyDetect,
		metrics:        metrics,
		logger:         slog.Default(),
	}
}

// AddExpense runs the full ingestion pipeline for one expense: resolve the
// category from the vendor, evaluate the anomaly threshold against existing
// records in that category, then persist. The anomaly check happens before
// the insert so the new record does not shift its own baseline.
func (s *expenseService) AddExpense(req *dto.ExpenseRequest) (*models.Expense, error) {
	start := time.Now()

	category := s.categorization.Categorize(req.VendorName)

	isAnomaly, err := s.anomalyDetect.IsAnomaly(category, req.Amount)
	if err != nil {
		return nil, fmt.Errorf("failed to run anomaly detection: %w", err)
	}

	expense := &models.Expense{
		Date:        req.ParsedDate(),
		Amount:      req.Amount,
		VendorName:  req.VendorName,
		Description: req.Description,
		Category:    category,
		IsAnomaly:   isAnomaly,
	}

	if err := s.expenseRepo.Create(expense); err != nil {
		return nil, fmt.Errorf("failed to persist expense: %w", err)
	}

	s.metrics.IncrementCounter("expense.ingested", map[string]string{"category": category})
	if isAnomaly {
		s.metrics.IncrementCounter("expense.anomaly_detected", map[string]string{"category": category})
	}
	s.metrics.RecordProcessingTime("expense.add", time.Since(start))

	s.logger.Info("expense recorded",
		slog.String("expense_id", expense.ID.String()),
		slog.String("vendor_name", expense.VendorName),
		slog.String("category", expense.Category),
		slog.String("amount", expense.Amount.String()),
		slog.Bool("is_anomaly", expense.IsAnomaly),
	)

	return expense, nil
}

func (s *expenseService) GetMonthlyTotalsPerCategory() ([]models.CategoryMonthlyTotal, error) {
	totals, err := s.expenseRepo.GetMonthlyTotalsPerCategory()
	if err != nil {
		return nil, fmt.Errorf("failed to load monthly totals: %w", err)
	}
	return totals, nil
}

func (s *expenseService) GetTopVendors() ([]models.VendorSpend, error) {
	vendors, err := s.expenseRepo.GetTopVendorsBySpend(defaultTopVendorsLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to load top vendors: %w", err)
	}
	return vendors, nil
}

func (s *expenseService) GetAnomalies() ([]*models.Expense, error) {
	anomalies, err := s.expenseRepo.GetAnomalies()
	if err != nil {
		return nil, fmt.Errorf("failed to load anomalies: %w", err)
	}
	return anomalies, nil
}

func (s *expenseService) GetAnomalyCount() (int64, error) {
	count, err := s.expenseRepo.CountAnomalies()
	if err != nil {
		return 0, fmt.Errorf("failed to count anomalies: %w", err)
	}
	return count, nil
}

