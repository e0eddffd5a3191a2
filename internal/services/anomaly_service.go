package services

import (
	"fmt"
	"log/slog"

	"expense-manager/internal/repositories"

	"github.com/shopspring/decimal"
)

// anomalyMultiplier is the threshold factor: an expense is anomalous when its
// amount exceeds this multiple of the category's historical average.
var anomalyMultiplier = decimal.NewFromInt(3)

// anomalyDetector flags expenses whose amount exceeds 3x the average of all
// previously persisted expenses in the same category. The average is computed
// from the store at the moment of evaluation, so the record under evaluation
// never contributes to its own baseline.
type anomalyDetector struct {
	expenseRepo repositories.ExpenseRepositoryInterface
	logger      *slog.Logger
}

// NewAnomalyDetector creates the threshold-based anomaly detector
func NewAnomalyDetector(expenseRepo repositories.ExpenseRepositoryInterface) AnomalyDetectorInterface {
	return &anomalyDetector{
		expenseRepo: expenseRepo,
		logger:      slog.Default(),
	}
}

// IsAnomaly reports whether the amount is abnormal for the category. A
// category's first expense is never anomalous: with no baseline there is
// nothing to compare against. All arithmetic is exact decimal; an amount of
// exactly 3x the average is not anomalous.
func (d *anomalyDetector) IsAnomaly(category string, amount decimal.Decimal) (bool, error) {
	average, found, err := d.expenseRepo.FindAverageAmountByCategory(category)
	if err != nil {
		return false, fmt.Errorf("failed to evaluate anomaly threshold: %w", err)
	}

	if !found {
		d.logger.Debug("no existing expenses in category, not marking as anomaly",
			slog.String("category", category),
		)
		return false, nil
	}

	threshold := average.Mul(anomalyMultiplier)
	anomaly := amount.GreaterThan(threshold)

	d.logger.Debug("anomaly threshold evaluated",
		slog.String("category", category),
		slog.String("average", average.String()),
		slog.String("threshold", threshold.String()),
		slog.String("amount", amount.String()),
		slog.Bool("is_anomaly", anomaly),
	)

	return anomaly, nil
}
