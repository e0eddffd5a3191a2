package repositories

import (
	"errors"
	"fmt"

	"expense-manager/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrExpenseNotFound = errors.New("expense not found")
)

// expenseRepository implements ExpenseRepositoryInterface
type expenseRepository struct {
	db *gorm.DB
}

// NewExpenseRepository creates a new expense repository
func NewExpenseRepository(db *gorm.DB) ExpenseRepositoryInterface {
	return &expenseRepository{
		db: db,
	}
}

// Create persists a new expense record
func (r *expenseRepository) Create(expense *models.Expense) error {
	if err := r.db.Create(expense).Error; err != nil {
		return fmt.Errorf("failed to create expense: %w", err)
	}
	return nil
}

// GetByID retrieves an expense by its ID
func (r *expenseRepository) GetByID(id uuid.UUID) (*models.Expense, error) {
	var expense models.Expense
	if err := r.db.First(&expense, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrExpenseNotFound
		}
		return nil, fmt.Errorf("failed to get expense: %w", err)
	}
	return &expense, nil
}

// FindAverageAmountByCategory computes AVG(amount) over all persisted
// expenses in the category. The database computes the average so the record
// being evaluated by the anomaly detector never contributes to its own
// baseline.
func (r *expenseRepository) FindAverageAmountByCategory(category string) (decimal.Decimal, bool, error) {
	row := r.db.Model(&models.Expense{}).
		Where("category = ?", category).
		Select("AVG(amount)").
		Row()

	var average decimal.NullDecimal
	if err := row.Scan(&average); err != nil {
		return decimal.Zero, false, fmt.Errorf("failed to compute category average: %w", err)
	}

	if !average.Valid {
		return decimal.Zero, false, nil
	}

	return average.Decimal, true, nil
}

// GetMonthlyTotalsPerCategory returns total spend grouped by year, month and
// category, newest months first, categories alphabetical within a month
func (r *expenseRepository) GetMonthlyTotalsPerCategory() ([]models.CategoryMonthlyTotal, error) {
	yearExpr, monthExpr := r.dateGroupingExpressions()

	rows, err := r.db.Model(&models.Expense{}).
		Select(fmt.Sprintf("%s AS year, %s AS month, category, SUM(amount) AS total", yearExpr, monthExpr)).
		Group(fmt.Sprintf("%s, %s, category", yearExpr, monthExpr)).
		Order(fmt.Sprintf("%s DESC, %s DESC, category ASC", yearExpr, monthExpr)).
		Rows()
	if err != nil {
		return nil, fmt.Errorf("failed to query monthly totals: %w", err)
	}
	defer rows.Close()

	var totals []models.CategoryMonthlyTotal
	for rows.Next() {
		var total models.CategoryMonthlyTotal
		if err := rows.Scan(&total.Year, &total.Month, &total.Category, &total.Total); err != nil {
			return nil, fmt.Errorf("failed to scan monthly total: %w", err)
		}
		totals = append(totals, total)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read monthly totals: %w", err)
	}

	return totals, nil
}

// GetTopVendorsBySpend returns the vendors with the highest all-time spend
func (r *expenseRepository) GetTopVendorsBySpend(limit int) ([]models.VendorSpend, error) {
	rows, err := r.db.Model(&models.Expense{}).
		Select("vendor_name, SUM(amount) AS total_spend").
		Group("vendor_name").
		Order("SUM(amount) DESC").
		Limit(limit).
		Rows()
	if err != nil {
		return nil, fmt.Errorf("failed to query top vendors: %w", err)
	}
	defer rows.Close()

	var vendors []models.VendorSpend
	for rows.Next() {
		var vendor models.VendorSpend
		if err := rows.Scan(&vendor.VendorName, &vendor.TotalSpend); err != nil {
			return nil, fmt.Errorf("failed to scan vendor spend: %w", err)
		}
		vendors = append(vendors, vendor)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read top vendors: %w", err)
	}

	return vendors, nil
}

// GetAnomalies returns all flagged expenses, newest date first
func (r *expenseRepository) GetAnomalies() ([]*models.Expense, error) {
	var anomalies []*models.Expense
	if err := r.db.Where("is_anomaly = ?", true).
		Order("date DESC").
		Find(&anomalies).Error; err != nil {
		return nil, fmt.Errorf("failed to list anomalies: %w", err)
	}
	return anomalies, nil
}

// CountAnomalies returns the number of flagged expenses
func (r *expenseRepository) CountAnomalies() (int64, error) {
	var count int64
	if err := r.db.Model(&models.Expense{}).
		Where("is_anomaly = ?", true).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count anomalies: %w", err)
	}
	return count, nil
}

// dateGroupingExpressions returns the year/month SQL for the active dialect.
// Tests run on sqlite, production runs on postgres.
func (r *expenseRepository) dateGroupingExpressions() (yearExpr, monthExpr string) {
	if r.db.Dialector.Name() == "sqlite" {
		return "CAST(strftime('%Y', date) AS INTEGER)", "CAST(strftime('%m', date) AS INTEGER)"
	}
	return "EXTRACT(YEAR FROM date)::int", "EXTRACT(MONTH FROM date)::int"
}
