package repositories

import (
	"expense-manager/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ExpenseRepositoryInterface defines the contract for expense persistence.
// The ingestion pipeline only ever appends; records are never updated or
// deleted once created.
type ExpenseRepositoryInterface interface {
	Create(expense *models.Expense) error
	GetByID(id uuid.UUID) (*models.Expense, error)

	// FindAverageAmountByCategory returns the mean amount of all persisted
	// expenses in the category. found is false when the category has no
	// records yet.
	FindAverageAmountByCategory(category string) (average decimal.Decimal, found bool, err error)

	// Dashboard aggregate reads
	GetMonthlyTotalsPerCategory() ([]models.CategoryMonthlyTotal, error)
	GetTopVendorsBySpend(limit int) ([]models.VendorSpend, error)
	GetAnomalies() ([]*models.Expense, error)
	CountAnomalies() (int64, error)
}

// VendorCategoryMappingRepositoryInterface defines the contract for the
// vendor catalog. The pipeline only reads it; writes happen at seed time.
type VendorCategoryMappingRepositoryInterface interface {
	Create(mapping *models.VendorCategoryMapping) error
	FindByVendorName(vendorName string) (*models.VendorCategoryMapping, error)
	Count() (int64, error)
}
