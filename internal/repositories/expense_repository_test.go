package repositories

import (
	"testing"
	"time"

	"expense-manager/internal/database"
	"expense-manager/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// ExpenseRepositoryTestSuite is the test suite for the expense repository
type ExpenseRepositoryTestSuite struct {
	suite.Suite
	db   *database.DB
	repo ExpenseRepositoryInterface
}

// SetupTest initializes the test suite before each test
func (s *ExpenseRepositoryTestSuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewExpenseRepository(s.db.DB)
}

// TearDownTest cleans up after each test
func (s *ExpenseRepositoryTestSuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

// TestExpenseRepositorySuite runs the test suite
func TestExpenseRepositorySuite(t *testing.T) {
	suite.Run(t, new(ExpenseRepositoryTestSuite))
}

func (s *ExpenseRepositoryTestSuite) createExpense(date time.Time, vendor, category, amount string, isAnomaly bool) *models.Expense {
	value, err := decimal.NewFromString(amount)
	s.Require().NoError(err)

	expense := &models.Expense{
		Date:       date,
		Amount:     value,
		VendorName: vendor,
		Category:   category,
		IsAnomaly:  isAnomaly,
	}
	s.Require().NoError(s.repo.Create(expense))
	return expense
}

func (s *ExpenseRepositoryTestSuite) TestCreate_AssignsIDAndTimestamp() {
	expense := s.createExpense(time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), "Amazon", models.CategoryShopping, "100.00", false)

	s.NotEqual(uuid.Nil, expense.ID)
	s.False(expense.CreatedAt.IsZero())
}

func (s *ExpenseRepositoryTestSuite) TestCreate_RejectsInvalidExpense() {
	err := s.repo.Create(&models.Expense{
		Date:       time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		Amount:     decimal.NewFromInt(-5),
		VendorName: "Amazon",
		Category:   models.CategoryShopping,
	})

	s.Error(err)
	s.ErrorIs(err, models.ErrExpenseAmountInvalid)
}

func (s *ExpenseRepositoryTestSuite) TestGetByID() {
	created := s.createExpense(time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), "Amazon", models.CategoryShopping, "100.00", false)

	found, err := s.repo.GetByID(created.ID)

	s.NoError(err)
	s.Equal(created.ID, found.ID)
	s.Equal("Amazon", found.VendorName)
}

func (s *ExpenseRepositoryTestSuite) TestGetByID_NotFound() {
	_, err := s.repo.GetByID(uuid.New())

	s.ErrorIs(err, ErrExpenseNotFound)
}

func (s *ExpenseRepositoryTestSuite) TestFindAverageAmountByCategory_NoRecords() {
	_, found, err := s.repo.FindAverageAmountByCategory(models.CategoryShopping)

	s.NoError(err)
	s.False(found)
}

func (s *ExpenseRepositoryTestSuite) TestFindAverageAmountByCategory() {
	date := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	s.createExpense(date, "Amazon", models.CategoryShopping, "100.00", false)
	s.createExpense(date, "Flipkart", models.CategoryShopping, "200.00", false)
	s.createExpense(date, "Swiggy", models.CategoryFoodDining, "999.00", false)

	average, found, err := s.repo.FindAverageAmountByCategory(models.CategoryShopping)

	s.NoError(err)
	s.True(found)
	s.True(average.Equal(decimal.NewFromInt(150)), "expected 150, got %s", average)
}

func (s *ExpenseRepositoryTestSuite) TestGetMonthlyTotalsPerCategory_GroupingAndOrder() {
	s.createExpense(time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), "Amazon", models.CategoryShopping, "100.00", false)
	s.createExpense(time.Date(2025, 6, 20, 0, 0, 0, 0, time.UTC), "Flipkart", models.CategoryShopping, "50.00", false)
	s.createExpense(time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC), "Swiggy", models.CategoryFoodDining, "30.00", false)
	s.createExpense(time.Date(2025, 5, 10, 0, 0, 0, 0, time.UTC), "Amazon", models.CategoryShopping, "70.00", false)

	totals, err := s.repo.GetMonthlyTotalsPerCategory()

	s.NoError(err)
	s.Require().Len(totals, 3)

	s.Equal(2025, totals[0].Year)
	s.Equal(6, totals[0].Month)
	s.Equal(models.CategoryFoodDining, totals[0].Category)
	s.True(totals[0].Total.Equal(decimal.NewFromInt(30)))

	s.Equal(models.CategoryShopping, totals[1].Category)
	s.Equal(6, totals[1].Month)
	s.True(totals[1].Total.Equal(decimal.NewFromInt(150)))

	s.Equal(5, totals[2].Month)
	s.True(totals[2].Total.Equal(decimal.NewFromInt(70)))
}

func (s *ExpenseRepositoryTestSuite) TestGetTopVendorsBySpend_OrderAndLimit() {
	date := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	s.createExpense(date, "Amazon", models.CategoryShopping, "100.00", false)
	s.createExpense(date, "Amazon", models.CategoryShopping, "200.00", false)
	s.createExpense(date, "Swiggy", models.CategoryFoodDining, "500.00", false)
	s.createExpense(date, "Uber", models.CategoryTransport, "50.00", false)

	vendors, err := s.repo.GetTopVendorsBySpend(2)

	s.NoError(err)
	s.Require().Len(vendors, 2)
	s.Equal("Swiggy", vendors[0].VendorName)
	s.True(vendors[0].TotalSpend.Equal(decimal.NewFromInt(500)))
	s.Equal("Amazon", vendors[1].VendorName)
	s.True(vendors[1].TotalSpend.Equal(decimal.NewFromInt(300)))
}

func (s *ExpenseRepositoryTestSuite) TestGetAnomalies_NewestFirst() {
	s.createExpense(time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), "Amazon", models.CategoryShopping, "100.00", true)
	s.createExpense(time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC), "Flipkart", models.CategoryShopping, "900.00", true)
	s.createExpense(time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC), "Swiggy", models.CategoryFoodDining, "30.00", false)

	anomalies, err := s.repo.GetAnomalies()

	s.NoError(err)
	s.Require().Len(anomalies, 2)
	s.Equal("Flipkart", anomalies[0].VendorName)
	s.Equal("Amazon", anomalies[1].VendorName)
}

func (s *ExpenseRepositoryTestSuite) TestCountAnomalies() {
	date := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	s.createExpense(date, "Amazon", models.CategoryShopping, "100.00", true)
	s.createExpense(date, "Swiggy", models.CategoryFoodDining, "30.00", false)

	count, err := s.repo.CountAnomalies()

	s.NoError(err)
	s.Equal(int64(1), count)
}
