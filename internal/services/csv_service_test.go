package services

import (
	"strings"
	"testing"

	"expense-manager/internal/database"
	"expense-manager/internal/dto"
	"expense-manager/internal/models"
	"expense-manager/internal/repositories"

	"github.com/stretchr/testify/suite"
)

// CsvIngestServiceTestSuite is the test suite for the CSV batch coordinator
type CsvIngestServiceTestSuite struct {
	suite.Suite
	db             *database.DB
	expenseRepo    repositories.ExpenseRepositoryInterface
	expenseService ExpenseServiceInterface
	service        CsvIngestServiceInterface
}

// SetupTest initializes the test suite before each test
func (s *CsvIngestServiceTestSuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.expenseRepo = repositories.NewExpenseRepository(s.db.DB)
	mappingRepo := repositories.NewVendorCategoryMappingRepository(s.db.DB)
	categorization := NewRuleBasedCategorizationStrategy(mappingRepo)
	detector := NewAnomalyDetector(s.expenseRepo)
	s.expenseService = NewExpenseService(s.expenseRepo, categorization, detector, noopMetricsRecorder{})
	s.service = NewCsvIngestService(s.expenseService, noopMetricsRecorder{})

	database.CreateTestMapping(s.T(), s.db, "Amazon", models.CategoryShopping)
	database.CreateTestMapping(s.T(), s.db, "Swiggy", models.CategoryFoodDining)
}

// TearDownTest cleans up after each test
func (s *CsvIngestServiceTestSuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

// TestCsvIngestServiceSuite runs the test suite
func TestCsvIngestServiceSuite(t *testing.T) {
	suite.Run(t, new(CsvIngestServiceTestSuite))
}

func (s *CsvIngestServiceTestSuite) process(content string) *models.BatchResult {
	result, err := s.service.ProcessCSV(strings.NewReader(content))
	s.Require().NoError(err)
	return result
}

func (s *CsvIngestServiceTestSuite) TestProcessCSV_AllRowsValid() {
	content := "date,amount,vendorName,description\n" +
		"2025-06-01,100.00,Amazon,Books\n" +
		"2025-06-02,50.00,Swiggy,Lunch\n"

	result := s.process(content)

	s.Equal(2, result.TotalRows)
	s.Equal(2, result.SuccessCount)
	s.Equal(0, result.FailureCount)
	s.Empty(result.Errors)
	s.Require().Len(result.SavedExpenses, 2)
	s.Equal(models.CategoryShopping, result.SavedExpenses[0].Category)
	s.Equal(models.CategoryFoodDining, result.SavedExpenses[1].Category)
}

func (s *CsvIngestServiceTestSuite) TestProcessCSV_WithoutHeader() {
	content := "2025-06-01,100.00,Amazon,Books\n"

	result := s.process(content)

	s.Equal(1, result.TotalRows)
	s.Equal(1, result.SuccessCount)
}

func (s *CsvIngestServiceTestSuite) TestProcessCSV_HeaderCaseInsensitive() {
	content := "Date,Amount,VendorName,Description\n" +
		"2025-06-01,100.00,Amazon,Books\n"

	result := s.process(content)

	s.Equal(1, result.TotalRows)
	s.Equal(1, result.SuccessCount)
}

func (s *CsvIngestServiceTestSuite) TestProcessCSV_BadRowsDoNotAbortBatch() {
	content := "date,amount,vendorName,description\n" +
		"2025-06-01,100.00,Amazon,Books\n" +
		"not-a-date,50.00,Swiggy,Lunch\n" +
		"2025-06-03,75.00,Swiggy,Dinner\n" +
		"2025-06-04,-5.00,Amazon,Refund\n" +
		"2025-06-05,20.00,Amazon,Cable\n"

	result := s.process(content)

	s.Equal(5, result.TotalRows)
	s.Equal(3, result.SuccessCount)
	s.Equal(2, result.FailureCount)
	s.Equal(result.TotalRows, result.SuccessCount+result.FailureCount)
	s.Require().Len(result.Errors, 2)
	s.Equal("Row 3: Invalid date format 'not-a-date'. Expected yyyy-MM-dd.", result.Errors[0])
	s.Equal("Row 5: Amount must be greater than 0.", result.Errors[1])
}

func (s *CsvIngestServiceTestSuite) TestProcessCSV_RowNumbersCountHeader() {
	content := "date,amount,vendorName,description\n" +
		"2025-06-01,abc,Amazon,Books\n"

	result := s.process(content)

	s.Require().Len(result.Errors, 1)
	s.Equal("Row 2: Invalid amount 'abc'.", result.Errors[0])
}

func (s *CsvIngestServiceTestSuite) TestProcessCSV_RowNumbersWithoutHeader() {
	content := "2025-06-01,abc,Amazon,Books\n"

	result := s.process(content)

	s.Require().Len(result.Errors, 1)
	s.Equal("Row 1: Invalid amount 'abc'.", result.Errors[0])
}

func (s *CsvIngestServiceTestSuite) TestProcessCSV_WrongColumnCount() {
	content := "date,amount,vendorName,description\n" +
		"2025-06-01,100.00,Amazon\n"

	result := s.process(content)

	s.Require().Len(result.Errors, 1)
	s.Equal("Row 2: Expected 4 columns but found 3.", result.Errors[0])
}

func (s *CsvIngestServiceTestSuite) TestProcessCSV_ExtraColumnsAccepted() {
	content := "2025-06-01,100.00,Amazon,Books,extra\n"

	result := s.process(content)

	s.Equal(1, result.TotalRows)
	s.Equal(1, result.SuccessCount)
	s.Equal(0, result.FailureCount)
	s.Require().Len(result.SavedExpenses, 1)
	s.Equal("Books", result.SavedExpenses[0].Description)
	s.Equal(models.CategoryShopping, result.SavedExpenses[0].Category)
}

func (s *CsvIngestServiceTestSuite) TestProcessCSV_RowMatchesManualEntry() {
	seedBaseline := func() {
		for i := 0; i < 2; i++ {
			_, err := s.expenseService.AddExpense(&dto.ExpenseRequest{
				Date:       "2025-06-01",
				Amount:     requireDecimal(s.T(), "100.00"),
				VendorName: "Amazon",
			})
			s.Require().NoError(err)
		}
	}

	seedBaseline()
	result := s.process("2025-06-10,301.00,Amazon,Gadget\n")
	s.Require().Len(result.SavedExpenses, 1)
	fromCsv := result.SavedExpenses[0]

	s.Require().NoError(s.db.DB.Exec("DELETE FROM expenses").Error)

	seedBaseline()
	fromManual, err := s.expenseService.AddExpense(&dto.ExpenseRequest{
		Date:        "2025-06-10",
		Amount:      requireDecimal(s.T(), "301.00"),
		VendorName:  "Amazon",
		Description: "Gadget",
	})
	s.Require().NoError(err)

	s.Equal(fromManual.Category, fromCsv.Category)
	s.Equal(fromManual.IsAnomaly, fromCsv.IsAnomaly)
	s.True(fromManual.Amount.Equal(fromCsv.Amount))
	s.True(fromCsv.IsAnomaly)
}

func (s *CsvIngestServiceTestSuite) TestProcessCSV_BlankVendor() {
	content := "date,amount,vendorName,description\n" +
		"2025-06-01,100.00,   ,Books\n"

	result := s.process(content)

	s.Require().Len(result.Errors, 1)
	s.Equal("Row 2: Vendor name must not be blank.", result.Errors[0])
}

func (s *CsvIngestServiceTestSuite) TestProcessCSV_ZeroAmountRejected() {
	content := "2025-06-01,0,Amazon,Books\n"

	result := s.process(content)

	s.Require().Len(result.Errors, 1)
	s.Equal("Row 1: Amount must be greater than 0.", result.Errors[0])
}

func (s *CsvIngestServiceTestSuite) TestProcessCSV_LaterRowsSeeEarlierRows() {
	content := "date,amount,vendorName,description\n" +
		"2025-06-01,100.00,Amazon,Books\n" +
		"2025-06-02,100.00,Amazon,Books\n" +
		"2025-06-03,1000.00,Amazon,Laptop\n"

	result := s.process(content)

	s.Require().Len(result.SavedExpenses, 3)
	s.False(result.SavedExpenses[0].IsAnomaly)
	s.False(result.SavedExpenses[1].IsAnomaly)
	s.True(result.SavedExpenses[2].IsAnomaly)
}

func (s *CsvIngestServiceTestSuite) TestProcessCSV_EmptyFile() {
	_, err := s.service.ProcessCSV(strings.NewReader(""))

	s.ErrorIs(err, ErrCsvEmpty)
}

func (s *CsvIngestServiceTestSuite) TestProcessCSV_MalformedFile() {
	_, err := s.service.ProcessCSV(strings.NewReader("\"unterminated,100,Amazon,Books\n"))

	s.ErrorIs(err, ErrCsvMalformed)
}

func (s *CsvIngestServiceTestSuite) TestProcessCSV_HeaderOnlyFile() {
	result := s.process("date,amount,vendorName,description\n")

	s.Equal(0, result.TotalRows)
	s.Equal(0, result.SuccessCount)
	s.Equal(0, result.FailureCount)
	s.Empty(result.Errors)
	s.Empty(result.SavedExpenses)
}

func (s *CsvIngestServiceTestSuite) TestProcessCSV_QuotedFieldsWithCommas() {
	content := "date,amount,vendorName,description\n" +
		"2025-06-01,100.00,Amazon,\"Books, pens, and paper\"\n"

	result := s.process(content)

	s.Equal(1, result.SuccessCount)
	s.Equal("Books, pens, and paper", result.SavedExpenses[0].Description)
}
