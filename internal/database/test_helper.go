package database

import (
	"fmt"
	"testing"
	"time"

	"expense-manager/internal/config"
	"expense-manager/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func SetupTestDB(t *testing.T) *DB {
	t.Helper()

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), gormConfig)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	testDB := &DB{
		DB: db,
		config: &config.DatabaseConfig{
			MaxConnections: 1,
			MaxIdleConns:   1,
		},
	}

	if err := testDB.AutoMigrate(); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return testDB
}

func CleanupTestDB(t *testing.T, db *DB) {
	t.Helper()

	tables := []string{
		"expenses",
		"vendor_category_mappings",
	}

	for _, table := range tables {
		if err := db.Exec(fmt.Sprintf("DELETE FROM %s", table)).Error; err != nil {
			t.Logf("failed to cleanup table %s: %v", table, err)
		}
	}
}

func CreateTestMapping(t *testing.T, db *DB, vendorName, category string) *models.VendorCategoryMapping {
	t.Helper()

	mapping := &models.VendorCategoryMapping{
		VendorName: vendorName,
		Category:   category,
	}

	if err := db.Create(mapping).Error; err != nil {
		t.Fatalf("failed to create test vendor mapping: %v", err)
	}

	return mapping
}

func CreateTestExpense(t *testing.T, db *DB, category string, amount decimal.Decimal) *models.Expense {
	t.Helper()

	expense := &models.Expense{
		Date:       time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
		Amount:     amount,
		VendorName: "Test Vendor",
		Category:   category,
	}

	if err := db.Create(expense).Error; err != nil {
		t.Fatalf("failed to create test expense: %v", err)
	}

	return expense
}
