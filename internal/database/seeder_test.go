package database

import (
	"testing"

	"expense-manager/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedVendorMappings_PopulatesEmptyCatalog(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	require.NoError(t, db.SeedVendorMappings())

	var count int64
	require.NoError(t, db.Model(&models.VendorCategoryMapping{}).Count(&count).Error)
	assert.Equal(t, int64(len(seedMappings)), count)

	var mapping models.VendorCategoryMapping
	require.NoError(t, db.Where("vendor_name = ?", "Amazon").First(&mapping).Error)
	assert.Equal(t, models.CategoryShopping, mapping.Category)

	require.NoError(t, db.Where("vendor_name = ?", "Zerodha").First(&mapping).Error)
	assert.Equal(t, models.CategoryFinance, mapping.Category)
}

func TestSeedVendorMappings_Idempotent(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	require.NoError(t, db.SeedVendorMappings())
	require.NoError(t, db.SeedVendorMappings())

	var count int64
	require.NoError(t, db.Model(&models.VendorCategoryMapping{}).Count(&count).Error)
	assert.Equal(t, int64(len(seedMappings)), count)
}

func TestSeedVendorMappings_SkipsNonEmptyCatalog(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	CreateTestMapping(t, db, "Local Cafe", models.CategoryFoodDining)

	require.NoError(t, db.SeedVendorMappings())

	var count int64
	require.NoError(t, db.Model(&models.VendorCategoryMapping{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}
