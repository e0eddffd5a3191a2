package database

import (
	"fmt"
	"log"

	"expense-manager/internal/models"
)

// seedMappings is the bootstrap vendor catalog. Loaded once, when the
// mapping table is empty; the pipeline treats the table as read-only after.
var seedMappings = []models.VendorCategoryMapping{
	{VendorName: "Amazon", Category: models.CategoryShopping},
	{VendorName: "Flipkart", Category: models.CategoryShopping},
	{VendorName: "Myntra", Category: models.CategoryShopping},
	{VendorName: "Swiggy", Category: models.CategoryFoodDining},
	{VendorName: "Zomato", Category: models.CategoryFoodDining},
	{VendorName: "Dominos", Category: models.CategoryFoodDining},
	{VendorName: "McDonald's", Category: models.CategoryFoodDining},
	{VendorName: "Starbucks", Category: models.CategoryFoodDining},
	{VendorName: "Uber", Category: models.CategoryTransport},
	{VendorName: "Ola", Category: models.CategoryTransport},
	{VendorName: "Rapido", Category: models.CategoryTransport},
	{VendorName: "IRCTC", Category: models.CategoryTransport},
	{VendorName: "MakeMyTrip", Category: models.CategoryTravel},
	{VendorName: "Goibibo", Category: models.CategoryTravel},
	{VendorName: "AirIndia", Category: models.CategoryTravel},
	{VendorName: "IndiGo", Category: models.CategoryTravel},
	{VendorName: "Netflix", Category: models.CategoryEntertainment},
	{VendorName: "Spotify", Category: models.CategoryEntertainment},
	{VendorName: "PrimeVideo", Category: models.CategoryEntertainment},
	{VendorName: "BookMyShow", Category: models.CategoryEntertainment},
	{VendorName: "Apollo Pharmacy", Category: models.CategoryHealthcare},
	{VendorName: "1mg", Category: models.CategoryHealthcare},
	{VendorName: "Netmeds", Category: models.CategoryHealthcare},
	{VendorName: "Max Healthcare", Category: models.CategoryHealthcare},
	{VendorName: "Airtel", Category: models.CategoryUtilities},
	{VendorName: "Jio", Category: models.CategoryUtilities},
	{VendorName: "BSES", Category: models.CategoryUtilities},
	{VendorName: "Tata Power", Category: models.CategoryUtilities},
	{VendorName: "HDFC Bank", Category: models.CategoryFinance},
	{VendorName: "ICICI Bank", Category: models.CategoryFinance},
	{VendorName: "SBI", Category: models.CategoryFinance},
	{VendorName: "Zerodha", Category: models.CategoryFinance},
}

// SeedVendorMappings inserts the bootstrap vendor catalog if the table is
// empty. Safe to call on every startup.
func (db *DB) SeedVendorMappings() error {
	var count int64
	if err := db.Model(&models.VendorCategoryMapping{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count vendor mappings: %w", err)
	}

	if count > 0 {
		log.Println("Vendor category mappings already seeded. Skipping.")
		return nil
	}

	mappings := make([]models.VendorCategoryMapping, len(seedMappings))
	copy(mappings, seedMappings)

	if err := db.Create(&mappings).Error; err != nil {
		return fmt.Errorf("failed to seed vendor mappings: %w", err)
	}

	log.Printf("Seeded %d vendor-category mappings.", len(mappings))
	return nil
}
