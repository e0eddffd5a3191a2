package services

import (
	"time"

	"expense-manager/internal/dto"
	"expense-manager/internal/models"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"
)

// sampleVendors are drawn from the seeded vendor catalog so generated data
// exercises real category mappings, with a few unmapped names mixed in to
// land in the fallback category.
var sampleVendors = []string{
	"Amazon", "Flipkart", "Swiggy", "Zomato", "Uber", "Ola",
	"Netflix", "Spotify", "BigBasket", "Apollo Pharmacy",
	"Indigo", "MakeMyTrip", "Zerodha", "Airtel", "Jio",
	"Corner Bakery", "Village Hardware",
}

type sampleExpenseGenerator struct{}

// NewSampleExpenseGenerator creates a generator for development seed data
func NewSampleExpenseGenerator() ExpenseGeneratorInterface {
	return &sampleExpenseGenerator{}
}

// GenerateSampleExpenses produces count plausible expense requests spread
// over the last six months. Amounts stay within two decimal places so the
// generated data matches what the validation layer accepts.
func (g *sampleExpenseGenerator) GenerateSampleExpenses(count int) []*dto.ExpenseRequest {
	requests := make([]*dto.ExpenseRequest, 0, count)
	now := time.Now()

	for i := 0; i < count; i++ {
		daysBack := gofakeit.Number(0, 180)
		date := now.AddDate(0, 0, -daysBack)

		amount := decimal.NewFromFloat(gofakeit.Price(50, 5000)).Round(2)
		vendor := sampleVendors[gofakeit.Number(0, len(sampleVendors)-1)]

		description := ""
		if gofakeit.Bool() {
			description = gofakeit.ProductName()
		}
		if len(description) > models.MaxDescriptionLength {
			description = description[:models.MaxDescriptionLength]
		}

		requests = append(requests, &dto.ExpenseRequest{
			Date:        date.Format(dto.ExpenseDateLayout),
			Amount:      amount,
			VendorName:  vendor,
			Description: description,
		})
	}

	return requests
}
