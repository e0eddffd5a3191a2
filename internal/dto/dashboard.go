package dto

import "expense-manager/internal/models"

// CategoryTotalResponse is one category's spend for one calendar month
type CategoryTotalResponse struct {
	Year     int    `json:"year"`
	Month    int    `json:"month"`
	Category string `json:"category"`
	Total    string `json:"total"`
}

// NewCategoryTotalResponses converts monthly totals to their wire representation
func NewCategoryTotalResponses(totals []models.CategoryMonthlyTotal) []CategoryTotalResponse {
	responses := make([]CategoryTotalResponse, 0, len(totals))
	for _, total := range totals {
		responses = append(responses, CategoryTotalResponse{
			Year:     total.Year,
			Month:    total.Month,
			Category: total.Category,
			Total:    total.Total.StringFixed(2),
		})
	}
	return responses
}

// TopVendorResponse is one vendor's total spend across all time
type TopVendorResponse struct {
	VendorName string `json:"vendorName"`
	TotalSpend string `json:"totalSpend"`
}

// NewTopVendorResponses converts vendor spends to their wire representation
func NewTopVendorResponses(vendors []models.VendorSpend) []TopVendorResponse {
	responses := make([]TopVendorResponse, 0, len(vendors))
	for _, vendor := range vendors {
		responses = append(responses, TopVendorResponse{
			VendorName: vendor.VendorName,
			TotalSpend: vendor.TotalSpend.StringFixed(2),
		})
	}
	return responses
}

// AnomalyCountResponse is the anomaly dashboard counter
type AnomalyCountResponse struct {
	Count int64 `json:"count"`
}
