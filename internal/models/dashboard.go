package models

import "github.com/shopspring/decimal"

// CategoryMonthlyTotal contains total spend for one category in one calendar month
type CategoryMonthlyTotal struct {
	Year     int             `json:"year"`
	Month    int             `json:"month"`
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
}

// VendorSpend contains total spend for one vendor across all time
type VendorSpend struct {
	VendorName string          `json:"vendorName"`
	TotalSpend decimal.Decimal `json:"totalSpend"`
}
