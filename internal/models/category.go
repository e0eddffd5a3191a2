package models

// Seeded spending categories. The set is open: any category present in the
// vendor mapping table is valid, and unmapped vendors fall back to
// DefaultCategory.
const (
	CategoryShopping      = "Shopping"
	CategoryFoodDining    = "Food & Dining"
	CategoryTransport     = "Transport"
	CategoryTravel        = "Travel"
	CategoryEntertainment = "Entertainment"
	CategoryHealthcare    = "Healthcare"
	CategoryUtilities     = "Utilities"
	CategoryFinance       = "Finance"

	// DefaultCategory is assigned when no vendor mapping exists
	DefaultCategory = "Others"
)

// SeededCategories returns the categories covered by the vendor seed data
func SeededCategories() []string {
	return []string{
		CategoryShopping,
		CategoryFoodDining,
		CategoryTransport,
		CategoryTravel,
		CategoryEntertainment,
		CategoryHealthcare,
		CategoryUtilities,
		CategoryFinance,
	}
}
