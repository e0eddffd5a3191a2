package services

import (
	"errors"
	"log/slog"
	"strings"

	"expense-manager/internal/models"
	"expense-manager/internal/repositories"
)

// ruleBasedCategorizationStrategy resolves categories through the vendor
// mapping table. Lookups are case-insensitive; anything unmapped, blank or
// unreadable falls back to the default category, so categorization itself
// never fails a pipeline run.
type ruleBasedCategorizationStrategy struct {
	mappingRepo repositories.VendorCategoryMappingRepositoryInterface
	logger      *slog.Logger
}

// NewRuleBasedCategorizationStrategy creates the rule-based categorizer
func NewRuleBasedCategorizationStrategy(
	mappingRepo repositories.VendorCategoryMappingRepositoryInterface,
) CategorizationStrategy {
	return &ruleBasedCategorizationStrategy{
		mappingRepo: mappingRepo,
		logger:      slog.Default(),
	}
}

// Categorize maps a vendor name to its category
func (s *ruleBasedCategorizationStrategy) Categorize(vendorName string) string {
	trimmed := strings.TrimSpace(vendorName)
	if trimmed == "" {
		s.logger.Warn("vendor name is blank, using default category",
			slog.String("category", models.DefaultCategory),
		)
		return models.DefaultCategory
	}

	mapping, err := s.mappingRepo.FindByVendorName(trimmed)
	if err != nil {
		if !errors.Is(err, repositories.ErrMappingNotFound) {
			s.logger.Error("vendor mapping lookup failed, using default category",
				slog.String("vendor_name", trimmed),
				slog.String("error", err.Error()),
			)
		}
		return models.DefaultCategory
	}

	return mapping.Category
}
