package repositories

import (
	"errors"
	"fmt"
	"strings"

	"expense-manager/internal/models"

	"gorm.io/gorm"
)

var (
	ErrMappingNotFound = errors.New("vendor category mapping not found")
)

// vendorCategoryMappingRepository implements VendorCategoryMappingRepositoryInterface
type vendorCategoryMappingRepository struct {
	db *gorm.DB
}

// NewVendorCategoryMappingRepository creates a new vendor mapping repository
func NewVendorCategoryMappingRepository(db *gorm.DB) VendorCategoryMappingRepositoryInterface {
	return &vendorCategoryMappingRepository{
		db: db,
	}
}

// Create inserts a new vendor mapping
func (r *vendorCategoryMappingRepository) Create(mapping *models.VendorCategoryMapping) error {
	if err := r.db.Create(mapping).Error; err != nil {
		return fmt.Errorf("failed to create vendor mapping: %w", err)
	}
	return nil
}

// FindByVendorName looks up a mapping case-insensitively
func (r *vendorCategoryMappingRepository) FindByVendorName(vendorName string) (*models.VendorCategoryMapping, error) {
	var mapping models.VendorCategoryMapping
	err := r.db.Where("LOWER(vendor_name) = ?", strings.ToLower(vendorName)).
		First(&mapping).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMappingNotFound
		}
		return nil, fmt.Errorf("failed to look up vendor mapping: %w", err)
	}
	return &mapping, nil
}

// Count returns the number of vendor mappings
func (r *vendorCategoryMappingRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&models.VendorCategoryMapping{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count vendor mappings: %w", err)
	}
	return count, nil
}
