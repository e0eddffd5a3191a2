package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrMappingVendorRequired   = errors.New("mapping vendor name is required")
	ErrMappingCategoryRequired = errors.New("mapping category is required")
)

// VendorCategoryMapping maps a vendor name to its spending category. The
// ingestion pipeline only ever reads this table; rows are written by the
// seeder. Vendor names are unique case-insensitively.
type VendorCategoryMapping struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	VendorName string    `gorm:"type:varchar(255);not null;uniqueIndex" json:"vendorName"`
	Category   string    `gorm:"type:varchar(100);not null" json:"category"`
	CreatedAt  time.Time `gorm:"not null" json:"createdAt"`
}

// BeforeCreate hook for VendorCategoryMapping
func (m *VendorCategoryMapping) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}

	return m.Validate()
}

// Validate validates the mapping fields
func (m *VendorCategoryMapping) Validate() error {
	if strings.TrimSpace(m.VendorName) == "" {
		return ErrMappingVendorRequired
	}

	if m.Category == "" {
		return ErrMappingCategoryRequired
	}

	return nil
}

// TableName returns the table name for VendorCategoryMapping
func (m *VendorCategoryMapping) TableName() string {
	return "vendor_category_mappings"
}
