package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	// MaxVendorNameLength mirrors the varchar(255) column constraint
	MaxVendorNameLength = 255
	// MaxDescriptionLength mirrors the varchar(1000) column constraint
	MaxDescriptionLength = 1000
	// MaxAmountIntegerDigits caps amounts at the decimal(15,2) column precision
	MaxAmountIntegerDigits = 13
)

var (
	ErrExpenseDateRequired  = errors.New("expense date is required")
	ErrExpenseAmountInvalid = errors.New("expense amount must be positive")
	ErrVendorNameRequired   = errors.New("vendor name must not be blank")
	ErrVendorNameTooLong    = errors.New("vendor name too long")
	ErrDescriptionTooLong   = errors.New("description too long")
	ErrCategoryRequired     = errors.New("expense category is required")
)

// Expense is a persisted, classified expense record. Category and IsAnomaly
// are assigned by the ingestion pipeline before the record is created and are
// never mutated afterwards.
type Expense struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	Date        time.Time       `gorm:"type:date;not null;index" json:"date"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	VendorName  string          `gorm:"type:varchar(255);not null;index" json:"vendorName"`
	Description string          `gorm:"type:varchar(1000)" json:"description"`
	Category    string          `gorm:"type:varchar(100);not null;index" json:"category"`
	IsAnomaly   bool            `gorm:"not null;index" json:"isAnomaly"`
	CreatedAt   time.Time       `gorm:"not null" json:"createdAt"`
}

// BeforeCreate hook for Expense
func (e *Expense) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}

	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}

	return e.Validate()
}

// Validate validates the expense fields against the column constraints
func (e *Expense) Validate() error {
	if e.Date.IsZero() {
		return ErrExpenseDateRequired
	}

	if e.Amount.LessThanOrEqual(decimal.Zero) {
		return ErrExpenseAmountInvalid
	}

	if strings.TrimSpace(e.VendorName) == "" {
		return ErrVendorNameRequired
	}

	if len(e.VendorName) > MaxVendorNameLength {
		return ErrVendorNameTooLong
	}

	if len(e.Description) > MaxDescriptionLength {
		return ErrDescriptionTooLong
	}

	if e.Category == "" {
		return ErrCategoryRequired
	}

	return nil
}

// TableName returns the table name for Expense
func (e *Expense) TableName() string {
	return "expenses"
}
