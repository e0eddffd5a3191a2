package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationOutOfRange    ErrorCode = "VALIDATION_004"
	ValidationInvalidDate   ErrorCode = "VALIDATION_005"
	ValidationInvalidAmount ErrorCode = "VALIDATION_006"
)

// Expense error codes (EXPENSE_*)
const (
	ExpenseNotFound     ErrorCode = "EXPENSE_001"
	ExpenseSaveFailed   ErrorCode = "EXPENSE_002"
	ExpenseInvalidField ErrorCode = "EXPENSE_003"
)

// CSV upload error codes (CSV_*)
const (
	CsvFileMissing    ErrorCode = "CSV_001"
	CsvFileEmpty      ErrorCode = "CSV_002"
	CsvParseFailed    ErrorCode = "CSV_003"
	CsvFileTooLarge   ErrorCode = "CSV_004"
	CsvFileUnreadable ErrorCode = "CSV_005"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_004"
	SystemUnexpectedError    ErrorCode = "SYSTEM_005"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Validation errors
	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationOutOfRange:    "Field value is out of allowed range",
	ValidationInvalidDate:   "Invalid date format. Expected yyyy-MM-dd",
	ValidationInvalidAmount: "Amount must be a positive number with at most 2 decimal places",

	// Expense errors
	ExpenseNotFound:     "Expense not found",
	ExpenseSaveFailed:   "Failed to save expense",
	ExpenseInvalidField: "Expense contains invalid field values",

	// CSV upload errors
	CsvFileMissing:    "CSV file is required",
	CsvFileEmpty:      "Uploaded CSV file is empty",
	CsvParseFailed:    "Failed to parse CSV file",
	CsvFileTooLarge:   "Uploaded file exceeds the maximum allowed size of 10MB",
	CsvFileUnreadable: "Uploaded file could not be read",

	// System errors
	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemDatabaseError:      "Database connection error",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
	SystemUnexpectedError:    "An unexpected error occurred",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
