package models

// BatchResult accumulates the outcome of one CSV upload. It is built
// incrementally by the batch coordinator: SuccessCount + FailureCount always
// equals TotalRows, Errors holds one "Row {n}: {reason}" entry per failed row
// in file order, and SavedExpenses holds the persisted records in processing
// order.
type BatchResult struct {
	TotalRows     int        `json:"totalRows"`
	SuccessCount  int        `json:"successCount"`
	FailureCount  int        `json:"failureCount"`
	Errors        []string   `json:"errors"`
	SavedExpenses []*Expense `json:"savedExpenses"`
}

// NewBatchResult returns an empty result with non-nil slices so the JSON
// rendering is [] rather than null
func NewBatchResult() *BatchResult {
	return &BatchResult{
		Errors:        []string{},
		SavedExpenses: []*Expense{},
	}
}

// RecordSuccess appends a persisted expense and bumps the success counter
func (r *BatchResult) RecordSuccess(expense *Expense) {
	r.SavedExpenses = append(r.SavedExpenses, expense)
	r.SuccessCount++
}

// RecordFailure appends a row error message and bumps the failure counter
func (r *BatchResult) RecordFailure(message string) {
	r.Errors = append(r.Errors, message)
	r.FailureCount++
}
