package validation

import (
	"errors"  // Rule error definitions
	"strings" // Blank-string detection
)

// Rule errors; their text is sent back to the caller verbatim.
var (
	ErrSubjectRequired  = errors.New("Subject is required")
	ErrCategoryRequired = errors.New("Category is required")
	ErrZeroAmount       = errors.New("Amount must be non-zero")
)

// TransactionCreation enforces the business rules a transaction must pass
// before it is accepted for creation. Pure and deterministic: no I/O, no
// side effects. Rules are checked in order and the first failure wins.
// Update paths never call this.
func TransactionCreation(subject, category string, amount float64) error {
	if strings.TrimSpace(subject) == "" {
		return ErrSubjectRequired // Subject empty or absent
	}
	if strings.TrimSpace(category) == "" {
		return ErrCategoryRequired // Category empty or absent
	}
	if amount == 0 {
		return ErrZeroAmount // Amount zero or absent
	}
	return nil // All rules pass
}
