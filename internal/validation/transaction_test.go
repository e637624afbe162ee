package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransactionCreation(t *testing.T) {
	tests := []struct {
		name     string
		subject  string
		category string
		amount   float64
		wantErr  error
	}{
		{"valid debit", "Rent", "Housing", -900, nil},
		{"valid credit", "Salary", "Income", 2500, nil},
		{"missing subject", "", "Housing", 10, ErrSubjectRequired},
		{"blank subject", "   ", "Housing", 10, ErrSubjectRequired},
		{"missing category", "Rent", "", 10, ErrCategoryRequired},
		{"blank category", "Rent", "\t", 10, ErrCategoryRequired},
		{"zero amount", "Rent", "Housing", 0, ErrZeroAmount},
		// Rules are checked in order, so the subject error wins when
		// everything is wrong at once.
		{"all invalid", "", "", 0, ErrSubjectRequired},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := TransactionCreation(tt.subject, tt.category, tt.amount)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestTransactionCreationIsDeterministic(t *testing.T) {
	// Same inputs, same outcome, every time
	for i := 0; i < 3; i++ {
		assert.ErrorIs(t, TransactionCreation("", "Housing", 5), ErrSubjectRequired)
		assert.NoError(t, TransactionCreation("Rent", "Housing", -900))
	}
}
