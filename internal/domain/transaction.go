package domain

// Transaction Model
type Transaction struct {
	ID       uint    `gorm:"primaryKey" json:"id"`     // Primary key
	Subject  string  `gorm:"not null" json:"subject"`  // Short description
	Note     string  `json:"note"`                     // Optional free text
	Category string  `gorm:"not null" json:"category"` // Classification label
	Amount   float64 `gorm:"not null" json:"amount"`   // Signed amount, never zero once accepted
	// AccountID is a weak reference: a lookup key, not a constrained
	// foreign key. Deleting an account leaves its transactions in place.
	AccountID uint `gorm:"index" json:"accountId"`
}
