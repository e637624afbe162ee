package store

import (
	"mybudget/internal/domain" // Importing domain models

	"gorm.io/gorm" // GORM ORM library
)

// TransactionStore provides persistence operations over Transaction records
type TransactionStore struct {
	db *gorm.DB // Database handle
}

// NewTransactionStore creates a TransactionStore backed by the given database
func NewTransactionStore(db *gorm.DB) *TransactionStore {
	return &TransactionStore{db: db}
}

// FindByID returns the transaction with the given id, or ErrNotFound
func (s *TransactionStore) FindByID(id uint) (*domain.Transaction, error) {
	var transaction domain.Transaction // Transaction struct to hold data
	if err := s.db.First(&transaction, id).Error; err != nil {
		return nil, notFound(err) // Map missing record to ErrNotFound
	}
	return &transaction, nil
}

// FindByAccountID returns the transactions referencing the given account.
// The account itself is never checked for existence: the reference is weak.
func (s *TransactionStore) FindByAccountID(accountID uint) ([]domain.Transaction, error) {
	var transactions []domain.Transaction // Slice to hold transactions
	if err := s.db.Where("account_id = ?", accountID).Find(&transactions).Error; err != nil {
		return nil, err // Return raw persistence fault
	}
	return transactions, nil
}

// Save inserts the transaction when its id is zero, updates it otherwise
func (s *TransactionStore) Save(transaction *domain.Transaction) error {
	return s.db.Save(transaction).Error
}

// Delete removes the transaction row
func (s *TransactionStore) Delete(transaction *domain.Transaction) error {
	return s.db.Delete(transaction).Error
}
