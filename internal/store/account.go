package store

import (
	"mybudget/internal/domain" // Importing domain models

	"gorm.io/gorm" // GORM ORM library
)

// AccountStore provides persistence operations over Account records
type AccountStore struct {
	db *gorm.DB // Database handle
}

// NewAccountStore creates an AccountStore backed by the given database
func NewAccountStore(db *gorm.DB) *AccountStore {
	return &AccountStore{db: db}
}

// FindByID returns the account with the given id, or ErrNotFound
func (s *AccountStore) FindByID(id uint) (*domain.Account, error) {
	var account domain.Account // Account struct to hold data
	if err := s.db.First(&account, id).Error; err != nil {
		return nil, notFound(err) // Map missing record to ErrNotFound
	}
	return &account, nil
}

// FindAll returns every account, unfiltered
func (s *AccountStore) FindAll() ([]domain.Account, error) {
	var accounts []domain.Account // Slice to hold accounts
	if err := s.db.Find(&accounts).Error; err != nil {
		return nil, err // Return raw persistence fault
	}
	return accounts, nil
}

// FindByClientID returns the accounts owned by the given client.
// An empty slice is a valid result, not an error.
func (s *AccountStore) FindByClientID(clientID uint) ([]domain.Account, error) {
	var accounts []domain.Account // Slice to hold accounts
	if err := s.db.Where("client_id = ?", clientID).Find(&accounts).Error; err != nil {
		return nil, err // Return raw persistence fault
	}
	return accounts, nil
}

// Save inserts the account when its id is zero, updates it otherwise.
// On insert the generated id is written back into the struct.
func (s *AccountStore) Save(account *domain.Account) error {
	return s.db.Save(account).Error
}

// Delete removes the account row
func (s *AccountStore) Delete(account *domain.Account) error {
	return s.db.Delete(account).Error
}
