package store

import (
	"errors" // Sentinel error definition

	"gorm.io/gorm" // GORM ORM library
)

// ErrNotFound is returned when a record with the requested id does not exist.
var ErrNotFound = errors.New("record not found")

// notFound maps GORM's record-not-found sentinel onto the store's own,
// so callers can tell a missing record apart from a persistence fault.
func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
