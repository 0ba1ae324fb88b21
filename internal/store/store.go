// Package store is the persistence boundary for the three collections.
// Every save replaces the whole collection, stored as one JSON array under
// a fixed key, the same layout the data has always had. There is no
// incremental write and no transaction across the three keys.
package store

import "GearTrack/internal/model"

// Fixed storage keys for the three collections.
const (
	KeyStudents     = "students"
	KeyEquipment    = "equipment"
	KeyTransactions = "transactions"
)

// Store is the minimal contract the tracker needs from persistence.
// The sqlite implementation is used in production, the memory one in tests.
type Store interface {
	LoadStudents() ([]model.Student, error)
	SaveStudents([]model.Student) error

	LoadEquipment() ([]model.Equipment, error)
	SaveEquipment([]model.Equipment) error

	LoadTransactions() ([]model.Transaction, error)
	SaveTransactions([]model.Transaction) error

	Close() error
}
