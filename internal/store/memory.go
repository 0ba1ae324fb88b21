package store

import "GearTrack/internal/model"

// Memory is an in-memory Store. Saves copy the slice so later mutations by
// the caller don't leak into the stored state.
type Memory struct {
	students     []model.Student
	equipment    []model.Equipment
	transactions []model.Transaction
}

var _ Store = (*Memory)(nil)

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory { return &Memory{} }

func (m *Memory) LoadStudents() ([]model.Student, error) {
	return append([]model.Student(nil), m.students...), nil
}

func (m *Memory) SaveStudents(students []model.Student) error {
	m.students = append([]model.Student(nil), students...)
	return nil
}

func (m *Memory) LoadEquipment() ([]model.Equipment, error) {
	return append([]model.Equipment(nil), m.equipment...), nil
}

func (m *Memory) SaveEquipment(equipment []model.Equipment) error {
	m.equipment = append([]model.Equipment(nil), equipment...)
	return nil
}

func (m *Memory) LoadTransactions() ([]model.Transaction, error) {
	return append([]model.Transaction(nil), m.transactions...), nil
}

func (m *Memory) SaveTransactions(transactions []model.Transaction) error {
	m.transactions = append([]model.Transaction(nil), transactions...)
	return nil
}

func (m *Memory) Close() error { return nil }
