package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	_ "modernc.org/sqlite"

	"GearTrack/internal/model"
)

// collection is one stored JSON document: a whole collection under its key.
type collection struct {
	Key   string `gorm:"primaryKey"`
	Value []byte `gorm:"not null"`
}

func (collection) TableName() string { return "collections" }

// SQLite is the durable Store: a single-file SQLite database holding each
// collection as one JSON array, replaced wholesale on every save.
type SQLite struct {
	db *gorm.DB
}

var _ Store = (*SQLite)(nil)

// OpenSQLite opens (and creates if needed) the database file at path using
// the pure-Go sqlite driver, and ensures the collections table exists.
func OpenSQLite(path string) (*SQLite, error) {
	if path == "" {
		return nil, errors.New("empty database path")
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, fmt.Errorf("create db dir: %w", err)
		}
	}
	dial := gormsqlite.Dialector{DriverName: "sqlite", DSN: path}
	db, err := gorm.Open(dial, &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if err := db.AutoMigrate(&collection{}); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &SQLite{db: db}, nil
}

// Close closes the underlying connection.
func (s *SQLite) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// load unmarshals the JSON array stored under key into out. A missing key
// is not an error: the collection is simply empty.
func (s *SQLite) load(key string, out any) error {
	var c collection
	err := s.db.First(&c, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("load %s: %w", key, err)
	}
	if err := json.Unmarshal(c.Value, out); err != nil {
		return fmt.Errorf("decode %s: %w", key, err)
	}
	return nil
}

// save marshals v and upserts it under key, replacing the previous document.
func (s *SQLite) save(key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	c := collection{Key: key, Value: b}
	err = s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		UpdateAll: true,
	}).Create(&c).Error
	if err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

func (s *SQLite) LoadStudents() ([]model.Student, error) {
	var students []model.Student
	if err := s.load(KeyStudents, &students); err != nil {
		return nil, err
	}
	return students, nil
}

func (s *SQLite) SaveStudents(students []model.Student) error {
	return s.save(KeyStudents, students)
}

func (s *SQLite) LoadEquipment() ([]model.Equipment, error) {
	var equipment []model.Equipment
	if err := s.load(KeyEquipment, &equipment); err != nil {
		return nil, err
	}
	return equipment, nil
}

func (s *SQLite) SaveEquipment(equipment []model.Equipment) error {
	return s.save(KeyEquipment, equipment)
}

func (s *SQLite) LoadTransactions() ([]model.Transaction, error) {
	var transactions []model.Transaction
	if err := s.load(KeyTransactions, &transactions); err != nil {
		return nil, err
	}
	return transactions, nil
}

func (s *SQLite) SaveTransactions(transactions []model.Transaction) error {
	return s.save(KeyTransactions, transactions)
}
