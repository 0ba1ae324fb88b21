package model

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Student is a roster record. The barcode is the unique key used by the
// scanner; everything else is display data.
type Student struct {
	Name      string    `json:"name"`
	Barcode   string    `json:"barcode"`
	Email     string    `json:"email,omitempty"`
	Photo     []byte    `json:"photo,omitempty"` // embedded image data, optional
	AddedDate time.Time `json:"addedDate"`
}

// ValidateBarcode checks that a scanned/entered code is usable as a key.
// Codes come from physical labels, so anything printable is allowed;
// only empty or whitespace-only values are rejected.
func ValidateBarcode(code string) error {
	if strings.TrimSpace(code) == "" {
		return errors.New("barcode is required")
	}
	return nil
}

// Validate checks required fields before a student is added to the roster.
func (s Student) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return errors.New("name is required")
	}
	if err := ValidateBarcode(s.Barcode); err != nil {
		return fmt.Errorf("student %q: %w", s.Name, err)
	}
	return nil
}
