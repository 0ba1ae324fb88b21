package model

import (
	"errors"
	"strings"
	"time"
)

// Equipment is an inventory record. Type is free text ("Microphone",
// "Tripod", ...); the barcode is the unique key.
type Equipment struct {
	Type        string    `json:"type"`
	Barcode     string    `json:"barcode"`
	Description string    `json:"description,omitempty"`
	AddedDate   time.Time `json:"addedDate"`
}

// Validate checks required fields before an item is added to the inventory.
func (e Equipment) Validate() error {
	if strings.TrimSpace(e.Type) == "" {
		return errors.New("equipment type is required")
	}
	return ValidateBarcode(e.Barcode)
}

// Label is the display form used in lists and reports:
// "Type - Description", falling back to the barcode when the
// description is empty.
func (e Equipment) Label() string {
	if e.Description != "" {
		return e.Type + " - " + e.Description
	}
	return e.Type + " - " + e.Barcode
}
