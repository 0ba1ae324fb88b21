package model

import "errors"

// Domain errors. All of these are user-facing and recoverable: the caller
// reports the message and the scan session returns to a clean state.
var (
	// ErrNotFound: the barcode matched neither the roster nor the inventory.
	ErrNotFound = errors.New("barcode not recognized")

	// ErrBarcodeExists: an add or rename would collide with an existing record.
	ErrBarcodeExists = errors.New("barcode already exists")

	// ErrAlreadyCheckedOut: the item already has an open transaction.
	ErrAlreadyCheckedOut = errors.New("equipment is already checked out")

	// ErrNotCheckedOut: check-in requested for an item with no open transaction.
	ErrNotCheckedOut = errors.New("equipment is not checked out")

	// ErrNoStudent: an available item was scanned with no student selected.
	ErrNoStudent = errors.New("scan a student pass first")

	// ErrPhotoTooLarge: photo attach refused by the size precondition.
	ErrPhotoTooLarge = errors.New("photo size too large")
)
