package model

import "time"

// Transaction status values. A transaction is open ("out") from checkout
// until check-in closes it ("in"); closed records are kept forever.
const (
	StatusOut = "out"
	StatusIn  = "in"
)

// Transaction is one checkout/check-in record. Student and equipment
// display fields are denormalized copies taken at checkout time: later
// edits to a name or description do not rewrite history. Only barcode
// renames cascade into existing rows.
type Transaction struct {
	ID                   string     `json:"id"`
	StudentName          string     `json:"studentName"`
	StudentBarcode       string     `json:"studentBarcode"`
	EquipmentType        string     `json:"equipmentType"`
	EquipmentBarcode     string     `json:"equipmentBarcode"`
	EquipmentDescription string     `json:"equipmentDescription,omitempty"`
	CheckoutTime         time.Time  `json:"checkoutTime"`
	ExpectedReturnTime   *time.Time `json:"expectedReturnTime,omitempty"`
	CheckinTime          *time.Time `json:"checkinTime,omitempty"`
	Status               string     `json:"status"`
	CheckoutNotes        string     `json:"checkoutNotes,omitempty"`
	CheckinNotes         string     `json:"checkinNotes,omitempty"`
}

// Open reports whether the equipment is still out on this record.
func (t Transaction) Open() bool { return t.Status == StatusOut }

// Overdue reports whether the record is open, has an expected return time,
// and that time has passed. Recomputed against the caller's clock on every
// display; never persisted.
func (t Transaction) Overdue(now time.Time) bool {
	return t.Open() && t.ExpectedReturnTime != nil && now.After(*t.ExpectedReturnTime)
}

// EquipmentLabel is the display form of the borrowed item, from the
// denormalized copies: "Type - Description" or "Type - Barcode".
func (t Transaction) EquipmentLabel() string {
	if t.EquipmentDescription != "" {
		return t.EquipmentType + " - " + t.EquipmentDescription
	}
	return t.EquipmentType + " - " + t.EquipmentBarcode
}
