// Package registry owns the student roster and the equipment inventory:
// lookup by exact barcode, add/edit/delete with uniqueness enforcement,
// and the seeding paths the program starts a school year with. Barcode
// renames are detected here; the transaction cascade is wired one level
// up, in the tracker.
package registry

import (
	"fmt"
	"strings"
	"time"

	"GearTrack/internal/model"
)

// DefaultPhotoMaxBytes limits embedded student photos, matching the
// original 500 KB form-upload precondition.
const DefaultPhotoMaxBytes = 500_000

// Registry holds both collections in memory and writes each back through
// its save func after every mutation.
type Registry struct {
	students  []model.Student
	equipment []model.Equipment

	saveStudents  func([]model.Student) error
	saveEquipment func([]model.Equipment) error

	now           func() time.Time
	photoMaxBytes int
	onChange      func()
}

// New creates a Registry over existing roster and inventory collections.
func New(students []model.Student, equipment []model.Equipment,
	saveStudents func([]model.Student) error,
	saveEquipment func([]model.Equipment) error) *Registry {
	return &Registry{
		students:      students,
		equipment:     equipment,
		saveStudents:  saveStudents,
		saveEquipment: saveEquipment,
		now:           time.Now,
		photoMaxBytes: DefaultPhotoMaxBytes,
	}
}

// SetNow replaces the time source used for addedDate stamps.
func (r *Registry) SetNow(now func() time.Time) { r.now = now }

// SetPhotoMaxBytes overrides the photo size limit.
func (r *Registry) SetPhotoMaxBytes(n int) { r.photoMaxBytes = n }

// OnChange registers a callback fired after every successful mutation.
func (r *Registry) OnChange(fn func()) { r.onChange = fn }

// Students returns a copy of the roster.
func (r *Registry) Students() []model.Student {
	return append([]model.Student(nil), r.students...)
}

// Equipment returns a copy of the inventory.
func (r *Registry) Equipment() []model.Equipment {
	return append([]model.Equipment(nil), r.equipment...)
}

// FindStudent looks a student up by exact barcode.
func (r *Registry) FindStudent(barcode string) (model.Student, bool) {
	for _, s := range r.students {
		if s.Barcode == barcode {
			return s, true
		}
	}
	return model.Student{}, false
}

// FindEquipment looks an item up by exact barcode.
func (r *Registry) FindEquipment(barcode string) (model.Equipment, bool) {
	for _, e := range r.equipment {
		if e.Barcode == barcode {
			return e, true
		}
	}
	return model.Equipment{}, false
}

// AddStudent adds a new roster record.
func (r *Registry) AddStudent(name, barcode, email string) (model.Student, error) {
	s := model.Student{
		Name:      strings.TrimSpace(name),
		Barcode:   strings.TrimSpace(barcode),
		Email:     strings.TrimSpace(email),
		AddedDate: r.now(),
	}
	if err := s.Validate(); err != nil {
		return model.Student{}, err
	}
	if _, exists := r.FindStudent(s.Barcode); exists {
		return model.Student{}, fmt.Errorf("student %q: %w", s.Barcode, model.ErrBarcodeExists)
	}
	r.students = append(r.students, s)
	if err := r.persistStudents(); err != nil {
		return model.Student{}, err
	}
	return s, nil
}

// UpdateStudent edits the record identified by barcode in place. Nil
// fields are left unchanged. The second result reports whether the barcode
// itself changed, so the caller can cascade the rename into the ledger.
func (r *Registry) UpdateStudent(barcode string, name, newBarcode, email *string) (model.Student, bool, error) {
	idx := -1
	for i := range r.students {
		if r.students[i].Barcode == barcode {
			idx = i
			break
		}
	}
	if idx < 0 {
		return model.Student{}, false, fmt.Errorf("student %q: %w", barcode, model.ErrNotFound)
	}
	s := r.students[idx]
	if name != nil {
		s.Name = strings.TrimSpace(*name)
	}
	if newBarcode != nil {
		s.Barcode = strings.TrimSpace(*newBarcode)
	}
	if email != nil {
		s.Email = strings.TrimSpace(*email)
	}
	if err := s.Validate(); err != nil {
		return model.Student{}, false, err
	}
	renamed := s.Barcode != barcode
	if renamed {
		if _, exists := r.FindStudent(s.Barcode); exists {
			return model.Student{}, false, fmt.Errorf("student %q: %w", s.Barcode, model.ErrBarcodeExists)
		}
	}
	r.students[idx] = s
	if err := r.persistStudents(); err != nil {
		return model.Student{}, false, err
	}
	return s, renamed, nil
}

// SetStudentPhoto attaches embedded photo data to a student, refusing
// anything over the configured size limit.
func (r *Registry) SetStudentPhoto(barcode string, photo []byte) error {
	if len(photo) > r.photoMaxBytes {
		return fmt.Errorf("%d bytes (limit %d): %w", len(photo), r.photoMaxBytes, model.ErrPhotoTooLarge)
	}
	for i := range r.students {
		if r.students[i].Barcode == barcode {
			r.students[i].Photo = photo
			return r.persistStudents()
		}
	}
	return fmt.Errorf("student %q: %w", barcode, model.ErrNotFound)
}

// DeleteStudent removes a student from the roster. Transaction history is
// deliberately left alone.
func (r *Registry) DeleteStudent(barcode string) error {
	for i := range r.students {
		if r.students[i].Barcode == barcode {
			r.students = append(r.students[:i], r.students[i+1:]...)
			return r.persistStudents()
		}
	}
	return fmt.Errorf("student %q: %w", barcode, model.ErrNotFound)
}

// ImportStudents adds every student whose barcode is not already on the
// roster and reports how many were added vs skipped.
func (r *Registry) ImportStudents(students []model.Student) (added, skipped int, err error) {
	for _, s := range students {
		s.Name = strings.TrimSpace(s.Name)
		s.Barcode = strings.TrimSpace(s.Barcode)
		if err := s.Validate(); err != nil {
			return added, skipped, err
		}
		if _, exists := r.FindStudent(s.Barcode); exists {
			skipped++
			continue
		}
		if s.AddedDate.IsZero() {
			s.AddedDate = r.now()
		}
		r.students = append(r.students, s)
		added++
	}
	if added == 0 {
		return added, skipped, nil
	}
	return added, skipped, r.persistStudents()
}

// AddEquipment adds a new inventory record.
func (r *Registry) AddEquipment(equipType, barcode, description string) (model.Equipment, error) {
	e := model.Equipment{
		Type:        strings.TrimSpace(equipType),
		Barcode:     strings.TrimSpace(barcode),
		Description: strings.TrimSpace(description),
		AddedDate:   r.now(),
	}
	if err := e.Validate(); err != nil {
		return model.Equipment{}, err
	}
	if _, exists := r.FindEquipment(e.Barcode); exists {
		return model.Equipment{}, fmt.Errorf("equipment %q: %w", e.Barcode, model.ErrBarcodeExists)
	}
	r.equipment = append(r.equipment, e)
	if err := r.persistEquipment(); err != nil {
		return model.Equipment{}, err
	}
	return e, nil
}

// UpdateEquipment edits the record identified by barcode in place, same
// contract as UpdateStudent.
func (r *Registry) UpdateEquipment(barcode string, equipType, newBarcode, description *string) (model.Equipment, bool, error) {
	idx := -1
	for i := range r.equipment {
		if r.equipment[i].Barcode == barcode {
			idx = i
			break
		}
	}
	if idx < 0 {
		return model.Equipment{}, false, fmt.Errorf("equipment %q: %w", barcode, model.ErrNotFound)
	}
	e := r.equipment[idx]
	if equipType != nil {
		e.Type = strings.TrimSpace(*equipType)
	}
	if newBarcode != nil {
		e.Barcode = strings.TrimSpace(*newBarcode)
	}
	if description != nil {
		e.Description = strings.TrimSpace(*description)
	}
	if err := e.Validate(); err != nil {
		return model.Equipment{}, false, err
	}
	renamed := e.Barcode != barcode
	if renamed {
		if _, exists := r.FindEquipment(e.Barcode); exists {
			return model.Equipment{}, false, fmt.Errorf("equipment %q: %w", e.Barcode, model.ErrBarcodeExists)
		}
	}
	r.equipment[idx] = e
	if err := r.persistEquipment(); err != nil {
		return model.Equipment{}, false, err
	}
	return e, renamed, nil
}

// DeleteEquipment removes an item from the inventory, leaving its
// transaction history in place.
func (r *Registry) DeleteEquipment(barcode string) error {
	for i := range r.equipment {
		if r.equipment[i].Barcode == barcode {
			r.equipment = append(r.equipment[:i], r.equipment[i+1:]...)
			return r.persistEquipment()
		}
	}
	return fmt.Errorf("equipment %q: %w", barcode, model.ErrNotFound)
}

// SeedDefaultEquipment adds the stock AV inventory (tripods, Rode mics,
// phone mounts), skipping barcodes that already exist.
func (r *Registry) SeedDefaultEquipment() (int, error) {
	added := 0
	for _, e := range DefaultEquipment(r.now()) {
		if _, exists := r.FindEquipment(e.Barcode); exists {
			continue
		}
		r.equipment = append(r.equipment, e)
		added++
	}
	if added == 0 {
		return 0, nil
	}
	return added, r.persistEquipment()
}

// DefaultEquipment is the stock inventory list the program started with.
func DefaultEquipment(addedDate time.Time) []model.Equipment {
	var out []model.Equipment
	add := func(equipType, label string, count int) {
		for i := 1; i <= count; i++ {
			barcode := fmt.Sprintf("%s %d", label, i)
			out = append(out, model.Equipment{
				Type:        equipType,
				Barcode:     barcode,
				Description: barcode,
				AddedDate:   addedDate,
			})
		}
	}
	add("Tripod", "WACS TRIPOD", 8)
	add("Microphone", "Rode Mic", 11)
	add("Phone Mount", "Phone Mount", 10)
	return out
}

func (r *Registry) persistStudents() error {
	if r.saveStudents != nil {
		if err := r.saveStudents(r.students); err != nil {
			return fmt.Errorf("save students: %w", err)
		}
	}
	if r.onChange != nil {
		r.onChange()
	}
	return nil
}

func (r *Registry) persistEquipment() error {
	if r.saveEquipment != nil {
		if err := r.saveEquipment(r.equipment); err != nil {
			return fmt.Errorf("save equipment: %w", err)
		}
	}
	if r.onChange != nil {
		r.onChange()
	}
	return nil
}
