// Package license holds the license and ownership form shown from Settings.
// The lock only controls whether the form can be edited.
package license

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/colorandlearn/color-and-learn/internal/model"
)

var (
	// ErrMissingFields is returned when locking with blank fields
	ErrMissingFields = errors.New("please fill in all fields before locking the license")

	// ErrLocked is returned when editing a locked form
	ErrLocked = errors.New("license is locked")

	// ErrNotLocked is returned when unlocking a form that is not locked
	ErrNotLocked = errors.New("license is not locked")

	// ErrNoPendingRequest is returned by Confirm* without a matching Request*
	ErrNoPendingRequest = errors.New("no pending request")
)

// Field names a form input
type Field int

const (
	FieldOwnerName Field = iota
	FieldOwnerID
	FieldOwnerEmail
	FieldPassword
)

type pending int

const (
	pendingNone pending = iota
	pendingLock
	pendingUnlock
)

// Form is the license screen state
type Form struct {
	record  model.LicenseRecord
	pending pending
}

// NewForm returns an empty, unlocked form
func NewForm() *Form {
	return &Form{}
}

// Record returns a copy of the current record
func (f *Form) Record() model.LicenseRecord {
	return f.record
}

// Locked reports whether the form is locked
func (f *Form) Locked() bool {
	return f.record.Locked
}

// Set updates a field. Locked forms reject edits.
func (f *Form) Set(field Field, value string) error {
	if f.record.Locked {
		return ErrLocked
	}

	switch field {
	case FieldOwnerName:
		f.record.OwnerName = value
	case FieldOwnerID:
		f.record.OwnerID = value
	case FieldOwnerEmail:
		f.record.OwnerEmail = value
	case FieldPassword:
		f.record.Password = value
	default:
		return fmt.Errorf("unknown field %d", field)
	}
	return nil
}

// RequestLock validates the form and arms a lock that ConfirmLock completes
func (f *Form) RequestLock() error {
	if f.record.Locked {
		return ErrLocked
	}
	if !f.record.IsComplete() {
		return fmt.Errorf("%w: %s", ErrMissingFields, strings.Join(f.record.MissingFields(), ", "))
	}
	f.pending = pendingLock
	return nil
}

// ConfirmLock locks the form. Field values are kept as entered.
func (f *Form) ConfirmLock() error {
	if f.pending != pendingLock {
		return ErrNoPendingRequest
	}
	f.pending = pendingNone
	f.record.Locked = true
	log.Printf("License locked for owner %q", f.record.OwnerName)
	return nil
}

// RequestUnlock arms an unlock that ConfirmUnlock completes
func (f *Form) RequestUnlock() error {
	if !f.record.Locked {
		return ErrNotLocked
	}
	f.pending = pendingUnlock
	return nil
}

// ConfirmUnlock unlocks the form. No credential is checked.
func (f *Form) ConfirmUnlock() error {
	if f.pending != pendingUnlock {
		return ErrNoPendingRequest
	}
	f.pending = pendingNone
	f.record.Locked = false
	log.Printf("License unlocked for owner %q", f.record.OwnerName)
	return nil
}

// Cancel drops any pending lock or unlock request
func (f *Form) Cancel() {
	f.pending = pendingNone
}
