package reservation

import (
	"errors"
	"strings"
)

// Required field names reported by ValidationError.
const (
	FieldGuests = "guests"
	FieldPhone  = "phone"
	FieldEmail  = "email"
)

// ErrInvalidDraft is returned by submitters handed a draft that fails IsValid.
var ErrInvalidDraft = errors.New("reservation draft is incomplete")

// ValidationError lists the required fields that are missing.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "missing " + strings.Join(e.Fields, ", ")
}

func (e *ValidationError) Unwrap() error { return ErrInvalidDraft }

// IsValid gates the send action: guests, phone and email are required.
// Date, kid chair, comment and country never block submission.
func IsValid(d Draft) bool {
	return d.Guests > 0 && d.Phone != "" && d.Email != ""
}

// Validate is IsValid with the reasons attached.
func Validate(d Draft) error {
	var missing []string
	if d.Guests <= 0 {
		missing = append(missing, FieldGuests)
	}
	if d.Phone == "" {
		missing = append(missing, FieldPhone)
	}
	if d.Email == "" {
		missing = append(missing, FieldEmail)
	}
	if len(missing) == 0 {
		return nil
	}
	return &ValidationError{Fields: missing}
}
