package booking

import (
	"fmt"
	"strings"

	"tourvia/models"
)

// FieldID identifies a validated form field.
type FieldID string

const (
	FieldTourID   FieldID = "tourId"
	FieldName     FieldID = "name"
	FieldEmail    FieldID = "email"
	FieldContact  FieldID = "contact"
	FieldDate     FieldID = "date"
	FieldTotalPax FieldID = "totalPax"
)

// ParticipantField addresses a field of the i-th additional participant
// (zero-based index into the additionalPax list).
func ParticipantField(index int, field FieldID) FieldID {
	return FieldID(fmt.Sprintf("additionalPax[%d].%s", index, field))
}

// ValidationResult is the outcome of validating a booking draft: either
// valid, or invalid with a per-field error mapping covering every violated
// constraint at once.
type ValidationResult struct {
	fieldErrors map[FieldID]string
}

// Valid reports whether submission may proceed.
func (r ValidationResult) Valid() bool {
	return len(r.fieldErrors) == 0
}

// FieldErrors returns the per-field error mapping; empty when valid.
func (r ValidationResult) FieldErrors() map[FieldID]string {
	return r.fieldErrors
}

// ValidateDraft checks all fields together rather than failing fast, so the
// user sees every problem at once. It has no side effects.
func ValidateDraft(d models.BookingDraft) ValidationResult {
	errs := make(map[FieldID]string)

	if strings.TrimSpace(d.TourID) == "" {
		errs[FieldTourID] = "Tour is required"
	}
	if strings.TrimSpace(d.Name) == "" {
		errs[FieldName] = "Name is required"
	}
	if strings.TrimSpace(d.Email) == "" {
		errs[FieldEmail] = "Email is required"
	}
	if strings.TrimSpace(d.Contact) == "" {
		errs[FieldContact] = "Contact number is required"
	}
	if strings.TrimSpace(d.Date) == "" {
		errs[FieldDate] = "Date is required"
	}
	if d.TotalPax < 1 {
		errs[FieldTotalPax] = "Total pax must be at least 1"
	}

	for i := 0; i < d.TotalPax-1; i++ {
		var p models.Participant
		if i < len(d.AdditionalPax) {
			p = d.AdditionalPax[i]
		}
		if strings.TrimSpace(p.Name) == "" {
			errs[ParticipantField(i, FieldName)] = fmt.Sprintf("Participant %d name is required", i+2)
		}
		if strings.TrimSpace(p.Contact) == "" {
			errs[ParticipantField(i, FieldContact)] = fmt.Sprintf("Participant %d contact is required", i+2)
		}
	}

	return ValidationResult{fieldErrors: errs}
}
