package models

import "time"

// BookingStatus enumerates booking lifecycle states.
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// Participant is one additional member of a booking party beyond the
// primary contact.
type Participant struct {
	Name    string `firestore:"name" json:"name"`
	Contact string `firestore:"contact" json:"contact"`
}

// Booking represents a persisted reservation record against a tour.
type Booking struct {
	ID               string        `firestore:"-" json:"id"`                           // Document ID assigned by the store
	TourID           string        `firestore:"tourId" json:"tourId"`                  // Booked tour
	UserID           string        `firestore:"userId" json:"userId"`                  // Submitting user
	Name             string        `firestore:"name" json:"name"`                      // Primary contact name
	Email            string        `firestore:"email" json:"email"`                    // Primary contact email
	Contact          string        `firestore:"contact" json:"contact"`                // Primary contact phone
	Date             string        `firestore:"date" json:"date"`                      // Requested tour date
	TotalPax         int           `firestore:"totalPax" json:"totalPax"`              // Party size, >= 1
	AdditionalPax    []Participant `firestore:"additionalPax" json:"additionalPax"`    // Always totalPax-1 entries
	PaymentMethod    string        `firestore:"paymentMethod" json:"paymentMethod"`    // e.g. "bank transfer"
	PaymentAmount    string        `firestore:"paymentAmount" json:"paymentAmount"`    // Amount as entered
	ReceiptURL       string        `firestore:"receiptUrl" json:"receiptUrl"`          // Uploaded payment image URL, "" if none
	ConfirmationCode string        `firestore:"confirmationCode" json:"confirmationCode"`
	Status           BookingStatus `firestore:"status" json:"status"`
	CreatedAt        time.Time     `firestore:"createdAt" json:"createdAt"`
}

// BookingDraft is the user-entered booking form state prior to submission.
type BookingDraft struct {
	TourID        string        `json:"tourId"`
	Name          string        `json:"name"`
	Email         string        `json:"email"`
	Contact       string        `json:"contact"`
	Date          string        `json:"date"`
	TotalPax      int           `json:"totalPax"`
	AdditionalPax []Participant `json:"additionalPax"`
	PaymentMethod string        `json:"paymentMethod"`
	PaymentAmount string        `json:"paymentAmount"`
}

// ResizePax sets the party size and adjusts the additional-participant list
// to exactly max(0, total-1) entries. Entries at indices that remain valid
// are preserved; growth pads with empty records.
func (d *BookingDraft) ResizePax(total int) {
	d.TotalPax = total
	want := total - 1
	if want < 0 {
		want = 0
	}
	switch {
	case len(d.AdditionalPax) > want:
		d.AdditionalPax = d.AdditionalPax[:want]
	case len(d.AdditionalPax) < want:
		pad := make([]Participant, want-len(d.AdditionalPax))
		d.AdditionalPax = append(d.AdditionalPax, pad...)
	}
}
