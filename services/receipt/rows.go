package receipt

import (
	"fmt"
	"strconv"

	"tourvia/models"
)

// PaymentImagePlaceholder is rendered when no payment image was uploaded.
const PaymentImagePlaceholder = "No payment image provided"

// Row is one field/value line of the receipt table.
type Row struct {
	Label string
	Value string
}

// BuildRows assembles the receipt table in its fixed order: ten base fields
// followed by a name/contact pair per additional participant.
func BuildRows(b models.Booking) []Row {
	receiptRef := b.ReceiptURL
	if receiptRef == "" {
		receiptRef = PaymentImagePlaceholder
	}

	rows := []Row{
		{"Confirmation Code", b.ConfirmationCode},
		{"Tour ID", b.TourID},
		{"Tour Date", b.Date},
		{"Total Pax", strconv.Itoa(b.TotalPax)},
		{"Name", b.Name},
		{"Email", b.Email},
		{"Contact", b.Contact},
		{"Payment Method", b.PaymentMethod},
		{"Payment Amount", b.PaymentAmount},
		{"Payment Image", receiptRef},
	}

	for i, p := range b.AdditionalPax {
		rows = append(rows,
			Row{fmt.Sprintf("Participant %d Name", i+2), p.Name},
			Row{fmt.Sprintf("Participant %d Contact", i+2), p.Contact},
		)
	}
	return rows
}

// ArtifactName returns the file name of the generated confirmation document.
func ArtifactName(confirmationCode string) string {
	return fmt.Sprintf("Booking_Confirmation_%s.pdf", confirmationCode)
}
