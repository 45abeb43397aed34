package receipt

import (
	"strings"
	"testing"
	"time"

	"tourvia/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleBooking() models.Booking {
	return models.Booking{
		ID:       "bk-1",
		TourID:   "tour-1",
		UserID:   "user-1",
		Name:     "Aina Binti Rahman",
		Email:    "aina@example.com",
		Contact:  "0123456789",
		Date:     "2026-09-12",
		TotalPax: 3,
		AdditionalPax: []models.Participant{
			{Name: "Ben", Contact: "0111"},
			{Name: "Chen", Contact: "0222"},
		},
		PaymentMethod:    "bank transfer",
		PaymentAmount:    "3600",
		ReceiptURL:       "https://files.example/receipt.jpg",
		ConfirmationCode: "CONF-ABC123XYZ",
		Status:           models.BookingStatusPending,
		CreatedAt:        time.Now(),
	}
}

func TestBuildRows_BaseFieldsPlusParticipantPairs(t *testing.T) {
	rows := BuildRows(sampleBooking())

	// 10 base fields plus a name/contact pair per additional participant.
	require.Len(t, rows, 14)
	assert.Equal(t, "Confirmation Code", rows[0].Label)
	assert.Equal(t, "CONF-ABC123XYZ", rows[0].Value)
	assert.Equal(t, "Payment Image", rows[9].Label)
	assert.Equal(t, "Participant 2 Name", rows[10].Label)
	assert.Equal(t, "Ben", rows[10].Value)
	assert.Equal(t, "Participant 3 Contact", rows[13].Label)
	assert.Equal(t, "0222", rows[13].Value)
}

func TestBuildRows_PlaceholderWhenNoPaymentImage(t *testing.T) {
	b := sampleBooking()
	b.ReceiptURL = ""

	rows := BuildRows(b)

	assert.Equal(t, PaymentImagePlaceholder, rows[9].Value)
}

func TestBuildRows_SoloBookingHasOnlyBaseRows(t *testing.T) {
	b := sampleBooking()
	b.TotalPax = 1
	b.AdditionalPax = nil

	assert.Len(t, BuildRows(b), 10)
}

func TestArtifactName(t *testing.T) {
	assert.Equal(t, "Booking_Confirmation_CONF-ABC123XYZ.pdf", ArtifactName("CONF-ABC123XYZ"))
}

func TestRender_ProducesPDF(t *testing.T) {
	data, err := NewPDFRenderer().Render(sampleBooking(), "Langkawi Island Escape")

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "%PDF"))
}

func TestRender_ManyParticipantsStillRenders(t *testing.T) {
	b := sampleBooking()
	b.TotalPax = 30
	b.AdditionalPax = nil
	for i := 0; i < 29; i++ {
		b.AdditionalPax = append(b.AdditionalPax, models.Participant{Name: "Guest", Contact: "000"})
	}

	data, err := NewPDFRenderer().Render(b, "Group Charter")

	require.NoError(t, err)
	assert.NotEmpty(t, data)
}
