package receipt

import "tourvia/models"

// Renderer produces the paginated confirmation artifact for a booking.
// Rendering is pure: it never touches the network and failures are
// programming errors, not operational ones.
type Renderer interface {
	Render(b models.Booking, tourName string) ([]byte, error)
}
