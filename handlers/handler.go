package handlers

import "tourvia/middleware"

// HandlerBundle aggregates the HTTP handlers wired in main, plus the
// session registry the auth middleware consults.
type HandlerBundle struct {
	Auth         *AuthHandler
	Tours        *TourHandler
	Bookings     *BookingHandler
	Receipts     *ReceiptHandler
	AuthSessions middleware.AuthSessionStore
}
