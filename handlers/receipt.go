package handlers

import (
	"fmt"
	"net/http"

	"tourvia/database/repository/bookings"
	"tourvia/middleware"
	"tourvia/models"
	"tourvia/services/booking"
	"tourvia/services/receipt"
	"tourvia/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ReceiptHandler serves confirmation artifacts. Receipts are regenerable
// from the booking record, so viewing always re-renders; downloading is
// gated on the delayed release flag.
type ReceiptHandler struct {
	Repo     bookings.BookingRepository
	Tours    booking.TourLookup
	Renderer receipt.Renderer
	Store    *receipt.Store
	Logger   *zap.Logger
}

// NewReceiptHandler creates a ReceiptHandler.
func NewReceiptHandler(repo bookings.BookingRepository, tours booking.TourLookup, renderer receipt.Renderer, store *receipt.Store, logger *zap.Logger) *ReceiptHandler {
	return &ReceiptHandler{Repo: repo, Tours: tours, Renderer: renderer, Store: store, Logger: logger}
}

// ViewReceiptHandler streams the confirmation PDF inline.
func (h *ReceiptHandler) ViewReceiptHandler(c *gin.Context) {
	record, ok := h.ownedBooking(c)
	if !ok {
		return
	}

	data, err := h.render(record)
	if err != nil {
		h.Logger.Error("receipt rendering failed", zap.String("bookingID", record.ID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to render receipt", "")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("inline; filename=%q", receipt.ArtifactName(record.ConfirmationCode)))
	c.Data(http.StatusOK, "application/pdf", data)
}

// DownloadReceiptHandler serves the artifact as an attachment once the
// delayed release has fired.
func (h *ReceiptHandler) DownloadReceiptHandler(c *gin.Context) {
	record, ok := h.ownedBooking(c)
	if !ok {
		return
	}

	ready, err := h.Store.IsReady(c.Request.Context(), record.ConfirmationCode)
	if err != nil {
		utils.JSONError(c, http.StatusBadGateway, "failed to check receipt availability", err.Error())
		return
	}
	if !ready {
		utils.JSONError(c, http.StatusConflict, "receipt is not ready for download yet", "")
		return
	}

	data, err := h.Store.Load(record.ConfirmationCode)
	if err != nil {
		// The artifact directory is not durable; fall back to re-rendering.
		data, err = h.render(record)
		if err != nil {
			h.Logger.Error("receipt rendering failed", zap.String("bookingID", record.ID), zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "failed to render receipt", "")
			return
		}
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", receipt.ArtifactName(record.ConfirmationCode)))
	c.Data(http.StatusOK, "application/pdf", data)
}

func (h *ReceiptHandler) render(record *models.Booking) ([]byte, error) {
	tourName := record.TourID
	if t, ok := h.Tours.GetByID(record.TourID); ok {
		tourName = t.Name
	}
	return h.Renderer.Render(*record, tourName)
}

// ownedBooking loads the booking and enforces that it belongs to the caller.
func (h *ReceiptHandler) ownedBooking(c *gin.Context) (*models.Booking, bool) {
	record, err := h.Repo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusBadGateway, "failed to fetch booking", err.Error())
		return nil, false
	}
	if record == nil || record.UserID != middleware.UserIDFromContext(c) {
		utils.JSONError(c, http.StatusNotFound, "booking not found", "")
		return nil, false
	}
	return record, true
}
