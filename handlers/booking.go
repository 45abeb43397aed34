package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"tourvia/database/repository/bookings"
	"tourvia/middleware"
	"tourvia/models"
	"tourvia/services/booking"
	"tourvia/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the booking submission workflow and the caller's
// booking list.
type BookingHandler struct {
	Workflow booking.WorkflowService
	Repo     bookings.BookingRepository
	Logger   *zap.Logger
}

// NewBookingHandler creates a BookingHandler.
func NewBookingHandler(workflow booking.WorkflowService, repo bookings.BookingRepository, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Workflow: workflow, Repo: repo, Logger: logger}
}

// SubmitBookingHandler accepts the booking form as multipart/form-data with
// an optional paymentImage file and runs the staged submission.
func (h *BookingHandler) SubmitBookingHandler(c *gin.Context) {
	draft, err := parseBookingDraft(c)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	payment, err := parsePaymentImage(c)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payment image", err.Error())
		return
	}
	if payment != nil {
		if closer, ok := payment.Reader.(io.Closer); ok {
			defer closer.Close()
		}
	}

	userID := middleware.UserIDFromContext(c)
	result, err := h.Workflow.Submit(c.Request.Context(), userID, *draft, payment)
	if err != nil {
		h.respondSubmitError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Booking submitted successfully",
		"booking": result,
	})
}

func (h *BookingHandler) respondSubmitError(c *gin.Context, err error) {
	var vErr *booking.ValidationError
	var sErr *booking.StageError

	switch {
	case errors.Is(err, booking.ErrAuthRequired):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Please sign in to book a tour"})
	case errors.As(err, &vErr):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":       "Please fix the highlighted fields",
			"fieldErrors": vErr.Fields,
		})
	case errors.As(err, &sErr):
		switch sErr.Stage {
		case booking.StageUploading:
			c.JSON(http.StatusBadGateway, gin.H{
				"error": "Failed to upload payment receipt. Your booking was not submitted, please try again.",
				"stage": sErr.Stage,
			})
		case booking.StagePersisting:
			c.JSON(http.StatusBadGateway, gin.H{
				"error": "Failed to save your booking. Please try again.",
				"stage": sErr.Stage,
			})
		default:
			h.Logger.Error("booking submission failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Something went wrong while preparing your confirmation.",
				"stage": sErr.Stage,
			})
		}
	default:
		h.Logger.Error("booking submission failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Booking submission failed. Please try again."})
	}
}

// ListMyBookingsHandler returns the caller's bookings, newest first.
func (h *BookingHandler) ListMyBookingsHandler(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	result, err := h.Repo.GetByUser(c.Request.Context(), userID)
	if err != nil {
		utils.JSONError(c, http.StatusBadGateway, "failed to fetch bookings", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": result})
}

// GetSubmissionSessionHandler reports the stage of a prior submission.
func (h *BookingHandler) GetSubmissionSessionHandler(c *gin.Context) {
	session, err := h.Workflow.GetSession(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		if errors.Is(err, booking.ErrSessionNotFound) {
			utils.JSONError(c, http.StatusNotFound, "booking session not found or expired", "")
			return
		}
		utils.JSONError(c, http.StatusBadGateway, "failed to fetch booking session", err.Error())
		return
	}
	if session.UserID != middleware.UserIDFromContext(c) {
		utils.JSONError(c, http.StatusNotFound, "booking session not found or expired", "")
		return
	}
	c.JSON(http.StatusOK, session)
}

func parseBookingDraft(c *gin.Context) (*models.BookingDraft, error) {
	draft := models.BookingDraft{
		TourID:        c.PostForm("tourId"),
		Name:          c.PostForm("name"),
		Email:         c.PostForm("email"),
		Contact:       c.PostForm("contact"),
		Date:          c.PostForm("date"),
		PaymentMethod: c.PostForm("paymentMethod"),
		PaymentAmount: c.PostForm("paymentAmount"),
	}

	if v := c.PostForm("totalPax"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, errors.New("totalPax must be an integer")
		}
		draft.TotalPax = n
	}

	if v := c.PostForm("additionalPax"); v != "" {
		if err := json.Unmarshal([]byte(v), &draft.AdditionalPax); err != nil {
			return nil, errors.New("additionalPax must be a JSON array of {name, contact}")
		}
	}
	return &draft, nil
}

func parsePaymentImage(c *gin.Context) (*booking.PaymentImage, error) {
	fh, err := c.FormFile("paymentImage")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, nil
		}
		return nil, err
	}
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	return &booking.PaymentImage{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Size:        fh.Size,
		Reader:      f,
	}, nil
}
