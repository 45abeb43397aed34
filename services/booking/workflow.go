package booking

import (
	"context"
	"time"

	"tourvia/models"
	"tourvia/services/receipt"
	"tourvia/services/storage"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Submit runs one booking submission through its stages in strict order:
// validate, upload (if a payment image is attached), persist, render.
// Upload failure aborts before anything is persisted; persistence failure
// leaves the draft in the session for resubmission. Rendering failures are
// defects, not operational errors, and never undo the persisted booking.
func (s *DefaultWorkflowService) Submit(ctx context.Context, userID string, draft models.BookingDraft, payment *PaymentImage) (*SubmitResult, error) {
	if userID == "" {
		return nil, ErrAuthRequired
	}

	// Clients may send stale participant entries from an earlier, larger
	// party size. Normalize to exactly max(0, totalPax-1) entries before
	// anything reads the list.
	draft.ResizePax(draft.TotalPax)

	session := &Session{
		ID:     uuid.New().String(),
		UserID: userID,
		Stage:  StageValidating,
		Draft:  draft,
	}
	s.saveSession(ctx, session)

	result := ValidateDraft(draft)
	if !result.Valid() {
		session.Stage = StageIdle
		session.FieldErrors = result.FieldErrors()
		s.saveSession(ctx, session)
		return nil, &ValidationError{Fields: result.FieldErrors()}
	}

	confirmationCode := GenerateConfirmationCode()
	createdAt := time.Now()

	receiptURL := ""
	if payment != nil {
		s.setStage(ctx, session, StageUploading)

		objectPath := storage.ReceiptObjectPath(userID, createdAt, payment.Filename)
		if _, err := s.Storage.Upload(ctx, payment.Reader, payment.Size, objectPath, payment.ContentType, nil); err != nil {
			s.fail(ctx, session, StageUploading, err)
			return nil, NewStageError(StageUploading, err)
		}
		url, err := s.Storage.GetDownloadURL(ctx, objectPath)
		if err != nil {
			s.fail(ctx, session, StageUploading, err)
			return nil, NewStageError(StageUploading, err)
		}
		receiptURL = url
	}

	s.setStage(ctx, session, StagePersisting)
	record := models.Booking{
		TourID:           draft.TourID,
		UserID:           userID,
		Name:             draft.Name,
		Email:            draft.Email,
		Contact:          draft.Contact,
		Date:             draft.Date,
		TotalPax:         draft.TotalPax,
		AdditionalPax:    draft.AdditionalPax,
		PaymentMethod:    draft.PaymentMethod,
		PaymentAmount:    draft.PaymentAmount,
		ReceiptURL:       receiptURL,
		ConfirmationCode: confirmationCode,
		Status:           models.BookingStatusPending,
		CreatedAt:        createdAt,
	}
	bookingID, err := s.Bookings.Create(ctx, &record)
	if err != nil {
		s.fail(ctx, session, StagePersisting, err)
		return nil, NewStageError(StagePersisting, err)
	}

	s.setStage(ctx, session, StageRendering)
	tourName := draft.TourID
	if t, ok := s.Tours.GetByID(draft.TourID); ok {
		tourName = t.Name
	}
	artifact, err := s.Renderer.Render(record, tourName)
	if err != nil {
		s.Logger.Error("booking: confirmation rendering failed",
			zap.String("bookingID", bookingID),
			zap.String("confirmationCode", confirmationCode),
			zap.Error(err))
		s.fail(ctx, session, StageRendering, err)
		return nil, NewStageError(StageRendering, err)
	}
	if _, err := s.Artifacts.Save(ctx, confirmationCode, artifact); err != nil {
		s.Logger.Error("booking: failed to store confirmation artifact",
			zap.String("confirmationCode", confirmationCode),
			zap.Error(err))
		s.fail(ctx, session, StageRendering, err)
		return nil, NewStageError(StageRendering, err)
	}

	// Release for download after the fixed preview delay. Delivery problems
	// never fail the submission; the artifact can be re-rendered at will.
	if s.Delivery != nil {
		if err := s.Delivery.ScheduleDownloadRelease(confirmationCode, s.DownloadDelay); err != nil {
			s.Logger.Warn("booking: failed to schedule download release",
				zap.String("confirmationCode", confirmationCode),
				zap.Error(err))
		}
	}

	session.Stage = StageDone
	session.BookingID = bookingID
	session.ConfirmationCode = confirmationCode
	s.saveSession(ctx, session)

	return &SubmitResult{
		SessionID:        session.ID,
		BookingID:        bookingID,
		ConfirmationCode: confirmationCode,
		ReceiptURL:       receiptURL,
		ArtifactName:     receipt.ArtifactName(confirmationCode),
		Status:           record.Status,
	}, nil
}

// GetSession returns the state of a prior submission.
func (s *DefaultWorkflowService) GetSession(ctx context.Context, sessionID string) (*Session, error) {
	return s.Sessions.Get(ctx, sessionID)
}

func (s *DefaultWorkflowService) setStage(ctx context.Context, session *Session, stage Stage) {
	session.Stage = stage
	s.saveSession(ctx, session)
}

func (s *DefaultWorkflowService) fail(ctx context.Context, session *Session, stage Stage, err error) {
	session.Stage = StageFailed
	session.FailedStage = stage
	session.Error = err.Error()
	s.saveSession(ctx, session)
}

// saveSession records stage transitions. Session bookkeeping is
// observability, not part of the transaction, so failures are only logged.
func (s *DefaultWorkflowService) saveSession(ctx context.Context, session *Session) {
	if s.Sessions == nil {
		return
	}
	if err := s.Sessions.Save(ctx, session); err != nil {
		s.Logger.Warn("booking: failed to save submission session",
			zap.String("sessionID", session.ID),
			zap.Error(err))
	}
}
