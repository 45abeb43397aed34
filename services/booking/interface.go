package booking

import (
	"context"
	"io"
	"time"

	"tourvia/database/repository/bookings"
	"tourvia/models"
	"tourvia/services/receipt"
	"tourvia/services/storage"

	"go.uber.org/zap"
)

// PaymentImage is an optional uploaded payment receipt accompanying a
// booking submission.
type PaymentImage struct {
	Filename    string
	ContentType string
	Size        int64
	Reader      io.Reader
}

// SubmitResult summarizes a completed submission.
type SubmitResult struct {
	SessionID        string               `json:"sessionId"`
	BookingID        string               `json:"bookingId"`
	ConfirmationCode string               `json:"confirmationCode"`
	ReceiptURL       string               `json:"receiptUrl,omitempty"`
	ArtifactName     string               `json:"artifactName"`
	Status           models.BookingStatus `json:"status"`
}

// WorkflowService orchestrates the staged booking submission: validation,
// conditional receipt upload, persistence and confirmation rendering.
type WorkflowService interface {
	Submit(ctx context.Context, userID string, draft models.BookingDraft, payment *PaymentImage) (*SubmitResult, error)
	GetSession(ctx context.Context, sessionID string) (*Session, error)
}

// TourLookup resolves tour names for rendering. Satisfied by the catalog service.
type TourLookup interface {
	GetByID(id string) (*models.Tour, bool)
}

// ArtifactSink stores rendered confirmation artifacts. Satisfied by receipt.Store.
type ArtifactSink interface {
	Save(ctx context.Context, confirmationCode string, data []byte) (string, error)
}

// DeliveryScheduler releases an artifact for download after a fixed delay.
type DeliveryScheduler interface {
	ScheduleDownloadRelease(confirmationCode string, delay time.Duration) error
}

// DefaultWorkflowService implements WorkflowService.
type DefaultWorkflowService struct {
	Bookings      bookings.BookingRepository
	Tours         TourLookup
	Storage       storage.StorageService
	Renderer      receipt.Renderer
	Artifacts     ArtifactSink
	Sessions      SessionStore
	Delivery      DeliveryScheduler
	DownloadDelay time.Duration
	Logger        *zap.Logger
}
