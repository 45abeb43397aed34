package booking

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"tourvia/models"
	"tourvia/services/receipt"
	storagePkg "tourvia/services/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockBookingRepo struct{ mock.Mock }

func (m *mockBookingRepo) Create(ctx context.Context, b *models.Booking) (string, error) {
	args := m.Called(ctx, b)
	return args.String(0), args.Error(1)
}

func (m *mockBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	args := m.Called(ctx, id)
	if b := args.Get(0); b != nil {
		return b.(*models.Booking), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBookingRepo) GetByUser(ctx context.Context, userID string) ([]models.Booking, error) {
	args := m.Called(ctx, userID)
	if b := args.Get(0); b != nil {
		return b.([]models.Booking), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBookingRepo) UpdateStatus(ctx context.Context, id string, status models.BookingStatus) error {
	return m.Called(ctx, id, status).Error(0)
}

func (m *mockBookingRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type mockStorage struct{ mock.Mock }

func (m *mockStorage) Upload(ctx context.Context, r io.Reader, size int64, objectPath, contentType string, progress storagePkg.ProgressFunc) (string, error) {
	args := m.Called(ctx, objectPath, contentType)
	return args.String(0), args.Error(1)
}

func (m *mockStorage) Delete(ctx context.Context, objectPath string) error {
	return m.Called(ctx, objectPath).Error(0)
}

func (m *mockStorage) GetDownloadURL(ctx context.Context, objectPath string) (string, error) {
	args := m.Called(ctx, objectPath)
	return args.String(0), args.Error(1)
}

func (m *mockStorage) GetSecureDownloadURL(ctx context.Context, objectPath string, expires time.Duration) (string, error) {
	args := m.Called(ctx, objectPath, expires)
	return args.String(0), args.Error(1)
}

type mockRenderer struct{ mock.Mock }

func (m *mockRenderer) Render(b models.Booking, tourName string) ([]byte, error) {
	args := m.Called(b, tourName)
	if data := args.Get(0); data != nil {
		return data.([]byte), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockArtifacts struct{ mock.Mock }

func (m *mockArtifacts) Save(ctx context.Context, confirmationCode string, data []byte) (string, error) {
	args := m.Called(ctx, confirmationCode, data)
	return args.String(0), args.Error(1)
}

type mockDelivery struct{ mock.Mock }

func (m *mockDelivery) ScheduleDownloadRelease(confirmationCode string, delay time.Duration) error {
	return m.Called(confirmationCode, delay).Error(0)
}

// memorySessions records the latest state of each submission session.
type memorySessions struct {
	last *Session
}

func (m *memorySessions) Save(ctx context.Context, s *Session) error {
	copied := *s
	m.last = &copied
	return nil
}

func (m *memorySessions) Get(ctx context.Context, id string) (*Session, error) {
	if m.last == nil || m.last.ID != id {
		return nil, ErrSessionNotFound
	}
	return m.last, nil
}

// stubTours resolves every tour ID to a fixed name.
type stubTours struct{ name string }

func (s stubTours) GetByID(id string) (*models.Tour, bool) {
	if s.name == "" {
		return nil, false
	}
	return &models.Tour{ID: id, Name: s.name}, true
}

func newTestWorkflow(repo *mockBookingRepo, store *mockStorage, renderer *mockRenderer, artifacts *mockArtifacts, delivery *mockDelivery, sessions *memorySessions) *DefaultWorkflowService {
	return &DefaultWorkflowService{
		Bookings:      repo,
		Tours:         stubTours{name: "Langkawi Island Escape"},
		Storage:       store,
		Renderer:      renderer,
		Artifacts:     artifacts,
		Sessions:      sessions,
		Delivery:      delivery,
		DownloadDelay: 1500 * time.Millisecond,
		Logger:        zap.NewNop(),
	}
}

func TestSubmit_RequiresAuthentication(t *testing.T) {
	repo := new(mockBookingRepo)
	store := new(mockStorage)
	svc := newTestWorkflow(repo, store, new(mockRenderer), new(mockArtifacts), new(mockDelivery), &memorySessions{})

	_, err := svc.Submit(context.Background(), "", validDraft(), nil)

	require.ErrorIs(t, err, ErrAuthRequired)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	store.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything)
}

func TestSubmit_ValidationGateHasNoSideEffects(t *testing.T) {
	repo := new(mockBookingRepo)
	store := new(mockStorage)
	sessions := &memorySessions{}
	svc := newTestWorkflow(repo, store, new(mockRenderer), new(mockArtifacts), new(mockDelivery), sessions)

	d := validDraft()
	d.Email = ""
	_, err := svc.Submit(context.Background(), "user-1", d, nil)

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Fields, FieldEmail)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	store.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything)
	assert.Equal(t, StageIdle, sessions.last.Stage)
}

func TestSubmit_UploadFailureAbortsBeforePersistence(t *testing.T) {
	repo := new(mockBookingRepo)
	store := new(mockStorage)
	sessions := &memorySessions{}
	svc := newTestWorkflow(repo, store, new(mockRenderer), new(mockArtifacts), new(mockDelivery), sessions)

	store.On("Upload", mock.Anything, mock.Anything, mock.Anything).Return("", errors.New("network down"))

	payment := &PaymentImage{Filename: "receipt.jpg", ContentType: "image/jpeg", Size: 4, Reader: strings.NewReader("data")}
	_, err := svc.Submit(context.Background(), "user-1", validDraft(), payment)

	var sErr *StageError
	require.ErrorAs(t, err, &sErr)
	assert.Equal(t, StageUploading, sErr.Stage)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	assert.Equal(t, StageFailed, sessions.last.Stage)
	assert.Equal(t, StageUploading, sessions.last.FailedStage)
}

func TestSubmit_PersistenceFailureKeepsDraft(t *testing.T) {
	repo := new(mockBookingRepo)
	store := new(mockStorage)
	artifacts := new(mockArtifacts)
	sessions := &memorySessions{}
	svc := newTestWorkflow(repo, store, new(mockRenderer), artifacts, new(mockDelivery), sessions)

	repo.On("Create", mock.Anything, mock.Anything).Return("", errors.New("store unavailable"))

	d := validDraft()
	_, err := svc.Submit(context.Background(), "user-1", d, nil)

	var sErr *StageError
	require.ErrorAs(t, err, &sErr)
	assert.Equal(t, StagePersisting, sErr.Stage)
	artifacts.AssertNotCalled(t, "Save", mock.Anything, mock.Anything, mock.Anything)
	assert.Equal(t, StagePersisting, sessions.last.FailedStage)
	assert.Equal(t, d, sessions.last.Draft)
}

func TestSubmit_SuccessWithPayment(t *testing.T) {
	repo := new(mockBookingRepo)
	store := new(mockStorage)
	renderer := new(mockRenderer)
	artifacts := new(mockArtifacts)
	delivery := new(mockDelivery)
	sessions := &memorySessions{}
	svc := newTestWorkflow(repo, store, renderer, artifacts, delivery, sessions)

	store.On("Upload", mock.Anything, mock.Anything, "image/jpeg").Return("receipts/user-1/x.jpg", nil)
	store.On("GetDownloadURL", mock.Anything, mock.Anything).Return("https://files.example/receipt.jpg", nil)

	var created *models.Booking
	repo.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		created = args.Get(1).(*models.Booking)
	}).Return("bk-1", nil)

	renderer.On("Render", mock.Anything, "Langkawi Island Escape").Return([]byte("%PDF-stub"), nil)
	artifacts.On("Save", mock.Anything, mock.Anything, mock.Anything).Return("receipts/out.pdf", nil)
	delivery.On("ScheduleDownloadRelease", mock.Anything, 1500*time.Millisecond).Return(nil)

	payment := &PaymentImage{Filename: "receipt.jpg", ContentType: "image/jpeg", Size: 4, Reader: strings.NewReader("data")}
	result, err := svc.Submit(context.Background(), "user-1", validDraft(), payment)

	require.NoError(t, err)
	assert.Regexp(t, confirmationPattern, result.ConfirmationCode)
	assert.Equal(t, "bk-1", result.BookingID)
	assert.Equal(t, "https://files.example/receipt.jpg", result.ReceiptURL)
	assert.Equal(t, "Booking_Confirmation_"+result.ConfirmationCode+".pdf", result.ArtifactName)
	assert.Equal(t, receipt.ArtifactName(result.ConfirmationCode), result.ArtifactName)
	assert.Equal(t, models.BookingStatusPending, result.Status)

	require.NotNil(t, created)
	assert.Equal(t, "user-1", created.UserID)
	assert.Equal(t, "https://files.example/receipt.jpg", created.ReceiptURL)
	assert.Len(t, created.AdditionalPax, 2)
	assert.Equal(t, result.ConfirmationCode, created.ConfirmationCode)

	assert.Equal(t, StageDone, sessions.last.Stage)
	assert.Equal(t, "bk-1", sessions.last.BookingID)
	delivery.AssertExpectations(t)
}

func TestSubmit_SurplusParticipantEntriesDropped(t *testing.T) {
	repo := new(mockBookingRepo)
	store := new(mockStorage)
	renderer := new(mockRenderer)
	artifacts := new(mockArtifacts)
	delivery := new(mockDelivery)
	svc := newTestWorkflow(repo, store, renderer, artifacts, delivery, &memorySessions{})

	var created *models.Booking
	repo.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		created = args.Get(1).(*models.Booking)
	}).Return("bk-4", nil)
	renderer.On("Render", mock.Anything, mock.Anything).Return([]byte("%PDF-stub"), nil)
	artifacts.On("Save", mock.Anything, mock.Anything, mock.Anything).Return("receipts/out.pdf", nil)
	delivery.On("ScheduleDownloadRelease", mock.Anything, mock.Anything).Return(nil)

	// A solo booking carrying leftover entries from a larger party size.
	d := validDraft()
	d.TotalPax = 1
	_, err := svc.Submit(context.Background(), "user-1", d, nil)

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, 1, created.TotalPax)
	assert.Empty(t, created.AdditionalPax)
}

func TestSubmit_NoPaymentSkipsUpload(t *testing.T) {
	repo := new(mockBookingRepo)
	store := new(mockStorage)
	renderer := new(mockRenderer)
	artifacts := new(mockArtifacts)
	delivery := new(mockDelivery)
	svc := newTestWorkflow(repo, store, renderer, artifacts, delivery, &memorySessions{})

	var created *models.Booking
	repo.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		created = args.Get(1).(*models.Booking)
	}).Return("bk-2", nil)
	renderer.On("Render", mock.Anything, mock.Anything).Return([]byte("%PDF-stub"), nil)
	artifacts.On("Save", mock.Anything, mock.Anything, mock.Anything).Return("receipts/out.pdf", nil)
	delivery.On("ScheduleDownloadRelease", mock.Anything, mock.Anything).Return(nil)

	result, err := svc.Submit(context.Background(), "user-1", validDraft(), nil)

	require.NoError(t, err)
	assert.Empty(t, result.ReceiptURL)
	store.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything)
	require.NotNil(t, created)
	assert.Equal(t, "", created.ReceiptURL)
}

func TestSubmit_RenderFailureKeepsBooking(t *testing.T) {
	repo := new(mockBookingRepo)
	store := new(mockStorage)
	renderer := new(mockRenderer)
	artifacts := new(mockArtifacts)
	sessions := &memorySessions{}
	svc := newTestWorkflow(repo, store, renderer, artifacts, new(mockDelivery), sessions)

	repo.On("Create", mock.Anything, mock.Anything).Return("bk-3", nil)
	renderer.On("Render", mock.Anything, mock.Anything).Return(nil, errors.New("layout bug"))

	_, err := svc.Submit(context.Background(), "user-1", validDraft(), nil)

	var sErr *StageError
	require.ErrorAs(t, err, &sErr)
	assert.Equal(t, StageRendering, sErr.Stage)
	repo.AssertCalled(t, "Create", mock.Anything, mock.Anything)
	assert.Equal(t, StageRendering, sessions.last.FailedStage)
}
