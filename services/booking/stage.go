package booking

import (
	"time"

	"tourvia/models"
)

// Stage identifies where a submission currently is, or where it failed.
type Stage string

const (
	StageIdle       Stage = "idle"
	StageValidating Stage = "validating"
	StageUploading  Stage = "uploading"
	StagePersisting Stage = "persisting"
	StageRendering  Stage = "rendering"
	StageDone       Stage = "done"
	StageFailed     Stage = "failed"
)

// Session tracks one booking submission through its stages. The draft is
// retained on failure so the user can resubmit without re-entering data.
type Session struct {
	ID               string             `json:"id"`
	UserID           string             `json:"userId"`
	Stage            Stage              `json:"stage"`
	FailedStage      Stage              `json:"failedStage,omitempty"`
	FieldErrors      map[FieldID]string `json:"fieldErrors,omitempty"`
	Draft            models.BookingDraft `json:"draft"`
	BookingID        string             `json:"bookingId,omitempty"`
	ConfirmationCode string             `json:"confirmationCode,omitempty"`
	Error            string             `json:"error,omitempty"`
	UpdatedAt        time.Time          `json:"updatedAt"`
}
