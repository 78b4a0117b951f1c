package repositories

import (
	"context"

	"github.com/johnquangdev/meeting-planner/internal/domain/entities"
)

// PatientDetailRepository defines the interface for patient case data access
type PatientDetailRepository interface {
	// CreateWithAttachments persists a patient case and its attachments in a
	// single transaction
	CreateWithAttachments(ctx context.Context, detail *entities.MeetingPatientDetail) error

	// List retrieves every patient case with its meeting, newest first
	List(ctx context.Context) ([]*entities.MeetingPatientDetail, error)

	// ListByMeetings retrieves the patient cases of the given meetings
	ListByMeetings(ctx context.Context, meetingIDs []uint) ([]*entities.MeetingPatientDetail, error)

	// ListAttachmentsByMeetings retrieves attachment metadata, without
	// payloads, for the given meetings
	ListAttachmentsByMeetings(ctx context.Context, meetingIDs []uint) ([]*entities.MeetingAttachment, error)
}
