package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/johnquangdev/meeting-planner/internal/domain/entities"
	"github.com/johnquangdev/meeting-planner/internal/domain/repositories"
)

// patientDetailRepository implements the PatientDetailRepository interface
type patientDetailRepository struct {
	db *gorm.DB
}

// NewPatientDetailRepository creates a new patient detail repository
func NewPatientDetailRepository(db *gorm.DB) repositories.PatientDetailRepository {
	return &patientDetailRepository{db: db}
}

// CreateWithAttachments persists a patient case and its attachments
func (r *patientDetailRepository) CreateWithAttachments(ctx context.Context, detail *entities.MeetingPatientDetail) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(detail).Error; err != nil {
			return err
		}
		if len(detail.Attachments) == 0 {
			return nil
		}

		for i := range detail.Attachments {
			detail.Attachments[i].MeetingID = detail.MeetingID
			detail.Attachments[i].PatientDetailID = &detail.ID
		}
		return tx.Create(&detail.Attachments).Error
	})

	return translateError(err)
}

// List retrieves every patient case joined with its meeting
func (r *patientDetailRepository) List(ctx context.Context) ([]*entities.MeetingPatientDetail, error) {
	var details []*entities.MeetingPatientDetail
	err := r.db.WithContext(ctx).
		Joins("Meeting").
		Order("meeting_patient_details.created_at DESC").
		Order("meeting_patient_details.id DESC").
		Find(&details).Error
	if err != nil {
		return nil, err
	}
	return details, nil
}

// ListByMeetings retrieves the patient cases of the given meetings
func (r *patientDetailRepository) ListByMeetings(ctx context.Context, meetingIDs []uint) ([]*entities.MeetingPatientDetail, error) {
	if len(meetingIDs) == 0 {
		return nil, nil
	}

	var details []*entities.MeetingPatientDetail
	err := r.db.WithContext(ctx).
		Where("meeting_id IN ?", meetingIDs).
		Order("patient_name ASC").
		Order("id ASC").
		Find(&details).Error
	if err != nil {
		return nil, err
	}
	return details, nil
}

// ListAttachmentsByMeetings retrieves attachment metadata without payloads
func (r *patientDetailRepository) ListAttachmentsByMeetings(ctx context.Context, meetingIDs []uint) ([]*entities.MeetingAttachment, error) {
	if len(meetingIDs) == 0 {
		return nil, nil
	}

	var attachments []*entities.MeetingAttachment
	err := r.db.WithContext(ctx).
		Omit("file_data").
		Where("meeting_id IN ?", meetingIDs).
		Order("file_name ASC").
		Order("id ASC").
		Find(&attachments).Error
	if err != nil {
		return nil, err
	}
	return attachments, nil
}
