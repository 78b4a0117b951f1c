package patient

import (
	"context"
	"encoding/base64"
	"fmt"
	"path"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	apperrors "github.com/johnquangdev/meeting-planner/errors"
	"github.com/johnquangdev/meeting-planner/internal/domain/entities"
	"github.com/johnquangdev/meeting-planner/internal/domain/repositories"
	usecaseErrors "github.com/johnquangdev/meeting-planner/internal/usecase/errors"
)

const dateLayout = "2006-01-02"

// Column widths of the patient case and attachment tables
const (
	maxRecordNumberLen = 100
	maxTextLen         = 255
)

// BlobStore keeps attachment payloads outside the database
type BlobStore interface {
	Put(ctx context.Context, key string, data []byte, contentType string) error
	Remove(ctx context.Context, key string) error
}

// Service defines the interface for patient case use cases
type Service interface {
	CreatePatientDetail(ctx context.Context, input CreatePatientDetailInput) (*entities.MeetingPatientDetail, error)
	ListPatientDetails(ctx context.Context) ([]*entities.MeetingPatientDetail, error)
}

var _ Service = (*PatientService)(nil)

// AttachmentInput is one uploaded file. FileData is standard base64.
type AttachmentInput struct {
	FileName string
	FileType string
	FileData string
}

// CreatePatientDetailInput represents input for adding a patient case to a
// meeting. A zero MeetingID means the client did not send a usable one.
type CreatePatientDetailInput struct {
	MeetingID           uint
	MedicalRecordNumber string
	PatientName         string
	PatientDateOfBirth  string
	PatientDescription  string
	DoctorName          string
	DepartmentName      string
	MeetingAgendaNote   string
	Attachments         []AttachmentInput
}

// PatientService handles patient cases and their attachments
type PatientService struct {
	meetingRepo repositories.MeetingRepository
	patientRepo repositories.PatientDetailRepository
	blobs       BlobStore
	logger      *zap.Logger
}

// NewPatientService creates a new patient service. A nil blobs keeps
// attachment payloads in the database.
func NewPatientService(
	meetingRepo repositories.MeetingRepository,
	patientRepo repositories.PatientDetailRepository,
	blobs BlobStore,
	logger *zap.Logger,
) *PatientService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PatientService{
		meetingRepo: meetingRepo,
		patientRepo: patientRepo,
		blobs:       blobs,
		logger:      logger,
	}
}

// CreatePatientDetail validates the case, checks its meeting exists and
// writes the case with its attachments atomically
func (s *PatientService) CreatePatientDetail(ctx context.Context, input CreatePatientDetailInput) (*entities.MeetingPatientDetail, error) {
	if input.MeetingID == 0 {
		return nil, apperrors.ErrInvalidArgument("Meeting ID is required.")
	}

	detail := &entities.MeetingPatientDetail{
		MeetingID:           input.MeetingID,
		MedicalRecordNumber: strings.TrimSpace(input.MedicalRecordNumber),
		PatientName:         strings.TrimSpace(input.PatientName),
		DoctorName:          strings.TrimSpace(input.DoctorName),
		DepartmentName:      strings.TrimSpace(input.DepartmentName),
		PatientDescription:  optional(input.PatientDescription),
		MeetingAgendaNote:   optional(input.MeetingAgendaNote),
	}
	dob := strings.TrimSpace(input.PatientDateOfBirth)

	if detail.MedicalRecordNumber == "" || detail.PatientName == "" || dob == "" ||
		detail.DoctorName == "" || detail.DepartmentName == "" {
		return nil, apperrors.ErrInvalidArgument("Medical record number, patient name/date of birth, doctor name and department are required.")
	}
	if err := checkLengths(detail, input.Attachments); err != nil {
		return nil, err
	}

	birth, err := time.Parse(dateLayout, dob)
	if err != nil {
		return nil, apperrors.ErrInvalidDateTime(fmt.Sprintf("Invalid date/time: patientDateOfBirth %q must be YYYY-MM-DD.", dob))
	}
	detail.PatientDateOfBirth = datatypes.Date(birth)

	attachments, err := decodeAttachments(detail, input.Attachments)
	if err != nil {
		return nil, err
	}
	detail.Attachments = attachments

	exists, err := s.meetingRepo.Exists(ctx, input.MeetingID)
	if err != nil {
		return nil, usecaseErrors.Translate(err, "check meeting")
	}
	if !exists {
		return nil, apperrors.ErrMeetingReferenceNotFound()
	}

	uploaded, err := s.offload(ctx, detail)
	if err != nil {
		return nil, err
	}

	if err := s.patientRepo.CreateWithAttachments(ctx, detail); err != nil {
		s.cleanup(ctx, uploaded)
		return nil, usecaseErrors.Translate(err, "create patient detail")
	}

	s.logger.Info("patient_detail.created",
		zap.Uint("patient_detail_id", detail.ID),
		zap.Uint("meeting_id", detail.MeetingID),
		zap.Int("attachments", len(detail.Attachments)),
	)
	return detail, nil
}

// ListPatientDetails lists every case with its meeting, newest first
func (s *PatientService) ListPatientDetails(ctx context.Context) ([]*entities.MeetingPatientDetail, error) {
	details, err := s.patientRepo.List(ctx)
	if err != nil {
		return nil, usecaseErrors.Translate(err, "list patient details")
	}
	if details == nil {
		details = []*entities.MeetingPatientDetail{}
	}
	return details, nil
}

// checkLengths enforces column widths once the mandatory fields are present
func checkLengths(detail *entities.MeetingPatientDetail, attachments []AttachmentInput) error {
	type field struct {
		name  string
		value string
		max   int
	}
	fields := []field{
		{"medicalRecordNumber", detail.MedicalRecordNumber, maxRecordNumberLen},
		{"patientName", detail.PatientName, maxTextLen},
		{"doctorName", detail.DoctorName, maxTextLen},
		{"departmentName", detail.DepartmentName, maxTextLen},
	}
	for i, a := range attachments {
		fields = append(fields,
			field{fmt.Sprintf("attachments[%d].fileName", i), strings.TrimSpace(a.FileName), maxTextLen},
			field{fmt.Sprintf("attachments[%d].fileType", i), strings.TrimSpace(a.FileType), maxTextLen},
		)
	}

	for _, f := range fields {
		if utf8.RuneCountInString(f.value) > f.max {
			return apperrors.ErrInvalidArgument(fmt.Sprintf("Invalid request: %s must be at most %d characters.", f.name, f.max)).
				WithDetail("field", f.name)
		}
	}
	return nil
}

// decodeAttachments skips entries without a name or payload. Each kept
// attachment copies the case's record number, doctor and department.
func decodeAttachments(detail *entities.MeetingPatientDetail, inputs []AttachmentInput) ([]entities.MeetingAttachment, error) {
	attachments := make([]entities.MeetingAttachment, 0, len(inputs))
	for _, in := range inputs {
		name := strings.TrimSpace(in.FileName)
		if name == "" || in.FileData == "" {
			continue
		}

		data, err := base64.StdEncoding.DecodeString(in.FileData)
		if err != nil {
			return nil, apperrors.ErrInvalidArgument(fmt.Sprintf("Attachment %s is not valid base64.", name)).
				WithDetail("fileName", name)
		}

		fileType := optional(in.FileType)
		if fileType == nil {
			detected := mimetype.Detect(data).String()
			fileType = &detected
		}

		attachments = append(attachments, entities.MeetingAttachment{
			MeetingID:           detail.MeetingID,
			MedicalRecordNumber: detail.MedicalRecordNumber,
			DoctorName:          detail.DoctorName,
			DepartmentName:      detail.DepartmentName,
			FileName:            name,
			FileType:            fileType,
			FileSize:            int64(len(data)),
			FileData:            data,
		})
	}
	return attachments, nil
}

// offload moves payloads to the blob store when one is configured and
// returns the keys written
func (s *PatientService) offload(ctx context.Context, detail *entities.MeetingPatientDetail) ([]string, error) {
	if s.blobs == nil || len(detail.Attachments) == 0 {
		return nil, nil
	}

	keys := make([]string, 0, len(detail.Attachments))
	for i := range detail.Attachments {
		a := &detail.Attachments[i]
		key := path.Join("meetings", fmt.Sprint(detail.MeetingID), uuid.NewString(), path.Base(a.FileName))

		contentType := ""
		if a.FileType != nil {
			contentType = *a.FileType
		}
		if err := s.blobs.Put(ctx, key, a.FileData, contentType); err != nil {
			s.cleanup(ctx, keys)
			return nil, apperrors.ErrStorageFailed("upload attachment", err)
		}

		keys = append(keys, key)
		a.ObjectKey = &key
		a.FileData = nil
	}
	return keys, nil
}

func (s *PatientService) cleanup(ctx context.Context, keys []string) {
	if s.blobs == nil {
		return
	}
	ctx = context.WithoutCancel(ctx)
	for _, key := range keys {
		if err := s.blobs.Remove(ctx, key); err != nil {
			s.logger.Warn("attachment.cleanup.failed", zap.String("key", key), zap.Error(err))
		}
	}
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
