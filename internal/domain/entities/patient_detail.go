package entities

import (
	"time"

	"gorm.io/datatypes"
)

// MeetingPatientDetail is a patient case discussed in a meeting
type MeetingPatientDetail struct {
	ID                  uint                `gorm:"primaryKey" json:"id"`
	MeetingID           uint                `gorm:"not null;index" json:"meeting_id"`
	Meeting             *Meeting            `gorm:"foreignKey:MeetingID" json:"meeting,omitempty"`
	MedicalRecordNumber string              `gorm:"type:varchar(100);not null" json:"medical_record_number"`
	PatientName         string              `gorm:"type:varchar(255);not null" json:"patient_name"`
	PatientDateOfBirth  datatypes.Date      `gorm:"not null" json:"patient_date_of_birth"`
	PatientDescription  *string             `gorm:"type:text" json:"patient_description,omitempty"`
	DoctorName          string              `gorm:"type:varchar(255);not null" json:"doctor_name"`
	DepartmentName      string              `gorm:"type:varchar(255);not null" json:"department_name"`
	MeetingAgendaNote   *string             `gorm:"type:text" json:"meeting_agenda_note,omitempty"`
	Attachments         []MeetingAttachment `gorm:"foreignKey:PatientDetailID" json:"attachments,omitempty"`
	CreatedAt           time.Time           `gorm:"default:now()" json:"created_at"`
}

// TableName specifies the table name for MeetingPatientDetail
func (MeetingPatientDetail) TableName() string {
	return "meeting_patient_details"
}

// MeetingAttachment is a file attached to a patient case. FileSize is always
// computed from the decoded payload. The payload lives either in FileData or
// in the object store under ObjectKey.
type MeetingAttachment struct {
	ID                  uint      `gorm:"primaryKey" json:"id"`
	MeetingID           uint      `gorm:"not null;index" json:"meeting_id"`
	PatientDetailID     *uint     `gorm:"index" json:"patient_detail_id,omitempty"`
	MedicalRecordNumber string    `gorm:"type:varchar(100);not null" json:"medical_record_number"`
	DoctorName          string    `gorm:"type:varchar(255);not null" json:"doctor_name"`
	DepartmentName      string    `gorm:"type:varchar(255);not null" json:"department_name"`
	FileName            string    `gorm:"type:varchar(255);not null" json:"file_name"`
	FileType            *string   `gorm:"type:varchar(255)" json:"file_type,omitempty"`
	FileSize            int64     `gorm:"not null" json:"file_size"`
	FileData            []byte    `gorm:"type:bytea" json:"-"`
	ObjectKey           *string   `gorm:"type:varchar(512)" json:"object_key,omitempty"`
	CreatedAt           time.Time `gorm:"default:now()" json:"created_at"`
}

// TableName specifies the table name for MeetingAttachment
func (MeetingAttachment) TableName() string {
	return "meeting_attachments"
}
