package patient

import "github.com/johnquangdev/meeting-planner/internal/adapter/dto/common"

// AttachmentRequest is one uploaded file with a base64 payload. Field
// widths are checked by the patient service after the mandatory fields.
type AttachmentRequest struct {
	FileName string `json:"fileName"`
	FileType string `json:"fileType"`
	FileData string `json:"fileData"`
}

// CreatePatientDetailRequest represents the request to add a patient case
type CreatePatientDetailRequest struct {
	MeetingID           common.FlexibleID   `json:"meetingId"`
	MedicalRecordNumber string              `json:"medicalRecordNumber"`
	PatientName         string              `json:"patientName"`
	PatientDateOfBirth  string              `json:"patientDateOfBirth"`
	PatientDescription  string              `json:"patientDescription"`
	DoctorName          string              `json:"doctorName"`
	DepartmentName      string              `json:"departmentName"`
	MeetingAgendaNote   string              `json:"meetingAgendaNote"`
	Attachments         []AttachmentRequest `json:"attachments"`
}
