package meeting

// CreateMeetingResponse is returned after a meeting is persisted. At most one
// of EmailStatus, Warning and Note is set.
type CreateMeetingResponse struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	EmailStatus string `json:"email_status,omitempty"`
	Warning     string `json:"warning,omitempty"`
	Note        string `json:"note,omitempty"`
}

// PatientResponse is a patient case inside a meeting listing
type PatientResponse struct {
	PatientDetailID     uint    `json:"patientDetailId"`
	PatientName         string  `json:"patientName"`
	MedicalRecordNumber string  `json:"medicalRecordNumber"`
	PatientDateOfBirth  string  `json:"patientDateOfBirth"`
	DoctorName          string  `json:"doctorName"`
	DepartmentName      string  `json:"departmentName"`
	MeetingAgendaNote   *string `json:"meetingAgendaNote"`
	PatientDescription  *string `json:"patientDescription"`
}

// MeetingResponse is one row of the meeting listing
type MeetingResponse struct {
	ID                uint              `json:"id"`
	Name              string            `json:"name"`
	StartsAt          string            `json:"startsAt"`
	StartTime         string            `json:"startTime"`
	EndTime           string            `json:"endTime"`
	Timezone          string            `json:"timezone"`
	ScheduleType      string            `json:"scheduleType"`
	RecurrenceRule    *string           `json:"recurrenceRule"`
	RecurrenceEndDate *string           `json:"recurrenceEndDate"`
	Patients          []PatientResponse `json:"patients"`
	AttachmentCount   int               `json:"attachmentCount"`
	AttachmentNames   []string          `json:"attachmentNames"`
	Invitees          []string          `json:"invitees"`
	Responses         map[string]string `json:"responses"`
}
