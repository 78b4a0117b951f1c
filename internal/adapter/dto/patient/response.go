package patient

// CreatePatientDetailResponse is returned after a patient case is stored
type CreatePatientDetailResponse struct {
	ID          uint   `json:"id"`
	MeetingID   uint   `json:"meetingId"`
	PatientName string `json:"patientName"`
}

// PatientDetailResponse is one row of the patient case listing
type PatientDetailResponse struct {
	ID                  uint    `json:"id"`
	MeetingID           uint    `json:"meetingId"`
	MeetingName         *string `json:"meetingName"`
	MedicalRecordNumber string  `json:"medicalRecordNumber"`
	PatientName         string  `json:"patientName"`
	PatientDateOfBirth  string  `json:"patientDateOfBirth"`
	PatientDescription  *string `json:"patientDescription"`
	DoctorName          string  `json:"doctorName"`
	DepartmentName      string  `json:"departmentName"`
	MeetingAgendaNote   *string `json:"meetingAgendaNote"`
}
