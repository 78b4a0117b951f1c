package presenter

import (
	"time"

	patientdto "github.com/johnquangdev/meeting-planner/internal/adapter/dto/patient"
	"github.com/johnquangdev/meeting-planner/internal/domain/entities"
)

// ToCreatePatientDetailResponse converts a stored case to its creation DTO
func ToCreatePatientDetailResponse(d *entities.MeetingPatientDetail) patientdto.CreatePatientDetailResponse {
	return patientdto.CreatePatientDetailResponse{
		ID:          d.ID,
		MeetingID:   d.MeetingID,
		PatientName: d.PatientName,
	}
}

// ToPatientDetailListResponse converts cases with their meetings to DTOs
func ToPatientDetailListResponse(details []*entities.MeetingPatientDetail) []patientdto.PatientDetailResponse {
	out := make([]patientdto.PatientDetailResponse, 0, len(details))
	for _, d := range details {
		item := patientdto.PatientDetailResponse{
			ID:                  d.ID,
			MeetingID:           d.MeetingID,
			MedicalRecordNumber: d.MedicalRecordNumber,
			PatientName:         d.PatientName,
			PatientDateOfBirth:  time.Time(d.PatientDateOfBirth).Format("2006-01-02"),
			PatientDescription:  d.PatientDescription,
			DoctorName:          d.DoctorName,
			DepartmentName:      d.DepartmentName,
			MeetingAgendaNote:   d.MeetingAgendaNote,
		}
		if d.Meeting != nil {
			name := d.Meeting.Name
			item.MeetingName = &name
		}
		out = append(out, item)
	}
	return out
}
