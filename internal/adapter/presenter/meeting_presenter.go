package presenter

import (
	meetingdto "github.com/johnquangdev/meeting-planner/internal/adapter/dto/meeting"
	meetingUsecase "github.com/johnquangdev/meeting-planner/internal/usecase/meeting"
)

// ToCreateMeetingResponse converts the orchestrator outcome to its DTO
func ToCreateMeetingResponse(out *meetingUsecase.CreateMeetingOutput) *meetingdto.CreateMeetingResponse {
	if out == nil {
		return nil
	}
	return &meetingdto.CreateMeetingResponse{
		ID:          out.ID,
		Name:        out.Name,
		EmailStatus: out.EmailStatus,
		Warning:     out.Warning,
		Note:        out.Note,
	}
}

// ToMeetingResponse converts an aggregated meeting view to its DTO
func ToMeetingResponse(v *meetingUsecase.MeetingView) meetingdto.MeetingResponse {
	patients := make([]meetingdto.PatientResponse, 0, len(v.Patients))
	for _, p := range v.Patients {
		patients = append(patients, meetingdto.PatientResponse{
			PatientDetailID:     p.ID,
			PatientName:         p.PatientName,
			MedicalRecordNumber: p.MedicalRecordNumber,
			PatientDateOfBirth:  p.PatientDateOfBirth,
			DoctorName:          p.DoctorName,
			DepartmentName:      p.DepartmentName,
			MeetingAgendaNote:   p.MeetingAgendaNote,
			PatientDescription:  p.PatientDescription,
		})
	}

	responses := make(map[string]string, len(v.Responses))
	for email, status := range v.Responses {
		responses[email] = string(status)
	}

	return meetingdto.MeetingResponse{
		ID:                v.ID,
		Name:              v.Name,
		StartsAt:          v.StartsAt,
		StartTime:         v.StartTime,
		EndTime:           v.EndTime,
		Timezone:          v.Timezone,
		ScheduleType:      v.ScheduleType,
		RecurrenceRule:    v.RecurrenceRule,
		RecurrenceEndDate: v.RecurrenceEndDate,
		Patients:          patients,
		AttachmentCount:   v.AttachmentCount,
		AttachmentNames:   nonNil(v.AttachmentNames),
		Invitees:          nonNil(v.Invitees),
		Responses:         responses,
	}
}

// ToMeetingListResponse converts the aggregated views to DTOs
func ToMeetingListResponse(views []*meetingUsecase.MeetingView) []meetingdto.MeetingResponse {
	out := make([]meetingdto.MeetingResponse, 0, len(views))
	for _, v := range views {
		out = append(out, ToMeetingResponse(v))
	}
	return out
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
