package meeting

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	apperrors "github.com/johnquangdev/meeting-planner/errors"
	"github.com/johnquangdev/meeting-planner/internal/domain/entities"
	"github.com/johnquangdev/meeting-planner/pkg/config"
)

func date(t *testing.T, value string) datatypes.Date {
	t.Helper()
	d, err := time.Parse(dateLayout, value)
	require.NoError(t, err)
	return datatypes.Date(d)
}

func scheduled(t *testing.T, id uint, name, startsAt string) *entities.Meeting {
	t.Helper()
	return &entities.Meeting{
		ID:   id,
		Name: name,
		Schedule: &entities.MeetingSchedule{
			MeetingID:    id,
			StartsAt:     date(t, startsAt),
			StartTime:    datatypes.NewTime(9, 0, 0, 0),
			EndTime:      datatypes.NewTime(10, 15, 30, 0),
			Timezone:     "UTC",
			ScheduleType: entities.ScheduleTypeOneTime,
		},
	}
}

func status(s entities.ResponseStatus) *entities.ResponseStatus {
	return &s
}

func TestAssembleMeetingViews(t *testing.T) {
	meetings := []*entities.Meeting{
		scheduled(t, 2, "Later", "2026-05-01"),
		scheduled(t, 1, "Earlier", "2026-04-01"),
	}
	note := "bring scans | MRI || CT"

	patients := []*entities.MeetingPatientDetail{
		{ID: 10, MeetingID: 2, MedicalRecordNumber: "MRN-2", PatientName: "Zed", PatientDateOfBirth: date(t, "1980-01-02"), DoctorName: "Dr. A", DepartmentName: "Oncology"},
		{ID: 11, MeetingID: 2, MedicalRecordNumber: "MRN-1", PatientName: "Amy", PatientDateOfBirth: date(t, "1975-07-08"), DoctorName: "Dr. B", DepartmentName: "Cardiology", MeetingAgendaNote: &note},
		{ID: 12, MeetingID: 2, MedicalRecordNumber: "", PatientName: "Broken", PatientDateOfBirth: date(t, "1990-01-01"), DoctorName: "Dr. C", DepartmentName: "ENT"},
		{ID: 13, MeetingID: 99, MedicalRecordNumber: "MRN-9", PatientName: "Orphan", PatientDateOfBirth: date(t, "1990-01-01"), DoctorName: "Dr. D", DepartmentName: "ENT"},
	}
	attachments := []*entities.MeetingAttachment{
		{ID: 20, MeetingID: 2, FileName: "scan.png"},
		{ID: 21, MeetingID: 2, FileName: "labs.pdf"},
		{ID: 21, MeetingID: 2, FileName: "labs.pdf"},
		{ID: 22, MeetingID: 2, FileName: "scan.png"},
	}
	invites := []*entities.MeetingInvite{
		{MeetingID: 2, Emails: datatypes.JSONSlice[string]{"b@example.com", "a@example.com"}},
		{MeetingID: 2, Emails: datatypes.JSONSlice[string]{"a@example.com", "c@example.com"}},
	}
	responses := []*entities.MeetingInviteeResponse{
		{ID: 30, MeetingID: 2, InviteeEmail: "a@example.com", Status: status(entities.ResponseStatusAccept)},
		{ID: 31, MeetingID: 2, InviteeEmail: "a@example.com", Status: status(entities.ResponseStatusDecline)},
		{ID: 32, MeetingID: 2, InviteeEmail: "b@example.com"},
	}

	views := AssembleMeetingViews(meetings, patients, attachments, invites, responses)
	require.Len(t, views, 2)

	later := views[0]
	assert.Equal(t, uint(2), later.ID)
	assert.Equal(t, "2026-05-01", later.StartsAt)
	assert.Equal(t, "09:00", later.StartTime)
	assert.Equal(t, "10:15:30", later.EndTime)
	require.Len(t, later.Patients, 2)
	assert.Equal(t, "Amy", later.Patients[0].PatientName)
	assert.Equal(t, "1975-07-08", later.Patients[0].PatientDateOfBirth)
	require.NotNil(t, later.Patients[0].MeetingAgendaNote)
	assert.Equal(t, note, *later.Patients[0].MeetingAgendaNote, "delimiter characters survive")
	assert.Equal(t, "Zed", later.Patients[1].PatientName)
	assert.Equal(t, 3, later.AttachmentCount)
	assert.Equal(t, []string{"labs.pdf", "scan.png"}, later.AttachmentNames)
	assert.Equal(t, []string{"b@example.com", "a@example.com", "c@example.com"}, later.Invitees)
	assert.Equal(t, map[string]entities.ResponseStatus{
		"a@example.com": entities.ResponseStatusAccept,
		"b@example.com": entities.ResponseStatusPending,
	}, later.Responses)

	earlier := views[1]
	assert.NotNil(t, earlier.Patients)
	assert.Empty(t, earlier.Patients)
	assert.NotNil(t, earlier.AttachmentNames)
	assert.NotNil(t, earlier.Invitees)
	assert.NotNil(t, earlier.Responses)
	assert.Zero(t, earlier.AttachmentCount)
	assert.Nil(t, earlier.RecurrenceRule)
	assert.Nil(t, earlier.RecurrenceEndDate)
}

func TestListMeetings(t *testing.T) {
	t.Run("joins children loaded per meeting", func(t *testing.T) {
		f := newFixture(t, config.EmailConfig{})
		meetings := []*entities.Meeting{scheduled(t, 4, "Board", "2026-01-05")}
		ids := []uint{4}

		f.meetings.On("ListWithSchedules", mock.Anything).Return(meetings, nil)
		f.meetings.On("ListInvites", mock.Anything, ids).Return([]*entities.MeetingInvite{
			{MeetingID: 4, Emails: datatypes.JSONSlice[string]{"x@example.com"}},
		}, nil)
		f.patients.On("ListByMeetings", mock.Anything, ids).Return([]*entities.MeetingPatientDetail{}, nil)
		f.patients.On("ListAttachmentsByMeetings", mock.Anything, ids).Return([]*entities.MeetingAttachment{}, nil)
		f.responses.On("ListByMeetings", mock.Anything, ids).Return([]*entities.MeetingInviteeResponse{
			{MeetingID: 4, InviteeEmail: "x@example.com", Status: status(entities.ResponseStatusTentative)},
		}, nil)

		views, err := f.service.ListMeetings(context.Background())
		require.NoError(t, err)
		require.Len(t, views, 1)
		assert.Equal(t, []string{"x@example.com"}, views[0].Invitees)
		assert.Equal(t, entities.ResponseStatusTentative, views[0].Responses["x@example.com"])
	})

	t.Run("no meetings yields empty list", func(t *testing.T) {
		f := newFixture(t, config.EmailConfig{})
		f.meetings.On("ListWithSchedules", mock.Anything).Return([]*entities.Meeting{}, nil)

		views, err := f.service.ListMeetings(context.Background())
		require.NoError(t, err)
		assert.NotNil(t, views)
		assert.Empty(t, views)
	})

	t.Run("child failure is internal", func(t *testing.T) {
		f := newFixture(t, config.EmailConfig{})
		ids := []uint{4}
		f.meetings.On("ListWithSchedules", mock.Anything).Return([]*entities.Meeting{scheduled(t, 4, "Board", "2026-01-05")}, nil)
		f.meetings.On("ListInvites", mock.Anything, ids).Return(nil, nil).Maybe()
		f.patients.On("ListByMeetings", mock.Anything, ids).Return(nil, errors.New("timeout")).Maybe()
		f.patients.On("ListAttachmentsByMeetings", mock.Anything, ids).Return(nil, nil).Maybe()
		f.responses.On("ListByMeetings", mock.Anything, ids).Return(nil, nil).Maybe()

		_, err := f.service.ListMeetings(context.Background())
		require.Error(t, err)
		assert.True(t, apperrors.HasCode(err, apperrors.ErrorCode_INTERNAL))
	})
}
