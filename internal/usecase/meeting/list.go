package meeting

import (
	"context"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/johnquangdev/meeting-planner/internal/domain/entities"
	usecaseErrors "github.com/johnquangdev/meeting-planner/internal/usecase/errors"
)

// PatientView is the dashboard projection of a patient case
type PatientView struct {
	ID                  uint
	MedicalRecordNumber string
	PatientName         string
	PatientDateOfBirth  string
	PatientDescription  *string
	DoctorName          string
	DepartmentName      string
	MeetingAgendaNote   *string
}

// MeetingView is one meeting with all of its children joined in
type MeetingView struct {
	ID                uint
	Name              string
	StartsAt          string
	StartTime         string
	EndTime           string
	Timezone          string
	ScheduleType      string
	RecurrenceRule    *string
	RecurrenceEndDate *string
	Patients          []PatientView
	AttachmentCount   int
	AttachmentNames   []string
	Invitees          []string
	Responses         map[string]entities.ResponseStatus
}

// meetingChildren holds the child rows of a set of meetings
type meetingChildren struct {
	Patients    []*entities.MeetingPatientDetail
	Attachments []*entities.MeetingAttachment
	Invites     []*entities.MeetingInvite
	Responses   []*entities.MeetingInviteeResponse
}

// ListMeetings loads scheduled meetings and joins their children in memory
func (s *MeetingService) ListMeetings(ctx context.Context) ([]*MeetingView, error) {
	meetings, err := s.meetingRepo.ListWithSchedules(ctx)
	if err != nil {
		return nil, usecaseErrors.Translate(err, "list meetings")
	}
	if len(meetings) == 0 {
		return []*MeetingView{}, nil
	}

	ids := make([]uint, 0, len(meetings))
	for _, m := range meetings {
		ids = append(ids, m.ID)
	}

	var children meetingChildren
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		children.Patients, err = s.patientRepo.ListByMeetings(gctx, ids)
		return err
	})
	g.Go(func() error {
		var err error
		children.Attachments, err = s.patientRepo.ListAttachmentsByMeetings(gctx, ids)
		return err
	})
	g.Go(func() error {
		var err error
		children.Invites, err = s.meetingRepo.ListInvites(gctx, ids)
		return err
	})
	g.Go(func() error {
		var err error
		children.Responses, err = s.responseRepo.ListByMeetings(gctx, ids)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, usecaseErrors.Translate(err, "load meeting details")
	}

	return AssembleMeetingViews(meetings, children.Patients, children.Attachments, children.Invites, children.Responses), nil
}

// AssembleMeetingViews joins child rows onto their meetings. The order of
// meetings is kept. Children of unknown meetings are ignored.
func AssembleMeetingViews(
	meetings []*entities.Meeting,
	patients []*entities.MeetingPatientDetail,
	attachments []*entities.MeetingAttachment,
	invites []*entities.MeetingInvite,
	responses []*entities.MeetingInviteeResponse,
) []*MeetingView {
	views := make([]*MeetingView, 0, len(meetings))
	byID := make(map[uint]*MeetingView, len(meetings))
	for _, m := range meetings {
		if m.Schedule == nil {
			continue
		}
		view := newMeetingView(m)
		views = append(views, view)
		byID[m.ID] = view
	}

	for _, p := range patients {
		view, ok := byID[p.MeetingID]
		if !ok || !patientComplete(p) {
			continue
		}
		view.Patients = append(view.Patients, PatientView{
			ID:                  p.ID,
			MedicalRecordNumber: p.MedicalRecordNumber,
			PatientName:         p.PatientName,
			PatientDateOfBirth:  formatDate(p.PatientDateOfBirth),
			PatientDescription:  p.PatientDescription,
			DoctorName:          p.DoctorName,
			DepartmentName:      p.DepartmentName,
			MeetingAgendaNote:   p.MeetingAgendaNote,
		})
	}

	seenAttachments := make(map[uint]map[uint]struct{}, len(meetings))
	seenNames := make(map[uint]map[string]struct{}, len(meetings))
	for _, a := range attachments {
		view, ok := byID[a.MeetingID]
		if !ok {
			continue
		}
		if seenAttachments[a.MeetingID] == nil {
			seenAttachments[a.MeetingID] = make(map[uint]struct{})
			seenNames[a.MeetingID] = make(map[string]struct{})
		}
		if _, dup := seenAttachments[a.MeetingID][a.ID]; !dup {
			seenAttachments[a.MeetingID][a.ID] = struct{}{}
			view.AttachmentCount++
		}
		if _, dup := seenNames[a.MeetingID][a.FileName]; !dup && a.FileName != "" {
			seenNames[a.MeetingID][a.FileName] = struct{}{}
			view.AttachmentNames = append(view.AttachmentNames, a.FileName)
		}
	}

	seenInvitees := make(map[uint]map[string]struct{}, len(meetings))
	for _, inv := range invites {
		view, ok := byID[inv.MeetingID]
		if !ok {
			continue
		}
		if seenInvitees[inv.MeetingID] == nil {
			seenInvitees[inv.MeetingID] = make(map[string]struct{})
		}
		for _, email := range inv.Emails {
			if _, dup := seenInvitees[inv.MeetingID][email]; dup || email == "" {
				continue
			}
			seenInvitees[inv.MeetingID][email] = struct{}{}
			view.Invitees = append(view.Invitees, email)
		}
	}

	for _, r := range responses {
		view, ok := byID[r.MeetingID]
		if !ok {
			continue
		}
		if _, dup := view.Responses[r.InviteeEmail]; dup {
			continue
		}
		view.Responses[r.InviteeEmail] = r.EffectiveStatus()
	}

	for _, view := range views {
		sort.SliceStable(view.Patients, func(i, j int) bool {
			return view.Patients[i].PatientName < view.Patients[j].PatientName
		})
		sort.Strings(view.AttachmentNames)
	}

	return views
}

func newMeetingView(m *entities.Meeting) *MeetingView {
	schedule := m.Schedule
	view := &MeetingView{
		ID:                m.ID,
		Name:              m.Name,
		StartsAt:          formatDate(schedule.StartsAt),
		StartTime:         formatClock(schedule.StartTime),
		EndTime:           formatClock(schedule.EndTime),
		Timezone:          schedule.Timezone,
		ScheduleType:      string(schedule.ScheduleType),
		RecurrenceRule:    schedule.RecurrenceRule,
		RecurrenceEndDate: formatOptionalDate(schedule.RecurrenceEndDate),
		Patients:          []PatientView{},
		AttachmentNames:   []string{},
		Invitees:          []string{},
		Responses:         map[string]entities.ResponseStatus{},
	}
	return view
}

// patientComplete reports whether every mandatory field of p resolved
func patientComplete(p *entities.MeetingPatientDetail) bool {
	return p.ID != 0 &&
		p.MedicalRecordNumber != "" &&
		p.PatientName != "" &&
		p.DoctorName != "" &&
		p.DepartmentName != "" &&
		!time.Time(p.PatientDateOfBirth).IsZero()
}
