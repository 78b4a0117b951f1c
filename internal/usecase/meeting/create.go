package meeting

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/datatypes"

	apperrors "github.com/johnquangdev/meeting-planner/errors"
	"github.com/johnquangdev/meeting-planner/internal/domain/entities"
	usecaseErrors "github.com/johnquangdev/meeting-planner/internal/usecase/errors"
)

// CreateMeetingInput represents input for creating a meeting
type CreateMeetingInput struct {
	Name              string
	StartsAt          string
	StartTime         string
	EndTime           string
	Timezone          string
	ScheduleType      string
	RecurrenceRule    *string
	RecurrenceEndDate *string
	// InviteeEmail is a comma separated address list
	InviteeEmail string
	// InviteeIDs are member IDs whose addresses are invited as well
	InviteeIDs []uint
}

// CreateMeetingOutput reports the persisted meeting and the dispatch outcome.
// Exactly one of EmailStatus, Warning and Note is set.
type CreateMeetingOutput struct {
	ID          uint
	Name        string
	Invitees    []string
	EmailStatus string
	Warning     string
	Note        string
}

// meetingRequest is the normalized form of CreateMeetingInput
type meetingRequest struct {
	name              string
	startsAt          string
	startTime         string
	endTime           string
	timezone          string
	scheduleType      string
	recurrenceRule    string
	recurrenceEndDate string
	invitees          []string
}

// CreateMeeting runs normalize, validate, persist and dispatch in that order.
// Nothing is written unless validation passes, and dispatch failures never
// undo the write.
func (s *MeetingService) CreateMeeting(ctx context.Context, input CreateMeetingInput) (*CreateMeetingOutput, error) {
	req, err := s.normalize(ctx, input)
	if err != nil {
		return nil, err
	}

	schedule, err := s.validate(req)
	if err != nil {
		return nil, err
	}

	graph, err := s.buildGraph(req, schedule)
	if err != nil {
		return nil, err
	}

	if err := s.meetingRepo.CreateGraph(ctx, graph); err != nil {
		return nil, usecaseErrors.Translate(err, "create meeting")
	}

	s.logger.Info("meeting.created",
		zap.Uint("meeting_id", graph.Meeting.ID),
		zap.Int("invitees", len(req.invitees)),
	)

	out := &CreateMeetingOutput{
		ID:       graph.Meeting.ID,
		Name:     graph.Meeting.Name,
		Invitees: req.invitees,
	}
	s.dispatch(ctx, graph, out)
	return out, nil
}

func (s *MeetingService) normalize(ctx context.Context, input CreateMeetingInput) (*meetingRequest, error) {
	req := &meetingRequest{
		name:              strings.TrimSpace(input.Name),
		startsAt:          strings.TrimSpace(input.StartsAt),
		startTime:         strings.TrimSpace(input.StartTime),
		endTime:           strings.TrimSpace(input.EndTime),
		timezone:          strings.TrimSpace(input.Timezone),
		scheduleType:      strings.TrimSpace(input.ScheduleType),
		recurrenceRule:    optionalString(input.RecurrenceRule),
		recurrenceEndDate: optionalString(input.RecurrenceEndDate),
	}
	if req.timezone == "" {
		req.timezone = entities.DefaultTimezone
	}

	memberEmails, err := s.memberEmails(ctx, input.InviteeIDs)
	if err != nil {
		return nil, err
	}
	req.invitees = MergeEmails(SplitEmails(input.InviteeEmail), memberEmails)

	return req, nil
}

// memberEmails resolves member IDs to addresses in the order given. Unknown
// IDs are skipped.
func (s *MeetingService) memberEmails(ctx context.Context, ids []uint) ([]string, error) {
	if len(ids) == 0 || s.memberRepo == nil {
		return nil, nil
	}

	members, err := s.memberRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, usecaseErrors.Translate(err, "resolve invitees")
	}

	byID := make(map[uint]string, len(members))
	for _, m := range members {
		byID[m.ID] = m.Email
	}

	emails := make([]string, 0, len(ids))
	for _, id := range ids {
		email, ok := byID[id]
		if !ok {
			s.logger.Warn("meeting.invitee.unknown_member", zap.Uint("member_id", id))
			continue
		}
		emails = append(emails, email)
	}
	return emails, nil
}

// validate checks req in a fixed precedence order; the first failure wins.
func (s *MeetingService) validate(req *meetingRequest) (*entities.MeetingSchedule, error) {
	var missing []string
	for _, f := range []struct{ name, value string }{
		{"name", req.name},
		{"startsAt", req.startsAt},
		{"startTime", req.startTime},
		{"endTime", req.endTime},
		{"scheduleType", req.scheduleType},
	} {
		if f.value == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return nil, apperrors.ErrMissingField(missing...)
	}

	if invalid := InvalidEmails(req.invitees); len(invalid) > 0 {
		return nil, apperrors.ErrInvalidEmail(invalid...)
	}

	scheduleType := entities.ScheduleType(req.scheduleType)
	if !scheduleType.IsValid() {
		return nil, apperrors.ErrInvalidScheduleType(req.scheduleType)
	}

	recurring := scheduleType.IsRecurring()
	if recurring && req.recurrenceRule == "" {
		return nil, apperrors.ErrMissingRecurrenceRule()
	}

	if s.opts.Email.Enabled && len(req.invitees) > 0 {
		if missing := s.opts.Email.MissingSettings(); len(missing) > 0 {
			return nil, apperrors.ErrEmailMisconfigured(missing)
		}
	}

	startsAt, err := time.Parse(dateLayout, req.startsAt)
	if err != nil {
		return nil, apperrors.ErrInvalidDateTime(fmt.Sprintf("Invalid date/time: startsAt %q must be YYYY-MM-DD.", req.startsAt))
	}
	start, err := parseClock(req.startTime)
	if err != nil {
		return nil, apperrors.ErrInvalidDateTime(fmt.Sprintf("Invalid date/time: startTime %q must be HH:MM.", req.startTime))
	}
	end, err := parseClock(req.endTime)
	if err != nil {
		return nil, apperrors.ErrInvalidDateTime(fmt.Sprintf("Invalid date/time: endTime %q must be HH:MM.", req.endTime))
	}
	// Wall-clock comparison only; a meeting may not span midnight.
	if !end.After(start) {
		return nil, apperrors.ErrInvalidDateTime("End time must be after start time.")
	}

	schedule := &entities.MeetingSchedule{
		StartsAt:     datatypes.Date(startsAt),
		StartTime:    toClock(start),
		EndTime:      toClock(end),
		Timezone:     req.timezone,
		ScheduleType: scheduleType,
	}

	if recurring {
		rule := req.recurrenceRule
		schedule.RecurrenceRule = &rule
		if req.recurrenceEndDate != "" {
			endDate, err := time.Parse(dateLayout, req.recurrenceEndDate)
			if err != nil {
				return nil, apperrors.ErrInvalidDateTime(fmt.Sprintf("Invalid date/time: recurrenceEndDate %q must be YYYY-MM-DD.", req.recurrenceEndDate))
			}
			d := datatypes.Date(endDate)
			schedule.RecurrenceEndDate = &d
		}
	}

	return schedule, nil
}

func (s *MeetingService) buildGraph(req *meetingRequest, schedule *entities.MeetingSchedule) (*entities.MeetingGraph, error) {
	graph := &entities.MeetingGraph{
		Meeting:  &entities.Meeting{Name: req.name},
		Schedule: schedule,
	}
	if len(req.invitees) == 0 {
		return graph, nil
	}

	graph.Invite = &entities.MeetingInvite{Emails: datatypes.JSONSlice[string](req.invitees)}
	graph.Responses = make([]*entities.MeetingInviteeResponse, 0, len(req.invitees))
	for _, email := range req.invitees {
		tok, err := s.newToken()
		if err != nil {
			return nil, apperrors.ErrInternal(fmt.Errorf("failed to generate response token: %w", err))
		}
		graph.Responses = append(graph.Responses, entities.NewMeetingInviteeResponse(email, tok))
	}
	return graph, nil
}
