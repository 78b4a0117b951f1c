package meeting

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-planner/internal/domain/entities"
	"github.com/johnquangdev/meeting-planner/internal/infrastructure/mailer"
)

const (
	noteEmailDisabled = "EMAIL_ENABLED is false, invitations were not sent."
	noteNoInvitees    = "No invitee emails provided, no invitations sent."
)

// dispatch sends one invitation per response slot and records the outcome on
// out. It runs after the graph is committed and never returns an error.
func (s *MeetingService) dispatch(ctx context.Context, graph *entities.MeetingGraph, out *CreateMeetingOutput) {
	if !s.opts.Email.Enabled {
		out.Note = noteEmailDisabled
		return
	}
	if len(graph.Responses) == 0 {
		out.Note = noteNoInvitees
		return
	}

	// The batch outlives a client disconnect but not its own budget.
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.opts.DispatchBudget)
	defer cancel()

	var failures []string
	sent := 0
	for _, resp := range graph.Responses {
		invitation := s.invitation(graph, resp)
		err := s.sender.SendInvitation(ctx, invitation)
		if err == nil {
			sent++
			continue
		}

		failures = append(failures, err.Error())

		var dispatchErr *mailer.DispatchError
		if errors.As(err, &dispatchErr) && dispatchErr.Fatal() {
			s.logger.Warn("meeting.dispatch.aborted",
				zap.Uint("meeting_id", graph.Meeting.ID),
				zap.String("kind", string(dispatchErr.Kind)),
				zap.Int("sent", sent),
				zap.Int("remaining", len(graph.Responses)-sent-len(failures)),
			)
			break
		}
	}

	if len(failures) > 0 {
		out.Warning = "Meeting created, but email failed: " + strings.Join(failures, "; ")
		return
	}
	out.EmailStatus = fmt.Sprintf("Invitations sent to %d invitee(s).", sent)
}

func (s *MeetingService) invitation(graph *entities.MeetingGraph, resp *entities.MeetingInviteeResponse) mailer.Invitation {
	schedule := graph.Schedule
	inv := mailer.Invitation{
		RecipientEmail: resp.InviteeEmail,
		MeetingID:      graph.Meeting.ID,
		MeetingName:    graph.Meeting.Name,
		StartsAt:       formatDate(schedule.StartsAt),
		StartTime:      formatClock(schedule.StartTime),
		EndTime:        formatClock(schedule.EndTime),
		Timezone:       schedule.Timezone,
		ScheduleType:   string(schedule.ScheduleType),
		Links:          ResponseLinks(s.opts.BaseURL, resp.ResponseToken),
	}
	if !schedule.ScheduleType.IsRecurring() {
		return inv
	}
	if schedule.RecurrenceRule != nil {
		inv.RecurrenceRule = *schedule.RecurrenceRule
	}
	if schedule.RecurrenceEndDate != nil {
		inv.RecurrenceEndDate = formatDate(*schedule.RecurrenceEndDate)
	}
	return inv
}

// ResponseLinks builds the accept, decline and tentative links for token
func ResponseLinks(baseURL, token string) []mailer.ActionLink {
	base := strings.TrimRight(baseURL, "/")
	links := make([]mailer.ActionLink, 0, len(entities.ResponseActions))
	for _, action := range entities.ResponseActions {
		links = append(links, mailer.ActionLink{
			Action: string(action),
			Label:  string(action.Status()),
			URL:    fmt.Sprintf("%s/api/respond-to-meeting/%s?action=%s", base, url.PathEscape(token), action),
		})
	}
	return links
}
