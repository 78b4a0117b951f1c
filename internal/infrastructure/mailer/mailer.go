package mailer

import (
	"context"
)

// Sender delivers meeting invitations to a single recipient
type Sender interface {
	SendInvitation(ctx context.Context, invitation Invitation) error
}

// Invitation is the data rendered into an invitation email
type Invitation struct {
	RecipientEmail    string
	MeetingID         uint
	MeetingName       string
	StartsAt          string
	StartTime         string
	EndTime           string
	Timezone          string
	ScheduleType      string
	RecurrenceRule    string
	RecurrenceEndDate string
	Links             []ActionLink
}

// ActionLink is one of the response buttons in an invitation
type ActionLink struct {
	Action string
	Label  string
	URL    string
}

// Subject returns the subject line of the invitation
func (i Invitation) Subject() string {
	return "Meeting Invite: " + i.MeetingName
}
