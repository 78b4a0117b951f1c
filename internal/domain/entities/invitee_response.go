package entities

import (
	"strings"
	"time"
)

// ResponseStatus represents an invitee's answer to a meeting invitation
type ResponseStatus string

const (
	// ResponseStatusPending is never stored. A row without a status is pending.
	ResponseStatusPending   ResponseStatus = "Pending"
	ResponseStatusAccept    ResponseStatus = "Accept"
	ResponseStatusDecline   ResponseStatus = "Decline"
	ResponseStatusTentative ResponseStatus = "Tentative"
)

// ResponseAction is the lower-case verb carried by an emailed response link
type ResponseAction string

const (
	ResponseActionAccept    ResponseAction = "accept"
	ResponseActionDecline   ResponseAction = "decline"
	ResponseActionTentative ResponseAction = "tentative"
)

// ResponseActions lists the actions in the order they are offered to invitees
var ResponseActions = []ResponseAction{
	ResponseActionAccept,
	ResponseActionDecline,
	ResponseActionTentative,
}

// ParseResponseAction matches raw case-insensitively against the known actions
func ParseResponseAction(raw string) (ResponseAction, bool) {
	action := ResponseAction(strings.ToLower(strings.TrimSpace(raw)))
	switch action {
	case ResponseActionAccept, ResponseActionDecline, ResponseActionTentative:
		return action, true
	}
	return "", false
}

// Status maps the action to the status it records
func (a ResponseAction) Status() ResponseStatus {
	switch a {
	case ResponseActionAccept:
		return ResponseStatusAccept
	case ResponseActionDecline:
		return ResponseStatusDecline
	case ResponseActionTentative:
		return ResponseStatusTentative
	}
	return ResponseStatusPending
}

// MeetingInviteeResponse is one invitee's response slot for one meeting. The
// token is the only credential needed to change Status.
type MeetingInviteeResponse struct {
	ID            uint            `gorm:"primaryKey" json:"id"`
	MeetingID     uint            `gorm:"not null;index" json:"meeting_id"`
	InviteeEmail  string          `gorm:"type:varchar(255);not null" json:"invitee_email"`
	ResponseToken string          `gorm:"type:varchar(128);not null;uniqueIndex" json:"-"`
	Status        *ResponseStatus `gorm:"type:varchar(20)" json:"status,omitempty"`
	RespondedAt   *time.Time      `json:"responded_at,omitempty"`
	CreatedAt     time.Time       `gorm:"default:now()" json:"created_at"`
}

// TableName specifies the table name for MeetingInviteeResponse
func (MeetingInviteeResponse) TableName() string {
	return "meeting_invitee_responses"
}

// NewMeetingInviteeResponse creates a pending response slot
func NewMeetingInviteeResponse(email, token string) *MeetingInviteeResponse {
	return &MeetingInviteeResponse{
		InviteeEmail:  email,
		ResponseToken: token,
	}
}

// EffectiveStatus returns the stored status, or Pending if none was recorded
func (r *MeetingInviteeResponse) EffectiveStatus() ResponseStatus {
	if r.Status == nil || *r.Status == "" {
		return ResponseStatusPending
	}
	return *r.Status
}
