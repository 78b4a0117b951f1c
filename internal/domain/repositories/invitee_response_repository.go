package repositories

import (
	"context"
	"time"

	"github.com/johnquangdev/meeting-planner/internal/domain/entities"
)

// InviteeResponseRepository defines the interface for response slot access
type InviteeResponseRepository interface {
	// RecordByToken overwrites the status of the slot owning token and
	// returns the updated row. Returns entities.ErrTokenNotFound when no slot
	// matches.
	RecordByToken(ctx context.Context, token string, status entities.ResponseStatus, at time.Time) (*entities.MeetingInviteeResponse, error)

	// ListByMeetings retrieves response slots ordered by invitee email then id
	ListByMeetings(ctx context.Context, meetingIDs []uint) ([]*entities.MeetingInviteeResponse, error)
}
