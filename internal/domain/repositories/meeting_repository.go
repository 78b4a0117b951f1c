package repositories

import (
	"context"

	"github.com/johnquangdev/meeting-planner/internal/domain/entities"
)

// MeetingRepository defines the interface for meeting data access
type MeetingRepository interface {
	// CreateGraph persists a meeting with its schedule, invite list and
	// response slots in a single transaction. IDs are populated on success.
	CreateGraph(ctx context.Context, graph *entities.MeetingGraph) error

	// FindByID retrieves a meeting without its children
	FindByID(ctx context.Context, id uint) (*entities.Meeting, error)

	// Exists reports whether a meeting with the given ID exists
	Exists(ctx context.Context, id uint) (bool, error)

	// ListWithSchedules retrieves all scheduled meetings ordered by start
	// date then start time, most recent first
	ListWithSchedules(ctx context.Context) ([]*entities.Meeting, error)

	// ListInvites retrieves the invite lists of the given meetings
	ListInvites(ctx context.Context, meetingIDs []uint) ([]*entities.MeetingInvite, error)
}
