package repositories

import (
	"context"

	"github.com/johnquangdev/meeting-planner/internal/domain/entities"
)

// TeamRepository defines the interface for team data access
type TeamRepository interface {
	// Create creates a new team. Duplicate names fail with entities.ErrDuplicate.
	Create(ctx context.Context, team *entities.Team) error

	// List retrieves all teams ordered by name
	List(ctx context.Context) ([]*entities.Team, error)
}

// MemberRepository defines the interface for member data access
type MemberRepository interface {
	// CreateWithTeams creates a member and its team memberships atomically
	CreateWithTeams(ctx context.Context, member *entities.Member, teamIDs []uint) error

	// List retrieves all members with their teams, ordered by full name
	List(ctx context.Context) ([]*entities.Member, error)

	// FindByIDs retrieves the members with the given IDs in no particular order
	FindByIDs(ctx context.Context, ids []uint) ([]*entities.Member, error)
}
