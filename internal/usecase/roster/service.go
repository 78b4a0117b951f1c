package roster

import (
	"context"
	"strings"

	"go.uber.org/zap"

	apperrors "github.com/johnquangdev/meeting-planner/errors"
	"github.com/johnquangdev/meeting-planner/internal/domain/entities"
	"github.com/johnquangdev/meeting-planner/internal/domain/repositories"
	usecaseErrors "github.com/johnquangdev/meeting-planner/internal/usecase/errors"
)

// Service defines the interface for team and member use cases
type Service interface {
	CreateTeam(ctx context.Context, name string) (*entities.Team, error)
	ListTeams(ctx context.Context) ([]*entities.Team, error)
	CreateMember(ctx context.Context, input CreateMemberInput) (*entities.Member, error)
	ListMembers(ctx context.Context) ([]*entities.Member, error)
}

var _ Service = (*RosterService)(nil)

// CreateMemberInput represents input for creating a member
type CreateMemberInput struct {
	FullName string
	Email    string
	TeamIDs  []uint
}

// RosterService manages teams and their members
type RosterService struct {
	teamRepo   repositories.TeamRepository
	memberRepo repositories.MemberRepository
	logger     *zap.Logger
}

// NewRosterService creates a new roster service
func NewRosterService(teamRepo repositories.TeamRepository, memberRepo repositories.MemberRepository, logger *zap.Logger) *RosterService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RosterService{
		teamRepo:   teamRepo,
		memberRepo: memberRepo,
		logger:     logger,
	}
}

// CreateTeam creates a team. Names are unique.
func (s *RosterService) CreateTeam(ctx context.Context, name string) (*entities.Team, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.ErrInvalidArgument("Team name is required.")
	}

	team := &entities.Team{Name: name}
	if err := s.teamRepo.Create(ctx, team); err != nil {
		return nil, usecaseErrors.Translate(err, "create team")
	}

	s.logger.Info("team.created", zap.Uint("team_id", team.ID))
	return team, nil
}

// ListTeams lists teams ordered by name
func (s *RosterService) ListTeams(ctx context.Context) ([]*entities.Team, error) {
	teams, err := s.teamRepo.List(ctx)
	if err != nil {
		return nil, usecaseErrors.Translate(err, "list teams")
	}
	if teams == nil {
		teams = []*entities.Team{}
	}
	return teams, nil
}

// CreateMember creates a member and its team memberships in one step
func (s *RosterService) CreateMember(ctx context.Context, input CreateMemberInput) (*entities.Member, error) {
	member := entities.NewMember(input.FullName, input.Email)
	if member.FullName == "" || member.Email == "" {
		return nil, apperrors.ErrInvalidArgument("Full name and email are required.")
	}

	teamIDs := uniqueIDs(input.TeamIDs)
	if err := s.memberRepo.CreateWithTeams(ctx, member, teamIDs); err != nil {
		return nil, usecaseErrors.Translate(err, "create member")
	}

	s.logger.Info("member.created",
		zap.Uint("member_id", member.ID),
		zap.Int("teams", len(teamIDs)),
	)
	return member, nil
}

// ListMembers lists members with their teams ordered by full name
func (s *RosterService) ListMembers(ctx context.Context) ([]*entities.Member, error) {
	members, err := s.memberRepo.List(ctx)
	if err != nil {
		return nil, usecaseErrors.Translate(err, "list members")
	}
	if members == nil {
		members = []*entities.Member{}
	}
	return members, nil
}

// uniqueIDs drops zero and repeated IDs keeping order
func uniqueIDs(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if id == 0 {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
