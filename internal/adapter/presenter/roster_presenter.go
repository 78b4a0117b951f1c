package presenter

import (
	"strings"

	rosterdto "github.com/johnquangdev/meeting-planner/internal/adapter/dto/roster"
	"github.com/johnquangdev/meeting-planner/internal/domain/entities"
)

// ToTeamResponse converts a Team entity to TeamResponse DTO
func ToTeamResponse(t *entities.Team) rosterdto.TeamResponse {
	return rosterdto.TeamResponse{ID: t.ID, Name: t.Name}
}

// ToTeamListResponse converts teams to DTOs
func ToTeamListResponse(teams []*entities.Team) []rosterdto.TeamResponse {
	out := make([]rosterdto.TeamResponse, 0, len(teams))
	for _, t := range teams {
		out = append(out, ToTeamResponse(t))
	}
	return out
}

// ToMemberResponse converts a created member to its DTO
func ToMemberResponse(m *entities.Member) rosterdto.MemberResponse {
	return rosterdto.MemberResponse{ID: m.ID, FullName: m.FullName, Email: m.Email}
}

// ToMemberListResponse converts members to listing DTOs
func ToMemberListResponse(members []*entities.Member) []rosterdto.MemberListItem {
	out := make([]rosterdto.MemberListItem, 0, len(members))
	for _, m := range members {
		item := rosterdto.MemberListItem{ID: m.ID, FullName: m.FullName, Email: m.Email}
		if names := m.TeamNames(); len(names) > 0 {
			joined := strings.Join(names, ", ")
			item.Teams = &joined
		}
		out = append(out, item)
	}
	return out
}
