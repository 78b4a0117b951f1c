package roster

import "github.com/johnquangdev/meeting-planner/internal/adapter/dto/common"

// CreateTeamRequest represents the request to create a team
type CreateTeamRequest struct {
	Name string `json:"name" validate:"max=255"`
}

// CreateMemberRequest represents the request to create a member
type CreateMemberRequest struct {
	FullName string              `json:"fullName" validate:"max=255"`
	Email    string              `json:"email" validate:"max=255"`
	TeamIDs  []common.FlexibleID `json:"teamIds"`
}
