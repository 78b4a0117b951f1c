package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-planner/internal/adapter/dto/common"
	rosterdto "github.com/johnquangdev/meeting-planner/internal/adapter/dto/roster"
	"github.com/johnquangdev/meeting-planner/internal/adapter/presenter"
	rosterUsecase "github.com/johnquangdev/meeting-planner/internal/usecase/roster"
)

// Roster handles team and member HTTP requests
type Roster struct {
	rosterService rosterUsecase.Service
	logger        *zap.Logger
}

// NewRosterHandler creates a new roster handler
func NewRosterHandler(rosterService rosterUsecase.Service, logger *zap.Logger) *Roster {
	return &Roster{
		rosterService: rosterService,
		logger:        logger,
	}
}

// ListTeams handles GET /api/teams
// @Summary      List teams
// @Tags         Roster
// @Produce      json
// @Success      200  {array}   roster.TeamResponse  "Teams"
// @Failure      500  {object}  common.ErrorResponse  "Failed to list teams"
// @Router       /api/teams [get]
func (h *Roster) ListTeams(c echo.Context) error {
	teams, err := h.rosterService.ListTeams(c.Request().Context())
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, http.StatusOK, presenter.ToTeamListResponse(teams))
}

// CreateTeam handles POST /api/teams
// @Summary      Create a team
// @Tags         Roster
// @Accept       json
// @Produce      json
// @Param        request  body      roster.CreateTeamRequest  true  "Team to create"
// @Success      201      {object}  roster.TeamResponse  "Team created"
// @Failure      400      {object}  common.ErrorResponse  "Missing name or team already exists"
// @Router       /api/teams [post]
func (h *Roster) CreateTeam(c echo.Context) error {
	var req rosterdto.CreateTeamRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	team, err := h.rosterService.CreateTeam(c.Request().Context(), req.Name)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, http.StatusCreated, presenter.ToTeamResponse(team))
}

// ListMembers handles GET /api/members
// @Summary      List members
// @Description  Lists members with the names of their teams
// @Tags         Roster
// @Produce      json
// @Success      200  {array}   roster.MemberListItem  "Members"
// @Failure      500  {object}  common.ErrorResponse  "Failed to list members"
// @Router       /api/members [get]
func (h *Roster) ListMembers(c echo.Context) error {
	members, err := h.rosterService.ListMembers(c.Request().Context())
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, http.StatusOK, presenter.ToMemberListResponse(members))
}

// CreateMember handles POST /api/members
// @Summary      Create a member
// @Tags         Roster
// @Accept       json
// @Produce      json
// @Param        request  body      roster.CreateMemberRequest  true  "Member with optional team ids"
// @Success      201      {object}  roster.MemberResponse  "Member created"
// @Failure      400      {object}  common.ErrorResponse  "Missing field, unknown team or email already registered"
// @Router       /api/members [post]
func (h *Roster) CreateMember(c echo.Context) error {
	var req rosterdto.CreateMemberRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	member, err := h.rosterService.CreateMember(c.Request().Context(), rosterUsecase.CreateMemberInput{
		FullName: req.FullName,
		Email:    req.Email,
		TeamIDs:  common.UintIDs(req.TeamIDs),
	})
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, http.StatusCreated, presenter.ToMemberResponse(member))
}
