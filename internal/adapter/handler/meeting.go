package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-planner/internal/adapter/dto/common"
	meetingdto "github.com/johnquangdev/meeting-planner/internal/adapter/dto/meeting"
	"github.com/johnquangdev/meeting-planner/internal/adapter/presenter"
	meetingUsecase "github.com/johnquangdev/meeting-planner/internal/usecase/meeting"
)

// Meeting handles meeting-related HTTP requests
type Meeting struct {
	meetingService meetingUsecase.Service
	logger         *zap.Logger
}

// NewMeetingHandler creates a new meeting handler
func NewMeetingHandler(meetingService meetingUsecase.Service, logger *zap.Logger) *Meeting {
	return &Meeting{
		meetingService: meetingService,
		logger:         logger,
	}
}

// CreateMeeting handles POST /api/meetings
// @Summary      Schedule a meeting
// @Description  Stores the meeting with its schedule and invitee slots, then emails the invitations
// @Tags         Meetings
// @Accept       json
// @Produce      json
// @Param        request  body      meeting.CreateMeetingRequest  true  "Meeting to schedule"
// @Success      201      {object}  meeting.CreateMeetingResponse  "Meeting created"
// @Failure      400      {object}  common.ErrorResponse  "Invalid payload or validation failed"
// @Failure      500      {object}  common.ErrorResponse  "Failed to create meeting"
// @Router       /api/meetings [post]
func (h *Meeting) CreateMeeting(c echo.Context) error {
	var req meetingdto.CreateMeetingRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	out, err := h.meetingService.CreateMeeting(c.Request().Context(), meetingUsecase.CreateMeetingInput{
		Name:              req.Name,
		StartsAt:          req.StartsAt,
		StartTime:         req.StartTime,
		EndTime:           req.EndTime,
		Timezone:          req.Timezone,
		ScheduleType:      req.ScheduleType,
		RecurrenceRule:    req.RecurrenceRule,
		RecurrenceEndDate: req.RecurrenceEndDate,
		InviteeEmail:      req.InviteeEmail,
		InviteeIDs:        common.UintIDs(req.InviteeIDs),
	})
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, http.StatusCreated, presenter.ToCreateMeetingResponse(out))
}

// ListMeetings handles GET /api/meetings
// @Summary      List meetings
// @Description  Lists every meeting with its schedule, invitees, responses and patient cases, newest first
// @Tags         Meetings
// @Produce      json
// @Success      200  {array}   meeting.MeetingResponse  "Meetings"
// @Failure      500  {object}  common.ErrorResponse  "Failed to list meetings"
// @Router       /api/meetings [get]
func (h *Meeting) ListMeetings(c echo.Context) error {
	views, err := h.meetingService.ListMeetings(c.Request().Context())
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, http.StatusOK, presenter.ToMeetingListResponse(views))
}
