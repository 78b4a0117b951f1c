package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-planner/errors"
	responsedto "github.com/johnquangdev/meeting-planner/internal/adapter/dto/response"
	responseUsecase "github.com/johnquangdev/meeting-planner/internal/usecase/response"
)

// Respond handles the links emailed to invitees
type Respond struct {
	responseService responseUsecase.Service
	logger          *zap.Logger
}

// NewRespondHandler creates a new respond handler
func NewRespondHandler(responseService responseUsecase.Service, logger *zap.Logger) *Respond {
	return &Respond{
		responseService: responseService,
		logger:          logger,
	}
}

// Respond handles GET and POST /api/respond-to-meeting/:token?action=...
// @Summary      Answer an invitation
// @Description  Records accept, decline or tentative for the invitee slot behind the token. POST may send the action in the body.
// @Tags         Responses
// @Accept       json
// @Produce      json
// @Param        token    path      string  true   "Response token from the invitation email"
// @Param        action   query     string  false  "accept, decline or tentative"
// @Param        request  body      response.RespondRequest  false  "Action when the query has none"
// @Success      200      {object}  response.RespondResponse  "Response recorded"
// @Failure      400      {object}  common.ErrorResponse  "Invalid action"
// @Failure      404      {object}  common.ErrorResponse  "Unknown token"
// @Failure      429      {object}  common.ErrorResponse  "Too many responses from this address"
// @Router       /api/respond-to-meeting/{token} [get]
// @Router       /api/respond-to-meeting/{token} [post]
func (h *Respond) Respond(c echo.Context) error {
	action := c.QueryParam("action")
	if action == "" && c.Request().Method == http.MethodPost && c.Request().ContentLength != 0 {
		var req responsedto.RespondRequest
		if err := (&echo.DefaultBinder{}).BindBody(c, &req); err != nil {
			return HandleError(h.logger, c, errors.ErrInvalidPayload())
		}
		action = req.Action
	}

	result, err := h.responseService.Respond(c.Request().Context(), c.Param("token"), action)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, http.StatusOK, responsedto.RespondResponse{
		Success:      true,
		Message:      fmt.Sprintf("Your response (%s) has been recorded successfully!", result.Action),
		Meeting:      result.Meeting,
		InviteeEmail: result.InviteeEmail,
		Action:       string(result.Action),
	})
}
