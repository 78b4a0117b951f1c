package response

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	apperrors "github.com/johnquangdev/meeting-planner/errors"
	"github.com/johnquangdev/meeting-planner/internal/domain/entities"
	"github.com/johnquangdev/meeting-planner/internal/domain/repositories"
	usecaseErrors "github.com/johnquangdev/meeting-planner/internal/usecase/errors"
)

// UnknownMeetingName is reported when a response slot outlives its meeting
const UnknownMeetingName = "Unknown Meeting"

// Service defines the interface for the invitee response use case
type Service interface {
	// Respond records action against the slot identified by token
	Respond(ctx context.Context, token, action string) (*RespondResult, error)
}

var _ Service = (*ResponseService)(nil)

// RespondResult describes a recorded response
type RespondResult struct {
	Meeting      string
	InviteeEmail string
	Action       entities.ResponseAction
	Status       entities.ResponseStatus
}

// ResponseService handles invitee responses. The token is the only
// credential; there is no other authentication.
type ResponseService struct {
	responseRepo repositories.InviteeResponseRepository
	meetingRepo  repositories.MeetingRepository
	logger       *zap.Logger
	now          func() time.Time
}

// NewResponseService creates a new response service
func NewResponseService(
	responseRepo repositories.InviteeResponseRepository,
	meetingRepo repositories.MeetingRepository,
	logger *zap.Logger,
) *ResponseService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ResponseService{
		responseRepo: responseRepo,
		meetingRepo:  meetingRepo,
		logger:       logger,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// Respond validates the action before touching storage, then overwrites the
// slot's status. Repeating a response is allowed and the last one wins.
func (s *ResponseService) Respond(ctx context.Context, token, action string) (*RespondResult, error) {
	parsed, ok := entities.ParseResponseAction(action)
	if !ok {
		return nil, apperrors.ErrInvalidAction()
	}

	token = strings.TrimSpace(token)
	if token == "" {
		return nil, apperrors.ErrTokenNotFound()
	}

	status := parsed.Status()
	resp, err := s.responseRepo.RecordByToken(ctx, token, status, s.now())
	if errors.Is(err, entities.ErrTokenNotFound) {
		return nil, apperrors.ErrTokenNotFound()
	}
	if err != nil {
		return nil, usecaseErrors.Translate(err, "record response")
	}

	meetingName := UnknownMeetingName
	meeting, err := s.meetingRepo.FindByID(ctx, resp.MeetingID)
	switch {
	case err == nil:
		meetingName = meeting.Name
	case errors.Is(err, entities.ErrMeetingNotFound):
	default:
		// The response is already recorded; a failed name lookup only
		// degrades the confirmation.
		s.logger.Warn("response.meeting_lookup.failed",
			zap.Uint("meeting_id", resp.MeetingID),
			zap.Error(err),
		)
	}

	s.logger.Info("response.recorded",
		zap.Uint("meeting_id", resp.MeetingID),
		zap.Uint("response_id", resp.ID),
		zap.String("status", string(status)),
	)

	return &RespondResult{
		Meeting:      meetingName,
		InviteeEmail: resp.InviteeEmail,
		Action:       parsed,
		Status:       status,
	}, nil
}
