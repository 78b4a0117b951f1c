package meeting

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-planner/internal/domain/repositories"
	"github.com/johnquangdev/meeting-planner/internal/infrastructure/mailer"
	"github.com/johnquangdev/meeting-planner/pkg/config"
	"github.com/johnquangdev/meeting-planner/pkg/token"
)

// Service defines the interface for meeting use case
type Service interface {
	// CreateMeeting validates and persists a meeting, then invites its attendees
	CreateMeeting(ctx context.Context, input CreateMeetingInput) (*CreateMeetingOutput, error)

	// ListMeetings returns one denormalized view per scheduled meeting
	ListMeetings(ctx context.Context) ([]*MeetingView, error)
}

var _ Service = (*MeetingService)(nil)

// Options carries the configuration the service needs. It is captured once
// at construction and never re-read.
type Options struct {
	Email   config.EmailConfig
	BaseURL string
	// DispatchBudget bounds the whole invitation batch of one request
	DispatchBudget time.Duration
}

// MeetingService handles meeting business logic
type MeetingService struct {
	meetingRepo  repositories.MeetingRepository
	responseRepo repositories.InviteeResponseRepository
	patientRepo  repositories.PatientDetailRepository
	memberRepo   repositories.MemberRepository
	sender       mailer.Sender
	opts         Options
	newToken     token.Generator
	logger       *zap.Logger
}

// NewMeetingService creates a new meeting service
func NewMeetingService(
	meetingRepo repositories.MeetingRepository,
	responseRepo repositories.InviteeResponseRepository,
	patientRepo repositories.PatientDetailRepository,
	memberRepo repositories.MemberRepository,
	sender mailer.Sender,
	opts Options,
	logger *zap.Logger,
) *MeetingService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.DispatchBudget <= 0 {
		opts.DispatchBudget = time.Minute
	}

	return &MeetingService{
		meetingRepo:  meetingRepo,
		responseRepo: responseRepo,
		patientRepo:  patientRepo,
		memberRepo:   memberRepo,
		sender:       sender,
		opts:         opts,
		newToken:     token.Generate,
		logger:       logger,
	}
}

// WithTokenGenerator replaces the response token source
func (s *MeetingService) WithTokenGenerator(gen token.Generator) *MeetingService {
	s.newToken = gen
	return s
}
