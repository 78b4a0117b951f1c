package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/johnquangdev/meeting-planner/internal/domain/entities"
	"github.com/johnquangdev/meeting-planner/internal/domain/repositories"
)

var (
	_ repositories.MeetingRepository         = (*MeetingRepository)(nil)
	_ repositories.InviteeResponseRepository = (*InviteeResponseRepository)(nil)
	_ repositories.PatientDetailRepository   = (*PatientDetailRepository)(nil)
	_ repositories.TeamRepository            = (*TeamRepository)(nil)
	_ repositories.MemberRepository          = (*MemberRepository)(nil)
)

// MeetingRepository is a mock implementation of repositories.MeetingRepository
type MeetingRepository struct {
	mock.Mock
}

func (m *MeetingRepository) CreateGraph(ctx context.Context, graph *entities.MeetingGraph) error {
	args := m.Called(ctx, graph)
	return args.Error(0)
}

func (m *MeetingRepository) FindByID(ctx context.Context, id uint) (*entities.Meeting, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Meeting), args.Error(1)
}

func (m *MeetingRepository) Exists(ctx context.Context, id uint) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MeetingRepository) ListWithSchedules(ctx context.Context) ([]*entities.Meeting, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Meeting), args.Error(1)
}

func (m *MeetingRepository) ListInvites(ctx context.Context, meetingIDs []uint) ([]*entities.MeetingInvite, error) {
	args := m.Called(ctx, meetingIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.MeetingInvite), args.Error(1)
}

// InviteeResponseRepository is a mock implementation of
// repositories.InviteeResponseRepository
type InviteeResponseRepository struct {
	mock.Mock
}

func (m *InviteeResponseRepository) RecordByToken(ctx context.Context, token string, status entities.ResponseStatus, at time.Time) (*entities.MeetingInviteeResponse, error) {
	args := m.Called(ctx, token, status, at)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.MeetingInviteeResponse), args.Error(1)
}

func (m *InviteeResponseRepository) ListByMeetings(ctx context.Context, meetingIDs []uint) ([]*entities.MeetingInviteeResponse, error) {
	args := m.Called(ctx, meetingIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.MeetingInviteeResponse), args.Error(1)
}

// PatientDetailRepository is a mock implementation of
// repositories.PatientDetailRepository
type PatientDetailRepository struct {
	mock.Mock
}

func (m *PatientDetailRepository) CreateWithAttachments(ctx context.Context, detail *entities.MeetingPatientDetail) error {
	args := m.Called(ctx, detail)
	return args.Error(0)
}

func (m *PatientDetailRepository) List(ctx context.Context) ([]*entities.MeetingPatientDetail, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.MeetingPatientDetail), args.Error(1)
}

func (m *PatientDetailRepository) ListByMeetings(ctx context.Context, meetingIDs []uint) ([]*entities.MeetingPatientDetail, error) {
	args := m.Called(ctx, meetingIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.MeetingPatientDetail), args.Error(1)
}

func (m *PatientDetailRepository) ListAttachmentsByMeetings(ctx context.Context, meetingIDs []uint) ([]*entities.MeetingAttachment, error) {
	args := m.Called(ctx, meetingIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.MeetingAttachment), args.Error(1)
}

// TeamRepository is a mock implementation of repositories.TeamRepository
type TeamRepository struct {
	mock.Mock
}

func (m *TeamRepository) Create(ctx context.Context, team *entities.Team) error {
	args := m.Called(ctx, team)
	return args.Error(0)
}

func (m *TeamRepository) List(ctx context.Context) ([]*entities.Team, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Team), args.Error(1)
}

// MemberRepository is a mock implementation of repositories.MemberRepository
type MemberRepository struct {
	mock.Mock
}

func (m *MemberRepository) CreateWithTeams(ctx context.Context, member *entities.Member, teamIDs []uint) error {
	args := m.Called(ctx, member, teamIDs)
	return args.Error(0)
}

func (m *MemberRepository) List(ctx context.Context) ([]*entities.Member, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Member), args.Error(1)
}

func (m *MemberRepository) FindByIDs(ctx context.Context, ids []uint) ([]*entities.Member, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Member), args.Error(1)
}
