package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/johnquangdev/meeting-planner/internal/domain/entities"
	meetingUsecase "github.com/johnquangdev/meeting-planner/internal/usecase/meeting"
	patientUsecase "github.com/johnquangdev/meeting-planner/internal/usecase/patient"
	responseUsecase "github.com/johnquangdev/meeting-planner/internal/usecase/response"
	rosterUsecase "github.com/johnquangdev/meeting-planner/internal/usecase/roster"
)

type mockMeetingService struct{ mock.Mock }

func (m *mockMeetingService) CreateMeeting(ctx context.Context, input meetingUsecase.CreateMeetingInput) (*meetingUsecase.CreateMeetingOutput, error) {
	args := m.Called(ctx, input)
	out, _ := args.Get(0).(*meetingUsecase.CreateMeetingOutput)
	return out, args.Error(1)
}

func (m *mockMeetingService) ListMeetings(ctx context.Context) ([]*meetingUsecase.MeetingView, error) {
	args := m.Called(ctx)
	out, _ := args.Get(0).([]*meetingUsecase.MeetingView)
	return out, args.Error(1)
}

type mockResponseService struct{ mock.Mock }

func (m *mockResponseService) Respond(ctx context.Context, token, action string) (*responseUsecase.RespondResult, error) {
	args := m.Called(ctx, token, action)
	out, _ := args.Get(0).(*responseUsecase.RespondResult)
	return out, args.Error(1)
}

type mockRosterService struct{ mock.Mock }

func (m *mockRosterService) CreateTeam(ctx context.Context, name string) (*entities.Team, error) {
	args := m.Called(ctx, name)
	out, _ := args.Get(0).(*entities.Team)
	return out, args.Error(1)
}

func (m *mockRosterService) ListTeams(ctx context.Context) ([]*entities.Team, error) {
	args := m.Called(ctx)
	out, _ := args.Get(0).([]*entities.Team)
	return out, args.Error(1)
}

func (m *mockRosterService) CreateMember(ctx context.Context, input rosterUsecase.CreateMemberInput) (*entities.Member, error) {
	args := m.Called(ctx, input)
	out, _ := args.Get(0).(*entities.Member)
	return out, args.Error(1)
}

func (m *mockRosterService) ListMembers(ctx context.Context) ([]*entities.Member, error) {
	args := m.Called(ctx)
	out, _ := args.Get(0).([]*entities.Member)
	return out, args.Error(1)
}

type mockPatientService struct{ mock.Mock }

func (m *mockPatientService) CreatePatientDetail(ctx context.Context, input patientUsecase.CreatePatientDetailInput) (*entities.MeetingPatientDetail, error) {
	args := m.Called(ctx, input)
	out, _ := args.Get(0).(*entities.MeetingPatientDetail)
	return out, args.Error(1)
}

func (m *mockPatientService) ListPatientDetails(ctx context.Context) ([]*entities.MeetingPatientDetail, error) {
	args := m.Called(ctx)
	out, _ := args.Get(0).([]*entities.MeetingPatientDetail)
	return out, args.Error(1)
}
