package mailer

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockSender is a mock implementation of Sender
type MockSender struct {
	mock.Mock
}

var _ Sender = (*MockSender)(nil)

// SendInvitation is a mock method
func (m *MockSender) SendInvitation(ctx context.Context, invitation Invitation) error {
	args := m.Called(ctx, invitation)
	return args.Error(0)
}
