package mailer

import (
	"context"

	"go.uber.org/zap"
)

// NoopSender logs invitations instead of sending them. It is used when email
// is disabled.
type NoopSender struct {
	logger *zap.Logger
}

var _ Sender = (*NoopSender)(nil)

// NewNoopSender creates a new no-op sender
func NewNoopSender(logger *zap.Logger) *NoopSender {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &NoopSender{logger: logger}
}

// SendInvitation logs the invitation but doesn't send an email
func (s *NoopSender) SendInvitation(_ context.Context, invitation Invitation) error {
	s.logger.Debug("mail.disabled.skip",
		zap.String("recipient", invitation.RecipientEmail),
		zap.String("meeting", invitation.MeetingName),
	)
	return nil
}
