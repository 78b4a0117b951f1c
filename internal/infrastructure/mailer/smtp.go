package mailer

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"net/smtp"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-planner/pkg/config"
)

// implicitTLSPort is the submission port that expects TLS from the first byte
const implicitTLSPort = 465

// SMTPSender implements Sender over SMTP
type SMTPSender struct {
	config    config.EmailConfig
	templates *TemplateSet
	logger    *zap.Logger
	now       func() time.Time
}

var _ Sender = (*SMTPSender)(nil)

// NewSMTPSender creates an SMTP sender bound to cfg
func NewSMTPSender(cfg config.EmailConfig, logger *zap.Logger) (*SMTPSender, error) {
	templates, err := LoadTemplates()
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}

	return &SMTPSender{
		config:    cfg,
		templates: templates,
		logger:    logger,
		now:       time.Now,
	}, nil
}

// SendInvitation renders and delivers one invitation. Failures are returned
// as *DispatchError.
func (s *SMTPSender) SendInvitation(ctx context.Context, invitation Invitation) error {
	content, err := s.templates.RenderInvitation(invitation)
	if err != nil {
		return &DispatchError{Kind: FailureUnknown, Recipient: invitation.RecipientEmail, Err: err}
	}

	message, err := buildMessage(s.config.From, invitation.RecipientEmail, invitation.Subject(), content, s.now())
	if err != nil {
		return &DispatchError{Kind: FailureUnknown, Recipient: invitation.RecipientEmail, Err: err}
	}

	if err := s.deliver(ctx, invitation.RecipientEmail, message); err != nil {
		dispatchErr := newDispatchError(invitation.RecipientEmail, err)
		s.logger.Warn("mail.invitation.failed",
			zap.String("recipient", invitation.RecipientEmail),
			zap.String("kind", string(dispatchErr.Kind)),
			zap.Error(err),
		)
		return dispatchErr
	}

	s.logger.Info("mail.invitation.sent",
		zap.String("recipient", invitation.RecipientEmail),
		zap.String("meeting", invitation.MeetingName),
	)
	return nil
}

// deliver runs one SMTP session. Every network step shares a single deadline
// so a stalled relay cannot hold the request past the configured timeout.
func (s *SMTPSender) deliver(ctx context.Context, recipient string, message []byte) error {
	deadline := time.Now().Add(s.config.Timeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}
	ctx, cancel := context.WithDeadline(ctx, deadline)
	defer cancel()

	conn, err := s.dial(ctx)
	if err != nil {
		return err
	}
	if err := conn.SetDeadline(deadline); err != nil {
		_ = conn.Close()
		return err
	}

	client, err := smtp.NewClient(conn, s.config.Host)
	if err != nil {
		_ = conn.Close()
		return err
	}
	defer client.Close()

	if s.config.Port != implicitTLSPort && s.config.UseTLS {
		if ok, _ := client.Extension("STARTTLS"); !ok {
			return errStartTLSUnsupported
		}
		if err := client.StartTLS(&tls.Config{ServerName: s.config.Host}); err != nil {
			return err
		}
	}

	if s.config.User != "" {
		auth := smtp.PlainAuth("", s.config.User, s.config.Password, s.config.Host)
		if err := client.Auth(auth); err != nil {
			return authError(err)
		}
	}

	if err := client.Mail(s.config.From); err != nil {
		return err
	}
	if err := client.Rcpt(recipient); err != nil {
		return err
	}

	w, err := client.Data()
	if err != nil {
		return err
	}
	if _, err := w.Write(message); err != nil {
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}

	// The relay has accepted the message at this point.
	if err := client.Quit(); err != nil {
		s.logger.Debug("mail.quit.failed", zap.Error(err))
	}
	return nil
}

func (s *SMTPSender) dial(ctx context.Context) (net.Conn, error) {
	addr := net.JoinHostPort(s.config.Host, strconv.Itoa(s.config.Port))
	dialer := &net.Dialer{Timeout: s.config.Timeout}

	if s.config.Port == implicitTLSPort {
		tlsDialer := &tls.Dialer{
			NetDialer: dialer,
			Config:    &tls.Config{ServerName: s.config.Host},
		}
		conn, err := tlsDialer.DialContext(ctx, "tcp", addr)
		if err != nil {
			return nil, fmt.Errorf("failed to dial %s: %w", addr, err)
		}
		return conn, nil
	}

	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("failed to dial %s: %w", addr, err)
	}
	return conn, nil
}
