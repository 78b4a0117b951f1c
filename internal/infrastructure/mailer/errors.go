package mailer

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"io"
	"net"
	"net/textproto"
	"os"
)

// FailureKind classifies why a delivery failed
type FailureKind string

const (
	FailureAuthFailed     FailureKind = "AuthFailed"
	FailureTransportError FailureKind = "TransportError"
	FailureUnknown        FailureKind = "Unknown"
)

// errStartTLSUnsupported is returned when TLS is required but not offered
var errStartTLSUnsupported = errors.New("smtp server does not support STARTTLS")

// errAuthRejected marks any failure of the AUTH exchange, including a client
// refusing to send credentials over an unencrypted connection
var errAuthRejected = errors.New("authentication rejected")

func authError(err error) error {
	return fmt.Errorf("%w: %w", errAuthRejected, err)
}

// DispatchError reports a failed delivery to one recipient
type DispatchError struct {
	Kind      FailureKind
	Recipient string
	Err       error
}

func (e *DispatchError) Error() string {
	switch e.Kind {
	case FailureAuthFailed:
		return fmt.Sprintf("SMTP authentication failed: %v", e.Err)
	case FailureTransportError:
		return fmt.Sprintf("SMTP server unreachable: %v", e.Err)
	}
	return fmt.Sprintf("failed to send email to %s: %v", e.Recipient, e.Err)
}

func (e *DispatchError) Unwrap() error {
	return e.Err
}

// Fatal reports whether later deliveries over the same transport would fail
// the same way
func (e *DispatchError) Fatal() bool {
	return e.Kind == FailureAuthFailed || e.Kind == FailureTransportError
}

// Classify maps a transport error onto a FailureKind
func Classify(err error) FailureKind {
	if err == nil {
		return FailureUnknown
	}

	if errors.Is(err, errAuthRejected) {
		return FailureAuthFailed
	}

	var tpErr *textproto.Error
	if errors.As(err, &tpErr) {
		switch tpErr.Code {
		case 530, 534, 535:
			return FailureAuthFailed
		case 421:
			return FailureTransportError
		}
		return FailureUnknown
	}

	if errors.Is(err, errStartTLSUnsupported) ||
		errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, os.ErrDeadlineExceeded) ||
		errors.Is(err, io.EOF) ||
		errors.Is(err, io.ErrUnexpectedEOF) {
		return FailureTransportError
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return FailureTransportError
	}

	var recordErr tls.RecordHeaderError
	var certErr *tls.CertificateVerificationError
	if errors.As(err, &recordErr) || errors.As(err, &certErr) {
		return FailureTransportError
	}

	return FailureUnknown
}

func newDispatchError(recipient string, err error) *DispatchError {
	return &DispatchError{Kind: Classify(err), Recipient: recipient, Err: err}
}
