package mailer

import (
	"bufio"
	"context"
	"errors"
	"net"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnquangdev/meeting-planner/pkg/config"
)

// fakeSMTPServer speaks just enough SMTP for net/smtp's client
type fakeSMTPServer struct {
	listener  net.Listener
	authReply string
	silent    bool

	mu         sync.Mutex
	recipients []string
	messages   []string
}

func newFakeSMTPServer(t *testing.T, authReply string) *fakeSMTPServer {
	return startFakeSMTPServer(t, &fakeSMTPServer{authReply: authReply})
}

// newSilentSMTPServer accepts connections but never greets the client
func newSilentSMTPServer(t *testing.T) *fakeSMTPServer {
	return startFakeSMTPServer(t, &fakeSMTPServer{silent: true})
}

func startFakeSMTPServer(t *testing.T, s *fakeSMTPServer) *fakeSMTPServer {
	t.Helper()
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	s.listener = listener
	go s.serve()
	t.Cleanup(func() { _ = listener.Close() })
	return s
}

func (s *fakeSMTPServer) port(t *testing.T) int {
	_, portStr, err := net.SplitHostPort(s.listener.Addr().String())
	require.NoError(t, err)
	port, err := strconv.Atoi(portStr)
	require.NoError(t, err)
	return port
}

func (s *fakeSMTPServer) serve() {
	for {
		conn, err := s.listener.Accept()
		if err != nil {
			return
		}
		go s.handle(conn)
	}
}

func (s *fakeSMTPServer) handle(conn net.Conn) {
	defer func() { _ = conn.Close() }()
	if s.silent {
		time.Sleep(2 * time.Second)
		return
	}

	reader := bufio.NewReader(conn)
	reply := func(line string) { _, _ = conn.Write([]byte(line + "\r\n")) }
	reply("220 localhost ESMTP ready")

	for {
		line, err := reader.ReadString('\n')
		if err != nil {
			return
		}
		cmd := strings.TrimSpace(line)
		upper := strings.ToUpper(cmd)

		switch {
		case strings.HasPrefix(upper, "EHLO"):
			reply("250-localhost greets you")
			reply("250 AUTH PLAIN")
		case strings.HasPrefix(upper, "HELO"):
			reply("250 localhost")
		case strings.HasPrefix(upper, "AUTH"):
			reply(s.authReply)
		case cmd == "*":
			reply("501 authentication cancelled")
		case strings.HasPrefix(upper, "RCPT TO:"):
			s.mu.Lock()
			s.recipients = append(s.recipients, strings.Trim(cmd[len("RCPT TO:"):], "<>"))
			s.mu.Unlock()
			reply("250 OK")
		case upper == "DATA":
			reply("354 End data with <CR><LF>.<CR><LF>")
			var data strings.Builder
			for {
				l, err := reader.ReadString('\n')
				if err != nil {
					return
				}
				if l == ".\r\n" {
					break
				}
				data.WriteString(l)
			}
			s.mu.Lock()
			s.messages = append(s.messages, data.String())
			s.mu.Unlock()
			reply("250 OK queued")
		case upper == "QUIT":
			reply("221 Bye")
			return
		default:
			reply("250 OK")
		}
	}
}

func (s *fakeSMTPServer) delivered() ([]string, []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.recipients...), append([]string(nil), s.messages...)
}

func testInvitation() Invitation {
	return Invitation{
		RecipientEmail: "alice@example.com",
		MeetingID:      42,
		MeetingName:    "Tumor Board",
		StartsAt:       "2026-02-20",
		StartTime:      "08:00",
		EndTime:        "09:00",
		Timezone:       "UTC",
		ScheduleType:   "one-time",
		Links: []ActionLink{
			{Action: "accept", Label: "Accept", URL: "http://localhost:3000/api/respond-to-meeting/tok?action=accept"},
			{Action: "decline", Label: "Decline", URL: "http://localhost:3000/api/respond-to-meeting/tok?action=decline"},
			{Action: "tentative", Label: "Tentative", URL: "http://localhost:3000/api/respond-to-meeting/tok?action=tentative"},
		},
	}
}

func newTestSender(t *testing.T, port int, user string, useTLS bool) *SMTPSender {
	t.Helper()
	sender, err := NewSMTPSender(config.EmailConfig{
		Enabled:  true,
		Host:     "127.0.0.1",
		Port:     port,
		User:     user,
		Password: "secret",
		From:     "noreply@example.com",
		UseTLS:   useTLS,
		Timeout:  300 * time.Millisecond,
	}, nil)
	require.NoError(t, err)
	return sender
}

func TestSMTPSenderDeliversInvitation(t *testing.T) {
	server := newFakeSMTPServer(t, "235 Authentication successful")
	sender := newTestSender(t, server.port(t), "mailer", false)

	err := sender.SendInvitation(context.Background(), testInvitation())
	require.NoError(t, err)

	recipients, messages := server.delivered()
	require.Equal(t, []string{"alice@example.com"}, recipients)
	require.Len(t, messages, 1)

	msg := messages[0]
	assert.Contains(t, msg, "Subject: Meeting Invite: Tumor Board")
	assert.Contains(t, msg, "To: alice@example.com")
	assert.Contains(t, msg, "multipart/alternative")
	assert.Contains(t, msg, "text/plain")
	assert.Contains(t, msg, "text/html")
	for _, link := range testInvitation().Links {
		assert.Contains(t, msg, link.URL)
	}
}

func TestSMTPSenderClassifiesRejectedCredentials(t *testing.T) {
	server := newFakeSMTPServer(t, "535 5.7.8 Authentication credentials invalid")
	sender := newTestSender(t, server.port(t), "mailer", false)

	err := sender.SendInvitation(context.Background(), testInvitation())

	var dispatchErr *DispatchError
	require.True(t, errors.As(err, &dispatchErr))
	assert.Equal(t, FailureAuthFailed, dispatchErr.Kind)
	assert.True(t, dispatchErr.Fatal())
	_, messages := server.delivered()
	assert.Empty(t, messages)
}

func TestSMTPSenderClassifiesUnreachableRelay(t *testing.T) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := listener.Addr().(*net.TCPAddr).Port
	require.NoError(t, listener.Close())

	sender := newTestSender(t, port, "", false)
	err = sender.SendInvitation(context.Background(), testInvitation())

	var dispatchErr *DispatchError
	require.True(t, errors.As(err, &dispatchErr))
	assert.Equal(t, FailureTransportError, dispatchErr.Kind)
}

func TestSMTPSenderTimesOutOnSilentRelay(t *testing.T) {
	server := newSilentSMTPServer(t)
	sender := newTestSender(t, server.port(t), "", false)

	start := time.Now()
	err := sender.SendInvitation(context.Background(), testInvitation())

	var dispatchErr *DispatchError
	require.True(t, errors.As(err, &dispatchErr))
	assert.Equal(t, FailureTransportError, dispatchErr.Kind)
	assert.Less(t, time.Since(start), 2*time.Second)
}

func TestSMTPSenderRequiresStartTLSWhenConfigured(t *testing.T) {
	server := newFakeSMTPServer(t, "235 OK")
	sender := newTestSender(t, server.port(t), "", true)

	err := sender.SendInvitation(context.Background(), testInvitation())

	var dispatchErr *DispatchError
	require.True(t, errors.As(err, &dispatchErr))
	assert.Equal(t, FailureTransportError, dispatchErr.Kind)
	assert.ErrorIs(t, err, errStartTLSUnsupported)
}
