package mailer

import (
	"fmt"
	"os"
	"regexp"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/gomail.v2"

	"ralph-ai/backend/config"
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// ValidAddress reports whether s looks like a deliverable address. Anything
// stricter belongs to the SMTP server.
func ValidAddress(s string) bool {
	return emailPattern.MatchString(s)
}

// Mailer delivers report emails over SMTP. When credentials are missing it
// skips sends with a log line instead of failing the caller; delivery is
// always a secondary concern here.
type Mailer struct {
	server   string
	port     int
	sender   string
	password string
	receiver string
	log      zerolog.Logger

	// send is swapped out in tests.
	send func(*gomail.Message) error
}

func New(cfg config.Config, log zerolog.Logger) *Mailer {
	m := &Mailer{
		server:   cfg.SMTPServer,
		port:     cfg.SMTPPort,
		sender:   cfg.EmailSender,
		password: cfg.EmailPassword,
		receiver: cfg.EmailReceiver,
		log:      log,
	}
	m.send = func(msg *gomail.Message) error {
		d := gomail.NewDialer(m.server, m.port, m.sender, m.password)
		return d.DialAndSend(msg)
	}
	return m
}

func (m *Mailer) Configured() bool {
	return m.sender != "" && m.password != ""
}

// Send emails subject/body to recipient, attaching attachmentPath when it
// names an existing file. An unconfigured mailer returns nil after logging.
func (m *Mailer) Send(recipient, subject, body, attachmentPath string) error {
	if !m.Configured() {
		m.log.Warn().Str("to", recipient).Msg("email credentials not configured, skipping send")
		return nil
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.sender)
	msg.SetHeader("To", recipient)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)
	if attachmentPath != "" {
		if _, err := os.Stat(attachmentPath); err != nil {
			m.log.Warn().Str("attachment", attachmentPath).Msg("attachment path missing, sending without it")
		} else {
			msg.Attach(attachmentPath)
		}
	}

	if err := m.send(msg); err != nil {
		return fmt.Errorf("send email to %s: %w", recipient, err)
	}
	m.log.Info().Str("to", recipient).Str("subject", subject).Msg("email sent")
	return nil
}

// SendInternalCopy forwards the generated report to the internal receiver.
// Best-effort: every failure is logged and swallowed so it can never affect
// the user-facing response.
func (m *Mailer) SendInternalCopy(userName, profile, attachmentPath string) {
	if m.receiver == "" || !m.Configured() {
		m.log.Debug().Msg("internal report copy not configured, skipping")
		return
	}
	subject := fmt.Sprintf("Ralph Analysis PDF - %s (%s)", userName, profile)
	body := fmt.Sprintf("Attached is the generated analysis report for %s (%s).\nDate: %s",
		userName, profile, time.Now().Format("2006-01-02 15:04:05"))
	if err := m.Send(m.receiver, subject, body, attachmentPath); err != nil {
		m.log.Warn().Err(err).Str("to", m.receiver).Msg("internal report copy failed")
	}
}
