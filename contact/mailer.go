package contact

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/smtp"
	"os"
	"strings"
	"time"
)

// Mailer delivers a contact message
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

// MailerFunc adapts a function to Mailer
type MailerFunc func(ctx context.Context, msg Message) error

// Send calls f
func (f MailerFunc) Send(ctx context.Context, msg Message) error { return f(ctx, msg) }

// SMTPConfig holds the relay credentials
type SMTPConfig struct {
	Host  string
	Port  string
	User  string
	Pass  string
	Owner string
}

// SMTPConfigFromEnv reads EMAIL_USER, EMAIL_PASS, OWNER_EMAIL and the
// optional SMTP_HOST and SMTP_PORT (gmail by default).
func SMTPConfigFromEnv() SMTPConfig {
	c := SMTPConfig{
		Host:  os.Getenv("SMTP_HOST"),
		Port:  os.Getenv("SMTP_PORT"),
		User:  os.Getenv("EMAIL_USER"),
		Pass:  os.Getenv("EMAIL_PASS"),
		Owner: os.Getenv("OWNER_EMAIL"),
	}
	if c.Host == "" {
		c.Host = "smtp.gmail.com"
	}
	if c.Port == "" {
		c.Port = "587"
	}
	return c
}

// SendFunc matches smtp.SendMail
type SendFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// SMTPMailer sends through an SMTP relay with PLAIN auth
type SMTPMailer struct {
	cfg  SMTPConfig
	send SendFunc
}

// NewSMTPMailer creates a mailer using smtp.SendMail
func NewSMTPMailer(cfg SMTPConfig) *SMTPMailer {
	return &SMTPMailer{cfg: cfg, send: smtp.SendMail}
}

// Send implements Mailer. smtp.SendMail has no context, so cancellation
// is only honoured before the dial.
func (m *SMTPMailer) Send(ctx context.Context, msg Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if m.cfg.User == "" || m.cfg.Owner == "" {
		return errors.New("contact: EMAIL_USER and OWNER_EMAIL must be set")
	}
	addr := net.JoinHostPort(m.cfg.Host, m.cfg.Port)
	auth := smtp.PlainAuth("", m.cfg.User, m.cfg.Pass, m.cfg.Host)
	raw := Compose(m.cfg.User, m.cfg.Owner, msg, time.Now())
	if err := m.send(addr, auth, m.cfg.User, []string{m.cfg.Owner}, raw); err != nil {
		return fmt.Errorf("send mail via %s: %w", addr, err)
	}
	return nil
}

// Compose renders the RFC 5322 message
func Compose(from, to string, msg Message, at time.Time) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "From: \"Contact Form\" <%s>\r\n", from)
	fmt.Fprintf(&b, "To: %s\r\n", to)
	if msg.Email != "" {
		fmt.Fprintf(&b, "Reply-To: %s\r\n", msg.Email)
	}
	fmt.Fprintf(&b, "Subject: %s\r\n", headerSafe(msg.Subject()))
	fmt.Fprintf(&b, "Date: %s\r\n", at.Format(time.RFC1123Z))
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=\"utf-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(strings.ReplaceAll(msg.Body(), "\n", "\r\n"))
	return []byte(b.String())
}

func headerSafe(s string) string {
	return strings.NewReplacer("\r", " ", "\n", " ").Replace(s)
}
