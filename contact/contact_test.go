package contact

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/smtp"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validMessage() Message {
	return Message{Name: "Sara Al-Harbi", Email: "sara@example.com", Mobile: "0551234567", Message: "Need a kiosk"}
}

func TestSanitizers(t *testing.T) {
	assert.Equal(t, "O'Neil Jr. Mary-Ann", SanitizeName("O'Neil Jr. Mary-Ann42!"))
	assert.Equal(t, "سارة", SanitizeName("سارة<>"))
	assert.Equal(t, "0551234567", SanitizeMobile("+055 123-4567"))
	assert.Equal(t, "", SanitizeMobile("abc"))
}

func TestValidate(t *testing.T) {
	require.NoError(t, validMessage().Validate())

	tests := []struct {
		name string
		edit func(*Message)
	}{
		{"no name", func(m *Message) { m.Name = " " }},
		{"no email", func(m *Message) { m.Email = "" }},
		{"bad email", func(m *Message) { m.Email = "not-an-email" }},
		{"display name email", func(m *Message) { m.Email = "Sara <sara@example.com>" }},
		{"no mobile", func(m *Message) { m.Mobile = "" }},
		{"no message", func(m *Message) { m.Message = "\n" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := validMessage()
			tt.edit(&m)
			assert.ErrorIs(t, m.Validate(), ErrInvalid)
		})
	}
}

func TestCompose(t *testing.T) {
	raw := string(Compose("relay@example.com", "owner@example.com", validMessage(), time.Unix(0, 0)))
	assert.Contains(t, raw, "From: \"Contact Form\" <relay@example.com>\r\n")
	assert.Contains(t, raw, "To: owner@example.com\r\n")
	assert.Contains(t, raw, "Subject: New message from Sara Al-Harbi\r\n")
	assert.Contains(t, raw, "Name: Sara Al-Harbi\r\nEmail: sara@example.com\r\nMobile: 0551234567\r\n\r\nMessage:\r\nNeed a kiosk")
}

func TestComposeStripsHeaderInjection(t *testing.T) {
	m := validMessage()
	m.Name = "x\r\nBcc: evil@example.com"
	raw := string(Compose("a@b.c", "d@e.f", m, time.Now()))
	headers, _, ok := strings.Cut(raw, "\r\n\r\n")
	require.True(t, ok)
	assert.NotContains(t, headers, "\r\nBcc:")
}

func TestSMTPMailerSend(t *testing.T) {
	var gotAddr string
	var gotTo []string
	m := NewSMTPMailer(SMTPConfig{Host: "smtp.example.com", Port: "587", User: "relay@example.com", Pass: "pw", Owner: "owner@example.com"})
	m.send = func(addr string, _ smtp.Auth, from string, to []string, msg []byte) error {
		gotAddr, gotTo = addr, to
		return nil
	}
	require.NoError(t, m.Send(context.Background(), validMessage()))
	assert.Equal(t, "smtp.example.com:587", gotAddr)
	assert.Equal(t, []string{"owner@example.com"}, gotTo)

	m.send = func(string, smtp.Auth, string, []string, []byte) error { return errors.New("535 auth failed") }
	assert.ErrorContains(t, m.Send(context.Background(), validMessage()), "535")

	unset := NewSMTPMailer(SMTPConfig{Host: "h", Port: "1"})
	assert.Error(t, unset.Send(context.Background(), validMessage()))
}

func TestSMTPConfigFromEnv(t *testing.T) {
	t.Setenv("EMAIL_USER", "u@example.com")
	t.Setenv("OWNER_EMAIL", "o@example.com")
	t.Setenv("SMTP_HOST", "")
	t.Setenv("SMTP_PORT", "")
	c := SMTPConfigFromEnv()
	assert.Equal(t, "smtp.gmail.com", c.Host)
	assert.Equal(t, "587", c.Port)
	assert.Equal(t, "u@example.com", c.User)
}

func TestClientSend(t *testing.T) {
	var fail atomic.Bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/sendMail", r.URL.Path)
		var m Message
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&m))
		assert.Equal(t, validMessage(), m)
		if fail.Load() {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"success":false}`))
			return
		}
		_, _ = w.Write([]byte(`{"success":true}`))
	}))
	defer srv.Close()

	c := &Client{BaseURL: srv.URL + "/"}
	require.NoError(t, c.Send(context.Background(), validMessage()))

	fail.Store(true)
	err := c.Send(context.Background(), validMessage())
	assert.ErrorIs(t, err, ErrFailed)
	assert.ErrorContains(t, err, "500")
}
