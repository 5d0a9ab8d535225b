// Package contact relays contact-form messages to the site owner by mail.
package contact

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"unicode"
)

// ErrInvalid marks a message that failed validation
var ErrInvalid = errors.New("contact: invalid message")

// Message is the contact form payload
type Message struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Mobile  string `json:"mobile"`
	Message string `json:"message"`
}

// SanitizeName keeps letters of any script, whitespace and . ' -
func SanitizeName(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsSpace(r) || r == '.' || r == '\'' || r == '-' {
			return r
		}
		return -1
	}, s)
}

// SanitizeMobile keeps ASCII digits only
func SanitizeMobile(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s)
}

// Sanitized returns a copy with the input filters applied and whitespace
// trimmed.
func (m Message) Sanitized() Message {
	return Message{
		Name:    strings.TrimSpace(SanitizeName(m.Name)),
		Email:   strings.TrimSpace(m.Email),
		Mobile:  SanitizeMobile(m.Mobile),
		Message: strings.TrimSpace(m.Message),
	}
}

// Validate checks that every field is present and the email parses
func (m Message) Validate() error {
	switch {
	case strings.TrimSpace(m.Name) == "":
		return fmt.Errorf("%w: name required", ErrInvalid)
	case strings.TrimSpace(m.Email) == "":
		return fmt.Errorf("%w: email required", ErrInvalid)
	case strings.TrimSpace(m.Mobile) == "":
		return fmt.Errorf("%w: mobile required", ErrInvalid)
	case strings.TrimSpace(m.Message) == "":
		return fmt.Errorf("%w: message required", ErrInvalid)
	}
	addr, err := mail.ParseAddress(m.Email)
	if err != nil || addr.Address != strings.TrimSpace(m.Email) {
		return fmt.Errorf("%w: bad email %q", ErrInvalid, m.Email)
	}
	return nil
}

// Subject is the mail subject for m
func (m Message) Subject() string {
	return "New message from " + m.Name
}

// Body is the plain-text mail body for m
func (m Message) Body() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Name: %s\n", m.Name)
	fmt.Fprintf(&b, "Email: %s\n", m.Email)
	fmt.Fprintf(&b, "Mobile: %s\n", m.Mobile)
	b.WriteString("\nMessage:\n")
	b.WriteString(m.Message)
	b.WriteString("\n")
	return b.String()
}
