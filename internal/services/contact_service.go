package services

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"
)

// NotificationDuration is how long a toast stays on screen
const NotificationDuration = 5 * time.Second

// ErrIncompleteForm is returned when a contact form field is blank
var ErrIncompleteForm = errors.New("name, email and message are required")

// ContactForm holds the submitted contact fields
type ContactForm struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// Notification is a toast shown to the visitor
type Notification struct {
	Type       string `json:"type"` // success or info
	Message    string `json:"message"`
	DurationMs int64  `json:"duration_ms"`
}

// ContactResult is the outcome of a contact submission
type ContactResult struct {
	Mailto       string       `json:"mailto"`
	Notification Notification `json:"notification"`
}

// ContactService builds mail client links from the contact form
type ContactService struct {
	recipient string
}

// NewContactService creates a new ContactService
func NewContactService(recipient string) *ContactService {
	return &ContactService{recipient: recipient}
}

// Submit validates the form and returns a mailto link for it
func (s *ContactService) Submit(form ContactForm) (*ContactResult, error) {
	form.Name = strings.TrimSpace(form.Name)
	form.Email = strings.TrimSpace(form.Email)
	form.Message = strings.TrimSpace(form.Message)
	if form.Name == "" || form.Email == "" || form.Message == "" {
		return nil, ErrIncompleteForm
	}
	if s.recipient == "" {
		return nil, errors.New("contact recipient is not configured")
	}

	subject := "Portfolio contact - " + form.Name
	body := fmt.Sprintf("Name: %s\nEmail: %s\n\nMessage:\n%s\n", form.Name, form.Email, form.Message)

	return &ContactResult{
		Mailto: fmt.Sprintf("mailto:%s?subject=%s&body=%s", s.recipient, encodeComponent(subject), encodeComponent(body)),
		Notification: Notification{
			Type:       "success",
			Message:    "Thanks for your message! Your email client will open.",
			DurationMs: NotificationDuration.Milliseconds(),
		},
	}, nil
}

// componentUnescaper restores the marks encodeURIComponent leaves alone and
// writes spaces as %20 since mail clients do not decode '+'.
var componentUnescaper = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// encodeComponent percent-encodes s the way browsers encode a URI component.
func encodeComponent(s string) string {
	return componentUnescaper.Replace(url.QueryEscape(s))
}
