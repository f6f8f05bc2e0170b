package domain

import "context"

// Email is a single outbound message. ReplyTo carries the form submitter's
// address so the site owner can answer directly.
type Email struct {
	To      string
	ReplyTo string
	Subject string
	HTML    string
}

// EmailSender defines the interface for sending emails. This allows for
// different implementations (e.g., for logging, Resend, Mailgun).
type EmailSender interface {
	Send(ctx context.Context, email Email) error
}
