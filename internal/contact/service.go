package contact

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/fikanova/portfolio/internal/domain"
	"github.com/fikanova/portfolio/internal/pubsub"
	"github.com/google/uuid"
)

// Topics published by the submission pipeline. Subscribers (see the audit
// package) consume them for observability only.
const (
	TopicSubmissionAccepted = "contact.submission.accepted"
	TopicSubmissionFailed   = "contact.submission.failed"
)

// Submission holds the validated contact-form fields.
type Submission struct {
	Name        string
	Email       string
	ServiceType string
	Message     string
}

// Service dispatches contact submissions through the transactional email
// collaborator. Each submission is at-most-once: no retries anywhere.
type Service struct {
	emailer   domain.EmailSender
	publisher pubsub.Publisher
	recipient string
}

// NewService creates the submission service. recipient is the site owner's
// fixed notification address.
func NewService(emailer domain.EmailSender, publisher pubsub.Publisher, recipient string) *Service {
	return &Service{
		emailer:   emailer,
		publisher: publisher,
		recipient: recipient,
	}
}

// Submit builds the notification email and dispatches it. The returned
// reference identifies the attempt in logs and on the event bus; the error
// is the collaborator's verdict, untranslated (handlers map it to a
// user-facing response).
func (s *Service) Submit(ctx context.Context, sub Submission) (string, error) {
	ref := uuid.NewString()

	err := s.emailer.Send(ctx, domain.Email{
		To:      s.recipient,
		ReplyTo: sub.Email,
		Subject: "New Portfolio Inquiry from " + sub.Name,
		HTML:    notificationBody(sub),
	})

	s.publishOutcome(ctx, ref, sub, err)
	return ref, err
}

// submissionEvent is the bus payload for a submission outcome.
type submissionEvent struct {
	Reference   string `json:"reference"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	ServiceType string `json:"serviceType"`
	Error       string `json:"error,omitempty"`
	Timestamp   string `json:"timestamp"`
}

// publishOutcome emits the submission result on the bus. Publishing is
// fire-and-forget; a bus failure never alters the caller's outcome.
func (s *Service) publishOutcome(ctx context.Context, ref string, sub Submission, sendErr error) {
	if s.publisher == nil {
		return
	}

	event := submissionEvent{
		Reference:   ref,
		Name:        sub.Name,
		Email:       sub.Email,
		ServiceType: sub.ServiceType,
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
	}
	topic := TopicSubmissionAccepted
	if sendErr != nil {
		topic = TopicSubmissionFailed
		event.Error = sendErr.Error()
	}

	payload, err := json.Marshal(event)
	if err != nil {
		slog.Error("Failed to marshal submission event", "reference", ref, "error", err)
		return
	}

	if err := s.publisher.Publish(ctx, pubsub.Message{Topic: topic, Payload: payload}); err != nil {
		slog.Error("Failed to publish submission event", "reference", ref, "topic", topic, "error", err)
	}
}
