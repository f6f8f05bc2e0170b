package audit

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/fikanova/portfolio/internal/contact"
	"github.com/fikanova/portfolio/internal/pubsub"
)

// Subscriber records contact-submission outcomes from the event bus. It is
// pure observability: nothing downstream depends on it.
type Subscriber struct {
	subscriber pubsub.Subscriber
}

// NewSubscriber creates an audit subscriber over the given bus.
func NewSubscriber(sub pubsub.Subscriber) *Subscriber {
	return &Subscriber{subscriber: sub}
}

// Start subscribes to both submission topics. Subscriptions live until the
// bus closes.
func (s *Subscriber) Start(ctx context.Context) error {
	if err := s.subscriber.Subscribe(ctx, contact.TopicSubmissionAccepted, s.logAccepted); err != nil {
		return err
	}
	return s.subscriber.Subscribe(ctx, contact.TopicSubmissionFailed, s.logFailed)
}

type submissionRecord struct {
	Reference   string `json:"reference"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	ServiceType string `json:"serviceType"`
	Error       string `json:"error"`
	Timestamp   string `json:"timestamp"`
}

func (s *Subscriber) logAccepted(ctx context.Context, msg pubsub.Message) error {
	rec, err := decodeRecord(msg.Payload)
	if err != nil {
		return err
	}
	slog.Info("Contact submission dispatched",
		"reference", rec.Reference,
		"service_type", rec.ServiceType,
		"submitted_at", rec.Timestamp,
	)
	return nil
}

func (s *Subscriber) logFailed(ctx context.Context, msg pubsub.Message) error {
	rec, err := decodeRecord(msg.Payload)
	if err != nil {
		return err
	}
	slog.Warn("Contact submission failed",
		"reference", rec.Reference,
		"service_type", rec.ServiceType,
		"error", rec.Error,
		"submitted_at", rec.Timestamp,
	)
	return nil
}

func decodeRecord(payload []byte) (submissionRecord, error) {
	var rec submissionRecord
	if err := json.Unmarshal(payload, &rec); err != nil {
		return rec, err
	}
	return rec, nil
}
