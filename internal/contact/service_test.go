package contact

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/fikanova/portfolio/internal/domain"
	"github.com/fikanova/portfolio/internal/pubsub"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSender struct {
	err  error
	sent []domain.Email
}

func (f *fakeSender) Send(ctx context.Context, email domain.Email) error {
	f.sent = append(f.sent, email)
	return f.err
}

type fakePublisher struct {
	err       error
	published []pubsub.Message
}

func (f *fakePublisher) Publish(ctx context.Context, msg pubsub.Message) error {
	f.published = append(f.published, msg)
	return f.err
}

func (f *fakePublisher) Close() error { return nil }

func TestServiceSubmit(t *testing.T) {
	sub := Submission{
		Name:        "Jane Doe",
		Email:       "jane@example.com",
		ServiceType: "gis",
		Message:     "Need a flood-risk map.",
	}

	t.Run("builds the notification and reports success", func(t *testing.T) {
		sender := &fakeSender{}
		bus := &fakePublisher{}
		svc := NewService(sender, bus, "owner@example.com")

		ref, err := svc.Submit(context.Background(), sub)
		require.NoError(t, err)

		_, parseErr := uuid.Parse(ref)
		assert.NoError(t, parseErr)

		require.Len(t, sender.sent, 1)
		email := sender.sent[0]
		assert.Equal(t, "owner@example.com", email.To)
		assert.Equal(t, "jane@example.com", email.ReplyTo)
		assert.Equal(t, "New Portfolio Inquiry from Jane Doe", email.Subject)
		assert.Contains(t, email.HTML, "Need a flood-risk map.")

		require.Len(t, bus.published, 1)
		assert.Equal(t, TopicSubmissionAccepted, bus.published[0].Topic)

		var event submissionEvent
		require.NoError(t, json.Unmarshal(bus.published[0].Payload, &event))
		assert.Equal(t, ref, event.Reference)
		assert.Empty(t, event.Error)
	})

	t.Run("send failure surfaces untranslated and publishes the failed topic", func(t *testing.T) {
		sendErr := errors.New("provider down")
		sender := &fakeSender{err: sendErr}
		bus := &fakePublisher{}
		svc := NewService(sender, bus, "owner@example.com")

		_, err := svc.Submit(context.Background(), sub)
		assert.ErrorIs(t, err, sendErr)

		// Exactly one send attempt: no retries.
		assert.Len(t, sender.sent, 1)

		require.Len(t, bus.published, 1)
		assert.Equal(t, TopicSubmissionFailed, bus.published[0].Topic)

		var event submissionEvent
		require.NoError(t, json.Unmarshal(bus.published[0].Payload, &event))
		assert.Equal(t, "provider down", event.Error)
	})

	t.Run("bus failure never alters the caller's outcome", func(t *testing.T) {
		sender := &fakeSender{}
		bus := &fakePublisher{err: errors.New("bus closed")}
		svc := NewService(sender, bus, "owner@example.com")

		_, err := svc.Submit(context.Background(), sub)
		assert.NoError(t, err)
	})

	t.Run("nil publisher is tolerated", func(t *testing.T) {
		sender := &fakeSender{}
		svc := NewService(sender, nil, "owner@example.com")

		_, err := svc.Submit(context.Background(), sub)
		assert.NoError(t, err)
	})
}

func TestNotificationBodyEscapesContent(t *testing.T) {
	body := notificationBody(Submission{
		Name:        "<script>alert(1)</script>",
		Email:       "jane@example.com",
		ServiceType: "other",
		Message:     "hello & goodbye",
	})

	assert.NotContains(t, body, "<script>alert(1)</script>")
	assert.Contains(t, body, "&lt;script&gt;")
	assert.Contains(t, body, "hello &amp; goodbye")
}
