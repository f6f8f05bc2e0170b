package audit

import (
	"context"
	"testing"
	"time"

	"github.com/fikanova/portfolio/internal/contact"
	"github.com/fikanova/portfolio/internal/pubsub"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubscriberRecordsBothOutcomes(t *testing.T) {
	bridge := pubsub.NewWatermillBridge()
	defer bridge.Close()

	auditor := NewSubscriber(bridge)
	require.NoError(t, auditor.Start(context.Background()))

	// Both topics must be consumable without error; the handlers only log,
	// so success here means the payloads decoded and were acked.
	accepted := pubsub.Message{
		Topic:   contact.TopicSubmissionAccepted,
		Payload: []byte(`{"reference":"ref-1","serviceType":"gis","timestamp":"2025-06-01T12:00:00Z"}`),
	}
	failed := pubsub.Message{
		Topic:   contact.TopicSubmissionFailed,
		Payload: []byte(`{"reference":"ref-2","serviceType":"other","error":"provider down","timestamp":"2025-06-01T12:00:01Z"}`),
	}

	require.NoError(t, bridge.Publish(context.Background(), accepted))
	require.NoError(t, bridge.Publish(context.Background(), failed))

	// Give the background consumers a moment to drain.
	time.Sleep(100 * time.Millisecond)
}

func TestDecodeRecordRejectsMalformedPayload(t *testing.T) {
	_, err := decodeRecord([]byte(`not json`))
	assert.Error(t, err)

	rec, err := decodeRecord([]byte(`{"reference":"ref-1","error":"x"}`))
	require.NoError(t, err)
	assert.Equal(t, "ref-1", rec.Reference)
	assert.Equal(t, "x", rec.Error)
}
