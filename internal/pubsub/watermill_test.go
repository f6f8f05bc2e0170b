package pubsub

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatermillBridgeRoundTrip(t *testing.T) {
	bridge := NewWatermillBridge()
	defer bridge.Close()

	received := make(chan Message, 1)
	err := bridge.Subscribe(context.Background(), "test.topic", func(ctx context.Context, msg Message) error {
		received <- msg
		return nil
	})
	require.NoError(t, err)

	err = bridge.Publish(context.Background(), Message{
		Topic:    "test.topic",
		Payload:  []byte(`{"hello":"world"}`),
		Metadata: map[string]string{"source": "test"},
	})
	require.NoError(t, err)

	select {
	case msg := <-received:
		assert.Equal(t, "test.topic", msg.Topic)
		assert.JSONEq(t, `{"hello":"world"}`, string(msg.Payload))
		assert.Equal(t, "test", msg.Metadata["source"])
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for message")
	}
}

func TestWatermillBridgeTopicsAreIsolated(t *testing.T) {
	bridge := NewWatermillBridge()
	defer bridge.Close()

	received := make(chan Message, 1)
	require.NoError(t, bridge.Subscribe(context.Background(), "topic.a", func(ctx context.Context, msg Message) error {
		received <- msg
		return nil
	}))

	require.NoError(t, bridge.Publish(context.Background(), Message{Topic: "topic.b", Payload: []byte("b")}))
	require.NoError(t, bridge.Publish(context.Background(), Message{Topic: "topic.a", Payload: []byte("a")}))

	select {
	case msg := <-received:
		assert.Equal(t, "topic.a", msg.Topic)
		assert.Equal(t, "a", string(msg.Payload))
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for message")
	}
}
