package email

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fikanova/portfolio/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResendSenderSend(t *testing.T) {
	t.Run("posts the payload and succeeds on 200", func(t *testing.T) {
		var got resendPayload
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
			w.Write([]byte(`{"id":"msg_1"}`))
		}))
		defer srv.Close()

		sender := NewResendSender("test-key", "Portfolio Contact <contact@example.com>").WithEndpoint(srv.URL)
		err := sender.Send(context.Background(), domain.Email{
			To:      "owner@example.com",
			ReplyTo: "visitor@example.com",
			Subject: "New Portfolio Inquiry from Jane",
			HTML:    "<p>Hello</p>",
		})

		require.NoError(t, err)
		assert.Equal(t, "Portfolio Contact <contact@example.com>", got.From)
		assert.Equal(t, []string{"owner@example.com"}, got.To)
		assert.Equal(t, "visitor@example.com", got.ReplyTo)
		assert.Equal(t, "New Portfolio Inquiry from Jane", got.Subject)
	})

	t.Run("empty sender address falls back to the test sender", func(t *testing.T) {
		var got resendPayload
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
			w.Write([]byte(`{"id":"msg_1"}`))
		}))
		defer srv.Close()

		sender := NewResendSender("test-key", "").WithEndpoint(srv.URL)
		require.NoError(t, sender.Send(context.Background(), domain.Email{To: "owner@example.com"}))
		assert.Equal(t, "Portfolio <onboarding@resend.dev>", got.From)
	})

	t.Run("unverified-domain rejection maps to its sentinel", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
			w.Write([]byte(`{"statusCode":403,"name":"validation_error","message":"You can only send testing emails to your own email address. To send emails to other recipients, please verify a domain at resend.com/domains."}`))
		}))
		defer srv.Close()

		sender := NewResendSender("test-key", "").WithEndpoint(srv.URL)
		err := sender.Send(context.Background(), domain.Email{To: "owner@example.com"})

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrDomainNotVerified)
		assert.Contains(t, err.Error(), "verify a domain")
	})

	t.Run("other API rejections carry the provider message", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnprocessableEntity)
			w.Write([]byte(`{"statusCode":422,"name":"validation_error","message":"Invalid 'to' field."}`))
		}))
		defer srv.Close()

		sender := NewResendSender("test-key", "").WithEndpoint(srv.URL)
		err := sender.Send(context.Background(), domain.Email{To: "not-an-address"})

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrEmailRejected)
		assert.NotErrorIs(t, err, domain.ErrDomainNotVerified)
		assert.Contains(t, err.Error(), "Invalid 'to' field.")
	})

	t.Run("undecodable error body still rejects with the status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			w.Write([]byte(`upstream exploded`))
		}))
		defer srv.Close()

		sender := NewResendSender("test-key", "").WithEndpoint(srv.URL)
		err := sender.Send(context.Background(), domain.Email{To: "owner@example.com"})

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrEmailRejected)
		assert.Contains(t, err.Error(), "502")
	})
}

func TestLogSenderNeverFails(t *testing.T) {
	sender := &LogSender{SenderAddress: "dev@example.com"}
	assert.NoError(t, sender.Send(context.Background(), domain.Email{To: "owner@example.com", Subject: "hi"}))
}
