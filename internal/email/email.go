package email

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/fikanova/portfolio/internal/domain"
)

const resendEndpoint = "https://api.resend.com/emails"

// --- LogSender (for development) ---

// LogSender prints emails to the log instead of sending them.
type LogSender struct {
	SenderAddress string
}

// Send logs the email content instead of dispatching it.
func (s *LogSender) Send(ctx context.Context, email domain.Email) error {
	slog.Info("--- Email Sent (Logged) ---",
		"from", s.SenderAddress,
		"to", email.To,
		"reply_to", email.ReplyTo,
		"subject", email.Subject,
		"body", email.HTML,
	)
	return nil
}

// --- ResendSender (for production) ---

// ResendSender sends emails using the Resend API.
type ResendSender struct {
	apiKey        string
	senderAddress string
	endpoint      string
	httpClient    *http.Client
}

// NewResendSender creates a sender for the Resend API.
func NewResendSender(apiKey, senderAddress string) *ResendSender {
	return &ResendSender{
		apiKey:        apiKey,
		senderAddress: senderAddress,
		endpoint:      resendEndpoint,
		httpClient:    &http.Client{},
	}
}

// WithEndpoint redirects API calls, used by tests to target a local server.
func (s *ResendSender) WithEndpoint(endpoint string) *ResendSender {
	clone := *s
	clone.endpoint = endpoint
	return &clone
}

type resendPayload struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	ReplyTo string   `json:"reply_to,omitempty"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

// resendError is the API's error body, discriminated by Name.
type resendError struct {
	Name    string `json:"name"`
	Message string `json:"message"`
}

// Send dispatches an email through the Resend API. Failure responses are
// inspected: the free-tier restriction on unverified sending domains maps to
// domain.ErrDomainNotVerified, every other API rejection to
// domain.ErrEmailRejected carrying the provider's message.
func (s *ResendSender) Send(ctx context.Context, email domain.Email) error {
	sender := s.senderAddress
	if sender == "" {
		sender = "Portfolio <onboarding@resend.dev>" // Resend's default test sender
	}

	payload := resendPayload{
		From:    sender,
		To:      []string{email.To},
		ReplyTo: email.ReplyTo,
		Subject: email.Subject,
		HTML:    email.HTML,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal resend payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("failed to create resend request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request to resend: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return s.apiErrorFrom(resp)
	}

	slog.Info("Successfully sent email via Resend", "to", email.To, "subject", email.Subject)
	return nil
}

func (s *ResendSender) apiErrorFrom(resp *http.Response) error {
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: status %d", domain.ErrEmailRejected, resp.StatusCode)
	}

	var apiErr resendError
	if err := json.Unmarshal(raw, &apiErr); err != nil || apiErr.Message == "" {
		return fmt.Errorf("%w: status %d: %s", domain.ErrEmailRejected, resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	if apiErr.Name == "validation_error" && strings.Contains(apiErr.Message, "verify a domain") {
		return fmt.Errorf("%w: %s", domain.ErrDomainNotVerified, apiErr.Message)
	}
	return fmt.Errorf("%w: %s", domain.ErrEmailRejected, apiErr.Message)
}
