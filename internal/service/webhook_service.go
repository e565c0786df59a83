package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

// deliveryTimeout bounds one webhook call, measured from call start.
const deliveryTimeout = 10 * time.Second

// WebhookPayload is the JSON body forwarded to the destination. The honeypot
// field is deliberately absent from this type.
type WebhookPayload struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// webhookResponse is the shape the destination is expected to answer with.
type webhookResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// WebhookDeliverer delivers one sanitized submission downstream.
type WebhookDeliverer interface {
	Deliver(ctx context.Context, payload WebhookPayload) error
}

// WebhookService POSTs contact submissions to a configured destination URL.
// One attempt per call: no retries, no idempotency key.
type WebhookService struct {
	url     string
	client  *http.Client
	timeout time.Duration
}

// NewWebhookService creates a webhook delivery service. An empty URL is
// allowed here; Deliver reports it per call as ErrNotConfigured.
func NewWebhookService(url string) *WebhookService {
	return &WebhookService{
		url:     url,
		client:  &http.Client{},
		timeout: deliveryTimeout,
	}
}

// Deliver sends the payload as JSON and classifies the outcome: nil on a 2xx
// response whose body reports success, ErrTimeout when the deadline fires,
// ErrNotConfigured without any network call when no URL is set, and
// ErrDelivery for everything else.
func (s *WebhookService) Deliver(ctx context.Context, payload WebhookPayload) error {
	if s.url == "" {
		return ErrNotConfigured
	}

	ctx, span := otel.Tracer("devfolio/webhook").Start(ctx, "webhook.deliver")
	defer span.End()

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("%w: marshal payload: %v", ErrDelivery, err)
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: create request: %v", ErrDelivery, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return fmt.Errorf("%w after %s", ErrTimeout, s.timeout)
		}
		return fmt.Errorf("%w: %v", ErrDelivery, err)
	}
	defer resp.Body.Close()

	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: destination returned status %d", ErrDelivery, resp.StatusCode)
	}

	var result webhookResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		if errors.Is(err, context.DeadlineExceeded) || ctx.Err() == context.DeadlineExceeded {
			return fmt.Errorf("%w while reading response", ErrTimeout)
		}
		return fmt.Errorf("%w: malformed response body: %v", ErrDelivery, err)
	}

	if !result.Success {
		if result.Error != "" {
			return fmt.Errorf("%w: destination reported: %s", ErrDelivery, result.Error)
		}
		return fmt.Errorf("%w: destination reported failure", ErrDelivery)
	}

	return nil
}
